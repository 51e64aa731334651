package utils

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"os"
	"path/filepath"
	"time"

	"github.com/fatih/color"
)

var debugLogger = NewLogger(os.Stdout)

func logJsonResponse(body []byte) {
	var prettyJson bytes.Buffer
	err := json.Indent(&prettyJson, body, "", "    ")
	if err != nil {
		color.Red(
			fmt.Sprintf(
				"error %d: failed to indent JSON response body due to %v",
				JSON_ERROR,
				err,
			),
		)
		return
	}

	filename := fmt.Sprintf("saved_%s.json", time.Now().Format("2006-01-02_15-04-05"))
	filePath := filepath.Join("json", filename)
	os.MkdirAll(filepath.Dir(filePath), 0755)
	err = os.WriteFile(filePath, prettyJson.Bytes(), 0666)
	if err != nil {
		color.Red(
			fmt.Sprintf(
				"error %d: failed to write JSON response body to file due to %v",
				UNEXPECTED_ERROR,
				err,
			),
		)
		return
	}
	debugLogger.Debugf("saved JSON response to %s", filePath)
}

// Read the response body into the given struct.
//
// The response body is closed after reading.
func LoadJsonFromResponse(res *http.Response, format any) error {
	defer res.Body.Close()
	body, err := io.ReadAll(res.Body)
	if err != nil {
		return fmt.Errorf(
			"error %d: failed to read response body from %s due to %v",
			RESPONSE_ERROR,
			res.Request.URL.String(),
			err,
		)
	}

	// write to file if debug mode is on
	if DEBUG_MODE {
		logJsonResponse(body)
	}

	if err = json.Unmarshal(body, &format); err != nil {
		err = fmt.Errorf(
			"error %d: failed to unmarshal json response from %s due to %v\nBody: %s",
			RESPONSE_ERROR,
			res.Request.URL.String(),
			err,
			string(body),
		)
		return err
	}
	return nil
}

func LoadJsonFromBytes(body []byte, format any) error {
	if err := json.Unmarshal(body, &format); err != nil {
		err = fmt.Errorf(
			"error %d: failed to unmarshal json due to %v\nBody: %s",
			JSON_ERROR,
			err,
			string(body),
		)
		return err
	}
	return nil
}
