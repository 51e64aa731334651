package utils

import (
	"fmt"
	"log"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/fatih/color"
)

var (
	logMut      = sync.Mutex{}
	logFilePath = filepath.Join(
		APP_PATH,
		"logs",
		fmt.Sprintf(
			"discord_pixiv_uploader_v%s_%s.log",
			VERSION,
			time.Now().Format("2006-01-02"),
		),
	)
)

// Thread-safe logging function that logs to a dated log file in the app directory
func LogError(err error, errorMsg string, exit bool) {
	if err == nil && errorMsg == "" {
		return
	}

	logMut.Lock()
	defer logMut.Unlock()

	os.MkdirAll(filepath.Dir(logFilePath), 0755)
	f, fileErr := os.OpenFile(
		logFilePath,
		os.O_WRONLY|os.O_CREATE|os.O_APPEND,
		0666,
	)
	if fileErr != nil {
		fileErr = fmt.Errorf(
			"error opening log file: %v\nlog file path: %s",
			fileErr,
			logFilePath,
		)
		log.Println(color.RedString(fileErr.Error()))
		return
	}
	defer f.Close()

	now := time.Now().Format("2006-01-02 15:04:05")
	if err != nil {
		fmt.Fprintf(f, "%v: %v\n", now, err)
		if errorMsg != "" {
			fmt.Fprintf(f, "Additional info: %v\n", errorMsg)
		}
		fmt.Fprintln(f)
	} else {
		fmt.Fprintf(f, "%v: %v\n\n", now, errorMsg)
	}

	if exit {
		if err != nil {
			color.Red(err.Error())
		} else {
			color.Red(errorMsg)
		}
		os.Exit(1)
	}
}
