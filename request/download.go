package request

import (
	"context"
	"fmt"
	"io"

	"github.com/Serious-senpai/discord-pixiv-uploader/utils"
)

// DownloadImage fetches the image at the given URL and returns its raw bytes.
//
// Pixiv's image CDN rejects requests without a Pixiv referer header.
func DownloadImage(ctx context.Context, url, userAgent string, timeout int) ([]byte, error) {
	res, err := CallRequest(
		&RequestArgs{
			Url:    url,
			Method: "GET",
			Headers: map[string]string{
				"Referer": utils.PIXIV_URL + "/",
			},
			UserAgent:   userAgent,
			Timeout:     timeout,
			CheckStatus: true,
			Context:     ctx,
		},
	)
	if err != nil {
		return nil, fmt.Errorf(
			"error %d: cannot fetch image from %s, more info => %v",
			utils.CONNECTION_ERROR,
			url,
			err,
		)
	}
	defer res.Body.Close()

	data, err := io.ReadAll(res.Body)
	if err != nil {
		return nil, fmt.Errorf(
			"error %d: failed to read image data from %s, more info => %v",
			utils.RESPONSE_ERROR,
			url,
			err,
		)
	}
	return data, nil
}
