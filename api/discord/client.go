package discord

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"mime/multipart"
	"net/textproto"

	"github.com/Serious-senpai/discord-pixiv-uploader/configs"
	"github.com/Serious-senpai/discord-pixiv-uploader/request"
	"github.com/Serious-senpai/discord-pixiv-uploader/utils"
)

// Attachment is the attachment-by-index descriptor of the message
// payload, pairing an embed's attachment:// reference with the
// files[{id}] part of the multipart body.
type Attachment struct {
	Id       int    `json:"id"`
	Filename string `json:"filename"`
}

type messagePayload struct {
	Embeds      []*Embed      `json:"embeds"`
	Attachments []*Attachment `json:"attachments"`
}

// Client talks to the Discord HTTP API on behalf of a bot.
type Client struct {
	Token     string
	BaseUrl   string
	UserAgent string
	Timeout   int
}

func NewClient(config *configs.Config) *Client {
	return &Client{
		Token:     config.Token,
		BaseUrl:   config.DiscordApiUrl,
		UserAgent: config.UserAgent,
		Timeout:   config.ApiTimeout,
	}
}

// SendImageMessage posts a message with a single embed and its image
// attachment to the given channel.
//
// The body is multipart: a payload_json part carrying the embeds and
// attachment descriptors, and a files[0] part carrying the image bytes.
func (c *Client) SendImageMessage(ctx context.Context, channelId string, embed *Embed, filename string, image []byte) error {
	payload, err := json.Marshal(&messagePayload{
		Embeds: []*Embed{embed},
		Attachments: []*Attachment{
			{Id: 0, Filename: filename},
		},
	})
	if err != nil {
		return fmt.Errorf(
			"error %d: failed to marshal message payload, more info => %v",
			utils.DEV_ERROR,
			err,
		)
	}

	var body bytes.Buffer
	form := multipart.NewWriter(&body)

	jsonHeader := textproto.MIMEHeader{}
	jsonHeader.Set("Content-Disposition", `form-data; name="payload_json"`)
	jsonHeader.Set("Content-Type", "application/json")
	jsonPart, err := form.CreatePart(jsonHeader)
	if err != nil {
		return fmt.Errorf(
			"error %d: failed to create payload_json part, more info => %v",
			utils.DEV_ERROR,
			err,
		)
	}
	jsonPart.Write(payload)

	fileHeader := textproto.MIMEHeader{}
	fileHeader.Set(
		"Content-Disposition",
		fmt.Sprintf(`form-data; name="files[0]"; filename=%q`, filename),
	)
	fileHeader.Set("Content-Type", "image/png")
	filePart, err := form.CreatePart(fileHeader)
	if err != nil {
		return fmt.Errorf(
			"error %d: failed to create files[0] part, more info => %v",
			utils.DEV_ERROR,
			err,
		)
	}
	filePart.Write(image)

	if err := form.Close(); err != nil {
		return fmt.Errorf(
			"error %d: failed to finalise multipart body, more info => %v",
			utils.DEV_ERROR,
			err,
		)
	}

	url := fmt.Sprintf("%s/channels/%s/messages", c.BaseUrl, channelId)
	res, err := request.CallRequestWithBody(
		&request.RequestArgs{
			Url:    url,
			Method: "POST",
			Headers: map[string]string{
				"Authorization": "Bot " + c.Token,
			},
			UserAgent: c.UserAgent,
			Timeout:   c.Timeout,
			Http2:     true,
			Context:   ctx,
		},
		form.FormDataContentType(),
		&body,
	)
	if err != nil {
		return fmt.Errorf(
			"error %d: failed to send message to channel %s, more info => %v",
			utils.CONNECTION_ERROR,
			channelId,
			err,
		)
	}
	defer res.Body.Close()

	if res.StatusCode < 200 || res.StatusCode >= 300 {
		return fmt.Errorf(
			"error %d: message to channel %s rejected with %s response",
			utils.RESPONSE_ERROR,
			channelId,
			res.Status,
		)
	}
	return nil
}
