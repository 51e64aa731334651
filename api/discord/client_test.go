package discord

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Serious-senpai/discord-pixiv-uploader/configs"
)

func testClient(baseUrl string) *Client {
	return NewClient(&configs.Config{
		Token:         "test-token",
		DiscordApiUrl: baseUrl,
		UserAgent:     "test-agent",
		ApiTimeout:    5,
	})
}

func TestSendImageMessage(t *testing.T) {
	image := []byte{0x89, 'P', 'N', 'G'}

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "POST", r.Method)
		assert.Equal(t, "/channels/123456/messages", r.URL.Path)
		assert.Equal(t, "Bot test-token", r.Header.Get("Authorization"))
		assert.True(
			t,
			strings.HasPrefix(r.Header.Get("Content-Type"), "multipart/form-data"),
		)

		require.NoError(t, r.ParseMultipartForm(1<<20))

		// payload_json part: embeds plus the attachment-by-index descriptor
		var payload struct {
			Embeds      []*Embed      `json:"embeds"`
			Attachments []*Attachment `json:"attachments"`
		}
		require.NoError(
			t,
			json.Unmarshal([]byte(r.MultipartForm.Value["payload_json"][0]), &payload),
		)
		require.Len(t, payload.Embeds, 1)
		assert.Equal(t, "Sunset", payload.Embeds[0].Title)
		require.Len(t, payload.Attachments, 1)
		assert.Equal(t, 0, payload.Attachments[0].Id)
		assert.Equal(t, "image.png", payload.Attachments[0].Filename)

		// files[0] part: the raw image bytes
		files := r.MultipartForm.File["files[0]"]
		require.Len(t, files, 1)
		assert.Equal(t, "image.png", files[0].Filename)
		file, err := files[0].Open()
		require.NoError(t, err)
		defer file.Close()
		data, err := io.ReadAll(file)
		require.NoError(t, err)
		assert.Equal(t, image, data)

		w.WriteHeader(http.StatusOK)
	}))
	defer server.Close()

	embed := &Embed{Title: "Sunset"}
	err := testClient(server.URL).SendImageMessage(
		context.Background(),
		"123456",
		embed,
		"image.png",
		image,
	)
	assert.NoError(t, err)
}

func TestSendImageMessage_Rejected(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusForbidden)
	}))
	defer server.Close()

	err := testClient(server.URL).SendImageMessage(
		context.Background(),
		"123456",
		&Embed{},
		"image.png",
		nil,
	)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "403")
}

func TestSendImageMessage_TransportFailure(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	server.Close()

	err := testClient(server.URL).SendImageMessage(
		context.Background(),
		"123456",
		&Embed{},
		"image.png",
		nil,
	)
	assert.Error(t, err)
}
