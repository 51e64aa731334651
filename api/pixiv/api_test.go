package pixiv

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Serious-senpai/discord-pixiv-uploader/configs"
)

func testConfig(baseUrl string) *configs.Config {
	return &configs.Config{
		PixivUrl:   baseUrl,
		UserAgent:  "test-agent",
		ApiTimeout: 5,
	}
}

func TestGetArtwork_Success(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/ajax/illust/92789051", r.URL.Path)
		assert.Equal(t, "test-agent", r.Header.Get("User-Agent"))
		assert.Equal(t, "https://www.pixiv.net", r.Header.Get("Referer"))

		fmt.Fprintf(w, `{"error": false, "message": "", "body": %s}`, nestedTagsDocument)
	}))
	defer server.Close()

	artwork, err := GetArtwork(context.Background(), 92789051, testConfig(server.URL))
	require.NoError(t, err)
	assert.Equal(t, int64(92789051), artwork.Id)
	assert.Equal(t, "Sunset", artwork.Title)
	require.Len(t, artwork.Tags, 2)
}

func TestGetArtwork_Http404(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	}))
	defer server.Close()

	_, err := GetArtwork(context.Background(), 1, testConfig(server.URL))
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestGetArtwork_ErrorEnvelope(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, `{"error": true, "message": "Work has been deleted or the ID does not exist.", "body": null}`)
	}))
	defer server.Close()

	_, err := GetArtwork(context.Background(), 1, testConfig(server.URL))
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestGetArtwork_MissingFieldIsNotAbsence(t *testing.T) {
	// 200 with a body missing "title": the artwork exists but the
	// response is garbage, which must not look like a missing artwork
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, `{"error": false, "message": "", "body": {
			"id": 1, "userId": 2, "userName": "u",
			"xRestrict": 0, "createDate": "2023-01-01T00:00:00",
			"tags": [], "width": 1, "height": 1, "pageCount": 1,
			"urls": {}
		}}`)
	}))
	defer server.Close()

	_, err := GetArtwork(context.Background(), 1, testConfig(server.URL))
	var malformedErr *MalformedResponseError
	require.ErrorAs(t, err, &malformedErr)
	assert.Equal(t, "title", malformedErr.Field)
	assert.NotErrorIs(t, err, ErrNotFound)
}

func TestGetArtwork_GarbageBody(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, `{"error": false, "message": "", "body": "not an object"}`)
	}))
	defer server.Close()

	_, err := GetArtwork(context.Background(), 1, testConfig(server.URL))
	var malformedErr *MalformedResponseError
	assert.ErrorAs(t, err, &malformedErr)
}

func TestGetArtwork_TransportFailure(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	server.Close() // refuse all connections

	_, err := GetArtwork(context.Background(), 1, testConfig(server.URL))
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestGetArtworkFromUrl(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/ajax/illust/123", r.URL.Path)
		fmt.Fprintf(w, `{"error": false, "message": "", "body": %s}`, flatTagsDocument)
	}))
	defer server.Close()

	_, err := GetArtworkFromUrl(context.Background(), "not a URL", testConfig(server.URL))
	assert.Error(t, err)

	artwork, err := GetArtworkFromUrl(
		context.Background(),
		"https://www.pixiv.net/en/artworks/123",
		testConfig(server.URL),
	)
	require.NoError(t, err)
	assert.Equal(t, int64(123), artwork.Id)
}
