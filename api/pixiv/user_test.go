package pixiv

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetUser_Success(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/ajax/user/5", r.URL.Path)
		fmt.Fprint(w, `{"error": false, "message": "", "body": {
			"userId": "5",
			"name": "Ann",
			"imageBig": "https://i.pximg.net/profile.png",
			"acceptRequest": true
		}}`)
	}))
	defer server.Close()

	user, err := GetUser(context.Background(), 5, testConfig(server.URL))
	require.NoError(t, err)
	assert.Equal(t, int64(5), user.Id)
	assert.Equal(t, "Ann", user.Name)
	assert.Equal(t, "https://i.pximg.net/profile.png", user.ImageUrl)
	assert.True(t, user.AcceptRequest)
	assert.Equal(t, "https://www.pixiv.net/en/users/5", user.Url())
}

func TestGetUser_NotFound(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, `{"error": true, "message": "User does not exist.", "body": null}`)
	}))
	defer server.Close()

	_, err := GetUser(context.Background(), 5, testConfig(server.URL))
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestGetUser_MissingField(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, `{"error": false, "message": "", "body": {"userId": "5", "imageBig": "x"}}`)
	}))
	defer server.Close()

	_, err := GetUser(context.Background(), 5, testConfig(server.URL))
	var malformedErr *MalformedResponseError
	require.ErrorAs(t, err, &malformedErr)
	assert.Equal(t, "name", malformedErr.Field)
}

func TestPartialUser_Fetch(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/ajax/user/5", r.URL.Path)
		fmt.Fprint(w, `{"error": false, "message": "", "body": {
			"userId": 5, "name": "Ann", "imageBig": "x", "acceptRequest": false
		}}`)
	}))
	defer server.Close()

	author := &PartialUser{Id: 5, Name: "Ann"}
	user, err := author.Fetch(context.Background(), testConfig(server.URL))
	require.NoError(t, err)
	assert.Equal(t, author.Id, user.Id)
	assert.False(t, user.AcceptRequest)
}

func TestGetUserFromUrl_Invalid(t *testing.T) {
	_, err := GetUserFromUrl(context.Background(), "nope", testConfig("http://127.0.0.1:1"))
	assert.Error(t, err)
	assert.NotErrorIs(t, err, ErrNotFound)
}
