package pixiv

import (
	"context"
	"fmt"

	"github.com/Serious-senpai/discord-pixiv-uploader/api/pixiv/models"
	"github.com/Serious-senpai/discord-pixiv-uploader/configs"
	"github.com/Serious-senpai/discord-pixiv-uploader/utils"
)

// PartialUser is an artwork author reference
// when only the ID and display name are available.
type PartialUser struct {
	Id   int64
	Name string
}

// Url returns the link to the user's Pixiv page.
func (u *PartialUser) Url() string {
	return fmt.Sprintf("%s/en/users/%d", utils.PIXIV_URL, u.Id)
}

// ArtworksUrl returns the link to the user's Pixiv artworks page.
func (u *PartialUser) ArtworksUrl() string {
	return fmt.Sprintf("%s/en/users/%d/artworks", utils.PIXIV_URL, u.Id)
}

// Fetch upgrades this PartialUser to a full User.
func (u *PartialUser) Fetch(ctx context.Context, config *configs.Config) (*User, error) {
	return GetUser(ctx, u.Id, config)
}

func (u *PartialUser) String() string {
	return fmt.Sprintf("<User id=%d name=%s>", u.Id, u.Name)
}

// User is a full Pixiv user profile.
type User struct {
	Id            int64
	Name          string
	ImageUrl      string
	AcceptRequest bool
}

// Url returns the link to the user's Pixiv page.
func (u *User) Url() string {
	return fmt.Sprintf("%s/en/users/%d", utils.PIXIV_URL, u.Id)
}

func newUser(body *models.UserBody, url string) (*User, error) {
	switch {
	case body.UserId == nil:
		return nil, &MalformedResponseError{Url: url, Field: "userId"}
	case body.Name == nil:
		return nil, &MalformedResponseError{Url: url, Field: "name"}
	case body.ImageBig == nil:
		return nil, &MalformedResponseError{Url: url, Field: "imageBig"}
	}

	return &User{
		Id:            body.UserId.Int64(),
		Name:          *body.Name,
		ImageUrl:      *body.ImageBig,
		AcceptRequest: body.AcceptRequest,
	}, nil
}

// GetUser fetches a Pixiv user profile by ID.
//
// Absence (transport errors, non-200 responses and error-flagged
// envelopes) wraps ErrNotFound; a 200 response with an incomplete body
// is a *MalformedResponseError.
func GetUser(ctx context.Context, userId int64, config *configs.Config) (*User, error) {
	url := fmt.Sprintf("%s/ajax/user/%d", config.PixivUrl, userId)
	envelope := &models.UserEnvelope{}
	if err := callAjax(ctx, url, config, envelope); err != nil {
		return nil, err
	}

	if envelope.Error {
		return nil, fmt.Errorf(
			"%w: user ID %d (%s)",
			ErrNotFound,
			userId,
			envelope.Message,
		)
	}

	body := &models.UserBody{}
	if err := utils.LoadJsonFromBytes(envelope.Body, body); err != nil {
		return nil, &MalformedResponseError{Url: url, Err: err}
	}
	return newUser(body, url)
}

// GetUserFromUrl fetches a Pixiv user profile from a profile page URL.
func GetUserFromUrl(ctx context.Context, url string, config *configs.Config) (*User, error) {
	userId, ok := ParseUserUrl(url)
	if !ok {
		return nil, fmt.Errorf(
			"error %d: invalid user URL %q",
			utils.INPUT_ERROR,
			url,
		)
	}
	return GetUser(ctx, userId, config)
}
