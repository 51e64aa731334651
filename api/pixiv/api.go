package pixiv

import (
	"context"
	"fmt"

	"github.com/Serious-senpai/discord-pixiv-uploader/api/pixiv/models"
	"github.com/Serious-senpai/discord-pixiv-uploader/configs"
	"github.com/Serious-senpai/discord-pixiv-uploader/request"
	"github.com/Serious-senpai/discord-pixiv-uploader/utils"
)

// callAjax performs a single GET against an ajax endpoint and unmarshals
// the response envelope. Transport failures and non-200 statuses both
// collapse into an error wrapping ErrNotFound.
func callAjax(ctx context.Context, url string, config *configs.Config, envelope any) error {
	res, err := request.CallRequest(
		&request.RequestArgs{
			Url:       url,
			Method:    "GET",
			Headers:   GetPixivRequestHeaders(),
			UserAgent: config.UserAgent,
			Timeout:   config.ApiTimeout,
			Context:   ctx,
		},
	)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrNotFound, err)
	}

	if res.StatusCode != 200 {
		res.Body.Close()
		return fmt.Errorf(
			"%w: %s response from %s",
			ErrNotFound,
			res.Status,
			url,
		)
	}

	if err := utils.LoadJsonFromResponse(res, envelope); err != nil {
		return &MalformedResponseError{Url: url, Err: err}
	}
	return nil
}

// GetArtwork fetches an artwork by ID from the ajax API.
//
// There is exactly one attempt, the caller decides whether to retry.
// Absence (transport failure, non-200 status or an error-flagged
// envelope) wraps ErrNotFound; a 200 envelope whose body is missing a
// required field or carries an unparsable createDate surfaces as a
// *MalformedResponseError instead, so callers never mistake a garbage
// response for a nonexistent artwork.
func GetArtwork(ctx context.Context, artworkId int64, config *configs.Config) (*Artwork, error) {
	url := fmt.Sprintf("%s/ajax/illust/%d", config.PixivUrl, artworkId)
	envelope := &models.ArtworkEnvelope{}
	if err := callAjax(ctx, url, config, envelope); err != nil {
		return nil, err
	}

	if envelope.Error {
		return nil, fmt.Errorf(
			"%w: artwork ID %d (%s)",
			ErrNotFound,
			artworkId,
			envelope.Message,
		)
	}

	body := &models.ArtworkBody{}
	if err := utils.LoadJsonFromBytes(envelope.Body, body); err != nil {
		return nil, &MalformedResponseError{Url: url, Err: err}
	}
	return newArtwork(body, url)
}

// GetArtworkFromUrl fetches an artwork from an artwork page URL.
func GetArtworkFromUrl(ctx context.Context, url string, config *configs.Config) (*Artwork, error) {
	artworkId, ok := ParseArtworkUrl(url)
	if !ok {
		return nil, fmt.Errorf(
			"error %d: invalid artwork URL %q",
			utils.INPUT_ERROR,
			url,
		)
	}
	return GetArtwork(ctx, artworkId, config)
}
