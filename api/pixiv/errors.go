package pixiv

import (
	"errors"
	"fmt"
)

var (
	// ErrNotFound is wrapped by every absence outcome of GetArtwork and GetUser:
	// transport failures, non-200 responses and error-flagged envelopes.
	ErrNotFound = errors.New("no such entry on Pixiv")

	// ErrMissingImageUrl is returned by Artwork.GetImageUrl when the "regular"
	// image URL is null and no resolver was supplied.
	ErrMissingImageUrl = errors.New("no image URL available")
)

// MalformedResponseError reports a 200 response whose body could not be
// turned into an Artwork or User. Distinct from ErrNotFound: the entry
// exists, but the provider returned garbage.
type MalformedResponseError struct {
	Url   string
	Field string
	Err   error
}

func (e *MalformedResponseError) Error() string {
	if e.Field != "" {
		return fmt.Sprintf(
			"malformed response from %s: missing required field %q",
			e.Url,
			e.Field,
		)
	}
	return fmt.Sprintf("malformed response from %s: %v", e.Url, e.Err)
}

func (e *MalformedResponseError) Unwrap() error {
	return e.Err
}

// NsfwArtworkError is returned when an NSFW artwork is to be
// sent while NSFW content is not allowed.
type NsfwArtworkError struct {
	Artwork *Artwork
}

func (e *NsfwArtworkError) Error() string {
	return fmt.Sprintf("NSFW artwork with ID %d", e.Artwork.Id)
}
