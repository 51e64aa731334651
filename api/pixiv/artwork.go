package pixiv

import (
	"fmt"
	"time"

	"github.com/Serious-senpai/discord-pixiv-uploader/api/discord"
	"github.com/Serious-senpai/discord-pixiv-uploader/api/pixiv/models"
	"github.com/Serious-senpai/discord-pixiv-uploader/utils"
)

// EMBED_COLOUR is the accent colour of every artwork embed.
const EMBED_COLOUR = 0x2ECC71

// createDate usually carries a zone offset, but not always.
var createDateLayouts = [...]string{
	time.RFC3339,
	"2006-01-02T15:04:05",
}

// ImageUrlResolver supplies a replacement image URL for an artwork whose
// "regular" entry is null. The interactive session prompts the operator;
// non-interactive callers pass nil to fail immediately instead.
type ImageUrlResolver func(artwork *Artwork) (string, error)

// Artwork is the normalised representation of a fetched artwork.
//
// Immutable once constructed.
type Artwork struct {
	Id         int64
	Title      string
	Author     *PartialUser
	Nsfw       bool
	CreatedAt  time.Time
	Tags       []Tag
	Width      int
	Height     int
	PagesCount int

	// ImageUrls maps a size name ("thumb", "regular", "original", ...)
	// to its URL. Values can be null for any key.
	ImageUrls map[string]*string
}

func parseCreateDate(value string) (time.Time, error) {
	var lastErr error
	for _, layout := range createDateLayouts {
		parsed, err := time.Parse(layout, value)
		if err == nil {
			return parsed, nil
		}
		lastErr = err
	}
	return time.Time{}, lastErr
}

// newArtwork builds an Artwork from the "body" sub-document of an
// artwork response. Any missing required field or unparsable createDate
// fails with a *MalformedResponseError.
func newArtwork(body *models.ArtworkBody, url string) (*Artwork, error) {
	switch {
	case body.Id == nil:
		return nil, &MalformedResponseError{Url: url, Field: "id"}
	case body.Title == nil:
		return nil, &MalformedResponseError{Url: url, Field: "title"}
	case body.UserId == nil:
		return nil, &MalformedResponseError{Url: url, Field: "userId"}
	case body.UserName == nil:
		return nil, &MalformedResponseError{Url: url, Field: "userName"}
	case body.XRestrict == nil:
		return nil, &MalformedResponseError{Url: url, Field: "xRestrict"}
	case body.CreateDate == nil:
		return nil, &MalformedResponseError{Url: url, Field: "createDate"}
	case body.Tags == nil:
		return nil, &MalformedResponseError{Url: url, Field: "tags"}
	case body.Width == nil:
		return nil, &MalformedResponseError{Url: url, Field: "width"}
	case body.Height == nil:
		return nil, &MalformedResponseError{Url: url, Field: "height"}
	case body.PageCount == nil:
		return nil, &MalformedResponseError{Url: url, Field: "pageCount"}
	case body.Urls == nil:
		return nil, &MalformedResponseError{Url: url, Field: "urls"}
	}

	createdAt, err := parseCreateDate(*body.CreateDate)
	if err != nil {
		return nil, &MalformedResponseError{Url: url, Err: err}
	}

	// normalise both wire shapes of the tags field into []Tag
	var tags []Tag
	if body.Tags.IsNested {
		for _, tagJson := range body.Tags.Nested {
			tags = append(tags, Tag{
				Name:           tagJson.Tag,
				TranslatedName: tagJson.TranslatedName,
			})
		}
	} else {
		for _, name := range body.Tags.Flat {
			tags = append(tags, Tag{Name: name})
		}
	}

	return &Artwork{
		Id:    body.Id.Int64(),
		Title: *body.Title,
		Author: &PartialUser{
			Id:   body.UserId.Int64(),
			Name: *body.UserName,
		},
		Nsfw:       *body.XRestrict != 0,
		CreatedAt:  createdAt,
		Tags:       tags,
		Width:      *body.Width,
		Height:     *body.Height,
		PagesCount: *body.PageCount,
		ImageUrls:  body.Urls,
	}, nil
}

// Url returns the canonical link to the artwork page.
func (a *Artwork) Url() string {
	return fmt.Sprintf("%s/en/artworks/%d", utils.PIXIV_URL, a.Id)
}

// GetImageUrl resolves the image URL to attach to an outgoing message.
//
// The "regular" entry is returned verbatim when present and non-null.
// Otherwise the resolver is asked for a replacement; with a nil resolver
// the degraded data surfaces as ErrMissingImageUrl.
func (a *Artwork) GetImageUrl(resolver ImageUrlResolver) (string, error) {
	if url, ok := a.ImageUrls["regular"]; ok && url != nil {
		return *url, nil
	}

	if resolver == nil {
		return "", fmt.Errorf("%w for artwork %d", ErrMissingImageUrl, a.Id)
	}
	return resolver(a)
}

// CreateEmbed renders the artwork into a Discord embed referencing an
// attachment by the given file name (the image itself is uploaded
// separately as part of the multipart message).
//
// Pure transformation, no I/O. The field order is fixed.
func (a *Artwork) CreateEmbed(attachmentName string) *discord.Embed {
	if attachmentName == "" {
		attachmentName = "image.png"
	}

	embed := &discord.Embed{
		Title:     a.Title,
		Url:       a.Url(),
		Color:     EMBED_COLOUR,
		Timestamp: a.CreatedAt.Format(time.RFC3339),
		Image: &discord.EmbedImage{
			Url: "attachment://" + attachmentName,
		},
	}

	if len(a.Tags) > 0 {
		tagLinks := make([]string, 0, len(a.Tags))
		for _, tag := range a.Tags {
			tagLinks = append(
				tagLinks,
				fmt.Sprintf("[%s](%s)", tag.String(), tag.Url()),
			)
		}
		embed.AddField(
			"Tags",
			utils.CombineStringsWithComma(tagLinks),
			false,
		)
	}

	embed.AddField("Artwork ID", fmt.Sprintf("%d", a.Id), true)
	embed.AddField(
		"Author",
		fmt.Sprintf(
			"[%s](%s)",
			discord.EscapeMarkdown(a.Author.Name),
			a.Author.Url(),
		),
		true,
	)
	embed.AddField("Size", fmt.Sprintf("%d x %d", a.Width, a.Height), true)
	embed.AddField("Pages count", fmt.Sprintf("%d", a.PagesCount), true)
	embed.AddField("Artwork link", a.Url(), false)
	return embed
}

func (a *Artwork) String() string {
	return fmt.Sprintf(
		"<Artwork title=%s id=%d author=%s>",
		a.Title,
		a.Id,
		a.Author,
	)
}
