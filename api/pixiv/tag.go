package pixiv

import (
	"fmt"
	"net/url"

	"github.com/Serious-senpai/discord-pixiv-uploader/utils"
)

// Tag is a classification label attached to an artwork.
//
// Both wire shapes of the "tags" field normalise to this type, so
// rendering code never has to care which one the API returned.
type Tag struct {
	Name           string
	TranslatedName string // empty when Pixiv has no English localisation
}

// String returns the display form of the tag:
// the translated name if present, else the canonical name.
func (t Tag) String() string {
	if t.TranslatedName != "" {
		return t.TranslatedName
	}
	return t.Name
}

// Url returns the link to the tag's artwork listing.
func (t Tag) Url() string {
	return fmt.Sprintf(
		"%s/en/tags/%s/artworks",
		utils.PIXIV_URL,
		url.PathEscape(t.Name),
	)
}
