package pixiv

import (
	"regexp"
	"strconv"

	"github.com/Serious-senpai/discord-pixiv-uploader/utils"
)

var (
	artworkUrlPattern = regexp.MustCompile(`^https://www\.pixiv\.net/(?:en/)?artworks/(\d+)/?.*$`)
	userUrlPattern    = regexp.MustCompile(`^https://www\.pixiv\.net/(?:en/)?users/(\d+)/?.*$`)
)

// Returns a defined request header needed to communicate with Pixiv's API
func GetPixivRequestHeaders() map[string]string {
	return map[string]string{
		"Origin":          utils.PIXIV_URL,
		"Referer":         utils.PIXIV_URL,
		"Accept-Language": "en-US,en;q=0.9",
	}
}

// ParseArtworkUrl extracts the artwork ID from an artwork page URL.
func ParseArtworkUrl(url string) (int64, bool) {
	match := artworkUrlPattern.FindStringSubmatch(url)
	if match == nil {
		return 0, false
	}

	id, err := strconv.ParseInt(match[1], 10, 64)
	if err != nil {
		return 0, false
	}
	return id, true
}

// ParseUserUrl extracts the user ID from a profile page URL.
func ParseUserUrl(url string) (int64, bool) {
	match := userUrlPattern.FindStringSubmatch(url)
	if match == nil {
		return 0, false
	}

	id, err := strconv.ParseInt(match[1], 10, 64)
	if err != nil {
		return 0, false
	}
	return id, true
}
