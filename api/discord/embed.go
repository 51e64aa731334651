package discord

import "strings"

// Embed is the JSON shape of a Discord message embed,
// see https://discord.com/developers/docs/resources/channel#embed-object
type Embed struct {
	Title     string        `json:"title,omitempty"`
	Url       string        `json:"url,omitempty"`
	Color     int           `json:"color,omitempty"`
	Timestamp string        `json:"timestamp,omitempty"`
	Image     *EmbedImage   `json:"image,omitempty"`
	Fields    []*EmbedField `json:"fields,omitempty"`
}

type EmbedImage struct {
	Url string `json:"url"`
}

type EmbedField struct {
	Name   string `json:"name"`
	Value  string `json:"value"`
	Inline bool   `json:"inline"`
}

// AddField appends a field to the embed, preserving insertion order.
func (e *Embed) AddField(name, value string, inline bool) *Embed {
	e.Fields = append(e.Fields, &EmbedField{
		Name:   name,
		Value:  value,
		Inline: inline,
	})
	return e
}

var markdownEscaper = strings.NewReplacer(
	`\`, `\\`,
	"`", "\\`",
	"*", `\*`,
	"_", `\_`,
	"~", `\~`,
	"|", `\|`,
)

// EscapeMarkdown escapes Discord markdown special characters so that
// arbitrary text (e.g. an author name) renders literally.
func EscapeMarkdown(text string) string {
	return markdownEscaper.Replace(text)
}
