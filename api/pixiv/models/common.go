package models

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strconv"
)

// StringInt is an integer that the ajax API serialises
// either as a JSON number or as a quoted string (e.g. "id": "123").
type StringInt int64

func (v *StringInt) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if len(data) >= 2 && data[0] == '"' && data[len(data)-1] == '"' {
		data = data[1 : len(data)-1]
	}

	parsed, err := strconv.ParseInt(string(data), 10, 64)
	if err != nil {
		return fmt.Errorf("invalid integer value %q: %w", string(data), err)
	}
	*v = StringInt(parsed)
	return nil
}

func (v StringInt) Int64() int64 {
	return int64(v)
}

// TagsField is the polymorphic "tags" field of an artwork document.
//
// The ajax API returns either a structured object with a nested list
// under a "tags" key, or a flat JSON array of tag names. Exactly one of
// Nested and Flat is populated after unmarshalling.
type TagsField struct {
	Nested []TagJson
	Flat   []string

	// IsNested reports which of the two wire shapes was received.
	IsNested bool
}

func (t *TagsField) UnmarshalJSON(data []byte) error {
	trimmed := bytes.TrimSpace(data)
	if len(trimmed) == 0 {
		return fmt.Errorf("empty tags field")
	}

	if trimmed[0] == '{' {
		var nested struct {
			Tags []TagJson `json:"tags"`
		}
		if err := json.Unmarshal(trimmed, &nested); err != nil {
			return err
		}
		t.Nested = nested.Tags
		t.IsNested = true
		return nil
	}

	var flat []string
	if err := json.Unmarshal(trimmed, &flat); err != nil {
		return err
	}
	t.Flat = flat
	t.IsNested = false
	return nil
}
