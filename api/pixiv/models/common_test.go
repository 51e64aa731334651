package models

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStringInt(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected int64
		wantErr  bool
	}{
		{name: "quoted", input: `"123"`, expected: 123},
		{name: "bare", input: `456`, expected: 456},
		{name: "not a number", input: `"abc"`, wantErr: true},
		{name: "float", input: `1.5`, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var value StringInt
			err := json.Unmarshal([]byte(tt.input), &value)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.expected, value.Int64())
		})
	}
}

func TestTagsField_NestedForm(t *testing.T) {
	input := `{
		"authorId": "5",
		"isLocked": false,
		"tags": [
			{"tag": "風景", "translated_name": "scenery"},
			{"tag": "空"}
		]
	}`

	var tags TagsField
	require.NoError(t, json.Unmarshal([]byte(input), &tags))

	assert.True(t, tags.IsNested)
	assert.Nil(t, tags.Flat)
	require.Len(t, tags.Nested, 2)
	assert.Equal(t, "風景", tags.Nested[0].Tag)
	assert.Equal(t, "scenery", tags.Nested[0].TranslatedName)
	assert.Equal(t, "空", tags.Nested[1].Tag)
	assert.Empty(t, tags.Nested[1].TranslatedName)
}

func TestTagsField_FlatForm(t *testing.T) {
	var tags TagsField
	require.NoError(t, json.Unmarshal([]byte(`["calm", "sky"]`), &tags))

	assert.False(t, tags.IsNested)
	assert.Nil(t, tags.Nested)
	assert.Equal(t, []string{"calm", "sky"}, tags.Flat)
}

func TestTagsField_Invalid(t *testing.T) {
	var tags TagsField
	assert.Error(t, json.Unmarshal([]byte(`42`), &tags))
}

func TestArtworkBody_NullableUrls(t *testing.T) {
	input := `{"urls": {"regular": null, "original": "https://i.pximg.net/img.png"}}`

	var body ArtworkBody
	require.NoError(t, json.Unmarshal([]byte(input), &body))

	require.Contains(t, body.Urls, "regular")
	assert.Nil(t, body.Urls["regular"])
	require.NotNil(t, body.Urls["original"])
	assert.Equal(t, "https://i.pximg.net/img.png", *body.Urls["original"])
}
