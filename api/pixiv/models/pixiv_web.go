package models

import "encoding/json"

// ArtworkEnvelope mirrors the response of https://www.pixiv.net/ajax/illust/{id}
//
// Body is kept raw so that a truthy Error flag can be checked
// before any parsing of the artwork document takes place.
type ArtworkEnvelope struct {
	Error   bool            `json:"error"`
	Message string          `json:"message"`
	Body    json.RawMessage `json:"body"`
}

// ArtworkBody is the "body" sub-document of an artwork response.
//
// Required fields are pointers so that a missing field can be told
// apart from a zero value after unmarshalling.
type ArtworkBody struct {
	Id         *StringInt         `json:"id"`
	Title      *string            `json:"title"`
	UserId     *StringInt         `json:"userId"`
	UserName   *string            `json:"userName"`
	XRestrict  *int               `json:"xRestrict"`
	CreateDate *string            `json:"createDate"`
	Tags       *TagsField         `json:"tags"`
	Width      *int               `json:"width"`
	Height     *int               `json:"height"`
	PageCount  *int               `json:"pageCount"`
	Urls       map[string]*string `json:"urls"`
}

// TagJson is a single element of the nested tags form.
type TagJson struct {
	Tag            string `json:"tag"`
	TranslatedName string `json:"translated_name"`
}

type UserEnvelope struct {
	Error   bool            `json:"error"`
	Message string          `json:"message"`
	Body    json.RawMessage `json:"body"`
}

type UserBody struct {
	UserId        *StringInt `json:"userId"`
	Name          *string    `json:"name"`
	ImageBig      *string    `json:"imageBig"`
	AcceptRequest bool       `json:"acceptRequest"`
}
