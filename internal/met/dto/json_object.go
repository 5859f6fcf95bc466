package dto

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/handiism/metroart/internal/model"
)

// FlexString is a text field that the service sends either as a JSON
// string or as a number (artistBeginDate is "1853" on most objects and
// 1853 on a few).
type FlexString struct {
	Value string
}

// UnmarshalJSON accepts strings and numbers.
func (fs *FlexString) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if len(data) == 0 {
		return nil
	}

	switch data[0] {
	case '"':
		return json.Unmarshal(data, &fs.Value)
	case '-', '0', '1', '2', '3', '4', '5', '6', '7', '8', '9':
		var n json.Number
		if err := json.Unmarshal(data, &n); err != nil {
			return err
		}
		fs.Value = n.String()
		return nil
	}

	return fmt.Errorf("unsupported value for text field: %s", data)
}

// JSONObject represents the response of the objects/{id} endpoint.
//
// Every field is a pointer so that absent (or null) fields can be told
// apart from empty strings.
type JSONObject struct {
	ObjectID          *int        `json:"objectID"`
	Title             *FlexString `json:"title"`
	ArtistDisplayName *FlexString `json:"artistDisplayName"`
	ArtistNationality *FlexString `json:"artistNationality"`
	ArtistBeginDate   *FlexString `json:"artistBeginDate"`
	ArtistEndDate     *FlexString `json:"artistEndDate"`
	Classification    *FlexString `json:"classification"`
	ObjectDate        *FlexString `json:"objectDate"`
	PrimaryImage      *FlexString `json:"primaryImage"`
	PrimaryImageSmall *FlexString `json:"primaryImageSmall"`
}

// ToArtwork converts JSONObject to a model.Artwork.
//
// Absent fields get their placeholder; present values are kept verbatim,
// including empty strings.
func (jo *JSONObject) ToArtwork() model.Artwork {
	id := 0
	if jo.ObjectID != nil {
		id = *jo.ObjectID
	}

	return model.Artwork{
		ID:          id,
		Title:       orDefault(jo.Title, model.UntitledPlaceholder),
		Artist:      orDefault(jo.ArtistDisplayName, model.UnknownArtist),
		Nationality: orDefault(jo.ArtistNationality, model.UnknownNationality),
	}
}

// ToDetail converts JSONObject to a model.ArtworkDetail.
//
// Blank values are treated like missing ones. The image URL falls back
// from the primary image to the small one.
func (jo *JSONObject) ToDetail() model.ArtworkDetail {
	art := jo.ToArtwork()
	art.Title = orBlank(jo.Title, model.UntitledPlaceholder)
	art.Artist = orBlank(jo.ArtistDisplayName, model.UnknownArtist)
	art.Nationality = orBlank(jo.ArtistNationality, model.UnknownNationality)

	imageURL := orBlank(jo.PrimaryImage, "")
	if imageURL == "" {
		imageURL = orBlank(jo.PrimaryImageSmall, "")
	}

	return model.ArtworkDetail{
		Artwork:        art,
		BirthYear:      orBlank(jo.ArtistBeginDate, model.NotAvailable),
		DeathYear:      orBlank(jo.ArtistEndDate, model.NotAvailable),
		Classification: orBlank(jo.Classification, model.NotAvailable),
		CreationDate:   orBlank(jo.ObjectDate, model.NotAvailable),
		ImageURL:       imageURL,
	}
}

func orDefault(fs *FlexString, def string) string {
	if fs == nil {
		return def
	}
	return fs.Value
}

func orBlank(fs *FlexString, def string) string {
	if fs == nil || strings.TrimSpace(fs.Value) == "" {
		return def
	}
	return strings.TrimSpace(fs.Value)
}
