package model

import (
	"strconv"
	"strings"

	"golang.org/x/text/cases"
)

// Placeholders used when a field is missing from the collection data.
const (
	UntitledPlaceholder = "Sin título"
	UnknownArtist       = "Desconocido"
	UnknownNationality  = "Desconocida"
	MissingID           = "N/A"
	NotAvailable        = "N/D"
)

// Artwork represents a catalogued object of the collection.
//
// Artwork is built from a single object response. Fields absent from the
// response are filled with the placeholders above, so no field is ever
// left unset. A field the service sent as an empty string stays empty.
//
// Example:
//
//	art := Artwork{ID: 0, Title: UntitledPlaceholder, Artist: UnknownArtist, Nationality: UnknownNationality}
//	art.DisplayID()      // "N/A"
//	art.HasNationality() // false
type Artwork struct {
	// ID is the museum object ID. Zero means the response had no objectID.
	ID int

	// Title is the artwork title.
	Title string

	// Artist is the artist display name.
	Artist string

	// Nationality is the artist nationality as recorded by the museum.
	Nationality string
}

// DisplayID returns the object ID as text, or "N/A" when it is unknown.
func (a Artwork) DisplayID() string {
	if a.ID == 0 {
		return MissingID
	}
	return strconv.Itoa(a.ID)
}

// HasNationality reports whether the artwork carries a real nationality
// value rather than an empty string or the placeholder.
func (a Artwork) HasNationality() bool {
	n := strings.TrimSpace(a.Nationality)
	return n != "" && n != UnknownNationality
}

// NationalityMatches reports whether query is a case-insensitive substring
// of the nationality. Artworks without a nationality never match.
func (a Artwork) NationalityMatches(query string) bool {
	if !a.HasNationality() {
		return false
	}
	return containsFold(a.Nationality, query)
}

// ArtistMatches reports whether query is a case-insensitive substring of
// the artist name. Artworks with no known artist never match.
func (a Artwork) ArtistMatches(query string) bool {
	artist := strings.TrimSpace(a.Artist)
	if artist == "" || artist == UnknownArtist {
		return false
	}
	return containsFold(artist, query)
}

func containsFold(s, substr string) bool {
	fold := cases.Fold()
	return strings.Contains(fold.String(s), fold.String(strings.TrimSpace(substr)))
}

// ArtworkDetail is the full record shown on the detail screen.
//
// Unlike Artwork, blank values are normalised as well as missing ones:
// every text field holds either real data or a placeholder ("N/D" for the
// extended fields). ImageURL is the only field that may be empty.
type ArtworkDetail struct {
	Artwork

	// BirthYear is the artist begin date.
	BirthYear string

	// DeathYear is the artist end date.
	DeathYear string

	// Classification is the museum classification, e.g. "Paintings".
	Classification string

	// CreationDate is the free-text object date, e.g. "ca. 1889".
	CreationDate string

	// ImageURL is the primary image, falling back to the small image.
	// Empty when the object has no public image.
	ImageURL string
}

// HasImage reports whether an image URL is available.
func (d ArtworkDetail) HasImage() bool {
	return d.ImageURL != ""
}
