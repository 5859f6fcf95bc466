package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestArtwork_DisplayID(t *testing.T) {
	tests := []struct {
		id   int
		want string
	}{
		{436535, "436535"},
		{1, "1"},
		{0, "N/A"},
	}

	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			assert.Equal(t, tt.want, Artwork{ID: tt.id}.DisplayID())
		})
	}
}

func TestArtwork_HasNationality(t *testing.T) {
	tests := []struct {
		nationality string
		want        bool
	}{
		{"French", true},
		{"", false},
		{"   ", false},
		{UnknownNationality, false},
	}

	for _, tt := range tests {
		t.Run(tt.nationality, func(t *testing.T) {
			assert.Equal(t, tt.want, Artwork{Nationality: tt.nationality}.HasNationality())
		})
	}
}

func TestArtwork_NationalityMatches(t *testing.T) {
	french := Artwork{Nationality: "French"}
	frenchAmerican := Artwork{Nationality: "french-American"}

	assert.True(t, french.NationalityMatches("french"))
	assert.True(t, frenchAmerican.NationalityMatches("french"))
	assert.False(t, french.NationalityMatches("American"))
	assert.True(t, frenchAmerican.NationalityMatches("American"))
	assert.True(t, frenchAmerican.NationalityMatches("  AMERICAN "))

	assert.False(t, Artwork{Nationality: ""}.NationalityMatches(""))
	assert.False(t, Artwork{Nationality: UnknownNationality}.NationalityMatches("desconocida"))
}

func TestArtwork_NationalityMatches_Unicode(t *testing.T) {
	art := Artwork{Nationality: "Español"}
	assert.True(t, art.NationalityMatches("ESPAÑOL"))
	assert.True(t, art.NationalityMatches("pañ"))
}

func TestArtwork_ArtistMatches(t *testing.T) {
	art := Artwork{Artist: "Vincent van Gogh"}

	assert.True(t, art.ArtistMatches("van gogh"))
	assert.True(t, art.ArtistMatches("VINCENT"))
	assert.False(t, art.ArtistMatches("Monet"))
	assert.False(t, Artwork{Artist: UnknownArtist}.ArtistMatches("desconocido"))
	assert.False(t, Artwork{Artist: ""}.ArtistMatches(""))
}

func TestArtworkDetail_HasImage(t *testing.T) {
	assert.True(t, ArtworkDetail{ImageURL: "https://images.metmuseum.org/a.jpg"}.HasImage())
	assert.False(t, ArtworkDetail{}.HasImage())
}
