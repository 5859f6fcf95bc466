package browse

import (
	"strings"

	"github.com/handiism/metroart/internal/model"
	"golang.org/x/text/cases"
	"golang.org/x/text/collate"
	"golang.org/x/text/language"
)

var staticNationalities = []string{
	"American",
	"Argentine",
	"Australian",
	"Austrian",
	"Belgian",
	"Brazilian",
	"British",
	"Canadian",
	"Chilean",
	"Chinese",
	"Colombian",
	"Cuban",
	"Czech",
	"Danish",
	"Dutch",
	"Egyptian",
	"English",
	"Finnish",
	"Flemish",
	"French",
	"German",
	"Greek",
	"Hungarian",
	"Indian",
	"Iranian",
	"Irish",
	"Italian",
	"Japanese",
	"Korean",
	"Mexican",
	"Netherlandish",
	"Norwegian",
	"Peruvian",
	"Polish",
	"Portuguese",
	"Russian",
	"Scottish",
	"Spanish",
	"Swedish",
	"Swiss",
	"Turkish",
	"Venezuelan",
}

// StaticNationalities returns a copy of the built-in nationality list.
func StaticNationalities() []string {
	return append([]string(nil), staticNationalities...)
}

// DeriveNationalities builds a catalog from the nationality fields of
// artworks: empty values and the placeholder are dropped, duplicates are
// merged ignoring case, values are title-cased and sorted alphabetically.
func DeriveNationalities(artworks []model.Artwork) []string {
	fold := cases.Fold()
	title := cases.Title(language.Und)

	seen := make(map[string]struct{})
	var nationalities []string
	for _, a := range artworks {
		if !a.HasNationality() {
			continue
		}
		value := strings.TrimSpace(a.Nationality)
		key := fold.String(value)
		if _, ok := seen[key]; ok {
			continue
		}
		seen[key] = struct{}{}
		nationalities = append(nationalities, title.String(value))
	}

	collate.New(language.Spanish).SortStrings(nationalities)
	return nationalities
}
