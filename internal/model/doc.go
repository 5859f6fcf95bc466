// Package model defines the core data structures used throughout
// the metroart application.
//
// # Department
//
// Department is a curatorial area of the museum collection:
//
//	dep := model.Department{ID: 10, Name: "Egyptian Art"}
//
// # Artwork
//
// Artwork is the short record shown in result lists. Every field is always
// populated; missing values are replaced with fixed placeholders:
//
//	art := model.Artwork{ID: 436535, Title: "Wheat Field with Cypresses", Artist: "Vincent van Gogh", Nationality: "Dutch"}
//	fmt.Println(art.DisplayID()) // "436535"
//
// # ArtworkDetail
//
// ArtworkDetail extends Artwork with the fields shown on the detail screen:
//
//	detail.BirthYear      // "1853", or "N/D" when unknown
//	detail.ImageURL       // primary image, small image, or ""
//
// Records are plain values. They hold no references to each other and
// carry no identity beyond the numeric ID.
package model
