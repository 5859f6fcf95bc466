package model

// Department represents a curatorial department of the museum.
type Department struct {
	// ID is the numeric department identifier used by the search endpoint.
	ID int

	// Name is the display name, e.g. "Egyptian Art".
	Name string
}
