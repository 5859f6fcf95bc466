package met

import "strconv"

// SearchFilter holds the parameters of the search endpoint.
type SearchFilter struct {
	// DepartmentID restricts results to one department when set.
	DepartmentID *int

	// Query is the free-text query. The service requires one.
	Query string

	// HighlightOnly limits results to highlighted objects.
	HighlightOnly bool

	// ArtistOrCulture matches Query against artist and culture fields only.
	ArtistOrCulture bool
}

// Params returns the query string parameters for the filter. Boolean
// flags are only sent when set.
func (f SearchFilter) Params() map[string]string {
	params := map[string]string{"q": f.Query}
	if f.DepartmentID != nil {
		params["departmentId"] = strconv.Itoa(*f.DepartmentID)
	}
	if f.HighlightOnly {
		params["isHighlight"] = "true"
	}
	if f.ArtistOrCulture {
		params["artistOrCulture"] = "true"
	}
	return params
}
