package dto

// JSONSearch is the response of the search endpoint.
//
// The service returns "objectIDs": null when nothing matches, and Total may
// be larger than len(ObjectIDs).
type JSONSearch struct {
	ObjectIDs []int `json:"objectIDs"`
	Total     int   `json:"total"`
}

// IDs returns the object IDs, never nil.
func (js JSONSearch) IDs() []int {
	if js.ObjectIDs == nil {
		return []int{}
	}
	return js.ObjectIDs
}
