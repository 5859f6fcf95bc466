package met

import (
	"context"
	"fmt"
	"time"

	"github.com/handiism/metroart/internal/http"
	"github.com/handiism/metroart/internal/met/dto"
	"github.com/handiism/metroart/internal/model"
	lru "github.com/hashicorp/golang-lru/v2/expirable"
)

// Endpoint paths relative to the API base URL.
const (
	departmentsEndpoint = "departments"
	searchEndpoint      = "search"
	objectsEndpoint     = "objects"
)

// Fetcher is the part of the HTTP client used by API.
type Fetcher interface {
	Fetch(ctx context.Context, endpoint string, params map[string]string) http.Payload
}

// CacheOptions configures the object cache. A Size of zero disables it.
type CacheOptions struct {
	Size int
	TTL  time.Duration
}

// API exposes the collection endpoints.
type API struct {
	client  Fetcher
	objects *lru.LRU[int, http.Payload]
}

// NewAPI creates an API on top of the given client.
func NewAPI(client Fetcher, cache CacheOptions) *API {
	api := &API{client: client}
	if cache.Size > 0 {
		api.objects = lru.NewLRU[int, http.Payload](cache.Size, nil, cache.TTL)
	}
	return api
}

// Departments returns the departments in service order. An unavailable
// service yields an empty slice.
func (a *API) Departments(ctx context.Context) []model.Department {
	var resp dto.JSONDepartments
	if err := a.client.Fetch(ctx, departmentsEndpoint, nil).Decode(&resp); err != nil {
		return []model.Department{}
	}
	return resp.ToDepartments()
}

// Search returns the matching object IDs and the total reported by the
// service. The total may exceed the number of IDs.
func (a *API) Search(ctx context.Context, filter SearchFilter) ([]int, int) {
	var resp dto.JSONSearch
	if err := a.client.Fetch(ctx, searchEndpoint, filter.Params()).Decode(&resp); err != nil {
		return []int{}, 0
	}
	return resp.IDs(), resp.Total
}

// Artwork fetches one object as a list record.
func (a *API) Artwork(ctx context.Context, id int) (model.Artwork, bool) {
	obj, ok := a.object(ctx, id)
	if !ok {
		return model.Artwork{}, false
	}
	return obj.ToArtwork(), true
}

// ArtworkDetail fetches one object with its extended fields.
func (a *API) ArtworkDetail(ctx context.Context, id int) (model.ArtworkDetail, bool) {
	obj, ok := a.object(ctx, id)
	if !ok {
		return model.ArtworkDetail{}, false
	}
	return obj.ToDetail(), true
}

// object returns the decoded object, going through the cache. Only
// non-empty payloads are cached.
func (a *API) object(ctx context.Context, id int) (*dto.JSONObject, bool) {
	payload, cached := a.cached(id)
	if !cached {
		payload = a.client.Fetch(ctx, fmt.Sprintf("%s/%d", objectsEndpoint, id), nil)
		if payload.Empty() {
			return nil, false
		}
	}

	var obj dto.JSONObject
	if err := payload.Decode(&obj); err != nil {
		return nil, false
	}

	if !cached && a.objects != nil {
		a.objects.Add(id, payload)
	}
	return &obj, true
}

func (a *API) cached(id int) (http.Payload, bool) {
	if a.objects == nil {
		return nil, false
	}
	return a.objects.Get(id)
}
