package met

import (
	"context"
	"encoding/json"
	"fmt"
	nethttp "net/http"
	"net/http/httptest"
	"sync"
	"testing"
	"time"

	"github.com/handiism/metroart/internal/http"
	"github.com/handiism/metroart/internal/model"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeFetcher serves canned JSON bodies keyed by endpoint and records calls.
type fakeFetcher struct {
	mu        sync.Mutex
	responses map[string]string
	calls     map[string]int
	params    map[string]map[string]string
}

func newFakeFetcher(responses map[string]string) *fakeFetcher {
	return &fakeFetcher{
		responses: responses,
		calls:     make(map[string]int),
		params:    make(map[string]map[string]string),
	}
}

func (f *fakeFetcher) Fetch(_ context.Context, endpoint string, params map[string]string) http.Payload {
	f.mu.Lock()
	defer f.mu.Unlock()

	f.calls[endpoint]++
	f.params[endpoint] = params

	raw, ok := f.responses[endpoint]
	if !ok {
		return http.Payload{}
	}
	var p http.Payload
	if err := json.Unmarshal([]byte(raw), &p); err != nil || p == nil {
		return http.Payload{}
	}
	return p
}

func TestAPI_Departments(t *testing.T) {
	fetcher := newFakeFetcher(map[string]string{
		"departments": `{"departments": [{"departmentId": 1, "displayName": "Egyptian Art"}, {"departmentId": 2, "displayName": "Arms and Armor"}]}`,
	})
	api := NewAPI(fetcher, CacheOptions{})

	got := api.Departments(context.Background())
	assert.Equal(t, []model.Department{{ID: 1, Name: "Egyptian Art"}, {ID: 2, Name: "Arms and Armor"}}, got)
}

func TestAPI_Departments_Unavailable(t *testing.T) {
	api := NewAPI(newFakeFetcher(nil), CacheOptions{})

	got := api.Departments(context.Background())
	assert.NotNil(t, got)
	assert.Empty(t, got)
}

func TestAPI_Departments_MissingField(t *testing.T) {
	api := NewAPI(newFakeFetcher(map[string]string{"departments": `{"message": "ok"}`}), CacheOptions{})
	assert.Empty(t, api.Departments(context.Background()))
}

func TestAPI_Search(t *testing.T) {
	fetcher := newFakeFetcher(map[string]string{
		"search": `{"total": 50, "objectIDs": [10, 11, 12]}`,
	})
	api := NewAPI(fetcher, CacheOptions{})

	dep := 1
	ids, total := api.Search(context.Background(), SearchFilter{DepartmentID: &dep, Query: "art", HighlightOnly: true})

	assert.Equal(t, []int{10, 11, 12}, ids)
	assert.Equal(t, 50, total)
	assert.Equal(t, map[string]string{"q": "art", "departmentId": "1", "isHighlight": "true"}, fetcher.params["search"])
}

func TestAPI_Search_NullIDs(t *testing.T) {
	api := NewAPI(newFakeFetcher(map[string]string{"search": `{"total": 0, "objectIDs": null}`}), CacheOptions{})

	ids, total := api.Search(context.Background(), SearchFilter{Query: "nothing"})
	assert.Equal(t, []int{}, ids)
	assert.Equal(t, 0, total)
}

func TestSearchFilter_Params(t *testing.T) {
	assert.Equal(t, map[string]string{"q": "French"}, SearchFilter{Query: "French"}.Params())
	assert.Equal(t,
		map[string]string{"q": "Monet", "artistOrCulture": "true"},
		SearchFilter{Query: "Monet", ArtistOrCulture: true}.Params())
}

func TestAPI_Artwork(t *testing.T) {
	fetcher := newFakeFetcher(map[string]string{
		"objects/10": `{"objectID": 10, "title": "Statuette", "artistDisplayName": "", "artistNationality": "Egyptian"}`,
	})
	api := NewAPI(fetcher, CacheOptions{})

	art, ok := api.Artwork(context.Background(), 10)
	require.True(t, ok)
	assert.Equal(t, model.Artwork{ID: 10, Title: "Statuette", Artist: "", Nationality: "Egyptian"}, art)

	_, ok = api.Artwork(context.Background(), 11)
	assert.False(t, ok)
}

func TestAPI_ArtworkDetail(t *testing.T) {
	fetcher := newFakeFetcher(map[string]string{
		"objects/10": `{"objectID": 10, "title": "Statuette", "artistDisplayName": "", "objectDate": "ca. 1390 B.C.", "primaryImageSmall": "https://images.metmuseum.org/s.jpg"}`,
	})
	api := NewAPI(fetcher, CacheOptions{})

	detail, ok := api.ArtworkDetail(context.Background(), 10)
	require.True(t, ok)
	assert.Equal(t, model.UnknownArtist, detail.Artist)
	assert.Equal(t, "ca. 1390 B.C.", detail.CreationDate)
	assert.Equal(t, "https://images.metmuseum.org/s.jpg", detail.ImageURL)
}

func TestAPI_ObjectCache(t *testing.T) {
	fetcher := newFakeFetcher(map[string]string{
		"objects/10": `{"objectID": 10, "title": "Statuette"}`,
	})
	api := NewAPI(fetcher, CacheOptions{Size: 8, TTL: time.Minute})

	_, ok := api.Artwork(context.Background(), 10)
	require.True(t, ok)
	_, ok = api.ArtworkDetail(context.Background(), 10)
	require.True(t, ok)

	assert.Equal(t, 1, fetcher.calls["objects/10"])

	// Failures are not cached.
	_, ok = api.Artwork(context.Background(), 99)
	assert.False(t, ok)
	_, ok = api.Artwork(context.Background(), 99)
	assert.False(t, ok)
	assert.Equal(t, 2, fetcher.calls["objects/99"])
}

func TestAPI_ObjectCacheDisabled(t *testing.T) {
	fetcher := newFakeFetcher(map[string]string{
		"objects/10": `{"objectID": 10}`,
	})
	api := NewAPI(fetcher, CacheOptions{})

	api.Artwork(context.Background(), 10)
	api.Artwork(context.Background(), 10)
	assert.Equal(t, 2, fetcher.calls["objects/10"])
}

func TestAPI_WithHTTPClient(t *testing.T) {
	ts := httptest.NewServer(nethttp.HandlerFunc(func(w nethttp.ResponseWriter, r *nethttp.Request) {
		switch r.URL.Path {
		case "/departments":
			fmt.Fprint(w, `{"departments": [{"departmentId": 11, "displayName": "European Paintings"}]}`)
		case "/search":
			if r.URL.Query().Get("departmentId") != "11" {
				fmt.Fprint(w, `{"total": 0, "objectIDs": null}`)
				return
			}
			fmt.Fprint(w, `{"total": 1, "objectIDs": [436535]}`)
		case "/objects/436535":
			fmt.Fprint(w, `{"objectID": 436535, "title": "Wheat Field with Cypresses", "artistDisplayName": "Vincent van Gogh", "artistNationality": "Dutch"}`)
		default:
			w.WriteHeader(nethttp.StatusNotFound)
		}
	}))
	defer ts.Close()

	client := http.NewClient(http.Options{BaseURL: ts.URL, Logger: zerolog.Nop()})
	defer client.Close()
	api := NewAPI(client, CacheOptions{Size: 4})

	deps := api.Departments(context.Background())
	require.Len(t, deps, 1)

	ids, total := api.Search(context.Background(), SearchFilter{DepartmentID: &deps[0].ID, Query: "art"})
	require.Equal(t, []int{436535}, ids)
	assert.Equal(t, 1, total)

	art, ok := api.Artwork(context.Background(), ids[0])
	require.True(t, ok)
	assert.Equal(t, "Vincent van Gogh", art.Artist)

	_, ok = api.Artwork(context.Background(), 1)
	assert.False(t, ok)
}
