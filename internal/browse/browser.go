package browse

import (
	"context"
	"fmt"
	"strings"
	"sync"

	"github.com/handiism/metroart/internal/config"
	"github.com/handiism/metroart/internal/met"
	"github.com/handiism/metroart/internal/model"
	"golang.org/x/sync/errgroup"
)

// ProgressLevel indicates the severity/type of a progress message.
type ProgressLevel int

const (
	LevelInfo ProgressLevel = iota
	LevelVerbose
	LevelWarning
	LevelError
	LevelSuccess
)

// ProgressEvent represents a notice for the output surface.
type ProgressEvent struct {
	Message string
	Level   ProgressLevel
}

// Collection is the part of the collection API used by the Browser.
type Collection interface {
	Departments(ctx context.Context) []model.Department
	Search(ctx context.Context, filter met.SearchFilter) ([]int, int)
	Artwork(ctx context.Context, id int) (model.Artwork, bool)
	ArtworkDetail(ctx context.Context, id int) (model.ArtworkDetail, bool)
}

// Predicate selects artworks in a fetch batch.
type Predicate func(model.Artwork) bool

// NationalityPredicate matches artworks whose nationality contains query,
// ignoring case. Artworks without a nationality are rejected.
func NationalityPredicate(query string) Predicate {
	return func(a model.Artwork) bool {
		return a.NationalityMatches(query)
	}
}

// ArtistPredicate matches artworks whose artist name contains query,
// ignoring case.
func ArtistPredicate(query string) Predicate {
	return func(a model.Artwork) bool {
		return a.ArtistMatches(query)
	}
}

// Result is the outcome of a search mode.
type Result struct {
	// Artworks holds the fetched artworks in search order.
	Artworks []model.Artwork

	// Total is the match count reported by the search endpoint. It can be
	// larger than the number of IDs fetched.
	Total int

	// Attempted is how many object IDs were fetched.
	Attempted int

	// Skipped is how many of the attempted objects could not be fetched.
	Skipped int
}

// Browser coordinates searches against the collection.
type Browser struct {
	settings   *config.Settings
	api        Collection
	onProgress func(ProgressEvent)
	mu         sync.Mutex
}

// NewBrowser creates a new Browser. onProgress may be nil.
func NewBrowser(settings *config.Settings, api Collection, onProgress func(ProgressEvent)) *Browser {
	return &Browser{
		settings:   settings,
		api:        api,
		onProgress: onProgress,
	}
}

// ListDepartments returns the departments in service order. An empty
// slice means the service is unavailable or has no data.
func (b *Browser) ListDepartments(ctx context.Context) []model.Department {
	departments := b.api.Departments(ctx)
	b.progress(ProgressEvent{Message: fmt.Sprintf("Loaded %d departments", len(departments)), Level: LevelVerbose})
	return departments
}

// SearchObjectIDs returns the IDs matching filter and the service total.
func (b *Browser) SearchObjectIDs(ctx context.Context, filter met.SearchFilter) ([]int, int) {
	ids, total := b.api.Search(ctx, filter)
	b.progress(ProgressEvent{Message: fmt.Sprintf("Search %q returned %d of %d IDs", filter.Query, len(ids), total), Level: LevelVerbose})
	return ids, total
}

// FetchArtworksByIDs fetches at most limit objects from the front of ids
// and keeps those accepted by predicate (all of them when predicate is
// nil). A limit of zero or less fetches every ID.
//
// Objects that cannot be fetched are skipped and counted; when any are,
// one notice is emitted before returning.
func (b *Browser) FetchArtworksByIDs(ctx context.Context, ids []int, limit int, predicate Predicate) ([]model.Artwork, int) {
	artworks, _, skipped := b.fetchBatch(ctx, ids, limit, predicate)
	return artworks, skipped
}

// FetchArtworksByDepartment lists artworks of one department.
func (b *Browser) FetchArtworksByDepartment(ctx context.Context, departmentID int) Result {
	filter := met.SearchFilter{
		DepartmentID:  &departmentID,
		Query:         b.settings.DepartmentQuery,
		HighlightOnly: b.settings.HighlightOnly,
	}
	return b.searchAndFetch(ctx, filter, b.settings.DepartmentFetchLimit, nil)
}

// FetchArtworksByNationality lists artworks whose artist nationality
// contains text, ignoring case.
func (b *Browser) FetchArtworksByNationality(ctx context.Context, text string) Result {
	text = strings.TrimSpace(text)
	if text == "" {
		return Result{Artworks: []model.Artwork{}}
	}
	filter := met.SearchFilter{
		Query:           text,
		HighlightOnly:   b.settings.HighlightOnly,
		ArtistOrCulture: true,
	}
	return b.searchAndFetch(ctx, filter, b.settings.NationalityFetchLimit, NationalityPredicate(text))
}

// FetchArtworksByAuthor lists artworks whose artist name contains name,
// ignoring case.
func (b *Browser) FetchArtworksByAuthor(ctx context.Context, name string) Result {
	name = strings.TrimSpace(name)
	if name == "" {
		return Result{Artworks: []model.Artwork{}}
	}
	filter := met.SearchFilter{
		Query:           name,
		HighlightOnly:   b.settings.HighlightOnly,
		ArtistOrCulture: true,
	}
	return b.searchAndFetch(ctx, filter, b.settings.AuthorFetchLimit, ArtistPredicate(name))
}

// FetchArtworkDetail fetches the full record of one object.
func (b *Browser) FetchArtworkDetail(ctx context.Context, id int) (model.ArtworkDetail, bool) {
	detail, ok := b.api.ArtworkDetail(ctx, id)
	if !ok {
		b.progress(ProgressEvent{Message: fmt.Sprintf("Object %d could not be fetched", id), Level: LevelVerbose})
	}
	return detail, ok
}

// NationalityCatalog returns the nationalities offered for browsing. In
// derived mode they come from seen; the static list is used otherwise and
// whenever seen yields nothing.
func (b *Browser) NationalityCatalog(seen []model.Artwork) []string {
	if b.settings.NationalityCatalog == config.CatalogDerived {
		if derived := DeriveNationalities(seen); len(derived) > 0 {
			return derived
		}
	}
	return StaticNationalities()
}

func (b *Browser) searchAndFetch(ctx context.Context, filter met.SearchFilter, limit int, predicate Predicate) Result {
	ids, total := b.SearchObjectIDs(ctx, filter)
	if len(ids) == 0 {
		return Result{Artworks: []model.Artwork{}, Total: total}
	}

	artworks, attempted, skipped := b.fetchBatch(ctx, ids, limit, predicate)
	return Result{
		Artworks:  artworks,
		Total:     total,
		Attempted: attempted,
		Skipped:   skipped,
	}
}

// fetchBatch fetches ids[:limit] with at most MaxConcurrentFetches requests
// in flight. Results are written by index so the output keeps ID order.
func (b *Browser) fetchBatch(ctx context.Context, ids []int, limit int, predicate Predicate) ([]model.Artwork, int, int) {
	n := len(ids)
	if limit > 0 && limit < n {
		n = limit
	}

	fetched := make([]*model.Artwork, n)

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(max(1, b.settings.MaxConcurrentFetches))

	for i, id := range ids[:n] {
		g.Go(func() error {
			artwork, ok := b.api.Artwork(ctx, id)
			if !ok {
				b.progress(ProgressEvent{Message: fmt.Sprintf("Skipping object %d", id), Level: LevelVerbose})
				return nil // Continue with other objects
			}
			fetched[i] = &artwork
			return nil
		})
	}
	_ = g.Wait()

	artworks := make([]model.Artwork, 0, n)
	skipped := 0
	for _, artwork := range fetched {
		if artwork == nil {
			skipped++
			continue
		}
		if predicate == nil || predicate(*artwork) {
			artworks = append(artworks, *artwork)
		}
	}

	if skipped > 0 {
		b.progress(ProgressEvent{Message: OmittedNotice(skipped), Level: LevelWarning})
	}

	return artworks, n, skipped
}

// OmittedNotice is the user-facing message for skipped objects.
func OmittedNotice(skipped int) string {
	if skipped == 1 {
		return "1 obra omitida"
	}
	return fmt.Sprintf("%d obras omitidas", skipped)
}

func (b *Browser) progress(event ProgressEvent) {
	if b.onProgress == nil {
		return
	}
	b.mu.Lock()
	defer b.mu.Unlock()
	b.onProgress(event)
}
