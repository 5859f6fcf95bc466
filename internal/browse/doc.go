// Package browse provides the browsing logic that sits between the
// shells (TUI and CLI) and the collection API.
//
// # Browser
//
// The Browser runs each search mode as a sequence of API calls:
//
//  1. Search for object IDs (by department, nationality, or author)
//  2. Fetch up to a per-mode limit of objects by ID
//  3. Keep the objects accepted by the mode's predicate
//  4. Report skipped objects as a single notice
//
// # Basic Usage
//
//	browser := browse.NewBrowser(settings, api, func(event browse.ProgressEvent) {
//	    fmt.Println(event.Message)
//	})
//
//	result := browser.FetchArtworksByDepartment(ctx, 11)
//	page := browse.Paginate(result.Artworks, 10, 0)
//
// # Concurrency
//
// Objects are fetched one after another unless max_concurrent_fetches is
// above 1, in which case an errgroup bounded to that many workers is used.
// Either way the result keeps the order of the IDs and failed objects are
// counted, never reported one by one.
//
// # Pagination
//
// Paginate is a pure slicing function. The page cursor is a Pager value
// owned by the caller; the Browser never remembers which page is shown.
package browse
