// Package met wraps the endpoints of the Metropolitan Museum of Art
// collection API and converts their responses into model records.
//
// The package handles three endpoints:
//
//  1. departments: the curatorial departments
//  2. search: object IDs matching a query, with an overall total
//  3. objects/{id}: a single catalogued object
//
// # Usage
//
//	api := met.NewAPI(client, met.CacheOptions{Size: 256, TTL: 10 * time.Minute})
//
//	departments := api.Departments(ctx)
//	ids, total := api.Search(ctx, met.SearchFilter{DepartmentID: &departments[0].ID, Query: "art"})
//	artwork, ok := api.Artwork(ctx, ids[0])
//
// # Failure Handling
//
// Like the underlying client, nothing here returns an error. An
// unreachable service produces empty lists, and a missing object produces
// ok == false.
//
// # Object Cache
//
// Object responses are kept in an in-memory LRU with a TTL for the lifetime
// of the API value, so paging back and forth or opening the detail of an
// artwork already listed does not hit the network again. Nothing is
// written to disk.
package met
