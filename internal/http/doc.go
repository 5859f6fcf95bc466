// Package http provides the JSON client used to talk to the museum
// collection API.
//
// The Client in this package handles:
//   - Building endpoint URLs from the configured base URL
//   - User-Agent headers and request timeouts
//   - Optional client-side rate limiting
//   - Decoding JSON objects into a Payload
//
// # Basic Usage
//
//	client := http.NewClient(http.Options{
//	    BaseURL: "https://collectionapi.metmuseum.org/public/collection/v1",
//	    Timeout: 30 * time.Second,
//	    Logger:  logger,
//	})
//	defer client.Close()
//
//	payload := client.Fetch(ctx, "search", map[string]string{"q": "sunflowers"})
//	if payload.Empty() {
//	    // network failure, non-2xx status, or malformed JSON
//	}
//
// # Failure Handling
//
// Fetch never returns an error. Transport and decode failures are logged
// and collapse into an empty Payload, so callers only ever test for
// emptiness. Use Get when the typed error (*TransportError or
// *DecodeError) is needed.
package http
