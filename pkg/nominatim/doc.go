// Package nominatim provides a client for the OpenStreetMap Nominatim
// geocoding service.
//
// Only forward search (free text to coordinates) and reverse lookup
// (coordinates to a display address) are implemented. Nominatim's usage
// policy requires an identifying User-Agent and at most one request per
// second, so the client never retries on its own.
//
// Example usage:
//
//	client := nominatim.NewClient(nominatim.Config{UserAgent: "my-app/1.0"})
//
//	places, err := client.Search(ctx, "London, UK")
//	if errors.Is(err, nominatim.ErrNotFound) {
//	    fmt.Println("no match")
//	}
package nominatim
