// Package google implements the calendar service against the Google
// Calendar API. It provides:
//   - TokenSource adapter to bridge the TokenProvider port to oauth2.TokenSource
//   - Rate limiting with backoff on 429 responses
//   - Event mapping between the internal record and the API format
//
// Usage:
//
//	client, err := google.NewClient(ctx, tokenProvider, "Europe/London")
//	entry, err := client.Insert(ctx, event)
package google
