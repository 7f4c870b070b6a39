// Package auth provides OAuth token management for the Google Calendar
// integration. Tokens are persisted between runs and refreshed
// transparently before expiry.
package auth
