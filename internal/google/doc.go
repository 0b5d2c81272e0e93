// Package google provides OAuth2 token management for the Google Calendar
// API.
//
// Tokens are cached on disk under ~/.fgp/auth/google, one file per account.
// The package only loads and refreshes cached tokens; completing the
// interactive authorization flow is the responsibility of external tooling
// that provisions the cache.
//
// The TokenProvider interface allows alternate token sources to be plugged
// into the calendar client, for example fakes in tests.
package google
