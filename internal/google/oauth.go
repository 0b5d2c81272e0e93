package google

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"path/filepath"
	"regexp"
	"strings"
	"time"

	"golang.org/x/oauth2"
	"golang.org/x/oauth2/google"
)

// accountNameRe restricts account names to filesystem-safe identifiers.
var accountNameRe = regexp.MustCompile(`^[a-zA-Z0-9_-]+$`)

// validateAccountName checks that an account name is safe to use in a file
// path. Account names become part of token file names, so anything outside
// [a-zA-Z0-9_-] is rejected.
func validateAccountName(account string) error {
	if account == "" {
		return fmt.Errorf("account name cannot be empty")
	}
	if !accountNameRe.MatchString(account) {
		return fmt.Errorf("invalid account name %q: only letters, digits, hyphens and underscores are allowed", account)
	}
	return nil
}

// authDir returns the directory holding cached Google tokens.
// The layout follows the fgp services convention: ~/.fgp/auth/google.
func authDir() string {
	return filepath.Join(homeDir(), ".fgp", "auth", "google")
}

// getTokenFilePath returns the token file path for an account.
func getTokenFilePath(account string) string {
	return filepath.Join(authDir(), fmt.Sprintf("calendar-%s.token", account))
}

// HasTokenForAccount checks if a cached OAuth token exists for the account.
func HasTokenForAccount(account string) bool {
	if err := validateAccountName(account); err != nil {
		return false
	}
	_, err := os.ReadFile(getTokenFilePath(account))
	return err == nil
}

// HasToken checks if a cached OAuth token exists for the default account.
func HasToken() bool {
	return HasTokenForAccount("default")
}

// GetOAuthConfig returns the OAuth2 configuration for the Calendar service.
// Client credentials come from the environment; completing the authorization
// flow itself is out of scope for this binary, the token cache is expected
// to be provisioned externally.
func GetOAuthConfig() *oauth2.Config {
	return &oauth2.Config{
		ClientID:     os.Getenv("GOOGLE_CLIENT_ID"),
		ClientSecret: os.Getenv("GOOGLE_CLIENT_SECRET"),
		Endpoint:     google.Endpoint,
		Scopes:       CalendarScopes,
	}
}

// SaveTokenForAccount writes a token to the account's cache file. It exists
// for external provisioning to seed the cache; access tokens refreshed by
// the token source at runtime stay in memory and are not written back.
func SaveTokenForAccount(account string, token *oauth2.Token) error {
	if err := validateAccountName(account); err != nil {
		return err
	}
	if token == nil || token.AccessToken == "" {
		return fmt.Errorf("cannot save empty token for account %s", account)
	}

	if err := os.MkdirAll(authDir(), 0700); err != nil {
		return fmt.Errorf("failed to create auth directory: %w", err)
	}

	data := token.AccessToken + " " + token.RefreshToken
	if err := os.WriteFile(getTokenFilePath(account), []byte(data), 0600); err != nil {
		return fmt.Errorf("failed to write token file: %w", err)
	}
	return nil
}

// GetTokenSourceForAccount returns an OAuth2 token source backed by the
// account's cached token. The source refreshes expired access tokens via the
// refresh token transparently.
func GetTokenSourceForAccount(ctx context.Context, account string) (oauth2.TokenSource, error) {
	if err := validateAccountName(account); err != nil {
		return nil, err
	}

	slurp, err := os.ReadFile(getTokenFilePath(account))
	if err != nil {
		return nil, fmt.Errorf("no cached Google OAuth token for account %s", account)
	}

	f := strings.Fields(strings.TrimSpace(string(slurp)))
	if len(f) != 2 {
		return nil, fmt.Errorf("invalid token format in %s", getTokenFilePath(account))
	}

	conf := GetOAuthConfig()
	ts := conf.TokenSource(ctx, &oauth2.Token{
		AccessToken:  f[0],
		TokenType:    "Bearer",
		RefreshToken: f[1],
		Expiry:       time.Unix(1, 0),
	})

	return ts, nil
}

// NewAuthenticatedClient returns an HTTP client that injects tokens from the
// given source. The client uses HTTP/1.1 to avoid HTTP/2 protocol errors
// observed with the Google API endpoints.
func NewAuthenticatedClient(ctx context.Context, ts oauth2.TokenSource) *http.Client {
	client := oauth2.NewClient(ctx, ts)

	transport := client.Transport.(*oauth2.Transport)
	transport.Base = &http.Transport{
		ForceAttemptHTTP2: false,
	}

	return client
}

func homeDir() string {
	if home := os.Getenv("HOME"); home != "" {
		return home
	}
	// Windows fallback
	return os.Getenv("HOMEDRIVE") + os.Getenv("HOMEPATH")
}
