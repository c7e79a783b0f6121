package testutil

import (
	"net/http"
	"os"
	"testing"

	"github.com/kavitha-salon/salon-api/middleware"
)

// RequireTestEnvironment ensures that tests are running in the test
// environment. It fails the test immediately if GO_ENV is not "test",
// preventing accidental execution against a development database.
func RequireTestEnvironment(t *testing.T) {
	t.Helper()

	env := os.Getenv("GO_ENV")
	if env != "test" {
		t.Fatalf("SAFETY CHECK FAILED: tests must run with GO_ENV=test. Current GO_ENV=%q.", env)
	}
}

// MustSetTestEnvironment sets GO_ENV to test. Use this in TestMain or suite
// setup functions.
func MustSetTestEnvironment(t *testing.T) {
	t.Helper()

	if err := os.Setenv("GO_ENV", "test"); err != nil {
		t.Fatalf("Failed to set GO_ENV=test: %v", err)
	}
}

// AdminSession returns the cookie an admin request carries after login.
func AdminSession(username string) *http.Cookie {
	return &http.Cookie{Name: middleware.AdminCookie, Value: username}
}
