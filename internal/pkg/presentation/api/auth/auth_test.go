package auth

import (
	"context"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/matryer/is"
)

func testHandler(t *testing.T) http.Handler {
	t.Helper()

	authenticator, err := NewAuthenticator(context.Background(), slog.Default(), "topsecret")
	if err != nil {
		t.Fatal(err)
	}

	return authenticator(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		tenants := GetAllowedTenantsFromContext(r.Context())
		w.Write([]byte(strings.Join(tenants, ",")))
	}))
}

func TestValidSignatureIsAccepted(t *testing.T) {
	is := is.New(t)

	body := `{"deviceID":"device-01"}`
	req := httptest.NewRequest(http.MethodPost, "/api/v0/events/motion", strings.NewReader(body))
	req.Header.Set("X-Signature", Sign("topsecret", []byte(body)))

	w := httptest.NewRecorder()
	testHandler(t).ServeHTTP(w, req)

	is.Equal(w.Code, http.StatusOK)
	is.Equal(w.Body.String(), "default")
}

func TestMissingSignatureIsRejected(t *testing.T) {
	is := is.New(t)

	req := httptest.NewRequest(http.MethodPost, "/api/v0/events/motion", strings.NewReader("{}"))

	w := httptest.NewRecorder()
	testHandler(t).ServeHTTP(w, req)

	is.Equal(w.Code, http.StatusUnauthorized)
}

func TestInvalidSignatureIsRejected(t *testing.T) {
	is := is.New(t)

	body := `{"deviceID":"device-01"}`
	req := httptest.NewRequest(http.MethodPost, "/api/v0/events/motion", strings.NewReader(body))
	req.Header.Set("X-Signature", Sign("wrongsecret", []byte(body)))

	w := httptest.NewRecorder()
	testHandler(t).ServeHTTP(w, req)

	is.Equal(w.Code, http.StatusUnauthorized)
}

func TestTenantsAreTakenFromHeader(t *testing.T) {
	is := is.New(t)

	body := `{}`
	req := httptest.NewRequest(http.MethodGet, "/api/v0/sessions", strings.NewReader(body))
	req.Header.Set("X-Signature", Sign("topsecret", []byte(body)))
	req.Header.Set("X-Tenants", "north, south")

	w := httptest.NewRecorder()
	testHandler(t).ServeHTTP(w, req)

	is.Equal(w.Code, http.StatusOK)
	is.Equal(w.Body.String(), "north,south")
}

func TestEmptySecretIsRefused(t *testing.T) {
	is := is.New(t)

	_, err := NewAuthenticator(context.Background(), slog.Default(), "")
	is.True(err != nil)
}
