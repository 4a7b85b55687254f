package auth

import (
	"bytes"
	"context"
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"strings"
)

type tenantsContextKey struct{ name string }

var tenantsCtxKey = &tenantsContextKey{"allowed-tenants"}

// NewAuthenticator returns a middleware that verifies the X-Signature header
// against an HMAC-SHA256 of the request body, computed with the shared
// secret. Upstream gateways are trusted to set X-Tenants for the caller.
func NewAuthenticator(ctx context.Context, log *slog.Logger, sharedSecret string) (func(http.Handler) http.Handler, error) {
	if sharedSecret == "" {
		return nil, errors.New("shared secret must not be empty")
	}

	secret := []byte(sharedSecret)

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			signature := r.Header.Get("X-Signature")
			if signature == "" {
				w.WriteHeader(http.StatusUnauthorized)
				return
			}

			body, err := io.ReadAll(r.Body)
			if err != nil {
				w.WriteHeader(http.StatusBadRequest)
				return
			}
			r.Body.Close()

			mac := hmac.New(sha256.New, secret)
			mac.Write(body)
			expected := hex.EncodeToString(mac.Sum(nil))

			if !hmac.Equal([]byte(expected), []byte(signature)) {
				log.Warn("request with invalid signature", "path", r.URL.Path)
				w.WriteHeader(http.StatusUnauthorized)
				return
			}

			r.Body = io.NopCloser(bytes.NewReader(body))

			next.ServeHTTP(w, r.WithContext(
				context.WithValue(r.Context(), tenantsCtxKey, tenantsFromHeader(r)),
			))
		})
	}, nil
}

func tenantsFromHeader(r *http.Request) []string {
	header := r.Header.Get("X-Tenants")
	if header == "" {
		return []string{"default"}
	}

	tenants := []string{}
	for _, t := range strings.Split(header, ",") {
		if t = strings.TrimSpace(t); t != "" {
			tenants = append(tenants, t)
		}
	}

	if len(tenants) == 0 {
		return []string{"default"}
	}

	return tenants
}

// Sign computes the signature a caller should put in the X-Signature header.
func Sign(sharedSecret string, body []byte) string {
	mac := hmac.New(sha256.New, []byte(sharedSecret))
	mac.Write(body)
	return hex.EncodeToString(mac.Sum(nil))
}

func GetAllowedTenantsFromContext(ctx context.Context) []string {
	tenants, ok := ctx.Value(tenantsCtxKey).([]string)
	if !ok || len(tenants) == 0 {
		return []string{"default"}
	}
	return tenants
}
