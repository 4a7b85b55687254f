package client

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/carewatch/inactivity-mgmt/pkg/types"
	"github.com/matryer/is"
)

func TestGetSession(t *testing.T) {
	is := is.New(t)

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		is.Equal(r.URL.Path, "/api/v0/sessions/session-01")
		is.True(r.Header.Get("X-Signature") != "")

		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"data":{"id":"session-01","deviceID":"device-01","state":"CHECKING_IN","tenant":"default"}}`))
	}))
	defer srv.Close()

	c := New(srv.URL, "topsecret")

	session, err := c.GetSession(context.Background(), "session-01")
	is.NoErr(err)
	is.Equal(session.ID, "session-01")
	is.Equal(session.State, types.SessionStateCheckingIn)
}

func TestGetSessionNotFound(t *testing.T) {
	is := is.New(t)

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	}))
	defer srv.Close()

	c := New(srv.URL, "topsecret")

	_, err := c.GetSession(context.Background(), "no-such")
	is.True(err == ErrNotFound)
}

func TestQueryAlerts(t *testing.T) {
	is := is.New(t)

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		is.Equal(r.URL.Path, "/api/v0/alerts")
		is.Equal(r.URL.Query().Get("limit"), "10")

		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"data":[{"id":"alert-01","sessionID":"session-01","status":"active","severity":3,"tenant":"default"}],"meta":{"totalRecords":1,"count":1}}`))
	}))
	defer srv.Close()

	c := New(srv.URL, "topsecret")

	alerts, err := c.QueryAlerts(context.Background(), 0, 10)
	is.NoErr(err)
	is.Equal(len(alerts), 1)
	is.Equal(alerts[0].ID, "alert-01")
	is.Equal(alerts[0].Severity, types.AlertSeverityHigh)
}

func TestAcknowledge(t *testing.T) {
	is := is.New(t)

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		is.Equal(r.Method, http.MethodPost)
		is.Equal(r.URL.Path, "/api/v0/acknowledgments")
		is.True(r.Header.Get("X-Signature") != "")

		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"matched":true}`))
	}))
	defer srv.Close()

	c := New(srv.URL, "topsecret")

	matched, err := c.Acknowledge(context.Background(), "patient-01", "caregiver-app")
	is.NoErr(err)
	is.True(matched)
}
