package api

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"time"

	"log/slog"

	"github.com/carewatch/inactivity-mgmt/internal/pkg/application/ingest"
	"github.com/carewatch/inactivity-mgmt/internal/pkg/application/monitoring"
	"github.com/carewatch/inactivity-mgmt/internal/pkg/application/sweeper"
	"github.com/carewatch/inactivity-mgmt/internal/pkg/presentation/api/auth"
	"github.com/carewatch/inactivity-mgmt/pkg/types"
	"github.com/diwise/service-chassis/pkg/infrastructure/o11y"
	"github.com/diwise/service-chassis/pkg/infrastructure/o11y/logging"
	"github.com/diwise/service-chassis/pkg/infrastructure/o11y/tracing"
	"github.com/go-chi/chi/v5"
	"go.opentelemetry.io/otel"
)

var tracer = otel.Tracer("inactivity-mgmt/api")

func RegisterHandlers(ctx context.Context, router *chi.Mux, ingestor ingest.EventIngestor, svc monitoring.MonitoringService, sw sweeper.Sweeper, sharedSecret string) (*chi.Mux, error) {

	router.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNoContent)
	})

	log := logging.GetFromContext(ctx)

	authenticator, err := auth.NewAuthenticator(ctx, log, sharedSecret)
	if err != nil {
		return nil, fmt.Errorf("failed to create api authenticator: %w", err)
	}

	router.Route("/api/v0", func(r chi.Router) {
		r.Group(func(r chi.Router) {
			r.Use(authenticator)

			r.Post("/events/motion", motionEventHandler(log, ingestor))
			r.Get("/events/motion", queryMotionEventsHandler(log, ingestor))
			r.Post("/acknowledgments", acknowledgmentHandler(log, svc))

			r.Route("/sessions", func(r chi.Router) {
				r.Get("/", querySessionsHandler(log, svc))
				r.Get("/{sessionID}", getSessionHandler(log, svc))
				r.Get("/{sessionID}/attempts", getAttemptsHandler(log, svc))
				r.Post("/{sessionID}/resolve", resolveSessionHandler(log, svc))
			})

			r.Route("/alerts", func(r chi.Router) {
				r.Get("/", queryAlertsHandler(log, svc))
				r.Get("/{alertID}", getAlertHandler(log, svc))
				r.Patch("/{alertID}", patchAlertHandler(log, svc))
			})

			r.Post("/internal/sweep", sweepHandler(log, sw))
		})
	})

	return router, nil
}

func motionEventHandler(log *slog.Logger, ingestor ingest.EventIngestor) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var err error
		defer r.Body.Close()

		ctx, span := tracer.Start(r.Context(), "ingest-motion-event")
		defer func() { tracing.RecordAnyErrorAndEndSpan(err, span) }()
		_, ctx, requestLogger := o11y.AddTraceIDToLoggerAndStoreInContext(span, log, ctx)

		body, err := io.ReadAll(r.Body)
		if err != nil {
			requestLogger.Error("unable to read body", "err", err.Error())
			w.WriteHeader(http.StatusBadRequest)
			return
		}

		var ev types.MotionEvent
		err = json.Unmarshal(body, &ev)
		if err != nil {
			requestLogger.Error("unable to unmarshal body", "err", err.Error())
			w.WriteHeader(http.StatusBadRequest)
			return
		}

		result, err := ingestor.Ingest(ctx, ev)
		if err != nil {
			if errors.Is(err, ingest.ErrBadEvent) {
				requestLogger.Debug("rejecting malformed event", "err", err.Error())
				w.WriteHeader(http.StatusBadRequest)
				return
			}
			requestLogger.Error("unable to ingest event", "err", err.Error())
			w.WriteHeader(http.StatusInternalServerError)
			return
		}

		b, _ := json.Marshal(struct {
			Accepted  bool `json:"accepted"`
			Duplicate bool `json:"duplicate,omitempty"`
		}{Accepted: result.Accepted, Duplicate: result.Duplicate})

		w.Header().Add("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		w.Write(b)
	}
}

func queryMotionEventsHandler(log *slog.Logger, ingestor ingest.EventIngestor) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var err error
		defer r.Body.Close()

		allowedTenants := auth.GetAllowedTenantsFromContext(r.Context())

		ctx, span := tracer.Start(r.Context(), "query-motion-events")
		defer func() { tracing.RecordAnyErrorAndEndSpan(err, span) }()
		_, ctx, requestLogger := o11y.AddTraceIDToLoggerAndStoreInContext(span, log, ctx)

		var after time.Time
		if v := r.URL.Query().Get("after"); v != "" {
			after, err = time.Parse(time.RFC3339, v)
			if err != nil {
				requestLogger.Debug("rejecting malformed after timestamp", "err", err.Error())
				w.WriteHeader(http.StatusBadRequest)
				return
			}
		}

		offset, limit := paging(r)

		collection, err := ingestor.QueryEvents(ctx, r.URL.Query().Get("device"), after, offset, limit, allowedTenants)
		if err != nil {
			requestLogger.Error("unable to fetch motion events", "err", err.Error())
			w.WriteHeader(http.StatusInternalServerError)
			return
		}

		w.Header().Add("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		w.Write(newCollectionResponse(collection).Byte())
	}
}

func acknowledgmentHandler(log *slog.Logger, svc monitoring.MonitoringService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var err error
		defer r.Body.Close()

		allowedTenants := auth.GetAllowedTenantsFromContext(r.Context())

		ctx, span := tracer.Start(r.Context(), "acknowledge")
		defer func() { tracing.RecordAnyErrorAndEndSpan(err, span) }()
		_, ctx, requestLogger := o11y.AddTraceIDToLoggerAndStoreInContext(span, log, ctx)

		var ack struct {
			PatientID string `json:"patientID"`
			SessionID string `json:"sessionID"`
			Source    string `json:"source"`
		}

		err = json.NewDecoder(r.Body).Decode(&ack)
		if err != nil || (ack.PatientID == "" && ack.SessionID == "") {
			requestLogger.Error("unable to unmarshal acknowledgment")
			w.WriteHeader(http.StatusBadRequest)
			return
		}

		if ack.PatientID == "" {
			session, err := svc.GetSessionByID(ctx, ack.SessionID, allowedTenants)
			if errors.Is(err, monitoring.ErrSessionNotFound) {
				w.WriteHeader(http.StatusNotFound)
				return
			}
			if err != nil {
				requestLogger.Error("could not fetch session for acknowledgment", "err", err.Error())
				w.WriteHeader(http.StatusInternalServerError)
				return
			}
			ack.PatientID = session.PatientID
		}

		matched, err := svc.Acknowledge(ctx, ack.PatientID, ack.Source, allowedTenants)
		if err != nil {
			requestLogger.Error("unable to process acknowledgment", "err", err.Error())
			w.WriteHeader(http.StatusInternalServerError)
			return
		}

		b, _ := json.Marshal(struct {
			Matched bool `json:"matched"`
		}{Matched: matched})

		w.Header().Add("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		w.Write(b)
	}
}

func querySessionsHandler(log *slog.Logger, svc monitoring.MonitoringService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var err error
		defer r.Body.Close()

		allowedTenants := auth.GetAllowedTenantsFromContext(r.Context())

		ctx, span := tracer.Start(r.Context(), "query-sessions")
		defer func() { tracing.RecordAnyErrorAndEndSpan(err, span) }()
		_, ctx, requestLogger := o11y.AddTraceIDToLoggerAndStoreInContext(span, log, ctx)

		offset, limit := paging(r)

		var resolved *bool
		if v := r.URL.Query().Get("resolved"); v != "" {
			if b, parseErr := strconv.ParseBool(v); parseErr == nil {
				resolved = &b
			}
		}

		collection, err := svc.QuerySessions(ctx, offset, limit, resolved, allowedTenants)
		if err != nil {
			requestLogger.Error("unable to fetch sessions", "err", err.Error())
			w.WriteHeader(http.StatusInternalServerError)
			return
		}

		w.Header().Add("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		w.Write(newCollectionResponse(collection).Byte())
	}
}

func getSessionHandler(log *slog.Logger, svc monitoring.MonitoringService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var err error
		defer r.Body.Close()

		allowedTenants := auth.GetAllowedTenantsFromContext(r.Context())

		ctx, span := tracer.Start(r.Context(), "get-session")
		defer func() { tracing.RecordAnyErrorAndEndSpan(err, span) }()
		_, ctx, requestLogger := o11y.AddTraceIDToLoggerAndStoreInContext(span, log, ctx)

		sessionID := chi.URLParam(r, "sessionID")
		if sessionID != "" {
			requestLogger = requestLogger.With(slog.String("session_id", sessionID))
		}

		session, err := svc.GetSessionByID(ctx, sessionID, allowedTenants)
		if errors.Is(err, monitoring.ErrSessionNotFound) {
			requestLogger.Debug("session not found")
			w.WriteHeader(http.StatusNotFound)
			return
		}
		if err != nil {
			requestLogger.Error("could not fetch session", "err", err.Error())
			w.WriteHeader(http.StatusInternalServerError)
			return
		}

		b, _ := json.Marshal(ApiResponse{Data: session})

		w.Header().Add("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		w.Write(b)
	}
}

func getAttemptsHandler(log *slog.Logger, svc monitoring.MonitoringService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var err error
		defer r.Body.Close()

		allowedTenants := auth.GetAllowedTenantsFromContext(r.Context())

		ctx, span := tracer.Start(r.Context(), "get-notification-attempts")
		defer func() { tracing.RecordAnyErrorAndEndSpan(err, span) }()
		_, ctx, requestLogger := o11y.AddTraceIDToLoggerAndStoreInContext(span, log, ctx)

		sessionID := chi.URLParam(r, "sessionID")

		attempts, err := svc.QueryAttempts(ctx, sessionID, allowedTenants)
		if errors.Is(err, monitoring.ErrSessionNotFound) {
			w.WriteHeader(http.StatusNotFound)
			return
		}
		if err != nil {
			requestLogger.Error("could not fetch notification attempts", "err", err.Error())
			w.WriteHeader(http.StatusInternalServerError)
			return
		}

		w.Header().Add("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		w.Write(newCollectionResponse(attempts).Byte())
	}
}

func resolveSessionHandler(log *slog.Logger, svc monitoring.MonitoringService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var err error
		defer r.Body.Close()

		allowedTenants := auth.GetAllowedTenantsFromContext(r.Context())

		ctx, span := tracer.Start(r.Context(), "resolve-session")
		defer func() { tracing.RecordAnyErrorAndEndSpan(err, span) }()
		_, ctx, requestLogger := o11y.AddTraceIDToLoggerAndStoreInContext(span, log, ctx)

		sessionID := chi.URLParam(r, "sessionID")
		if sessionID != "" {
			requestLogger = requestLogger.With(slog.String("session_id", sessionID))
		}

		err = svc.ResolveManually(ctx, sessionID, allowedTenants)
		if errors.Is(err, monitoring.ErrSessionNotFound) {
			requestLogger.Debug("session not found")
			w.WriteHeader(http.StatusNotFound)
			return
		}
		if err != nil {
			requestLogger.Error("unable to resolve session", "err", err.Error())
			w.WriteHeader(http.StatusInternalServerError)
			return
		}

		w.WriteHeader(http.StatusNoContent)
	}
}

func queryAlertsHandler(log *slog.Logger, svc monitoring.MonitoringService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var err error
		defer r.Body.Close()

		allowedTenants := auth.GetAllowedTenantsFromContext(r.Context())

		ctx, span := tracer.Start(r.Context(), "query-alerts")
		defer func() { tracing.RecordAnyErrorAndEndSpan(err, span) }()
		_, ctx, requestLogger := o11y.AddTraceIDToLoggerAndStoreInContext(span, log, ctx)

		offset, limit := paging(r)

		collection, err := svc.QueryAlerts(ctx, offset, limit, allowedTenants)
		if err != nil {
			requestLogger.Error("unable to fetch alerts", "err", err.Error())
			w.WriteHeader(http.StatusInternalServerError)
			return
		}

		w.Header().Add("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		w.Write(newCollectionResponse(collection).Byte())
	}
}

func getAlertHandler(log *slog.Logger, svc monitoring.MonitoringService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var err error
		defer r.Body.Close()

		allowedTenants := auth.GetAllowedTenantsFromContext(r.Context())

		ctx, span := tracer.Start(r.Context(), "get-alert")
		defer func() { tracing.RecordAnyErrorAndEndSpan(err, span) }()
		_, ctx, requestLogger := o11y.AddTraceIDToLoggerAndStoreInContext(span, log, ctx)

		alertID := chi.URLParam(r, "alertID")

		alert, err := svc.GetAlertByID(ctx, alertID, allowedTenants)
		if errors.Is(err, monitoring.ErrAlertNotFound) {
			requestLogger.Debug("alert not found", "alert_id", alertID)
			w.WriteHeader(http.StatusNotFound)
			return
		}
		if err != nil {
			requestLogger.Error("could not fetch alert", "err", err.Error())
			w.WriteHeader(http.StatusInternalServerError)
			return
		}

		b, _ := json.Marshal(ApiResponse{Data: alert})

		w.Header().Add("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		w.Write(b)
	}
}

func patchAlertHandler(log *slog.Logger, svc monitoring.MonitoringService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var err error
		defer r.Body.Close()

		allowedTenants := auth.GetAllowedTenantsFromContext(r.Context())

		ctx, span := tracer.Start(r.Context(), "patch-alert")
		defer func() { tracing.RecordAnyErrorAndEndSpan(err, span) }()
		_, ctx, requestLogger := o11y.AddTraceIDToLoggerAndStoreInContext(span, log, ctx)

		alertID := chi.URLParam(r, "alertID")
		if alertID != "" {
			requestLogger = requestLogger.With(slog.String("alert_id", alertID))
		}

		var patch struct {
			Status string `json:"status"`
		}

		err = json.NewDecoder(r.Body).Decode(&patch)
		if err != nil || patch.Status != types.AlertStatusAcknowledged {
			requestLogger.Error("invalid alert patch")
			w.WriteHeader(http.StatusBadRequest)
			return
		}

		err = svc.AcknowledgeAlert(ctx, alertID, allowedTenants)
		if errors.Is(err, monitoring.ErrAlertNotFound) {
			requestLogger.Debug("alert not found")
			w.WriteHeader(http.StatusNotFound)
			return
		}
		if err != nil {
			requestLogger.Error("unable to acknowledge alert", "err", err.Error())
			w.WriteHeader(http.StatusInternalServerError)
			return
		}

		w.WriteHeader(http.StatusNoContent)
	}
}

func sweepHandler(log *slog.Logger, sw sweeper.Sweeper) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var err error
		defer r.Body.Close()

		ctx, span := tracer.Start(r.Context(), "trigger-sweep")
		defer func() { tracing.RecordAnyErrorAndEndSpan(err, span) }()
		_, ctx, requestLogger := o11y.AddTraceIDToLoggerAndStoreInContext(span, log, ctx)

		count, err := sw.Sweep(ctx, time.Now().UTC())
		if err != nil {
			requestLogger.Error("sweep failed", "err", err.Error())
			w.WriteHeader(http.StatusInternalServerError)
			return
		}

		b, _ := json.Marshal(struct {
			Transitioned int `json:"transitioned"`
		}{Transitioned: count})

		w.Header().Add("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		w.Write(b)
	}
}

func paging(r *http.Request) (offset, limit int) {
	limit = 100

	if v := r.URL.Query().Get("offset"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n >= 0 {
			offset = n
		}
	}

	if v := r.URL.Query().Get("limit"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			limit = n
		}
	}

	return offset, limit
}
