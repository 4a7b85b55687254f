package monitoring

import (
	"context"
	"encoding/json"
	"log/slog"

	"github.com/diwise/messaging-golang/pkg/messaging"
	"github.com/diwise/service-chassis/pkg/infrastructure/o11y"
	"github.com/diwise/service-chassis/pkg/infrastructure/o11y/logging"
	"github.com/diwise/service-chassis/pkg/infrastructure/o11y/tracing"
	"go.opentelemetry.io/otel"
)

var tracer = otel.Tracer("inactivity-mgmt/monitoring")

type caregiverResponse struct {
	PatientID string `json:"patientID"`
	AlertID   string `json:"alertID,omitempty"`
	Source    string `json:"source"`
	Tenant    string `json:"tenant"`
}

// NewCaregiverResponseHandler consumes replies relayed by the messaging
// gateway. A reply that names an alert acknowledges that alert, otherwise it
// is matched against the patient's open sessions.
func NewCaregiverResponseHandler(svc MonitoringService) messaging.TopicMessageHandler {
	return func(ctx context.Context, itm messaging.IncomingTopicMessage, l *slog.Logger) {
		var err error

		ctx, span := tracer.Start(ctx, "caregiver-response")
		defer func() { tracing.RecordAnyErrorAndEndSpan(err, span) }()
		_, ctx, log := o11y.AddTraceIDToLoggerAndStoreInContext(span, l, ctx)

		log.Debug("received caregiver response", "body", string(itm.Body()))

		m := caregiverResponse{}
		err = json.Unmarshal(itm.Body(), &m)
		if err != nil {
			log.Error("failed to unmarshal message", "err", err.Error())
			return
		}

		ctx = logging.NewContextWithLogger(ctx, log, slog.String("patient_id", m.PatientID), slog.String("tenant", m.Tenant))

		tenants := []string{m.Tenant}

		if m.AlertID != "" {
			err = svc.AcknowledgeAlert(ctx, m.AlertID, tenants)
			if err != nil {
				log.Error("could not acknowledge alert", "alert_id", m.AlertID, "err", err.Error())
			}
			return
		}

		_, err = svc.Acknowledge(ctx, m.PatientID, m.Source, tenants)
		if err != nil {
			log.Error("could not process acknowledgment", "err", err.Error())
		}
	}
}
