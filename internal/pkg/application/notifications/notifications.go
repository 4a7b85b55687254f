package notifications

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/carewatch/inactivity-mgmt/pkg/types"
	"github.com/cenkalti/backoff/v4"
	"github.com/diwise/service-chassis/pkg/infrastructure/o11y/logging"
	"github.com/diwise/service-chassis/pkg/infrastructure/o11y/tracing"
	"github.com/google/uuid"
	"github.com/samber/lo"
	"go.opentelemetry.io/otel"
)

var tracer = otel.Tracer("inactivity-mgmt/notifications")

// ErrTransient marks gateway failures that are worth retrying.
var ErrTransient = errors.New("transient dispatch error")

type Receipt struct {
	ProviderMessageID string
}

//go:generate moq -rm -out sender_mock.go . Sender
type Sender interface {
	Send(ctx context.Context, target, message string) (Receipt, error)
}

type AttemptStorage interface {
	AddNotificationAttempt(ctx context.Context, attempt types.NotificationAttempt) error
}

type MessageConfig struct {
	Channel string   `yaml:"channel"`
	Target  string   `yaml:"target"`
	Targets []string `yaml:"targets"`
	Message string   `yaml:"message"`
}

type Config struct {
	GatewayURL  string        `yaml:"gatewayURL"`
	MaxAttempts int           `yaml:"maxAttempts"`
	CheckIn     MessageConfig `yaml:"checkin"`
	Escalation  MessageConfig `yaml:"escalation"`
}

type Dispatcher struct {
	sender      Sender
	storage     AttemptStorage
	config      *Config
	maxInterval time.Duration
}

func New(sender Sender, storage AttemptStorage, config *Config) *Dispatcher {
	if config.MaxAttempts == 0 {
		config.MaxAttempts = 3
	}

	return &Dispatcher{
		sender:      sender,
		storage:     storage,
		config:      config,
		maxInterval: 10 * time.Second,
	}
}

// SendCheckIn asks the monitored person to confirm they are ok. The caller
// has already committed the WATCHING -> CHECKING_IN transition; a failed
// dispatch is recorded but never rolls that transition back.
func (d *Dispatcher) SendCheckIn(ctx context.Context, session types.MonitoringSession, device types.Device) types.DeliveryOutcome {
	var err error
	ctx, span := tracer.Start(ctx, "send-check-in")
	defer func() { tracing.RecordAnyErrorAndEndSpan(err, span) }()

	target := expandTarget(d.config.CheckIn.Target, device)
	message := d.config.CheckIn.Message
	if message == "" {
		message = "Are you ok? Please confirm by replying or moving around."
	}

	outcome := d.deliver(ctx, types.NotificationAttempt{
		ID:        uuid.NewString(),
		SessionID: session.ID,
		Channel:   d.config.CheckIn.Channel,
		Target:    target,
	}, message)

	outcome.Targets = []string{target}

	return outcome
}

// SendEscalation notifies the configured caregiver targets about an alert.
func (d *Dispatcher) SendEscalation(ctx context.Context, alert types.Alert, device types.Device) types.DeliveryOutcome {
	var err error
	ctx, span := tracer.Start(ctx, "send-escalation")
	defer func() { tracing.RecordAnyErrorAndEndSpan(err, span) }()

	message := d.config.Escalation.Message
	if message == "" {
		message = fmt.Sprintf("No activity detected for patient %s (%s) and no response to check-in.", alert.PatientID, device.Location)
	}

	targets := lo.Uniq(lo.Map(d.config.Escalation.Targets, func(t string, _ int) string {
		return expandTarget(t, device)
	}))

	outcome := types.DeliveryOutcome{Delivered: len(targets) > 0, Targets: targets}

	for _, target := range targets {
		targetOutcome := d.deliver(ctx, types.NotificationAttempt{
			ID:      uuid.NewString(),
			AlertID: alert.ID,
			Channel: d.config.Escalation.Channel,
			Target:  target,
		}, message)

		outcome.Attempts += targetOutcome.Attempts
		if !targetOutcome.Delivered {
			outcome.Delivered = false
		}
		if targetOutcome.ProviderMessageID != "" {
			outcome.ProviderMessageID = targetOutcome.ProviderMessageID
		}
	}

	return outcome
}

func (d *Dispatcher) deliver(ctx context.Context, attempt types.NotificationAttempt, message string) types.DeliveryOutcome {
	log := logging.GetFromContext(ctx)

	var receipt Receipt

	operation := func() error {
		var sendErr error

		attempt.AttemptCount++

		receipt, sendErr = d.sender.Send(ctx, attempt.Target, message)
		if sendErr == nil {
			attempt.Status = types.AttemptStatusSent
			attempt.LastError = ""
			d.record(ctx, attempt)
			return nil
		}

		attempt.LastError = sendErr.Error()

		if !errors.Is(sendErr, ErrTransient) {
			attempt.Status = types.AttemptStatusFailed
			d.record(ctx, attempt)
			return backoff.Permanent(sendErr)
		}

		if attempt.AttemptCount >= d.config.MaxAttempts {
			attempt.Status = types.AttemptStatusExhausted
		} else {
			attempt.Status = types.AttemptStatusRetrying
		}
		d.record(ctx, attempt)

		return sendErr
	}

	bo := backoff.NewExponentialBackOff()
	bo.InitialInterval = 500 * time.Millisecond
	bo.MaxInterval = d.maxInterval

	err := backoff.Retry(operation, backoff.WithContext(backoff.WithMaxRetries(bo, uint64(d.config.MaxAttempts-1)), ctx))
	if err != nil {
		log.Error("notification delivery failed", "target", attempt.Target, "attempts", attempt.AttemptCount, "err", err.Error())
		return types.DeliveryOutcome{Delivered: false, Attempts: attempt.AttemptCount}
	}

	return types.DeliveryOutcome{
		Delivered:         true,
		Attempts:          attempt.AttemptCount,
		ProviderMessageID: receipt.ProviderMessageID,
	}
}

func (d *Dispatcher) record(ctx context.Context, attempt types.NotificationAttempt) {
	err := d.storage.AddNotificationAttempt(ctx, attempt)
	if err != nil {
		logging.GetFromContext(ctx).Error("could not record notification attempt", "attempt_id", attempt.ID, "err", err.Error())
	}
}

func expandTarget(target string, device types.Device) string {
	target = strings.ReplaceAll(target, "{patientID}", device.PatientID)
	target = strings.ReplaceAll(target, "{deviceID}", device.DeviceID)
	return target
}
