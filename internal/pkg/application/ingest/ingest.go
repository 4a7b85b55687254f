package ingest

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/carewatch/inactivity-mgmt/internal/pkg/infrastructure/registry"
	"github.com/carewatch/inactivity-mgmt/internal/pkg/infrastructure/storage"
	"github.com/carewatch/inactivity-mgmt/pkg/types"
	"github.com/diwise/service-chassis/pkg/infrastructure/o11y/logging"
	"github.com/diwise/service-chassis/pkg/infrastructure/o11y/tracing"
	"go.opentelemetry.io/otel"
)

var tracer = otel.Tracer("inactivity-mgmt/ingest")

var ErrBadEvent = errors.New("malformed motion event")

// Result tells the caller what happened to an accepted event. A duplicate is
// still accepted, delivery retries from upstream gateways are expected.
type Result struct {
	Accepted     bool
	Duplicate    bool
	Transitioned bool
}

//go:generate moq -rm -out ingest_mock.go . EventIngestor
type EventIngestor interface {
	Ingest(ctx context.Context, ev types.MotionEvent) (Result, error)
	QueryEvents(ctx context.Context, deviceID string, after time.Time, offset, limit int, tenants []string) (types.Collection[types.MotionEvent], error)
}

type EventStorage interface {
	AddMotionEvent(ctx context.Context, ev types.MotionEvent) (bool, error)
	QueryMotionEvents(ctx context.Context, conditions ...storage.ConditionFunc) (types.Collection[types.MotionEvent], error)
}

type SessionHandler interface {
	HandleMotion(ctx context.Context, device types.Device, ev types.MotionEvent) (bool, error)
	HandleNoMotion(ctx context.Context, device types.Device, ev types.MotionEvent) (bool, error)
}

type ingestor struct {
	events   EventStorage
	sessions SessionHandler
	devices  registry.DeviceRegistry
}

func New(events EventStorage, sessions SessionHandler, devices registry.DeviceRegistry) EventIngestor {
	return &ingestor{
		events:   events,
		sessions: sessions,
		devices:  devices,
	}
}

// Ingest validates, persists and routes a single motion event. The append
// only event log absorbs duplicates, so redelivery never reaches the session
// state machine twice.
func (i *ingestor) Ingest(ctx context.Context, ev types.MotionEvent) (Result, error) {
	var err error
	ctx, span := tracer.Start(ctx, "ingest-motion-event")
	defer func() { tracing.RecordAnyErrorAndEndSpan(err, span) }()

	log := logging.GetFromContext(ctx)

	err = validate(ev)
	if err != nil {
		return Result{}, err
	}

	device, err := i.devices.GetDevice(ctx, ev.DeviceID)
	if err != nil {
		if errors.Is(err, registry.ErrDeviceNotFound) {
			// a configuration gap, never surfaced to the monitored person
			log.Warn("motion event from unregistered device", "device_id", ev.DeviceID)
			return Result{Accepted: true}, nil
		}
		return Result{}, err
	}

	if !device.Active {
		log.Debug("ignoring event from inactive device", "device_id", ev.DeviceID)
		return Result{Accepted: true}, nil
	}

	ev.Tenant = device.Tenant
	if ev.ReceivedAt.IsZero() {
		ev.ReceivedAt = time.Now().UTC()
	}

	novel, err := i.events.AddMotionEvent(ctx, ev)
	if err != nil {
		return Result{}, err
	}

	if !novel {
		return Result{Accepted: true, Duplicate: true}, nil
	}

	var transitioned bool

	switch ev.EventType {
	case types.MotionDetected:
		transitioned, err = i.sessions.HandleMotion(ctx, device, ev)
	case types.MotionNotDetected:
		transitioned, err = i.sessions.HandleNoMotion(ctx, device, ev)
	}

	if err != nil {
		return Result{}, err
	}

	return Result{Accepted: true, Transitioned: transitioned}, nil
}

// QueryEvents pages through the raw event log, newest first. Dashboards use
// it to audit what a device actually reported.
func (i *ingestor) QueryEvents(ctx context.Context, deviceID string, after time.Time, offset, limit int, tenants []string) (types.Collection[types.MotionEvent], error) {
	conditions := []storage.ConditionFunc{
		storage.WithTenants(tenants),
		storage.WithOffset(offset),
		storage.WithLimit(limit),
		storage.WithSortBy("occurred_at"),
		storage.WithSortDesc(true),
	}

	if deviceID != "" {
		conditions = append(conditions, storage.WithDeviceID(deviceID))
	}

	if !after.IsZero() {
		conditions = append(conditions, storage.WithOccurredAfter(after))
	}

	return i.events.QueryMotionEvents(ctx, conditions...)
}

func validate(ev types.MotionEvent) error {
	if ev.DeviceID == "" {
		return fmt.Errorf("%w: missing deviceID", ErrBadEvent)
	}

	if ev.EventType != types.MotionDetected && ev.EventType != types.MotionNotDetected {
		return fmt.Errorf("%w: unknown event type %q", ErrBadEvent, ev.EventType)
	}

	if ev.OccurredAt.IsZero() {
		return fmt.Errorf("%w: missing occurredAt", ErrBadEvent)
	}

	return nil
}
