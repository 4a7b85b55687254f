package ingest

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/carewatch/inactivity-mgmt/internal/pkg/application/monitoring"
	"github.com/carewatch/inactivity-mgmt/internal/pkg/infrastructure/registry"
	"github.com/carewatch/inactivity-mgmt/internal/pkg/infrastructure/storage"
	"github.com/carewatch/inactivity-mgmt/pkg/types"
	"github.com/matryer/is"
)

type eventStoreMock struct {
	novel      bool
	calls      int
	conditions []storage.ConditionFunc
}

func (m *eventStoreMock) AddMotionEvent(ctx context.Context, ev types.MotionEvent) (bool, error) {
	m.calls++
	return m.novel, nil
}

func (m *eventStoreMock) QueryMotionEvents(ctx context.Context, conditions ...storage.ConditionFunc) (types.Collection[types.MotionEvent], error) {
	m.conditions = conditions
	return types.Collection[types.MotionEvent]{}, nil
}

func testRegistry() *registry.DeviceRegistryMock {
	return &registry.DeviceRegistryMock{
		GetDeviceFunc: func(ctx context.Context, deviceID string) (types.Device, error) {
			return types.Device{
				DeviceID:                   deviceID,
				PatientID:                  "patient-01",
				InactivityThresholdSeconds: 1800,
				EscalationDelaySeconds:     900,
				Active:                     true,
				Tenant:                     "default",
			}, nil
		},
	}
}

func testSessions() *monitoring.MonitoringServiceMock {
	return &monitoring.MonitoringServiceMock{
		HandleMotionFunc: func(ctx context.Context, device types.Device, ev types.MotionEvent) (bool, error) {
			return true, nil
		},
		HandleNoMotionFunc: func(ctx context.Context, device types.Device, ev types.MotionEvent) (bool, error) {
			return true, nil
		},
	}
}

func testEvent(eventType string) types.MotionEvent {
	return types.MotionEvent{
		DeviceID:   "device-01",
		EventType:  eventType,
		OccurredAt: time.Date(2025, 1, 1, 8, 0, 0, 0, time.UTC),
	}
}

func TestIngestRoutesNoMotionToSessionHandler(t *testing.T) {
	is := is.New(t)
	ctx := context.Background()

	events := &eventStoreMock{novel: true}
	sessions := testSessions()
	i := New(events, sessions, testRegistry())

	result, err := i.Ingest(ctx, testEvent(types.MotionNotDetected))
	is.NoErr(err)
	is.True(result.Accepted)
	is.True(result.Transitioned)
	is.Equal(len(sessions.HandleNoMotionCalls()), 1)
	is.Equal(len(sessions.HandleMotionCalls()), 0)

	// the tenant is stamped from the registry before the event is stored
	is.Equal(sessions.HandleNoMotionCalls()[0].Ev.Tenant, "default")
}

func TestIngestRoutesMotionToSessionHandler(t *testing.T) {
	is := is.New(t)
	ctx := context.Background()

	events := &eventStoreMock{novel: true}
	sessions := testSessions()
	i := New(events, sessions, testRegistry())

	result, err := i.Ingest(ctx, testEvent(types.MotionDetected))
	is.NoErr(err)
	is.True(result.Accepted)
	is.Equal(len(sessions.HandleMotionCalls()), 1)
}

func TestDuplicateEventIsAcceptedButNotRouted(t *testing.T) {
	is := is.New(t)
	ctx := context.Background()

	events := &eventStoreMock{novel: false}
	sessions := testSessions()
	i := New(events, sessions, testRegistry())

	result, err := i.Ingest(ctx, testEvent(types.MotionNotDetected))
	is.NoErr(err)
	is.True(result.Accepted)
	is.True(result.Duplicate)
	is.Equal(len(sessions.HandleNoMotionCalls()), 0)
}

func TestMalformedEventIsRejected(t *testing.T) {
	is := is.New(t)
	ctx := context.Background()

	events := &eventStoreMock{novel: true}
	i := New(events, testSessions(), testRegistry())

	_, err := i.Ingest(ctx, types.MotionEvent{DeviceID: "device-01", EventType: "SOMETHING_ELSE"})
	is.True(errors.Is(err, ErrBadEvent))

	ev := testEvent(types.MotionDetected)
	ev.DeviceID = ""
	_, err = i.Ingest(ctx, ev)
	is.True(errors.Is(err, ErrBadEvent))

	is.Equal(events.calls, 0)
}

func TestUnregisteredDeviceIsLoggedNotTracked(t *testing.T) {
	is := is.New(t)
	ctx := context.Background()

	events := &eventStoreMock{novel: true}
	sessions := testSessions()
	devices := &registry.DeviceRegistryMock{
		GetDeviceFunc: func(ctx context.Context, deviceID string) (types.Device, error) {
			return types.Device{}, registry.ErrDeviceNotFound
		},
	}
	i := New(events, sessions, devices)

	result, err := i.Ingest(ctx, testEvent(types.MotionNotDetected))
	is.NoErr(err)
	is.True(result.Accepted)
	is.True(!result.Transitioned)
	is.Equal(events.calls, 0)
	is.Equal(len(sessions.HandleNoMotionCalls()), 0)
}

func TestQueryEventsFiltersAndSortsNewestFirst(t *testing.T) {
	is := is.New(t)
	ctx := context.Background()

	events := &eventStoreMock{}
	i := New(events, testSessions(), testRegistry())

	after := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
	_, err := i.QueryEvents(ctx, "device-01", after, 20, 10, []string{"default"})
	is.NoErr(err)

	c := &storage.Condition{}
	for _, f := range events.conditions {
		c = f(c)
	}

	is.Equal(c.DeviceID, "device-01")
	is.Equal(c.OccurredAfter, after)
	is.Equal(c.Offset(), 20)
	is.Equal(c.Limit(), 10)
	is.Equal(c.Tenants, []string{"default"})
	is.Equal(c.SortBy(), "occurred_at")
	is.Equal(c.SortOrder(), "DESC")
}

func TestInactiveDeviceIsIgnored(t *testing.T) {
	is := is.New(t)
	ctx := context.Background()

	events := &eventStoreMock{novel: true}
	sessions := testSessions()
	devices := &registry.DeviceRegistryMock{
		GetDeviceFunc: func(ctx context.Context, deviceID string) (types.Device, error) {
			return types.Device{DeviceID: deviceID, Active: false, Tenant: "default"}, nil
		},
	}
	i := New(events, sessions, devices)

	result, err := i.Ingest(ctx, testEvent(types.MotionNotDetected))
	is.NoErr(err)
	is.True(result.Accepted)
	is.Equal(events.calls, 0)
}
