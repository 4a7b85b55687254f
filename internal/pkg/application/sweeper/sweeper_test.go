package sweeper

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/carewatch/inactivity-mgmt/internal/pkg/application/monitoring"
	"github.com/carewatch/inactivity-mgmt/internal/pkg/infrastructure/registry"
	"github.com/carewatch/inactivity-mgmt/pkg/types"
	"github.com/matryer/is"
)

type dueProviderMock struct {
	mu       sync.Mutex
	sessions []types.MonitoringSession
	calls    int
	release  chan struct{}
}

func (m *dueProviderMock) GetDueSessions(ctx context.Context, now time.Time) (types.Collection[types.MonitoringSession], error) {
	m.mu.Lock()
	m.calls++
	m.mu.Unlock()

	if m.release != nil {
		<-m.release
	}

	return types.Collection[types.MonitoringSession]{
		Data:  m.sessions,
		Count: uint64(len(m.sessions)),
	}, nil
}

func (m *dueProviderMock) callCount() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.calls
}

func dueSession(id, deviceID string) types.MonitoringSession {
	return types.MonitoringSession{
		ID:                  id,
		DeviceID:            deviceID,
		PatientID:           "patient-01",
		State:               types.SessionStateWatching,
		Version:             1,
		InactivityStartedAt: time.Date(2025, 1, 1, 8, 0, 0, 0, time.UTC),
		Tenant:              "default",
	}
}

func testRegistry() *registry.DeviceRegistryMock {
	return &registry.DeviceRegistryMock{
		GetDeviceFunc: func(ctx context.Context, deviceID string) (types.Device, error) {
			return types.Device{DeviceID: deviceID, Active: true, Tenant: "default"}, nil
		},
	}
}

func TestSweepAdvancesDueSessions(t *testing.T) {
	is := is.New(t)
	ctx := context.Background()

	provider := &dueProviderMock{
		sessions: []types.MonitoringSession{
			dueSession("session-01", "device-01"),
			dueSession("session-02", "device-02"),
		},
	}
	monitor := &monitoring.MonitoringServiceMock{
		AdvanceDueFunc: func(ctx context.Context, session types.MonitoringSession, device types.Device, now time.Time) (bool, error) {
			return true, nil
		},
	}

	s := New(provider, monitor, testRegistry(), time.Minute)

	count, err := s.Sweep(ctx, time.Now().UTC())
	is.NoErr(err)
	is.Equal(count, 2)
	is.Equal(len(monitor.AdvanceDueCalls()), 2)
}

func TestSweepCountsOnlyCommittedTransitions(t *testing.T) {
	is := is.New(t)
	ctx := context.Background()

	provider := &dueProviderMock{
		sessions: []types.MonitoringSession{
			dueSession("session-01", "device-01"),
			dueSession("session-02", "device-02"),
		},
	}
	monitor := &monitoring.MonitoringServiceMock{
		AdvanceDueFunc: func(ctx context.Context, session types.MonitoringSession, device types.Device, now time.Time) (bool, error) {
			// session-02 was resolved between the query and the advance
			return session.ID == "session-01", nil
		},
	}

	s := New(provider, monitor, testRegistry(), time.Minute)

	count, err := s.Sweep(ctx, time.Now().UTC())
	is.NoErr(err)
	is.Equal(count, 1)
}

func TestSweepSkipsUnregisteredDevices(t *testing.T) {
	is := is.New(t)
	ctx := context.Background()

	provider := &dueProviderMock{
		sessions: []types.MonitoringSession{dueSession("session-01", "device-01")},
	}
	monitor := &monitoring.MonitoringServiceMock{
		AdvanceDueFunc: func(ctx context.Context, session types.MonitoringSession, device types.Device, now time.Time) (bool, error) {
			return true, nil
		},
	}
	devices := &registry.DeviceRegistryMock{
		GetDeviceFunc: func(ctx context.Context, deviceID string) (types.Device, error) {
			return types.Device{}, registry.ErrDeviceNotFound
		},
	}

	s := New(provider, monitor, devices, time.Minute)

	count, err := s.Sweep(ctx, time.Now().UTC())
	is.NoErr(err)
	is.Equal(count, 0)
	is.Equal(len(monitor.AdvanceDueCalls()), 0)
}

func TestOverlappingSweepsAreCollapsed(t *testing.T) {
	is := is.New(t)
	ctx := context.Background()

	provider := &dueProviderMock{release: make(chan struct{})}
	monitor := &monitoring.MonitoringServiceMock{}

	s := New(provider, monitor, testRegistry(), time.Minute)

	var wg sync.WaitGroup
	wg.Add(1)
	go func() {
		defer wg.Done()
		_, _ = s.Sweep(ctx, time.Now().UTC())
	}()

	// wait for the first sweep to be holding the in flight flag
	for provider.callCount() == 0 {
		time.Sleep(time.Millisecond)
	}

	count, err := s.Sweep(ctx, time.Now().UTC())
	is.NoErr(err)
	is.Equal(count, 0)
	is.Equal(provider.callCount(), 1)

	close(provider.release)
	wg.Wait()
}
