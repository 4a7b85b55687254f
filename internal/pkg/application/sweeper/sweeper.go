package sweeper

import (
	"context"
	"errors"
	"sync/atomic"
	"time"

	"github.com/carewatch/inactivity-mgmt/internal/pkg/infrastructure/registry"
	"github.com/carewatch/inactivity-mgmt/pkg/types"
	"github.com/diwise/service-chassis/pkg/infrastructure/o11y/logging"
	"github.com/diwise/service-chassis/pkg/infrastructure/o11y/tracing"
	"go.opentelemetry.io/otel"
)

var tracer = otel.Tracer("inactivity-mgmt/sweeper")

const DefaultInterval = 15 * time.Second

// Sweeper periodically scans for sessions whose next transition is due.
// Due times are derived from persisted timestamps, so a restart loses no
// scheduled work.
type Sweeper interface {
	Start(ctx context.Context)
	Stop(ctx context.Context)
	Sweep(ctx context.Context, now time.Time) (int, error)
}

type DueSessionProvider interface {
	GetDueSessions(ctx context.Context, now time.Time) (types.Collection[types.MonitoringSession], error)
}

type SessionAdvancer interface {
	AdvanceDue(ctx context.Context, session types.MonitoringSession, device types.Device, now time.Time) (bool, error)
}

type sweeper struct {
	storage  DueSessionProvider
	monitor  SessionAdvancer
	devices  registry.DeviceRegistry
	interval time.Duration

	inflight atomic.Bool
	done     chan struct{}
}

func New(storage DueSessionProvider, monitor SessionAdvancer, devices registry.DeviceRegistry, interval time.Duration) Sweeper {
	if interval == 0 {
		interval = DefaultInterval
	}

	return &sweeper{
		storage:  storage,
		monitor:  monitor,
		devices:  devices,
		interval: interval,
		done:     make(chan struct{}),
	}
}

func (s *sweeper) Start(ctx context.Context) {
	logging.GetFromContext(ctx).Info("starting sweeper", "interval", s.interval.String())
	go s.run(ctx)
}

func (s *sweeper) Stop(ctx context.Context) {
	logging.GetFromContext(ctx).Info("stopping sweeper")
	close(s.done)
}

func (s *sweeper) run(ctx context.Context) {
	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-s.done:
			return
		case <-ticker.C:
			_, err := s.Sweep(ctx, time.Now().UTC())
			if err != nil {
				logging.GetFromContext(ctx).Error("sweep failed", "err", err.Error())
			}
		}
	}
}

// Sweep advances every due session once and returns the number of committed
// transitions. Overlapping sweeps are collapsed, a tick that fires while the
// previous sweep is still running is dropped.
func (s *sweeper) Sweep(ctx context.Context, now time.Time) (int, error) {
	if !s.inflight.CompareAndSwap(false, true) {
		return 0, nil
	}
	defer s.inflight.Store(false)

	var err error
	ctx, span := tracer.Start(ctx, "sweep")
	defer func() { tracing.RecordAnyErrorAndEndSpan(err, span) }()

	log := logging.GetFromContext(ctx)

	due, err := s.storage.GetDueSessions(ctx, now)
	if err != nil {
		return 0, err
	}

	count := 0

	for _, session := range due.Data {
		device, err := s.devices.GetDevice(ctx, session.DeviceID)
		if err != nil {
			if errors.Is(err, registry.ErrDeviceNotFound) {
				log.Warn("due session for unregistered device", "session_id", session.ID, "device_id", session.DeviceID)
				continue
			}
			log.Error("could not fetch device for due session", "session_id", session.ID, "err", err.Error())
			continue
		}

		transitioned, err := s.monitor.AdvanceDue(ctx, session, device, now)
		if err != nil {
			log.Error("could not advance session", "session_id", session.ID, "err", err.Error())
			continue
		}

		if transitioned {
			count++
		}
	}

	if count > 0 {
		log.Debug("sweep complete", "due", len(due.Data), "transitioned", count)
	}

	return count, nil
}
