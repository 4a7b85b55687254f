package storage

import (
	"context"
	"time"

	"github.com/carewatch/inactivity-mgmt/pkg/types"
	"github.com/jackc/pgx/v5"
)

// AddMotionEvent appends a motion event to the log. The second return value
// is false when an event with the same (device_id, occurred_at, event_type)
// key has been recorded before.
func (s *Storage) AddMotionEvent(ctx context.Context, ev types.MotionEvent) (bool, error) {
	if ev.DeviceID == "" {
		return false, ErrNoID
	}

	if ev.Tenant == "" {
		return false, ErrMissingTenant
	}

	if ev.ReceivedAt.IsZero() {
		ev.ReceivedAt = time.Now().UTC()
	}

	args := pgx.NamedArgs{
		"device_id":   ev.DeviceID,
		"event_type":  ev.EventType,
		"occurred_at": ev.OccurredAt,
		"received_at": ev.ReceivedAt,
		"tenant":      ev.Tenant,
	}

	tag, err := s.pool.Exec(ctx, `
		INSERT INTO motion_events (device_id, event_type, occurred_at, received_at, tenant)
		VALUES (@device_id, @event_type, @occurred_at, @received_at, @tenant)
		ON CONFLICT (device_id, occurred_at, event_type) DO NOTHING
	`, args)
	if err != nil {
		return false, err
	}

	return tag.RowsAffected() > 0, nil
}

func (s *Storage) QueryMotionEvents(ctx context.Context, conditions ...ConditionFunc) (types.Collection[types.MotionEvent], error) {
	condition := &Condition{}
	for _, f := range conditions {
		f(condition)
	}

	if condition.sortBy == "" {
		condition.sortBy = "occurred_at"
	}

	args := condition.NamedArgs()
	where := condition.Where()

	var deviceID, eventType, tenant string
	var occurredAt, receivedAt time.Time
	var count int64

	query := `
		SELECT device_id, event_type, occurred_at, received_at, tenant, count(*) OVER () AS count
		FROM motion_events
		WHERE ` + where + `
		ORDER BY ` + condition.SortBy() + ` ` + condition.SortOrder() + `
		OFFSET @offset LIMIT @limit
	`

	args["offset"] = condition.Offset()
	args["limit"] = condition.Limit()

	rows, err := s.pool.Query(ctx, query, args)
	if err != nil {
		return types.Collection[types.MotionEvent]{}, err
	}

	events := make([]types.MotionEvent, 0)

	_, err = pgx.ForEachRow(rows, []any{&deviceID, &eventType, &occurredAt, &receivedAt, &tenant, &count}, func() error {
		events = append(events, types.MotionEvent{
			DeviceID:   deviceID,
			EventType:  eventType,
			OccurredAt: occurredAt,
			ReceivedAt: receivedAt,
			Tenant:     tenant,
		})
		return nil
	})
	if err != nil {
		return types.Collection[types.MotionEvent]{}, err
	}

	return types.Collection[types.MotionEvent]{
		Data:       events,
		Count:      uint64(len(events)),
		Offset:     uint64(condition.Offset()),
		Limit:      uint64(condition.Limit()),
		TotalCount: uint64(count),
	}, nil
}
