package storage

import (
	"context"
	"time"

	"github.com/carewatch/inactivity-mgmt/pkg/types"
	"github.com/jackc/pgx/v5"
)

func (s *Storage) AddNotificationAttempt(ctx context.Context, attempt types.NotificationAttempt) error {
	if attempt.ID == "" {
		return ErrNoID
	}

	args := pgx.NamedArgs{
		"attempt_id":    attempt.ID,
		"session_id":    attempt.SessionID,
		"alert_id":      attempt.AlertID,
		"channel":       attempt.Channel,
		"target":        attempt.Target,
		"status":        attempt.Status,
		"attempt_count": attempt.AttemptCount,
		"last_error":    attempt.LastError,
	}

	_, err := s.pool.Exec(ctx, `
		INSERT INTO notification_attempts (attempt_id, session_id, alert_id, channel, target, status, attempt_count, last_error)
		VALUES (@attempt_id, @session_id, @alert_id, @channel, @target, @status, @attempt_count, @last_error)
		ON CONFLICT (attempt_id) DO UPDATE SET status = EXCLUDED.status, attempt_count = EXCLUDED.attempt_count, last_error = EXCLUDED.last_error
	`, args)
	if err != nil {
		return err
	}

	return nil
}

func (s *Storage) QueryNotificationAttempts(ctx context.Context, conditions ...ConditionFunc) (types.Collection[types.NotificationAttempt], error) {
	condition := &Condition{}
	for _, f := range conditions {
		f(condition)
	}

	args := condition.NamedArgs()
	where := condition.Where()

	args["offset"] = condition.Offset()
	args["limit"] = condition.Limit()

	var attemptID, sessionID, alertID, channel, target, status, lastError *string
	var attemptCount int
	var createdOn time.Time
	var count int64

	query := `
		SELECT attempt_id, session_id, alert_id, channel, target, status, attempt_count, last_error, created_on,
			count(*) OVER () AS count
		FROM notification_attempts
		WHERE ` + where + `
		ORDER BY created_on ASC
		OFFSET @offset LIMIT @limit
	`

	rows, err := s.pool.Query(ctx, query, args)
	if err != nil {
		return types.Collection[types.NotificationAttempt]{}, err
	}

	attempts := make([]types.NotificationAttempt, 0)

	deref := func(s *string) string {
		if s == nil {
			return ""
		}
		return *s
	}

	_, err = pgx.ForEachRow(rows, []any{&attemptID, &sessionID, &alertID, &channel, &target, &status, &attemptCount, &lastError, &createdOn, &count}, func() error {
		attempts = append(attempts, types.NotificationAttempt{
			ID:           deref(attemptID),
			SessionID:    deref(sessionID),
			AlertID:      deref(alertID),
			Channel:      deref(channel),
			Target:       deref(target),
			Status:       deref(status),
			AttemptCount: attemptCount,
			LastError:    deref(lastError),
			CreatedAt:    createdOn,
		})
		return nil
	})
	if err != nil {
		return types.Collection[types.NotificationAttempt]{}, err
	}

	return types.Collection[types.NotificationAttempt]{
		Data:       attempts,
		Count:      uint64(len(attempts)),
		Offset:     uint64(condition.Offset()),
		Limit:      uint64(condition.Limit()),
		TotalCount: uint64(count),
	}, nil
}
