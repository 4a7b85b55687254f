package storage

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/carewatch/inactivity-mgmt/pkg/types"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

func (s *Storage) CreateSession(ctx context.Context, session types.MonitoringSession) error {
	if session.ID == "" || session.DeviceID == "" {
		return ErrNoID
	}

	if session.Tenant == "" {
		return ErrMissingTenant
	}

	args := pgx.NamedArgs{
		"session_id":            session.ID,
		"device_id":             session.DeviceID,
		"patient_id":            session.PatientID,
		"state":                 session.State,
		"version":               session.Version,
		"inactivity_started_at": session.InactivityStartedAt,
		"tenant":                session.Tenant,
	}

	_, err := s.pool.Exec(ctx, `
		INSERT INTO monitoring_sessions (session_id, device_id, patient_id, state, version, inactivity_started_at, tenant)
		VALUES (@session_id, @device_id, @patient_id, @state, @version, @inactivity_started_at, @tenant)
	`, args)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return ErrAlreadyExist
		}
		return err
	}

	return nil
}

// UpdateSession writes a session row keyed on (session_id, expectedVersion).
// A row modified by a concurrent writer yields ErrConflict and the caller is
// expected to re-read and recheck whether its transition is still valid.
func (s *Storage) UpdateSession(ctx context.Context, session types.MonitoringSession, expectedVersion uint32) error {
	if session.ID == "" {
		return ErrNoID
	}

	args := pgx.NamedArgs{
		"session_id":            session.ID,
		"state":                 session.State,
		"version":               session.Version,
		"checkin_sent_at":       session.CheckinSentAt,
		"escalation_started_at": session.EscalationStartedAt,
		"resolved_at":           session.ResolvedAt,
		"resolution_reason":     session.ResolutionReason,
		"expected_version":      expectedVersion,
	}

	tag, err := s.pool.Exec(ctx, `
		UPDATE monitoring_sessions
		SET state = @state, version = @version, checkin_sent_at = @checkin_sent_at,
			escalation_started_at = @escalation_started_at, resolved_at = @resolved_at,
			resolution_reason = @resolution_reason, modified_on = CURRENT_TIMESTAMP
		WHERE session_id = @session_id AND version = @expected_version
	`, args)
	if err != nil {
		return err
	}

	if tag.RowsAffected() == 0 {
		return ErrConflict
	}

	return nil
}

// EscalateSession commits the session transition into ESCALATED and the
// alert it raises in one transaction. Either both rows land or neither does,
// a session can never end up escalated without a visible alert.
func (s *Storage) EscalateSession(ctx context.Context, session types.MonitoringSession, expectedVersion uint32, alert types.Alert) error {
	if session.ID == "" || alert.ID == "" {
		return ErrNoID
	}

	tx, err := s.pool.Begin(ctx)
	if err != nil {
		return err
	}
	defer tx.Rollback(ctx)

	args := pgx.NamedArgs{
		"session_id":            session.ID,
		"state":                 session.State,
		"version":               session.Version,
		"checkin_sent_at":       session.CheckinSentAt,
		"escalation_started_at": session.EscalationStartedAt,
		"resolved_at":           session.ResolvedAt,
		"resolution_reason":     session.ResolutionReason,
		"expected_version":      expectedVersion,
	}

	tag, err := tx.Exec(ctx, `
		UPDATE monitoring_sessions
		SET state = @state, version = @version, checkin_sent_at = @checkin_sent_at,
			escalation_started_at = @escalation_started_at, resolved_at = @resolved_at,
			resolution_reason = @resolution_reason, modified_on = CURRENT_TIMESTAMP
		WHERE session_id = @session_id AND version = @expected_version
	`, args)
	if err != nil {
		return err
	}

	if tag.RowsAffected() == 0 {
		return ErrConflict
	}

	targets, _ := json.Marshal(alert.NotifiedTargets)

	_, err = tx.Exec(ctx, `
		INSERT INTO alerts (alert_id, session_id, patient_id, alert_type, severity, status, notified_targets, escalated_at, tenant)
		VALUES (@alert_id, @session_id, @patient_id, @alert_type, @severity, @status, @notified_targets, @escalated_at, @tenant)
	`, pgx.NamedArgs{
		"alert_id":         alert.ID,
		"session_id":       alert.SessionID,
		"patient_id":       alert.PatientID,
		"alert_type":       alert.AlertType,
		"severity":         alert.Severity,
		"status":           alert.Status,
		"notified_targets": string(targets),
		"escalated_at":     alert.EscalatedAt,
		"tenant":           alert.Tenant,
	})
	if err != nil {
		return err
	}

	return tx.Commit(ctx)
}

func (s *Storage) SetSessionDeliveryFailed(ctx context.Context, sessionID string) error {
	_, err := s.pool.Exec(ctx, `
		UPDATE monitoring_sessions
		SET delivery_failed = TRUE, modified_on = CURRENT_TIMESTAMP
		WHERE session_id = @session_id
	`, pgx.NamedArgs{"session_id": sessionID})

	return err
}

func (s *Storage) GetSession(ctx context.Context, conditions ...ConditionFunc) (types.MonitoringSession, error) {
	condition := &Condition{}
	for _, f := range conditions {
		f(condition)
	}

	args := condition.NamedArgs()
	where := condition.Where()

	query := `
		SELECT session_id, device_id, patient_id, state, version, inactivity_started_at,
			checkin_sent_at, escalation_started_at, resolved_at, resolution_reason, delivery_failed, tenant
		FROM monitoring_sessions
		WHERE ` + where + `
		ORDER BY inactivity_started_at DESC
		LIMIT 1
	`

	session, err := scanSession(s.pool.QueryRow(ctx, query, args))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return types.MonitoringSession{}, ErrNoRows
		}
		return types.MonitoringSession{}, err
	}

	return session, nil
}

func (s *Storage) QuerySessions(ctx context.Context, conditions ...ConditionFunc) (types.Collection[types.MonitoringSession], error) {
	condition := &Condition{}
	for _, f := range conditions {
		f(condition)
	}

	if condition.sortBy == "" {
		condition.sortBy = "inactivity_started_at"
		condition.sortOrder = "DESC"
	}

	args := condition.NamedArgs()
	where := condition.Where()

	args["offset"] = condition.Offset()
	args["limit"] = condition.Limit()

	query := `
		SELECT session_id, device_id, patient_id, state, version, inactivity_started_at,
			checkin_sent_at, escalation_started_at, resolved_at, resolution_reason, delivery_failed, tenant,
			count(*) OVER () AS count
		FROM monitoring_sessions
		WHERE ` + where + `
		ORDER BY ` + condition.SortBy() + ` ` + condition.SortOrder() + `
		OFFSET @offset LIMIT @limit
	`

	rows, err := s.pool.Query(ctx, query, args)
	if err != nil {
		return types.Collection[types.MonitoringSession]{}, err
	}
	defer rows.Close()

	sessions := make([]types.MonitoringSession, 0)
	var count int64

	for rows.Next() {
		session, err := scanSessionWithCount(rows, &count)
		if err != nil {
			return types.Collection[types.MonitoringSession]{}, err
		}
		sessions = append(sessions, session)
	}
	if rows.Err() != nil {
		return types.Collection[types.MonitoringSession]{}, rows.Err()
	}

	return types.Collection[types.MonitoringSession]{
		Data:       sessions,
		Count:      uint64(len(sessions)),
		Offset:     uint64(condition.Offset()),
		Limit:      uint64(condition.Limit()),
		TotalCount: uint64(count),
	}, nil
}

// GetDueSessions returns unresolved sessions whose next transition is due at
// or before now. Due times are derived from the persisted timestamps plus the
// per device configuration, which is what makes the sweep restart safe.
func (s *Storage) GetDueSessions(ctx context.Context, now time.Time) (types.Collection[types.MonitoringSession], error) {
	args := pgx.NamedArgs{
		"now":         now,
		"watching":    types.SessionStateWatching,
		"checking_in": types.SessionStateCheckingIn,
	}

	query := `
		SELECT s.session_id, s.device_id, s.patient_id, s.state, s.version, s.inactivity_started_at,
			s.checkin_sent_at, s.escalation_started_at, s.resolved_at, s.resolution_reason, s.delivery_failed, s.tenant,
			count(*) OVER () AS count
		FROM monitoring_sessions s
		JOIN devices d ON d.device_id = s.device_id
		WHERE s.resolved_at IS NULL
		AND (
			(s.state = @watching AND s.inactivity_started_at + make_interval(secs => d.inactivity_threshold_secs) <= @now)
			OR
			(s.state = @checking_in AND s.checkin_sent_at + make_interval(secs => d.escalation_delay_secs) <= @now)
		)
		ORDER BY s.inactivity_started_at ASC
	`

	rows, err := s.pool.Query(ctx, query, args)
	if err != nil {
		return types.Collection[types.MonitoringSession]{}, err
	}
	defer rows.Close()

	sessions := make([]types.MonitoringSession, 0)
	var count int64

	for rows.Next() {
		session, err := scanSessionWithCount(rows, &count)
		if err != nil {
			return types.Collection[types.MonitoringSession]{}, err
		}
		sessions = append(sessions, session)
	}
	if rows.Err() != nil {
		return types.Collection[types.MonitoringSession]{}, rows.Err()
	}

	return types.Collection[types.MonitoringSession]{
		Data:       sessions,
		Count:      uint64(len(sessions)),
		TotalCount: uint64(count),
	}, nil
}

func scanSession(row pgx.Row) (types.MonitoringSession, error) {
	var session types.MonitoringSession
	var checkinSentAt, escalationStartedAt, resolvedAt *time.Time
	var resolutionReason *string

	err := row.Scan(&session.ID, &session.DeviceID, &session.PatientID, &session.State, &session.Version,
		&session.InactivityStartedAt, &checkinSentAt, &escalationStartedAt, &resolvedAt, &resolutionReason,
		&session.DeliveryFailed, &session.Tenant)
	if err != nil {
		return types.MonitoringSession{}, err
	}

	session.CheckinSentAt = checkinSentAt
	session.EscalationStartedAt = escalationStartedAt
	session.ResolvedAt = resolvedAt
	if resolutionReason != nil {
		session.ResolutionReason = *resolutionReason
	}

	return session, nil
}

func scanSessionWithCount(row pgx.Row, count *int64) (types.MonitoringSession, error) {
	var session types.MonitoringSession
	var checkinSentAt, escalationStartedAt, resolvedAt *time.Time
	var resolutionReason *string

	err := row.Scan(&session.ID, &session.DeviceID, &session.PatientID, &session.State, &session.Version,
		&session.InactivityStartedAt, &checkinSentAt, &escalationStartedAt, &resolvedAt, &resolutionReason,
		&session.DeliveryFailed, &session.Tenant, count)
	if err != nil {
		return types.MonitoringSession{}, err
	}

	session.CheckinSentAt = checkinSentAt
	session.EscalationStartedAt = escalationStartedAt
	session.ResolvedAt = resolvedAt
	if resolutionReason != nil {
		session.ResolutionReason = *resolutionReason
	}

	return session, nil
}
