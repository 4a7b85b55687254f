package storage

import (
	"context"
	"encoding/json"
	"errors"

	"github.com/carewatch/inactivity-mgmt/pkg/types"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

func (s *Storage) AddAlert(ctx context.Context, alert types.Alert) error {
	if alert.ID == "" || alert.SessionID == "" {
		return ErrNoID
	}

	if alert.Tenant == "" {
		return ErrMissingTenant
	}

	targets, _ := json.Marshal(alert.NotifiedTargets)

	args := pgx.NamedArgs{
		"alert_id":         alert.ID,
		"session_id":       alert.SessionID,
		"patient_id":       alert.PatientID,
		"alert_type":       alert.AlertType,
		"severity":         alert.Severity,
		"status":           alert.Status,
		"notified_targets": string(targets),
		"escalated_at":     alert.EscalatedAt,
		"tenant":           alert.Tenant,
	}

	_, err := s.pool.Exec(ctx, `
		INSERT INTO alerts (alert_id, session_id, patient_id, alert_type, severity, status, notified_targets, escalated_at, tenant)
		VALUES (@alert_id, @session_id, @patient_id, @alert_type, @severity, @status, @notified_targets, @escalated_at, @tenant)
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

// SetAlertNotifiedTargets records which targets a dispatch reached. Status is
// never written here, an acknowledgment may have landed while the dispatch
// was still in flight.
func (s *Storage) SetAlertNotifiedTargets(ctx context.Context, alertID string, notifiedTargets []string) error {
	targets, _ := json.Marshal(notifiedTargets)

	_, err := s.pool.Exec(ctx, `
		UPDATE alerts
		SET notified_targets = @notified_targets, modified_on = CURRENT_TIMESTAMP
		WHERE alert_id = @alert_id
	`, pgx.NamedArgs{"alert_id": alertID, "notified_targets": string(targets)})

	return err
}

func (s *Storage) UpdateAlertStatus(ctx context.Context, alertID, status, tenant string) error {
	args := pgx.NamedArgs{
		"alert_id": alertID,
		"status":   status,
		"tenant":   tenant,
	}

	tag, err := s.pool.Exec(ctx, `
		UPDATE alerts
		SET status = @status, modified_on = CURRENT_TIMESTAMP
		WHERE alert_id = @alert_id AND tenant = @tenant
	`, args)
	if err != nil {
		return err
	}

	if tag.RowsAffected() == 0 {
		return ErrNoRows
	}

	return nil
}

func (s *Storage) SetAlertDeliveryFailed(ctx context.Context, alertID string) error {
	_, err := s.pool.Exec(ctx, `
		UPDATE alerts
		SET delivery_failed = TRUE, modified_on = CURRENT_TIMESTAMP
		WHERE alert_id = @alert_id
	`, pgx.NamedArgs{"alert_id": alertID})

	return err
}

func (s *Storage) GetAlert(ctx context.Context, conditions ...ConditionFunc) (types.Alert, error) {
	condition := &Condition{}
	for _, f := range conditions {
		f(condition)
	}

	args := condition.NamedArgs()
	where := condition.Where()

	query := `
		SELECT alert_id, session_id, patient_id, alert_type, severity, status, notified_targets, delivery_failed, escalated_at, created_on, tenant
		FROM alerts
		WHERE ` + where + `
		ORDER BY escalated_at DESC
		LIMIT 1
	`

	alert, err := scanAlert(s.pool.QueryRow(ctx, query, args))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return types.Alert{}, ErrNoRows
		}
		return types.Alert{}, err
	}

	return alert, nil
}

func (s *Storage) QueryAlerts(ctx context.Context, conditions ...ConditionFunc) (types.Collection[types.Alert], error) {
	condition := &Condition{}
	for _, f := range conditions {
		f(condition)
	}

	if condition.sortBy == "" {
		condition.sortBy = "escalated_at"
		condition.sortOrder = "DESC"
	}

	args := condition.NamedArgs()
	where := condition.Where()

	args["offset"] = condition.Offset()
	args["limit"] = condition.Limit()

	query := `
		SELECT alert_id, session_id, patient_id, alert_type, severity, status, notified_targets, delivery_failed, escalated_at, created_on, tenant,
			count(*) OVER () AS count
		FROM alerts
		WHERE ` + where + `
		ORDER BY ` + condition.SortBy() + ` ` + condition.SortOrder() + `
		OFFSET @offset LIMIT @limit
	`

	rows, err := s.pool.Query(ctx, query, args)
	if err != nil {
		return types.Collection[types.Alert]{}, err
	}
	defer rows.Close()

	alerts := make([]types.Alert, 0)
	var count int64

	for rows.Next() {
		alert, err := scanAlertWithCount(rows, &count)
		if err != nil {
			return types.Collection[types.Alert]{}, err
		}
		alerts = append(alerts, alert)
	}
	if rows.Err() != nil {
		return types.Collection[types.Alert]{}, rows.Err()
	}

	return types.Collection[types.Alert]{
		Data:       alerts,
		Count:      uint64(len(alerts)),
		Offset:     uint64(condition.Offset()),
		Limit:      uint64(condition.Limit()),
		TotalCount: uint64(count),
	}, nil
}

func scanAlert(row pgx.Row) (types.Alert, error) {
	var alert types.Alert
	var targets []byte

	err := row.Scan(&alert.ID, &alert.SessionID, &alert.PatientID, &alert.AlertType, &alert.Severity,
		&alert.Status, &targets, &alert.DeliveryFailed, &alert.EscalatedAt, &alert.CreatedAt, &alert.Tenant)
	if err != nil {
		return types.Alert{}, err
	}

	if len(targets) > 0 {
		json.Unmarshal(targets, &alert.NotifiedTargets)
	}

	return alert, nil
}

func scanAlertWithCount(row pgx.Row, count *int64) (types.Alert, error) {
	var alert types.Alert
	var targets []byte

	err := row.Scan(&alert.ID, &alert.SessionID, &alert.PatientID, &alert.AlertType, &alert.Severity,
		&alert.Status, &targets, &alert.DeliveryFailed, &alert.EscalatedAt, &alert.CreatedAt, &alert.Tenant, count)
	if err != nil {
		return types.Alert{}, err
	}

	if len(targets) > 0 {
		json.Unmarshal(targets, &alert.NotifiedTargets)
	}

	return alert, nil
}
