package storage

import (
	"context"
	"errors"

	"github.com/carewatch/inactivity-mgmt/pkg/types"
	"github.com/jackc/pgx/v5"
)

// SetDevice upserts the local read only cache of the external device
// registry.
func (s *Storage) SetDevice(ctx context.Context, device types.Device) error {
	if device.DeviceID == "" {
		return ErrNoID
	}

	if device.Tenant == "" {
		return ErrMissingTenant
	}

	args := pgx.NamedArgs{
		"device_id":                 device.DeviceID,
		"patient_id":                device.PatientID,
		"location":                  device.Location,
		"inactivity_threshold_secs": device.InactivityThresholdSeconds,
		"escalation_delay_secs":     device.EscalationDelaySeconds,
		"active":                    device.Active,
		"tenant":                    device.Tenant,
	}

	_, err := s.pool.Exec(ctx, `
		INSERT INTO devices (device_id, patient_id, location, inactivity_threshold_secs, escalation_delay_secs, active, tenant)
		VALUES (@device_id, @patient_id, @location, @inactivity_threshold_secs, @escalation_delay_secs, @active, @tenant)
		ON CONFLICT (device_id) DO UPDATE SET
			patient_id = EXCLUDED.patient_id,
			location = EXCLUDED.location,
			inactivity_threshold_secs = EXCLUDED.inactivity_threshold_secs,
			escalation_delay_secs = EXCLUDED.escalation_delay_secs,
			active = EXCLUDED.active,
			tenant = EXCLUDED.tenant,
			modified_on = CURRENT_TIMESTAMP
	`, args)
	if err != nil {
		return err
	}

	return nil
}

func (s *Storage) GetDevice(ctx context.Context, conditions ...ConditionFunc) (types.Device, error) {
	condition := &Condition{}
	for _, f := range conditions {
		f(condition)
	}

	args := condition.NamedArgs()
	where := condition.Where()

	var deviceID, patientID, tenant string
	var location *string
	var threshold, escalationDelay int
	var active bool

	query := `
		SELECT device_id, patient_id, location, inactivity_threshold_secs, escalation_delay_secs, active, tenant
		FROM devices
		WHERE ` + where + `
	`

	err := s.pool.QueryRow(ctx, query, args).Scan(&deviceID, &patientID, &location, &threshold, &escalationDelay, &active, &tenant)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return types.Device{}, ErrNoRows
		}
		return types.Device{}, err
	}

	device := types.Device{
		DeviceID:                   deviceID,
		PatientID:                  patientID,
		InactivityThresholdSeconds: threshold,
		EscalationDelaySeconds:     escalationDelay,
		Active:                     active,
		Tenant:                     tenant,
	}

	if location != nil {
		device.Location = *location
	}

	return device, nil
}
