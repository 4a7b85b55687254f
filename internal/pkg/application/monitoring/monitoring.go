package monitoring

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/carewatch/inactivity-mgmt/internal/pkg/infrastructure/storage"
	"github.com/carewatch/inactivity-mgmt/pkg/types"
	"github.com/diwise/messaging-golang/pkg/messaging"
	"github.com/diwise/service-chassis/pkg/infrastructure/o11y/logging"
	"github.com/google/uuid"
	"github.com/moby/locker"
)

var ErrSessionNotFound = fmt.Errorf("session not found")
var ErrAlertNotFound = fmt.Errorf("alert not found")

//go:generate moq -rm -out monitoring_mock.go . MonitoringService
type MonitoringService interface {
	HandleMotion(ctx context.Context, device types.Device, ev types.MotionEvent) (bool, error)
	HandleNoMotion(ctx context.Context, device types.Device, ev types.MotionEvent) (bool, error)
	AdvanceDue(ctx context.Context, session types.MonitoringSession, device types.Device, now time.Time) (bool, error)

	Acknowledge(ctx context.Context, patientID, source string, tenants []string) (bool, error)
	AcknowledgeAlert(ctx context.Context, alertID string, tenants []string) error
	ResolveManually(ctx context.Context, sessionID string, tenants []string) error

	GetSessionByID(ctx context.Context, sessionID string, tenants []string) (types.MonitoringSession, error)
	QuerySessions(ctx context.Context, offset, limit int, resolved *bool, tenants []string) (types.Collection[types.MonitoringSession], error)
	GetAlertByID(ctx context.Context, alertID string, tenants []string) (types.Alert, error)
	QueryAlerts(ctx context.Context, offset, limit int, tenants []string) (types.Collection[types.Alert], error)
	QueryAttempts(ctx context.Context, sessionID string, tenants []string) (types.Collection[types.NotificationAttempt], error)

	RegisterTopicMessageHandler(ctx context.Context) error
}

//go:generate moq -rm -out sessionstorage_mock.go . SessionStorage
type SessionStorage interface {
	CreateSession(ctx context.Context, session types.MonitoringSession) error
	UpdateSession(ctx context.Context, session types.MonitoringSession, expectedVersion uint32) error
	EscalateSession(ctx context.Context, session types.MonitoringSession, expectedVersion uint32, alert types.Alert) error
	GetSession(ctx context.Context, conditions ...storage.ConditionFunc) (types.MonitoringSession, error)
	QuerySessions(ctx context.Context, conditions ...storage.ConditionFunc) (types.Collection[types.MonitoringSession], error)
	SetSessionDeliveryFailed(ctx context.Context, sessionID string) error

	UpdateAlertStatus(ctx context.Context, alertID, status, tenant string) error
	GetAlert(ctx context.Context, conditions ...storage.ConditionFunc) (types.Alert, error)
	QueryAlerts(ctx context.Context, conditions ...storage.ConditionFunc) (types.Collection[types.Alert], error)
	SetAlertDeliveryFailed(ctx context.Context, alertID string) error
	SetAlertNotifiedTargets(ctx context.Context, alertID string, notifiedTargets []string) error

	QueryNotificationAttempts(ctx context.Context, conditions ...storage.ConditionFunc) (types.Collection[types.NotificationAttempt], error)
}

//go:generate moq -rm -out notifier_mock.go . Notifier
type Notifier interface {
	SendCheckIn(ctx context.Context, session types.MonitoringSession, device types.Device) types.DeliveryOutcome
	SendEscalation(ctx context.Context, alert types.Alert, device types.Device) types.DeliveryOutcome
}

type svc struct {
	storage   SessionStorage
	notifier  Notifier
	messenger messaging.MsgContext

	// devices serializes all session mutations for a given device, so an
	// inbound event and a firing sweep can never race on the same row.
	devices *locker.Locker

	nowFunc func() time.Time
}

func New(s SessionStorage, n Notifier, m messaging.MsgContext) MonitoringService {
	return &svc{
		storage:   s,
		notifier:  n,
		messenger: m,
		devices:   locker.New(),
		nowFunc:   func() time.Time { return time.Now().UTC() },
	}
}

func (svc *svc) RegisterTopicMessageHandler(ctx context.Context) error {
	return svc.messenger.RegisterTopicMessageHandler("caregiver-response", NewCaregiverResponseHandler(svc))
}

// HandleNoMotion starts watching a device when no session is tracking its
// inactivity yet. A NOT_DETECTED event for a device that is already being
// watched is a no-op.
func (svc *svc) HandleNoMotion(ctx context.Context, device types.Device, ev types.MotionEvent) (bool, error) {
	svc.devices.Lock(device.DeviceID)
	defer svc.devices.Unlock(device.DeviceID)

	_, err := svc.storage.GetSession(ctx, storage.WithDeviceID(device.DeviceID), storage.WithUnresolved())
	if err == nil {
		return false, nil
	}
	if !errors.Is(err, storage.ErrNoRows) {
		return false, err
	}

	session := types.MonitoringSession{
		ID:                  uuid.NewString(),
		DeviceID:            device.DeviceID,
		PatientID:           device.PatientID,
		State:               types.SessionStateWatching,
		Version:             1,
		InactivityStartedAt: ev.OccurredAt,
		Tenant:              device.Tenant,
	}

	err = svc.storage.CreateSession(ctx, session)
	if err != nil {
		if errors.Is(err, storage.ErrAlreadyExist) {
			// a concurrent event won the race, the device is watched
			return false, nil
		}
		return false, err
	}

	svc.publish(ctx, &types.SessionStarted{
		SessionID:           session.ID,
		DeviceID:            session.DeviceID,
		PatientID:           session.PatientID,
		InactivityStartedAt: session.InactivityStartedAt,
		Tenant:              session.Tenant,
		Timestamp:           svc.nowFunc(),
	})

	return true, nil
}

// HandleMotion resolves any unresolved session for the device with reason
// motion_resumed, regardless of how far the session has progressed. Events
// dated before the start of the inactivity episode are stale and ignored.
func (svc *svc) HandleMotion(ctx context.Context, device types.Device, ev types.MotionEvent) (bool, error) {
	svc.devices.Lock(device.DeviceID)
	defer svc.devices.Unlock(device.DeviceID)

	session, err := svc.storage.GetSession(ctx, storage.WithDeviceID(device.DeviceID), storage.WithUnresolved())
	if err != nil {
		if errors.Is(err, storage.ErrNoRows) {
			return false, nil
		}
		return false, err
	}

	if ev.OccurredAt.Before(session.InactivityStartedAt) {
		return false, nil
	}

	return svc.resolveLocked(ctx, session, types.ResolutionMotionResumed, ev.OccurredAt)
}

// AdvanceDue applies the transition a session is due for. The session
// argument carries the version the caller read; a session that has moved on
// since then is skipped, which is how fired-but-stale timer callbacks are
// cancelled.
func (svc *svc) AdvanceDue(ctx context.Context, session types.MonitoringSession, device types.Device, now time.Time) (bool, error) {
	transitioned, dispatch, err := svc.advanceDueLocked(ctx, session, device, now)

	// dispatch runs without holding the device lock, so a slow gateway
	// cannot stall ingestion of new motion events
	if dispatch != nil {
		dispatch(ctx)
	}

	return transitioned, err
}

func (svc *svc) advanceDueLocked(ctx context.Context, session types.MonitoringSession, device types.Device, now time.Time) (bool, func(context.Context), error) {
	svc.devices.Lock(device.DeviceID)
	defer svc.devices.Unlock(device.DeviceID)

	current, err := svc.storage.GetSession(ctx, storage.WithSessionID(session.ID))
	if err != nil {
		if errors.Is(err, storage.ErrNoRows) {
			return false, nil, ErrSessionNotFound
		}
		return false, nil, err
	}

	if current.Resolved() || current.Version != session.Version {
		return false, nil, nil
	}

	switch current.State {
	case types.SessionStateWatching:
		due := current.InactivityStartedAt.Add(time.Duration(device.InactivityThresholdSeconds) * time.Second)
		if now.Before(due) || current.CheckinSentAt != nil {
			return false, nil, nil
		}

		updated := current
		updated.State = types.SessionStateCheckingIn
		updated.CheckinSentAt = &now
		updated.Version++

		err = svc.storage.UpdateSession(ctx, updated, current.Version)
		if err != nil {
			if errors.Is(err, storage.ErrConflict) {
				return false, nil, nil
			}
			return false, nil, err
		}

		svc.publish(ctx, &types.CheckInRequested{
			SessionID: updated.ID,
			DeviceID:  updated.DeviceID,
			PatientID: updated.PatientID,
			Tenant:    updated.Tenant,
			Timestamp: now,
		})

		return true, func(ctx context.Context) { svc.dispatchCheckIn(ctx, updated, device) }, nil

	case types.SessionStateCheckingIn:
		if current.CheckinSentAt == nil {
			return false, nil, fmt.Errorf("session %s is checking in but has no check-in timestamp", current.ID)
		}

		due := current.CheckinSentAt.Add(time.Duration(device.EscalationDelaySeconds) * time.Second)
		if now.Before(due) || current.EscalationStartedAt != nil {
			return false, nil, nil
		}

		updated := current
		updated.State = types.SessionStateEscalated
		updated.EscalationStartedAt = &now
		updated.Version++

		alert := types.Alert{
			ID:          uuid.NewString(),
			SessionID:   updated.ID,
			PatientID:   updated.PatientID,
			AlertType:   types.AlertTypeInactivity,
			Severity:    types.AlertSeverityHigh,
			Status:      types.AlertStatusActive,
			EscalatedAt: now,
			Tenant:      updated.Tenant,
		}

		// a failed write leaves the session in CHECKING_IN, the next
		// sweep retries the whole transition
		err = svc.storage.EscalateSession(ctx, updated, current.Version, alert)
		if err != nil {
			if errors.Is(err, storage.ErrConflict) {
				return false, nil, nil
			}
			return false, nil, err
		}

		svc.publish(ctx, &types.AlertCreated{
			Alert:     alert,
			Tenant:    alert.Tenant,
			Timestamp: now,
		})

		return true, func(ctx context.Context) { svc.dispatchEscalation(ctx, alert, device) }, nil
	}

	return false, nil, nil
}

// Acknowledge resolves the most recent unresolved CHECKING_IN or ESCALATED
// session for the patient. Which session an inbound reply belongs to is
// ambiguous by nature; most-recent-for-patient is the documented default.
func (svc *svc) Acknowledge(ctx context.Context, patientID, source string, tenants []string) (bool, error) {
	log := logging.GetFromContext(ctx)

	session, err := svc.storage.GetSession(ctx,
		storage.WithPatientID(patientID),
		storage.WithUnresolved(),
		storage.WithStates(types.SessionStateCheckingIn, types.SessionStateEscalated),
		storage.WithTenants(tenants),
	)
	if err != nil {
		if errors.Is(err, storage.ErrNoRows) {
			log.Debug("acknowledgment without a session waiting for one", "patient_id", patientID, "source", source)
			return false, nil
		}
		return false, err
	}

	svc.devices.Lock(session.DeviceID)
	defer svc.devices.Unlock(session.DeviceID)

	session, err = svc.storage.GetSession(ctx, storage.WithSessionID(session.ID))
	if err != nil {
		return false, err
	}

	if session.Resolved() {
		return false, nil
	}

	switch session.State {
	case types.SessionStateCheckingIn:
		return svc.resolveLocked(ctx, session, types.ResolutionAcknowledged, svc.nowFunc())
	case types.SessionStateEscalated:
		resolved, err := svc.resolveLocked(ctx, session, types.ResolutionCaregiverAcknowledged, svc.nowFunc())
		if err != nil {
			return resolved, err
		}
		if resolved {
			svc.closeAlertForSession(ctx, session)
		}
		return resolved, nil
	}

	return false, nil
}

// AcknowledgeAlert marks an alert acknowledged on behalf of a caregiver and
// resolves the session it escalated from.
func (svc *svc) AcknowledgeAlert(ctx context.Context, alertID string, tenants []string) error {
	alert, err := svc.storage.GetAlert(ctx, storage.WithAlertID(alertID), storage.WithTenants(tenants))
	if err != nil {
		if errors.Is(err, storage.ErrNoRows) {
			return ErrAlertNotFound
		}
		return err
	}

	err = svc.storage.UpdateAlertStatus(ctx, alert.ID, types.AlertStatusAcknowledged, alert.Tenant)
	if err != nil {
		return err
	}

	svc.publish(ctx, &types.AlertClosed{
		ID:        alert.ID,
		Tenant:    alert.Tenant,
		Timestamp: svc.nowFunc(),
	})

	session, err := svc.storage.GetSession(ctx, storage.WithSessionID(alert.SessionID))
	if err != nil {
		if errors.Is(err, storage.ErrNoRows) {
			return nil
		}
		return err
	}

	if session.Resolved() {
		return nil
	}

	svc.devices.Lock(session.DeviceID)
	defer svc.devices.Unlock(session.DeviceID)

	session, err = svc.storage.GetSession(ctx, storage.WithSessionID(session.ID))
	if err != nil || session.Resolved() {
		return err
	}

	_, err = svc.resolveLocked(ctx, session, types.ResolutionCaregiverAcknowledged, svc.nowFunc())
	return err
}

// ResolveManually is the operator escape hatch, permitted from any
// unresolved state.
func (svc *svc) ResolveManually(ctx context.Context, sessionID string, tenants []string) error {
	session, err := svc.storage.GetSession(ctx, storage.WithSessionID(sessionID), storage.WithTenants(tenants))
	if err != nil {
		if errors.Is(err, storage.ErrNoRows) {
			return ErrSessionNotFound
		}
		return err
	}

	if session.Resolved() {
		return nil
	}

	svc.devices.Lock(session.DeviceID)
	defer svc.devices.Unlock(session.DeviceID)

	session, err = svc.storage.GetSession(ctx, storage.WithSessionID(sessionID))
	if err != nil || session.Resolved() {
		return err
	}

	wasEscalated := session.State == types.SessionStateEscalated

	resolved, err := svc.resolveLocked(ctx, session, types.ResolutionManual, svc.nowFunc())
	if err != nil {
		return err
	}

	if resolved && wasEscalated {
		svc.closeAlertForSession(ctx, session)
	}

	return nil
}

// resolveLocked commits the universal escape to RESOLVED. The caller must
// hold the device lock. On a write conflict the session is re-read and the
// resolution silently dropped if someone else already resolved it.
func (svc *svc) resolveLocked(ctx context.Context, session types.MonitoringSession, reason string, at time.Time) (bool, error) {
	for {
		resolvedAt := at

		updated := session
		updated.State = types.SessionStateResolved
		updated.ResolvedAt = &resolvedAt
		updated.ResolutionReason = reason
		updated.Version++

		err := svc.storage.UpdateSession(ctx, updated, session.Version)
		if err == nil {
			svc.publish(ctx, &types.SessionResolved{
				SessionID: updated.ID,
				DeviceID:  updated.DeviceID,
				Reason:    reason,
				Tenant:    updated.Tenant,
				Timestamp: svc.nowFunc(),
			})
			return true, nil
		}

		if !errors.Is(err, storage.ErrConflict) {
			return false, err
		}

		session, err = svc.storage.GetSession(ctx, storage.WithSessionID(session.ID))
		if err != nil {
			return false, err
		}

		if session.Resolved() {
			return false, nil
		}
	}
}

func (svc *svc) closeAlertForSession(ctx context.Context, session types.MonitoringSession) {
	log := logging.GetFromContext(ctx)

	alert, err := svc.storage.GetAlert(ctx, storage.WithSessionID(session.ID), storage.WithStatus(types.AlertStatusActive))
	if err != nil {
		if !errors.Is(err, storage.ErrNoRows) {
			log.Error("could not fetch alert for session", "session_id", session.ID, "err", err.Error())
		}
		return
	}

	err = svc.storage.UpdateAlertStatus(ctx, alert.ID, types.AlertStatusAcknowledged, alert.Tenant)
	if err != nil {
		log.Error("could not acknowledge alert", "alert_id", alert.ID, "err", err.Error())
		return
	}

	svc.publish(ctx, &types.AlertClosed{
		ID:        alert.ID,
		Tenant:    alert.Tenant,
		Timestamp: svc.nowFunc(),
	})
}

func (svc *svc) dispatchCheckIn(ctx context.Context, session types.MonitoringSession, device types.Device) {
	outcome := svc.notifier.SendCheckIn(ctx, session, device)
	if outcome.Delivered {
		return
	}

	log := logging.GetFromContext(ctx)
	log.Warn("check-in delivery failed", "session_id", session.ID, "attempts", outcome.Attempts)

	err := svc.storage.SetSessionDeliveryFailed(ctx, session.ID)
	if err != nil {
		log.Error("could not flag session delivery failure", "session_id", session.ID, "err", err.Error())
	}
}

func (svc *svc) dispatchEscalation(ctx context.Context, alert types.Alert, device types.Device) {
	log := logging.GetFromContext(ctx)

	outcome := svc.notifier.SendEscalation(ctx, alert, device)

	err := svc.storage.SetAlertNotifiedTargets(ctx, alert.ID, outcome.Targets)
	if err != nil {
		log.Error("could not record notified targets on alert", "alert_id", alert.ID, "err", err.Error())
	}

	if outcome.Delivered {
		return
	}

	// the escalation stays visible and unresolved even when every delivery
	// attempt was exhausted, an operator has to see it
	log.Error("escalation delivery failed", "alert_id", alert.ID, "attempts", outcome.Attempts)

	err = svc.storage.SetAlertDeliveryFailed(ctx, alert.ID)
	if err != nil {
		log.Error("could not flag alert delivery failure", "alert_id", alert.ID, "err", err.Error())
	}

	err = svc.storage.SetSessionDeliveryFailed(ctx, alert.SessionID)
	if err != nil {
		log.Error("could not flag session delivery failure", "session_id", alert.SessionID, "err", err.Error())
	}
}

func (svc *svc) publish(ctx context.Context, msg messaging.TopicMessage) {
	if svc.messenger == nil {
		return
	}

	err := svc.messenger.PublishOnTopic(ctx, msg)
	if err != nil {
		logging.GetFromContext(ctx).Error("failed to publish message", "topic", msg.TopicName(), "err", err.Error())
	}
}

func (svc *svc) GetSessionByID(ctx context.Context, sessionID string, tenants []string) (types.MonitoringSession, error) {
	session, err := svc.storage.GetSession(ctx, storage.WithSessionID(sessionID), storage.WithTenants(tenants))
	if err != nil {
		if errors.Is(err, storage.ErrNoRows) {
			return types.MonitoringSession{}, ErrSessionNotFound
		}
		return types.MonitoringSession{}, err
	}

	return session, nil
}

func (svc *svc) QuerySessions(ctx context.Context, offset, limit int, resolved *bool, tenants []string) (types.Collection[types.MonitoringSession], error) {
	conditions := []storage.ConditionFunc{
		storage.WithOffset(offset),
		storage.WithLimit(limit),
		storage.WithTenants(tenants),
	}

	if resolved != nil {
		if *resolved {
			conditions = append(conditions, storage.WithResolved())
		} else {
			conditions = append(conditions, storage.WithUnresolved())
		}
	}

	return svc.storage.QuerySessions(ctx, conditions...)
}

func (svc *svc) GetAlertByID(ctx context.Context, alertID string, tenants []string) (types.Alert, error) {
	alert, err := svc.storage.GetAlert(ctx, storage.WithAlertID(alertID), storage.WithTenants(tenants))
	if err != nil {
		if errors.Is(err, storage.ErrNoRows) {
			return types.Alert{}, ErrAlertNotFound
		}
		return types.Alert{}, err
	}

	return alert, nil
}

func (svc *svc) QueryAlerts(ctx context.Context, offset, limit int, tenants []string) (types.Collection[types.Alert], error) {
	return svc.storage.QueryAlerts(ctx, storage.WithOffset(offset), storage.WithLimit(limit), storage.WithTenants(tenants))
}

func (svc *svc) QueryAttempts(ctx context.Context, sessionID string, tenants []string) (types.Collection[types.NotificationAttempt], error) {
	_, err := svc.GetSessionByID(ctx, sessionID, tenants)
	if err != nil {
		return types.Collection[types.NotificationAttempt]{}, err
	}

	return svc.storage.QueryNotificationAttempts(ctx, storage.WithSessionID(sessionID))
}
