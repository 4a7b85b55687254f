package monitoring

import (
	"context"
	"errors"
	"log/slog"
	"sync"
	"testing"
	"time"

	"github.com/carewatch/inactivity-mgmt/internal/pkg/infrastructure/storage"
	"github.com/carewatch/inactivity-mgmt/pkg/types"
	"github.com/diwise/messaging-golang/pkg/messaging"
	"github.com/matryer/is"
	"github.com/samber/lo"
)

var testStart = time.Date(2025, 1, 1, 8, 0, 0, 0, time.UTC)

func testDevice() types.Device {
	return types.Device{
		DeviceID:                   "device-01",
		PatientID:                  "patient-01",
		Location:                   "bedroom",
		InactivityThresholdSeconds: 1800,
		EscalationDelaySeconds:     900,
		Active:                     true,
		Tenant:                     "default",
	}
}

func motionEvent(eventType string, occurredAt time.Time) types.MotionEvent {
	return types.MotionEvent{
		DeviceID:   "device-01",
		EventType:  eventType,
		OccurredAt: occurredAt,
		Tenant:     "default",
	}
}

func okNotifier() *NotifierMock {
	return &NotifierMock{
		SendCheckInFunc: func(ctx context.Context, session types.MonitoringSession, device types.Device) types.DeliveryOutcome {
			return types.DeliveryOutcome{Delivered: true, Attempts: 1, Targets: []string{"patient:" + device.PatientID}}
		},
		SendEscalationFunc: func(ctx context.Context, alert types.Alert, device types.Device) types.DeliveryOutcome {
			return types.DeliveryOutcome{Delivered: true, Attempts: 1, Targets: []string{"caregiver-oncall"}}
		},
	}
}

func testService(store *fakeStore, notifier *NotifierMock) MonitoringService {
	msgCtx := &messaging.MsgContextMock{
		PublishOnTopicFunc: func(ctx context.Context, message messaging.TopicMessage) error {
			return nil
		},
	}
	return New(store, notifier, msgCtx)
}

func mustSession(t *testing.T, store *fakeStore, deviceID string) types.MonitoringSession {
	t.Helper()
	session, err := store.GetSession(context.Background(), storage.WithDeviceID(deviceID), storage.WithUnresolved())
	if err != nil {
		t.Fatalf("expected an unresolved session for %s: %v", deviceID, err)
	}
	return session
}

func TestFullEscalationFlow(t *testing.T) {
	is := is.New(t)
	ctx := context.Background()

	store := newFakeStore()
	notifier := okNotifier()
	svc := testService(store, notifier)
	device := testDevice()

	created, err := svc.HandleNoMotion(ctx, device, motionEvent(types.MotionNotDetected, testStart))
	is.NoErr(err)
	is.True(created)

	session := mustSession(t, store, device.DeviceID)
	is.Equal(session.State, types.SessionStateWatching)
	is.Equal(session.Version, uint32(1))

	transitioned, err := svc.AdvanceDue(ctx, session, device, testStart.Add(30*time.Minute))
	is.NoErr(err)
	is.True(transitioned)

	session = mustSession(t, store, device.DeviceID)
	is.Equal(session.State, types.SessionStateCheckingIn)
	is.Equal(session.Version, uint32(2))
	is.Equal(len(notifier.SendCheckInCalls()), 1)

	transitioned, err = svc.AdvanceDue(ctx, session, device, testStart.Add(45*time.Minute))
	is.NoErr(err)
	is.True(transitioned)

	session = mustSession(t, store, device.DeviceID)
	is.Equal(session.State, types.SessionStateEscalated)
	is.Equal(len(notifier.SendEscalationCalls()), 1)

	alert, err := store.GetAlert(ctx, storage.WithSessionID(session.ID))
	is.NoErr(err)
	is.Equal(alert.Status, types.AlertStatusActive)
	is.Equal(alert.Severity, types.AlertSeverityHigh)
	is.Equal(alert.NotifiedTargets, []string{"caregiver-oncall"})

	acked, err := svc.Acknowledge(ctx, device.PatientID, "caregiver-app", []string{"default"})
	is.NoErr(err)
	is.True(acked)

	resolved, err := store.GetSession(ctx, storage.WithSessionID(session.ID))
	is.NoErr(err)
	is.True(resolved.Resolved())
	is.Equal(resolved.ResolutionReason, types.ResolutionCaregiverAcknowledged)

	alert, err = store.GetAlert(ctx, storage.WithAlertID(alert.ID))
	is.NoErr(err)
	is.Equal(alert.Status, types.AlertStatusAcknowledged)
}

func TestPatientAcknowledgmentStopsEscalation(t *testing.T) {
	is := is.New(t)
	ctx := context.Background()

	store := newFakeStore()
	notifier := okNotifier()
	svc := testService(store, notifier)
	device := testDevice()

	_, err := svc.HandleNoMotion(ctx, device, motionEvent(types.MotionNotDetected, testStart))
	is.NoErr(err)

	session := mustSession(t, store, device.DeviceID)
	_, err = svc.AdvanceDue(ctx, session, device, testStart.Add(30*time.Minute))
	is.NoErr(err)

	acked, err := svc.Acknowledge(ctx, device.PatientID, "patient-app", []string{"default"})
	is.NoErr(err)
	is.True(acked)

	resolved, err := store.GetSession(ctx, storage.WithSessionID(session.ID))
	is.NoErr(err)
	is.Equal(resolved.ResolutionReason, types.ResolutionAcknowledged)

	// the escalation timer must be dead now
	session = resolved
	transitioned, err := svc.AdvanceDue(ctx, session, device, testStart.Add(2*time.Hour))
	is.NoErr(err)
	is.True(!transitioned)
	is.Equal(len(notifier.SendEscalationCalls()), 0)
}

func TestMotionResumesDuringCheckIn(t *testing.T) {
	is := is.New(t)
	ctx := context.Background()

	store := newFakeStore()
	notifier := okNotifier()
	svc := testService(store, notifier)
	device := testDevice()

	_, err := svc.HandleNoMotion(ctx, device, motionEvent(types.MotionNotDetected, testStart))
	is.NoErr(err)

	session := mustSession(t, store, device.DeviceID)
	_, err = svc.AdvanceDue(ctx, session, device, testStart.Add(30*time.Minute))
	is.NoErr(err)

	resumedAt := testStart.Add(50 * time.Minute)
	resolved, err := svc.HandleMotion(ctx, device, motionEvent(types.MotionDetected, resumedAt))
	is.NoErr(err)
	is.True(resolved)

	session, err = store.GetSession(ctx, storage.WithSessionID(session.ID))
	is.NoErr(err)
	is.Equal(session.ResolutionReason, types.ResolutionMotionResumed)
	is.Equal(*session.ResolvedAt, resumedAt)
	is.Equal(len(notifier.SendEscalationCalls()), 0)
}

func TestRepeatedNoMotionDoesNotCreateSecondSession(t *testing.T) {
	is := is.New(t)
	ctx := context.Background()

	store := newFakeStore()
	svc := testService(store, okNotifier())
	device := testDevice()

	created, err := svc.HandleNoMotion(ctx, device, motionEvent(types.MotionNotDetected, testStart))
	is.NoErr(err)
	is.True(created)

	created, err = svc.HandleNoMotion(ctx, device, motionEvent(types.MotionNotDetected, testStart.Add(10*time.Minute)))
	is.NoErr(err)
	is.True(!created)

	is.Equal(store.sessionCount(), 1)

	session := mustSession(t, store, device.DeviceID)
	is.Equal(session.InactivityStartedAt, testStart)
}

func TestStaleMotionEventIsIgnored(t *testing.T) {
	is := is.New(t)
	ctx := context.Background()

	store := newFakeStore()
	svc := testService(store, okNotifier())
	device := testDevice()

	_, err := svc.HandleNoMotion(ctx, device, motionEvent(types.MotionNotDetected, testStart))
	is.NoErr(err)

	resolved, err := svc.HandleMotion(ctx, device, motionEvent(types.MotionDetected, testStart.Add(-5*time.Minute)))
	is.NoErr(err)
	is.True(!resolved)

	session := mustSession(t, store, device.DeviceID)
	is.True(!session.Resolved())
}

func TestStaleTimerCallbackIsANoOp(t *testing.T) {
	is := is.New(t)
	ctx := context.Background()

	store := newFakeStore()
	notifier := okNotifier()
	svc := testService(store, notifier)
	device := testDevice()

	_, err := svc.HandleNoMotion(ctx, device, motionEvent(types.MotionNotDetected, testStart))
	is.NoErr(err)

	stale := mustSession(t, store, device.DeviceID)

	_, err = svc.AdvanceDue(ctx, stale, device, testStart.Add(30*time.Minute))
	is.NoErr(err)

	// a second sweep firing with the version read before the first one
	// committed must not re-apply the transition
	transitioned, err := svc.AdvanceDue(ctx, stale, device, testStart.Add(31*time.Minute))
	is.NoErr(err)
	is.True(!transitioned)
	is.Equal(len(notifier.SendCheckInCalls()), 1)
}

func TestSessionNotYetDueIsLeftAlone(t *testing.T) {
	is := is.New(t)
	ctx := context.Background()

	store := newFakeStore()
	notifier := okNotifier()
	svc := testService(store, notifier)
	device := testDevice()

	_, err := svc.HandleNoMotion(ctx, device, motionEvent(types.MotionNotDetected, testStart))
	is.NoErr(err)

	session := mustSession(t, store, device.DeviceID)
	transitioned, err := svc.AdvanceDue(ctx, session, device, testStart.Add(10*time.Minute))
	is.NoErr(err)
	is.True(!transitioned)
	is.Equal(len(notifier.SendCheckInCalls()), 0)
}

func TestFailedCheckInDeliveryFlagsSession(t *testing.T) {
	is := is.New(t)
	ctx := context.Background()

	store := newFakeStore()
	notifier := &NotifierMock{
		SendCheckInFunc: func(ctx context.Context, session types.MonitoringSession, device types.Device) types.DeliveryOutcome {
			return types.DeliveryOutcome{Delivered: false, Attempts: 3}
		},
	}
	svc := testService(store, notifier)
	device := testDevice()

	_, err := svc.HandleNoMotion(ctx, device, motionEvent(types.MotionNotDetected, testStart))
	is.NoErr(err)

	session := mustSession(t, store, device.DeviceID)
	transitioned, err := svc.AdvanceDue(ctx, session, device, testStart.Add(30*time.Minute))
	is.NoErr(err)
	is.True(transitioned)

	// the transition stays committed, delivery failure is flagged instead
	session = mustSession(t, store, device.DeviceID)
	is.Equal(session.State, types.SessionStateCheckingIn)
	is.True(session.DeliveryFailed)
}

func TestAcknowledgmentWithoutOpenSessionIsIgnored(t *testing.T) {
	is := is.New(t)
	ctx := context.Background()

	store := newFakeStore()
	svc := testService(store, okNotifier())

	acked, err := svc.Acknowledge(ctx, "patient-01", "patient-app", []string{"default"})
	is.NoErr(err)
	is.True(!acked)
}

func TestAcknowledgmentWhileWatchingIsIgnored(t *testing.T) {
	is := is.New(t)
	ctx := context.Background()

	store := newFakeStore()
	svc := testService(store, okNotifier())
	device := testDevice()

	_, err := svc.HandleNoMotion(ctx, device, motionEvent(types.MotionNotDetected, testStart))
	is.NoErr(err)

	acked, err := svc.Acknowledge(ctx, device.PatientID, "patient-app", []string{"default"})
	is.NoErr(err)
	is.True(!acked)

	session := mustSession(t, store, device.DeviceID)
	is.Equal(session.State, types.SessionStateWatching)
}

func TestManualResolveIsIdempotent(t *testing.T) {
	is := is.New(t)
	ctx := context.Background()

	store := newFakeStore()
	svc := testService(store, okNotifier())
	device := testDevice()

	_, err := svc.HandleNoMotion(ctx, device, motionEvent(types.MotionNotDetected, testStart))
	is.NoErr(err)

	session := mustSession(t, store, device.DeviceID)

	err = svc.ResolveManually(ctx, session.ID, []string{"default"})
	is.NoErr(err)

	err = svc.ResolveManually(ctx, session.ID, []string{"default"})
	is.NoErr(err)

	resolved, err := store.GetSession(ctx, storage.WithSessionID(session.ID))
	is.NoErr(err)
	is.Equal(resolved.ResolutionReason, types.ResolutionManual)
	is.Equal(resolved.Version, uint32(2))
}

func TestResolveManuallyUnknownSession(t *testing.T) {
	is := is.New(t)
	ctx := context.Background()

	store := newFakeStore()
	svc := testService(store, okNotifier())

	err := svc.ResolveManually(ctx, "no-such-session", []string{"default"})
	is.True(err == ErrSessionNotFound)
}

func TestAcknowledgeAlertResolvesLinkedSession(t *testing.T) {
	is := is.New(t)
	ctx := context.Background()

	store := newFakeStore()
	notifier := okNotifier()
	svc := testService(store, notifier)
	device := testDevice()

	_, err := svc.HandleNoMotion(ctx, device, motionEvent(types.MotionNotDetected, testStart))
	is.NoErr(err)

	session := mustSession(t, store, device.DeviceID)
	_, err = svc.AdvanceDue(ctx, session, device, testStart.Add(30*time.Minute))
	is.NoErr(err)

	session = mustSession(t, store, device.DeviceID)
	_, err = svc.AdvanceDue(ctx, session, device, testStart.Add(45*time.Minute))
	is.NoErr(err)

	alert, err := store.GetAlert(ctx, storage.WithSessionID(session.ID))
	is.NoErr(err)

	err = svc.AcknowledgeAlert(ctx, alert.ID, []string{"default"})
	is.NoErr(err)

	alert, err = store.GetAlert(ctx, storage.WithAlertID(alert.ID))
	is.NoErr(err)
	is.Equal(alert.Status, types.AlertStatusAcknowledged)

	resolved, err := store.GetSession(ctx, storage.WithSessionID(session.ID))
	is.NoErr(err)
	is.Equal(resolved.ResolutionReason, types.ResolutionCaregiverAcknowledged)
}

func TestAcknowledgmentDuringEscalationDispatchIsNotReverted(t *testing.T) {
	is := is.New(t)
	ctx := context.Background()

	store := newFakeStore()
	device := testDevice()

	var svc MonitoringService
	notifier := &NotifierMock{
		SendCheckInFunc: func(ctx context.Context, session types.MonitoringSession, device types.Device) types.DeliveryOutcome {
			return types.DeliveryOutcome{Delivered: true, Attempts: 1}
		},
		SendEscalationFunc: func(ctx context.Context, alert types.Alert, device types.Device) types.DeliveryOutcome {
			// a caregiver reply lands while the delivery is still in flight
			_, err := svc.Acknowledge(ctx, device.PatientID, "caregiver-app", []string{"default"})
			is.NoErr(err)
			return types.DeliveryOutcome{Delivered: true, Attempts: 1, Targets: []string{"caregiver-oncall"}}
		},
	}
	svc = testService(store, notifier)

	_, err := svc.HandleNoMotion(ctx, device, motionEvent(types.MotionNotDetected, testStart))
	is.NoErr(err)

	session := mustSession(t, store, device.DeviceID)
	_, err = svc.AdvanceDue(ctx, session, device, testStart.Add(30*time.Minute))
	is.NoErr(err)

	session = mustSession(t, store, device.DeviceID)
	_, err = svc.AdvanceDue(ctx, session, device, testStart.Add(45*time.Minute))
	is.NoErr(err)

	// recording the notified targets must not undo the acknowledgment
	alert, err := store.GetAlert(ctx, storage.WithSessionID(session.ID))
	is.NoErr(err)
	is.Equal(alert.Status, types.AlertStatusAcknowledged)
	is.Equal(alert.NotifiedTargets, []string{"caregiver-oncall"})
}

type flakyStore struct {
	*fakeStore
	failEscalation bool
}

func (f *flakyStore) EscalateSession(ctx context.Context, session types.MonitoringSession, expectedVersion uint32, alert types.Alert) error {
	if f.failEscalation {
		return errors.New("connection reset by peer")
	}
	return f.fakeStore.EscalateSession(ctx, session, expectedVersion, alert)
}

func TestFailedEscalationWriteLeavesSessionRetryable(t *testing.T) {
	is := is.New(t)
	ctx := context.Background()

	store := &flakyStore{fakeStore: newFakeStore()}
	notifier := okNotifier()
	svc := New(store, notifier, &messaging.MsgContextMock{
		PublishOnTopicFunc: func(ctx context.Context, message messaging.TopicMessage) error {
			return nil
		},
	})
	device := testDevice()

	_, err := svc.HandleNoMotion(ctx, device, motionEvent(types.MotionNotDetected, testStart))
	is.NoErr(err)

	session := mustSession(t, store.fakeStore, device.DeviceID)
	_, err = svc.AdvanceDue(ctx, session, device, testStart.Add(30*time.Minute))
	is.NoErr(err)

	session = mustSession(t, store.fakeStore, device.DeviceID)

	store.failEscalation = true
	transitioned, err := svc.AdvanceDue(ctx, session, device, testStart.Add(45*time.Minute))
	is.True(err != nil)
	is.True(!transitioned)

	// the session must still be in CHECKING_IN so the next sweep picks it
	// up again, and no alert or notification may have leaked out
	current := mustSession(t, store.fakeStore, device.DeviceID)
	is.Equal(current.State, types.SessionStateCheckingIn)
	is.Equal(current.Version, session.Version)

	_, err = store.GetAlert(ctx, storage.WithSessionID(session.ID))
	is.True(errors.Is(err, storage.ErrNoRows))
	is.Equal(len(notifier.SendEscalationCalls()), 0)

	store.failEscalation = false
	transitioned, err = svc.AdvanceDue(ctx, current, device, testStart.Add(46*time.Minute))
	is.NoErr(err)
	is.True(transitioned)

	escalated := mustSession(t, store.fakeStore, device.DeviceID)
	is.Equal(escalated.State, types.SessionStateEscalated)

	alert, err := store.GetAlert(ctx, storage.WithSessionID(session.ID))
	is.NoErr(err)
	is.Equal(alert.Status, types.AlertStatusActive)
	is.Equal(len(notifier.SendEscalationCalls()), 1)
}

func TestCaregiverResponseHandler(t *testing.T) {
	is := is.New(t)
	ctx := context.Background()

	svc := &MonitoringServiceMock{
		AcknowledgeFunc: func(ctx context.Context, patientID, source string, tenants []string) (bool, error) {
			return true, nil
		},
	}

	handler := NewCaregiverResponseHandler(svc)

	msg := &messaging.IncomingTopicMessageMock{
		BodyFunc: func() []byte {
			return []byte(`{"patientID":"patient-01","source":"patient-app","tenant":"default"}`)
		},
		TopicNameFunc: func() string {
			return "caregiver-response"
		},
		ContentTypeFunc: func() string {
			return "application/json"
		},
	}

	handler(ctx, msg, slog.Default())

	is.Equal(len(svc.AcknowledgeCalls()), 1)
	is.Equal(svc.AcknowledgeCalls()[0].PatientID, "patient-01")
	is.Equal(svc.AcknowledgeCalls()[0].Tenants, []string{"default"})
}

// fakeStore is an in memory SessionStorage used to drive the state machine
// through multi step scenarios.
type fakeStore struct {
	mu       sync.Mutex
	sessions map[string]types.MonitoringSession
	alerts   map[string]types.Alert
}

func newFakeStore() *fakeStore {
	return &fakeStore{
		sessions: map[string]types.MonitoringSession{},
		alerts:   map[string]types.Alert{},
	}
}

func buildCondition(conditions []storage.ConditionFunc) *storage.Condition {
	c := &storage.Condition{}
	for _, f := range conditions {
		c = f(c)
	}
	return c
}

func sessionMatches(c *storage.Condition, s types.MonitoringSession) bool {
	if c.SessionID != "" && s.ID != c.SessionID {
		return false
	}
	if c.DeviceID != "" && s.DeviceID != c.DeviceID {
		return false
	}
	if c.PatientID != "" && s.PatientID != c.PatientID {
		return false
	}
	if len(c.States) > 0 && !lo.Contains(c.States, s.State) {
		return false
	}
	if c.Unresolved != nil && *c.Unresolved == s.Resolved() {
		return false
	}
	if len(c.Tenants) > 0 && !lo.Contains(c.Tenants, s.Tenant) {
		return false
	}
	return true
}

func (f *fakeStore) sessionCount() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.sessions)
}

func (f *fakeStore) CreateSession(ctx context.Context, session types.MonitoringSession) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	for _, s := range f.sessions {
		if s.DeviceID == session.DeviceID && !s.Resolved() {
			return storage.ErrAlreadyExist
		}
	}

	f.sessions[session.ID] = session
	return nil
}

func (f *fakeStore) UpdateSession(ctx context.Context, session types.MonitoringSession, expectedVersion uint32) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	stored, ok := f.sessions[session.ID]
	if !ok || stored.Version != expectedVersion {
		return storage.ErrConflict
	}

	f.sessions[session.ID] = session
	return nil
}

func (f *fakeStore) GetSession(ctx context.Context, conditions ...storage.ConditionFunc) (types.MonitoringSession, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	c := buildCondition(conditions)

	var found *types.MonitoringSession
	for _, s := range f.sessions {
		if !sessionMatches(c, s) {
			continue
		}
		if found == nil || s.InactivityStartedAt.After(found.InactivityStartedAt) {
			match := s
			found = &match
		}
	}

	if found == nil {
		return types.MonitoringSession{}, storage.ErrNoRows
	}

	return *found, nil
}

func (f *fakeStore) QuerySessions(ctx context.Context, conditions ...storage.ConditionFunc) (types.Collection[types.MonitoringSession], error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	c := buildCondition(conditions)

	result := types.Collection[types.MonitoringSession]{}
	for _, s := range f.sessions {
		if sessionMatches(c, s) {
			result.Data = append(result.Data, s)
		}
	}

	result.Count = uint64(len(result.Data))
	result.TotalCount = result.Count
	return result, nil
}

func (f *fakeStore) SetSessionDeliveryFailed(ctx context.Context, sessionID string) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	s, ok := f.sessions[sessionID]
	if !ok {
		return storage.ErrNoRows
	}

	s.DeliveryFailed = true
	f.sessions[sessionID] = s
	return nil
}

func alertMatches(c *storage.Condition, a types.Alert) bool {
	if c.AlertID != "" && a.ID != c.AlertID {
		return false
	}
	if c.SessionID != "" && a.SessionID != c.SessionID {
		return false
	}
	if c.Status != "" && a.Status != c.Status {
		return false
	}
	if len(c.Tenants) > 0 && !lo.Contains(c.Tenants, a.Tenant) {
		return false
	}
	return true
}

func (f *fakeStore) EscalateSession(ctx context.Context, session types.MonitoringSession, expectedVersion uint32, alert types.Alert) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	stored, ok := f.sessions[session.ID]
	if !ok || stored.Version != expectedVersion {
		return storage.ErrConflict
	}

	f.sessions[session.ID] = session
	f.alerts[alert.ID] = alert
	return nil
}

func (f *fakeStore) SetAlertNotifiedTargets(ctx context.Context, alertID string, notifiedTargets []string) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	a, ok := f.alerts[alertID]
	if !ok {
		return storage.ErrNoRows
	}

	a.NotifiedTargets = notifiedTargets
	f.alerts[alertID] = a
	return nil
}

func (f *fakeStore) UpdateAlertStatus(ctx context.Context, alertID, status, tenant string) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	a, ok := f.alerts[alertID]
	if !ok {
		return storage.ErrNoRows
	}

	a.Status = status
	f.alerts[alertID] = a
	return nil
}

func (f *fakeStore) GetAlert(ctx context.Context, conditions ...storage.ConditionFunc) (types.Alert, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	c := buildCondition(conditions)

	for _, a := range f.alerts {
		if alertMatches(c, a) {
			return a, nil
		}
	}

	return types.Alert{}, storage.ErrNoRows
}

func (f *fakeStore) QueryAlerts(ctx context.Context, conditions ...storage.ConditionFunc) (types.Collection[types.Alert], error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	c := buildCondition(conditions)

	result := types.Collection[types.Alert]{}
	for _, a := range f.alerts {
		if alertMatches(c, a) {
			result.Data = append(result.Data, a)
		}
	}

	result.Count = uint64(len(result.Data))
	result.TotalCount = result.Count
	return result, nil
}

func (f *fakeStore) SetAlertDeliveryFailed(ctx context.Context, alertID string) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	a, ok := f.alerts[alertID]
	if !ok {
		return storage.ErrNoRows
	}

	a.DeliveryFailed = true
	f.alerts[alertID] = a
	return nil
}

func (f *fakeStore) QueryNotificationAttempts(ctx context.Context, conditions ...storage.ConditionFunc) (types.Collection[types.NotificationAttempt], error) {
	return types.Collection[types.NotificationAttempt]{}, nil
}
