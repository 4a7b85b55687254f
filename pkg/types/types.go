package types

import (
	"time"
)

const (
	MotionDetected    string = "DETECTED"
	MotionNotDetected string = "NOT_DETECTED"
)

// MotionEvent is a normalized motion sensor observation. Events are append
// only and deduplicated on (deviceID, occurredAt, eventType).
type MotionEvent struct {
	DeviceID   string    `json:"deviceID"`
	EventType  string    `json:"eventType"`
	OccurredAt time.Time `json:"occurredAt"`
	ReceivedAt time.Time `json:"receivedAt,omitempty"`
	Tenant     string    `json:"tenant,omitempty"`
}

// Device is owned by the external registry and cached read only here.
type Device struct {
	DeviceID                   string `json:"deviceID"`
	PatientID                  string `json:"patientID"`
	Location                   string `json:"location,omitempty"`
	InactivityThresholdSeconds int    `json:"inactivityThresholdSeconds"`
	EscalationDelaySeconds     int    `json:"escalationDelaySeconds"`
	Active                     bool   `json:"active"`
	Tenant                     string `json:"tenant"`
}

const (
	SessionStateWatching   string = "WATCHING"
	SessionStateCheckingIn string = "CHECKING_IN"
	SessionStateEscalated  string = "ESCALATED"
	SessionStateResolved   string = "RESOLVED"
)

const (
	ResolutionMotionResumed         string = "motion_resumed"
	ResolutionAcknowledged          string = "acknowledged"
	ResolutionCaregiverAcknowledged string = "caregiver_acknowledged"
	ResolutionManual                string = "manual"
)

// MonitoringSession tracks one continuous inactivity episode for a device.
// At most one session per device is unresolved at any time.
type MonitoringSession struct {
	ID                  string     `json:"id"`
	DeviceID            string     `json:"deviceID"`
	PatientID           string     `json:"patientID"`
	State               string     `json:"state"`
	Version             uint32     `json:"version"`
	InactivityStartedAt time.Time  `json:"inactivityStartedAt"`
	CheckinSentAt       *time.Time `json:"checkinSentAt,omitempty"`
	EscalationStartedAt *time.Time `json:"escalationStartedAt,omitempty"`
	ResolvedAt          *time.Time `json:"resolvedAt,omitempty"`
	ResolutionReason    string     `json:"resolutionReason,omitempty"`
	DeliveryFailed      bool       `json:"deliveryFailed,omitempty"`
	Tenant              string     `json:"tenant"`
}

func (s MonitoringSession) Resolved() bool {
	return s.ResolvedAt != nil
}

const (
	AlertSeverityLow    = 1
	AlertSeverityMedium = 2
	AlertSeverityHigh   = 3
)

const (
	AlertStatusActive       string = "active"
	AlertStatusAcknowledged string = "acknowledged"
	AlertStatusResolved     string = "resolved"
)

const AlertTypeInactivity string = "InactivityEscalation"

// Alert is created on the transition into ESCALATED and closed by a
// caregiver acknowledgment.
type Alert struct {
	ID              string    `json:"id"`
	SessionID       string    `json:"sessionID"`
	PatientID       string    `json:"patientID"`
	AlertType       string    `json:"alertType"`
	Severity        int       `json:"severity"`
	Status          string    `json:"status"`
	NotifiedTargets []string  `json:"notifiedTargets,omitempty"`
	DeliveryFailed  bool      `json:"deliveryFailed,omitempty"`
	CreatedAt       time.Time `json:"createdAt"`
	EscalatedAt     time.Time `json:"escalatedAt"`
	Tenant          string    `json:"tenant"`
}

const (
	AttemptStatusSent      string = "sent"
	AttemptStatusFailed    string = "failed"
	AttemptStatusRetrying  string = "retrying"
	AttemptStatusExhausted string = "exhausted"
)

type NotificationAttempt struct {
	ID           string    `json:"id"`
	SessionID    string    `json:"sessionID,omitempty"`
	AlertID      string    `json:"alertID,omitempty"`
	Channel      string    `json:"channel"`
	Target       string    `json:"target"`
	Status       string    `json:"status"`
	AttemptCount int       `json:"attemptCount"`
	LastError    string    `json:"lastError,omitempty"`
	CreatedAt    time.Time `json:"createdAt"`
}

// DeliveryOutcome summarizes what the dispatcher managed to do for one
// transition edge.
type DeliveryOutcome struct {
	Delivered         bool     `json:"delivered"`
	Attempts          int      `json:"attempts"`
	Targets           []string `json:"targets,omitempty"`
	ProviderMessageID string   `json:"providerMessageID,omitempty"`
}

type Collection[T any] struct {
	Data       []T
	Count      uint64
	Offset     uint64
	Limit      uint64
	TotalCount uint64
}
