package types

import (
	"encoding/json"
	"time"
)

// Topic messages published on session and alert lifecycle transitions, so
// that dashboards and reporting services get push updates.

type SessionStarted struct {
	SessionID           string    `json:"sessionID"`
	DeviceID            string    `json:"deviceID"`
	PatientID           string    `json:"patientID"`
	InactivityStartedAt time.Time `json:"inactivityStartedAt"`
	Tenant              string    `json:"tenant,omitempty"`
	Timestamp           time.Time `json:"timestamp"`
}

func (m *SessionStarted) ContentType() string {
	return "application/json"
}
func (m *SessionStarted) TopicName() string {
	return "monitoring.sessionStarted"
}
func (m *SessionStarted) Body() []byte {
	b, _ := json.Marshal(m)
	return b
}

type CheckInRequested struct {
	SessionID string    `json:"sessionID"`
	DeviceID  string    `json:"deviceID"`
	PatientID string    `json:"patientID"`
	Tenant    string    `json:"tenant,omitempty"`
	Timestamp time.Time `json:"timestamp"`
}

func (m *CheckInRequested) ContentType() string {
	return "application/json"
}
func (m *CheckInRequested) TopicName() string {
	return "monitoring.checkInRequested"
}
func (m *CheckInRequested) Body() []byte {
	b, _ := json.Marshal(m)
	return b
}

type SessionResolved struct {
	SessionID string    `json:"sessionID"`
	DeviceID  string    `json:"deviceID"`
	Reason    string    `json:"reason"`
	Tenant    string    `json:"tenant,omitempty"`
	Timestamp time.Time `json:"timestamp"`
}

func (m *SessionResolved) ContentType() string {
	return "application/json"
}
func (m *SessionResolved) TopicName() string {
	return "monitoring.sessionResolved"
}
func (m *SessionResolved) Body() []byte {
	b, _ := json.Marshal(m)
	return b
}

type AlertCreated struct {
	Alert     Alert     `json:"alert"`
	Tenant    string    `json:"tenant,omitempty"`
	Timestamp time.Time `json:"timestamp"`
}

func (m *AlertCreated) ContentType() string {
	return "application/json"
}
func (m *AlertCreated) TopicName() string {
	return "alerts.alertCreated"
}
func (m *AlertCreated) Body() []byte {
	b, _ := json.Marshal(m)
	return b
}

type AlertClosed struct {
	ID        string    `json:"id"`
	Tenant    string    `json:"tenant,omitempty"`
	Timestamp time.Time `json:"timestamp"`
}

func (m *AlertClosed) ContentType() string {
	return "application/json"
}
func (m *AlertClosed) TopicName() string {
	return "alerts.alertClosed"
}
func (m *AlertClosed) Body() []byte {
	b, _ := json.Marshal(m)
	return b
}
