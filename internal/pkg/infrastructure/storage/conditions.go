package storage

import (
	"strings"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/samber/lo"
)

type ConditionFunc func(*Condition) *Condition

type Condition struct {
	SessionID string
	DeviceID  string
	PatientID string
	AlertID   string

	States     []string
	Unresolved *bool
	Status     string

	Tenants []string

	OccurredAfter time.Time

	sortBy    string
	sortOrder string

	offset *int
	limit  *int
}

func (c Condition) SortBy() string {
	if c.sortBy == "" {
		return "created_on"
	}
	return c.sortBy
}

func (c Condition) SortOrder() string {
	if c.sortOrder == "" {
		return "ASC"
	}
	return c.sortOrder
}

func (c Condition) Offset() int {
	if c.offset == nil {
		return 0
	}
	return *c.offset
}

func (c Condition) Limit() int {
	if c.limit == nil {
		return 1000
	}
	return *c.limit
}

func (c Condition) NamedArgs() pgx.NamedArgs {
	args := pgx.NamedArgs{}

	if c.SessionID != "" {
		args["session_id"] = c.SessionID
	}
	if c.DeviceID != "" {
		args["device_id"] = c.DeviceID
	}
	if c.PatientID != "" {
		args["patient_id"] = c.PatientID
	}
	if c.AlertID != "" {
		args["alert_id"] = c.AlertID
	}
	if len(c.States) == 1 {
		args["state"] = c.States[0]
	}
	if len(c.States) > 1 {
		args["states"] = c.States
	}
	if c.Status != "" {
		args["status"] = c.Status
	}
	if c.Tenants != nil {
		args["tenants"] = c.Tenants
	}
	if !c.OccurredAfter.IsZero() {
		args["occurred_after"] = c.OccurredAfter
	}

	return args
}

func (c Condition) Where() string {
	where := []string{}

	if c.SessionID != "" {
		where = append(where, "session_id = @session_id")
	}

	if c.DeviceID != "" {
		where = append(where, "device_id = @device_id")
	}

	if c.PatientID != "" {
		where = append(where, "patient_id = @patient_id")
	}

	if c.AlertID != "" {
		where = append(where, "alert_id = @alert_id")
	}

	if len(c.States) == 1 {
		where = append(where, "state = @state")
	}

	if len(c.States) > 1 {
		where = append(where, "state = ANY(@states)")
	}

	if c.Status != "" {
		where = append(where, "status = @status")
	}

	if c.Unresolved != nil {
		if *c.Unresolved {
			where = append(where, "resolved_at IS NULL")
		} else {
			where = append(where, "resolved_at IS NOT NULL")
		}
	}

	if len(c.Tenants) > 0 {
		where = append(where, "tenant = ANY(@tenants)")
	}

	if !c.OccurredAfter.IsZero() {
		where = append(where, "occurred_at >= @occurred_after")
	}

	if len(where) == 0 {
		return "TRUE"
	}

	return strings.Join(where, " AND ")
}

func WithSessionID(sessionID string) ConditionFunc {
	return func(c *Condition) *Condition {
		c.SessionID = sessionID
		return c
	}
}

func WithDeviceID(deviceID string) ConditionFunc {
	return func(c *Condition) *Condition {
		c.DeviceID = deviceID
		return c
	}
}

func WithPatientID(patientID string) ConditionFunc {
	return func(c *Condition) *Condition {
		c.PatientID = patientID
		return c
	}
}

func WithAlertID(alertID string) ConditionFunc {
	return func(c *Condition) *Condition {
		c.AlertID = alertID
		return c
	}
}

func WithStates(states ...string) ConditionFunc {
	return func(c *Condition) *Condition {
		c.States = states
		return c
	}
}

func WithStatus(status string) ConditionFunc {
	return func(c *Condition) *Condition {
		c.Status = status
		return c
	}
}

func WithUnresolved() ConditionFunc {
	return func(c *Condition) *Condition {
		unresolved := true
		c.Unresolved = &unresolved
		return c
	}
}

func WithResolved() ConditionFunc {
	return func(c *Condition) *Condition {
		unresolved := false
		c.Unresolved = &unresolved
		return c
	}
}

func WithTenants(tenants []string) ConditionFunc {
	return func(c *Condition) *Condition {
		c.Tenants = lo.Uniq(tenants)
		return c
	}
}

func WithOccurredAfter(t time.Time) ConditionFunc {
	return func(c *Condition) *Condition {
		c.OccurredAfter = t
		return c
	}
}

func WithSortBy(sortBy string) ConditionFunc {
	return func(c *Condition) *Condition {
		switch strings.ToLower(sortBy) {
		case "device_id":
			c.sortBy = "device_id"
		case "patient_id":
			c.sortBy = "patient_id"
		case "occurred_at":
			c.sortBy = "occurred_at"
		case "inactivity_started_at":
			c.sortBy = "inactivity_started_at"
		case "escalated_at":
			c.sortBy = "escalated_at"
		case "created_on":
			c.sortBy = "created_on"
		}
		return c
	}
}

func WithSortDesc(desc bool) ConditionFunc {
	return func(c *Condition) *Condition {
		if desc {
			c.sortOrder = "DESC"
		} else {
			c.sortOrder = "ASC"
		}
		return c
	}
}

func WithOffset(offset int) ConditionFunc {
	return func(c *Condition) *Condition {
		c.offset = &offset
		return c
	}
}

func WithLimit(limit int) ConditionFunc {
	return func(c *Condition) *Condition {
		c.limit = &limit
		return c
	}
}
