package domain

import "time"

// Audit actions.
const (
	ActionLogin  = "Login"
	ActionLogout = "Logout"
)

// AuditEvent is one append-only row of the login/logout log. Timestamps are
// kept structured internally and only formatted at the presentation boundary,
// so range filtering is chronological rather than lexical.
type AuditEvent struct {
	Username  string    `json:"username"`
	Action    string    `json:"action"`
	Timestamp time.Time `json:"timestamp"`
}
