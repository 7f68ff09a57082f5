package domain

import "time"

// Audit actions recorded for entity mutations.
const (
	AuditActionCreate = "create"
	AuditActionUpdate = "update"
	AuditActionDelete = "delete"
)

// AuditEvent records a single mutation performed through the API.
type AuditEvent struct {
	Entity     string    `json:"entity"`
	EntityID   string    `json:"entity_id"`
	Action     string    `json:"action"`
	ActorEmail string    `json:"actor_email"`
	Timestamp  time.Time `json:"timestamp"`
}
