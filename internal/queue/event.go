// Package queue publishes and consumes club audit events over RabbitMQ.
// Publishing is best-effort: the API never fails a request because the
// broker is down.
package queue

// auditQueueName is the durable queue carrying club change events.
const auditQueueName = "club.audit"

// ClubAuditEvent records a successful mutation of a club.  Downstream
// consumers can log or notify without querying the primary database.
type ClubAuditEvent struct {
	Action     string `json:"action"` // created, updated, deactivated
	ClubID     int64  `json:"club_id"`
	Slug       string `json:"slug,omitempty"`
	Name       string `json:"name,omitempty"`
	OccurredAt string `json:"occurred_at"`
}
