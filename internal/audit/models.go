package audit

import "time"

// Event is emitted from domain logic to capture key actions. Subject holds a
// hashed identifier once the Publisher has seen it; raw phone numbers never
// reach a sink.
type Event struct {
	Timestamp time.Time `json:"timestamp"`
	Action    Action    `json:"action"`
	Subject   string    `json:"subject,omitempty"`
	Decision  string    `json:"decision,omitempty"`
	Reason    string    `json:"reason,omitempty"`
	RequestID string    `json:"request_id,omitempty"`
	Device    string    `json:"device,omitempty"`
}

type Action string

const (
	ActionUserCreated        Action = "user_created"
	ActionTokenIssued        Action = "token_issued"
	ActionAuthFailed         Action = "auth_failed"
	ActionCertificateRevoked Action = "certificate_revoked"
)

// Decisions recorded on events.
const (
	DecisionGranted = "granted"
	DecisionDenied  = "denied"
)
