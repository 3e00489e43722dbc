package models

import "time"

// LogEntry is one immutable audit record: the action that was attempted, who
// attempted it, and a JSON-serialized detail payload. Entries are never
// updated or deleted. ActorID is empty for unauthenticated attempts such as
// failed logins.
type LogEntry struct {
	Timestamp time.Time `json:"timestamp" bson:"timestamp"`

	Action string `json:"action" bson:"action"`

	ActorID    string `json:"actorId" bson:"actorId"`
	ActorLabel string `json:"actorLabel" bson:"actorLabel"`

	Details string `json:"details" bson:"details"`
}
