package entity

import (
	"time"

	"github.com/google/uuid"
)

// MessageLevel grades a SyncMessage for the operator console.
type MessageLevel string

const (
	MessageLevelInfo      MessageLevel = "info"
	MessageLevelMilestone MessageLevel = "milestone"
	MessageLevelError     MessageLevel = "error"
)

// SyncMessage is one append-only console line written during a run.
// The engine never reads these back.
type SyncMessage struct {
	ID        uuid.UUID
	UserID    uuid.UUID
	RunID     uuid.UUID
	SyncType  SyncType
	Level     MessageLevel
	Message   string
	CreatedAt time.Time
}
