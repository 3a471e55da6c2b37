package model

import (
	"time"

	"github.com/google/uuid"
)

// Conflict targets used by the sync upserts. Each matches a unique index below.
var (
	SyncHeadConflictColumns       = []string{"user_id", "sync_type"}
	EmailPeriodConflictColumns    = []string{"user_id", "period_key"}
	CalendarPeriodConflictColumns = []string{"user_id", "calendar_id", "period_key"}
)

// SyncHeadModel is the GORM-specific struct for the 'sync_heads' table.
// There is one row per (user, sync type).
type SyncHeadModel struct {
	UserID       uuid.UUID  `gorm:"type:uuid;primaryKey"`
	SyncType     string     `gorm:"type:varchar(16);primaryKey"`
	Status       string     `gorm:"type:varchar(16);not null;default:'idle'"`
	ErrorMessage string     `gorm:"type:text;not null;default:''"`
	RunID        *uuid.UUID `gorm:"type:uuid"`
	StartedAt    *time.Time
	CompletedAt  *time.Time
	UpdatedAt    time.Time `gorm:"not null;index"`
}

// TableName explicitly sets the table name for GORM.
func (SyncHeadModel) TableName() string {
	return "sync_heads"
}

// PeriodColumns are shared by both period tables.
type PeriodColumns struct {
	RangeStart   time.Time `gorm:"not null"`
	RangeEnd     time.Time `gorm:"not null"`
	Status       string    `gorm:"type:varchar(16);not null;default:'idle';index"`
	ErrorMessage string    `gorm:"type:text;not null;default:''"`
	Upserted     int       `gorm:"not null;default:0"`
	StartedAt    *time.Time
	CompletedAt  *time.Time
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// EmailSyncPeriodModel is the GORM-specific struct for the 'email_sync_periods' table.
// A period is one ISO week.
type EmailSyncPeriodModel struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey"`
	UserID    uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:uq_email_sync_periods_user_period,priority:1"`
	PeriodKey string    `gorm:"type:varchar(32);not null;uniqueIndex:uq_email_sync_periods_user_period,priority:2"`
	PeriodColumns
}

// TableName explicitly sets the table name for GORM.
func (EmailSyncPeriodModel) TableName() string {
	return "email_sync_periods"
}

// CalendarSyncPeriodModel is the GORM-specific struct for the 'calendar_sync_periods' table.
// A period is one month of one calendar.
type CalendarSyncPeriodModel struct {
	ID         uuid.UUID `gorm:"type:uuid;primaryKey"`
	UserID     uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:uq_calendar_sync_periods_user_calendar_period,priority:1"`
	CalendarID string    `gorm:"type:varchar(255);not null;uniqueIndex:uq_calendar_sync_periods_user_calendar_period,priority:2"`
	PeriodKey  string    `gorm:"type:varchar(300);not null;uniqueIndex:uq_calendar_sync_periods_user_calendar_period,priority:3"`
	PeriodColumns
}

// TableName explicitly sets the table name for GORM.
func (CalendarSyncPeriodModel) TableName() string {
	return "calendar_sync_periods"
}

// SyncMessageModel is the GORM-specific struct for the append-only 'sync_messages' table.
type SyncMessageModel struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey"`
	UserID    uuid.UUID `gorm:"type:uuid;not null;index:idx_sync_messages_run,priority:1"`
	RunID     uuid.UUID `gorm:"type:uuid;not null;index:idx_sync_messages_run,priority:2"`
	SyncType  string    `gorm:"type:varchar(16);not null"`
	Level     string    `gorm:"type:varchar(16);not null"`
	Message   string    `gorm:"type:text;not null"`
	CreatedAt time.Time `gorm:"not null"`
}

// TableName explicitly sets the table name for GORM.
func (SyncMessageModel) TableName() string {
	return "sync_messages"
}
