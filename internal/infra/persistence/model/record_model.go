package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

// Natural keys of the synced record tables.
var (
	EmailRecordConflictColumns   = []string{"user_id", "provider_id"}
	CalendarEventConflictColumns = []string{"user_id", "calendar_id", "provider_id"}
	RecordMatchConflictColumns   = []string{"record_kind", "record_id", "person_id"}
)

// EmailRecordModel is the GORM-specific struct for the 'email_records' table.
type EmailRecordModel struct {
	ID           uuid.UUID                   `gorm:"type:uuid;primaryKey"`
	UserID       uuid.UUID                   `gorm:"type:uuid;not null;uniqueIndex:uq_email_records_user_provider,priority:1;index:idx_email_records_user_date,priority:1"`
	ProviderID   string                      `gorm:"type:varchar(64);not null;uniqueIndex:uq_email_records_user_provider,priority:2"`
	ThreadID     string                      `gorm:"type:varchar(64);not null;default:''"`
	FromAddress  string                      `gorm:"type:varchar(320);not null;default:''"`
	ToAddresses  datatypes.JSONSlice[string] `gorm:"not null"`
	CcAddresses  datatypes.JSONSlice[string] `gorm:"not null"`
	Subject      string                      `gorm:"type:text;not null;default:''"`
	Snippet      string                      `gorm:"type:text;not null;default:''"`
	LabelIDs     datatypes.JSONSlice[string] `gorm:"not null"`
	InternalDate time.Time                   `gorm:"not null;index:idx_email_records_user_date,priority:2"`
	SyncedAt     time.Time                   `gorm:"not null"`
}

// TableName explicitly sets the table name for GORM.
func (EmailRecordModel) TableName() string {
	return "email_records"
}

// CalendarEventModel is the GORM-specific struct for the 'calendar_events' table.
type CalendarEventModel struct {
	ID         uuid.UUID                   `gorm:"type:uuid;primaryKey"`
	UserID     uuid.UUID                   `gorm:"type:uuid;not null;uniqueIndex:uq_calendar_events_user_calendar_provider,priority:1;index:idx_calendar_events_user_start,priority:1"`
	CalendarID string                      `gorm:"type:varchar(255);not null;uniqueIndex:uq_calendar_events_user_calendar_provider,priority:2"`
	ProviderID string                      `gorm:"type:varchar(1024);not null;uniqueIndex:uq_calendar_events_user_calendar_provider,priority:3"`
	Summary    string                      `gorm:"type:text;not null;default:''"`
	Status     string                      `gorm:"type:varchar(32);not null;default:''"`
	Organizer  string                      `gorm:"type:varchar(320);not null;default:''"`
	Attendees  datatypes.JSONSlice[string] `gorm:"not null"`
	StartAt    time.Time                   `gorm:"not null;index:idx_calendar_events_user_start,priority:2"`
	EndAt      time.Time                   `gorm:"not null"`
	AllDay     bool                        `gorm:"not null;default:false"`
	HTMLLink   string                      `gorm:"type:text;not null;default:''"`
	SyncedAt   time.Time                   `gorm:"not null"`
}

// TableName explicitly sets the table name for GORM.
func (CalendarEventModel) TableName() string {
	return "calendar_events"
}

// PersonModel is the GORM-specific struct for the 'people' identity table.
// It is owned by the application; the sync engine only reads it.
type PersonModel struct {
	ID    uuid.UUID `gorm:"type:uuid;primaryKey"`
	Email string    `gorm:"type:varchar(320);not null;uniqueIndex"`
	Name  string    `gorm:"type:varchar(255);not null;default:''"`
}

// TableName explicitly sets the table name for GORM.
func (PersonModel) TableName() string {
	return "people"
}

// RecordMatchModel is the GORM-specific struct for the 'record_matches' link table.
type RecordMatchModel struct {
	ID         uuid.UUID `gorm:"type:uuid;primaryKey"`
	UserID     uuid.UUID `gorm:"type:uuid;not null;index"`
	RecordKind string    `gorm:"type:varchar(16);not null;uniqueIndex:uq_record_matches_record_person,priority:1"`
	RecordID   uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:uq_record_matches_record_person,priority:2"`
	PersonID   uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:uq_record_matches_record_person,priority:3"`
	MatchedAt  time.Time `gorm:"not null"`
}

// TableName explicitly sets the table name for GORM.
func (RecordMatchModel) TableName() string {
	return "record_matches"
}

// AllModels lists every table the engine owns, in dependency order.
func AllModels() []any {
	return []any{
		&AuthTokenModel{},
		&SyncHeadModel{},
		&EmailSyncPeriodModel{},
		&CalendarSyncPeriodModel{},
		&SyncMessageModel{},
		&EmailRecordModel{},
		&CalendarEventModel{},
		&PersonModel{},
		&RecordMatchModel{},
	}
}
