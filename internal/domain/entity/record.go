package entity

import (
	"strings"
	"time"

	"github.com/google/uuid"
)

// EmailRecord is the header-level projection of one Gmail message.
// (UserID, ProviderID) is its natural key.
type EmailRecord struct {
	ID           uuid.UUID
	UserID       uuid.UUID
	ProviderID   string // Gmail message id.
	ThreadID     string
	From         string
	To           []string
	Cc           []string
	Subject      string
	Snippet      string
	LabelIDs     []string
	InternalDate time.Time
	SyncedAt     time.Time
}

// Participants returns every normalized address on the message.
func (r *EmailRecord) Participants() []string {
	addrs := make([]string, 0, 1+len(r.To)+len(r.Cc))
	addrs = append(addrs, r.From)
	addrs = append(addrs, r.To...)
	addrs = append(addrs, r.Cc...)

	return NormalizeAddresses(addrs)
}

// CalendarEvent is one instance of a Google Calendar event.
// (UserID, CalendarID, ProviderID) is its natural key.
type CalendarEvent struct {
	ID         uuid.UUID
	UserID     uuid.UUID
	CalendarID string
	ProviderID string // Calendar event id (instance id for recurring events).
	Summary    string
	Status     string
	Organizer  string
	Attendees  []string
	StartAt    time.Time
	EndAt      time.Time
	AllDay     bool
	HTMLLink   string
	SyncedAt   time.Time
}

// Participants returns the organizer and attendees, normalized.
func (e *CalendarEvent) Participants() []string {
	addrs := make([]string, 0, 1+len(e.Attendees))
	addrs = append(addrs, e.Organizer)
	addrs = append(addrs, e.Attendees...)

	return NormalizeAddresses(addrs)
}

// Person is an internal identity record that synced data is matched to.
type Person struct {
	ID    uuid.UUID
	Email string
	Name  string
}

// RecordKind distinguishes the source table of a match.
type RecordKind string

const (
	RecordKindEmail RecordKind = "email"
	RecordKindEvent RecordKind = "event"
)

// NormalizeAddresses lower-cases, trims and de-duplicates addresses, dropping
// display names ("Ann <ann@x.org>" -> "ann@x.org") and empty values.
func NormalizeAddresses(addrs []string) []string {
	seen := make(map[string]struct{}, len(addrs))
	out := make([]string, 0, len(addrs))
	for _, addr := range addrs {
		norm := NormalizeAddress(addr)
		if norm == "" {
			continue
		}
		if _, ok := seen[norm]; ok {
			continue
		}
		seen[norm] = struct{}{}
		out = append(out, norm)
	}

	return out
}

// NormalizeAddress reduces a single RFC 5322 style address to its lower-cased addr-spec.
func NormalizeAddress(addr string) string {
	addr = strings.TrimSpace(addr)
	if start := strings.LastIndex(addr, "<"); start >= 0 {
		if end := strings.LastIndex(addr, ">"); end > start {
			addr = addr[start+1 : end]
		}
	}
	addr = strings.ToLower(strings.TrimSpace(addr))
	if !strings.Contains(addr, "@") {
		return ""
	}

	return addr
}
