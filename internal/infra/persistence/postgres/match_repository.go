package postgres

import (
	"context"
	"time"

	"gsync/config"
	"gsync/internal/domain/entity"
	"gsync/internal/domain/repository"
	"gsync/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// maxLookupParams bounds the addresses bound into one IN (...) lookup.
const maxLookupParams = 500

// matchRepository implements repository.MatchRepository by linking record
// participants to rows of the people table on normalized email address.
type matchRepository struct {
	db        *gorm.DB
	chunkSize int
}

// NewMatchRepository is the constructor for matchRepository.
func NewMatchRepository(db *gorm.DB, cfg *config.Config) repository.MatchRepository {
	chunkSize := DefaultChunkSize
	if cfg != nil && cfg.Sync != nil && cfg.Sync.ChunkSize > 0 {
		chunkSize = cfg.Sync.ChunkSize
	}

	return &matchRepository{db: db, chunkSize: chunkSize}
}

type matchCandidate struct {
	recordID  uuid.UUID
	addresses []string
}

// MatchEmailsInRange links emails received in [start, end) to people.
func (repo *matchRepository) MatchEmailsInRange(ctx context.Context, userID uuid.UUID, start, end time.Time) (int, error) {
	var rows []model.EmailRecordModel
	if err := repo.db.WithContext(ctx).
		Select("id", "from_address", "to_addresses", "cc_addresses").
		Where("user_id = ? AND internal_date >= ? AND internal_date < ?", userID, start.UTC(), end.UTC()).
		Find(&rows).Error; err != nil {
		return 0, errors.Wrap(err, "load email records")
	}

	candidates := make([]matchCandidate, 0, len(rows))
	for _, row := range rows {
		record := entity.EmailRecord{From: row.FromAddress, To: row.ToAddresses, Cc: row.CcAddresses}
		candidates = append(candidates, matchCandidate{recordID: row.ID, addresses: record.Participants()})
	}

	return repo.link(ctx, userID, entity.RecordKindEmail, candidates)
}

// MatchEventsInRange links events overlapping [timeMin, timeMax) to people.
// An empty calendarID matches events of every calendar.
func (repo *matchRepository) MatchEventsInRange(ctx context.Context, userID uuid.UUID, timeMin, timeMax time.Time, calendarID string) (int, error) {
	tx := repo.db.WithContext(ctx).
		Select("id", "organizer", "attendees").
		Where("user_id = ? AND start_at < ? AND end_at > ?", userID, timeMax.UTC(), timeMin.UTC())
	if calendarID != "" {
		tx = tx.Where("calendar_id = ?", calendarID)
	}

	var rows []model.CalendarEventModel
	if err := tx.Find(&rows).Error; err != nil {
		return 0, errors.Wrap(err, "load calendar events")
	}

	candidates := make([]matchCandidate, 0, len(rows))
	for _, row := range rows {
		event := entity.CalendarEvent{Organizer: row.Organizer, Attendees: row.Attendees}
		candidates = append(candidates, matchCandidate{recordID: row.ID, addresses: event.Participants()})
	}

	return repo.link(ctx, userID, entity.RecordKindEvent, candidates)
}

// link inserts the missing record-person pairs and returns how many were new.
func (repo *matchRepository) link(ctx context.Context, userID uuid.UUID, kind entity.RecordKind, candidates []matchCandidate) (int, error) {
	var addresses []string
	for _, candidate := range candidates {
		addresses = append(addresses, candidate.addresses...)
	}
	addresses = entity.NormalizeAddresses(addresses)
	if len(addresses) == 0 {
		return 0, nil
	}

	people, err := repo.peopleByEmail(ctx, addresses)
	if err != nil {
		return 0, err
	}
	if len(people) == 0 {
		return 0, nil
	}

	now := time.Now().UTC()
	var matches []model.RecordMatchModel
	for _, candidate := range candidates {
		for _, addr := range candidate.addresses {
			personID, ok := people[addr]
			if !ok {
				continue
			}
			matches = append(matches, model.RecordMatchModel{
				ID:         uuid.New(),
				UserID:     userID,
				RecordKind: string(kind),
				RecordID:   candidate.recordID,
				PersonID:   personID,
				MatchedAt:  now,
			})
		}
	}
	if len(matches) == 0 {
		return 0, nil
	}

	res := repo.db.WithContext(ctx).
		Clauses(clause.OnConflict{Columns: toColumns(model.RecordMatchConflictColumns), DoNothing: true}).
		CreateInBatches(&matches, repo.chunkSize)
	if res.Error != nil {
		return 0, classifyWriteError(res.Error, "failed to insert record matches")
	}

	return int(res.RowsAffected), nil
}

func (repo *matchRepository) peopleByEmail(ctx context.Context, addresses []string) (map[string]uuid.UUID, error) {
	people := make(map[string]uuid.UUID)
	for start := 0; start < len(addresses); start += maxLookupParams {
		end := min(start+maxLookupParams, len(addresses))

		var rows []model.PersonModel
		if err := repo.db.WithContext(ctx).
			Select("id", "email").
			Where("LOWER(email) IN ?", addresses[start:end]).
			Find(&rows).Error; err != nil {
			return nil, errors.Wrap(err, "load people")
		}
		for _, row := range rows {
			people[entity.NormalizeAddress(row.Email)] = row.ID
		}
	}

	return people, nil
}
