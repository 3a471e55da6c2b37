package postgres

import (
	"context"
	"time"

	"gsync/internal/domain/entity"
	domainerrors "gsync/internal/domain/errors"
	"gsync/internal/domain/repository"
	"gsync/internal/infra/persistence/model"
	"gsync/internal/infra/persistence/postgres/query"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// progressRepository implements repository.ProgressRepository.
type progressRepository struct {
	q *query.Query
}

// NewProgressRepository is the constructor for progressRepository.
func NewProgressRepository(db *gorm.DB) repository.ProgressRepository {
	return &progressRepository{
		q: query.Use(db),
	}
}

// TryAcquireHead takes the head row for runID. The insert wins when no row
// exists. Otherwise a conditional update wins only when the current holder has
// finished or has not touched the row since staleBefore. Each statement is
// guarded on its own, so the run holds the head exactly when the row carries runID.
func (repo *progressRepository) TryAcquireHead(
	ctx context.Context,
	userID uuid.UUID,
	syncType entity.SyncType,
	runID uuid.UUID,
	now, staleBefore time.Time,
) (bool, error) {
	h := repo.q.SyncHeadModel
	running := entity.PeriodStatusRunning.String()

	err := h.WithContext(ctx).
		Clauses(clause.OnConflict{Columns: toColumns(model.SyncHeadConflictColumns), DoNothing: true}).
		Create(&model.SyncHeadModel{
			UserID:    userID,
			SyncType:  syncType.String(),
			Status:    running,
			RunID:     &runID,
			StartedAt: &now,
			UpdatedAt: now,
		})
	if err != nil {
		return false, classifyWriteError(err, "failed to create sync head")
	}

	takeover := map[string]any{
		"status":        running,
		"error_message": "",
		"run_id":        runID,
		"started_at":    now,
		"completed_at":  nil,
		"updated_at":    now,
	}

	info, err := h.WithContext(ctx).
		Where(h.UserID.Eq(userID), h.SyncType.Eq(syncType.String()), h.Status.Neq(running)).
		Updates(takeover)
	if err != nil {
		return false, domainerrors.NewDatabaseExecuteError(err, "failed to acquire sync head")
	}
	if info.RowsAffected == 0 {
		_, err = h.WithContext(ctx).
			Where(h.UserID.Eq(userID), h.SyncType.Eq(syncType.String()), h.Status.Eq(running), h.UpdatedAt.Lt(staleBefore)).
			Updates(takeover)
		if err != nil {
			return false, domainerrors.NewDatabaseExecuteError(err, "failed to take over stale sync head")
		}
	}

	held, err := h.WithContext(ctx).
		Where(h.UserID.Eq(userID), h.SyncType.Eq(syncType.String()), h.RunID.Eq(runID)).
		Count()
	if err != nil {
		return false, errors.WithStack(err)
	}

	return held > 0, nil
}

// UpdateHeadForRun writes the patched columns of the head row while runID holds it.
func (repo *progressRepository) UpdateHeadForRun(
	ctx context.Context,
	userID uuid.UUID,
	syncType entity.SyncType,
	runID uuid.UUID,
	patch entity.HeadPatch,
) (bool, error) {
	h := repo.q.SyncHeadModel

	values := map[string]any{
		"status":     patch.Status.String(),
		"updated_at": patchTime(patch.At),
	}
	if patch.ErrorMessage != nil {
		values["error_message"] = *patch.ErrorMessage
	}
	if patch.StartedAt != nil {
		values["started_at"] = *patch.StartedAt
	}
	if patch.CompletedAt != nil {
		values["completed_at"] = *patch.CompletedAt
	}

	info, err := h.WithContext(ctx).
		Where(h.UserID.Eq(userID), h.SyncType.Eq(syncType.String()), h.RunID.Eq(runID)).
		Updates(values)
	if err != nil {
		return false, classifyWriteError(err, "failed to update sync head")
	}

	return info.RowsAffected > 0, nil
}

// FindHead retrieves the head row for a user and sync type.
func (repo *progressRepository) FindHead(ctx context.Context, userID uuid.UUID, syncType entity.SyncType) (*entity.SyncHead, error) {
	h := repo.q.SyncHeadModel

	headM, err := h.WithContext(ctx).
		Where(h.UserID.Eq(userID), h.SyncType.Eq(syncType.String())).
		Take()
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrHeadNotFound
		}

		return nil, errors.WithStack(err)
	}

	head := &entity.SyncHead{
		UserID:       headM.UserID,
		SyncType:     entity.SyncType(headM.SyncType),
		Status:       entity.PeriodStatus(headM.Status),
		ErrorMessage: headM.ErrorMessage,
		StartedAt:    headM.StartedAt,
		CompletedAt:  headM.CompletedAt,
		UpdatedAt:    headM.UpdatedAt,
	}
	if headM.RunID != nil {
		head.RunID = *headM.RunID
	}

	return head, nil
}

// UpsertPeriod writes the period row on its natural key. New rows take every
// field of the patched period; existing rows only take the patched columns.
func (repo *progressRepository) UpsertPeriod(ctx context.Context, period *entity.SyncPeriod, patch entity.PeriodPatch) error {
	next := *period
	patch.At = patchTime(patch.At)
	next.Apply(patch)

	columns := []string{"status", "range_start", "range_end", "updated_at"}
	if patch.ErrorMessage != nil {
		columns = append(columns, "error_message")
	}
	if patch.Upserted != nil {
		columns = append(columns, "upserted")
	}
	if patch.StartedAt != nil {
		columns = append(columns, "started_at")
	}
	if patch.CompletedAt != nil {
		columns = append(columns, "completed_at")
	}

	onConflict := func(keys []string) clause.OnConflict {
		return clause.OnConflict{Columns: toColumns(keys), DoUpdates: clause.AssignmentColumns(columns)}
	}

	var err error
	switch period.SyncType {
	case entity.SyncTypeEmail:
		err = repo.q.EmailSyncPeriodModel.WithContext(ctx).
			Clauses(onConflict(model.EmailPeriodConflictColumns)).
			Create(&model.EmailSyncPeriodModel{
				ID:            uuid.New(),
				UserID:        next.UserID,
				PeriodKey:     next.PeriodKey,
				PeriodColumns: toPeriodColumns(&next),
			})
	case entity.SyncTypeCalendar:
		err = repo.q.CalendarSyncPeriodModel.WithContext(ctx).
			Clauses(onConflict(model.CalendarPeriodConflictColumns)).
			Create(&model.CalendarSyncPeriodModel{
				ID:            uuid.New(),
				UserID:        next.UserID,
				CalendarID:    next.CalendarID,
				PeriodKey:     next.PeriodKey,
				PeriodColumns: toPeriodColumns(&next),
			})
	default:
		return domainerrors.ErrInvalidSyncType.WrapMessage(period.SyncType.String())
	}
	if err != nil {
		return classifyWriteError(err, "failed to upsert sync period "+period.PeriodKey)
	}

	return nil
}

// ListPeriods returns the user's periods of one type in chronological order.
func (repo *progressRepository) ListPeriods(ctx context.Context, userID uuid.UUID, syncType entity.SyncType) ([]*entity.SyncPeriod, error) {
	switch syncType {
	case entity.SyncTypeEmail:
		p := repo.q.EmailSyncPeriodModel
		rows, err := p.WithContext(ctx).
			Where(p.UserID.Eq(userID)).
			Order(p.RangeStart).
			Find()
		if err != nil {
			return nil, errors.WithStack(err)
		}
		periods := make([]*entity.SyncPeriod, 0, len(rows))
		for _, row := range rows {
			periods = append(periods, toPeriodDomain(row.UserID, syncType, row.PeriodKey, "", &row.PeriodColumns))
		}

		return periods, nil
	case entity.SyncTypeCalendar:
		p := repo.q.CalendarSyncPeriodModel
		rows, err := p.WithContext(ctx).
			Where(p.UserID.Eq(userID)).
			Order(p.RangeStart, p.CalendarID).
			Find()
		if err != nil {
			return nil, errors.WithStack(err)
		}
		periods := make([]*entity.SyncPeriod, 0, len(rows))
		for _, row := range rows {
			periods = append(periods, toPeriodDomain(row.UserID, syncType, row.PeriodKey, row.CalendarID, &row.PeriodColumns))
		}

		return periods, nil
	default:
		return nil, domainerrors.ErrInvalidSyncType.WrapMessage(syncType.String())
	}
}

func toPeriodColumns(period *entity.SyncPeriod) model.PeriodColumns {
	return model.PeriodColumns{
		RangeStart:   period.RangeStart,
		RangeEnd:     period.RangeEnd,
		Status:       period.Status.String(),
		ErrorMessage: period.ErrorMessage,
		Upserted:     period.Upserted,
		StartedAt:    period.StartedAt,
		CompletedAt:  period.CompletedAt,
		CreatedAt:    period.UpdatedAt,
		UpdatedAt:    period.UpdatedAt,
	}
}

func toPeriodDomain(userID uuid.UUID, syncType entity.SyncType, key, calendarID string, cols *model.PeriodColumns) *entity.SyncPeriod {
	return &entity.SyncPeriod{
		UserID:       userID,
		SyncType:     syncType,
		PeriodKey:    key,
		CalendarID:   calendarID,
		RangeStart:   cols.RangeStart,
		RangeEnd:     cols.RangeEnd,
		Status:       entity.PeriodStatus(cols.Status),
		ErrorMessage: cols.ErrorMessage,
		Upserted:     cols.Upserted,
		StartedAt:    cols.StartedAt,
		CompletedAt:  cols.CompletedAt,
		UpdatedAt:    cols.UpdatedAt,
	}
}

func patchTime(at time.Time) time.Time {
	if at.IsZero() {
		return time.Now().UTC()
	}

	return at
}

func toColumns(names []string) []clause.Column {
	columns := make([]clause.Column, len(names))
	for i, name := range names {
		columns[i] = clause.Column{Name: name}
	}

	return columns
}
