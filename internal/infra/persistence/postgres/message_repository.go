package postgres

import (
	"context"
	"time"

	"gsync/internal/domain/entity"
	"gsync/internal/domain/repository"
	"gsync/internal/infra/persistence/model"
	"gsync/internal/infra/persistence/postgres/query"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

type messageRepository struct {
	q *query.Query
}

// NewMessageRepository is the constructor for messageRepository.
func NewMessageRepository(db *gorm.DB) repository.MessageRepository {
	return &messageRepository{
		q: query.Use(db),
	}
}

// Append writes one console line.
func (repo *messageRepository) Append(ctx context.Context, msg *entity.SyncMessage) error {
	if msg.ID == uuid.Nil {
		msg.ID = uuid.New()
	}
	if msg.CreatedAt.IsZero() {
		msg.CreatedAt = time.Now().UTC()
	}

	msgM := &model.SyncMessageModel{
		ID:        msg.ID,
		UserID:    msg.UserID,
		RunID:     msg.RunID,
		SyncType:  msg.SyncType.String(),
		Level:     string(msg.Level),
		Message:   msg.Message,
		CreatedAt: msg.CreatedAt,
	}
	if err := repo.q.SyncMessageModel.WithContext(ctx).Create(msgM); err != nil {
		return classifyWriteError(err, "failed to append sync message")
	}

	return nil
}

// ListByRun returns the messages of one run, oldest first.
func (repo *messageRepository) ListByRun(ctx context.Context, userID, runID uuid.UUID) ([]*entity.SyncMessage, error) {
	m := repo.q.SyncMessageModel

	rows, err := m.WithContext(ctx).
		Where(m.UserID.Eq(userID), m.RunID.Eq(runID)).
		Order(m.CreatedAt).
		Find()
	if err != nil {
		return nil, errors.WithStack(err)
	}

	messages := make([]*entity.SyncMessage, 0, len(rows))
	for _, row := range rows {
		messages = append(messages, &entity.SyncMessage{
			ID:        row.ID,
			UserID:    row.UserID,
			RunID:     row.RunID,
			SyncType:  entity.SyncType(row.SyncType),
			Level:     entity.MessageLevel(row.Level),
			Message:   row.Message,
			CreatedAt: row.CreatedAt,
		})
	}

	return messages, nil
}
