package postgres

import (
	"context"

	"github.com/pkg/errors"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// DefaultChunkSize bounds the rows written by one upsert statement.
const DefaultChunkSize = 100

// UpsertBatch writes rows in sequential chunks of chunkSize, updating every
// non-key column when a row's conflict columns already exist. It stops at the
// first failing chunk and reports how many rows were written before it.
//
// Callers that must finish a write after their request is cancelled pass a
// context detached with context.WithoutCancel.
func UpsertBatch[M any](ctx context.Context, db *gorm.DB, rows []M, conflictColumns []string, chunkSize int) (int, error) {
	onConflict := clause.OnConflict{
		Columns:   toColumns(conflictColumns),
		UpdateAll: true,
	}

	return upsertChunks(ctx, rows, chunkSize, func(ctx context.Context, chunk []M) error {
		return db.WithContext(ctx).Clauses(onConflict).Create(&chunk).Error
	})
}

func upsertChunks[T any](ctx context.Context, rows []T, chunkSize int, write func(context.Context, []T) error) (int, error) {
	if chunkSize <= 0 {
		chunkSize = DefaultChunkSize
	}

	written := 0
	for start := 0; start < len(rows); start += chunkSize {
		end := min(start+chunkSize, len(rows))
		if err := write(ctx, rows[start:end]); err != nil {
			return written, errors.Wrapf(err, "upsert rows %d-%d of %d", start, end, len(rows))
		}
		written += end - start
	}

	return written, nil
}

// dedupeLast keeps one row per key, the last one seen, at the position of the
// first. Postgres rejects an upsert that touches the same row twice.
func dedupeLast[T any, K comparable](rows []T, key func(T) K) []T {
	index := make(map[K]int, len(rows))
	out := make([]T, 0, len(rows))
	for _, row := range rows {
		k := key(row)
		if i, ok := index[k]; ok {
			out[i] = row

			continue
		}
		index[k] = len(out)
		out = append(out, row)
	}

	return out
}
