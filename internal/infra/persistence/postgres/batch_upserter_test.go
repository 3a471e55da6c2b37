package postgres

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUpsertChunks_SplitsSequentially(t *testing.T) {
	rows := make([]int, 250)
	for i := range rows {
		rows[i] = i
	}

	var sizes []int
	var firsts []int
	written, err := upsertChunks(context.Background(), rows, 100, func(_ context.Context, chunk []int) error {
		sizes = append(sizes, len(chunk))
		firsts = append(firsts, chunk[0])

		return nil
	})

	require.NoError(t, err)
	assert.Equal(t, 250, written)
	assert.Equal(t, []int{100, 100, 50}, sizes)
	assert.Equal(t, []int{0, 100, 200}, firsts)
}

func TestUpsertChunks_FailFast(t *testing.T) {
	rows := make([]int, 250)
	calls := 0
	boom := errors.New("boom")

	written, err := upsertChunks(context.Background(), rows, 100, func(_ context.Context, _ []int) error {
		calls++
		if calls == 2 {
			return boom
		}

		return nil
	})

	require.ErrorIs(t, err, boom)
	assert.Equal(t, 100, written)
	assert.Equal(t, 2, calls, "no chunk after the failing one is written")
}

func TestUpsertChunks_DefaultsAndEmpty(t *testing.T) {
	calls := 0
	write := func(_ context.Context, chunk []int) error {
		calls++
		assert.LessOrEqual(t, len(chunk), DefaultChunkSize)

		return nil
	}

	written, err := upsertChunks(context.Background(), nil, 0, write)
	require.NoError(t, err)
	assert.Zero(t, written)
	assert.Zero(t, calls)

	written, err = upsertChunks(context.Background(), make([]int, 101), 0, write)
	require.NoError(t, err)
	assert.Equal(t, 101, written)
	assert.Equal(t, 2, calls)
}

func TestDedupeLast(t *testing.T) {
	type row struct {
		key string
		val int
	}

	got := dedupeLast([]row{{"a", 1}, {"b", 2}, {"a", 3}}, func(r row) string { return r.key })
	assert.Equal(t, []row{{"a", 3}, {"b", 2}}, got)
}
