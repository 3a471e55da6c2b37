package archive

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"gsync/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/fx/fxtest"
	"gocloud.dev/blob/memblob"
)

func TestBucketArchive_Put(t *testing.T) {
	ctx := context.Background()
	bucket := memblob.OpenBucket(nil)
	defer bucket.Close()

	archive := NewBucketArchive(bucket, "raw")
	key := PageKey("u1", "email", "2026-W15", 2)
	require.NoError(t, archive.Put(ctx, key, []byte(`{"messages":[]}`)))

	body, err := bucket.ReadAll(ctx, "raw/u1/email/2026-W15/page-0002.json")
	require.NoError(t, err)
	assert.JSONEq(t, `{"messages":[]}`, string(body))

	attrs, err := bucket.Attributes(ctx, "raw/"+key)
	require.NoError(t, err)
	assert.Equal(t, "application/json", attrs.ContentType)
}

func TestNewPageArchive(t *testing.T) {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	lc := fxtest.NewLifecycle(t)

	archive, err := NewPageArchive(ArchiveParams{Lc: lc, Ctx: context.Background(), Config: &config.Config{}, Logger: logger})
	require.NoError(t, err)
	assert.IsType(t, noopArchive{}, archive)
	assert.NoError(t, archive.Put(context.Background(), "k", nil))

	archive, err = NewPageArchive(ArchiveParams{
		Lc:     lc,
		Ctx:    context.Background(),
		Config: &config.Config{Archive: &config.ArchiveConfig{BucketURL: "mem://", Prefix: "p"}},
		Logger: logger,
	})
	require.NoError(t, err)
	assert.IsType(t, &bucketArchive{}, archive)

	lc.RequireStart().RequireStop()

	_, err = NewPageArchive(ArchiveParams{
		Lc:     lc,
		Ctx:    context.Background(),
		Config: &config.Config{Archive: &config.ArchiveConfig{BucketURL: "nope://x"}},
		Logger: logger,
	})
	assert.Error(t, err)
}

