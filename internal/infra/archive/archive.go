// Package archive keeps raw provider pages in a gocloud.dev bucket.
package archive

import (
	"context"
	"fmt"
	"log/slog"
	"path"

	"gsync/config"
	"gsync/internal/domain/service"
	"gsync/internal/util"

	"github.com/pkg/errors"
	"go.uber.org/fx"
	"gocloud.dev/blob"
	_ "gocloud.dev/blob/fileblob" // file:// buckets
	_ "gocloud.dev/blob/gcsblob"  // gs:// buckets
	_ "gocloud.dev/blob/memblob"  // mem:// buckets
)

type bucketArchive struct {
	bucket *blob.Bucket
	prefix string
}

// NewBucketArchive wraps an open bucket. Keys are written under prefix.
func NewBucketArchive(bucket *blob.Bucket, prefix string) service.PageArchive {
	return &bucketArchive{bucket: bucket, prefix: prefix}
}

func (a *bucketArchive) Put(ctx context.Context, key string, body []byte) error {
	err := a.bucket.WriteAll(ctx, path.Join(a.prefix, key), body, &blob.WriterOptions{
		ContentType: "application/json",
	})
	if err != nil {
		return errors.Wrapf(err, "archive %s (%s)", key, util.FormatBytes(int64(len(body))))
	}

	return nil
}

type noopArchive struct{}

func (noopArchive) Put(context.Context, string, []byte) error {
	return nil
}

// ArchiveParams holds dependencies for PageArchive, injected by Fx
type ArchiveParams struct {
	fx.In

	Lc     fx.Lifecycle
	Ctx    context.Context
	Config *config.Config
	Logger *slog.Logger
}

// NewPageArchive opens the configured bucket, or discards pages when none is set.
func NewPageArchive(params ArchiveParams) (service.PageArchive, error) {
	cfg := params.Config.Archive
	if cfg == nil || cfg.BucketURL == "" {
		params.Logger.Info("Page archive not configured, raw pages are discarded")

		return noopArchive{}, nil
	}

	bucket, err := blob.OpenBucket(params.Ctx, cfg.BucketURL)
	if err != nil {
		return nil, errors.Wrapf(err, "open archive bucket %s", cfg.BucketURL)
	}

	params.Logger.Info("Archiving raw provider pages", slog.String("bucket", cfg.BucketURL))

	params.Lc.Append(fx.Hook{
		OnStop: func(context.Context) error {
			return errors.WithStack(bucket.Close())
		},
	})

	return NewBucketArchive(bucket, cfg.Prefix), nil
}

// PageKey builds the object key of one fetched page.
func PageKey(userID, syncType, periodKey string, page int) string {
	return path.Join(userID, syncType, periodKey, fmt.Sprintf("page-%04d.json", page))
}

// Module provides the page archive FX module
//
//nolint:gochecknoglobals
var Module = fx.Options(
	fx.Provide(NewPageArchive),
)
