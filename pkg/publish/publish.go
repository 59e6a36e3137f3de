package publish

import (
	"bytes"
	"context"
	"log/slog"
	"os"
	"path"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/s3"

	"github.com/hypertext-dev/hypertext/internal/errors"
	"github.com/hypertext-dev/hypertext/pkg/site"
)

// MetadataDigest is the object metadata key holding the page digest.
const MetadataDigest = "hypertext-digest"

// PutObjectAPI is the subset of *s3.Client used for publishing.
type PutObjectAPI interface {
	PutObject(ctx context.Context, params *s3.PutObjectInput, optFns ...func(*s3.Options)) (*s3.PutObjectOutput, error)
}

// Publisher uploads rendered pages to a bucket.
type Publisher struct {
	// Client performs the uploads.
	Client PutObjectAPI

	// Bucket is the destination bucket.
	Bucket string

	// Prefix is prepended to every object key.
	Prefix string

	// Cache, when set, skips pages whose digest has not changed since the
	// last upload.
	Cache *Cache

	// DryRun reports what would be uploaded without uploading.
	DryRun bool

	// Force uploads every output regardless of its cached digest. The cache
	// is still updated after each upload.
	Force bool

	// Logger receives progress messages. Defaults to slog.Default().
	Logger *slog.Logger
}

// Report lists the object keys handled by Publish.
type Report struct {
	Uploaded []string
	Skipped  []string
}

// Key returns the object key for an output.
func (p *Publisher) Key(out site.Output) string {
	if p.Prefix == "" {
		return out.Path
	}
	return path.Join(p.Prefix, out.Path)
}

func (p *Publisher) cacheKey(key string) string {
	return p.Bucket + "/" + key
}

func contentType(out site.Output) string {
	if out.ContentType != "" {
		return out.ContentType
	}
	return site.ContentType(out.Path)
}

// Publish uploads every output whose digest differs from the cached one.
// It stops at the first failure and returns the report so far.
func (p *Publisher) Publish(ctx context.Context, outputs []site.Output) (Report, error) {
	logger := p.Logger
	if logger == nil {
		logger = slog.Default().With("component", "publish")
	}

	var report Report
	for _, out := range outputs {
		if err := ctx.Err(); err != nil {
			return report, err
		}

		key := p.Key(out)
		if p.Cache != nil && !p.Force {
			prev, err := p.Cache.Digest(p.cacheKey(key))
			if err != nil {
				return report, err
			}
			if prev == out.Digest {
				logger.Debug("unchanged", "key", key)
				report.Skipped = append(report.Skipped, key)
				continue
			}
		}

		if p.DryRun {
			logger.Info("would upload", "key", key, "bytes", out.Bytes)
			report.Uploaded = append(report.Uploaded, key)
			continue
		}

		if err := p.upload(ctx, key, out); err != nil {
			return report, err
		}
		if p.Cache != nil {
			if err := p.Cache.Put(p.cacheKey(key), out.Digest); err != nil {
				return report, err
			}
		}
		logger.Info("uploaded", "key", key, "bytes", out.Bytes)
		report.Uploaded = append(report.Uploaded, key)
	}

	logger.Info("publish complete",
		"bucket", p.Bucket,
		"uploaded", len(report.Uploaded),
		"skipped", len(report.Skipped),
		"dry_run", p.DryRun,
		"force", p.Force,
	)
	return report, nil
}

func (p *Publisher) upload(ctx context.Context, key string, out site.Output) error {
	body, err := os.ReadFile(out.File)
	if err != nil {
		return errors.New("H040").WithDetail(out.File).Wrap(err)
	}

	_, err = p.Client.PutObject(ctx, &s3.PutObjectInput{
		Bucket:      aws.String(p.Bucket),
		Key:         aws.String(key),
		Body:        bytes.NewReader(body),
		ContentType: aws.String(contentType(out)),
		Metadata: map[string]string{
			MetadataDigest: out.Digest,
		},
	})
	if err != nil {
		return errors.New("H040").
			WithDetail("s3://" + p.Bucket + "/" + key).
			WithSuggestion("Check the bucket name and AWS credentials").
			Wrap(err)
	}
	return nil
}
