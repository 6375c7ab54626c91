package services

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"time"

	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/rs/zerolog/log"

	"github.com/inkwell-blog/backend/errs"
	"github.com/inkwell-blog/backend/models"
)

// snapshot is the offsite backup payload: full content plus the stat
// series, enough to rebuild the site elsewhere.
type snapshot struct {
	TakenAt    time.Time           `json:"takenAt"`
	Posts      []*models.Post      `json:"posts"`
	Tags       []*models.Tag       `json:"tags"`
	DailyStats []*models.DailyStat `json:"dailyStats"`
}

// s3Putter is the slice of the S3 client the exporter needs.
type s3Putter interface {
	PutObject(ctx context.Context, params *s3.PutObjectInput, optFns ...func(*s3.Options)) (*s3.PutObjectOutput, error)
}

// NewS3Client builds an S3 client from the ambient AWS configuration.
func NewS3Client(ctx context.Context) (*s3.Client, error) {
	cfg, err := awsconfig.LoadDefaultConfig(ctx)
	if err != nil {
		return nil, fmt.Errorf("loading AWS config: %w", err)
	}
	return s3.NewFromConfig(cfg), nil
}

// ExportSnapshot serializes the current content to JSON and puts it to
// the configured bucket, keyed by timestamp. It is invoked after the
// daily stats job when SNAPSHOT_BUCKET is set.
func (e *Engine) ExportSnapshot(ctx context.Context, client s3Putter, bucket string) error {
	posts, err := e.db.PostRepo().FindAll()
	if err != nil {
		return errs.NewDatabaseError("export", "posts", err)
	}
	tags, err := e.db.TagRepo().FindAll()
	if err != nil {
		return errs.NewDatabaseError("export", "tags", err)
	}
	stats, err := e.db.DailyStatRepo().FindAll()
	if err != nil {
		return errs.NewDatabaseError("export", "daily stats", err)
	}

	snap := snapshot{
		TakenAt:    time.Now().UTC(),
		Posts:      posts,
		Tags:       tags,
		DailyStats: stats,
	}
	body, err := json.Marshal(snap)
	if err != nil {
		return fmt.Errorf("marshaling snapshot: %w", err)
	}

	key := fmt.Sprintf("snapshots/%s.json", snap.TakenAt.Format("2006-01-02T15-04-05"))
	contentType := "application/json"
	_, err = client.PutObject(ctx, &s3.PutObjectInput{
		Bucket:      &bucket,
		Key:         &key,
		Body:        bytes.NewReader(body),
		ContentType: &contentType,
	})
	if err != nil {
		return fmt.Errorf("uploading snapshot to s3://%s/%s: %w", bucket, key, err)
	}

	log.Info().Str("bucket", bucket).Str("key", key).Int("bytes", len(body)).Msg("snapshot exported")
	return nil
}
