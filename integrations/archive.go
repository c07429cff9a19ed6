package integrations

import (
	"bytes"
	"context"
	"fmt"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/rs/zerolog/log"
)

// S3API is the subset of the S3 client used by ReportArchive.
type S3API interface {
	PutObject(ctx context.Context, params *s3.PutObjectInput, optFns ...func(*s3.Options)) (*s3.PutObjectOutput, error)
}

// NewS3Client loads the default AWS credential chain for region.
func NewS3Client(ctx context.Context, region string) (*s3.Client, error) {
	awsCfg, err := awsconfig.LoadDefaultConfig(ctx, awsconfig.WithRegion(region))
	if err != nil {
		return nil, fmt.Errorf("archive: load aws config: %w", err)
	}
	return s3.NewFromConfig(awsCfg), nil
}

// ReportArchive keeps a copy of every generated export in S3. With no bucket
// configured all operations are no-ops.
type ReportArchive struct {
	bucket string
	client S3API
	now    func() time.Time
}

func NewReportArchive(client S3API, bucket string) *ReportArchive {
	return &ReportArchive{bucket: bucket, client: client, now: time.Now}
}

func (a *ReportArchive) Enabled() bool {
	return a != nil && a.bucket != "" && a.client != nil
}

// Key returns the object key for fileName: reports/YYYY/MM/<fileName>.
func (a *ReportArchive) Key(fileName string) string {
	now := a.now().UTC()
	return fmt.Sprintf("reports/%d/%02d/%s", now.Year(), now.Month(), fileName)
}

// Store uploads data under Key(fileName). Failures are logged and returned.
func (a *ReportArchive) Store(ctx context.Context, fileName, contentType string, data []byte) error {
	if !a.Enabled() {
		return nil
	}
	key := a.Key(fileName)
	_, err := a.client.PutObject(ctx, &s3.PutObjectInput{
		Bucket:      aws.String(a.bucket),
		Key:         aws.String(key),
		Body:        bytes.NewReader(data),
		ContentType: aws.String(contentType),
	})
	if err != nil {
		log.Warn().Err(err).Str("s3_key", key).Msg("archive: upload failed")
		return fmt.Errorf("archive: s3 put %s: %w", key, err)
	}
	log.Info().Str("s3_key", key).Int("bytes", len(data)).Msg("archived report to S3")
	return nil
}
