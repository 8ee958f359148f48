// Package s3 stores public assets, such as shop logos, in an S3-compatible
// bucket. Objects are addressed by key; the bucket comes from configuration.
package s3

//go:generate go run go.uber.org/mock/mockgen -source=./s3.go -destination=./mocks/s3_mock.go -package=mocks

import (
	"context"
	"fmt"
	"io"
	"strings"

	"beautyhub/config"
	"beautyhub/infras/otel"
	"beautyhub/shared/constant"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsConfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/rs/zerolog/log"
)

const (
	otelAttrKey    = "s3.key"
	otelAttrBucket = "s3.bucket"
	otelAttrSize   = "s3.size"

	region = "auto"
)

type S3 interface {
	// Put uploads body under key and returns its public URL.
	Put(ctx context.Context, key string, body io.Reader, size int64, contentType string) (url string, err error)
	Delete(ctx context.Context, key string) error
	// KeyFromURL reverses the URL returned by Put. It returns an empty string
	// for URLs that point elsewhere.
	KeyFromURL(url string) string
}

type s3Impl struct {
	client *s3.Client
	bucket string
	public string
	otel   otel.Otel
}

func New(cfg *config.Config, otel otel.Otel) S3 {
	store := cfg.External.S3

	awsCfg, err := awsConfig.LoadDefaultConfig(context.Background(),
		awsConfig.WithCredentialsProvider(credentials.NewStaticCredentialsProvider(store.AccessKeyID, store.SecretAccessKey, "")),
		awsConfig.WithRegion(region),
	)
	if err != nil {
		log.Error().Err(err).Msg("Error loading AWS configuration")
	}

	client := s3.NewFromConfig(awsCfg, func(o *s3.Options) {
		if store.APIEndpoint != "" {
			o.BaseEndpoint = aws.String(store.APIEndpoint)
		}

		o.UsePathStyle = true
	})

	return &s3Impl{
		client: client,
		bucket: store.BucketName,
		public: strings.TrimSuffix(store.PublicDomain, "/"),
		otel:   otel,
	}
}

func (svc *s3Impl) Put(ctx context.Context, key string, body io.Reader, size int64, contentType string) (url string, err error) {
	ctx, scope := svc.otel.NewScope(ctx, constant.OtelS3ScopeName, constant.OtelS3ScopeName+".Put")
	defer scope.End()
	defer scope.TraceIfError(&err)

	scope.SetAttributes(map[string]any{
		otelAttrKey:    key,
		otelAttrBucket: svc.bucket,
		otelAttrSize:   size,
	})

	_, err = svc.client.PutObject(ctx, &s3.PutObjectInput{
		Bucket:        aws.String(svc.bucket),
		Key:           aws.String(key),
		Body:          body,
		ContentType:   aws.String(contentType),
		ContentLength: aws.Int64(size),
	})
	if err != nil {
		log.Error().Err(err).Str("key", key).Msg("failed to upload object")

		return constant.Empty, fmt.Errorf("failed to upload %s: %w", key, err)
	}

	return svc.public + "/" + key, nil
}

func (svc *s3Impl) Delete(ctx context.Context, key string) (err error) {
	ctx, scope := svc.otel.NewScope(ctx, constant.OtelS3ScopeName, constant.OtelS3ScopeName+".Delete")
	defer scope.End()
	defer scope.TraceIfError(&err)

	scope.SetAttributes(map[string]any{
		otelAttrKey:    key,
		otelAttrBucket: svc.bucket,
	})

	if _, err = svc.client.DeleteObject(ctx, &s3.DeleteObjectInput{
		Bucket: aws.String(svc.bucket),
		Key:    aws.String(key),
	}); err != nil {
		log.Error().Err(err).Str("key", key).Msg("failed to delete object")

		return fmt.Errorf("failed to delete %s: %w", key, err)
	}

	return nil
}

func (svc *s3Impl) KeyFromURL(url string) string {
	key, ok := strings.CutPrefix(url, svc.public+"/")
	if !ok || svc.public == "" {
		return constant.Empty
	}

	return key
}
