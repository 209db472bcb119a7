package publish

import (
	"context"
	"errors"
	"fmt"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/aws/smithy-go"
)

var (
	ErrS3Op      = errors.New("operational error")
	ErrS3Unknown = errors.New("unknown error")
	ErrNoBucket  = errors.New("no bucket configured")
)

// S3Config describes the bucket a site is published to. AccessKeyID and SecretAccessKey must be given both or
// neither; without them the default AWS credential chain applies.
type S3Config struct {
	Bucket          string
	Region          string
	Endpoint        string
	Prefix          string
	AccessKeyID     string
	SecretAccessKey string
}

//go:generate mockery --name S3Client --outpkg s3mocks --output ../testutils/s3mocks
type S3Client interface {
	PutObject(ctx context.Context, params *s3.PutObjectInput, optFns ...func(*s3.Options)) (*s3.PutObjectOutput, error)
	Options() s3.Options
}

// NewS3Publisher creates a Publisher uploading to the bucket described by cfg
func NewS3Publisher(ctx context.Context, cfg S3Config) (*Publisher, error) {
	if cfg.Bucket == "" {
		return nil, ErrNoBucket
	}
	if (cfg.AccessKeyID == "") != (cfg.SecretAccessKey == "") {
		return nil, fmt.Errorf("invalid publish config. access key id and secret access key must be set both when setting credentials explicit")
	}

	var optFns []func(*config.LoadOptions) error
	if cfg.Region != "" {
		optFns = append(optFns, config.WithRegion(cfg.Region))
	}
	if cfg.AccessKeyID != "" {
		optFns = append(optFns, config.WithCredentialsProvider(credentials.NewStaticCredentialsProvider(cfg.AccessKeyID, cfg.SecretAccessKey, "")))
	}

	configS3, err := config.LoadDefaultConfig(ctx, optFns...)
	if err != nil {
		return nil, fmt.Errorf("error loading S3 configuration: %w", err)
	}
	if cfg.Endpoint != "" {
		configS3.BaseEndpoint = aws.String(cfg.Endpoint)
	}

	c := s3.NewFromConfig(configS3, func(o *s3.Options) {
		o.UsePathStyle = true
	})
	return NewPublisher(c, cfg.Bucket, cfg.Prefix), nil
}

func classifyS3Error(err error, objectKey string) error {
	var oe *smithy.OperationError
	if errors.As(err, &oe) {
		return fmt.Errorf("%w, object: %s error: %s", ErrS3Op, objectKey, err.Error())
	}
	return fmt.Errorf("%w, object: %s error: %s", ErrS3Unknown, objectKey, err.Error())
}
