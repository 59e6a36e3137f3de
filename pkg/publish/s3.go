package publish

import (
	"context"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/s3"

	"github.com/hypertext-dev/hypertext/internal/config"
	"github.com/hypertext-dev/hypertext/internal/errors"
)

// DefaultRegion is used when the publish configuration names no region.
const DefaultRegion = "us-east-1"

// NewS3Client builds an S3 client for the configured region, profile and
// optional endpoint. Credentials follow the standard AWS chain: environment
// variables, the shared credentials and config files, SSO, then instance
// roles. A custom endpoint implies path-style addressing. Extra load options
// are applied last.
func NewS3Client(ctx context.Context, cfg config.PublishConfig, optFns ...func(*awsconfig.LoadOptions) error) (*s3.Client, error) {
	region := cfg.Region
	if region == "" {
		region = DefaultRegion
	}

	opts := []func(*awsconfig.LoadOptions) error{awsconfig.WithRegion(region)}
	if cfg.Profile != "" {
		opts = append(opts, awsconfig.WithSharedConfigProfile(cfg.Profile))
	}
	opts = append(opts, optFns...)

	awsCfg, err := awsconfig.LoadDefaultConfig(ctx, opts...)
	if err != nil {
		return nil, errors.New("H040").
			WithDetail("Failed to load AWS configuration").
			WithSuggestion("Check publish.profile and the AWS credentials files").
			Wrap(err)
	}

	return s3.NewFromConfig(awsCfg, func(o *s3.Options) {
		if cfg.Endpoint != "" {
			o.BaseEndpoint = aws.String(cfg.Endpoint)
			o.UsePathStyle = true
		}
	}), nil
}
