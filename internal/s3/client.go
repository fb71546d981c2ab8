package s3

import (
	"context"
	"fmt"
	"io"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"

	"github.com/kenchrcum/udcore-go/internal/config"
)

// Client is the narrow object-store surface the file layer needs:
// ranged reads, whole-object writes, and sizing.
type Client interface {
	GetRange(ctx context.Context, bucket, key string, offset, length int64) (io.ReadCloser, error)
	Put(ctx context.Context, bucket, key string, body io.Reader) error
	Size(ctx context.Context, bucket, key string) (int64, error)
}

type s3Client struct {
	client *s3.Client
}

// NewClient builds a client from cfg, resolving provider quirks through
// the registry: custom endpoint, path-style addressing, region default.
func NewClient(ctx context.Context, cfg *config.BackendConfig) (Client, error) {
	provider, err := ResolveProvider(cfg.Provider)
	if err != nil {
		return nil, err
	}

	region := cfg.Region
	if region == "" {
		region = provider.DefaultRegion
	}

	awsCfg, err := awsconfig.LoadDefaultConfig(ctx,
		awsconfig.WithRegion(region),
		awsconfig.WithCredentialsProvider(credentials.NewStaticCredentialsProvider(
			cfg.AccessKey, cfg.SecretKey, "",
		)),
	)
	if err != nil {
		return nil, fmt.Errorf("loading AWS config: %w", err)
	}

	var opts []func(*s3.Options)
	if endpoint := EndpointFor(provider, cfg.Endpoint, region); endpoint != "" {
		opts = append(opts, func(o *s3.Options) {
			o.BaseEndpoint = aws.String(endpoint)
			o.UsePathStyle = provider.ForcePathStyle
		})
	}

	return &s3Client{client: s3.NewFromConfig(awsCfg, opts...)}, nil
}

func (c *s3Client) GetRange(ctx context.Context, bucket, key string, offset, length int64) (io.ReadCloser, error) {
	rangeHeader := fmt.Sprintf("bytes=%d-%d", offset, offset+length-1)
	out, err := c.client.GetObject(ctx, &s3.GetObjectInput{
		Bucket: aws.String(bucket),
		Key:    aws.String(key),
		Range:  aws.String(rangeHeader),
	})
	if err != nil {
		return nil, fmt.Errorf("get %s/%s %s: %w", bucket, key, rangeHeader, err)
	}
	return out.Body, nil
}

func (c *s3Client) Put(ctx context.Context, bucket, key string, body io.Reader) error {
	_, err := c.client.PutObject(ctx, &s3.PutObjectInput{
		Bucket: aws.String(bucket),
		Key:    aws.String(key),
		Body:   body,
	})
	if err != nil {
		return fmt.Errorf("put %s/%s: %w", bucket, key, err)
	}
	return nil
}

func (c *s3Client) Size(ctx context.Context, bucket, key string) (int64, error) {
	out, err := c.client.HeadObject(ctx, &s3.HeadObjectInput{
		Bucket: aws.String(bucket),
		Key:    aws.String(key),
	})
	if err != nil {
		return 0, fmt.Errorf("head %s/%s: %w", bucket, key, err)
	}
	return aws.ToInt64(out.ContentLength), nil
}
