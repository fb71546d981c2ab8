package handlers_test

import (
	"context"
	"os"
	"testing"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	awss3 "github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	tcminio "github.com/testcontainers/testcontainers-go/modules/minio"

	"github.com/kenchrcum/udcore-go/internal/config"
	"github.com/kenchrcum/udcore-go/vfile"
	"github.com/kenchrcum/udcore-go/vfile/handlers"
)

func TestMain(m *testing.M) {
	vfile.RegisterHandler("", handlers.Local{}, true)
	os.Exit(m.Run())
}

// TestS3HandlerAgainstMinio drives the s3:// handler end to end against
// a MinIO container: save, load, and a ranged read through an open
// handle.
func TestS3HandlerAgainstMinio(t *testing.T) {
	if testing.Short() {
		t.Skip("integration test, skipped in -short mode")
	}
	ctx := context.Background()

	container, err := tcminio.Run(ctx, "minio/minio:RELEASE.2024-01-16T16-07-38Z")
	if err != nil {
		t.Skipf("starting minio container (docker unavailable?): %v", err)
	}
	t.Cleanup(func() { container.Terminate(ctx) })

	endpoint, err := container.ConnectionString(ctx)
	require.NoError(t, err)

	cfg := &config.BackendConfig{
		Provider:  "minio",
		Region:    "us-east-1",
		Endpoint:  "http://" + endpoint,
		AccessKey: container.Username,
		SecretKey: container.Password,
	}

	createBucket(t, ctx, cfg, "udcore-test")

	handler, err := handlers.NewS3Handler(ctx, cfg)
	require.NoError(t, err)
	require.NoError(t, vfile.RegisterHandler("s3://*", handler, true))
	t.Cleanup(func() { vfile.DeregisterHandler("s3://*") })

	payload := []byte("0123456789abcdefghijklmnopqrstuvwxyz")
	require.NoError(t, vfile.Save(ctx, "s3://udcore-test/points/block-0001", payload))

	loaded, err := vfile.Load(ctx, "s3://udcore-test/points/block-0001")
	require.NoError(t, err)
	assert.Equal(t, payload, loaded)

	f, err := vfile.Open(ctx, "s3://udcore-test/points/block-0001", vfile.FlagRead)
	require.NoError(t, err)
	defer f.Close(ctx)

	buf := make([]byte, 10)
	n, err := f.Read(ctx, buf, 10)
	require.NoError(t, err)
	assert.Equal(t, 10, n)
	assert.Equal(t, []byte("abcdefghij"), buf)
}

func createBucket(t *testing.T, ctx context.Context, cfg *config.BackendConfig, bucket string) {
	t.Helper()
	awsCfg, err := awsconfig.LoadDefaultConfig(ctx,
		awsconfig.WithRegion(cfg.Region),
		awsconfig.WithCredentialsProvider(credentials.NewStaticCredentialsProvider(
			cfg.AccessKey, cfg.SecretKey, "",
		)),
	)
	require.NoError(t, err)

	client := awss3.NewFromConfig(awsCfg, func(o *awss3.Options) {
		o.BaseEndpoint = aws.String(cfg.Endpoint)
		o.UsePathStyle = true
	})
	_, err = client.CreateBucket(ctx, &awss3.CreateBucketInput{Bucket: aws.String(bucket)})
	require.NoError(t, err)
}
