package s3

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResolveProvider(t *testing.T) {
	p, err := ResolveProvider("minio")
	require.NoError(t, err)
	assert.True(t, p.ForcePathStyle)
	assert.Equal(t, "http://localhost:9000", p.DefaultEndpoint)

	p, err = ResolveProvider("AWS") // case-insensitive
	require.NoError(t, err)
	assert.Equal(t, "AWS S3", p.Name)

	_, err = ResolveProvider("dropbox")
	assert.Error(t, err)
}

func TestEndpointFor(t *testing.T) {
	wasabi, err := ResolveProvider("wasabi")
	require.NoError(t, err)

	// An explicit endpoint always wins.
	assert.Equal(t, "https://example.test:9000",
		EndpointFor(wasabi, "https://example.test:9000", "eu-central-1"))

	// Otherwise the region template applies.
	assert.Equal(t, "https://s3.eu-central-1.wasabisys.com",
		EndpointFor(wasabi, "", "eu-central-1"))

	// AWS resolves endpoints through the SDK.
	aws, err := ResolveProvider("aws")
	require.NoError(t, err)
	assert.Equal(t, "", EndpointFor(aws, "", "us-east-1"))
}
