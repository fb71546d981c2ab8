// Package s3 wraps the AWS SDK v2 client for the file layer's
// object-store backend, with a small registry of S3-compatible provider
// quirks (endpoint templates, path-style addressing).
package s3

import (
	"fmt"
	"strings"
)

// ProviderConfig captures how to address one S3-compatible provider.
type ProviderConfig struct {
	Name             string
	DefaultEndpoint  string
	DefaultRegion    string
	EndpointTemplate string // expanded with the region when set
	ForcePathStyle   bool
}

// knownProviders registers the providers the file layer's s3:// handler
// has been used against. ResolveProvider rejects any other provider name,
// whether or not an endpoint is configured.
var knownProviders = map[string]ProviderConfig{
	"aws": {
		Name:            "AWS S3",
		DefaultEndpoint: "", // the SDK resolves regional endpoints itself
		DefaultRegion:   "us-east-1",
	},
	"minio": {
		Name:            "MinIO",
		DefaultEndpoint: "http://localhost:9000",
		DefaultRegion:   "us-east-1",
		ForcePathStyle:  true,
	},
	"garage": {
		Name:            "Garage",
		DefaultEndpoint: "http://localhost:3900",
		DefaultRegion:   "garage",
		ForcePathStyle:  true,
	},
	"wasabi": {
		Name:             "Wasabi",
		DefaultEndpoint:  "https://s3.wasabisys.com",
		DefaultRegion:    "us-east-1",
		EndpointTemplate: "https://s3.%s.wasabisys.com",
	},
	"digitalocean": {
		Name:             "DigitalOcean Spaces",
		DefaultEndpoint:  "https://nyc3.digitaloceanspaces.com",
		DefaultRegion:    "nyc3",
		EndpointTemplate: "https://%s.digitaloceanspaces.com",
	},
	"backblaze": {
		Name:             "Backblaze B2",
		DefaultEndpoint:  "https://s3.us-west-000.backblazeb2.com",
		DefaultRegion:    "us-west-000",
		EndpointTemplate: "https://s3.%s.backblazeb2.com",
		ForcePathStyle:   true,
	},
}

// ResolveProvider returns the provider entry for name (case-insensitive)
// or an error listing what is known.
func ResolveProvider(name string) (ProviderConfig, error) {
	if p, ok := knownProviders[strings.ToLower(name)]; ok {
		return p, nil
	}
	names := make([]string, 0, len(knownProviders))
	for n := range knownProviders {
		names = append(names, n)
	}
	return ProviderConfig{}, fmt.Errorf("unknown provider %q (known: %s)", name, strings.Join(names, ", "))
}

// EndpointFor resolves the endpoint to use for a provider and region: an
// explicit endpoint wins, then the provider's region template, then its
// default. Empty means the SDK's own resolution (AWS).
func EndpointFor(p ProviderConfig, explicitEndpoint, region string) string {
	if explicitEndpoint != "" {
		return explicitEndpoint
	}
	if p.EndpointTemplate != "" && region != "" {
		return fmt.Sprintf(p.EndpointTemplate, region)
	}
	return p.DefaultEndpoint
}
