package handlers

import (
	"bytes"
	"context"
	"io"
	"strings"

	"github.com/kenchrcum/udcore-go/internal/config"
	"github.com/kenchrcum/udcore-go/internal/s3"
	"github.com/kenchrcum/udcore-go/result"
	"github.com/kenchrcum/udcore-go/vfile"
)

// S3 serves "s3://<bucket>/<key>" paths against an S3-compatible object
// store through the internal client, which resolves provider endpoint
// and addressing quirks from the backend configuration.
type S3 struct {
	client s3.Client
}

// NewS3Handler builds an S3 handler from cfg.
func NewS3Handler(ctx context.Context, cfg *config.BackendConfig) (*S3, error) {
	client, err := s3.NewClient(ctx, cfg)
	if err != nil {
		return nil, result.Wrap(result.OpenFailure, err)
	}
	return &S3{client: client}, nil
}

func (h *S3) Open(ctx context.Context, subPath string, flags vfile.OpenFlags) (vfile.Backend, error) {
	bucket, key, ok := strings.Cut(subPath, "/")
	if !ok || bucket == "" || key == "" {
		return nil, result.New(result.InvalidParameter)
	}
	return &s3Backend{
		client:   h.client,
		bucket:   bucket,
		key:      key,
		writable: flags&vfile.FlagWrite != 0,
	}, nil
}

type s3Backend struct {
	client   s3.Client
	bucket   string
	key      string
	writable bool
	buf      []byte // accumulated on Write, flushed on Close
}

func (b *s3Backend) ReadAt(ctx context.Context, p []byte, off int64) (int, error) {
	body, err := b.client.GetRange(ctx, b.bucket, b.key, off, int64(len(p)))
	if err != nil {
		return 0, err
	}
	defer body.Close()
	return io.ReadFull(body, p)
}

func (b *s3Backend) WriteAt(ctx context.Context, p []byte, off int64) (int, error) {
	if !b.writable {
		return 0, result.New(result.NotAllowed)
	}
	needed := int(off) + len(p)
	if needed > len(b.buf) {
		grown := make([]byte, needed)
		copy(grown, b.buf)
		b.buf = grown
	}
	copy(b.buf[off:], p)
	return len(p), nil
}

func (b *s3Backend) Size(ctx context.Context) (int64, error) {
	return b.client.Size(ctx, b.bucket, b.key)
}

func (b *s3Backend) Close(ctx context.Context) error {
	if !b.writable || b.buf == nil {
		return nil
	}
	return b.client.Put(ctx, b.bucket, b.key, bytes.NewReader(b.buf))
}
