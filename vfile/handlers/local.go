// Package handlers provides the built-in vfile.Handler implementations:
// the local filesystem, an in-memory "raw://" literal, a "zip://" archive
// with sub-file selection, and an S3-compatible object store backend.
package handlers

import (
	"context"
	"os"

	"github.com/kenchrcum/udcore-go/result"
	"github.com/kenchrcum/udcore-go/vfile"
)

// Local serves paths directly off the local filesystem. It's registered
// under the empty prefix so any path without another handler's prefix
// falls through to it, matching the source's default (unprefixed) file
// handler.
type Local struct{}

func (Local) Open(ctx context.Context, subPath string, flags vfile.OpenFlags) (vfile.Backend, error) {
	var flag int
	switch {
	case flags&vfile.FlagWrite != 0 && flags&vfile.FlagCreate != 0:
		flag = os.O_RDWR | os.O_CREATE
	case flags&vfile.FlagWrite != 0:
		flag = os.O_RDWR
	default:
		flag = os.O_RDONLY
	}

	f, err := os.OpenFile(subPath, flag, 0o644)
	if err != nil {
		return nil, result.Wrap(result.OpenFailure, err)
	}
	return &localBackend{f: f}, nil
}

type localBackend struct {
	f *os.File
}

func (b *localBackend) ReadAt(ctx context.Context, p []byte, off int64) (int, error) {
	n, err := b.f.ReadAt(p, off)
	if err != nil {
		return n, err
	}
	return n, nil
}

func (b *localBackend) WriteAt(ctx context.Context, p []byte, off int64) (int, error) {
	return b.f.WriteAt(p, off)
}

func (b *localBackend) Size(ctx context.Context) (int64, error) {
	info, err := b.f.Stat()
	if err != nil {
		return 0, err
	}
	return info.Size(), nil
}

func (b *localBackend) Close(ctx context.Context) error {
	return b.f.Close()
}
