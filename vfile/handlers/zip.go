package handlers

import (
	"archive/zip"
	"context"
	"io"

	"github.com/kenchrcum/udcore-go/result"
	"github.com/kenchrcum/udcore-go/vfile"
)

// Zip serves members of a zip archive under the "zip://" prefix. The
// handle initially addresses no member; callers select one with
// File.SetSubFilename, after which reads address that member's
// decompressed bytes. Read-only.
type Zip struct{}

func (Zip) Open(ctx context.Context, subPath string, flags vfile.OpenFlags) (vfile.Backend, error) {
	if flags&vfile.FlagWrite != 0 {
		return nil, result.New(result.Unsupported)
	}
	reader, err := zip.OpenReader(subPath)
	if err != nil {
		return nil, result.Wrap(result.OpenFailure, err)
	}
	return &zipBackend{reader: reader}, nil
}

type zipBackend struct {
	reader *zip.ReadCloser
	member []byte // decompressed selected member
}

// SetSubFilename selects the named archive member, inflating it into
// memory so reads can seek freely.
func (b *zipBackend) SetSubFilename(ctx context.Context, name string) (int64, error) {
	for _, f := range b.reader.File {
		if f.Name != name {
			continue
		}
		rc, err := f.Open()
		if err != nil {
			return 0, result.Wrap(result.ReadFailure, err)
		}
		defer rc.Close()
		data, err := io.ReadAll(rc)
		if err != nil {
			return 0, result.Wrap(result.CompressionError, err)
		}
		b.member = data
		return int64(len(data)), nil
	}
	return 0, result.New(result.NotFound)
}

func (b *zipBackend) ReadAt(ctx context.Context, p []byte, off int64) (int, error) {
	if b.member == nil {
		return 0, result.New(result.NothingToDo)
	}
	if off >= int64(len(b.member)) {
		return 0, io.EOF
	}
	return copy(p, b.member[off:]), nil
}

func (b *zipBackend) WriteAt(ctx context.Context, p []byte, off int64) (int, error) {
	return 0, result.New(result.Unsupported)
}

func (b *zipBackend) Size(ctx context.Context) (int64, error) {
	return int64(len(b.member)), nil
}

func (b *zipBackend) Close(ctx context.Context) error {
	return b.reader.Close()
}
