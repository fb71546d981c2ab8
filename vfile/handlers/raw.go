package handlers

import (
	"bytes"
	"compress/flate"
	"compress/gzip"
	"compress/zlib"
	"context"
	"encoding/base64"
	"io"
	"strconv"
	"strings"

	"github.com/kenchrcum/udcore-go/result"
	"github.com/kenchrcum/udcore-go/vfile"
)

// Raw serves literal, in-memory data embedded directly in the path under
// the "raw://" prefix, matching udFile's documented raw:// formats:
//
//	raw://<base64>
//	raw://compression=<type>,size=<decompressedSize>@<base64>
//	raw://compression=<type>,size=<decompressedSize>,filename=<orig>@<base64>
//
// where <type> is RawDeflate, ZlibDeflate or GzipDeflate. The optional
// filename preserves the original name as a hint for format sniffers.
// Open always decodes the full payload up front since there's no
// underlying stream to seek within.
type Raw struct{}

func (Raw) Open(ctx context.Context, subPath string, flags vfile.OpenFlags) (vfile.Backend, error) {
	if flags&vfile.FlagWrite != 0 {
		return nil, result.New(result.Unsupported)
	}

	payload := subPath
	compression := ""
	filename := ""
	decompressedSize := -1
	if strings.HasPrefix(payload, "compression=") {
		parts := strings.SplitN(payload, "@", 2)
		if len(parts) != 2 {
			return nil, result.New(result.ParseError)
		}
		header, encoded := parts[0], parts[1]
		payload = encoded

		for _, kv := range strings.Split(header, ",") {
			kvParts := strings.SplitN(kv, "=", 2)
			if len(kvParts) != 2 {
				continue
			}
			switch kvParts[0] {
			case "compression":
				compression = kvParts[1]
			case "size":
				n, err := strconv.Atoi(kvParts[1])
				if err != nil {
					return nil, result.Wrap(result.ParseError, err)
				}
				decompressedSize = n
			case "filename":
				filename = kvParts[1]
			}
		}
	}

	raw, err := base64.StdEncoding.DecodeString(payload)
	if err != nil {
		return nil, result.Wrap(result.ParseError, err)
	}

	if compression != "" {
		if decompressedSize < 0 {
			return nil, result.New(result.ParseError)
		}
		var reader io.ReadCloser
		switch compression {
		case "RawDeflate":
			reader = flate.NewReader(bytes.NewReader(raw))
		case "ZlibDeflate":
			reader, err = zlib.NewReader(bytes.NewReader(raw))
		case "GzipDeflate":
			reader, err = gzip.NewReader(bytes.NewReader(raw))
		default:
			return nil, result.New(result.FormatVariationNotSupported)
		}
		if err != nil {
			return nil, result.Wrap(result.CompressionError, err)
		}
		defer reader.Close()
		out := make([]byte, decompressedSize)
		if _, err := io.ReadFull(reader, out); err != nil {
			return nil, result.Wrap(result.CompressionError, err)
		}
		raw = out
	}

	return &rawBackend{data: raw, filename: filename}, nil
}

// GenerateRawFilename builds a "raw://" path encoding data, optionally
// compressing it first, matching udFile_GenerateRawFilename.
func GenerateRawFilename(data []byte, compress bool) (string, error) {
	if !compress {
		return "raw://" + base64.StdEncoding.EncodeToString(data), nil
	}

	var buf bytes.Buffer
	zw := zlib.NewWriter(&buf)
	if _, err := zw.Write(data); err != nil {
		return "", result.Wrap(result.CompressionError, err)
	}
	if err := zw.Close(); err != nil {
		return "", result.Wrap(result.CompressionError, err)
	}

	encoded := base64.StdEncoding.EncodeToString(buf.Bytes())
	return "raw://compression=ZlibDeflate,size=" + strconv.Itoa(len(data)) + "@" + encoded, nil
}

type rawBackend struct {
	data     []byte
	filename string
}

func (b *rawBackend) ReadAt(ctx context.Context, p []byte, off int64) (int, error) {
	if off >= int64(len(b.data)) {
		return 0, io.EOF
	}
	n := copy(p, b.data[off:])
	return n, nil
}

func (b *rawBackend) WriteAt(ctx context.Context, p []byte, off int64) (int, error) {
	return 0, result.New(result.Unsupported)
}

func (b *rawBackend) Size(ctx context.Context) (int64, error) {
	return int64(len(b.data)), nil
}

func (b *rawBackend) Close(ctx context.Context) error { return nil }
