package vfile_test

import (
	"archive/zip"
	"bytes"
	"compress/flate"
	"compress/gzip"
	"context"
	"crypto/rand"
	"encoding/base64"
	"fmt"
	"os"
	"path/filepath"
	"testing"

	"github.com/kenchrcum/udcore-go/result"
	"github.com/kenchrcum/udcore-go/vfile"
	"github.com/kenchrcum/udcore-go/vfile/handlers"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMain(m *testing.M) {
	vfile.RegisterHandler("", handlers.Local{}, true)
	vfile.RegisterHandler("raw://*", handlers.Raw{}, true)
	os.Exit(m.Run())
}

func TestLocalRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "data.bin")
	require.NoError(t, vfile.Save(context.Background(), path, []byte("hello world")))

	data, err := vfile.Load(context.Background(), path)
	require.NoError(t, err)
	assert.Equal(t, "hello world", string(data))
}

func TestRawRoundTrip(t *testing.T) {
	path, err := handlers.GenerateRawFilename([]byte("inline payload"), false)
	require.NoError(t, err)

	data, err := vfile.Load(context.Background(), path)
	require.NoError(t, err)
	assert.Equal(t, "inline payload", string(data))
}

func TestRawCompressedRoundTrip(t *testing.T) {
	payload := []byte("compress me please, repeated repeated repeated")
	path, err := handlers.GenerateRawFilename(payload, true)
	require.NoError(t, err)

	data, err := vfile.Load(context.Background(), path)
	require.NoError(t, err)
	assert.Equal(t, payload, data)
}

func TestRawCompressionVariants(t *testing.T) {
	payload := []byte("payload shared by every compression container")

	var flateBuf bytes.Buffer
	fw, err := flate.NewWriter(&flateBuf, flate.DefaultCompression)
	require.NoError(t, err)
	fw.Write(payload)
	fw.Close()

	var gzipBuf bytes.Buffer
	gw := gzip.NewWriter(&gzipBuf)
	gw.Write(payload)
	gw.Close()

	cases := map[string]string{
		"RawDeflate":  base64.StdEncoding.EncodeToString(flateBuf.Bytes()),
		"GzipDeflate": base64.StdEncoding.EncodeToString(gzipBuf.Bytes()),
	}
	for compression, encoded := range cases {
		path := fmt.Sprintf("raw://compression=%s,size=%d,filename=orig.bin@%s", compression, len(payload), encoded)
		data, err := vfile.Load(context.Background(), path)
		require.NoError(t, err, compression)
		assert.Equal(t, payload, data, compression)
	}

	_, err = vfile.Load(context.Background(),
		fmt.Sprintf("raw://compression=Lzma,size=%d@%s", len(payload), cases["GzipDeflate"]))
	assert.True(t, result.Is(err, result.FormatVariationNotSupported))
}

func TestZipSubFile(t *testing.T) {
	dir := t.TempDir()
	zipPath := filepath.Join(dir, "bundle.zip")

	var buf bytes.Buffer
	zw := zip.NewWriter(&buf)
	member, err := zw.Create("tiles/0/0.bin")
	require.NoError(t, err)
	member.Write([]byte("tile zero payload"))
	member, err = zw.Create("manifest.txt")
	require.NoError(t, err)
	member.Write([]byte("two entries"))
	require.NoError(t, zw.Close())
	require.NoError(t, os.WriteFile(zipPath, buf.Bytes(), 0o644))

	require.NoError(t, vfile.RegisterHandler("zip://*", handlers.Zip{}, true))
	defer vfile.DeregisterHandler("zip://*")

	f, err := vfile.Open(context.Background(), "zip://"+zipPath, vfile.FlagRead)
	require.NoError(t, err)
	defer f.Close(context.Background())

	require.NoError(t, f.SetSubFilename(context.Background(), "tiles/0/0.bin"))
	assert.Equal(t, int64(len("tile zero payload")), f.Length())

	got := make([]byte, 4)
	_, err = f.Read(context.Background(), got, 5)
	require.NoError(t, err)
	assert.Equal(t, "zero", string(got))

	// Retargeting the same handle switches members and length.
	require.NoError(t, f.SetSubFilename(context.Background(), "manifest.txt"))
	assert.Equal(t, int64(len("two entries")), f.Length())

	err = f.SetSubFilename(context.Background(), "missing.bin")
	assert.True(t, result.Is(err, result.NotFound))
}

func TestSetSubFilenameUnsupportedOnPlainFiles(t *testing.T) {
	path := filepath.Join(t.TempDir(), "plain.bin")
	require.NoError(t, vfile.Save(context.Background(), path, []byte("x")))

	f, err := vfile.Open(context.Background(), path, vfile.FlagRead)
	require.NoError(t, err)
	defer f.Close(context.Background())

	err = f.SetSubFilename(context.Background(), "member")
	assert.True(t, result.Is(err, result.Unsupported))
}

func TestEncryptionRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "secret.bin")
	plaintext := []byte("the quick brown fox jumps over the lazy dog, thirty-two+ bytes")
	require.NoError(t, vfile.Save(context.Background(), path, plaintext))

	key := make([]byte, 16)
	_, err := rand.Read(key)
	require.NoError(t, err)

	// Encrypt by reading the plaintext through the CTR filter; writing that
	// back and reading it again with the same key and nonce undoes it.
	raw, err := os.ReadFile(path)
	require.NoError(t, err)

	f, err := vfile.Open(context.Background(), path, vfile.FlagRead)
	require.NoError(t, err)
	require.NoError(t, f.SetEncryption(key, 1234, 0))

	out := make([]byte, len(raw))
	n, err := f.Read(context.Background(), out, 0)
	require.NoError(t, err)
	require.Equal(t, len(raw), n)
	require.NoError(t, f.Close(context.Background()))

	assert.NotEqual(t, raw, out)

	require.NoError(t, os.WriteFile(path, out, 0o644))
	f, err = vfile.Open(context.Background(), path, vfile.FlagRead)
	require.NoError(t, err)
	require.NoError(t, f.SetEncryption(key, 1234, 0))
	back := make([]byte, len(out))
	_, err = f.Read(context.Background(), back, 0)
	require.NoError(t, err)
	require.NoError(t, f.Close(context.Background()))
	assert.Equal(t, plaintext, back)
}

func TestSetEncryptionRejectedOnWriteHandle(t *testing.T) {
	path := filepath.Join(t.TempDir(), "w.bin")
	f, err := vfile.Open(context.Background(), path, vfile.FlagWrite|vfile.FlagCreate)
	require.NoError(t, err)
	defer f.Close(context.Background())

	err = f.SetEncryption(make([]byte, 16), 0, 0)
	assert.True(t, result.Is(err, result.Unsupported))
}

func TestPipelinedReadsOutOfOrder(t *testing.T) {
	path := filepath.Join(t.TempDir(), "pipe.bin")
	require.NoError(t, vfile.Save(context.Background(), path, []byte("0123456789abcdef")))

	f, err := vfile.Open(context.Background(), path, vfile.FlagRead)
	require.NoError(t, err)
	defer f.Close(context.Background())

	b1 := make([]byte, 4)
	b2 := make([]byte, 4)
	r1 := f.ReadPipelined(context.Background(), b1, 0)
	r2 := f.ReadPipelined(context.Background(), b2, 4)

	_, err = f.BlockForPipelinedRequest(r2)
	assert.True(t, result.Is(err, result.OutOfOrder))

	n, err := f.BlockForPipelinedRequest(r1)
	require.NoError(t, err)
	assert.Equal(t, 4, n)
	assert.Equal(t, "0123", string(b1))
}

func TestUnknownPathFallsThroughToLocalAndFails(t *testing.T) {
	// No handler claims "nope://unknown" specifically, so it falls
	// through to the Local fallback registered under "", which fails to
	// open it as a filesystem path.
	_, err := vfile.Open(context.Background(), "nope://unknown", vfile.FlagRead)
	assert.True(t, result.Is(err, result.OpenFailure))
}

func TestDeregisterRemovesHandler(t *testing.T) {
	require.NoError(t, vfile.RegisterHandler("temp-prefix://*", handlers.Raw{}, true))
	require.NoError(t, vfile.DeregisterHandler("temp-prefix://*"))
	err := vfile.DeregisterHandler("temp-prefix://*")
	assert.True(t, result.Is(err, result.NotFound))
}
