// Package vfile is the pluggable file I/O layer: callers open paths by
// prefix ("raw://", "s3://", or a bare filesystem path) through a single
// registry of handlers, grounded on the source's udFile/udFileHandler.
// Handlers only need to implement Open and return a Backend; the registry, CTR
// encryption overlay, pipelining bookkeeping and performance accounting
// are common to every handler and live here.
package vfile

import (
	"context"
	"strings"
	"sync"
	"time"

	"github.com/kenchrcum/udcore-go/result"
	glob "github.com/ryanuber/go-glob"
)

// OpenFlags mirrors udFileOpenFlags's bit flags.
type OpenFlags uint32

const (
	FlagRead OpenFlags = 1 << iota
	FlagWrite
	FlagCreate
	FlagMultithread
	FlagFastOpen
)

// SeekWhence mirrors udFileSeekWhence.
type SeekWhence int

const (
	SeekSet SeekWhence = iota
	SeekCur
	SeekEnd
)

// PipelinedRequest is an opaque token identifying an in-flight read issued
// via ReadPipelined; it must be resolved with BlockForPipelinedRequest in
// the order the reads were issued.
type PipelinedRequest struct {
	seq uint64
}

// Performance reports rolling throughput stats for a handle, matching
// udFilePerformance.
type Performance struct {
	TotalBytes       uint64
	MBPerSec         float64
	RequestsInFlight uint32
}

// Handler is implemented by a registered backend (local disk, raw literal,
// S3-compatible object store, ...). A handler that doesn't support writes
// returns Unsupported from Open when asked for write flags.
type Handler interface {
	// Open opens subPath (the portion of the path after the matched
	// prefix) under the given flags and returns a backend implementation.
	Open(ctx context.Context, subPath string, flags OpenFlags) (Backend, error)
}

// SubFileBackend is implemented by archive-style backends whose handle
// can be retargeted at a named member after open. SetSubFilename returns
// the member's length.
type SubFileBackend interface {
	SetSubFilename(ctx context.Context, name string) (int64, error)
}

// Backend is the per-open-file implementation a Handler returns.
type Backend interface {
	// ReadAt reads len(p) bytes starting at off and returns the count read.
	// File.ReadPipelined calls it when the pipelined request is resolved.
	ReadAt(ctx context.Context, p []byte, off int64) (n int, err error)
	WriteAt(ctx context.Context, p []byte, off int64) (n int, err error)
	Size(ctx context.Context) (int64, error)
	Close(ctx context.Context) error
}

type registration struct {
	prefix  string
	handler Handler
}

var (
	registryMu sync.RWMutex
	registry   []registration
)

// RegisterHandler associates prefix (a plain string or a glob pattern,
// e.g. "s3://*") with handler. If overrideExisting is false and prefix is
// already registered, CalledMoreThanOnce is returned.
func RegisterHandler(prefix string, handler Handler, overrideExisting bool) error {
	registryMu.Lock()
	defer registryMu.Unlock()

	for i, r := range registry {
		if r.prefix == prefix {
			if !overrideExisting {
				return result.New(result.CalledMoreThanOnce)
			}
			registry[i].handler = handler
			return nil
		}
	}
	registry = append(registry, registration{prefix: prefix, handler: handler})
	return nil
}

// DeregisterHandler removes prefix's registration. Handles already open
// through it continue to work until closed.
func DeregisterHandler(prefix string) error {
	registryMu.Lock()
	defer registryMu.Unlock()

	for i, r := range registry {
		if r.prefix == prefix {
			registry = append(registry[:i], registry[i+1:]...)
			return nil
		}
	}
	return result.New(result.NotFound)
}

func lookup(path string) (Handler, string, error) {
	registryMu.RLock()
	defer registryMu.RUnlock()

	var best registration
	bestLen := -1
	for _, r := range registry {
		pattern := r.prefix
		if !strings.HasSuffix(pattern, "*") {
			pattern += "*"
		}
		if !glob.Glob(pattern, path) {
			continue
		}
		if len(r.prefix) > bestLen {
			best = r
			bestLen = len(r.prefix)
		}
	}
	if bestLen == -1 {
		return nil, "", result.New(result.OpenFailure)
	}
	sub := strings.TrimPrefix(path, strings.TrimSuffix(best.prefix, "*"))
	return best.handler, sub, nil
}

// File is an open handle returned by Open, wrapping a Backend with the
// encryption overlay, pipelining sequence counter and performance
// accounting common to every handler.
type File struct {
	mu       sync.Mutex
	backend  Backend
	flags    OpenFlags
	seekBase int64
	filePos  int64

	cipher *ctrCipher

	fileLength int64

	nextSeq   uint64
	inFlight  map[uint64]func() (int, error)
	lastDone  uint64
	totalByte uint64
	start     time.Time
}

// Open resolves path's handler by prefix and opens it.
func Open(ctx context.Context, path string, flags OpenFlags) (*File, error) {
	h, sub, err := lookup(path)
	if err != nil {
		return nil, err
	}
	backend, err := h.Open(ctx, sub, flags)
	if err != nil {
		return nil, result.Wrap(result.OpenFailure, err)
	}
	f := &File{
		backend:  backend,
		flags:    flags,
		inFlight: make(map[uint64]func() (int, error)),
		start:    time.Now(),
	}
	if length, err := backend.Size(ctx); err == nil {
		f.fileLength = length
	}
	return f, nil
}

// Load opens path, reads it in full, and closes it.
func Load(ctx context.Context, path string) ([]byte, error) {
	f, err := Open(ctx, path, FlagRead)
	if err != nil {
		return nil, err
	}
	defer f.Close(ctx)

	size, err := f.backend.Size(ctx)
	if err != nil {
		return nil, result.Wrap(result.ReadFailure, err)
	}
	buf := make([]byte, size)
	if _, err := f.Read(ctx, buf, 0); err != nil {
		return nil, err
	}
	return buf, nil
}

// Save opens path for writing (creating it if necessary) and writes data
// in full.
func Save(ctx context.Context, path string, data []byte) error {
	f, err := Open(ctx, path, FlagWrite|FlagCreate)
	if err != nil {
		return err
	}
	defer f.Close(ctx)
	_, err = f.Write(ctx, data, 0)
	return err
}

// SetSubFilename retargets an archive-style handle at the named member;
// subsequent reads address that member and Length reflects its size.
// Backends without archive support return Unsupported.
func (f *File) SetSubFilename(ctx context.Context, name string) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	sf, ok := f.backend.(SubFileBackend)
	if !ok {
		return result.New(result.Unsupported)
	}
	length, err := sf.SetSubFilename(ctx, name)
	if err != nil {
		return err
	}
	f.fileLength = length
	return nil
}

// Length reports the handle's current logical length: the file's size,
// or the selected archive member's.
func (f *File) Length() int64 {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.fileLength
}

// SetSeekBase establishes an offset added to every subsequent seek/read/
// write position, letting a caller address a logical sub-range of a
// larger physical file.
func (f *File) SetSeekBase(base int64) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.seekBase = base
}

// SetEncryption installs a CTR-mode stream cipher overlay, keyed by key
// with the given nonce and counter offset. It's only supported on
// read-mode handles; write-mode handles return Unsupported, matching this
// module's resolution of the corresponding open question.
func (f *File) SetEncryption(key []byte, nonce, counterOffset int64) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	if f.flags&FlagWrite != 0 {
		return result.New(result.Unsupported)
	}
	if err := runCipherSelfTest(); err != nil {
		return result.Wrap(result.InternalCryptoError, err)
	}
	c, err := newCTRCipher(key, nonce, counterOffset)
	if err != nil {
		return err
	}
	f.cipher = c
	return nil
}

// Read reads len(p) bytes at seekOffset (relative to SetSeekBase),
// decrypting in place if encryption has been configured.
func (f *File) Read(ctx context.Context, p []byte, seekOffset int64) (int, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	off := f.seekBase + seekOffset
	n, err := f.backend.ReadAt(ctx, p, off)
	if err != nil {
		return n, result.Wrap(result.ReadFailure, err)
	}
	if f.cipher != nil {
		f.cipher.XORKeyStreamAt(p[:n], off)
	}
	f.totalByte += uint64(n)
	return n, nil
}

// Write writes len(p) bytes at seekOffset.
func (f *File) Write(ctx context.Context, p []byte, seekOffset int64) (int, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	if f.flags&FlagWrite == 0 {
		return 0, result.New(result.NotAllowed)
	}
	off := f.seekBase + seekOffset
	n, err := f.backend.WriteAt(ctx, p, off)
	if err != nil {
		return n, result.Wrap(result.WriteFailure, err)
	}
	f.totalByte += uint64(n)
	return n, nil
}

// ReadPipelined issues a read without blocking for its completion; the
// caller must resolve it with BlockForPipelinedRequest, and pipelined
// requests must be resolved in the order they were issued or OutOfOrder
// is returned.
func (f *File) ReadPipelined(ctx context.Context, p []byte, seekOffset int64) PipelinedRequest {
	f.mu.Lock()
	seq := f.nextSeq
	f.nextSeq++
	off := f.seekBase + seekOffset
	f.inFlight[seq] = func() (int, error) {
		n, err := f.backend.ReadAt(ctx, p, off)
		if err == nil && f.cipher != nil {
			f.cipher.XORKeyStreamAt(p[:n], off)
		}
		return n, err
	}
	f.mu.Unlock()
	return PipelinedRequest{seq: seq}
}

// BlockForPipelinedRequest waits for req to complete and returns its byte
// count. Requests must be resolved strictly in issue order.
func (f *File) BlockForPipelinedRequest(req PipelinedRequest) (int, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	if req.seq != f.lastDone {
		return 0, result.New(result.OutOfOrder)
	}
	fn, ok := f.inFlight[req.seq]
	if !ok {
		return 0, result.New(result.NotFound)
	}
	delete(f.inFlight, req.seq)
	f.lastDone++

	n, err := fn()
	if err != nil {
		return n, result.Wrap(result.ReadFailure, err)
	}
	f.totalByte += uint64(n)
	return n, nil
}

// GetPerformance reports rolling throughput for this handle.
func (f *File) GetPerformance() Performance {
	f.mu.Lock()
	defer f.mu.Unlock()

	elapsed := time.Since(f.start).Seconds()
	var mbps float64
	if elapsed > 0 {
		mbps = (float64(f.totalByte) / (1024 * 1024)) / elapsed
	}
	return Performance{
		TotalBytes:       f.totalByte,
		MBPerSec:         mbps,
		RequestsInFlight: uint32(len(f.inFlight)),
	}
}

// Close releases the underlying backend.
func (f *File) Close(ctx context.Context) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if err := f.backend.Close(ctx); err != nil {
		return result.Wrap(result.CloseFailure, err)
	}
	return nil
}
