// Package vchunked implements a chunked array that can spill chunks it
// isn't actively using to a temporary file, grounded on the source's
// udVirtualChunkedArray: a monotonically increasing currentReference
// counter is bumped whenever a chunk is touched and isn't already the most
// recently used, and eviction always picks the chunk with the largest gap
// between currentReference and its own lastReference, the one that's sat
// idle longest.
package vchunked

import (
	"bytes"
	"context"
	"encoding/gob"
	"os"
	"sync"

	"github.com/kenchrcum/udcore-go/result"
)

// defaultMaxChunksInMem mirrors the source's default maxChunksInMem of 8:
// few enough that large datasets don't exhaust memory, large enough that
// sequential access doesn't thrash the spill file.
const defaultMaxChunksInMem = 8

type chunkInfo struct {
	fileOffset    int64 // -1 until first spilled
	length        int64
	lastReference uint64
}

// Array is a chunked array whose chunks may be resident in memory or
// spilled to a backing file, transparently paged back in on access.
type Array[T any] struct {
	mu sync.Mutex

	chunkElementCount int
	maxChunksInMem    int
	length            int

	mem     map[int][]T
	info    []chunkInfo
	file    *os.File
	fileEnd int64
	l2      *L2Cache[T]

	currentReference uint64
	residentCount    int
}

// Init creates a virtual chunked array backed by a temp file at path.
// If path is empty, a temp file is created automatically.
func Init[T any](chunkElementCount int, path string, maxChunksInMem int) (*Array[T], error) {
	if maxChunksInMem <= 0 {
		maxChunksInMem = defaultMaxChunksInMem
	}
	var f *os.File
	var err error
	if path == "" {
		f, err = os.CreateTemp("", "vchunked-*.bin")
	} else {
		f, err = os.Create(path)
	}
	if err != nil {
		return nil, result.Wrap(result.OpenFailure, err)
	}

	return &Array[T]{
		chunkElementCount: chunkElementCount,
		maxChunksInMem:    maxChunksInMem,
		mem:               make(map[int][]T),
		file:              f,
	}, nil
}

// Close releases the backing temp file.
func (a *Array[T]) Close() error {
	a.mu.Lock()
	defer a.mu.Unlock()
	name := a.file.Name()
	err := a.file.Close()
	os.Remove(name)
	if err != nil {
		return result.Wrap(result.CloseFailure, err)
	}
	return nil
}

// Len returns the logical element count.
func (a *Array[T]) Len() int {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.length
}

func (a *Array[T]) chunkFor(index int) int { return index / a.chunkElementCount }

func (a *Array[T]) ensureChunkCount(upTo int) {
	for len(a.info) <= upTo {
		a.info = append(a.info, chunkInfo{fileOffset: -1})
	}
}

// touch bumps the access clock and the chunk's lastReference, but only
// when the chunk isn't already the most recently used one, matching the
// source's "only advance if not already latest" rule.
func (a *Array[T]) touch(chunkIdx int) {
	if a.currentReference != 0 && a.info[chunkIdx].lastReference == a.currentReference {
		return
	}
	a.currentReference++
	a.info[chunkIdx].lastReference = a.currentReference
}

// evictIfNeeded runs the eviction policy after an access: while more than
// maxChunksInMem chunks are resident, spill the one that's been idle
// longest, but never a chunk whose idle gap is below maxChunksInMem, so
// recently-touched chunks stay put.
func (a *Array[T]) evictIfNeeded() error {
	for a.residentCount > a.maxChunksInMem {
		evicted, err := a.evictOne()
		if err != nil {
			return err
		}
		if !evicted {
			break
		}
	}
	return nil
}

// UseL2Cache attaches a shared cache tier consulted before the spill
// file on page-in and populated on every spill.
func (a *Array[T]) UseL2Cache(c *L2Cache[T]) {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.l2 = c
}

func (a *Array[T]) ensureResident(chunkIdx int) error {
	if _, ok := a.mem[chunkIdx]; ok {
		return nil
	}

	chunk := make([]T, a.chunkElementCount)
	ci := a.info[chunkIdx]
	if ci.fileOffset >= 0 {
		loaded := false
		if a.l2 != nil {
			if cached, ok := a.l2.Get(context.Background(), chunkIdx); ok && len(cached) == a.chunkElementCount {
				chunk = cached
				loaded = true
			}
		}
		if !loaded {
			buf := make([]byte, ci.length)
			if _, err := a.file.ReadAt(buf, ci.fileOffset); err != nil {
				return result.Wrap(result.ReadFailure, err)
			}
			dec := gob.NewDecoder(bytes.NewReader(buf))
			if err := dec.Decode(&chunk); err != nil {
				return result.Wrap(result.CorruptData, err)
			}
		}
	}
	a.mem[chunkIdx] = chunk
	a.residentCount++
	return nil
}

// evictOne selects the resident chunk with the largest
// (currentReference - lastReference) gap and spills it to the backing
// file, freeing its memory slot. It reports whether anything was evicted;
// chunks with a gap below maxChunksInMem are never candidates.
func (a *Array[T]) evictOne() (bool, error) {
	var target = -1
	var worstGap uint64
	for idx := range a.mem {
		gap := a.currentReference - a.info[idx].lastReference
		if target == -1 || gap > worstGap {
			target = idx
			worstGap = gap
		}
	}
	if target == -1 || worstGap < uint64(a.maxChunksInMem) {
		return false, nil
	}

	chunk := a.mem[target]
	var buf bytes.Buffer
	if err := gob.NewEncoder(&buf).Encode(chunk); err != nil {
		return false, result.Wrap(result.CorruptData, err)
	}

	ci := &a.info[target]
	if ci.fileOffset < 0 {
		// Write-once: a chunk is assigned its file offset the first
		// time it's spilled, and the file only ever grows by append.
		ci.fileOffset = a.fileEnd
		ci.length = int64(buf.Len())
		a.fileEnd += ci.length
		if _, err := a.file.WriteAt(buf.Bytes(), ci.fileOffset); err != nil {
			return false, result.Wrap(result.WriteFailure, err)
		}
	} else if int64(buf.Len()) <= ci.length {
		if _, err := a.file.WriteAt(buf.Bytes(), ci.fileOffset); err != nil {
			return false, result.Wrap(result.WriteFailure, err)
		}
	} else {
		// Grown since last spill: re-append and keep the old region
		// wasted, matching the source's append-only spill semantics.
		ci.fileOffset = a.fileEnd
		ci.length = int64(buf.Len())
		a.fileEnd += ci.length
		if _, err := a.file.WriteAt(buf.Bytes(), ci.fileOffset); err != nil {
			return false, result.Wrap(result.WriteFailure, err)
		}
	}

	if a.l2 != nil {
		a.l2.Put(context.Background(), target, chunk)
	}

	delete(a.mem, target)
	a.residentCount--
	return true, nil
}

// GetElement returns the element at index, paging its chunk back into
// memory if necessary.
func (a *Array[T]) GetElement(index int) (T, error) {
	a.mu.Lock()
	defer a.mu.Unlock()

	var zero T
	if index < 0 || index >= a.length {
		return zero, result.New(result.OutOfRange)
	}
	chunkIdx := a.chunkFor(index)
	if err := a.ensureResident(chunkIdx); err != nil {
		return zero, err
	}
	a.touch(chunkIdx)
	v := a.mem[chunkIdx][index%a.chunkElementCount]
	if err := a.evictIfNeeded(); err != nil {
		return zero, err
	}
	return v, nil
}

// SetElement overwrites the element at index.
func (a *Array[T]) SetElement(index int, v T) error {
	a.mu.Lock()
	defer a.mu.Unlock()

	if index < 0 || index >= a.length {
		return result.New(result.OutOfRange)
	}
	chunkIdx := a.chunkFor(index)
	if err := a.ensureResident(chunkIdx); err != nil {
		return err
	}
	a.touch(chunkIdx)
	a.mem[chunkIdx][index%a.chunkElementCount] = v
	return a.evictIfNeeded()
}

// PushBack appends v, growing the chunk table if necessary.
func (a *Array[T]) PushBack(v T) error {
	a.mu.Lock()
	defer a.mu.Unlock()

	chunkIdx := a.length / a.chunkElementCount
	a.ensureChunkCount(chunkIdx)
	if err := a.ensureResident(chunkIdx); err != nil {
		return err
	}
	a.touch(chunkIdx)
	a.mem[chunkIdx][a.length%a.chunkElementCount] = v
	a.length++
	return a.evictIfNeeded()
}

// PopBack removes and returns the last element. When the pop empties its
// chunk entirely, the chunk's slot is released; eviction is otherwise
// unaware of pops.
func (a *Array[T]) PopBack() (T, error) {
	a.mu.Lock()
	defer a.mu.Unlock()

	var zero T
	if a.length == 0 {
		return zero, result.New(result.NotFound)
	}
	index := a.length - 1
	chunkIdx := a.chunkFor(index)
	if err := a.ensureResident(chunkIdx); err != nil {
		return zero, err
	}
	a.touch(chunkIdx)
	v := a.mem[chunkIdx][index%a.chunkElementCount]
	a.length--

	if a.length%a.chunkElementCount == 0 {
		// The popped element was its chunk's first: the chunk is gone.
		if _, ok := a.mem[chunkIdx]; ok {
			delete(a.mem, chunkIdx)
			a.residentCount--
		}
		a.info = a.info[:chunkIdx]
	}
	return v, nil
}

// IsElementInMemory reports whether index's chunk is currently resident,
// without affecting LRU order, a test/inspection helper matching the
// source's same-named debug function.
func (a *Array[T]) IsElementInMemory(index int) bool {
	a.mu.Lock()
	defer a.mu.Unlock()
	_, ok := a.mem[a.chunkFor(index)]
	return ok
}
