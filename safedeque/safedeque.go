// Package safedeque wraps a chunked.Array in a mutex so it can be shared
// across goroutines, grounded on the source's udSafeDeque<T>: a thin
// {chunkedArray, mutex} pair with non-blocking pops that return NotFound
// instead of blocking the caller.
package safedeque

import (
	"sync"

	"github.com/kenchrcum/udcore-go/chunked"
)

// Deque is a thread-safe FIFO/LIFO double-ended queue.
type Deque[T any] struct {
	mu sync.Mutex
	a  *chunked.Array[T]
}

// New creates an empty, thread-safe deque with the given chunk size,
// which must be a non-zero power of two.
func New[T any](chunkElementCount int) (*Deque[T], error) {
	a, err := chunked.New[T](chunkElementCount, 0)
	if err != nil {
		return nil, err
	}
	return &Deque[T]{a: a}, nil
}

// Len returns the current element count.
func (d *Deque[T]) Len() int {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.a.Len()
}

// PushBack appends v.
func (d *Deque[T]) PushBack(v T) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.a.PushBack(v)
}

// PushFront prepends v.
func (d *Deque[T]) PushFront(v T) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.a.PushFront(v)
}

// PopBack removes and returns the last element, or NotFound if empty.
func (d *Deque[T]) PopBack() (T, error) {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.a.PopBack()
}

// PopFront removes and returns the first element, or NotFound if empty.
func (d *Deque[T]) PopFront() (T, error) {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.a.PopFront()
}

// GetElement returns a copy of the element at index.
func (d *Deque[T]) GetElement(index int) (T, error) {
	d.mu.Lock()
	defer d.mu.Unlock()
	e, err := d.a.GetElement(index)
	if err != nil {
		var zero T
		return zero, err
	}
	return *e, nil
}

// Contains reports whether any element satisfies pred.
func (d *Deque[T]) Contains(pred func(T) bool) bool {
	d.mu.Lock()
	defer d.mu.Unlock()
	_, ok := d.a.FindIndex(pred)
	return ok
}

// SortSS sorts the deque's elements in place using selection sort, matching
// the source's udSafeDeque::SortSS (chosen there for its small, predictable
// working set rather than for asymptotic performance on the queue's
// typically short length).
func (d *Deque[T]) SortSS(less func(a, b T) bool) {
	d.mu.Lock()
	defer d.mu.Unlock()

	n := d.a.Len()
	for i := 0; i < n-1; i++ {
		minIdx := i
		minVal := d.a.At(i)
		for j := i + 1; j < n; j++ {
			v := d.a.At(j)
			if less(v, minVal) {
				minIdx = j
				minVal = v
			}
		}
		if minIdx != i {
			iv := d.a.At(i)
			d.a.SetElement(i, minVal)
			d.a.SetElement(minIdx, iv)
		}
	}
}
