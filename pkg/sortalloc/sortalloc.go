// Package sortalloc hands out sort positions for newly created records.
//
// Positions come from a running counter owned by the Allocator, raised to
// one past the largest sort already in the store. The counter lives only in
// memory and is not shared between processes, so two processes writing to
// the same store can hand out the same value. Run a single writer process.
package sortalloc

import (
	"context"
	"fmt"
	"sync"
)

// MaxSortReader looks up the largest persisted sort. ok is false for an
// empty store.
type MaxSortReader interface {
	GetMaxSort(ctx context.Context) (max int64, ok bool, err error)
}

type MaxSortReaderFunc func(ctx context.Context) (int64, bool, error)

func (f MaxSortReaderFunc) GetMaxSort(ctx context.Context) (int64, bool, error) {
	return f(ctx)
}

type Allocator struct {
	mu      sync.Mutex
	current int64
	store   MaxSortReader
}

func New(store MaxSortReader) *Allocator {
	return &Allocator{store: store}
}

// NextSort returns a value strictly greater than every value returned before
// and every sort currently stored. The store lookup happens under the same
// lock as the counter update, so concurrent callers never share a value.
// A failed lookup leaves the counter as it was.
func (a *Allocator) NextSort(ctx context.Context) (int64, error) {
	a.mu.Lock()
	defer a.mu.Unlock()

	next := a.current + 1

	stored, ok, err := a.store.GetMaxSort(ctx)
	if err != nil {
		return 0, fmt.Errorf("read max sort: %w", err)
	}
	if ok && stored+1 > next {
		next = stored + 1
	}

	a.current = next
	return next, nil
}

func (a *Allocator) Current() int64 {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.current
}

// Reset puts the counter back to zero.
func (a *Allocator) Reset() {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.current = 0
}
