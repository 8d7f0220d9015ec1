package client

import (
	"context"
	"sync"
)

// FetchFunc loads one page for the given parameters
type FetchFunc[T any] func(ctx context.Context, params ListParams) (*Page[T], error)

// ListPager serializes concurrent page loads for one collection.
// Every Load supersedes the ones before it: a response is applied
// only when its parameters still match the most recently requested
// ones, so a slow page 1 can never overwrite a fast page 2.
type ListPager[T any] struct {
	fetch FetchFunc[T]

	mu     sync.Mutex
	seq    uint64
	params ListParams
	page   *Page[T]
}

// NewListPager wraps fetch, typically a bound Client method such as
// ListUsers
func NewListPager[T any](fetch FetchFunc[T]) *ListPager[T] {
	return &ListPager[T]{fetch: fetch}
}

// Load fetches the page for params. If a newer Load was issued while
// this one was in flight, the result is discarded and stale=true is
// returned alongside the superseding state.
func (p *ListPager[T]) Load(ctx context.Context, params ListParams) (page *Page[T], stale bool, err error) {
	p.mu.Lock()
	p.seq++
	seq := p.seq
	p.params = params
	p.mu.Unlock()

	fetched, err := p.fetch(ctx, params)

	p.mu.Lock()
	defer p.mu.Unlock()
	if seq != p.seq {
		return p.page, true, nil
	}
	if err != nil {
		return nil, false, err
	}
	p.page = fetched
	return p.page, false, nil
}

// Current returns the last applied page and the most recently
// requested parameters
func (p *ListPager[T]) Current() (*Page[T], ListParams) {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.page, p.params
}
