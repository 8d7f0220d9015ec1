package client

import (
	"context"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func pageFor(params ListParams) *Page[User] {
	return &Page[User]{
		Items:      []User{{ID: int64(params.Page)}},
		Pagination: PageInfo{CurrentPage: params.Page},
	}
}

func TestPagerLoad(t *testing.T) {
	pager := NewListPager(func(_ context.Context, params ListParams) (*Page[User], error) {
		return pageFor(params), nil
	})

	page, stale, err := pager.Load(context.Background(), ListParams{Page: 1, Limit: 10})
	require.NoError(t, err)
	assert.False(t, stale)
	assert.Equal(t, 1, page.Pagination.CurrentPage)

	current, params := pager.Current()
	assert.Equal(t, 1, current.Pagination.CurrentPage)
	assert.Equal(t, 1, params.Page)
}

func TestPagerDiscardsStaleResponse(t *testing.T) {
	started := make(chan struct{})
	release := make(chan struct{})
	pager := NewListPager(func(_ context.Context, params ListParams) (*Page[User], error) {
		if params.Page == 1 {
			close(started)
			<-release
		}
		return pageFor(params), nil
	})

	var wg sync.WaitGroup
	wg.Add(1)
	var slowPage *Page[User]
	var slowStale bool
	go func() {
		defer wg.Done()
		slowPage, slowStale, _ = pager.Load(context.Background(), ListParams{Page: 1, Limit: 10})
	}()
	<-started

	// The second request supersedes the first while it is in flight.
	fastPage, fastStale, err := pager.Load(context.Background(), ListParams{Page: 2, Limit: 10})
	require.NoError(t, err)
	assert.False(t, fastStale)
	assert.Equal(t, 2, fastPage.Pagination.CurrentPage)

	close(release)
	wg.Wait()

	assert.True(t, slowStale, "the superseded response is discarded")
	assert.Equal(t, 2, slowPage.Pagination.CurrentPage, "stale loads surface the winning page")

	current, params := pager.Current()
	assert.Equal(t, 2, current.Pagination.CurrentPage)
	assert.Equal(t, 2, params.Page)
}

func TestPagerErrorDoesNotClobberLastPage(t *testing.T) {
	fail := false
	pager := NewListPager(func(_ context.Context, params ListParams) (*Page[User], error) {
		if fail {
			return nil, &APIError{StatusCode: 500, Message: "Server Error"}
		}
		return pageFor(params), nil
	})

	_, _, err := pager.Load(context.Background(), ListParams{Page: 1, Limit: 10})
	require.NoError(t, err)

	fail = true
	_, _, err = pager.Load(context.Background(), ListParams{Page: 2, Limit: 10})
	require.Error(t, err)

	current, _ := pager.Current()
	require.NotNil(t, current)
	assert.Equal(t, 1, current.Pagination.CurrentPage)
}
