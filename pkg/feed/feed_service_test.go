package feed

import (
	"context"
	"io"
	"sync"
	"testing"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/FallenAngelllll/stellar-burgers/entities"
)

type stubFeedRepository struct {
	mu   sync.Mutex
	resp entities.Feed
	err  error
	// when blocking, each call parks on its own release channel
	blocking bool
	calls    []chan entities.Feed
}

func (r *stubFeedRepository) FetchFeed(context.Context) (entities.Feed, error) {
	r.mu.Lock()
	if !r.blocking {
		defer r.mu.Unlock()
		return r.resp, r.err
	}
	release := make(chan entities.Feed)
	r.calls = append(r.calls, release)
	r.mu.Unlock()
	return <-release, nil
}

func (r *stubFeedRepository) callCount() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.calls)
}

func (r *stubFeedRepository) release(i int, data entities.Feed) {
	r.mu.Lock()
	ch := r.calls[i]
	r.mu.Unlock()
	ch <- data
}

func newTestService(repo *stubFeedRepository) FeedService {
	log := logrus.New()
	log.SetOutput(io.Discard)
	return NewFeedService(repo, log)
}

func TestRefreshReplacesWholesale(t *testing.T) {
	repo := &stubFeedRepository{resp: entities.Feed{
		Orders:     []entities.Order{{Number: 1}, {Number: 2}},
		Total:      100,
		TotalToday: 10,
	}}
	s := newTestService(repo)

	_, err := s.Refresh(context.Background())
	require.NoError(t, err)

	repo.mu.Lock()
	repo.resp = entities.Feed{Orders: []entities.Order{{Number: 3}}, Total: 101, TotalToday: 11}
	repo.mu.Unlock()

	_, err = s.Refresh(context.Background())
	require.NoError(t, err)

	data, ok := s.Feed()
	require.True(t, ok)
	require.Len(t, data.Orders, 1)
	assert.Equal(t, 3, data.Orders[0].Number)
	assert.Equal(t, 101, data.Total)
	assert.Equal(t, 11, data.TotalToday)
}

func TestRefreshFailureKeepsPriorAggregate(t *testing.T) {
	repo := &stubFeedRepository{resp: entities.Feed{Total: 100}}
	s := newTestService(repo)

	_, err := s.Refresh(context.Background())
	require.NoError(t, err)

	repo.mu.Lock()
	repo.err = assert.AnError
	repo.mu.Unlock()

	_, err = s.Refresh(context.Background())
	require.Error(t, err)

	data, ok := s.Feed()
	require.True(t, ok, "stale data stays available")
	assert.Equal(t, 100, data.Total)
	assert.NotEmpty(t, s.Error())
	assert.False(t, s.IsLoading())
}

func TestNeverLoadedIsDistinctFromStale(t *testing.T) {
	repo := &stubFeedRepository{err: assert.AnError}
	s := newTestService(repo)

	_, err := s.Refresh(context.Background())
	require.Error(t, err)

	_, ok := s.Feed()
	assert.False(t, ok, "no aggregate was ever loaded")
	assert.NotEmpty(t, s.Error())
}

func TestOverlappingRefreshesLastResolvedWins(t *testing.T) {
	repo := &stubFeedRepository{blocking: true}
	s := newTestService(repo)

	first := make(chan error, 1)
	go func() {
		_, err := s.Refresh(context.Background())
		first <- err
	}()
	for repo.callCount() < 1 {
		time.Sleep(time.Millisecond)
	}

	second := make(chan error, 1)
	go func() {
		_, err := s.Refresh(context.Background())
		second <- err
	}()
	for repo.callCount() < 2 {
		time.Sleep(time.Millisecond)
	}
	assert.True(t, s.IsLoading())

	// Resolve the second-issued call first, then the first-issued one:
	// the later resolution must own the slot even though it was issued
	// earlier.
	repo.release(1, entities.Feed{Total: 2})
	require.NoError(t, <-second)
	repo.release(0, entities.Feed{Total: 1})
	require.NoError(t, <-first)

	data, ok := s.Feed()
	require.True(t, ok)
	assert.Equal(t, 1, data.Total, "the last resolved refresh owns the slot")
	assert.False(t, s.IsLoading())
}
