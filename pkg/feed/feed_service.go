package feed

import (
	"context"
	"sync"

	"github.com/sirupsen/logrus"

	"github.com/FallenAngelllll/stellar-burgers/entities"
)

type (
	// FeedService holds the global order stream. Every refresh replaces
	// the whole aggregate; overlapping refreshes are tolerated and the
	// most recently resolved one wins. A failed refresh keeps the prior
	// aggregate so the UI can keep showing stale data next to the error.
	FeedService interface {
		Refresh(ctx context.Context) (entities.Feed, error)
		Feed() (entities.Feed, bool)
		Orders() []entities.Order
		IsLoading() bool
		Error() string
	}

	feedService struct {
		feedRepository FeedRepository
		log            *logrus.Logger

		mu       sync.Mutex
		data     entities.Feed
		hasData  bool
		inflight int
		// fetchError is tracked separately from the loading flag so the
		// caller can tell "stale data after an error" from "never loaded".
		fetchError string
	}
)

func NewFeedService(feedRepository FeedRepository, log *logrus.Logger) FeedService {
	return &feedService{
		feedRepository: feedRepository,
		log:            log,
	}
}

func (s *feedService) Refresh(ctx context.Context) (entities.Feed, error) {
	s.mu.Lock()
	s.inflight++
	s.fetchError = ""
	s.mu.Unlock()

	data, err := s.feedRepository.FetchFeed(ctx)

	s.mu.Lock()
	defer s.mu.Unlock()
	s.inflight--

	if err != nil {
		s.fetchError = err.Error()
		s.log.WithError(err).Warn("feed refresh failed")
		return entities.Feed{}, err
	}

	s.data = data
	s.hasData = true
	return data, nil
}

func (s *feedService) Feed() (entities.Feed, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.snapshot(), s.hasData
}

func (s *feedService) Orders() []entities.Order {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.snapshot().Orders
}

func (s *feedService) IsLoading() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.inflight > 0
}

func (s *feedService) Error() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.fetchError
}

func (s *feedService) snapshot() entities.Feed {
	out := s.data
	out.Orders = make([]entities.Order, len(s.data.Orders))
	copy(out.Orders, s.data.Orders)
	return out
}
