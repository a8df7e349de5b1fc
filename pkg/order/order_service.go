package order

import (
	"context"
	"sync"

	"github.com/sirupsen/logrus"

	"github.com/FallenAngelllll/stellar-burgers/domain"
	"github.com/FallenAngelllll/stellar-burgers/entities"
	"github.com/FallenAngelllll/stellar-burgers/pkg/builder"
)

type (
	// TokenSource supplies an access token ready for the Authorization
	// header, refreshing it first when needed.
	TokenSource interface {
		AccessToken(ctx context.Context) (string, error)
	}

	// FeedSource is the read-only view of the live feed the resolution
	// precedence consults.
	FeedSource interface {
		Orders() []entities.Order
	}

	// OrderService drives the order lifecycle. Submit, lookup-by-number
	// and history each own their loading flag and error slot, so none of
	// them can block or corrupt the others.
	OrderService interface {
		Submit(ctx context.Context) (domain.CreateOrderResponse, error)
		GetByNumber(ctx context.Context, number int) (entities.Order, error)
		FetchHistory(ctx context.Context) ([]entities.Order, error)
		ClearModal()

		History() []entities.Order
		ModalOrder() (entities.Order, bool)
		IsCreating() bool
		IsLoadingByNumber() bool
		IsFetchingHistory() bool
		SubmitError() string
		HistoryError() string

		FindOrderByNumber(number int) (entities.Order, bool)
	}

	orderService struct {
		orderRepository OrderRepository
		builderService  builder.BuilderService
		feedSource      FeedSource
		tokens          TokenSource
		log             *logrus.Logger

		mu              sync.Mutex
		history         []entities.Order
		modalOrder      *entities.Order
		creating        bool
		loadingByNumber int
		fetchingHistory int
		submitError     string
		historyError    string
	}
)

func NewOrderService(
	orderRepository OrderRepository,
	builderService builder.BuilderService,
	feedSource FeedSource,
	tokens TokenSource,
	log *logrus.Logger,
) OrderService {
	return &orderService{
		orderRepository: orderRepository,
		builderService:  builderService,
		feedSource:      feedSource,
		tokens:          tokens,
		log:             log,
	}
}

// Submit serializes the current builder contents as
// [bun, fillings..., bun] and creates the order. Without a bun, or
// while another submission is still in flight, it rejects locally and
// never touches the network. On success the returned order becomes the
// modal order and the builder is reset; on failure the builder is left
// untouched so the user can retry without re-assembling.
func (s *orderService) Submit(ctx context.Context) (domain.CreateOrderResponse, error) {
	snapshot := s.builderService.Snapshot()
	if snapshot.Bun == nil {
		return domain.CreateOrderResponse{}, domain.ErrBunRequired
	}

	s.mu.Lock()
	if s.creating {
		s.mu.Unlock()
		return domain.CreateOrderResponse{}, domain.ErrOrderInFlight
	}
	s.creating = true
	s.submitError = ""
	s.mu.Unlock()

	ingredientIDs := make([]string, 0, len(snapshot.Ingredients)+2)
	ingredientIDs = append(ingredientIDs, snapshot.Bun.ID)
	for _, ingredient := range snapshot.Ingredients {
		ingredientIDs = append(ingredientIDs, ingredient.ID)
	}
	ingredientIDs = append(ingredientIDs, snapshot.Bun.ID)

	token, err := s.tokens.AccessToken(ctx)
	if err == nil {
		var created domain.CreateOrderResponse
		created, err = s.orderRepository.CreateOrder(ctx, token, ingredientIDs)
		if err == nil {
			s.mu.Lock()
			s.creating = false
			order := created.Order
			s.modalOrder = &order
			s.mu.Unlock()

			s.builderService.Reset()
			return created, nil
		}
	}

	s.mu.Lock()
	s.creating = false
	s.submitError = err.Error()
	s.mu.Unlock()
	s.log.WithError(err).Warn("order submission failed")
	return domain.CreateOrderResponse{}, err
}

// GetByNumber fetches a single order. The last lookup to resolve wins
// the modal slot; a failed lookup leaves the previous modal order
// untouched.
func (s *orderService) GetByNumber(ctx context.Context, number int) (entities.Order, error) {
	s.mu.Lock()
	s.loadingByNumber++
	s.mu.Unlock()

	fetched, err := s.orderRepository.GetOrderByNumber(ctx, number)

	s.mu.Lock()
	defer s.mu.Unlock()
	s.loadingByNumber--

	if err != nil {
		return entities.Order{}, err
	}

	s.modalOrder = &fetched
	return fetched, nil
}

// FetchHistory replaces the user's order list wholesale. On failure the
// previous list survives and the error slot records the message.
func (s *orderService) FetchHistory(ctx context.Context) ([]entities.Order, error) {
	s.mu.Lock()
	s.fetchingHistory++
	s.historyError = ""
	s.mu.Unlock()

	token, err := s.tokens.AccessToken(ctx)
	var orders []entities.Order
	if err == nil {
		orders, err = s.orderRepository.FetchUserOrders(ctx, token)
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.fetchingHistory--

	if err != nil {
		s.historyError = err.Error()
		s.log.WithError(err).Warn("order history fetch failed")
		return nil, err
	}

	s.history = orders
	out := make([]entities.Order, len(orders))
	copy(out, orders)
	return out, nil
}

// ClearModal is the explicit dismissal: the modal order goes away and a
// conceptually finished submission no longer reads as creating.
func (s *orderService) ClearModal() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.modalOrder = nil
	s.creating = false
}

func (s *orderService) History() []entities.Order {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]entities.Order, len(s.history))
	copy(out, s.history)
	return out
}

func (s *orderService) ModalOrder() (entities.Order, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.modalOrder == nil {
		return entities.Order{}, false
	}
	return *s.modalOrder, true
}

func (s *orderService) IsCreating() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.creating
}

func (s *orderService) IsLoadingByNumber() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.loadingByNumber > 0
}

func (s *orderService) IsFetchingHistory() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.fetchingHistory > 0
}

func (s *orderService) SubmitError() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.submitError
}

func (s *orderService) HistoryError() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.historyError
}

// FindOrderByNumber locates an order by its server-assigned number
// regardless of which list it arrived in: the user's own history first,
// then the live feed, then the current modal order. First match wins.
func (s *orderService) FindOrderByNumber(number int) (entities.Order, bool) {
	s.mu.Lock()
	for _, order := range s.history {
		if order.Number == number {
			s.mu.Unlock()
			return order, true
		}
	}
	modal := s.modalOrder
	s.mu.Unlock()

	for _, order := range s.feedSource.Orders() {
		if order.Number == number {
			return order, true
		}
	}

	if modal != nil && modal.Number == number {
		return *modal, true
	}
	return entities.Order{}, false
}
