package order

import (
	"context"
	"sync"

	"threadline-be/internal/cart"
	"threadline-be/internal/logger"
	"threadline-be/internal/metrics"

	"go.uber.org/zap"
)

// VendorListLimit caps the storefront-wide order listing.
const VendorListLimit = 100

type Service interface {
	// Checkout converts the session cart into a persisted order and clears
	// the cart. Checkouts for the same session are serialized, so two
	// concurrent calls cannot spend one cart twice.
	Checkout(ctx context.Context, userID uint) (*Order, error)
	MyOrders(ctx context.Context, userID uint) ([]*Order, error)
	AllOrders(ctx context.Context) ([]*Order, error)
	GetOrderDetail(ctx context.Context, userID, orderID uint, isStaff bool) (*Order, error)
	UpdateStatus(ctx context.Context, orderID uint, status Status) error
}

type service struct {
	repo      Repository
	cartStore cart.Store

	mu    sync.Mutex
	locks map[uint]*sync.Mutex
}

func NewService(repo Repository, cartStore cart.Store) Service {
	return &service{
		repo:      repo,
		cartStore: cartStore,
		locks:     make(map[uint]*sync.Mutex),
	}
}

// sessionLock returns the mutex serializing checkouts for one session.
func (s *service) sessionLock(userID uint) *sync.Mutex {
	s.mu.Lock()
	defer s.mu.Unlock()

	l, ok := s.locks[userID]
	if !ok {
		l = &sync.Mutex{}
		s.locks[userID] = l
	}
	return l
}

func (s *service) Checkout(ctx context.Context, userID uint) (*Order, error) {
	log := logger.FromCtx(ctx)

	if userID == 0 {
		return nil, ErrUnauthenticated
	}

	lock := s.sessionLock(userID)
	lock.Lock()
	defer lock.Unlock()

	timer := metrics.StartTimer()

	items, err := s.cartStore.Items(ctx, userID)
	if err != nil {
		return nil, err
	}
	if len(items) == 0 {
		metrics.CheckoutFailed.Inc()
		return nil, ErrCartEmpty
	}

	o, err := s.repo.CreateOrderTx(ctx, userID, items)
	if err != nil {
		metrics.CheckoutFailed.Inc()
		log.Error("checkout failed", zap.Uint("user_id", userID), zap.Error(err))
		return nil, err
	}

	// The order is committed; a failed cart clear must not undo it.
	if err := s.cartStore.Clear(ctx, userID); err != nil {
		log.Warn("order created but cart clear failed",
			zap.Uint("order_id", o.ID),
			zap.Error(err),
		)
	}

	metrics.OrdersCreated.Inc()
	log.Info("checkout completed",
		zap.Uint("order_id", o.ID),
		zap.Uint("user_id", userID),
		zap.Float64("total", o.Total),
		zap.Int("lines", len(o.Items)),
		zap.Duration("duration", timer.Duration()),
	)

	return o, nil
}

func (s *service) MyOrders(ctx context.Context, userID uint) ([]*Order, error) {
	if userID == 0 {
		return nil, ErrUnauthenticated
	}
	return s.repo.GetOrdersByUser(ctx, userID)
}

func (s *service) AllOrders(ctx context.Context) ([]*Order, error) {
	return s.repo.GetAllOrders(ctx, VendorListLimit)
}

func (s *service) GetOrderDetail(ctx context.Context, userID, orderID uint, isStaff bool) (*Order, error) {
	o, err := s.repo.GetOrderDetail(ctx, orderID)
	if err != nil {
		return nil, err
	}

	if !isStaff && o.UserID != userID {
		return nil, ErrOrderNotFound
	}

	return o, nil
}

func (s *service) UpdateStatus(ctx context.Context, orderID uint, status Status) error {
	if !ValidStatus(status) {
		return ErrInvalidStatus
	}
	return s.repo.UpdateStatus(ctx, orderID, status)
}
