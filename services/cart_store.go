package services

import (
	"slices"
	"sync"

	"dukicks/models"

	"go.uber.org/zap"
)

// CartListener receives the cart state after every applied mutation. It
// runs while the store is locked and must not call back into the store.
type CartListener func(models.CartState)

// CartStore is one shopper's cart. Mutations recompute the summary and
// notify listeners before returning, so nobody observes a stale summary.
type CartStore struct {
	mu        sync.Mutex
	items     []models.CartItem
	summary   models.CartSummary
	listeners map[int]CartListener
	nextID    int
	logger    *zap.Logger
}

// NewCartStore creates a cart seeded with items. Invalid or duplicate
// seed lines are dropped.
func NewCartStore(logger *zap.Logger, seed ...models.CartItem) *CartStore {
	if logger == nil {
		logger = zap.NewNop()
	}
	s := &CartStore{
		items:     []models.CartItem{},
		listeners: make(map[int]CartListener),
		logger:    logger,
	}
	for _, item := range seed {
		if !IsValidCartItem(item) || IsProductInCart(s.items, item.ID) {
			logger.Warn("dropping invalid cart line", zap.Int("product_id", item.ID), zap.Int("quantity", item.Quantity))
			continue
		}
		s.items = append(s.items, item)
	}
	s.summary = Summarize(s.items)
	return s
}

// Subscribe registers fn and returns a function that removes it.
func (s *CartStore) Subscribe(fn CartListener) (unsubscribe func()) {
	s.mu.Lock()
	defer s.mu.Unlock()

	id := s.nextID
	s.nextID++
	s.listeners[id] = fn
	return func() {
		s.mu.Lock()
		defer s.mu.Unlock()
		delete(s.listeners, id)
	}
}

func (s *CartStore) State() models.CartState {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.stateLocked()
}

func (s *CartStore) Items() []models.CartItem {
	s.mu.Lock()
	defer s.mu.Unlock()
	return slices.Clone(s.items)
}

func (s *CartStore) Summary() models.CartSummary {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.summary
}

// AddToCart adds one unit of p. An existing line grows by one, stopping at
// 99; otherwise a new line is appended.
func (s *CartStore) AddToCart(p models.Product, size string) error {
	if p.ID <= 0 {
		s.logger.Warn("add to cart rejected", zap.Int("product_id", p.ID), zap.Error(ErrInvalidProduct))
		return newInvalidArgument(p.ID, ErrInvalidProduct)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	next := slices.Clone(s.items)
	if i := indexOfItem(next, p.ID); i >= 0 {
		next[i].Quantity = min(next[i].Quantity+1, models.MaxQuantity)
	} else {
		next = append(next, NewLineItem(p, size))
	}
	s.commitLocked(next)
	return nil
}

// SetQuantity replaces the quantity of an existing line. Quantities outside
// 1..99 and unknown products are rejected and the cart is left unchanged.
func (s *CartStore) SetQuantity(productID, quantity int) error {
	if !IsValidQuantity(quantity) {
		s.logger.Warn("quantity update rejected",
			zap.Int("product_id", productID),
			zap.Int("quantity", quantity),
			zap.Error(ErrInvalidQuantity))
		return newInvalidArgument(productID, ErrInvalidQuantity)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	i := indexOfItem(s.items, productID)
	if i < 0 {
		s.logger.Warn("quantity update rejected",
			zap.Int("product_id", productID),
			zap.Error(ErrItemNotInCart))
		return newFailedPrecondition(productID, ErrItemNotInCart)
	}

	next := slices.Clone(s.items)
	next[i].Quantity = quantity
	s.commitLocked(next)
	return nil
}

// RemoveFromCart drops the line for productID. Removing an absent product
// does nothing.
func (s *CartStore) RemoveFromCart(productID int) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if indexOfItem(s.items, productID) < 0 {
		return
	}
	next := slices.DeleteFunc(slices.Clone(s.items), func(item models.CartItem) bool {
		return item.ID == productID
	})
	s.commitLocked(next)
}

func (s *CartStore) ClearCart() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.commitLocked([]models.CartItem{})
}

func (s *CartStore) commitLocked(items []models.CartItem) {
	s.items = items
	s.summary = Summarize(items)

	state := s.stateLocked()
	for _, id := range s.listenerIDsLocked() {
		s.listeners[id](state)
	}
}

// listenerIDsLocked returns listener ids in subscription order.
func (s *CartStore) listenerIDsLocked() []int {
	ids := make([]int, 0, len(s.listeners))
	for id := range s.listeners {
		ids = append(ids, id)
	}
	slices.Sort(ids)
	return ids
}

func (s *CartStore) stateLocked() models.CartState {
	return models.CartState{
		Items:   slices.Clone(s.items),
		Summary: s.summary,
	}
}
