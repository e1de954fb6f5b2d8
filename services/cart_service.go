package services

import (
	"context"

	"dukicks/models"
	"dukicks/repositories"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// CartService keeps no carts of its own. Every request reads the saved
// snapshot from the repository and builds a short-lived CartStore around
// it, so any number of instances can share one repository.
type CartService struct {
	repo    repositories.CartRepository
	catalog *Catalog
	logger  *zap.Logger
}

func NewCartService(repo repositories.CartRepository, catalog *Catalog, logger *zap.Logger) *CartService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &CartService{
		repo:    repo,
		catalog: catalog,
		logger:  logger,
	}
}

func (s *CartService) NewSessionID() string {
	return uuid.NewString()
}

// State returns the saved cart of a session.
func (s *CartService) State(ctx context.Context, sessionID string) (models.CartState, error) {
	saved, err := s.repo.Load(ctx, sessionID)
	if err != nil {
		return models.CartState{}, err
	}
	return s.restore(sessionID, saved).State(), nil
}

// Update runs mutate against the saved cart and writes the result back
// atomically. A mutate error leaves the saved cart untouched and is
// returned together with the unchanged state.
func (s *CartService) Update(ctx context.Context, sessionID string, mutate func(*CartStore) error) (models.CartState, error) {
	var state models.CartState
	err := s.repo.Update(ctx, sessionID, func(saved []models.CartItem) ([]models.CartItem, error) {
		store := s.restore(sessionID, saved)
		err := mutate(store)
		state = store.State()
		if err != nil {
			return nil, err
		}
		return state.Items, nil
	})
	return state, err
}

// AddProduct looks productID up in the catalog and adds one unit of it.
// The second result is false when the catalog has no such product.
func (s *CartService) AddProduct(ctx context.Context, sessionID string, productID int, size string) (models.CartState, bool, error) {
	product, ok := s.catalog.GetByID(productID)
	if !ok {
		return models.CartState{}, false, nil
	}
	state, err := s.Update(ctx, sessionID, func(store *CartStore) error {
		return store.AddToCart(product, size)
	})
	return state, true, err
}

func (s *CartService) restore(sessionID string, saved []models.CartItem) *CartStore {
	if v := ValidateCart(saved); !v.Valid {
		s.logger.Warn("restored cart had invalid lines",
			zap.String("session_id", sessionID),
			zap.Strings("errors", v.Errors),
			zap.Int("invalid", len(v.InvalidItems)))
	}
	return NewCartStore(s.logger.With(zap.String("session_id", sessionID)), saved...)
}
