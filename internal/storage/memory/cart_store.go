package memory

import (
	"sync"

	"github.com/marcheapp/storefront/internal/domain"
)

// cartStoreInMemory хранит активные корзины по клиентам. Мьютекс
// защищает только map процесса: семантика корзины остаётся
// односессионной, один актор на корзину.
type cartStoreInMemory struct {
	mu    sync.RWMutex
	items map[string]*domain.Cart
}

// NewCartStore возвращает in-memory хранилище корзин.
func NewCartStore() domain.CartStore {
	return &cartStoreInMemory{
		items: make(map[string]*domain.Cart),
	}
}

// Get возвращает копию корзины клиента или ErrCartNotFound.
func (s *cartStoreInMemory) Get(customerID string) (*domain.Cart, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	cart, ok := s.items[customerID]
	if !ok {
		return nil, domain.ErrCartNotFound
	}
	return cart.Clone(), nil
}

// Save перезаписывает корзину клиента копией переданной.
func (s *cartStoreInMemory) Save(cart *domain.Cart) error {
	if cart == nil || cart.CustomerID == "" {
		return domain.ErrCustomerRequired
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	s.items[cart.CustomerID] = cart.Clone()
	return nil
}

// Delete удаляет корзину; удаление отсутствующей — no-op.
func (s *cartStoreInMemory) Delete(customerID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	delete(s.items, customerID)
	return nil
}

var _ domain.CartStore = (*cartStoreInMemory)(nil)
