package account

import (
	"sync"

	"github.com/marcheapp/storefront/internal/domain"
)

// Provider — in-memory поставщик сохранённых адресов, способов оплаты
// и слотов самовывоза. Списки конечные и задаются при конструировании;
// оформление заказа валидирует выбор клиента против них. Мутируется
// только избранное.
type Provider struct {
	mu        sync.RWMutex
	addresses map[string][]domain.Address
	payments  map[string][]domain.PaymentMethod
	slots     []domain.PickupSlot
	favorites map[string]map[string]bool
	// favoriteOrder хранит порядок добавления для стабильной выдачи.
	favoriteOrder map[string][]string
}

// Option настраивает Provider.
type Option func(*Provider)

// WithAddresses задаёт сохранённые адреса клиента.
func WithAddresses(customerID string, addresses ...domain.Address) Option {
	return func(p *Provider) {
		p.addresses[customerID] = append(p.addresses[customerID], addresses...)
	}
}

// WithPaymentMethods задаёт сохранённые способы оплаты клиента.
func WithPaymentMethods(customerID string, methods ...domain.PaymentMethod) Option {
	return func(p *Provider) {
		p.payments[customerID] = append(p.payments[customerID], methods...)
	}
}

// WithPickupSlots задаёт доступные слоты самовывоза.
func WithPickupSlots(slots ...domain.PickupSlot) Option {
	return func(p *Provider) {
		p.slots = append(p.slots, slots...)
	}
}

// NewProvider создаёт пустой Provider и применяет опции.
func NewProvider(opts ...Option) *Provider {
	p := &Provider{
		addresses:     make(map[string][]domain.Address),
		payments:      make(map[string][]domain.PaymentMethod),
		favorites:     make(map[string]map[string]bool),
		favoriteOrder: make(map[string][]string),
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// Addresses возвращает сохранённые адреса клиента.
func (p *Provider) Addresses(customerID string) []domain.Address {
	p.mu.RLock()
	defer p.mu.RUnlock()

	out := make([]domain.Address, len(p.addresses[customerID]))
	copy(out, p.addresses[customerID])
	return out
}

// AddressByID возвращает адрес или ErrAddressNotFound.
func (p *Provider) AddressByID(customerID, addressID string) (domain.Address, error) {
	p.mu.RLock()
	defer p.mu.RUnlock()

	for _, addr := range p.addresses[customerID] {
		if addr.ID == addressID {
			return addr, nil
		}
	}
	return domain.Address{}, domain.ErrAddressNotFound
}

// PaymentMethods возвращает сохранённые способы оплаты клиента.
func (p *Provider) PaymentMethods(customerID string) []domain.PaymentMethod {
	p.mu.RLock()
	defer p.mu.RUnlock()

	out := make([]domain.PaymentMethod, len(p.payments[customerID]))
	copy(out, p.payments[customerID])
	return out
}

// PaymentMethodByID возвращает способ оплаты или ErrPaymentMethodNotFound.
func (p *Provider) PaymentMethodByID(customerID, paymentID string) (domain.PaymentMethod, error) {
	p.mu.RLock()
	defer p.mu.RUnlock()

	for _, method := range p.payments[customerID] {
		if method.ID == paymentID {
			return method, nil
		}
	}
	return domain.PaymentMethod{}, domain.ErrPaymentMethodNotFound
}

// PickupSlots возвращает доступные слоты самовывоза.
func (p *Provider) PickupSlots() []domain.PickupSlot {
	p.mu.RLock()
	defer p.mu.RUnlock()

	out := make([]domain.PickupSlot, len(p.slots))
	copy(out, p.slots)
	return out
}

// PickupSlotByID возвращает слот или ErrPickupSlotNotFound.
func (p *Provider) PickupSlotByID(slotID string) (domain.PickupSlot, error) {
	p.mu.RLock()
	defer p.mu.RUnlock()

	for _, slot := range p.slots {
		if slot.ID == slotID {
			return slot, nil
		}
	}
	return domain.PickupSlot{}, domain.ErrPickupSlotNotFound
}

// Favorites возвращает идентификаторы избранных товаров в порядке добавления.
func (p *Provider) Favorites(customerID string) []string {
	p.mu.RLock()
	defer p.mu.RUnlock()

	out := make([]string, len(p.favoriteOrder[customerID]))
	copy(out, p.favoriteOrder[customerID])
	return out
}

// ToggleFavorite переключает товар в избранном клиента и возвращает
// актуальное состояние.
func (p *Provider) ToggleFavorite(customerID, productID string) bool {
	p.mu.Lock()
	defer p.mu.Unlock()

	set := p.favorites[customerID]
	if set == nil {
		set = make(map[string]bool)
		p.favorites[customerID] = set
	}

	if set[productID] {
		delete(set, productID)
		order := p.favoriteOrder[customerID]
		for i, id := range order {
			if id == productID {
				p.favoriteOrder[customerID] = append(order[:i], order[i+1:]...)
				break
			}
		}
		return false
	}

	set[productID] = true
	p.favoriteOrder[customerID] = append(p.favoriteOrder[customerID], productID)
	return true
}

var _ domain.AccountProvider = (*Provider)(nil)
