package cart

import (
	"errors"

	log "github.com/sirupsen/logrus"

	"github.com/marcheapp/storefront/internal/domain"
	"github.com/marcheapp/storefront/internal/metrics"
)

// Service описывает операции над корзиной клиента.
type Service interface {
	Get(customerID string) (*domain.Cart, error)
	Add(customerID, productID string, delta int32) (*domain.Cart, error)
	SetQuantity(customerID, productID string, qty int32) (*domain.Cart, error)
	Remove(customerID, productID string) (*domain.Cart, error)
	Clear(customerID string) (*domain.Cart, error)
}

// service мутирует корзину через CartStore и валидирует добавляемые
// товары против каталога.
type service struct {
	carts   domain.CartStore
	catalog domain.CatalogSource
	logger  *log.Entry
	metrics *metrics.StorefrontMetrics
}

// NewService создаёт рабочий экземпляр сервиса корзины.
func NewService(carts domain.CartStore, catalog domain.CatalogSource, logger *log.Entry) Service {
	if logger == nil {
		logger = log.New().WithField("component", "cart")
	}
	return &service{
		carts:   carts,
		catalog: catalog,
		logger:  logger,
		metrics: metrics.NewStorefrontMetrics(),
	}
}

// NewServiceWithoutMetrics создаёт сервис без метрик (для тестов).
func NewServiceWithoutMetrics(carts domain.CartStore, catalog domain.CatalogSource, logger *log.Entry) Service {
	if logger == nil {
		logger = log.New().WithField("component", "cart")
	}
	return &service{
		carts:   carts,
		catalog: catalog,
		logger:  logger,
	}
}

// Get возвращает корзину клиента. Первое обращение создаёт пустую
// корзину: отсутствие записи в хранилище не ошибка для клиента.
func (s *service) Get(customerID string) (*domain.Cart, error) {
	if customerID == "" {
		return nil, domain.ErrCustomerRequired
	}

	cart, err := s.carts.Get(customerID)
	if errors.Is(err, domain.ErrCartNotFound) {
		return domain.NewCart(customerID), nil
	}
	if err != nil {
		return nil, err
	}
	return cart, nil
}

// Add добавляет товар или меняет количество существующей строки на delta.
func (s *service) Add(customerID, productID string, delta int32) (*domain.Cart, error) {
	return s.mutate(customerID, productID, "add", func(cart *domain.Cart, line domain.CartLine) {
		cart.AddOrIncrement(line, delta)
	})
}

// SetQuantity выставляет точное количество строки; отсутствующая
// строка создаётся с переданным количеством.
func (s *service) SetQuantity(customerID, productID string, qty int32) (*domain.Cart, error) {
	return s.mutate(customerID, productID, "set_quantity", func(cart *domain.Cart, line domain.CartLine) {
		cart.SetQuantity(line, qty)
	})
}

// Remove удаляет строку товара; удаление отсутствующей строки — no-op.
// Товар может к этому моменту исчезнуть из каталога, поэтому здесь
// каталог не опрашивается.
func (s *service) Remove(customerID, productID string) (*domain.Cart, error) {
	if customerID == "" {
		return nil, domain.ErrCustomerRequired
	}

	cart, err := s.Get(customerID)
	if err != nil {
		return nil, err
	}

	hadLines := cart.Len() > 0
	cart.RemoveLine(productID)

	if err := s.save(cart, hadLines); err != nil {
		return nil, err
	}
	s.recordOp("remove")
	return cart, nil
}

// Clear опустошает корзину клиента.
func (s *service) Clear(customerID string) (*domain.Cart, error) {
	if customerID == "" {
		return nil, domain.ErrCustomerRequired
	}

	cart, err := s.Get(customerID)
	if err != nil {
		return nil, err
	}

	hadLines := cart.Len() > 0
	cart.Clear()

	if err := s.save(cart, hadLines); err != nil {
		return nil, err
	}
	s.recordOp("clear")
	return cart, nil
}

func (s *service) mutate(customerID, productID, op string, apply func(*domain.Cart, domain.CartLine)) (*domain.Cart, error) {
	if customerID == "" {
		return nil, domain.ErrCustomerRequired
	}

	product, err := s.catalog.ProductByID(productID)
	if err != nil {
		return nil, err
	}
	if !product.InStock {
		return nil, domain.ErrProductUnavailable
	}

	cart, err := s.Get(customerID)
	if err != nil {
		return nil, err
	}

	hadLines := cart.Len() > 0
	apply(cart, domain.CartLine{
		ProductID:  product.ID,
		Name:       product.Name,
		PriceMinor: product.PriceMinor,
		Unit:       product.Unit,
	})

	if err := s.save(cart, hadLines); err != nil {
		return nil, err
	}

	s.recordOp(op)
	s.logger.WithFields(log.Fields{
		"customer_id": customerID,
		"product_id":  productID,
		"op":          op,
		"lines":       cart.Len(),
	}).Debug("cart updated")

	return cart, nil
}

func (s *service) save(cart *domain.Cart, hadLines bool) error {
	if err := s.carts.Save(cart); err != nil {
		s.logger.WithError(err).WithField("customer_id", cart.CustomerID).Error("failed to save cart")
		return err
	}
	if s.metrics != nil {
		if !hadLines && cart.Len() > 0 {
			s.metrics.RecordCartActivated()
		}
		if hadLines && cart.Len() == 0 {
			s.metrics.RecordCartDrained()
		}
	}
	return nil
}

func (s *service) recordOp(op string) {
	if s.metrics != nil {
		s.metrics.RecordCartOperation(op)
	}
}

var _ Service = (*service)(nil)
