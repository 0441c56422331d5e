package checkout

import (
	"errors"
	"time"

	"github.com/google/uuid"
	log "github.com/sirupsen/logrus"

	"github.com/marcheapp/storefront/internal/domain"
	"github.com/marcheapp/storefront/internal/messaging/kafka"
	"github.com/marcheapp/storefront/internal/metrics"
)

// PlaceOrderInput — выбор клиента на экране оформления в терминах
// идентификаторов сохранённых записей аккаунта.
type PlaceOrderInput struct {
	Method          domain.DeliveryMethod
	AddressID       string
	SlotID          string
	PaymentMethodID string
	Note            string
}

// Service оформляет заказы: собирает снимок корзины и проводит его
// через хранилище, timeline и публикацию событий.
type Service interface {
	// Build собирает снимок заказа из корзины и проверенного выбора.
	// Снимок не сохраняется; корзина остаётся нетронутой.
	Build(cart *domain.Cart, selection domain.CheckoutSelection) (domain.Order, error)
	// PlaceOrder резолвит выбор против аккаунта клиента, сохраняет
	// заказ и очищает корзину.
	PlaceOrder(customerID string, in PlaceOrderInput) (domain.Order, error)
}

type service struct {
	carts     domain.CartStore
	orders    domain.OrderRepository
	timeline  domain.TimelineRepository
	accounts  domain.AccountProvider
	publisher domain.EventPublisher // опциональный, nil — события не публикуются
	logger    *log.Entry
	metrics   *metrics.StorefrontMetrics
}

// NewService создаёт рабочий экземпляр сервиса оформления.
func NewService(
	carts domain.CartStore,
	orders domain.OrderRepository,
	timeline domain.TimelineRepository,
	accounts domain.AccountProvider,
	publisher domain.EventPublisher,
	logger *log.Entry,
) Service {
	if logger == nil {
		logger = log.New().WithField("component", "checkout")
	}
	return &service{
		carts:     carts,
		orders:    orders,
		timeline:  timeline,
		accounts:  accounts,
		publisher: publisher,
		logger:    logger,
		metrics:   metrics.NewStorefrontMetrics(),
	}
}

// NewServiceWithoutMetrics создаёт сервис без метрик (для тестов).
func NewServiceWithoutMetrics(
	carts domain.CartStore,
	orders domain.OrderRepository,
	timeline domain.TimelineRepository,
	accounts domain.AccountProvider,
	publisher domain.EventPublisher,
	logger *log.Entry,
) Service {
	svc := NewService(carts, orders, timeline, accounts, publisher, logger).(*service)
	svc.metrics = nil
	return svc
}

// Build собирает снимок заказа. Строки копируются, суммы фиксируются:
// последующие мутации корзины или каталога на заказ не влияют.
func (s *service) Build(cart *domain.Cart, selection domain.CheckoutSelection) (domain.Order, error) {
	if cart == nil || cart.Len() == 0 {
		return domain.Order{}, domain.ErrEmptyCart
	}
	if err := selection.Validate(); err != nil {
		return domain.Order{}, err
	}

	now := time.Now().UTC()
	order := domain.Order{
		ID:               uuid.NewString(),
		CustomerID:       cart.CustomerID,
		Status:           domain.OrderStatusPending,
		Lines:            cart.Lines(),
		SubtotalMinor:    cart.SubtotalMinor(),
		DeliveryFeeMinor: domain.FeeMinor(selection.Method),
		Method:           selection.Method,
		PaymentMethodID:  selection.Payment.ID,
		Note:             selection.Note,
		CreatedAt:        now,
		UpdatedAt:        now,
	}
	order.TotalMinor = order.SubtotalMinor + order.DeliveryFeeMinor

	if selection.Address != nil {
		addr := *selection.Address
		order.Address = &addr
	}
	if selection.Slot != nil {
		slot := *selection.Slot
		order.Slot = &slot
	}

	return order, nil
}

// PlaceOrder проводит полное оформление. Корзина очищается только
// после успешного сохранения заказа; ошибка публикации события не
// откатывает заказ.
func (s *service) PlaceOrder(customerID string, in PlaceOrderInput) (domain.Order, error) {
	start := time.Now()
	defer func() {
		if s.metrics != nil {
			s.metrics.RecordCheckoutDuration(time.Since(start))
		}
	}()

	if customerID == "" {
		return domain.Order{}, domain.ErrCustomerRequired
	}

	cart, err := s.carts.Get(customerID)
	if errors.Is(err, domain.ErrCartNotFound) {
		return domain.Order{}, domain.ErrEmptyCart
	}
	if err != nil {
		return domain.Order{}, err
	}

	selection, err := s.resolveSelection(customerID, in)
	if err != nil {
		return domain.Order{}, err
	}

	order, err := s.Build(cart, selection)
	if err != nil {
		return domain.Order{}, err
	}

	if err := s.orders.Create(order); err != nil {
		s.logger.WithError(err).WithField("order_id", order.ID).Error("failed to persist order")
		return domain.Order{}, err
	}

	s.appendTimeline(order.ID, "order.placed", "")

	if err := s.carts.Delete(customerID); err != nil {
		// Заказ уже сохранён; залипшая корзина хуже потерянного заказа,
		// но откатывать здесь нечего.
		s.logger.WithError(err).WithField("customer_id", customerID).Warn("failed to clear cart after checkout")
	}

	s.publishOrderEvent(kafka.EventTypeOrderPlaced, order)

	if s.metrics != nil {
		s.metrics.RecordOrderPlaced()
		s.metrics.RecordCartDrained()
	}

	s.logger.WithFields(log.Fields{
		"order_id":    order.ID,
		"customer_id": customerID,
		"total_minor": order.TotalMinor,
		"method":      string(order.Method),
	}).Info("order placed")

	return order, nil
}

func (s *service) resolveSelection(customerID string, in PlaceOrderInput) (domain.CheckoutSelection, error) {
	selection := domain.CheckoutSelection{Method: in.Method, Note: in.Note}
	if !in.Method.Valid() {
		return domain.CheckoutSelection{}, domain.ErrInvalidDeliveryMethod
	}

	switch in.Method {
	case domain.DeliveryMethodDelivery:
		if in.AddressID == "" {
			return domain.CheckoutSelection{}, domain.ErrMissingDeliveryTarget
		}
		addr, err := s.accounts.AddressByID(customerID, in.AddressID)
		if err != nil {
			return domain.CheckoutSelection{}, err
		}
		selection.Address = &addr
	case domain.DeliveryMethodPickup:
		if in.SlotID == "" {
			return domain.CheckoutSelection{}, domain.ErrMissingDeliveryTarget
		}
		slot, err := s.accounts.PickupSlotByID(in.SlotID)
		if err != nil {
			return domain.CheckoutSelection{}, err
		}
		selection.Slot = &slot
	}

	if in.PaymentMethodID == "" {
		return domain.CheckoutSelection{}, domain.ErrMissingPayment
	}
	payment, err := s.accounts.PaymentMethodByID(customerID, in.PaymentMethodID)
	if err != nil {
		return domain.CheckoutSelection{}, err
	}
	selection.Payment = &payment

	return selection, nil
}

func (s *service) appendTimeline(orderID, eventType, reason string) {
	event := domain.TimelineEvent{
		OrderID:  orderID,
		Type:     eventType,
		Reason:   reason,
		Occurred: time.Now().UTC(),
	}
	if err := s.timeline.Append(event); err != nil {
		s.logger.WithError(err).WithField("order_id", orderID).Warn("failed to append timeline event")
		return
	}
	if s.metrics != nil {
		s.metrics.RecordTimelineEvent()
	}
}

func (s *service) publishOrderEvent(eventType kafka.EventType, order domain.Order) {
	if s.publisher == nil {
		return
	}

	event := kafka.NewOrderEvent(eventType, order.ID, order.CustomerID, string(order.Status), order.TotalMinor, map[string]interface{}{
		"delivery_method": string(order.Method),
	})
	if err := s.publisher.PublishEvent(kafka.TopicOrderEvents, order.ID, event); err != nil {
		s.logger.WithError(err).WithField("order_id", order.ID).Warn("failed to publish order event")
		return
	}
	if s.metrics != nil {
		s.metrics.RecordPublishedEvent()
	}
}

var _ Service = (*service)(nil)
