package orders

import (
	"time"

	log "github.com/sirupsen/logrus"

	"github.com/marcheapp/storefront/internal/domain"
	"github.com/marcheapp/storefront/internal/messaging/kafka"
	"github.com/marcheapp/storefront/internal/metrics"
)

// OrderView — заказ вместе с проекцией статуса и историей событий.
type OrderView struct {
	Order      domain.Order
	Projection domain.Projection
	Timeline   []domain.TimelineEvent
}

// Service предоставляет чтение заказов и смену их статуса.
// Переходы между статусами инициирует внешний сервис обработки
// заказов; здесь проверяется только принадлежность статуса к
// поддерживаемому набору.
type Service interface {
	Get(orderID string) (OrderView, error)
	ListByCustomer(customerID string, limit int) ([]OrderView, error)
	UpdateStatus(orderID string, status domain.OrderStatus, reason string) (OrderView, error)
}

type service struct {
	orders    domain.OrderRepository
	timeline  domain.TimelineRepository
	publisher domain.EventPublisher // опциональный
	logger    *log.Entry
	metrics   *metrics.StorefrontMetrics
}

// NewService создаёт рабочий экземпляр сервиса заказов.
func NewService(
	orders domain.OrderRepository,
	timeline domain.TimelineRepository,
	publisher domain.EventPublisher,
	logger *log.Entry,
) Service {
	if logger == nil {
		logger = log.New().WithField("component", "orders")
	}
	return &service{
		orders:    orders,
		timeline:  timeline,
		publisher: publisher,
		logger:    logger,
		metrics:   metrics.NewStorefrontMetrics(),
	}
}

// NewServiceWithoutMetrics создаёт сервис без метрик (для тестов).
func NewServiceWithoutMetrics(
	orders domain.OrderRepository,
	timeline domain.TimelineRepository,
	publisher domain.EventPublisher,
	logger *log.Entry,
) Service {
	svc := NewService(orders, timeline, publisher, logger).(*service)
	svc.metrics = nil
	return svc
}

// Get возвращает заказ с проекцией прогресса и timeline.
func (s *service) Get(orderID string) (OrderView, error) {
	order, err := s.orders.Get(orderID)
	if err != nil {
		return OrderView{}, err
	}
	return s.view(order), nil
}

// ListByCustomer возвращает заказы клиента, новые первыми.
func (s *service) ListByCustomer(customerID string, limit int) ([]OrderView, error) {
	if customerID == "" {
		return nil, domain.ErrCustomerRequired
	}

	list, err := s.orders.ListByCustomer(customerID, limit)
	if err != nil {
		return nil, err
	}

	views := make([]OrderView, 0, len(list))
	for _, order := range list {
		views = append(views, s.view(order))
	}
	return views, nil
}

// UpdateStatus переводит заказ в новый статус. Допустимо любое
// значение из поддерживаемого набора, включая повтор текущего.
func (s *service) UpdateStatus(orderID string, status domain.OrderStatus, reason string) (OrderView, error) {
	if !status.Valid() {
		return OrderView{}, domain.ErrInvalidStatus
	}

	order, err := s.orders.Get(orderID)
	if err != nil {
		return OrderView{}, err
	}

	order.Status = status
	order.UpdatedAt = time.Now().UTC()
	if err := s.orders.Save(order); err != nil {
		s.logger.WithError(err).WithField("order_id", orderID).Error("failed to save status change")
		return OrderView{}, err
	}
	order.Version++

	s.appendTimeline(orderID, "status."+string(status), reason)
	s.publishStatusEvent(order)

	if s.metrics != nil {
		s.metrics.RecordStatusChange(string(status))
		if status == domain.OrderStatusCancelled {
			s.metrics.RecordOrderCancelled()
		}
	}

	s.logger.WithFields(log.Fields{
		"order_id": orderID,
		"status":   string(status),
		"reason":   reason,
	}).Info("order status updated")

	return s.view(order), nil
}

func (s *service) view(order domain.Order) OrderView {
	events, err := s.timeline.List(order.ID)
	if err != nil {
		s.logger.WithError(err).WithField("order_id", order.ID).Warn("failed to load timeline")
		events = nil
	}
	return OrderView{
		Order:      order,
		Projection: domain.Project(order.Status, order.Method),
		Timeline:   events,
	}
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

func (s *service) publishStatusEvent(order domain.Order) {
	if s.publisher == nil {
		return
	}

	eventType := kafka.EventTypeOrderStatusChanged
	if order.Status == domain.OrderStatusCancelled {
		eventType = kafka.EventTypeOrderCancelled
	}

	event := kafka.NewOrderEvent(eventType, order.ID, order.CustomerID, string(order.Status), order.TotalMinor, nil)
	if err := s.publisher.PublishEvent(kafka.TopicOrderEvents, order.ID, event); err != nil {
		s.logger.WithError(err).WithField("order_id", order.ID).Warn("failed to publish order event")
		return
	}
	if s.metrics != nil {
		s.metrics.RecordPublishedEvent()
	}
}

var _ Service = (*service)(nil)
