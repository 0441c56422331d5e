package domain

import "time"

// OrderStatus описывает жизненный цикл заказа на витрине.
// Переходами управляет внешний сервис обработки заказов; ядро лишь
// валидирует значение и проецирует его на прогресс.
type OrderStatus string

const (
	// OrderStatusPending — заказ оформлен, но рынок его ещё не подтвердил.
	OrderStatusPending OrderStatus = "pending"
	// OrderStatusConfirmed — рынок принял заказ.
	OrderStatusConfirmed OrderStatus = "confirmed"
	// OrderStatusProcessing — производители собирают заказ.
	OrderStatusProcessing OrderStatus = "processing"
	// OrderStatusReady — заказ передан в доставку либо готов к выдаче.
	OrderStatusReady OrderStatus = "ready"
	// OrderStatusCompleted — заказ доставлен или забран клиентом.
	OrderStatusCompleted OrderStatus = "completed"
	// OrderStatusCancelled — заказ отменён до завершения цикла.
	OrderStatusCancelled OrderStatus = "cancelled"
)

// Valid проверяет, что статус относится к шести поддерживаемым значениям.
func (s OrderStatus) Valid() bool {
	switch s {
	case OrderStatusPending, OrderStatusConfirmed, OrderStatusProcessing,
		OrderStatusReady, OrderStatusCompleted, OrderStatusCancelled:
		return true
	default:
		return false
	}
}

// Order — неизменяемый снимок корзины и выбора оформления в момент
// подтверждения покупки. После создания меняется только Status (его
// обновляет внешний сервис обработки заказов).
type Order struct {
	ID         string
	CustomerID string
	Status     OrderStatus
	// Lines — глубокая копия строк корзины на момент снимка.
	Lines []CartLine
	// Суммы фиксируются при создании и далее не пересчитываются,
	// даже если цены каталога изменятся.
	SubtotalMinor    int64
	DeliveryFeeMinor int64
	TotalMinor       int64
	Method           DeliveryMethod
	Address          *Address
	Slot             *PickupSlot
	PaymentMethodID  string
	Note             string
	Version          int64
	CreatedAt        time.Time
	UpdatedAt        time.Time
}

// ValidateInvariants проверяет базовые инварианты снимка и возвращает
// список замечаний.
func (o *Order) ValidateInvariants() []error {
	var errs []error

	if o.CustomerID == "" {
		errs = append(errs, ErrCustomerRequired)
	}
	if len(o.Lines) == 0 {
		errs = append(errs, ErrEmptyCart)
	}
	if !o.Status.Valid() {
		errs = append(errs, ErrInvalidStatus)
	}
	if !o.Method.Valid() {
		errs = append(errs, ErrInvalidDeliveryMethod)
	}
	if o.PaymentMethodID == "" {
		errs = append(errs, ErrMissingPayment)
	}
	switch o.Method {
	case DeliveryMethodDelivery:
		if o.Address == nil {
			errs = append(errs, ErrMissingDeliveryTarget)
		}
	case DeliveryMethodPickup:
		if o.Slot == nil {
			errs = append(errs, ErrMissingDeliveryTarget)
		}
	}

	// Сверяем замороженный total с суммой строк плюс доставка.
	var calc int64
	for _, line := range o.Lines {
		if line.Qty <= 0 {
			errs = append(errs, ErrInvalidQuantity)
		}
		if line.PriceMinor < 0 {
			errs = append(errs, ErrInvalidPrice)
		}
		calc += int64(line.Qty) * line.PriceMinor
	}
	if calc != o.SubtotalMinor || o.SubtotalMinor+o.DeliveryFeeMinor != o.TotalMinor {
		errs = append(errs, ErrTotalMismatch)
	}

	return errs
}
