package domain

// DeliveryMethod — способ получения заказа.
type DeliveryMethod string

const (
	// DeliveryMethodDelivery — доставка на дом по сохранённому адресу.
	DeliveryMethodDelivery DeliveryMethod = "delivery"
	// DeliveryMethodPickup — самовывоз с рынка в выбранный слот.
	DeliveryMethodPickup DeliveryMethod = "pickup"
)

// Valid проверяет, что способ доставки поддерживается.
func (m DeliveryMethod) Valid() bool {
	return m == DeliveryMethodDelivery || m == DeliveryMethodPickup
}

// Address — сохранённый адрес доставки клиента.
type Address struct {
	ID        string
	Street    string
	City      string
	ZipCode   string
	IsDefault bool
}

// PickupSlot — слот самовывоза из конечного списка, который
// предоставляет рынок: место, дата и интервал времени.
type PickupSlot struct {
	ID        string
	Location  string
	Date      string
	TimeRange string
}

// PaymentMethodType — тип способа оплаты.
type PaymentMethodType string

const (
	PaymentMethodCard   PaymentMethodType = "card"
	PaymentMethodPayPal PaymentMethodType = "paypal"
)

// PaymentMethod — сохранённый способ оплаты клиента. Ядро проверяет
// только его наличие в списке; никакого обращения к платёжному
// провайдеру не происходит.
type PaymentMethod struct {
	ID        string
	Type      PaymentMethodType
	CardType  string
	LastFour  string
	IsDefault bool
}

// CheckoutSelection — выбор клиента на экране оформления: способ
// доставки, его цель (адрес или слот) и способ оплаты.
type CheckoutSelection struct {
	Method  DeliveryMethod
	Address *Address
	Slot    *PickupSlot
	Payment *PaymentMethod
	// Note — необязательная инструкция к заказу.
	Note string
}

// Validate проверяет полноту выбора до сборки снимка заказа.
func (s CheckoutSelection) Validate() error {
	if !s.Method.Valid() {
		return ErrInvalidDeliveryMethod
	}
	if s.Method == DeliveryMethodDelivery && s.Address == nil {
		return ErrMissingDeliveryTarget
	}
	if s.Method == DeliveryMethodPickup && s.Slot == nil {
		return ErrMissingDeliveryTarget
	}
	if s.Payment == nil {
		return ErrMissingPayment
	}
	return nil
}
