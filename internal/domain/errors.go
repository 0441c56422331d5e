package domain

import "errors"

var (
	// Ошибка оформления заказа из пустой корзины.
	ErrEmptyCart = errors.New("cart must contain at least one line")
	// Ошибка отсутствия адреса (delivery) или слота самовывоза (pickup).
	ErrMissingDeliveryTarget = errors.New("delivery target is required")
	// Ошибка отсутствующего способа оплаты при оформлении.
	ErrMissingPayment = errors.New("payment method is required")
	// Ошибка отсутствующего идентификатора клиента.
	ErrCustomerRequired = errors.New("customer_id is required")
	// Ошибка при некорректном количестве в строке корзины (<= 0).
	ErrInvalidQuantity = errors.New("line qty must be greater than zero")
	// Ошибка отрицательной цены позиции.
	ErrInvalidPrice = errors.New("line price must be non-negative")
	// Ошибка несоответствия замороженного total и суммы строк плюс доставка.
	ErrTotalMismatch = errors.New("order total does not match lines sum plus delivery fee")
	// Ошибка неизвестного статуса заказа.
	ErrInvalidStatus = errors.New("unknown order status")
	// Ошибка неизвестного способа доставки.
	ErrInvalidDeliveryMethod = errors.New("unknown delivery method")

	// ErrProductNotFound возвращается каталогом для неизвестного товара.
	ErrProductNotFound = errors.New("product not found")
	// ErrProducerNotFound возвращается каталогом для неизвестного производителя.
	ErrProducerNotFound = errors.New("producer not found")
	// ErrProductUnavailable — товар есть в каталоге, но сейчас не в наличии.
	ErrProductUnavailable = errors.New("product is out of stock")

	// ErrAddressNotFound — выбранный адрес отсутствует среди сохранённых.
	ErrAddressNotFound = errors.New("address not found")
	// ErrPickupSlotNotFound — выбранный слот самовывоза не существует.
	ErrPickupSlotNotFound = errors.New("pickup slot not found")
	// ErrPaymentMethodNotFound — выбранный способ оплаты не существует.
	ErrPaymentMethodNotFound = errors.New("payment method not found")

	// ErrCartNotFound возвращается хранилищем, если корзина клиента не создавалась.
	ErrCartNotFound = errors.New("cart not found")
	// ErrOrderNotFound возвращается, если заказ не найден в репозитории.
	ErrOrderNotFound = errors.New("order not found")
	// ErrOrderVersionConflict сигнализирует о конфликте версий при сохранении.
	ErrOrderVersionConflict = errors.New("order version conflict")

	// ErrIdempotencyKeyRequired — пустой idempotency-key.
	ErrIdempotencyKeyRequired = errors.New("idempotency key is required")
	// ErrIdempotencyRequestHashRequired — пустой хеш тела запроса.
	ErrIdempotencyRequestHashRequired = errors.New("idempotency request hash is required")
	// ErrIdempotencyKeyAlreadyExists — ключ уже зарегистрирован.
	ErrIdempotencyKeyAlreadyExists = errors.New("idempotency key already exists")
	// ErrIdempotencyHashMismatch — ключ переиспользован с другим телом запроса.
	ErrIdempotencyHashMismatch = errors.New("idempotency key reused with different request")
	// ErrIdempotencyKeyNotFound — запись по ключу отсутствует.
	ErrIdempotencyKeyNotFound = errors.New("idempotency key not found")
)

// IsVersionConflict проверяет, является ли ошибка конфликтом версий.
func IsVersionConflict(err error) bool {
	return errors.Is(err, ErrOrderVersionConflict)
}
