package domain

import "time"

// CatalogSource поставляет read-only каталог рынка. Ядро витрины
// никогда не создаёт, не переоценивает и не мутирует товары.
type CatalogSource interface {
	Products() []Product
	ProductByID(id string) (Product, error)
	ProductsByCategory(category string) []Product
	ProductsByProducer(producerID string) []Product
	Producers() []Producer
	ProducerByID(id string) (Producer, error)
	Categories() []Category
	// Search выполняет регистронезависимый substring-поиск по трём
	// коллекциям сразу.
	Search(query string) SearchResult
}

// SearchResult — результат поиска по каталогу.
type SearchResult struct {
	Products   []Product
	Producers  []Producer
	Categories []Category
}

// AccountProvider поставляет конечные списки сохранённых адресов,
// способов оплаты и слотов самовывоза, против которых валидируется
// оформление заказа.
type AccountProvider interface {
	Addresses(customerID string) []Address
	AddressByID(customerID, addressID string) (Address, error)
	PaymentMethods(customerID string) []PaymentMethod
	PaymentMethodByID(customerID, paymentID string) (PaymentMethod, error)
	PickupSlots() []PickupSlot
	PickupSlotByID(slotID string) (PickupSlot, error)
	Favorites(customerID string) []string
	// ToggleFavorite переключает товар в избранном и возвращает
	// актуальное состояние (true — товар теперь в избранном).
	ToggleFavorite(customerID, productID string) bool
}

// CartStore хранит активные корзины по клиентам.
type CartStore interface {
	// Get возвращает корзину клиента или ErrCartNotFound.
	Get(customerID string) (*Cart, error)
	// Save перезаписывает корзину клиента.
	Save(cart *Cart) error
	// Delete удаляет корзину; удаление отсутствующей — no-op.
	Delete(customerID string) error
}

// OrderRepository описывает требования к хранилищу заказов.
type OrderRepository interface {
	// Create сохраняет новый заказ. Возвращает ошибку, если запись с таким ID уже существует.
	Create(order Order) error
	// Get возвращает заказ по идентификатору или ErrOrderNotFound, если его нет.
	Get(id string) (Order, error)
	// ListByCustomer возвращает заказы клиента с опциональным ограничением на количество.
	ListByCustomer(customerID string, limit int) ([]Order, error)
	// Save применяет обновления к заказу с учётом optimistic locking.
	Save(order Order) error
}

// TimelineRepository хранит события жизненного цикла заказа.
type TimelineRepository interface {
	Append(event TimelineEvent) error
	List(orderID string) ([]TimelineEvent, error)
}

// IdempotencyRepository хранит состояние обработки запросов по idempotency-key.
type IdempotencyRepository interface {
	CreateProcessing(key, requestHash string, ttlAt time.Time) (IdempotencyRecord, error)
	Get(key string) (IdempotencyRecord, error)
	MarkDone(key string, responseBody []byte, httpStatus int) error
	MarkFailed(key string, responseBody []byte, httpStatus int) error
	DeleteExpired(before time.Time, limit int) (int, error)
}

// EventPublisher передаёт события заказов внешним потребителям.
// Публикация best-effort: ошибка логируется вызывающей стороной и не
// доходит до клиента витрины.
type EventPublisher interface {
	PublishEvent(topic string, key string, event interface{}) error
}
