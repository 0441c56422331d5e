package account

import "github.com/marcheapp/storefront/internal/domain"

// DemoCustomerID — клиент демо-окружения.
const DemoCustomerID = "1"

// NewSeeded возвращает Provider с данными демо-клиента: два адреса,
// карта и PayPal, слоты самовывоза на рынке.
func NewSeeded() *Provider {
	return NewProvider(
		WithAddresses(DemoCustomerID,
			domain.Address{ID: "1", Street: "15 Rue des Oliviers", City: "Nice", ZipCode: "06000", IsDefault: true},
			domain.Address{ID: "2", Street: "8 Avenue du Soleil", City: "Antibes", ZipCode: "06600"},
		),
		WithPaymentMethods(DemoCustomerID,
			domain.PaymentMethod{ID: "1", Type: domain.PaymentMethodCard, CardType: "Visa", LastFour: "4242", IsDefault: true},
			domain.PaymentMethod{ID: "2", Type: domain.PaymentMethodPayPal},
		),
		WithPickupSlots(
			domain.PickupSlot{ID: "1", Location: "Marché des Producteurs - Nice", Date: "Jeudi 22 Juin", TimeRange: "18:00 - 19:00"},
			domain.PickupSlot{ID: "2", Location: "Marché des Producteurs - Nice", Date: "Samedi 24 Juin", TimeRange: "10:00 - 11:00"},
			domain.PickupSlot{ID: "3", Location: "Marché des Producteurs - Antibes", Date: "Samedi 24 Juin", TimeRange: "09:00 - 10:00"},
		),
	)
}
