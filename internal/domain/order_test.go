package domain_test

import (
	"testing"
	"time"

	"github.com/marcheapp/storefront/internal/domain"
)

// helper для валидного снимка заказа с одной строкой.
func makeOrder() domain.Order {
	now := time.Now().UTC()
	return domain.Order{
		ID:         "order-1",
		CustomerID: "customer-1",
		Status:     domain.OrderStatusPending,
		Lines: []domain.CartLine{
			{ProductID: "p1", Name: "Tomates", PriceMinor: 495, Unit: "kg", Qty: 2},
		},
		SubtotalMinor:    990,
		DeliveryFeeMinor: 250,
		TotalMinor:       1240,
		Method:           domain.DeliveryMethodDelivery,
		Address:          &domain.Address{ID: "a1", Street: "15 Rue des Oliviers", City: "Nice", ZipCode: "06000"},
		PaymentMethodID:  "pm1",
		Version:          0,
		CreatedAt:        now,
		UpdatedAt:        now,
	}
}

func TestOrderValidateInvariants_Ok(t *testing.T) {
	order := makeOrder()
	if errs := order.ValidateInvariants(); len(errs) != 0 {
		t.Fatalf("expected no validation errors, got %v", errs)
	}
}

func TestOrderValidateInvariants_Errors(t *testing.T) {
	cases := []struct {
		name string
		mut  func(o *domain.Order)
	}{
		{
			name: "no customer",
			mut: func(o *domain.Order) {
				o.CustomerID = ""
			},
		},
		{
			name: "no lines",
			mut: func(o *domain.Order) {
				o.Lines = nil
			},
		},
		{
			name: "unknown status",
			mut: func(o *domain.Order) {
				o.Status = "shipped"
			},
		},
		{
			name: "delivery without address",
			mut: func(o *domain.Order) {
				o.Address = nil
			},
		},
		{
			name: "pickup without slot",
			mut: func(o *domain.Order) {
				o.Method = domain.DeliveryMethodPickup
			},
		},
		{
			name: "no payment",
			mut: func(o *domain.Order) {
				o.PaymentMethodID = ""
			},
		},
		{
			name: "qty invalid",
			mut: func(o *domain.Order) {
				o.Lines[0].Qty = 0
			},
		},
		{
			name: "price invalid",
			mut: func(o *domain.Order) {
				o.Lines[0].PriceMinor = -5
			},
		},
		{
			name: "total mismatch",
			mut: func(o *domain.Order) {
				o.TotalMinor = 9999
			},
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			order := makeOrder()
			tc.mut(&order)

			if len(order.ValidateInvariants()) == 0 {
				t.Fatalf("expected validation errors for case %s", tc.name)
			}
		})
	}
}

func TestCheckoutSelectionValidate(t *testing.T) {
	address := &domain.Address{ID: "a1"}
	slot := &domain.PickupSlot{ID: "s1"}
	payment := &domain.PaymentMethod{ID: "pm1", Type: domain.PaymentMethodCard}

	cases := []struct {
		name      string
		selection domain.CheckoutSelection
		wantErr   error
	}{
		{
			name:      "delivery with address and payment",
			selection: domain.CheckoutSelection{Method: domain.DeliveryMethodDelivery, Address: address, Payment: payment},
		},
		{
			name:      "pickup with slot and payment",
			selection: domain.CheckoutSelection{Method: domain.DeliveryMethodPickup, Slot: slot, Payment: payment},
		},
		{
			name:      "delivery without address",
			selection: domain.CheckoutSelection{Method: domain.DeliveryMethodDelivery, Payment: payment},
			wantErr:   domain.ErrMissingDeliveryTarget,
		},
		{
			name:      "pickup without slot",
			selection: domain.CheckoutSelection{Method: domain.DeliveryMethodPickup, Payment: payment},
			wantErr:   domain.ErrMissingDeliveryTarget,
		},
		{
			name:      "no payment",
			selection: domain.CheckoutSelection{Method: domain.DeliveryMethodPickup, Slot: slot},
			wantErr:   domain.ErrMissingPayment,
		},
		{
			name:      "unknown method",
			selection: domain.CheckoutSelection{Method: "drone", Address: address, Payment: payment},
			wantErr:   domain.ErrInvalidDeliveryMethod,
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			err := tc.selection.Validate()
			if tc.wantErr == nil && err != nil {
				t.Fatalf("expected no error, got %v", err)
			}
			if tc.wantErr != nil && err != tc.wantErr {
				t.Fatalf("expected %v, got %v", tc.wantErr, err)
			}
		})
	}
}
