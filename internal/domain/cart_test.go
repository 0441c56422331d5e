package domain_test

import (
	"testing"

	"github.com/marcheapp/storefront/internal/domain"
)

// helper для строки корзины с ценой в центах.
func line(productID string, priceMinor int64) domain.CartLine {
	return domain.CartLine{
		ProductID:  productID,
		Name:       "Produit " + productID,
		PriceMinor: priceMinor,
		Unit:       "kg",
	}
}

func TestCartAddOrIncrement(t *testing.T) {
	cart := domain.NewCart("customer-1")

	cart.AddOrIncrement(line("p1", 495), 1)
	cart.AddOrIncrement(line("p1", 495), 2)

	lines := cart.Lines()
	if len(lines) != 1 {
		t.Fatalf("expected single line per product, got %d", len(lines))
	}
	if lines[0].Qty != 3 {
		t.Fatalf("expected qty 3, got %d", lines[0].Qty)
	}
}

func TestCartAddOrIncrement_NegativeDelta(t *testing.T) {
	cart := domain.NewCart("customer-1")

	// Negative delta on a nonexistent line is a no-op.
	cart.AddOrIncrement(line("p1", 495), -1)
	if cart.Len() != 0 {
		t.Fatalf("expected empty cart, got %d lines", cart.Len())
	}

	cart.AddOrIncrement(line("p1", 495), 2)
	cart.AddOrIncrement(line("p1", 495), -1)
	if got := cart.Lines()[0].Qty; got != 1 {
		t.Fatalf("expected qty 1 after decrement, got %d", got)
	}

	// Decrement to zero removes the line entirely.
	cart.AddOrIncrement(line("p1", 495), -1)
	if cart.Len() != 0 {
		t.Fatalf("expected line removed at qty 0, got %d lines", cart.Len())
	}
}

func TestCartSetQuantity(t *testing.T) {
	cases := []struct {
		name    string
		prepare func(c *domain.Cart)
		qty     int32
		wantLen int
		wantQty int32
	}{
		{
			name:    "create with given quantity on absent line",
			prepare: func(c *domain.Cart) {},
			qty:     4,
			wantLen: 1,
			wantQty: 4,
		},
		{
			name: "set exact quantity on existing line",
			prepare: func(c *domain.Cart) {
				c.AddOrIncrement(line("p1", 495), 2)
			},
			qty:     7,
			wantLen: 1,
			wantQty: 7,
		},
		{
			name: "quantity below one removes the line",
			prepare: func(c *domain.Cart) {
				c.AddOrIncrement(line("p1", 495), 2)
			},
			qty:     0,
			wantLen: 0,
		},
		{
			name:    "quantity below one on absent line is a no-op",
			prepare: func(c *domain.Cart) {},
			qty:     -3,
			wantLen: 0,
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			cart := domain.NewCart("customer-1")
			tc.prepare(cart)
			cart.SetQuantity(line("p1", 495), tc.qty)

			if cart.Len() != tc.wantLen {
				t.Fatalf("expected %d lines, got %d", tc.wantLen, cart.Len())
			}
			if tc.wantLen > 0 && cart.Lines()[0].Qty != tc.wantQty {
				t.Fatalf("expected qty %d, got %d", tc.wantQty, cart.Lines()[0].Qty)
			}
		})
	}
}

func TestCartRemoveLine_Idempotent(t *testing.T) {
	cart := domain.NewCart("customer-1")
	cart.AddOrIncrement(line("p1", 495), 1)

	cart.RemoveLine("p1")
	cart.RemoveLine("p1")
	cart.RemoveLine("missing")

	if cart.Len() != 0 {
		t.Fatalf("expected empty cart, got %d lines", cart.Len())
	}
}

// Для любой последовательности операций корзина не хранит строк с qty <= 0.
func TestCartNeverHoldsNonPositiveQty(t *testing.T) {
	cart := domain.NewCart("customer-1")

	ops := []func(){
		func() { cart.AddOrIncrement(line("p1", 495), 2) },
		func() { cart.AddOrIncrement(line("p2", 650), -5) },
		func() { cart.SetQuantity(line("p1", 495), -1) },
		func() { cart.SetQuantity(line("p2", 650), 3) },
		func() { cart.AddOrIncrement(line("p2", 650), -2) },
		func() { cart.AddOrIncrement(line("p2", 650), -2) },
		func() { cart.RemoveLine("p1") },
		func() { cart.SetQuantity(line("p3", 120), 1) },
		func() { cart.AddOrIncrement(line("p3", 120), -1) },
	}

	for i, op := range ops {
		op()
		for _, l := range cart.Lines() {
			if l.Qty <= 0 {
				t.Fatalf("after op %d line %s has qty %d", i, l.ProductID, l.Qty)
			}
		}
	}
}

func TestCartTotals(t *testing.T) {
	cart := domain.NewCart("customer-1")
	// Пример из ТЗ: 4.95 x 2 + 6.50 x 1.
	cart.AddOrIncrement(line("pA", 495), 2)
	cart.AddOrIncrement(line("pB", 650), 1)

	if got := cart.SubtotalMinor(); got != 1640 {
		t.Fatalf("expected subtotal 1640, got %d", got)
	}
	if got := cart.TotalMinor(domain.DeliveryMethodDelivery); got != 1890 {
		t.Fatalf("expected delivery total 1890, got %d", got)
	}
	if got := cart.TotalMinor(domain.DeliveryMethodPickup); got != 1640 {
		t.Fatalf("expected pickup total 1640, got %d", got)
	}

	// total(delivery) - total(pickup) == delivery fee constant.
	diff := cart.TotalMinor(domain.DeliveryMethodDelivery) - cart.TotalMinor(domain.DeliveryMethodPickup)
	if diff != domain.DeliveryFeeMinor {
		t.Fatalf("expected fee diff %d, got %d", domain.DeliveryFeeMinor, diff)
	}

	// Subtotal is idempotent under repeated calls with no mutation.
	if cart.SubtotalMinor() != cart.SubtotalMinor() {
		t.Fatal("subtotal must be stable without mutation")
	}
}

func TestCartClone_Isolation(t *testing.T) {
	cart := domain.NewCart("customer-1")
	cart.AddOrIncrement(line("p1", 495), 2)

	clone := cart.Clone()
	cart.SetQuantity(line("p1", 495), 9)
	cart.AddOrIncrement(line("p2", 650), 1)

	if clone.Len() != 1 {
		t.Fatalf("clone must keep 1 line, got %d", clone.Len())
	}
	if got := clone.Lines()[0].Qty; got != 2 {
		t.Fatalf("clone qty changed after source mutation: %d", got)
	}
}

func TestFormatMinor(t *testing.T) {
	cases := []struct {
		minor int64
		want  string
	}{
		{1640, "16.40"},
		{1890, "18.90"},
		{495, "4.95"},
		{0, "0.00"},
		{5, "0.05"},
		{-250, "-2.50"},
	}
	for _, tc := range cases {
		if got := domain.FormatMinor(tc.minor); got != tc.want {
			t.Fatalf("FormatMinor(%d) = %q, want %q", tc.minor, got, tc.want)
		}
	}
}
