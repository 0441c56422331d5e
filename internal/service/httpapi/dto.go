package httpapi

import (
	"time"

	"github.com/marcheapp/storefront/internal/domain"
	"github.com/marcheapp/storefront/internal/service/orders"
)

// DTO слоя API. Деньги отдаются парой полей: *_minor для вычислений на
// клиенте и отформатированная строка для отображения.

type productDTO struct {
	ID          string  `json:"id"`
	Name        string  `json:"name"`
	Description string  `json:"description,omitempty"`
	PriceMinor  int64   `json:"price_minor"`
	Price       string  `json:"price"`
	Unit        string  `json:"unit"`
	Category    string  `json:"category"`
	ProducerID  string  `json:"producer_id"`
	ImageURL    string  `json:"image_url,omitempty"`
	InStock     bool    `json:"in_stock"`
	IsOrganic   bool    `json:"is_organic"`
	IsLocal     bool    `json:"is_local"`
	Rating      float64 `json:"rating"`
}

type producerDTO struct {
	ID          string   `json:"id"`
	Name        string   `json:"name"`
	Description string   `json:"description,omitempty"`
	Location    string   `json:"location"`
	DistanceKm  float64  `json:"distance_km"`
	Rating      float64  `json:"rating"`
	Categories  []string `json:"categories"`
	ImageURL    string   `json:"image_url,omitempty"`
}

type categoryDTO struct {
	ID            string `json:"id"`
	Name          string `json:"name"`
	ImageURL      string `json:"image_url,omitempty"`
	ProductsCount int    `json:"products_count"`
}

type searchResultDTO struct {
	Products   []productDTO  `json:"products"`
	Producers  []producerDTO `json:"producers"`
	Categories []categoryDTO `json:"categories"`
}

type cartLineDTO struct {
	ProductID      string `json:"product_id"`
	Name           string `json:"name"`
	Unit           string `json:"unit"`
	Qty            int32  `json:"qty"`
	PriceMinor     int64  `json:"price_minor"`
	Price          string `json:"price"`
	LineTotalMinor int64  `json:"line_total_minor"`
	LineTotal      string `json:"line_total"`
}

type cartDTO struct {
	CustomerID         string        `json:"customer_id"`
	Lines              []cartLineDTO `json:"lines"`
	TotalQty           int32         `json:"total_qty"`
	SubtotalMinor      int64         `json:"subtotal_minor"`
	Subtotal           string        `json:"subtotal"`
	DeliveryFeeMinor   int64         `json:"delivery_fee_minor"`
	DeliveryFee        string        `json:"delivery_fee"`
	TotalDeliveryMinor int64         `json:"total_delivery_minor"`
	TotalDelivery      string        `json:"total_delivery"`
	TotalPickupMinor   int64         `json:"total_pickup_minor"`
	TotalPickup        string        `json:"total_pickup"`
}

type addressDTO struct {
	ID        string `json:"id"`
	Street    string `json:"street"`
	City      string `json:"city"`
	ZipCode   string `json:"zip_code"`
	IsDefault bool   `json:"is_default"`
}

type pickupSlotDTO struct {
	ID        string `json:"id"`
	Location  string `json:"location"`
	Date      string `json:"date"`
	TimeRange string `json:"time_range"`
}

type paymentMethodDTO struct {
	ID        string `json:"id"`
	Type      string `json:"type"`
	CardType  string `json:"card_type,omitempty"`
	LastFour  string `json:"last_four,omitempty"`
	IsDefault bool   `json:"is_default"`
}

type milestoneDTO struct {
	Status  string `json:"status"`
	Label   string `json:"label"`
	Reached bool   `json:"reached"`
}

type progressDTO struct {
	Label      string         `json:"label"`
	Percent    int            `json:"percent"`
	Cancelled  bool           `json:"cancelled"`
	Milestones []milestoneDTO `json:"milestones"`
}

type timelineEventDTO struct {
	Type     string    `json:"type"`
	Reason   string    `json:"reason,omitempty"`
	Occurred time.Time `json:"occurred"`
}

type orderDTO struct {
	ID               string             `json:"id"`
	CustomerID       string             `json:"customer_id"`
	Status           string             `json:"status"`
	Lines            []cartLineDTO      `json:"lines"`
	SubtotalMinor    int64              `json:"subtotal_minor"`
	Subtotal         string             `json:"subtotal"`
	DeliveryFeeMinor int64              `json:"delivery_fee_minor"`
	DeliveryFee      string             `json:"delivery_fee"`
	TotalMinor       int64              `json:"total_minor"`
	Total            string             `json:"total"`
	Method           string             `json:"method"`
	Address          *addressDTO        `json:"address,omitempty"`
	Slot             *pickupSlotDTO     `json:"pickup_slot,omitempty"`
	PaymentMethodID  string             `json:"payment_method_id"`
	Note             string             `json:"note,omitempty"`
	Progress         progressDTO        `json:"progress"`
	Timeline         []timelineEventDTO `json:"timeline,omitempty"`
	CreatedAt        time.Time          `json:"created_at"`
	UpdatedAt        time.Time          `json:"updated_at"`
}

func toProductDTO(p domain.Product) productDTO {
	return productDTO{
		ID:          p.ID,
		Name:        p.Name,
		Description: p.Description,
		PriceMinor:  p.PriceMinor,
		Price:       domain.FormatMinor(p.PriceMinor),
		Unit:        p.Unit,
		Category:    p.Category,
		ProducerID:  p.ProducerID,
		ImageURL:    p.ImageURL,
		InStock:     p.InStock,
		IsOrganic:   p.IsOrganic,
		IsLocal:     p.IsLocal,
		Rating:      p.Rating,
	}
}

func toProductDTOs(list []domain.Product) []productDTO {
	out := make([]productDTO, 0, len(list))
	for _, p := range list {
		out = append(out, toProductDTO(p))
	}
	return out
}

func toProducerDTO(p domain.Producer) producerDTO {
	return producerDTO{
		ID:          p.ID,
		Name:        p.Name,
		Description: p.Description,
		Location:    p.Location,
		DistanceKm:  p.DistanceKm,
		Rating:      p.Rating,
		Categories:  p.Categories,
		ImageURL:    p.ImageURL,
	}
}

func toProducerDTOs(list []domain.Producer) []producerDTO {
	out := make([]producerDTO, 0, len(list))
	for _, p := range list {
		out = append(out, toProducerDTO(p))
	}
	return out
}

func toCategoryDTOs(list []domain.Category) []categoryDTO {
	out := make([]categoryDTO, 0, len(list))
	for _, c := range list {
		out = append(out, categoryDTO{ID: c.ID, Name: c.Name, ImageURL: c.ImageURL, ProductsCount: c.ProductsCount})
	}
	return out
}

func toCartLineDTOs(lines []domain.CartLine) []cartLineDTO {
	out := make([]cartLineDTO, 0, len(lines))
	for _, line := range lines {
		lineTotal := int64(line.Qty) * line.PriceMinor
		out = append(out, cartLineDTO{
			ProductID:      line.ProductID,
			Name:           line.Name,
			Unit:           line.Unit,
			Qty:            line.Qty,
			PriceMinor:     line.PriceMinor,
			Price:          domain.FormatMinor(line.PriceMinor),
			LineTotalMinor: lineTotal,
			LineTotal:      domain.FormatMinor(lineTotal),
		})
	}
	return out
}

func toCartDTO(cart *domain.Cart) cartDTO {
	subtotal := cart.SubtotalMinor()
	fee := domain.DeliveryFeeMinor
	return cartDTO{
		CustomerID:         cart.CustomerID,
		Lines:              toCartLineDTOs(cart.Lines()),
		TotalQty:           cart.TotalQty(),
		SubtotalMinor:      subtotal,
		Subtotal:           domain.FormatMinor(subtotal),
		DeliveryFeeMinor:   fee,
		DeliveryFee:        domain.FormatMinor(fee),
		TotalDeliveryMinor: subtotal + fee,
		TotalDelivery:      domain.FormatMinor(subtotal + fee),
		TotalPickupMinor:   subtotal,
		TotalPickup:        domain.FormatMinor(subtotal),
	}
}

func toAddressDTO(a domain.Address) addressDTO {
	return addressDTO{ID: a.ID, Street: a.Street, City: a.City, ZipCode: a.ZipCode, IsDefault: a.IsDefault}
}

func toPickupSlotDTO(s domain.PickupSlot) pickupSlotDTO {
	return pickupSlotDTO{ID: s.ID, Location: s.Location, Date: s.Date, TimeRange: s.TimeRange}
}

func toPaymentMethodDTO(p domain.PaymentMethod) paymentMethodDTO {
	return paymentMethodDTO{
		ID:        p.ID,
		Type:      string(p.Type),
		CardType:  p.CardType,
		LastFour:  p.LastFour,
		IsDefault: p.IsDefault,
	}
}

func toProgressDTO(p domain.Projection) progressDTO {
	milestones := make([]milestoneDTO, 0, len(p.Milestones))
	for _, m := range p.Milestones {
		milestones = append(milestones, milestoneDTO{Status: string(m.Status), Label: m.Label, Reached: m.Reached})
	}
	return progressDTO{
		Label:      p.Label,
		Percent:    p.Percent,
		Cancelled:  p.Cancelled,
		Milestones: milestones,
	}
}

func toOrderDTO(order domain.Order, projection domain.Projection, timeline []domain.TimelineEvent) orderDTO {
	dto := orderDTO{
		ID:               order.ID,
		CustomerID:       order.CustomerID,
		Status:           string(order.Status),
		Lines:            toCartLineDTOs(order.Lines),
		SubtotalMinor:    order.SubtotalMinor,
		Subtotal:         domain.FormatMinor(order.SubtotalMinor),
		DeliveryFeeMinor: order.DeliveryFeeMinor,
		DeliveryFee:      domain.FormatMinor(order.DeliveryFeeMinor),
		TotalMinor:       order.TotalMinor,
		Total:            domain.FormatMinor(order.TotalMinor),
		Method:           string(order.Method),
		PaymentMethodID:  order.PaymentMethodID,
		Note:             order.Note,
		Progress:         toProgressDTO(projection),
		CreatedAt:        order.CreatedAt,
		UpdatedAt:        order.UpdatedAt,
	}

	if order.Address != nil {
		addr := toAddressDTO(*order.Address)
		dto.Address = &addr
	}
	if order.Slot != nil {
		slot := toPickupSlotDTO(*order.Slot)
		dto.Slot = &slot
	}
	for _, event := range timeline {
		dto.Timeline = append(dto.Timeline, timelineEventDTO{Type: event.Type, Reason: event.Reason, Occurred: event.Occurred})
	}

	return dto
}

func toOrderViewDTO(view orders.OrderView) orderDTO {
	return toOrderDTO(view.Order, view.Projection, view.Timeline)
}
