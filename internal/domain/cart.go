package domain

// CartLine — одна строка корзины: товар и количество.
// Цена и название денормализованы, чтобы снимок заказа оставался
// самодостаточным даже при последующем изменении каталога.
type CartLine struct {
	ProductID string
	Name      string
	// PriceMinor — зафиксированная цена за единицу в центах.
	PriceMinor int64
	Unit       string
	// Qty — количество единиц, всегда >= 1 для хранимой строки.
	Qty int32
}

// Cart ведёт строки покупки активной сессии. Порядок добавления
// сохраняется для отображения; на суммы он не влияет. На один товар
// приходится не более одной строки.
//
// Корзина принадлежит одной сессии и мутируется одним актором,
// поэтому синхронизация здесь не нужна (её обеспечивает хранилище).
type Cart struct {
	CustomerID string
	lines      []CartLine
}

// NewCart создаёт пустую корзину клиента.
func NewCart(customerID string) *Cart {
	return &Cart{CustomerID: customerID}
}

// Lines возвращает копию строк в порядке добавления.
func (c *Cart) Lines() []CartLine {
	out := make([]CartLine, len(c.lines))
	copy(out, c.lines)
	return out
}

// Len возвращает число строк корзины.
func (c *Cart) Len() int { return len(c.lines) }

// TotalQty возвращает суммарное количество единиц по всем строкам.
func (c *Cart) TotalQty() int32 {
	var total int32
	for _, line := range c.lines {
		total += line.Qty
	}
	return total
}

// AddOrIncrement добавляет товар или меняет количество существующей
// строки на delta (delta может быть отрицательной). Строка с итоговым
// количеством <= 0 удаляется. Отрицательная delta по отсутствующей
// строке — no-op; при создании количество не опускается ниже 1.
func (c *Cart) AddOrIncrement(line CartLine, delta int32) {
	if line.ProductID == "" {
		return
	}

	for i := range c.lines {
		if c.lines[i].ProductID != line.ProductID {
			continue
		}
		next := c.lines[i].Qty + delta
		if next <= 0 {
			c.removeAt(i)
			return
		}
		c.lines[i].Qty = next
		return
	}

	if delta <= 0 {
		return
	}
	line.Qty = delta
	c.lines = append(c.lines, line)
}

// SetQuantity выставляет точное количество строки. Значение < 1
// удаляет строку. Для отсутствующей строки действует политика
// create-with-given-quantity: строка создаётся с переданным
// количеством, и операция никогда не завершается ошибкой.
func (c *Cart) SetQuantity(line CartLine, qty int32) {
	if line.ProductID == "" {
		return
	}

	for i := range c.lines {
		if c.lines[i].ProductID != line.ProductID {
			continue
		}
		if qty < 1 {
			c.removeAt(i)
			return
		}
		c.lines[i].Qty = qty
		return
	}

	if qty < 1 {
		return
	}
	line.Qty = qty
	c.lines = append(c.lines, line)
}

// RemoveLine удаляет строку товара. Удаление отсутствующей строки —
// no-op, не ошибка.
func (c *Cart) RemoveLine(productID string) {
	for i := range c.lines {
		if c.lines[i].ProductID == productID {
			c.removeAt(i)
			return
		}
	}
}

// Clear опустошает корзину.
func (c *Cart) Clear() {
	c.lines = nil
}

// SubtotalMinor пересчитывает сумму строк при каждом вызове.
// Кеширование не нужно: корзина — это десятки строк, не тысячи.
func (c *Cart) SubtotalMinor() int64 {
	var sum int64
	for _, line := range c.lines {
		sum += int64(line.Qty) * line.PriceMinor
	}
	return sum
}

// FeeMinor возвращает стоимость доставки для выбранного способа.
func FeeMinor(method DeliveryMethod) int64 {
	if method == DeliveryMethodDelivery {
		return DeliveryFeeMinor
	}
	return 0
}

// TotalMinor возвращает subtotal плюс стоимость доставки.
func (c *Cart) TotalMinor(method DeliveryMethod) int64 {
	return c.SubtotalMinor() + FeeMinor(method)
}

// Clone возвращает глубокую копию корзины. Используется сборщиком
// снимка заказа, чтобы дальнейшие мутации исходной корзины не
// затрагивали уже оформленный заказ.
func (c *Cart) Clone() *Cart {
	clone := NewCart(c.CustomerID)
	clone.lines = make([]CartLine, len(c.lines))
	copy(clone.lines, c.lines)
	return clone
}

func (c *Cart) removeAt(i int) {
	c.lines = append(c.lines[:i], c.lines[i+1:]...)
}
