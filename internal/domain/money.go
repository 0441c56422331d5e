package domain

import "fmt"

// Currency — единственная валюта витрины.
const Currency = "EUR"

// DeliveryFeeMinor — фиксированная стоимость доставки на дом в центах.
const DeliveryFeeMinor int64 = 250

// FormatMinor переводит цену в центах в строку вида "4.95".
// Используется только на границе представления; вся арифметика
// остаётся целочисленной.
func FormatMinor(minor int64) string {
	sign := ""
	if minor < 0 {
		sign = "-"
		minor = -minor
	}
	return fmt.Sprintf("%s%d.%02d", sign, minor/100, minor%100)
}
