package services

import (
	"vendas_admin/internal/models"
)

// LineTotal computes the amount of a single order line. The discount is
// not floored at zero: a discount larger than quantity*unitPrice yields
// a negative total.
func LineTotal(quantity int, unitPrice, discount float64) float64 {
	return float64(quantity)*unitPrice - discount
}

// RecomputeItems refreshes every item's total from its current inputs.
func RecomputeItems(items []models.OrderItem) []models.OrderItem {
	for i := range items {
		items[i].Total = LineTotal(items[i].Quantity, items[i].UnitPrice, items[i].Discount)
	}
	return items
}

// OrderTotals re-derives the aggregate discount and the grand total
// from the item list. Always a full recomputation over current state,
// never an incrementally maintained running total.
func OrderTotals(items []models.OrderItem) (totalDiscount, totalAmount float64) {
	for _, item := range items {
		totalDiscount += item.Discount
		totalAmount += item.Total
	}
	return totalDiscount, totalAmount
}
