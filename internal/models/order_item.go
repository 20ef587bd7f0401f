package models

import (
	"time"
)

// OrderItem belongs to exactly one Order through the "sequencial" wire
// field, the only relational key the store carries. UnitPrice is a
// snapshot of the product price taken when the item was added; it is
// not live-linked to the catalog afterwards.
type OrderItem struct {
	ID        string    `json:"id" gorm:"primaryKey"`
	OrderID   string    `json:"sequencial" gorm:"not null;index"`
	ProductID string    `json:"produtoId" gorm:"not null"`
	Quantity  int       `json:"quantidade" gorm:"not null"`
	UnitPrice float64   `json:"valorUnitario" gorm:"not null"`
	Discount  float64   `json:"desconto"`
	Total     float64   `json:"total" gorm:"not null"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
