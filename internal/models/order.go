package models

import (
	"time"
)

type Order struct {
	ID            string    `json:"id" gorm:"primaryKey"`
	ClientID      string    `json:"clienteId" gorm:"not null;index"`
	IssueDate     string    `json:"emissao" gorm:"not null"`
	Status        string    `json:"situacao" gorm:"default:'PENDENTE'"` // PENDENTE, CONCLUIDO, CANCELADO
	TotalDiscount float64   `json:"descontoTotal"`
	TotalAmount   float64   `json:"totalPedido"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
}

type OrderStatus string

const (
	OrderPending   OrderStatus = "PENDENTE"
	OrderCompleted OrderStatus = "CONCLUIDO"
	OrderCancelled OrderStatus = "CANCELADO"
)
