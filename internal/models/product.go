package models

import (
	"time"
)

type Product struct {
	ID          string    `json:"id" gorm:"primaryKey"`
	Name        string    `json:"nome" gorm:"not null"`
	Description string    `json:"descricao" gorm:"not null;type:text"`
	Unit        string    `json:"unidade" gorm:"default:'UND'"` // UND, KG, LT
	Price       float64   `json:"preco" gorm:"not null"`
	Status      string    `json:"situacao" gorm:"default:'ATIVO'"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

type ProductUnit string

const (
	UnitPiece ProductUnit = "UND"
	UnitKilo  ProductUnit = "KG"
	UnitLiter ProductUnit = "LT"
)

type ProductStatus string

const (
	ProductActive   ProductStatus = "ATIVO"
	ProductInactive ProductStatus = "INATIVO"
)
