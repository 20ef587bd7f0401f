package models

import (
	"time"
)

type Client struct {
	ID        string    `json:"id" gorm:"primaryKey"`
	Name      string    `json:"nome" gorm:"not null"`
	Kind      string    `json:"tipo" gorm:"not null;default:'FISICA'"`
	CPF       string    `json:"cpf"`
	CNPJ      string    `json:"cnpj"`
	Status    string    `json:"situacao" gorm:"default:'ATIVO'"`
	Address   string    `json:"endereco"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

type ClientKind string

const (
	ClientIndividual ClientKind = "FISICA"
	ClientCompany    ClientKind = "JURIDICA"
)

type ClientStatus string

const (
	ClientActive   ClientStatus = "ATIVO"
	ClientInactive ClientStatus = "INATIVO"
)

// NormalizeTaxID keeps only the tax id that matches the client kind:
// an individual carries a CPF, a company a CNPJ. The other field is
// cleared so the two are never populated at the same time.
func (c *Client) NormalizeTaxID() {
	switch ClientKind(c.Kind) {
	case ClientIndividual:
		c.CNPJ = ""
	case ClientCompany:
		c.CPF = ""
	}
}
