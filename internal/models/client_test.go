package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalizeTaxIDKeepsOnlyActiveField(t *testing.T) {
	client := Client{
		Kind: string(ClientIndividual),
		CPF:  "12345678901",
		CNPJ: "12345678000199",
	}

	client.NormalizeTaxID()
	assert.Equal(t, "12345678901", client.CPF)
	assert.Empty(t, client.CNPJ)

	// switching kind clears the now-inactive CPF
	client.Kind = string(ClientCompany)
	client.CNPJ = "12345678000199"
	client.NormalizeTaxID()
	assert.Empty(t, client.CPF)
	assert.Equal(t, "12345678000199", client.CNPJ)
}
