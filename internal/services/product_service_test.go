package services

import (
	"errors"
	"testing"

	"vendas_admin/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubProdutoResource struct {
	created *models.Product
	calls   int
}

func (s *stubProdutoResource) List() ([]models.Product, error)     { s.calls++; return nil, nil }
func (s *stubProdutoResource) Get(string) (*models.Product, error) { s.calls++; return nil, nil }

func (s *stubProdutoResource) Create(product *models.Product) (*models.Product, error) {
	s.calls++
	s.created = product
	return product, nil
}

func (s *stubProdutoResource) Update(string, *models.Product) error { s.calls++; return nil }
func (s *stubProdutoResource) Delete(string) error                  { s.calls++; return nil }

func TestProductCreateAppliesDefaults(t *testing.T) {
	stub := &stubProdutoResource{}
	service := NewProductService(stub)

	created, err := service.Create(&models.Product{Name: "Café torrado", Description: "500g", Price: 24.9})
	require.NoError(t, err)

	assert.Equal(t, string(models.UnitPiece), created.Unit)
	assert.Equal(t, string(models.ProductActive), created.Status)
}

func TestProductCreateValidation(t *testing.T) {
	stub := &stubProdutoResource{}
	service := NewProductService(stub)

	var validationErr *ValidationError

	_, err := service.Create(&models.Product{Description: "500g"})
	require.True(t, errors.As(err, &validationErr))
	assert.Equal(t, "nome", validationErr.Field)

	_, err = service.Create(&models.Product{Name: "Café"})
	require.True(t, errors.As(err, &validationErr))
	assert.Equal(t, "descricao", validationErr.Field)

	_, err = service.Create(&models.Product{Name: "Café", Description: "500g", Price: -1})
	require.True(t, errors.As(err, &validationErr))
	assert.Equal(t, "preco", validationErr.Field)

	assert.Zero(t, stub.calls)
}
