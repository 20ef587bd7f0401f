package services

import (
	"vendas_admin/internal/models"
	"vendas_admin/pkg/restapi"
)

type ProductService interface {
	List() ([]models.Product, error)
	Get(id string) (*models.Product, error)
	Create(product *models.Product) (*models.Product, error)
	Update(id string, product *models.Product) error
	Delete(id string) error
}

type productService struct {
	produtos restapi.ProdutoResource
}

func NewProductService(produtos restapi.ProdutoResource) ProductService {
	return &productService{produtos: produtos}
}

func (s *productService) List() ([]models.Product, error) {
	return s.produtos.List()
}

func (s *productService) Get(id string) (*models.Product, error) {
	return s.produtos.Get(id)
}

func (s *productService) Create(product *models.Product) (*models.Product, error) {
	if err := validateProduct(product); err != nil {
		return nil, err
	}
	return s.produtos.Create(product)
}

func (s *productService) Update(id string, product *models.Product) error {
	if err := validateProduct(product); err != nil {
		return err
	}
	return s.produtos.Update(id, product)
}

func (s *productService) Delete(id string) error {
	return s.produtos.Delete(id)
}

func validateProduct(product *models.Product) error {
	if product.Name == "" {
		return &ValidationError{Field: "nome", Message: "Nome é obrigatório."}
	}
	if product.Description == "" {
		return &ValidationError{Field: "descricao", Message: "Descrição é obrigatória."}
	}
	if product.Price < 0 {
		return &ValidationError{Field: "preco", Message: "Preço não pode ser negativo."}
	}

	if product.Unit == "" {
		product.Unit = string(models.UnitPiece)
	}
	if product.Status == "" {
		product.Status = string(models.ProductActive)
	}

	return nil
}
