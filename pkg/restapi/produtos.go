package restapi

import (
	"net/http"

	"vendas_admin/internal/models"
)

type ProdutoResource interface {
	List() ([]models.Product, error)
	Get(id string) (*models.Product, error)
	Create(product *models.Product) (*models.Product, error)
	Update(id string, product *models.Product) error
	Delete(id string) error
}

type produtoResource struct {
	api *API
}

func NewProdutoResource(api *API) ProdutoResource {
	return &produtoResource{api: api}
}

func (r *produtoResource) List() ([]models.Product, error) {
	var products []models.Product
	if err := r.api.do(http.MethodGet, "/produtos", nil, nil, &products); err != nil {
		return nil, err
	}
	return products, nil
}

func (r *produtoResource) Get(id string) (*models.Product, error) {
	var product models.Product
	if err := r.api.do(http.MethodGet, "/produtos/"+id, nil, nil, &product); err != nil {
		return nil, err
	}
	return &product, nil
}

func (r *produtoResource) Create(product *models.Product) (*models.Product, error) {
	var created models.Product
	if err := r.api.do(http.MethodPost, "/produtos", nil, product, &created); err != nil {
		return nil, err
	}
	return &created, nil
}

func (r *produtoResource) Update(id string, product *models.Product) error {
	return r.api.do(http.MethodPut, "/produtos/"+id, nil, product, nil)
}

func (r *produtoResource) Delete(id string) error {
	return r.api.do(http.MethodDelete, "/produtos/"+id, nil, nil, nil)
}
