package restapi

import (
	"net/http"

	"vendas_admin/internal/models"
)

type PedidoResource interface {
	List() ([]models.Order, error)
	Get(id string) (*models.Order, error)
	Create(order *models.Order) (*models.Order, error)
	Update(id string, order *models.Order) error
	Delete(id string) error
}

type pedidoResource struct {
	api *API
}

func NewPedidoResource(api *API) PedidoResource {
	return &pedidoResource{api: api}
}

func (r *pedidoResource) List() ([]models.Order, error) {
	var orders []models.Order
	if err := r.api.do(http.MethodGet, "/pedidos", nil, nil, &orders); err != nil {
		return nil, err
	}
	return orders, nil
}

func (r *pedidoResource) Get(id string) (*models.Order, error) {
	var order models.Order
	if err := r.api.do(http.MethodGet, "/pedidos/"+id, nil, nil, &order); err != nil {
		return nil, err
	}
	return &order, nil
}

func (r *pedidoResource) Create(order *models.Order) (*models.Order, error) {
	var created models.Order
	if err := r.api.do(http.MethodPost, "/pedidos", nil, order, &created); err != nil {
		return nil, err
	}
	return &created, nil
}

func (r *pedidoResource) Update(id string, order *models.Order) error {
	return r.api.do(http.MethodPut, "/pedidos/"+id, nil, order, nil)
}

func (r *pedidoResource) Delete(id string) error {
	return r.api.do(http.MethodDelete, "/pedidos/"+id, nil, nil, nil)
}
