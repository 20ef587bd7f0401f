package restapi

import (
	"net/http"
	"net/url"

	"vendas_admin/internal/models"
)

type ItemResource interface {
	List() ([]models.OrderItem, error)
	ListByPedido(orderID string) ([]models.OrderItem, error)
	Get(id string) (*models.OrderItem, error)
	Create(item *models.OrderItem) (*models.OrderItem, error)
	Update(id string, item *models.OrderItem) error
	Delete(id string) error
}

type itemResource struct {
	api *API
}

func NewItemResource(api *API) ItemResource {
	return &itemResource{api: api}
}

func (r *itemResource) List() ([]models.OrderItem, error) {
	var items []models.OrderItem
	if err := r.api.do(http.MethodGet, "/itens_pedido", nil, nil, &items); err != nil {
		return nil, err
	}
	return items, nil
}

// ListByPedido filters on the backend through the sequencial query
// parameter instead of fetching the whole collection.
func (r *itemResource) ListByPedido(orderID string) ([]models.OrderItem, error) {
	query := url.Values{}
	query.Set("sequencial", orderID)

	var items []models.OrderItem
	if err := r.api.do(http.MethodGet, "/itens_pedido", query, nil, &items); err != nil {
		return nil, err
	}
	return items, nil
}

func (r *itemResource) Get(id string) (*models.OrderItem, error) {
	var item models.OrderItem
	if err := r.api.do(http.MethodGet, "/itens_pedido/"+id, nil, nil, &item); err != nil {
		return nil, err
	}
	return &item, nil
}

func (r *itemResource) Create(item *models.OrderItem) (*models.OrderItem, error) {
	var created models.OrderItem
	if err := r.api.do(http.MethodPost, "/itens_pedido", nil, item, &created); err != nil {
		return nil, err
	}
	return &created, nil
}

func (r *itemResource) Update(id string, item *models.OrderItem) error {
	return r.api.do(http.MethodPut, "/itens_pedido/"+id, nil, item, nil)
}

func (r *itemResource) Delete(id string) error {
	return r.api.do(http.MethodDelete, "/itens_pedido/"+id, nil, nil, nil)
}
