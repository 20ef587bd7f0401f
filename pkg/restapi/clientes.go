package restapi

import (
	"net/http"

	"vendas_admin/internal/models"
)

type ClienteResource interface {
	List() ([]models.Client, error)
	Get(id string) (*models.Client, error)
	Create(client *models.Client) (*models.Client, error)
	Update(id string, client *models.Client) error
	Delete(id string) error
}

type clienteResource struct {
	api *API
}

func NewClienteResource(api *API) ClienteResource {
	return &clienteResource{api: api}
}

func (r *clienteResource) List() ([]models.Client, error) {
	var clients []models.Client
	if err := r.api.do(http.MethodGet, "/clientes", nil, nil, &clients); err != nil {
		return nil, err
	}
	return clients, nil
}

func (r *clienteResource) Get(id string) (*models.Client, error) {
	var client models.Client
	if err := r.api.do(http.MethodGet, "/clientes/"+id, nil, nil, &client); err != nil {
		return nil, err
	}
	return &client, nil
}

func (r *clienteResource) Create(client *models.Client) (*models.Client, error) {
	var created models.Client
	if err := r.api.do(http.MethodPost, "/clientes", nil, client, &created); err != nil {
		return nil, err
	}
	return &created, nil
}

func (r *clienteResource) Update(id string, client *models.Client) error {
	return r.api.do(http.MethodPut, "/clientes/"+id, nil, client, nil)
}

func (r *clienteResource) Delete(id string) error {
	return r.api.do(http.MethodDelete, "/clientes/"+id, nil, nil, nil)
}
