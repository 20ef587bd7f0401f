package services

import (
	"vendas_admin/internal/models"
	"vendas_admin/pkg/format"
	"vendas_admin/pkg/restapi"
)

type ClientService interface {
	List() ([]models.Client, error)
	Get(id string) (*models.Client, error)
	Create(client *models.Client) (*models.Client, error)
	Update(id string, client *models.Client) error
	Delete(id string) error
}

type clientService struct {
	clientes restapi.ClienteResource
}

func NewClientService(clientes restapi.ClienteResource) ClientService {
	return &clientService{clientes: clientes}
}

func (s *clientService) List() ([]models.Client, error) {
	return s.clientes.List()
}

func (s *clientService) Get(id string) (*models.Client, error) {
	return s.clientes.Get(id)
}

func (s *clientService) Create(client *models.Client) (*models.Client, error) {
	if err := normalizeClient(client); err != nil {
		return nil, err
	}
	return s.clientes.Create(client)
}

func (s *clientService) Update(id string, client *models.Client) error {
	if err := normalizeClient(client); err != nil {
		return err
	}
	return s.clientes.Update(id, client)
}

func (s *clientService) Delete(id string) error {
	return s.clientes.Delete(id)
}

// normalizeClient strips the tax ids down to digits, clears the one
// that does not match the client kind and validates the required
// fields, all before any network call.
func normalizeClient(client *models.Client) error {
	if client.Name == "" {
		return &ValidationError{Field: "nome", Message: "Nome é obrigatório."}
	}

	client.CPF = format.Digits(client.CPF)
	client.CNPJ = format.Digits(client.CNPJ)
	client.NormalizeTaxID()

	switch models.ClientKind(client.Kind) {
	case models.ClientIndividual:
		if client.CPF == "" {
			return &ValidationError{Field: "cpf", Message: "CPF é obrigatório para pessoa física."}
		}
	case models.ClientCompany:
		if client.CNPJ == "" {
			return &ValidationError{Field: "cnpj", Message: "CNPJ é obrigatório para pessoa jurídica."}
		}
	default:
		return &ValidationError{Field: "tipo", Message: "Tipo de cliente inválido."}
	}

	if client.Status == "" {
		client.Status = string(models.ClientActive)
	}

	return nil
}
