package services

import (
	"vendas_admin/internal/models"
	"vendas_admin/pkg/restapi"

	"golang.org/x/sync/errgroup"
)

// ClientNotFoundLabel replaces the client name when the order's
// clienteId matches no catalog entry.
const ClientNotFoundLabel = "Cliente não encontrado"

// OrderWithItems is an order header joined client-side with its items
// and the owning client's name.
type OrderWithItems struct {
	models.Order
	ClientName string             `json:"clienteNome"`
	Items      []models.OrderItem `json:"itens"`
}

type OrderService interface {
	ComposeForCreate(clientID, issueDate, status string, items []models.OrderItem) (*models.Order, []models.OrderItem, error)
	Submit(header *models.Order, items []models.OrderItem) (*models.Order, error)
	LoadWithItems(orderID string) (*OrderWithItems, error)
	ListWithItems() ([]OrderWithItems, error)
	UpdateOrder(orderID, status string, items []models.OrderItem) error
	DeleteCascade(orderID string) error
}

type orderService struct {
	pedidos  restapi.PedidoResource
	itens    restapi.ItemResource
	produtos restapi.ProdutoResource
	clientes restapi.ClienteResource
}

func NewOrderService(pedidos restapi.PedidoResource, itens restapi.ItemResource, produtos restapi.ProdutoResource, clientes restapi.ClienteResource) OrderService {
	return &orderService{pedidos: pedidos, itens: itens, produtos: produtos, clientes: clientes}
}

// ComposeForCreate validates the inputs and assembles the header and
// item payloads with all derived amounts recomputed. No network call is
// made; validation failures block the submission entirely.
func (s *orderService) ComposeForCreate(clientID, issueDate, status string, items []models.OrderItem) (*models.Order, []models.OrderItem, error) {
	if clientID == "" {
		return nil, nil, &ValidationError{Field: "clienteId", Message: "Cliente é obrigatório."}
	}
	if issueDate == "" {
		return nil, nil, &ValidationError{Field: "emissao", Message: "Data de emissão é obrigatória."}
	}
	if len(items) == 0 {
		return nil, nil, &ValidationError{Field: "itens", Message: "O pedido deve ter ao menos um item."}
	}

	if status == "" {
		status = string(models.OrderPending)
	}

	items = RecomputeItems(items)
	totalDiscount, totalAmount := OrderTotals(items)

	header := &models.Order{
		ClientID:      clientID,
		IssueDate:     issueDate,
		Status:        status,
		TotalDiscount: totalDiscount,
		TotalAmount:   totalAmount,
	}

	return header, items, nil
}

// Submit persists the order in two phases: first the header, then every
// item tagged with the generated order id, all item creates issued
// concurrently. An empty item list is rejected before anything is
// written. The phases are not atomic; a failed item leaves the header
// (and any items that made it) in place.
func (s *orderService) Submit(header *models.Order, items []models.OrderItem) (*models.Order, error) {
	if len(items) == 0 {
		return nil, &ValidationError{Field: "itens", Message: "O pedido deve ter ao menos um item."}
	}

	created, err := s.pedidos.Create(header)
	if err != nil {
		return nil, err
	}
	if created.ID == "" {
		return nil, &PersistenceError{Message: "Erro ao criar pedido: ID do pedido não foi retornado pela API."}
	}

	var g errgroup.Group
	for _, item := range items {
		item := item
		item.OrderID = created.ID
		g.Go(func() error {
			_, err := s.itens.Create(&item)
			return err
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	return created, nil
}

// LoadWithItems rebuilds an order for editing from three independent
// fetches: the header, the full item collection filtered on sequencial,
// and the product and client catalogs for the joins. Unit prices are
// re-joined from the live catalog (missing product -> zero price) and
// the line totals recomputed from them.
func (s *orderService) LoadWithItems(orderID string) (*OrderWithItems, error) {
	order, err := s.pedidos.Get(orderID)
	if err != nil {
		return nil, err
	}

	allItems, err := s.itens.List()
	if err != nil {
		return nil, err
	}
	var items []models.OrderItem
	for _, item := range allItems {
		if item.OrderID == orderID {
			items = append(items, item)
		}
	}

	products, err := s.produtos.List()
	if err != nil {
		return nil, err
	}
	clients, err := s.clientes.List()
	if err != nil {
		return nil, err
	}

	priceByProduct := make(map[string]float64, len(products))
	for _, product := range products {
		priceByProduct[product.ID] = product.Price
	}

	clientName := ClientNotFoundLabel
	for _, client := range clients {
		if client.ID == order.ClientID {
			clientName = client.Name
			break
		}
	}

	for i := range items {
		items[i].UnitPrice = priceByProduct[items[i].ProductID]
		items[i].Total = LineTotal(items[i].Quantity, items[i].UnitPrice, items[i].Discount)
	}

	order.TotalDiscount, order.TotalAmount = OrderTotals(items)

	return &OrderWithItems{Order: *order, ClientName: clientName, Items: items}, nil
}

// ListWithItems returns every order joined with its items and client
// name, grouped client-side on the sequencial key.
func (s *orderService) ListWithItems() ([]OrderWithItems, error) {
	orders, err := s.pedidos.List()
	if err != nil {
		return nil, err
	}
	allItems, err := s.itens.List()
	if err != nil {
		return nil, err
	}
	clients, err := s.clientes.List()
	if err != nil {
		return nil, err
	}

	nameByClient := make(map[string]string, len(clients))
	for _, client := range clients {
		nameByClient[client.ID] = client.Name
	}

	itemsByOrder := make(map[string][]models.OrderItem)
	for _, item := range allItems {
		itemsByOrder[item.OrderID] = append(itemsByOrder[item.OrderID], item)
	}

	result := make([]OrderWithItems, 0, len(orders))
	for _, order := range orders {
		name, ok := nameByClient[order.ClientID]
		if !ok {
			name = ClientNotFoundLabel
		}
		result = append(result, OrderWithItems{
			Order:      order,
			ClientName: name,
			Items:      itemsByOrder[order.ID],
		})
	}

	return result, nil
}

// UpdateOrder applies the edit path: only the status and each item's
// quantity and discount may change; the product selection and the unit
// price snapshot are locked. Totals are recomputed before anything is
// written. Item updates go first, sequentially, then the header.
func (s *orderService) UpdateOrder(orderID, status string, items []models.OrderItem) error {
	if len(items) == 0 {
		return &ValidationError{Field: "itens", Message: "O pedido deve ter ao menos um item."}
	}

	items = RecomputeItems(items)
	totalDiscount, totalAmount := OrderTotals(items)

	for i := range items {
		item := items[i]
		item.OrderID = orderID
		if err := s.itens.Update(item.ID, &item); err != nil {
			return err
		}
	}

	current, err := s.pedidos.Get(orderID)
	if err != nil {
		return err
	}
	current.Status = status
	current.TotalDiscount = totalDiscount
	current.TotalAmount = totalAmount

	return s.pedidos.Update(orderID, current)
}

// DeleteCascade removes the order's items one by one and then the
// header. The first failure stops the cascade; items already deleted
// are not restored.
func (s *orderService) DeleteCascade(orderID string) error {
	items, err := s.itens.ListByPedido(orderID)
	if err != nil {
		return err
	}

	for _, item := range items {
		if err := s.itens.Delete(item.ID); err != nil {
			return err
		}
	}

	return s.pedidos.Delete(orderID)
}
