package handlers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"vendas_admin/internal/models"
	"vendas_admin/internal/repository"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func setupRouter(t *testing.T) (*gin.Engine, *gorm.DB) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	// Use a unique in-memory database per test to avoid cross-test collisions.
	dsn := "file:" + t.Name() + "?mode=memory&cache=shared"
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	if err != nil {
		t.Fatalf("open db: %v", err)
	}
	if err := db.AutoMigrate(&models.Client{}, &models.Product{}, &models.Order{}, &models.OrderItem{}); err != nil {
		t.Fatalf("migrate: %v", err)
	}

	router := gin.New()
	RegisterRoutes(router,
		NewClientHandler(repository.NewClientRepository(db), nil),
		NewProductHandler(repository.NewProductRepository(db), nil),
		NewOrderHandler(repository.NewOrderRepository(db)),
		NewOrderItemHandler(repository.NewOrderItemRepository(db)),
	)
	return router, db
}

func doRequest(router *gin.Engine, method, path, body string) *httptest.ResponseRecorder {
	var req *http.Request
	if body != "" {
		req = httptest.NewRequest(method, path, strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
	} else {
		req = httptest.NewRequest(method, path, nil)
	}
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func TestClienteCRUD(t *testing.T) {
	router, _ := setupRouter(t)

	// create assigns a server-side id
	w := doRequest(router, http.MethodPost, "/clientes", `{"nome":"Maria da Silva","tipo":"FISICA","cpf":"12345678901","situacao":"ATIVO"}`)
	require.Equal(t, http.StatusCreated, w.Code)

	var created models.Client
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &created))
	require.NotEmpty(t, created.ID)
	assert.Equal(t, "Maria da Silva", created.Name)

	// list
	w = doRequest(router, http.MethodGet, "/clientes", "")
	require.Equal(t, http.StatusOK, w.Code)
	var list []models.Client
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &list))
	require.Len(t, list, 1)

	// get by id
	w = doRequest(router, http.MethodGet, "/clientes/"+created.ID, "")
	require.Equal(t, http.StatusOK, w.Code)

	// update
	w = doRequest(router, http.MethodPut, "/clientes/"+created.ID, `{"nome":"Maria Souza","tipo":"FISICA","cpf":"12345678901","situacao":"INATIVO"}`)
	require.Equal(t, http.StatusOK, w.Code)

	w = doRequest(router, http.MethodGet, "/clientes/"+created.ID, "")
	var updated models.Client
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &updated))
	assert.Equal(t, "Maria Souza", updated.Name)
	assert.Equal(t, "INATIVO", updated.Status)

	// hard delete
	w = doRequest(router, http.MethodDelete, "/clientes/"+created.ID, "")
	require.Equal(t, http.StatusOK, w.Code)

	w = doRequest(router, http.MethodGet, "/clientes/"+created.ID, "")
	require.Equal(t, http.StatusNotFound, w.Code)

	var errBody map[string]string
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &errBody))
	assert.Equal(t, "Cliente não encontrado", errBody["message"])
}

func TestProdutoWireFormat(t *testing.T) {
	router, _ := setupRouter(t)

	w := doRequest(router, http.MethodPost, "/produtos", `{"nome":"Café","descricao":"500g","unidade":"KG","preco":24.9,"situacao":"ATIVO"}`)
	require.Equal(t, http.StatusCreated, w.Code)

	var created map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &created))
	assert.Equal(t, "Café", created["nome"])
	assert.Equal(t, "500g", created["descricao"])
	assert.Equal(t, "KG", created["unidade"])
	assert.Equal(t, 24.9, created["preco"])
}

func TestPedidoDefaultsToPendente(t *testing.T) {
	router, _ := setupRouter(t)

	w := doRequest(router, http.MethodPost, "/pedidos", `{"clienteId":"CLI-1","emissao":"2024-05-10","descontoTotal":1,"totalPedido":24.5}`)
	require.Equal(t, http.StatusCreated, w.Code)

	var created models.Order
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &created))
	require.NotEmpty(t, created.ID)
	assert.Equal(t, string(models.OrderPending), created.Status)
}

func TestProdutosSituacaoFilter(t *testing.T) {
	router, db := setupRouter(t)

	seed := []models.Product{
		{ID: "P1", Name: "Café", Description: "500g", Unit: "KG", Price: 24.9, Status: "ATIVO"},
		{ID: "P2", Name: "Óleo", Description: "900ml", Unit: "LT", Price: 8.5, Status: "INATIVO"},
	}
	for i := range seed {
		require.NoError(t, db.Create(&seed[i]).Error)
	}

	w := doRequest(router, http.MethodGet, "/produtos?situacao=ATIVO", "")
	require.Equal(t, http.StatusOK, w.Code)

	var products []models.Product
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &products))
	require.Len(t, products, 1)
	assert.Equal(t, "P1", products[0].ID)
}

func TestPedidosClienteFilter(t *testing.T) {
	router, db := setupRouter(t)

	seed := []models.Order{
		{ID: "PED-1", ClientID: "CLI-1", IssueDate: "2024-05-10", Status: "PENDENTE"},
		{ID: "PED-2", ClientID: "CLI-2", IssueDate: "2024-05-11", Status: "PENDENTE"},
		{ID: "PED-3", ClientID: "CLI-1", IssueDate: "2024-05-12", Status: "CONCLUIDO"},
	}
	for i := range seed {
		require.NoError(t, db.Create(&seed[i]).Error)
	}

	w := doRequest(router, http.MethodGet, "/pedidos?clienteId=CLI-1", "")
	require.Equal(t, http.StatusOK, w.Code)

	var orders []models.Order
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &orders))
	require.Len(t, orders, 2)
	for _, order := range orders {
		assert.Equal(t, "CLI-1", order.ClientID)
	}
}

func TestItensSequencialFilter(t *testing.T) {
	router, db := setupRouter(t)

	seed := []models.OrderItem{
		{ID: "IT-1", OrderID: "PED-1", ProductID: "P1", Quantity: 1, UnitPrice: 10, Total: 10},
		{ID: "IT-2", OrderID: "PED-1", ProductID: "P2", Quantity: 2, UnitPrice: 5, Total: 10},
		{ID: "IT-3", OrderID: "PED-2", ProductID: "P1", Quantity: 1, UnitPrice: 10, Total: 10},
	}
	for i := range seed {
		require.NoError(t, db.Create(&seed[i]).Error)
	}

	w := doRequest(router, http.MethodGet, "/itens_pedido?sequencial=PED-1", "")
	require.Equal(t, http.StatusOK, w.Code)

	var items []models.OrderItem
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &items))
	require.Len(t, items, 2)
	for _, item := range items {
		assert.Equal(t, "PED-1", item.OrderID)
	}

	// the item payload carries the sequencial wire field
	w = doRequest(router, http.MethodGet, "/itens_pedido/IT-3", "")
	var raw map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &raw))
	assert.Equal(t, "PED-2", raw["sequencial"])
	assert.Equal(t, "P1", raw["produtoId"])
}

func TestInvalidJSONReturnsMessage(t *testing.T) {
	router, _ := setupRouter(t)

	w := doRequest(router, http.MethodPost, "/clientes", `{"nome":`)
	require.Equal(t, http.StatusBadRequest, w.Code)

	var errBody map[string]string
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &errBody))
	assert.Equal(t, "Formato de requisição inválido", errBody["message"])
}
