package restapi

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"vendas_admin/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHTTPErrorUsesMessageFromBody(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusNotFound)
		json.NewEncoder(w).Encode(map[string]string{"message": "Pedido não encontrado"})
	}))
	defer server.Close()

	_, err := NewPedidoResource(New(server.URL)).Get("nope")
	require.Error(t, err)

	var httpErr *HTTPError
	require.True(t, errors.As(err, &httpErr))
	assert.Equal(t, http.StatusNotFound, httpErr.Status)
	assert.Equal(t, "Pedido não encontrado", httpErr.Message)
}

func TestHTTPErrorFallsBackToStatusMessage(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
		w.Write([]byte("boom"))
	}))
	defer server.Close()

	_, err := NewClienteResource(New(server.URL)).List()
	require.Error(t, err)

	var httpErr *HTTPError
	require.True(t, errors.As(err, &httpErr))
	assert.Equal(t, http.StatusInternalServerError, httpErr.Status)
	assert.Equal(t, "Erro HTTP: 500", httpErr.Message)
}

func TestNetworkErrorWhenNoResponse(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	server.Close() // nothing is listening anymore

	_, err := NewProdutoResource(New(server.URL)).List()
	require.Error(t, err)

	var netErr *NetworkError
	require.True(t, errors.As(err, &netErr))
}

func TestUnknownErrorOnMalformedBody(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("not json"))
	}))
	defer server.Close()

	_, err := NewClienteResource(New(server.URL)).List()
	require.Error(t, err)

	var unknownErr *UnknownError
	require.True(t, errors.As(err, &unknownErr))
}

func TestCreateReturnsStoredRecord(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodPost, r.Method)
		require.Equal(t, "/produtos", r.URL.Path)
		require.Equal(t, "application/json", r.Header.Get("Content-Type"))

		var product models.Product
		require.NoError(t, json.NewDecoder(r.Body).Decode(&product))
		product.ID = "PRD-1"

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusCreated)
		json.NewEncoder(w).Encode(product)
	}))
	defer server.Close()

	created, err := NewProdutoResource(New(server.URL)).Create(&models.Product{Name: "Café", Description: "500g", Price: 24.9})
	require.NoError(t, err)
	assert.Equal(t, "PRD-1", created.ID)
	assert.Equal(t, "Café", created.Name)
	assert.Equal(t, 24.9, created.Price)
}

func TestListByPedidoSendsSequencialFilter(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/itens_pedido", r.URL.Path)
		require.Equal(t, "PED-7", r.URL.Query().Get("sequencial"))

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode([]models.OrderItem{{ID: "IT-1", OrderID: "PED-7"}})
	}))
	defer server.Close()

	items, err := NewItemResource(New(server.URL)).ListByPedido("PED-7")
	require.NoError(t, err)
	require.Len(t, items, 1)
	assert.Equal(t, "PED-7", items[0].OrderID)
}
