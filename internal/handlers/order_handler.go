package handlers

import (
	"errors"
	"net/http"

	"vendas_admin/internal/models"
	"vendas_admin/internal/repository"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type OrderHandler struct {
	repo repository.OrderRepository
}

func NewOrderHandler(repo repository.OrderRepository) *OrderHandler {
	return &OrderHandler{repo: repo}
}

// List returns all orders, or only one client's orders when the
// clienteId query parameter is present.
func (h *OrderHandler) List(c *gin.Context) {
	var (
		orders []models.Order
		err    error
	)

	if clienteID := c.Query("clienteId"); clienteID != "" {
		orders, err = h.repo.GetByClientID(clienteID)
	} else {
		orders, err = h.repo.GetAll()
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Erro ao carregar pedidos"})
		return
	}

	c.JSON(http.StatusOK, orders)
}

func (h *OrderHandler) Get(c *gin.Context) {
	order, err := h.repo.GetByID(c.Param("id"))
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"message": "Pedido não encontrado"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Erro ao buscar pedido"})
		return
	}

	c.JSON(http.StatusOK, order)
}

func (h *OrderHandler) Create(c *gin.Context) {
	var order models.Order
	if err := c.ShouldBindJSON(&order); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Formato de requisição inválido"})
		return
	}

	if order.ID == "" {
		order.ID = uuid.NewString()
	}
	if order.Status == "" {
		order.Status = string(models.OrderPending)
	}

	if err := h.repo.Create(&order); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Erro ao criar pedido"})
		return
	}

	c.JSON(http.StatusCreated, order)
}

func (h *OrderHandler) Update(c *gin.Context) {
	var order models.Order
	if err := c.ShouldBindJSON(&order); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Formato de requisição inválido"})
		return
	}

	order.ID = c.Param("id")
	if err := h.repo.Update(&order); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Erro ao editar pedido"})
		return
	}

	c.JSON(http.StatusOK, order)
}

func (h *OrderHandler) Delete(c *gin.Context) {
	if err := h.repo.Delete(c.Param("id")); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Erro ao excluir pedido"})
		return
	}

	c.JSON(http.StatusOK, gin.H{})
}
