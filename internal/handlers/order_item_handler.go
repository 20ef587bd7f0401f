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

type OrderItemHandler struct {
	repo repository.OrderItemRepository
}

func NewOrderItemHandler(repo repository.OrderItemRepository) *OrderItemHandler {
	return &OrderItemHandler{repo: repo}
}

// List returns all items, or only the items of one order when the
// sequencial query parameter is present.
func (h *OrderItemHandler) List(c *gin.Context) {
	var (
		items []models.OrderItem
		err   error
	)

	if sequencial := c.Query("sequencial"); sequencial != "" {
		items, err = h.repo.GetByOrderID(sequencial)
	} else {
		items, err = h.repo.GetAll()
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Erro ao carregar itens do pedido"})
		return
	}

	c.JSON(http.StatusOK, items)
}

func (h *OrderItemHandler) Get(c *gin.Context) {
	item, err := h.repo.GetByID(c.Param("id"))
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"message": "Item não encontrado"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Erro ao buscar item"})
		return
	}

	c.JSON(http.StatusOK, item)
}

func (h *OrderItemHandler) Create(c *gin.Context) {
	var item models.OrderItem
	if err := c.ShouldBindJSON(&item); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Formato de requisição inválido"})
		return
	}

	if item.ID == "" {
		item.ID = uuid.NewString()
	}

	if err := h.repo.Create(&item); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Erro ao criar item do pedido"})
		return
	}

	c.JSON(http.StatusCreated, item)
}

func (h *OrderItemHandler) Update(c *gin.Context) {
	var item models.OrderItem
	if err := c.ShouldBindJSON(&item); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Formato de requisição inválido"})
		return
	}

	item.ID = c.Param("id")
	if err := h.repo.Update(&item); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Erro ao editar item do pedido"})
		return
	}

	c.JSON(http.StatusOK, item)
}

func (h *OrderItemHandler) Delete(c *gin.Context) {
	if err := h.repo.Delete(c.Param("id")); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Erro ao excluir item do pedido"})
		return
	}

	c.JSON(http.StatusOK, gin.H{})
}
