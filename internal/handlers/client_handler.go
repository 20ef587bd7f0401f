package handlers

import (
	"errors"
	"log"
	"net/http"

	"vendas_admin/internal/models"
	"vendas_admin/internal/redis"
	"vendas_admin/internal/repository"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type ClientHandler struct {
	repo  repository.ClientRepository
	cache *redis.Client
}

func NewClientHandler(repo repository.ClientRepository, cache *redis.Client) *ClientHandler {
	return &ClientHandler{repo: repo, cache: cache}
}

func (h *ClientHandler) List(c *gin.Context) {
	if h.cache != nil {
		if data, ok := h.cache.GetList("clientes"); ok {
			c.Data(http.StatusOK, "application/json; charset=utf-8", data)
			return
		}
	}

	clients, err := h.repo.GetAll()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Erro ao carregar clientes"})
		return
	}

	if h.cache != nil {
		if err := h.cache.SetList("clientes", clients); err != nil {
			log.Printf("Warning: failed to cache clientes list: %v", err)
		}
	}

	c.JSON(http.StatusOK, clients)
}

func (h *ClientHandler) Get(c *gin.Context) {
	client, err := h.repo.GetByID(c.Param("id"))
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"message": "Cliente não encontrado"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Erro ao buscar cliente"})
		return
	}

	c.JSON(http.StatusOK, client)
}

func (h *ClientHandler) Create(c *gin.Context) {
	var client models.Client
	if err := c.ShouldBindJSON(&client); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Formato de requisição inválido"})
		return
	}

	if client.ID == "" {
		client.ID = uuid.NewString()
	}

	if err := h.repo.Create(&client); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Erro ao adicionar cliente"})
		return
	}

	h.invalidate()
	c.JSON(http.StatusCreated, client)
}

func (h *ClientHandler) Update(c *gin.Context) {
	var client models.Client
	if err := c.ShouldBindJSON(&client); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Formato de requisição inválido"})
		return
	}

	client.ID = c.Param("id")
	if err := h.repo.Update(&client); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Erro ao editar cliente"})
		return
	}

	h.invalidate()
	c.JSON(http.StatusOK, client)
}

func (h *ClientHandler) Delete(c *gin.Context) {
	if err := h.repo.Delete(c.Param("id")); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Erro ao excluir cliente"})
		return
	}

	h.invalidate()
	c.JSON(http.StatusOK, gin.H{})
}

func (h *ClientHandler) invalidate() {
	if h.cache == nil {
		return
	}
	if err := h.cache.Invalidate("clientes"); err != nil {
		log.Printf("Warning: failed to invalidate clientes cache: %v", err)
	}
}
