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

type ProductHandler struct {
	repo  repository.ProductRepository
	cache *redis.Client
}

func NewProductHandler(repo repository.ProductRepository, cache *redis.Client) *ProductHandler {
	return &ProductHandler{repo: repo, cache: cache}
}

// List returns the catalog, or only the products in one status when
// the situacao query parameter is present. Filtered reads bypass the
// cache, which only holds the full list.
func (h *ProductHandler) List(c *gin.Context) {
	if situacao := c.Query("situacao"); situacao != "" {
		products, err := h.repo.GetByStatus(situacao)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"message": "Erro ao carregar produtos"})
			return
		}
		c.JSON(http.StatusOK, products)
		return
	}

	if h.cache != nil {
		if data, ok := h.cache.GetList("produtos"); ok {
			c.Data(http.StatusOK, "application/json; charset=utf-8", data)
			return
		}
	}

	products, err := h.repo.GetAll()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Erro ao carregar produtos"})
		return
	}

	if h.cache != nil {
		if err := h.cache.SetList("produtos", products); err != nil {
			log.Printf("Warning: failed to cache produtos list: %v", err)
		}
	}

	c.JSON(http.StatusOK, products)
}

func (h *ProductHandler) Get(c *gin.Context) {
	product, err := h.repo.GetByID(c.Param("id"))
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"message": "Produto não encontrado"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Erro ao buscar produto"})
		return
	}

	c.JSON(http.StatusOK, product)
}

func (h *ProductHandler) Create(c *gin.Context) {
	var product models.Product
	if err := c.ShouldBindJSON(&product); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Formato de requisição inválido"})
		return
	}

	if product.ID == "" {
		product.ID = uuid.NewString()
	}

	if err := h.repo.Create(&product); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Erro ao adicionar produto"})
		return
	}

	h.invalidate()
	c.JSON(http.StatusCreated, product)
}

func (h *ProductHandler) Update(c *gin.Context) {
	var product models.Product
	if err := c.ShouldBindJSON(&product); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Formato de requisição inválido"})
		return
	}

	product.ID = c.Param("id")
	if err := h.repo.Update(&product); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Erro ao editar produto"})
		return
	}

	h.invalidate()
	c.JSON(http.StatusOK, product)
}

func (h *ProductHandler) Delete(c *gin.Context) {
	if err := h.repo.Delete(c.Param("id")); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Erro ao excluir produto"})
		return
	}

	h.invalidate()
	c.JSON(http.StatusOK, gin.H{})
}

func (h *ProductHandler) invalidate() {
	if h.cache == nil {
		return
	}
	if err := h.cache.Invalidate("produtos"); err != nil {
		log.Printf("Warning: failed to invalidate produtos cache: %v", err)
	}
}
