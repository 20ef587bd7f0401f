package main

import (
	"log"
	"time"

	"vendas_admin/internal/config"
	"vendas_admin/internal/database"
	"vendas_admin/internal/handlers"
	"vendas_admin/internal/redis"
	"vendas_admin/internal/repository"

	"github.com/gin-gonic/gin"
)

func main() {
	// Load configuration
	cfg := config.Load()

	// Initialize database
	db, err := database.Initialize(cfg.DatabaseURL)
	if err != nil {
		log.Fatal("Failed to connect to database:", err)
	}

	// Initialize the catalog cache when Redis is configured
	var cache *redis.Client
	if cfg.RedisURL != "" {
		cache, err = redis.Initialize(cfg.RedisURL, time.Duration(cfg.CacheTTL)*time.Second)
		if err != nil {
			log.Fatal("Failed to connect to Redis:", err)
		}
		log.Println("Catalog cache enabled")
	}

	// Initialize repositories
	clientRepo := repository.NewClientRepository(db)
	productRepo := repository.NewProductRepository(db)
	orderRepo := repository.NewOrderRepository(db)
	orderItemRepo := repository.NewOrderItemRepository(db)

	// Initialize handlers
	clientHandler := handlers.NewClientHandler(clientRepo, cache)
	productHandler := handlers.NewProductHandler(productRepo, cache)
	orderHandler := handlers.NewOrderHandler(orderRepo)
	orderItemHandler := handlers.NewOrderItemHandler(orderItemRepo)

	// Setup routes
	router := gin.Default()
	handlers.RegisterRoutes(router, clientHandler, productHandler, orderHandler, orderItemHandler)

	// Start server
	log.Printf("Server starting on port %s", cfg.ServerPort)
	if err := router.Run(":" + cfg.ServerPort); err != nil {
		log.Fatal("Failed to start server:", err)
	}
}
