package handlers

import (
	"github.com/gin-gonic/gin"
)

// RegisterRoutes wires the four json-server style collections.
func RegisterRoutes(router *gin.Engine, clients *ClientHandler, products *ProductHandler, orders *OrderHandler, items *OrderItemHandler) {
	router.GET("/clientes", clients.List)
	router.GET("/clientes/:id", clients.Get)
	router.POST("/clientes", clients.Create)
	router.PUT("/clientes/:id", clients.Update)
	router.DELETE("/clientes/:id", clients.Delete)

	router.GET("/produtos", products.List)
	router.GET("/produtos/:id", products.Get)
	router.POST("/produtos", products.Create)
	router.PUT("/produtos/:id", products.Update)
	router.DELETE("/produtos/:id", products.Delete)

	router.GET("/pedidos", orders.List)
	router.GET("/pedidos/:id", orders.Get)
	router.POST("/pedidos", orders.Create)
	router.PUT("/pedidos/:id", orders.Update)
	router.DELETE("/pedidos/:id", orders.Delete)

	router.GET("/itens_pedido", items.List)
	router.GET("/itens_pedido/:id", items.Get)
	router.POST("/itens_pedido", items.Create)
	router.PUT("/itens_pedido/:id", items.Update)
	router.DELETE("/itens_pedido/:id", items.Delete)
}
