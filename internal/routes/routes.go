package routes

import (
	"swolez-api/internal/handlers"

	"github.com/gin-gonic/gin"
)

func RegisterRoutes(router *gin.Engine, products *handlers.ProductHandler, health *handlers.HealthHandler) {
	router.GET("/", health.Root)
	router.GET("/test", health.TestDatabase)

	api := router.Group("/api")
	{
		api.GET("/products", products.ListProducts)
		api.POST("/products", products.CreateProduct)
		api.POST("/seed", products.SeedProducts)
	}
}
