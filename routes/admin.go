package routes

import (
	brandControllers "github.com/AzracStudios/tee-vista/controllers/brand"
	orderControllers "github.com/AzracStudios/tee-vista/controllers/order"
	productControllers "github.com/AzracStudios/tee-vista/controllers/product"
	userControllers "github.com/AzracStudios/tee-vista/controllers/user"
	"github.com/AzracStudios/tee-vista/middleware"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// SetupAdminRoutes registers all "/admin/*" endpoints. Requires API-key middleware.
func SetupAdminRoutes(r *gin.Engine, db *gorm.DB) {
	adminGroup := r.Group("/admin")
	adminGroup.Use(middleware.ValidateAPIKey)
	{
		// ─────────── Product Management ───────────
		productAdmin := adminGroup.Group("/products")
		{
			productAdmin.GET("", productControllers.GetProducts(db))
			productAdmin.POST("", productControllers.CreateProduct(db))
			productAdmin.PUT("/:id", productControllers.UpdateProduct(db))
			productAdmin.DELETE("/:id", productControllers.DeleteProduct(db))
		}

		// ─────────── Brand Management ───────────
		brandAdmin := adminGroup.Group("/brands")
		{
			brandAdmin.GET("", brandControllers.GetBrands(db))
			brandAdmin.POST("", brandControllers.CreateBrand(db))
			brandAdmin.DELETE("/:id", brandControllers.DeleteBrand(db))
		}

		// ─────────── Orders ───────────
		orderAdmin := adminGroup.Group("/orders")
		{
			orderAdmin.GET("", orderControllers.GetAllOrders(db))
			orderAdmin.GET("/export", orderControllers.ExportOrdersToExcel(db))
			orderAdmin.GET("/ws", orderControllers.OrderWebSocketHandler)
		}

		// ─────────── Users ───────────
		adminGroup.GET("/users", userControllers.GetAllUsers(db))
	}
}
