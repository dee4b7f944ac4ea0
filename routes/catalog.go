package routes

import (
	"net/http"

	brandControllers "github.com/AzracStudios/tee-vista/controllers/brand"
	productControllers "github.com/AzracStudios/tee-vista/controllers/product"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// SetupCatalogRoutes registers the public storefront endpoints.
func SetupCatalogRoutes(r *gin.Engine, db *gorm.DB) {
	r.GET("/", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"name":    "tee-vista",
			"message": "Tee Vista storefront API",
		})
	})
	r.GET("/about", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"about": "Tee Vista: browse brands, fill a cart, check out by card or PayPal.",
		})
	})

	r.GET("/brands", brandControllers.GetBrands(db))
	r.GET("/brands/:name/products", brandControllers.GetBrandProducts(db))
	r.GET("/products/:id", productControllers.GetProductByID(db))
}
