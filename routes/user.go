package routes

import (
	cartControllers "github.com/AzracStudios/tee-vista/controllers/cart"
	orderControllers "github.com/AzracStudios/tee-vista/controllers/order"
	userControllers "github.com/AzracStudios/tee-vista/controllers/user"
	"github.com/AzracStudios/tee-vista/middleware"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// SetupUserRoutes registers all JWT-protected endpoints.
func SetupUserRoutes(r *gin.Engine, db *gorm.DB) {
	userGroup := r.Group("/")
	userGroup.Use(middleware.ValidateToken)
	{
		// ──────────────── User Profile ────────────────
		userGroup.GET("/user", userControllers.GetUser(db))

		// ──────────────── Shopping Cart ────────────────
		userGroup.GET("/cart", cartControllers.GetUserCart(db))
		userGroup.POST("/cart", cartControllers.AddCartLine(db))
		userGroup.PUT("/cart/:line_id", cartControllers.UpdateCartLine(db))
		userGroup.GET("/cart/total", cartControllers.GetCartTotal(db))

		// ──────────────── Checkout ────────────────
		userGroup.GET("/payment", orderControllers.GetPaymentMethods())
		userGroup.POST("/payment/card", orderControllers.PayWithCard(db))
		userGroup.POST("/payment/paypal", orderControllers.PayWithPayPal(db))
		userGroup.GET("/paymentsuccess", orderControllers.PaymentSuccess(db))

		// ──────────────── Order History ────────────────
		userGroup.GET("/orders", orderControllers.GetUserOrders(db))
	}
}
