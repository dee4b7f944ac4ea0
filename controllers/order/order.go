package orderControllers

import (
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/AzracStudios/tee-vista/models"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

var (
	ErrEmptyCart         = errors.New("cart is empty")
	ErrInsufficientStock = errors.New("insufficient stock")
)

// generateOrderRef returns a unique order reference, e.g. 20250908130500-<uuid>.
func generateOrderRef() string {
	return time.Now().Format("20060102150405") + "-" + uuid.NewString()
}

// placeOrder converts the user's cart into an order: inside one transaction
// it locks each line's product row, decrements stock by the line quantity
// (matched by product ID), creates the order from the cart snapshots, and
// clears the cart. Insufficient stock aborts the whole checkout.
func placeOrder(db *gorm.DB, userID uint, method models.PaymentMethod) (*models.Order, error) {
	var cart models.Cart
	if err := db.Preload("Lines").Where("user_id = ?", userID).First(&cart).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrEmptyCart
		}
		return nil, err
	}
	if len(cart.Lines) == 0 {
		return nil, ErrEmptyCart
	}

	var order models.Order

	err := db.Transaction(func(tx *gorm.DB) error {
		var orderLines []models.OrderLine

		for _, line := range cart.Lines {
			var product models.Product
			if err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
				First(&product, "id = ?", line.ProductID).Error; err != nil {
				if errors.Is(err, gorm.ErrRecordNotFound) {
					// Product was deleted after the line was added; the
					// snapshot is still sold, there is just no stock to adjust.
					orderLines = append(orderLines, orderLineFromCart(line))
					continue
				}
				return err
			}

			if product.Stock < line.Quantity {
				return fmt.Errorf("%w for product: %s", ErrInsufficientStock, line.ProductName)
			}

			product.Stock -= line.Quantity
			if err := tx.Save(&product).Error; err != nil {
				return err
			}

			orderLines = append(orderLines, orderLineFromCart(line))
		}

		order = models.Order{
			UserID:        userID,
			Lines:         orderLines,
			Total:         models.CartTotal(cart.Lines),
			PaymentMethod: method,
			Reference:     generateOrderRef(),
			CreatedAt:     time.Now(),
		}
		if err := tx.Create(&order).Error; err != nil {
			return err
		}

		return tx.Where("cart_id = ?", cart.CartID).Delete(&models.CartLine{}).Error
	})
	if err != nil {
		return nil, err
	}

	broadcastNewOrder(order)
	return &order, nil
}

func orderLineFromCart(line models.CartLine) models.OrderLine {
	return models.OrderLine{
		ProductID:    line.ProductID,
		ProductName:  line.ProductName,
		ProductPrice: line.ProductPrice,
		ProductImage: line.ProductImage,
		BrandName:    line.BrandName,
		Quantity:     line.Quantity,
	}
}

func checkoutHandler(db *gorm.DB, method models.PaymentMethod) gin.HandlerFunc {
	return func(c *gin.Context) {
		userIDVal, exists := c.Get("user_id")
		if !exists {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
			return
		}
		userID := userIDVal.(uint)

		order, err := placeOrder(db, userID, method)
		if err != nil {
			status := http.StatusBadRequest
			if !errors.Is(err, ErrEmptyCart) && !errors.Is(err, ErrInsufficientStock) {
				status = http.StatusInternalServerError
			}
			c.JSON(status, gin.H{"error": err.Error()})
			return
		}

		c.JSON(http.StatusCreated, gin.H{
			"message": "Payment accepted",
			"order":   order,
		})
	}
}

// POST /payment/card
// Card processing itself is stubbed; submitting the form completes the order.
func PayWithCard(db *gorm.DB) gin.HandlerFunc {
	return checkoutHandler(db, models.PaymentMethodCard)
}

// POST /payment/paypal
func PayWithPayPal(db *gorm.DB) gin.HandlerFunc {
	return checkoutHandler(db, models.PaymentMethodPayPal)
}

// GET /payment
func GetPaymentMethods() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"methods": []models.PaymentMethod{
				models.PaymentMethodCard,
				models.PaymentMethodPayPal,
			},
		})
	}
}

// GET /paymentsuccess
//
// Returns the caller's most recent order. Confirmation state is per user,
// never shared across sessions.
func PaymentSuccess(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		userIDVal, exists := c.Get("user_id")
		if !exists {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
			return
		}

		var order models.Order
		if err := db.Preload("Lines").
			Where("user_id = ?", userIDVal).
			Order("created_at DESC").
			First(&order).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				c.JSON(http.StatusNotFound, gin.H{"error": "No completed order"})
				return
			}
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch order"})
			return
		}

		c.JSON(http.StatusOK, order)
	}
}

// GET /orders
func GetUserOrders(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		userIDVal, exists := c.Get("user_id")
		if !exists {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
			return
		}

		var orders []models.Order
		if err := db.Preload("Lines").
			Where("user_id = ?", userIDVal).
			Order("created_at DESC").
			Find(&orders).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch orders"})
			return
		}

		c.JSON(http.StatusOK, orders)
	}
}

// GET /admin/orders
func GetAllOrders(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var orders []models.Order
		if err := db.Preload("Lines").
			Order("created_at DESC").
			Find(&orders).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch orders"})
			return
		}
		c.JSON(http.StatusOK, orders)
	}
}
