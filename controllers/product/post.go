package productcontroller

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"github.com/AzracStudios/tee-vista/models"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// CreateProduct creates a new product from a multipart form with image upload.
func CreateProduct(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		// Required fields
		name := c.PostForm("name")
		priceStr := c.PostForm("price")
		brandIDStr := c.PostForm("brand_id")
		if name == "" || priceStr == "" || brandIDStr == "" {
			c.JSON(http.StatusBadRequest, gin.H{"error": "name, price, and brand_id are required"})
			return
		}

		// Optional fields
		description := c.PostForm("description")
		stockStr := c.PostForm("stock")

		price, err := strconv.ParseFloat(priceStr, 64)
		if err != nil || price < 0 {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid price"})
			return
		}
		brandID, err := strconv.ParseUint(brandIDStr, 10, 64)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid brand_id"})
			return
		}

		var stock int
		if stockStr != "" {
			stock, err = strconv.Atoi(stockStr)
			if err != nil || stock < 0 {
				c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid stock"})
				return
			}
		}

		// The brand must exist before a product can reference it
		var brand models.Brand
		if err := db.First(&brand, uint(brandID)).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				c.JSON(http.StatusBadRequest, gin.H{"error": "Brand does not exist"})
			} else {
				c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to validate brand"})
			}
			return
		}

		// Image upload
		file, err := c.FormFile("image")
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Image is required"})
			return
		}
		imageURL, err := saveProductImage(c, file)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": fmt.Sprintf("Failed to save image: %v", err)})
			return
		}

		newProduct := models.Product{
			Name:        name,
			Price:       price,
			Stock:       stock,
			Description: description,
			BrandID:     brand.ID,
			Image:       imageURL,
		}

		if err := db.Create(&newProduct).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create product"})
			return
		}

		c.JSON(http.StatusCreated, newProduct)
	}
}
