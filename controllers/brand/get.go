package brandcontroller

import (
	"errors"
	"net/http"
	"strings"
	"unicode"

	"github.com/AzracStudios/tee-vista/models"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// NormalizeBrandName folds a URL brand segment to the stored form: first
// letter upper, the rest lower, so "acme" and "ACME" both resolve to "Acme".
func NormalizeBrandName(name string) string {
	if name == "" {
		return name
	}
	runes := []rune(strings.ToLower(name))
	runes[0] = unicode.ToUpper(runes[0])
	return string(runes)
}

// GetBrands returns all brands.
func GetBrands(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var brands []models.Brand
		if err := db.Find(&brands).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch brands"})
			return
		}
		c.JSON(http.StatusOK, brands)
	}
}

// GetBrandProducts returns the brand and the products carrying it.
// URL param: /brands/:name/products
func GetBrandProducts(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		name := NormalizeBrandName(c.Param("name"))

		var brand models.Brand
		if err := db.Where("name = ?", name).First(&brand).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				c.JSON(http.StatusNotFound, gin.H{"error": "Brand not found"})
			} else {
				c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch brand"})
			}
			return
		}

		var products []models.Product
		if err := db.Where("brand_id = ?", brand.ID).Find(&products).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch products"})
			return
		}

		c.JSON(http.StatusOK, gin.H{
			"brand":    brand,
			"products": products,
		})
	}
}
