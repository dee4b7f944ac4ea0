package brandcontroller

import (
	"net/http"

	"github.com/AzracStudios/tee-vista/models"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// DeleteBrand removes a brand by ID. Deleting an absent brand is a no-op.
// Products keep their brand_id; listings for the removed brand 404.
func DeleteBrand(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.Param("id")

		result := db.Delete(&models.Brand{}, "id = ?", id)
		if result.Error != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete brand"})
			return
		}

		c.JSON(http.StatusOK, gin.H{"message": "Brand deleted"})
	}
}
