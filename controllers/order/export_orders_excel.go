package orderControllers

import (
	"net/http"

	"github.com/AzracStudios/tee-vista/models"
	"github.com/gin-gonic/gin"
	"github.com/tealeg/xlsx"
	"gorm.io/gorm"
)

// GET /admin/orders/export
// Writes every order line as a spreadsheet row, one row per purchased item.
func ExportOrdersToExcel(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var orders []models.Order
		if err := db.Preload("Lines").Order("created_at DESC").Find(&orders).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch orders"})
			return
		}

		file := xlsx.NewFile()
		sheet, err := file.AddSheet("Orders")
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create Excel sheet"})
			return
		}

		headers := []string{
			"OrderID", "Reference", "UserID", "PaymentMethod", "Total",
			"ProductID", "ProductName", "Brand", "UnitPrice", "Quantity", "PlacedAt",
		}
		headerRow := sheet.AddRow()
		for _, h := range headers {
			headerRow.AddCell().SetValue(h)
		}

		for _, order := range orders {
			for _, line := range order.Lines {
				row := sheet.AddRow()
				row.AddCell().SetValue(order.ID)
				row.AddCell().SetValue(order.Reference)
				row.AddCell().SetValue(order.UserID)
				row.AddCell().SetValue(string(order.PaymentMethod))
				row.AddCell().SetValue(order.Total)
				row.AddCell().SetValue(line.ProductID)
				row.AddCell().SetValue(line.ProductName)
				row.AddCell().SetValue(line.BrandName)
				row.AddCell().SetValue(line.ProductPrice)
				row.AddCell().SetValue(line.Quantity)
				row.AddCell().SetValue(order.CreatedAt.Format("2006-01-02 15:04:05"))
			}
		}

		c.Header("Content-Disposition", "attachment; filename=orders.xlsx")
		c.Header("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
		c.Header("Content-Transfer-Encoding", "binary")
		c.Header("Expires", "0")

		if err := file.Write(c.Writer); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to write Excel file"})
			return
		}
	}
}
