package productcontroller

import (
	"fmt"
	"mime/multipart"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
)

const productPublicPath = "/uploads/products"

func uploadRoot() string {
	if dir := os.Getenv("UPLOAD_DIR"); dir != "" {
		return dir
	}
	return "uploads"
}

// saveProductImage stores an uploaded image under the products upload folder
// and returns its public URL. Filenames get a nanosecond prefix so concurrent
// uploads with the same original name cannot overwrite each other.
func saveProductImage(c *gin.Context, file *multipart.FileHeader) (string, error) {
	saveDir := filepath.Join(uploadRoot(), "products")
	if err := os.MkdirAll(saveDir, os.ModePerm); err != nil {
		return "", err
	}

	ext := filepath.Ext(file.Filename)
	base := strings.TrimSuffix(filepath.Base(file.Filename), ext)
	base = strings.ReplaceAll(base, " ", "_")

	filename := fmt.Sprintf("%d_%s%s", time.Now().UnixNano(), base, ext)
	if err := c.SaveUploadedFile(file, filepath.Join(saveDir, filename)); err != nil {
		return "", err
	}

	return fmt.Sprintf("%s/%s", productPublicPath, filename), nil
}
