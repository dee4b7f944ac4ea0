package userControllers_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"

	"github.com/AzracStudios/tee-vista/auth"
	"github.com/AzracStudios/tee-vista/models"
	"github.com/AzracStudios/tee-vista/routes"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func setupRouter(t *testing.T) (*gorm.DB, *gin.Engine) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	db, err := gorm.Open(sqlite.Open(filepath.Join(t.TempDir(), "test.db")), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(
		&models.User{}, &models.Brand{}, &models.Product{},
		&models.Cart{}, &models.CartLine{},
		&models.Order{}, &models.OrderLine{},
	))

	r := gin.New()
	routes.SetupRoutes(r, db)
	return db, r
}

func TestGetUser(t *testing.T) {
	db, r := setupRouter(t)
	user := models.User{Username: "maria", Password: "hashed", Address: "12 High St", Cart: models.Cart{}}
	require.NoError(t, db.Create(&user).Error)
	token, err := auth.IssueToken(user.ID, user.Username)
	require.NoError(t, err)

	req := httptest.NewRequest("GET", "/user", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	require.Equal(t, http.StatusOK, w.Code)

	var got models.User
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &got))
	assert.Equal(t, "maria", got.Username)
	assert.Equal(t, "12 High St", got.Address)
}

func TestGetUser_NoToken(t *testing.T) {
	_, r := setupRouter(t)

	req := httptest.NewRequest("GET", "/user", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestGetAllUsers_HidesPassword(t *testing.T) {
	t.Setenv("ADMIN_API_KEY", "test-admin-key")
	db, r := setupRouter(t)
	require.NoError(t, db.Create(&models.User{Username: "maria", Password: "hashed"}).Error)

	req := httptest.NewRequest("GET", "/admin/users", nil)
	req.Header.Set("X-API-KEY", "test-admin-key")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	require.Equal(t, http.StatusOK, w.Code)

	assert.NotContains(t, w.Body.String(), "hashed")
}
