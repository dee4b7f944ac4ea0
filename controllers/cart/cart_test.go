package cartControllers_test

import (
	"bytes"
	"encoding/json"
	"fmt"
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

func seedUser(t *testing.T, db *gorm.DB, username string) (models.User, string) {
	t.Helper()
	user := models.User{Username: username, Password: "hashed", Cart: models.Cart{}}
	require.NoError(t, db.Create(&user).Error)
	token, err := auth.IssueToken(user.ID, user.Username)
	require.NoError(t, err)
	return user, token
}

func seedProduct(t *testing.T, db *gorm.DB, name string, price float64, stock int) models.Product {
	t.Helper()
	brand := models.Brand{Name: "Acme"}
	require.NoError(t, db.FirstOrCreate(&brand, models.Brand{Name: "Acme"}).Error)
	product := models.Product{Name: name, Price: price, Stock: stock, BrandID: brand.ID}
	require.NoError(t, db.Create(&product).Error)
	return product
}

func doJSON(r http.Handler, method, path string, body interface{}, token string) *httptest.ResponseRecorder {
	var buf bytes.Buffer
	if body != nil {
		json.NewEncoder(&buf).Encode(body)
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestAddCartLine_Unauthenticated(t *testing.T) {
	_, r := setupRouter(t)

	w := doJSON(r, "POST", "/cart", gin.H{"product_id": 1}, "")
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestAddCartLine_DefaultsQuantityToOne(t *testing.T) {
	db, r := setupRouter(t)
	_, token := seedUser(t, db, "maria")
	product := seedProduct(t, db, "Logo Tee", 10.00, 5)

	w := doJSON(r, "POST", "/cart", gin.H{"product_id": product.ID}, token)
	assert.Equal(t, http.StatusCreated, w.Code)

	var line models.CartLine
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &line))
	assert.Equal(t, 1, line.Quantity)
	assert.Equal(t, "Logo Tee", line.ProductName)
	assert.Equal(t, "Acme", line.BrandName)
}

func TestAddCartLine_SameProductTwiceKeepsTwoLines(t *testing.T) {
	db, r := setupRouter(t)
	_, token := seedUser(t, db, "maria")
	product := seedProduct(t, db, "Logo Tee", 10.00, 5)

	doJSON(r, "POST", "/cart", gin.H{"product_id": product.ID, "quantity": 2}, token)
	doJSON(r, "POST", "/cart", gin.H{"product_id": product.ID, "quantity": 1}, token)

	w := doJSON(r, "GET", "/cart", nil, token)
	assert.Equal(t, http.StatusOK, w.Code)

	var lines []models.CartLine
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &lines))
	require.Len(t, lines, 2)
	assert.NotEqual(t, lines[0].ID, lines[1].ID)

	// Each line is removable on its own.
	w = doJSON(r, "PUT", fmt.Sprintf("/cart/%d", lines[0].ID), gin.H{"quantity": 0}, token)
	assert.Equal(t, http.StatusOK, w.Code)

	w = doJSON(r, "GET", "/cart", nil, token)
	var remaining []models.CartLine
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &remaining))
	require.Len(t, remaining, 1)
	assert.Equal(t, lines[1].ID, remaining[0].ID)
}

func TestUpdateCartLine_SetsQuantity(t *testing.T) {
	db, r := setupRouter(t)
	_, token := seedUser(t, db, "maria")
	product := seedProduct(t, db, "Logo Tee", 10.00, 5)

	w := doJSON(r, "POST", "/cart", gin.H{"product_id": product.ID}, token)
	var line models.CartLine
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &line))

	w = doJSON(r, "PUT", fmt.Sprintf("/cart/%d", line.ID), gin.H{"quantity": 4}, token)
	assert.Equal(t, http.StatusOK, w.Code)

	var updated models.CartLine
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &updated))
	assert.Equal(t, 4, updated.Quantity)
}

func TestUpdateCartLine_RejectsNegativeQuantity(t *testing.T) {
	db, r := setupRouter(t)
	_, token := seedUser(t, db, "maria")
	product := seedProduct(t, db, "Logo Tee", 10.00, 5)

	w := doJSON(r, "POST", "/cart", gin.H{"product_id": product.ID}, token)
	var line models.CartLine
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &line))

	w = doJSON(r, "PUT", fmt.Sprintf("/cart/%d", line.ID), gin.H{"quantity": -2}, token)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestUpdateCartLine_OtherUsersLineNotFound(t *testing.T) {
	db, r := setupRouter(t)
	_, token := seedUser(t, db, "maria")
	_, otherToken := seedUser(t, db, "nadia")
	product := seedProduct(t, db, "Logo Tee", 10.00, 5)

	w := doJSON(r, "POST", "/cart", gin.H{"product_id": product.ID}, token)
	var line models.CartLine
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &line))

	w = doJSON(r, "PUT", fmt.Sprintf("/cart/%d", line.ID), gin.H{"quantity": 0}, otherToken)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestCartTotal(t *testing.T) {
	db, r := setupRouter(t)
	_, token := seedUser(t, db, "maria")
	tee := seedProduct(t, db, "Logo Tee", 10.00, 5)
	hat := seedProduct(t, db, "Cap", 5.50, 5)

	doJSON(r, "POST", "/cart", gin.H{"product_id": tee.ID, "quantity": 2}, token)
	doJSON(r, "POST", "/cart", gin.H{"product_id": hat.ID, "quantity": 1}, token)

	w := doJSON(r, "GET", "/cart/total", nil, token)
	assert.Equal(t, http.StatusOK, w.Code)

	var resp map[string]float64
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, 25.50, resp["total"])
}

func TestCartSnapshot_SurvivesProductEdit(t *testing.T) {
	db, r := setupRouter(t)
	_, token := seedUser(t, db, "maria")
	product := seedProduct(t, db, "Logo Tee", 10.00, 5)

	doJSON(r, "POST", "/cart", gin.H{"product_id": product.ID}, token)

	// Price hike after the line was added must not change the snapshot.
	require.NoError(t, db.Model(&models.Product{}).Where("id = ?", product.ID).
		Update("price", 99.99).Error)

	w := doJSON(r, "GET", "/cart", nil, token)
	var lines []models.CartLine
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &lines))
	require.Len(t, lines, 1)
	assert.Equal(t, 10.00, lines[0].ProductPrice)
}
