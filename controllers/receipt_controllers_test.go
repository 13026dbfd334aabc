package controllers_test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strconv"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/reyhanfikri/receipt-gen/controllers"
	"github.com/reyhanfikri/receipt-gen/models"
	"github.com/reyhanfikri/receipt-gen/utils"
)

// setupTestDB opens a named in-memory database so pooled connections share
// one store while each test stays isolated from the others.
func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	dsn := "file:" + strings.ReplaceAll(t.Name(), "/", "_") + "?mode=memory&cache=shared"
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&models.User{}, &models.Receipt{}, &models.ReceiptItem{}))
	return db
}

func setupReceiptRouter(db *gorm.DB) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	ctrl := controllers.NewReceiptController(db)
	r.GET("/receipts", ctrl.ListReceipts)
	r.GET("/receipts/:receipt_id", ctrl.GetReceiptByID)
	r.POST("/receipts", ctrl.CreateReceipt)
	r.POST("/receipts/:receipt_id/items", ctrl.CreateReceiptItems)
	return r
}

func validReceiptPayload() map[string]interface{} {
	return map[string]interface{}{
		"store_number":    "5260",
		"store_address":   "300 WALMART WAY",
		"store_city":      "BENTONVILLE",
		"store_state_zip": "AR 72712",
		"store_phone":     "(479) 555-1234",
		"store_manager":   "SHERRIE BLACK",
		"survey_code":     "7N5P0L1SL09X",
		"receipt_date":    "2025-03-14T13:45",
		"cashier":         "JOHN",
		"register":        "12",
		"terminal":        "SC011053",
		"operator":        "00482",
		"tax_rate":        "6.625",
		"payment_method":  "DEBIT",
		"card_last_four":  "1924",
	}
}

func postJSON(t *testing.T, r *gin.Engine, url string, payload interface{}) *httptest.ResponseRecorder {
	t.Helper()
	body, err := json.Marshal(payload)
	require.NoError(t, err)
	req, err := http.NewRequest(http.MethodPost, url, bytes.NewBuffer(body))
	require.NoError(t, err)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestCreateAndGetReceipt(t *testing.T) {
	utils.InitLogger()
	db := setupTestDB(t)
	r := setupReceiptRouter(db)

	w := postJSON(t, r, "/receipts", validReceiptPayload())
	require.Equal(t, http.StatusCreated, w.Code)

	var createResp struct {
		Message string         `json:"message"`
		Data    models.Receipt `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &createResp))
	assert.Equal(t, "Receipt created", createResp.Message)
	require.NotZero(t, createResp.Data.ID)

	req, _ := http.NewRequest(http.MethodGet, "/receipts/"+strconv.Itoa(int(createResp.Data.ID)), nil)
	w = httptest.NewRecorder()
	r.ServeHTTP(w, req)
	require.Equal(t, http.StatusOK, w.Code)

	var getResp struct {
		Data models.Receipt `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &getResp))
	assert.Equal(t, "5260", getResp.Data.StoreNumber)
	assert.Equal(t, "DEBIT", getResp.Data.PaymentMethod)
	// Derived totals are never persisted with the record.
	assert.Equal(t, "6.625", getResp.Data.TaxRate)
}

func TestCreateReceiptRejectsUnknownMethod(t *testing.T) {
	utils.InitLogger()
	db := setupTestDB(t)
	r := setupReceiptRouter(db)

	payload := validReceiptPayload()
	payload["payment_method"] = "BITCOIN"
	w := postJSON(t, r, "/receipts", payload)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestCreateReceiptItemsSingleAndBulk(t *testing.T) {
	utils.InitLogger()
	db := setupTestDB(t)
	r := setupReceiptRouter(db)

	w := postJSON(t, r, "/receipts", validReceiptPayload())
	require.Equal(t, http.StatusCreated, w.Code)
	var createResp struct {
		Data models.Receipt `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &createResp))
	base := "/receipts/" + strconv.Itoa(int(createResp.Data.ID)) + "/items"

	// single object body
	w = postJSON(t, r, base, map[string]string{
		"name": "Bananas", "price": "1.24", "quantity": "1",
	})
	require.Equal(t, http.StatusCreated, w.Code)

	// array body
	w = postJSON(t, r, base, []map[string]string{
		{"name": "Great Value Milk 1 Gallon", "price": "3.48", "quantity": "1"},
		{"name": "Oreo Cookies", "price": "3.68", "quantity": "2"},
	})
	require.Equal(t, http.StatusCreated, w.Code)

	var items []models.ReceiptItem
	require.NoError(t, db.Where("receipt_id = ?", createResp.Data.ID).Find(&items).Error)
	assert.Len(t, items, 3)
	// Stored values round-trip verbatim.
	assert.Equal(t, "3.68", items[2].Price)
	assert.Equal(t, "2", items[2].Quantity)
}

func TestCreateReceiptItemsUnknownReceipt(t *testing.T) {
	utils.InitLogger()
	db := setupTestDB(t)
	r := setupReceiptRouter(db)

	w := postJSON(t, r, "/receipts/999/items", map[string]string{
		"name": "Bananas", "price": "1.24", "quantity": "1",
	})
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestListReceipts(t *testing.T) {
	utils.InitLogger()
	db := setupTestDB(t)
	r := setupReceiptRouter(db)

	for i := 0; i < 3; i++ {
		w := postJSON(t, r, "/receipts", validReceiptPayload())
		require.Equal(t, http.StatusCreated, w.Code)
	}

	req, _ := http.NewRequest(http.MethodGet, "/receipts", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	require.Equal(t, http.StatusOK, w.Code)

	var listResp struct {
		Data []models.Receipt `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &listResp))
	assert.Len(t, listResp.Data, 3)
}
