package controllers

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/reyhanfikri/receipt-gen/models"
	"github.com/reyhanfikri/receipt-gen/receipt"
	"github.com/reyhanfikri/receipt-gen/utils"
)

type ReceiptController struct {
	DB *gorm.DB
}

func NewReceiptController(db *gorm.DB) *ReceiptController {
	return &ReceiptController{DB: db}
}

// ListReceipts returns every saved receipt without items.
func (rc *ReceiptController) ListReceipts(c *gin.Context) {
	var receipts []models.Receipt
	if err := rc.DB.Find(&receipts).Error; err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}
	utils.RespondJSON(c, http.StatusOK, "Receipt list", receipts)
}

// GetReceiptByID returns one saved receipt with its items.
func (rc *ReceiptController) GetReceiptByID(c *gin.Context) {
	var rec models.Receipt
	if err := rc.DB.Preload("Items").First(&rec, c.Param("receipt_id")).Error; err != nil {
		utils.RespondError(c, http.StatusNotFound, errors.New("receipt not found"))
		return
	}
	utils.RespondJSON(c, http.StatusOK, "Receipt detail", rec)
}

type createReceiptRequest struct {
	StoreNumber   string `json:"store_number" binding:"required"`
	StoreAddress  string `json:"store_address" binding:"required"`
	StoreCity     string `json:"store_city" binding:"required"`
	StoreStateZip string `json:"store_state_zip" binding:"required"`
	StorePhone    string `json:"store_phone" binding:"required"`
	StoreManager  string `json:"store_manager"`
	SurveyCode    string `json:"survey_code"`

	ReceiptDate string `json:"receipt_date" binding:"required"`
	Cashier     string `json:"cashier" binding:"required"`
	Register    string `json:"register" binding:"required"`
	Terminal    string `json:"terminal"`
	Operator    string `json:"operator"`

	TaxRate         string `json:"tax_rate" binding:"required"`
	PaymentMethod   string `json:"payment_method" binding:"required"`
	CardLastFour    string `json:"card_last_four" binding:"max=4"`
	Change          string `json:"change"`
	ApprovalCode    string `json:"approval_code"`
	ReferenceNumber string `json:"reference_number"`
	NetworkID       string `json:"network_id"`
	AID             string `json:"aid"`
	ARC             string `json:"arc"`
}

// CreateReceipt saves the flattened entity fields as a new receipt record.
func (rc *ReceiptController) CreateReceipt(c *gin.Context) {
	var req createReceiptRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}

	if !receipt.PaymentMethod(req.PaymentMethod).Valid() {
		utils.RespondError(c, http.StatusBadRequest, errors.New("unknown payment method"))
		return
	}

	rec := models.Receipt{
		StoreNumber:     req.StoreNumber,
		StoreAddress:    req.StoreAddress,
		StoreCity:       req.StoreCity,
		StoreStateZip:   req.StoreStateZip,
		StorePhone:      req.StorePhone,
		StoreManager:    req.StoreManager,
		SurveyCode:      req.SurveyCode,
		ReceiptDate:     req.ReceiptDate,
		Cashier:         req.Cashier,
		Register:        req.Register,
		Terminal:        req.Terminal,
		Operator:        req.Operator,
		TaxRate:         req.TaxRate,
		PaymentMethod:   req.PaymentMethod,
		CardLastFour:    req.CardLastFour,
		Change:          req.Change,
		ApprovalCode:    req.ApprovalCode,
		ReferenceNumber: req.ReferenceNumber,
		NetworkID:       req.NetworkID,
		AID:             req.AID,
		ARC:             req.ARC,
	}

	if userID, ok := c.Get("userID"); ok {
		if id, ok := userID.(uint); ok {
			rec.UserID = &id
		}
	}

	if err := rc.DB.Create(&rec).Error; err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}

	utils.InfoLogger.Printf("Receipt %d created (store #%s)", rec.ID, rec.StoreNumber)
	utils.RespondJSON(c, http.StatusCreated, "Receipt created", rec)
}

type createItemRequest struct {
	Name     string `json:"name"`
	Price    string `json:"price"`
	Quantity string `json:"quantity"`
}

// CreateReceiptItems appends one or more items to a saved receipt. The body
// may be a single item object or an array of them.
func (rc *ReceiptController) CreateReceiptItems(c *gin.Context) {
	var rec models.Receipt
	if err := rc.DB.First(&rec, c.Param("receipt_id")).Error; err != nil {
		utils.RespondError(c, http.StatusNotFound, errors.New("receipt not found"))
		return
	}

	raw, err := c.GetRawData()
	if err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}

	var reqs []createItemRequest
	if err := json.Unmarshal(raw, &reqs); err != nil {
		var one createItemRequest
		if err := json.Unmarshal(raw, &one); err != nil {
			utils.RespondError(c, http.StatusBadRequest, err)
			return
		}
		reqs = []createItemRequest{one}
	}

	for _, req := range reqs {
		if req.Name == "" || req.Price == "" || req.Quantity == "" {
			utils.RespondError(c, http.StatusBadRequest, errors.New("item name, price and quantity are required"))
			return
		}
	}

	created := make([]models.ReceiptItem, 0, len(reqs))
	for _, req := range reqs {
		item := models.ReceiptItem{
			ReceiptID: rec.ID,
			Name:      req.Name,
			Price:     req.Price,
			Quantity:  req.Quantity,
		}
		if err := rc.DB.Create(&item).Error; err != nil {
			utils.RespondError(c, http.StatusInternalServerError, err)
			return
		}
		created = append(created, item)
	}

	utils.RespondJSON(c, http.StatusCreated, "Receipt items created", created)
}
