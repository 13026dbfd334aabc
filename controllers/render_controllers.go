package controllers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/reyhanfikri/receipt-gen/export"
	"github.com/reyhanfikri/receipt-gen/receipt"
	"github.com/reyhanfikri/receipt-gen/utils"
)

// RenderController turns posted entity state into receipt documents and
// export artifacts. It holds no state; rendering is pure.
type RenderController struct{}

func NewRenderController() *RenderController {
	return &RenderController{}
}

type renderRequest struct {
	Store       receipt.StoreInfo       `json:"store"`
	Transaction receipt.TransactionInfo `json:"transaction"`
	Payment     receipt.PaymentInfo     `json:"payment"`
	Items       []receipt.LineItem      `json:"items"`
}

func (rr renderRequest) document() (receipt.Document, receipt.Totals, error) {
	if rr.Payment.Method != "" && !rr.Payment.Method.Valid() {
		return receipt.Document{}, receipt.Totals{}, errors.New("unknown payment method")
	}
	totals := receipt.Calculate(rr.Items, rr.Payment.TaxRate)
	return receipt.Render(rr.Store, rr.Transaction, rr.Payment, rr.Items, totals), totals, nil
}

// RenderDocument returns the laid-out receipt document plus the derived totals.
func (rc *RenderController) RenderDocument(c *gin.Context) {
	var req renderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}

	doc, totals, err := req.document()
	if err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}

	utils.RespondJSON(c, http.StatusOK, "Receipt rendered", gin.H{
		"document": doc,
		"totals": gin.H{
			"subtotal":   receipt.FormatAmount(totals.Subtotal),
			"tax_amount": receipt.FormatAmount(totals.TaxAmount),
			"total":      receipt.FormatAmount(totals.Total),
		},
	})
}

// RenderPNG streams the rasterized receipt.
func (rc *RenderController) RenderPNG(c *gin.Context) {
	var req renderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}

	doc, _, err := req.document()
	if err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}

	data, err := export.RenderPNG(doc)
	if err != nil {
		utils.ErrorLogger.Printf("PNG export failed: %v", err)
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}
	c.Data(http.StatusOK, "image/png", data)
}

// RenderPDF streams the receipt as a PDF sized for 80mm paper.
func (rc *RenderController) RenderPDF(c *gin.Context) {
	var req renderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}

	doc, _, err := req.document()
	if err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}

	data, err := export.RenderPDF(doc)
	if err != nil {
		utils.ErrorLogger.Printf("PDF export failed: %v", err)
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}
	c.Header("Content-Disposition", `attachment; filename="receipt.pdf"`)
	c.Data(http.StatusOK, "application/pdf", data)
}

type fillRequest struct {
	DesiredTotal float64            `json:"desired_total" binding:"required,gt=0"`
	TaxRate      string             `json:"tax_rate"`
	Items        []receipt.LineItem `json:"items"`
}

// FillToTotal appends catalog items to the posted list until the projected
// post-tax total approaches the requested amount.
func (rc *RenderController) FillToTotal(c *gin.Context) {
	var req fillRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}

	items := receipt.FillToTotal(req.DesiredTotal, req.Items, req.TaxRate)
	utils.RespondJSON(c, http.StatusOK, "Receipt filled", gin.H{
		"items":  items,
		"totals": receipt.Calculate(items, req.TaxRate),
	})
}
