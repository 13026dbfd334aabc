package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/reyhanfikri/receipt-gen/scraper"
	"github.com/reyhanfikri/receipt-gen/utils"
)

type ProductController struct {
	Scraper *scraper.Scraper
}

func NewProductController(s *scraper.Scraper) *ProductController {
	return &ProductController{Scraper: s}
}

// FetchProduct extracts {name, price} from a product page URL. On any
// extraction failure the error is surfaced as-is and no item data is
// returned, so the client never inserts a placeholder item.
func (pc *ProductController) FetchProduct(c *gin.Context) {
	var req struct {
		URL string `json:"url" binding:"required,url"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}

	product, err := pc.Scraper.Fetch(c.Request.Context(), req.URL)
	if err != nil {
		utils.InfoLogger.Printf("Product fetch failed for %s: %v", req.URL, err)
		utils.RespondError(c, http.StatusBadGateway, err)
		return
	}

	utils.RespondJSON(c, http.StatusOK, "Product fetched", product)
}
