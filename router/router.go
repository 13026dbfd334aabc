package router

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/reyhanfikri/receipt-gen/controllers"
	"github.com/reyhanfikri/receipt-gen/middlewares"
	"github.com/reyhanfikri/receipt-gen/scraper"
)

func SetupRouter(db *gorm.DB) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(middlewares.LoggerMiddleware())
	r.Use(middlewares.CORSMiddlewares())
	// 50 requests/second per IP, small burst
	r.Use(middlewares.NewRateLimiter(50, 100).RateLimit())

	userCtrl := controllers.NewUserController(db)
	receiptCtrl := controllers.NewReceiptController(db)
	renderCtrl := controllers.NewRenderController()
	productCtrl := controllers.NewProductController(scraper.New())

	api := r.Group("/api")

	auth := api.Group("/auth")
	{
		auth.POST("/register", userCtrl.Register)
		auth.POST("/login", userCtrl.Login)
	}

	receipts := api.Group("/receipts")
	{
		receipts.GET("", receiptCtrl.ListReceipts)
		receipts.GET("/:receipt_id", receiptCtrl.GetReceiptByID)
		receipts.POST("", middlewares.AuthMiddleware(), receiptCtrl.CreateReceipt)
		receipts.POST("/:receipt_id/items", middlewares.AuthMiddleware(), receiptCtrl.CreateReceiptItems)

		receipts.POST("/render", renderCtrl.RenderDocument)
		receipts.POST("/render/png", renderCtrl.RenderPNG)
		receipts.POST("/render/pdf", renderCtrl.RenderPDF)
		receipts.POST("/fill", renderCtrl.FillToTotal)
	}

	api.POST("/fetch-product", productCtrl.FetchProduct)

	return r
}
