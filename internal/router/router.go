package router

import (
	"net/http"

	"github.com/gin-gonic/gin"
	rd "github.com/redis/go-redis/v9"
	"gorm.io/gorm"

	"marketplace/internal/config"
	"marketplace/internal/middleware"
	"marketplace/internal/queue"
)

// Setup 注册全部 HTTP 路由。
func Setup(r *gin.Engine, db *gorm.DB, rdb *rd.Client, outbox *queue.Outbox, cfg config.AppConfig) {
	r.GET("/ping", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"msg": "pong"})
	})

	// Users & wallets
	r.POST("/api/users", createUser(db))
	r.GET("/api/wallets/:user_id", getWallet(db))
	r.POST("/api/wallets/:user_id/deposit", depositFunds(db, outbox))
	r.POST("/api/wallets/:user_id/withdraw", withdrawFunds(db, outbox))
	r.GET("/api/wallets/:user_id/transactions", listTransactions(db))

	// Catalog
	r.GET("/api/categories", listCategories(db))
	r.POST("/api/categories", createCategory(db, cfg.AdminToken))
	r.GET("/api/categories/:id", getCategory(db))
	r.GET("/api/products", listProducts(db))
	r.POST("/api/products", createProduct(db, cfg.AdminToken))
	r.GET("/api/products/:id", getProduct(db, rdb, cfg.StockCacheTTL))
	r.POST("/api/products/:id/restock", restockProduct(db, rdb, cfg.AdminToken))

	// Orders（结账接口限流，防刷单）
	r.POST("/api/orders",
		middleware.RedisRateLimit(rdb, cfg.CheckoutRateLimit, cfg.CheckoutRateWindow),
		checkout(db, rdb, outbox))
	r.GET("/api/orders", listOrders(db))
	r.GET("/api/orders/:order_no", getOrder(db))
	r.POST("/api/orders/:order_no/cancel", cancelOrder(db, rdb, outbox))
	r.POST("/api/orders/:order_no/refund", refundOrder(db, rdb, outbox))

	// Reviews & support
	r.POST("/api/reviews", createReview(db))
	r.GET("/api/products/:id/reviews", listReviews(db))
	r.POST("/api/tickets", createTicket(db))
	r.GET("/api/tickets", listTickets(db))
	r.PATCH("/api/tickets/:id/status", updateTicketStatus(db))
	r.PATCH("/api/tickets/:id/assign", assignTicket(db))

	// Audit（管理员）
	r.GET("/api/audit", listAuditLogs(db, cfg.AdminToken))
}
