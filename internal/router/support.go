package router

import (
	"errors"
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"marketplace/internal/model"
	"marketplace/internal/repository"
)

// createReview 发表评价。一人一评由唯一索引保证，冲突时返回 409。
func createReview(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req struct {
			UserID    uint   `json:"user_id" binding:"required,min=1"`
			ProductID uint   `json:"product_id" binding:"required,min=1"`
			Rating    int    `json:"rating" binding:"required,min=1,max=5"`
			Comment   string `json:"comment" binding:"required"`
		}
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"code": 400, "msg": err.Error()})
			return
		}

		// 买过且已送达的算验证购买
		verified := hasDeliveredOrder(db, req.UserID, req.ProductID)

		rev := &model.Review{
			UserID:             req.UserID,
			ProductID:          req.ProductID,
			Rating:             req.Rating,
			Comment:            req.Comment,
			IsVerifiedPurchase: verified,
		}
		if err := repository.NewReviewRepo(db).Create(rev); err != nil {
			if strings.Contains(strings.ToLower(err.Error()), "unique") {
				c.JSON(http.StatusConflict, gin.H{"code": 409, "msg": "review already exists for this product"})
				return
			}
			c.JSON(http.StatusInternalServerError, gin.H{"code": 500, "msg": err.Error()})
			return
		}
		c.JSON(http.StatusOK, gin.H{"code": 0, "data": rev})
	}
}

// hasDeliveredOrder 用户是否有包含该商品的已送达订单。
func hasDeliveredOrder(db *gorm.DB, userID, productID uint) bool {
	var n int64
	db.Model(&model.OrderItem{}).
		Joins("JOIN orders ON orders.id = order_items.order_id").
		Where("orders.buyer_id = ? AND order_items.product_id = ? AND orders.status = ?",
			userID, productID, model.OrderStatusDelivered).
		Count(&n)
	return n > 0
}

// listReviews 商品评价列表。
func listReviews(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		productID, ok := parseUintParam(c, "id")
		if !ok {
			return
		}
		limit, offset := pageParams(c)
		list, err := repository.NewReviewRepo(db).ListByProduct(productID, limit, offset)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"code": 500, "msg": err.Error()})
			return
		}
		c.JSON(http.StatusOK, gin.H{"code": 0, "data": list})
	}
}

// createTicket 提交工单，默认 open/medium。
func createTicket(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req struct {
			UserID   uint   `json:"user_id" binding:"required,min=1"`
			Subject  string `json:"subject" binding:"required"`
			Message  string `json:"message" binding:"required"`
			Priority string `json:"priority"`
		}
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"code": 400, "msg": err.Error()})
			return
		}
		priority := model.PriorityMedium
		if req.Priority != "" {
			priority = model.TicketPriority(req.Priority)
			if !priority.Valid() {
				c.JSON(http.StatusBadRequest, gin.H{"code": 400, "msg": "unknown priority"})
				return
			}
		}
		t := &model.Ticket{
			UserID:   req.UserID,
			Subject:  req.Subject,
			Message:  req.Message,
			Status:   model.TicketOpen,
			Priority: priority,
		}
		if err := repository.NewTicketRepo(db).Create(t); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"code": 500, "msg": err.Error()})
			return
		}
		c.JSON(http.StatusOK, gin.H{"code": 0, "data": t})
	}
}

// listTickets 用户的工单列表。
func listTickets(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		raw := c.Query("user_id")
		userID, err := strconv.ParseUint(raw, 10, 32)
		if err != nil || userID == 0 {
			c.JSON(http.StatusBadRequest, gin.H{"code": 400, "msg": "invalid user_id"})
			return
		}
		limit, offset := pageParams(c)
		list, err := repository.NewTicketRepo(db).ListByUser(uint(userID), limit, offset)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"code": 500, "msg": err.Error()})
			return
		}
		c.JSON(http.StatusOK, gin.H{"code": 0, "data": list})
	}
}

// updateTicketStatus 改工单状态（不强制迁移规则，只校验取值）。
func updateTicketStatus(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := parseUintParam(c, "id")
		if !ok {
			return
		}
		var req struct {
			Status string `json:"status" binding:"required"`
		}
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"code": 400, "msg": err.Error()})
			return
		}
		status := model.TicketStatus(req.Status)
		if !status.Valid() {
			c.JSON(http.StatusBadRequest, gin.H{"code": 400, "msg": "unknown status"})
			return
		}
		if err := repository.NewTicketRepo(db).UpdateStatus(id, status); err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				c.JSON(http.StatusNotFound, gin.H{"code": 404, "msg": "ticket not found"})
				return
			}
			c.JSON(http.StatusInternalServerError, gin.H{"code": 500, "msg": err.Error()})
			return
		}
		c.JSON(http.StatusOK, gin.H{"code": 0, "msg": "status updated"})
	}
}

// assignTicket 指派或取消指派处理人。
func assignTicket(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := parseUintParam(c, "id")
		if !ok {
			return
		}
		var req struct {
			AssigneeID *uint `json:"assignee_id"`
		}
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"code": 400, "msg": err.Error()})
			return
		}
		if err := repository.NewTicketRepo(db).Assign(id, req.AssigneeID); err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				c.JSON(http.StatusNotFound, gin.H{"code": 404, "msg": "ticket not found"})
				return
			}
			c.JSON(http.StatusInternalServerError, gin.H{"code": 500, "msg": err.Error()})
			return
		}
		c.JSON(http.StatusOK, gin.H{"code": 0, "msg": "assignee updated"})
	}
}
