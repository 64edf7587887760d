package router

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	rd "github.com/redis/go-redis/v9"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"marketplace/internal/model"
	"marketplace/internal/queue"
	"marketplace/internal/repository"
	rediskey "marketplace/pkg/redis"
)

var (
	errInsufficientStock = errors.New("insufficient stock")
	errInsufficientFunds = errors.New("insufficient funds")
	errProductInactive   = errors.New("product not available")
)

// checkout 下单结账。关键流程：
// 1. 参数校验，逐项检查商品可售
// 2. 条件 UPDATE 原子扣库存（防超卖）
// 3. 条件 UPDATE 原子扣钱包（防透支）
// 4. 落订单 + 行项目 + purchase 流水，同一事务
// 5. 提交后失效库存缓存、投递审计事件
func checkout(db *gorm.DB, rdb *rd.Client, outbox *queue.Outbox) gin.HandlerFunc {
	type checkoutItem struct {
		ProductID uint  `json:"product_id" binding:"required,min=1"`
		Quantity  int64 `json:"quantity" binding:"required,min=1"`
	}
	return func(c *gin.Context) {
		var req struct {
			BuyerID uint           `json:"buyer_id" binding:"required,min=1"`
			Items   []checkoutItem `json:"items" binding:"required,min=1,dive"`
			Notes   string         `json:"notes"`
		}
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"code": 400, "msg": err.Error()})
			return
		}

		var order *model.Order
		err := db.Transaction(func(tx *gorm.DB) error {
			products := repository.NewProductRepo(tx)
			wallets := repository.NewWalletRepo(tx)

			total := decimal.Zero
			items := make([]model.OrderItem, 0, len(req.Items))
			for _, it := range req.Items {
				p, err := products.GetByID(it.ProductID)
				if err != nil {
					if errors.Is(err, gorm.ErrRecordNotFound) {
						return fmt.Errorf("%w: product %d", errProductInactive, it.ProductID)
					}
					return err
				}
				if !p.IsActive {
					return fmt.Errorf("%w: product %d", errProductInactive, it.ProductID)
				}
				ok, err := products.ReserveStock(p.ID, it.Quantity)
				if err != nil {
					return err
				}
				if !ok {
					return fmt.Errorf("%w: product %d", errInsufficientStock, it.ProductID)
				}
				items = append(items, model.OrderItem{
					ProductID: p.ID,
					Quantity:  int(it.Quantity),
					Price:     p.Price,
				})
				total = total.Add(p.Price.Mul(decimal.NewFromInt(it.Quantity)))
			}

			wallet, err := wallets.GetByUserID(req.BuyerID)
			if err != nil {
				return err
			}
			paid, err := wallets.Withdraw(wallet.ID, total)
			if err != nil {
				return err
			}
			if !paid {
				return errInsufficientFunds
			}

			order = &model.Order{
				BuyerID:    req.BuyerID,
				TotalPrice: total,
				Status:     model.OrderStatusPaid,
				Notes:      req.Notes,
			}
			if err := repository.NewOrderRepo(tx).CreateWithItems(order, items); err != nil {
				return err
			}

			// 钱包操作不自带流水，作为调用方在这里补记 purchase。
			return repository.NewTransactionRepo(tx).Append(&model.Transaction{
				WalletID:    wallet.ID,
				Amount:      total.Neg(),
				Type:        model.TransactionPurchase,
				Description: "order " + order.OrderNo,
				ReferenceID: order.OrderNo,
			})
		})
		if err != nil {
			writeCheckoutError(c, err)
			return
		}

		for _, it := range order.Items {
			_ = rediskey.InvalidateStock(c.Request.Context(), rdb, it.ProductID)
		}
		emitOrderAudit(c, outbox, req.BuyerID, order, "checkout")

		c.JSON(http.StatusOK, gin.H{"code": 0, "data": order})
	}
}

// getOrder 按订单号查询。
func getOrder(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		orderNo := c.Param("order_no")
		if orderNo == "" {
			c.JSON(http.StatusBadRequest, gin.H{"code": 400, "msg": "order_no required"})
			return
		}
		o, err := repository.NewOrderRepo(db).GetByOrderNo(orderNo)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				c.JSON(http.StatusNotFound, gin.H{"code": 404, "msg": "order not found"})
				return
			}
			c.JSON(http.StatusInternalServerError, gin.H{"code": 500, "msg": err.Error()})
			return
		}
		c.JSON(http.StatusOK, gin.H{"code": 0, "data": gin.H{
			"order":      o,
			"can_cancel": o.CanCancel(),
			"can_refund": o.CanRefund(),
		}})
	}
}

// listOrders 买家订单列表。
func listOrders(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		raw := c.Query("buyer_id")
		buyerID, err := strconv.ParseUint(raw, 10, 32)
		if err != nil || buyerID == 0 {
			c.JSON(http.StatusBadRequest, gin.H{"code": 400, "msg": "invalid buyer_id"})
			return
		}
		limit, offset := pageParams(c)
		list, err := repository.NewOrderRepo(db).ListByBuyer(uint(buyerID), limit, offset)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"code": 500, "msg": err.Error()})
			return
		}
		c.JSON(http.StatusOK, gin.H{"code": 0, "data": list})
	}
}

// cancelOrder 取消订单：CanCancel 建议性判断在这里生效。
// 已支付的单子退款回钱包并回补库存。
func cancelOrder(db *gorm.DB, rdb *rd.Client, outbox *queue.Outbox) gin.HandlerFunc {
	return closeOrder(db, rdb, outbox, "cancel")
}

// refundOrder 退款：paid/shipped/delivered 可退。
func refundOrder(db *gorm.DB, rdb *rd.Client, outbox *queue.Outbox) gin.HandlerFunc {
	return closeOrder(db, rdb, outbox, "refund")
}

// closeOrder 取消与退款共用的收尾流程：改状态、回补库存、退钱、补流水。
func closeOrder(db *gorm.DB, rdb *rd.Client, outbox *queue.Outbox, op string) gin.HandlerFunc {
	return func(c *gin.Context) {
		orderNo := c.Param("order_no")
		if orderNo == "" {
			c.JSON(http.StatusBadRequest, gin.H{"code": 400, "msg": "order_no required"})
			return
		}

		var order *model.Order
		err := db.Transaction(func(tx *gorm.DB) error {
			orders := repository.NewOrderRepo(tx)
			var err error
			order, err = orders.GetByOrderNo(orderNo)
			if err != nil {
				return err
			}

			refundable := order.Status != model.OrderStatusPending
			target := model.OrderStatusCanceled
			if op == "cancel" {
				if !order.CanCancel() {
					return fmt.Errorf("order %s cannot be canceled from status %s", orderNo, order.Status)
				}
			} else {
				if !order.CanRefund() {
					return fmt.Errorf("order %s cannot be refunded from status %s", orderNo, order.Status)
				}
				target = model.OrderStatusRefunded
			}
			if err := orders.UpdateStatus(order.ID, target); err != nil {
				return err
			}
			order.Status = target

			products := repository.NewProductRepo(tx)
			for _, it := range order.Items {
				if err := products.RestockBy(it.ProductID, int64(it.Quantity)); err != nil {
					return err
				}
			}

			if !refundable {
				return nil // pending 单没扣过款，无需退钱
			}
			wallets := repository.NewWalletRepo(tx)
			w, err := wallets.GetByUserID(order.BuyerID)
			if err != nil {
				return err
			}
			if err := wallets.Deposit(w.ID, order.TotalPrice); err != nil {
				return err
			}
			return repository.NewTransactionRepo(tx).Append(&model.Transaction{
				WalletID:    w.ID,
				Amount:      order.TotalPrice,
				Type:        model.TransactionRefund,
				Description: op + " order " + order.OrderNo,
				ReferenceID: order.OrderNo,
			})
		})
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				c.JSON(http.StatusNotFound, gin.H{"code": 404, "msg": "order not found"})
				return
			}
			c.JSON(http.StatusBadRequest, gin.H{"code": 400, "msg": err.Error()})
			return
		}

		for _, it := range order.Items {
			_ = rediskey.InvalidateStock(c.Request.Context(), rdb, it.ProductID)
		}
		emitOrderAudit(c, outbox, order.BuyerID, order, op)

		c.JSON(http.StatusOK, gin.H{"code": 0, "data": order})
	}
}

func writeCheckoutError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, errInsufficientStock),
		errors.Is(err, errInsufficientFunds),
		errors.Is(err, errProductInactive),
		errors.Is(err, model.ErrInvalidAmount):
		c.JSON(http.StatusBadRequest, gin.H{"code": 400, "msg": err.Error()})
	case errors.Is(err, gorm.ErrRecordNotFound):
		c.JSON(http.StatusNotFound, gin.H{"code": 404, "msg": "wallet not found"})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{"code": 500, "msg": err.Error()})
	}
}

// emitOrderAudit 订单动作的审计事件，入流失败只记日志不影响主流程。
func emitOrderAudit(c *gin.Context, outbox *queue.Outbox, buyerID uint, order *model.Order, op string) {
	_ = outbox.Emit(c.Request.Context(), queue.AuditMessage{
		UserID:       &buyerID,
		Action:       string(model.AuditPayment),
		IPAddress:    c.ClientIP(),
		UserAgent:    c.Request.UserAgent(),
		ResourceType: "order",
		ResourceID:   order.OrderNo,
		Details: map[string]any{
			"op":     op,
			"total":  order.TotalPrice.StringFixed(2),
			"status": string(order.Status),
		},
	})
}
