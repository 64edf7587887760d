package router

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"marketplace/internal/model"
	"marketplace/internal/queue"
	"marketplace/internal/repository"
)

// createUser 注册用户并同步开钱包（一人一个）。
func createUser(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req struct {
			Email    string `json:"email" binding:"required,email"`
			FullName string `json:"full_name" binding:"required"`
			Currency string `json:"currency"`
		}
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"code": 400, "msg": err.Error()})
			return
		}
		if req.Currency == "" {
			req.Currency = "USD"
		}

		user := &model.User{Email: req.Email, FullName: req.FullName, IsActive: true}
		err := db.Transaction(func(tx *gorm.DB) error {
			if err := tx.Create(user).Error; err != nil {
				return err
			}
			return repository.NewWalletRepo(tx).Create(&model.Wallet{
				UserID:   user.ID,
				Balance:  decimal.Zero,
				Currency: req.Currency,
			})
		})
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"code": 500, "msg": err.Error()})
			return
		}
		c.JSON(http.StatusOK, gin.H{"code": 0, "data": user})
	}
}

// getWallet 查钱包余额。
func getWallet(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, ok := parseUintParam(c, "user_id")
		if !ok {
			return
		}
		w, err := repository.NewWalletRepo(db).GetByUserID(userID)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				c.JSON(http.StatusNotFound, gin.H{"code": 404, "msg": "wallet not found"})
				return
			}
			c.JSON(http.StatusInternalServerError, gin.H{"code": 500, "msg": err.Error()})
			return
		}
		c.JSON(http.StatusOK, gin.H{"code": 0, "data": w})
	}
}

// depositFunds 充值：原子加款 + 流水 + 审计事件。
// 钱包操作本身不写流水，在这里作为调用方补记（两者的分离是有意保留的）。
func depositFunds(db *gorm.DB, outbox *queue.Outbox) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, ok := parseUintParam(c, "user_id")
		if !ok {
			return
		}
		var req struct {
			Amount      decimal.Decimal `json:"amount" binding:"required"`
			ReferenceID string          `json:"reference_id"`
		}
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"code": 400, "msg": err.Error()})
			return
		}

		var w *model.Wallet
		err := db.Transaction(func(tx *gorm.DB) error {
			wallets := repository.NewWalletRepo(tx)
			var err error
			w, err = wallets.GetByUserID(userID)
			if err != nil {
				return err
			}
			if err := wallets.Deposit(w.ID, req.Amount); err != nil {
				return err
			}
			return repository.NewTransactionRepo(tx).Append(&model.Transaction{
				WalletID:    w.ID,
				Amount:      req.Amount,
				Type:        model.TransactionDeposit,
				Description: "wallet deposit",
				ReferenceID: req.ReferenceID,
			})
		})
		if err != nil {
			writeWalletError(c, err)
			return
		}

		emitWalletAudit(c, outbox, userID, w.ID, "deposit", req.Amount)
		c.JSON(http.StatusOK, gin.H{"code": 0, "msg": "deposit ok"})
	}
}

// withdrawFunds 提现：条件 UPDATE 原子扣款，余额不足直接 400。
func withdrawFunds(db *gorm.DB, outbox *queue.Outbox) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, ok := parseUintParam(c, "user_id")
		if !ok {
			return
		}
		var req struct {
			Amount      decimal.Decimal `json:"amount" binding:"required"`
			ReferenceID string          `json:"reference_id"`
		}
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"code": 400, "msg": err.Error()})
			return
		}

		var w *model.Wallet
		insufficient := false
		err := db.Transaction(func(tx *gorm.DB) error {
			wallets := repository.NewWalletRepo(tx)
			var err error
			w, err = wallets.GetByUserID(userID)
			if err != nil {
				return err
			}
			done, err := wallets.Withdraw(w.ID, req.Amount)
			if err != nil {
				return err
			}
			if !done {
				insufficient = true
				return nil
			}
			return repository.NewTransactionRepo(tx).Append(&model.Transaction{
				WalletID:    w.ID,
				Amount:      req.Amount.Neg(),
				Type:        model.TransactionWithdraw,
				Description: "wallet withdraw",
				ReferenceID: req.ReferenceID,
			})
		})
		if err != nil {
			writeWalletError(c, err)
			return
		}
		if insufficient {
			c.JSON(http.StatusBadRequest, gin.H{"code": 400, "msg": "insufficient funds"})
			return
		}

		emitWalletAudit(c, outbox, userID, w.ID, "withdraw", req.Amount)
		c.JSON(http.StatusOK, gin.H{"code": 0, "msg": "withdraw ok"})
	}
}

// listTransactions 钱包流水（append-only，只读）。
func listTransactions(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, ok := parseUintParam(c, "user_id")
		if !ok {
			return
		}
		w, err := repository.NewWalletRepo(db).GetByUserID(userID)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				c.JSON(http.StatusNotFound, gin.H{"code": 404, "msg": "wallet not found"})
				return
			}
			c.JSON(http.StatusInternalServerError, gin.H{"code": 500, "msg": err.Error()})
			return
		}
		limit, offset := pageParams(c)
		list, err := repository.NewTransactionRepo(db).ListByWallet(w.ID, limit, offset)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"code": 500, "msg": err.Error()})
			return
		}
		c.JSON(http.StatusOK, gin.H{"code": 0, "data": list})
	}
}

func writeWalletError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, model.ErrInvalidAmount):
		c.JSON(http.StatusBadRequest, gin.H{"code": 400, "msg": err.Error()})
	case errors.Is(err, gorm.ErrRecordNotFound):
		c.JSON(http.StatusNotFound, gin.H{"code": 404, "msg": "wallet not found"})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{"code": 500, "msg": err.Error()})
	}
}

// emitWalletAudit 资金动作的审计事件，入流失败只记日志不影响主流程。
func emitWalletAudit(c *gin.Context, outbox *queue.Outbox, userID, walletID uint, op string, amount decimal.Decimal) {
	_ = outbox.Emit(c.Request.Context(), queue.AuditMessage{
		UserID:       &userID,
		Action:       string(model.AuditPayment),
		IPAddress:    c.ClientIP(),
		UserAgent:    c.Request.UserAgent(),
		ResourceType: "wallet",
		ResourceID:   strconv.FormatUint(uint64(walletID), 10),
		Details: map[string]any{
			"op":     op,
			"amount": amount.StringFixed(2),
		},
	})
}

// parseUintParam 解析路径里的数字 ID，非法时直接写 400。
func parseUintParam(c *gin.Context, name string) (uint, bool) {
	raw := c.Param(name)
	v, err := strconv.ParseUint(raw, 10, 32)
	if err != nil || v == 0 {
		c.JSON(http.StatusBadRequest, gin.H{"code": 400, "msg": "invalid " + name})
		return 0, false
	}
	return uint(v), true
}

// pageParams 解析 limit/offset，带默认值与上限。
func pageParams(c *gin.Context) (int, int) {
	limit, err := strconv.Atoi(c.DefaultQuery("limit", "20"))
	if err != nil || limit <= 0 || limit > 100 {
		limit = 20
	}
	offset, err := strconv.Atoi(c.DefaultQuery("offset", "0"))
	if err != nil || offset < 0 {
		offset = 0
	}
	return limit, offset
}
