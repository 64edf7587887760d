package router

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"marketplace/internal/model"
	"marketplace/internal/repository"
)

// listAuditLogs 审计记录查询（管理员）。支持按用户、动作、资源类型、时间过滤。
func listAuditLogs(db *gorm.DB, adminToken string) gin.HandlerFunc {
	return func(c *gin.Context) {
		if c.GetHeader("X-Admin-Token") != adminToken {
			c.JSON(http.StatusUnauthorized, gin.H{"code": 401, "msg": "admin token required"})
			return
		}

		var f repository.AuditFilter
		if raw := c.Query("user_id"); raw != "" {
			v, err := strconv.ParseUint(raw, 10, 32)
			if err != nil {
				c.JSON(http.StatusBadRequest, gin.H{"code": 400, "msg": "invalid user_id"})
				return
			}
			f.UserID = uint(v)
		}
		if raw := c.Query("action"); raw != "" {
			action := model.AuditAction(raw)
			if !action.Valid() {
				c.JSON(http.StatusBadRequest, gin.H{"code": 400, "msg": "unknown action"})
				return
			}
			f.Action = action
		}
		f.ResourceType = c.Query("resource_type")
		if raw := c.Query("since"); raw != "" {
			t, err := time.Parse(time.RFC3339, raw)
			if err != nil {
				c.JSON(http.StatusBadRequest, gin.H{"code": 400, "msg": "since must be RFC3339"})
				return
			}
			f.Since = t
		}

		limit, offset := pageParams(c)
		list, err := repository.NewAuditLogRepo(db).List(f, limit, offset)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"code": 500, "msg": err.Error()})
			return
		}
		c.JSON(http.StatusOK, gin.H{"code": 0, "data": list})
	}
}
