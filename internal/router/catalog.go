package router

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	rd "github.com/redis/go-redis/v9"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"marketplace/internal/model"
	"marketplace/internal/repository"
	rediskey "marketplace/pkg/redis"
)

// listCategories 上架分类列表。
func listCategories(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		list, err := repository.NewCategoryRepo(db).ListActive()
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"code": 500, "msg": err.Error()})
			return
		}
		c.JSON(http.StatusOK, gin.H{"code": 0, "data": list})
	}
}

// createCategory 建分类（管理员）。parent 链的环检查在 repo 层。
func createCategory(db *gorm.DB, adminToken string) gin.HandlerFunc {
	return func(c *gin.Context) {
		if c.GetHeader("X-Admin-Token") != adminToken {
			c.JSON(http.StatusUnauthorized, gin.H{"code": 401, "msg": "admin token required"})
			return
		}
		var req struct {
			Name        string `json:"name" binding:"required"`
			Slug        string `json:"slug" binding:"required"`
			Description string `json:"description"`
			ParentID    *uint  `json:"parent_id"`
			SortOrder   uint   `json:"sort_order"`
		}
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"code": 400, "msg": err.Error()})
			return
		}
		cat := &model.Category{
			Name:        req.Name,
			Slug:        req.Slug,
			Description: req.Description,
			ParentID:    req.ParentID,
			IsActive:    true,
			SortOrder:   req.SortOrder,
		}
		if err := repository.NewCategoryRepo(db).Create(cat); err != nil {
			if errors.Is(err, model.ErrCategoryCycle) {
				c.JSON(http.StatusBadRequest, gin.H{"code": 400, "msg": err.Error()})
				return
			}
			c.JSON(http.StatusInternalServerError, gin.H{"code": 500, "msg": err.Error()})
			return
		}
		c.JSON(http.StatusOK, gin.H{"code": 0, "data": cat})
	}
}

// getCategory 查分类，附带层级与直接子分类。
func getCategory(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := parseUintParam(c, "id")
		if !ok {
			return
		}
		repo := repository.NewCategoryRepo(db)
		cat, err := repo.GetByID(id)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				c.JSON(http.StatusNotFound, gin.H{"code": 404, "msg": "category not found"})
				return
			}
			c.JSON(http.StatusInternalServerError, gin.H{"code": 500, "msg": err.Error()})
			return
		}
		level, err := cat.Level(db)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"code": 500, "msg": err.Error()})
			return
		}
		children, err := repo.ListChildren(cat.ID)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"code": 500, "msg": err.Error()})
			return
		}
		c.JSON(http.StatusOK, gin.H{"code": 0, "data": gin.H{
			"category": cat,
			"is_root":  cat.IsRoot(),
			"level":    level,
			"children": children,
		}})
	}
}

// listProducts 上架商品列表，可按分类过滤。
func listProducts(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var categoryID uint
		if raw := c.Query("category_id"); raw != "" {
			v, err := strconv.ParseUint(raw, 10, 32)
			if err != nil {
				c.JSON(http.StatusBadRequest, gin.H{"code": 400, "msg": "invalid category_id"})
				return
			}
			categoryID = uint(v)
		}
		limit, offset := pageParams(c)
		list, err := repository.NewProductRepo(db).ListActive(categoryID, limit, offset)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"code": 500, "msg": err.Error()})
			return
		}
		c.JSON(http.StatusOK, gin.H{"code": 0, "data": list})
	}
}

// createProduct 上架商品（管理员）。价格必须为正，违规由 DB CHECK 约束兜底。
func createProduct(db *gorm.DB, adminToken string) gin.HandlerFunc {
	return func(c *gin.Context) {
		if c.GetHeader("X-Admin-Token") != adminToken {
			c.JSON(http.StatusUnauthorized, gin.H{"code": 401, "msg": "admin token required"})
			return
		}
		var req struct {
			SellerID    uint            `json:"seller_id" binding:"required,min=1"`
			Title       string          `json:"title" binding:"required"`
			Slug        string          `json:"slug" binding:"required"`
			Description string          `json:"description"`
			CategoryID  uint            `json:"category_id" binding:"required,min=1"`
			Price       decimal.Decimal `json:"price" binding:"required"`
			Stock       int64           `json:"stock" binding:"min=0"`
			FilePath    string          `json:"file_path" binding:"required"`
			FileSize    int64           `json:"file_size" binding:"required,min=1"`
		}
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"code": 400, "msg": err.Error()})
			return
		}
		if req.Price.LessThanOrEqual(decimal.Zero) {
			c.JSON(http.StatusBadRequest, gin.H{"code": 400, "msg": "price must be positive"})
			return
		}
		p := &model.Product{
			SellerID:    req.SellerID,
			Title:       req.Title,
			Slug:        req.Slug,
			Description: req.Description,
			CategoryID:  req.CategoryID,
			Price:       req.Price,
			Stock:       req.Stock,
			FilePath:    req.FilePath,
			FileSize:    req.FileSize,
			IsActive:    true,
		}
		if err := repository.NewProductRepo(db).Create(p); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"code": 500, "msg": err.Error()})
			return
		}
		c.JSON(http.StatusOK, gin.H{"code": 0, "data": p})
	}
}

// getProduct 商品详情。可售判断优先走缓存库存，缓存缺失时回源并回填。
func getProduct(db *gorm.DB, rdb *rd.Client, cacheTTL time.Duration) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := parseUintParam(c, "id")
		if !ok {
			return
		}
		p, err := repository.NewProductRepo(db).GetByID(id)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				c.JSON(http.StatusNotFound, gin.H{"code": 404, "msg": "product not found"})
				return
			}
			c.JSON(http.StatusInternalServerError, gin.H{"code": 500, "msg": err.Error()})
			return
		}

		stock := p.Stock
		cached, found, err := rediskey.GetCachedStock(c.Request.Context(), rdb, p.ID)
		if err == nil && found {
			stock = cached
		} else if err == nil {
			_ = rediskey.PreloadStock(c.Request.Context(), rdb, p.ID, p.Stock, cacheTTL)
		}

		c.JSON(http.StatusOK, gin.H{"code": 0, "data": gin.H{
			"product":      p,
			"stock":        stock,
			"is_available": p.IsActive && stock > 0,
		}})
	}
}

// restockProduct 补货（管理员）：原子加库存并刷新缓存。
func restockProduct(db *gorm.DB, rdb *rd.Client, adminToken string) gin.HandlerFunc {
	return func(c *gin.Context) {
		if c.GetHeader("X-Admin-Token") != adminToken {
			c.JSON(http.StatusUnauthorized, gin.H{"code": 401, "msg": "admin token required"})
			return
		}
		id, ok := parseUintParam(c, "id")
		if !ok {
			return
		}
		var req struct {
			Quantity int64 `json:"quantity" binding:"required,min=1"`
		}
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"code": 400, "msg": err.Error()})
			return
		}
		if err := repository.NewProductRepo(db).RestockBy(id, req.Quantity); err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				c.JSON(http.StatusNotFound, gin.H{"code": 404, "msg": "product not found"})
				return
			}
			c.JSON(http.StatusInternalServerError, gin.H{"code": 500, "msg": err.Error()})
			return
		}
		_ = rediskey.InvalidateStock(c.Request.Context(), rdb, id)
		c.JSON(http.StatusOK, gin.H{"code": 0, "msg": "restock ok"})
	}
}
