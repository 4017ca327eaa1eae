package public

import (
	"strconv"
	"strings"

	"github.com/Karthikeyanbk4067/FitX/internal/http/response"
	"github.com/Karthikeyanbk4067/FitX/internal/service"

	"github.com/gin-gonic/gin"
)

// GetProducts 获取商品列表（支持多分类 + 价格区间筛选）
func (h *Handler) GetProducts(c *gin.Context) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	pageSize, _ := strconv.Atoi(c.DefaultQuery("page_size", "20"))
	page, pageSize = normalizePagination(page, pageSize)

	products, total, err := h.CatalogService.List(service.CatalogListInput{
		Categories: c.QueryArray("category"),
		PriceRange: c.Query("price"),
		Search:     strings.TrimSpace(c.Query("search")),
		Page:       page,
		PageSize:   pageSize,
	})
	if err != nil {
		respondError(c, response.CodeInternal, "商品查询失败", err)
		return
	}

	pagination := response.Pagination{
		Page:      page,
		PageSize:  pageSize,
		Total:     total,
		TotalPage: (total + int64(pageSize) - 1) / int64(pageSize),
	}
	response.SuccessWithPage(c, products, pagination)
}

// SearchProducts 按名称搜索商品
func (h *Handler) SearchProducts(c *gin.Context) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	pageSize, _ := strconv.Atoi(c.DefaultQuery("page_size", "20"))
	page, pageSize = normalizePagination(page, pageSize)

	query := strings.TrimSpace(c.Query("query"))
	products, total, err := h.CatalogService.List(service.CatalogListInput{
		Search:   query,
		Page:     page,
		PageSize: pageSize,
	})
	if err != nil {
		respondError(c, response.CodeInternal, "商品查询失败", err)
		return
	}

	pagination := response.Pagination{
		Page:      page,
		PageSize:  pageSize,
		Total:     total,
		TotalPage: (total + int64(pageSize) - 1) / int64(pageSize),
	}
	response.SuccessWithPage(c, gin.H{"query": query, "products": products}, pagination)
}

// GetProduct 获取商品详情
func (h *Handler) GetProduct(c *gin.Context) {
	rawID := c.Param("id")
	id, err := strconv.ParseUint(rawID, 10, 64)
	if err != nil || id == 0 {
		respondError(c, response.CodeBadRequest, "商品标识无效", nil)
		return
	}

	product, err := h.CatalogService.GetByID(uint(id))
	if err != nil {
		respondWithMappedError(c, err, []mappedHandlerError{
			{target: service.ErrProductNotFound, code: response.CodeNotFound, msg: "商品不存在"},
		}, response.CodeInternal, "商品查询失败")
		return
	}

	response.Success(c, product)
}

// GetTrendingProducts 获取首页精选商品
func (h *Handler) GetTrendingProducts(c *gin.Context) {
	products, err := h.CatalogService.Trending(c.Request.Context())
	if err != nil {
		respondError(c, response.CodeInternal, "商品查询失败", err)
		return
	}
	response.Success(c, gin.H{"products": products})
}
