package public

import (
	"strconv"

	"github.com/Karthikeyanbk4067/FitX/internal/http/response"

	"github.com/gin-gonic/gin"
)

// AddWishlistItemRequest 加入心愿单请求
type AddWishlistItemRequest struct {
	ProductID uint `json:"product_id" binding:"required"`
}

// GetWishlist 获取心愿单
func (h *Handler) GetWishlist(c *gin.Context) {
	uid, ok := getUserID(c)
	if !ok {
		return
	}

	items, err := h.WishlistService.List(uid)
	if err != nil {
		respondWishlistError(c, err)
		return
	}
	response.Success(c, gin.H{"items": items})
}

// AddWishlistItem 加入心愿单（重复添加幂等返回成功）
func (h *Handler) AddWishlistItem(c *gin.Context) {
	uid, ok := getUserID(c)
	if !ok {
		return
	}
	var req AddWishlistItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, response.CodeBadRequest, "请求参数错误", err)
		return
	}

	if err := h.WishlistService.Add(uid, req.ProductID); err != nil {
		respondWishlistError(c, err)
		return
	}
	response.Success(c, gin.H{"added": true})
}

// DeleteWishlistItem 移出心愿单
func (h *Handler) DeleteWishlistItem(c *gin.Context) {
	uid, ok := getUserID(c)
	if !ok {
		return
	}
	rawID := c.Param("product_id")
	productID, err := strconv.ParseUint(rawID, 10, 64)
	if err != nil || productID == 0 {
		respondError(c, response.CodeBadRequest, "商品标识无效", nil)
		return
	}

	if err := h.WishlistService.Remove(uid, uint(productID)); err != nil {
		respondWishlistError(c, err)
		return
	}
	response.Success(c, gin.H{"deleted": true})
}
