package public

import (
	"strconv"
	"strings"

	"github.com/Karthikeyanbk4067/FitX/internal/http/response"
	"github.com/Karthikeyanbk4067/FitX/internal/service"

	"github.com/gin-gonic/gin"
)

// AddCartItemRequest 加入购物车请求
type AddCartItemRequest struct {
	ProductID uint   `json:"product_id" binding:"required"`
	Size      string `json:"size"`
}

// UpdateCartItemRequest 修改购物车数量请求
type UpdateCartItemRequest struct {
	ProductID uint `json:"product_id" binding:"required"`
	Quantity  int  `json:"quantity"`
}

// GetCart 获取购物车
func (h *Handler) GetCart(c *gin.Context) {
	uid, ok := getUserID(c)
	if !ok {
		return
	}

	snapshot, err := h.CartService.Snapshot(uid)
	if err != nil {
		respondCartError(c, err)
		return
	}
	response.Success(c, snapshot)
}

// AddCartItem 加入购物车
// 相同商品与尺码的条目合并数量，不同尺码各占一行。
func (h *Handler) AddCartItem(c *gin.Context) {
	uid, ok := getUserID(c)
	if !ok {
		return
	}
	var req AddCartItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, response.CodeBadRequest, "请求参数错误", err)
		return
	}

	if err := h.CartService.AddItem(service.AddCartItemInput{
		UserID:    uid,
		ProductID: req.ProductID,
		Size:      strings.TrimSpace(req.Size),
	}); err != nil {
		respondCartError(c, err)
		return
	}
	response.Success(c, gin.H{"added": true})
}

// UpdateCartItem 修改购物车数量
// 数量为 0 或负数时删除条目。
func (h *Handler) UpdateCartItem(c *gin.Context) {
	uid, ok := getUserID(c)
	if !ok {
		return
	}
	var req UpdateCartItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, response.CodeBadRequest, "请求参数错误", err)
		return
	}

	if err := h.CartService.SetQuantity(uid, req.ProductID, req.Quantity); err != nil {
		respondCartError(c, err)
		return
	}
	response.Success(c, gin.H{"updated": true})
}

// DeleteCartItem 从购物车移除商品（所有尺码）
func (h *Handler) DeleteCartItem(c *gin.Context) {
	uid, ok := getUserID(c)
	if !ok {
		return
	}
	rawID := c.Param("product_id")
	productID, err := strconv.ParseUint(rawID, 10, 64)
	if err != nil || productID == 0 {
		respondError(c, response.CodeBadRequest, "购物车参数无效", nil)
		return
	}

	if err := h.CartService.RemoveItem(uid, uint(productID)); err != nil {
		respondCartError(c, err)
		return
	}
	response.Success(c, gin.H{"deleted": true})
}

// ClearCart 清空购物车
func (h *Handler) ClearCart(c *gin.Context) {
	uid, ok := getUserID(c)
	if !ok {
		return
	}
	if err := h.CartService.Clear(uid); err != nil {
		respondCartError(c, err)
		return
	}
	response.Success(c, gin.H{"cleared": true})
}
