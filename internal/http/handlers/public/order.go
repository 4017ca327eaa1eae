package public

import (
	"strconv"

	"github.com/Karthikeyanbk4067/FitX/internal/http/response"
	"github.com/Karthikeyanbk4067/FitX/internal/repository"
	"github.com/Karthikeyanbk4067/FitX/internal/service"

	"github.com/gin-gonic/gin"
)

// CheckoutRequest 结算请求
type CheckoutRequest struct {
	CustomerName    string `json:"customer_name" binding:"required"`
	ShippingAddress string `json:"shipping_address" binding:"required"`
	City            string `json:"city" binding:"required"`
	PostalCode      string `json:"postal_code" binding:"required"`
	PaymentMethod   string `json:"payment_method"`
}

// Checkout 购物车结算下单
func (h *Handler) Checkout(c *gin.Context) {
	uid, ok := getUserID(c)
	if !ok {
		return
	}
	var req CheckoutRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, response.CodeBadRequest, "收货信息不完整", err)
		return
	}

	order, err := h.OrderService.Checkout(service.CheckoutInput{
		UserID:          uid,
		CustomerName:    req.CustomerName,
		ShippingAddress: req.ShippingAddress,
		City:            req.City,
		PostalCode:      req.PostalCode,
		PaymentMethod:   req.PaymentMethod,
	})
	if err != nil {
		respondCheckoutError(c, err)
		return
	}

	response.Success(c, gin.H{"order": order})
}

// ListOrders 用户订单列表
func (h *Handler) ListOrders(c *gin.Context) {
	uid, ok := getUserID(c)
	if !ok {
		return
	}

	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	pageSize, _ := strconv.Atoi(c.DefaultQuery("page_size", "20"))
	page, pageSize = normalizePagination(page, pageSize)

	orders, total, err := h.OrderService.ListByUser(repository.OrderListFilter{
		UserID:   uid,
		Page:     page,
		PageSize: pageSize,
	})
	if err != nil {
		respondOrderQueryError(c, err)
		return
	}

	pagination := response.Pagination{
		Page:      page,
		PageSize:  pageSize,
		Total:     total,
		TotalPage: (total + int64(pageSize) - 1) / int64(pageSize),
	}
	response.SuccessWithPage(c, orders, pagination)
}

// GetOrder 用户订单详情
func (h *Handler) GetOrder(c *gin.Context) {
	uid, ok := getUserID(c)
	if !ok {
		return
	}
	rawID := c.Param("id")
	orderID, err := strconv.ParseUint(rawID, 10, 64)
	if err != nil || orderID == 0 {
		respondError(c, response.CodeBadRequest, "订单标识无效", nil)
		return
	}

	detail, err := h.OrderService.GetByUser(uint(orderID), uid)
	if err != nil {
		respondOrderQueryError(c, err)
		return
	}
	response.Success(c, detail)
}
