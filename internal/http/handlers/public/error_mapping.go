package public

import (
	"errors"

	"github.com/Karthikeyanbk4067/FitX/internal/http/response"
	"github.com/Karthikeyanbk4067/FitX/internal/service"

	"github.com/gin-gonic/gin"
)

// mappedHandlerError 定义业务错误到接口错误响应的映射关系。
type mappedHandlerError struct {
	target error
	code   int
	msg    string
}

func respondWithMappedError(c *gin.Context, err error, rules []mappedHandlerError, fallbackCode int, fallbackMsg string) {
	for _, rule := range rules {
		if errors.Is(err, rule.target) {
			respondError(c, rule.code, rule.msg, nil)
			return
		}
	}
	respondError(c, fallbackCode, fallbackMsg, err)
}

var userAuthErrorRules = []mappedHandlerError{
	{target: service.ErrInvalidUsername, code: response.CodeBadRequest, msg: "用户名不合法"},
	{target: service.ErrInvalidPassword, code: response.CodeBadRequest, msg: "密码不合法"},
	{target: service.ErrUsernameExists, code: response.CodeBadRequest, msg: "用户名已存在"},
	{target: service.ErrInvalidCredentials, code: response.CodeUnauthorized, msg: "用户名或密码错误"},
	{target: service.ErrUserNotFound, code: response.CodeNotFound, msg: "用户不存在"},
}

var cartErrorRules = []mappedHandlerError{
	{target: service.ErrInvalidCartItem, code: response.CodeBadRequest, msg: "购物车参数无效"},
	{target: service.ErrCartItemNotFound, code: response.CodeNotFound, msg: "购物车中没有该商品"},
}

var checkoutErrorRules = []mappedHandlerError{
	{target: service.ErrCartEmpty, code: response.CodeBadRequest, msg: "购物车为空"},
	{target: service.ErrInvalidShippingInfo, code: response.CodeBadRequest, msg: "收货信息不完整"},
	{target: service.ErrOrderCreateFailed, code: response.CodeInternal, msg: "订单创建失败"},
}

var orderQueryErrorRules = []mappedHandlerError{
	{target: service.ErrOrderNotFound, code: response.CodeNotFound, msg: "订单不存在"},
}

var wishlistErrorRules = []mappedHandlerError{
	{target: service.ErrProductNotFound, code: response.CodeNotFound, msg: "商品不存在"},
}

func respondUserAuthError(c *gin.Context, err error) {
	respondWithMappedError(c, err, userAuthErrorRules, response.CodeInternal, "请求处理失败")
}

func respondCartError(c *gin.Context, err error) {
	respondWithMappedError(c, err, cartErrorRules, response.CodeInternal, "购物车操作失败")
}

func respondCheckoutError(c *gin.Context, err error) {
	respondWithMappedError(c, err, checkoutErrorRules, response.CodeInternal, "订单创建失败")
}

func respondOrderQueryError(c *gin.Context, err error) {
	respondWithMappedError(c, err, orderQueryErrorRules, response.CodeInternal, "订单查询失败")
}

func respondWishlistError(c *gin.Context, err error) {
	respondWithMappedError(c, err, wishlistErrorRules, response.CodeInternal, "心愿单操作失败")
}
