package service

import "errors"

// 业务错误定义，由 handler 层统一映射为接口响应。
var (
	// 用户
	ErrUsernameExists     = errors.New("用户名已存在")
	ErrInvalidCredentials = errors.New("用户名或密码错误")
	ErrInvalidUsername    = errors.New("用户名不合法")
	ErrInvalidPassword    = errors.New("密码不合法")
	ErrUserNotFound       = errors.New("用户不存在")

	// 商品
	ErrProductNotFound = errors.New("商品不存在")

	// 购物车
	ErrInvalidCartItem  = errors.New("购物车项参数不合法")
	ErrCartItemNotFound = errors.New("购物车项不存在")
	ErrCartEmpty        = errors.New("购物车为空")

	// 订单
	ErrOrderNotFound       = errors.New("订单不存在")
	ErrInvalidShippingInfo = errors.New("收货信息不完整")
	ErrOrderCreateFailed   = errors.New("订单创建失败")
)
