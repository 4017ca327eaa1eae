package models

import (
	"time"

	"gorm.io/gorm"
)

// 订单状态
const (
	OrderStatusPacked  = "Packed"  // 已打包（下单成功的初始状态）
	OrderStatusShipped = "Shipped" // 已发货
	OrderStatusUnknown = "Unknown" // 历史数据缺失状态时的回退值
)

// Order 订单表
// 早期版本的订单行没有 total_amount/status 字段，读取时按历史订单回退处理。
type Order struct {
	ID              uint           `gorm:"primarykey" json:"id"`                                       // 主键
	OrderNo         string         `gorm:"uniqueIndex;not null" json:"order_no"`                       // 订单编号
	UserID          uint           `gorm:"index;not null" json:"user_id"`                              // 用户ID
	OrderDate       time.Time      `gorm:"index;not null" json:"order_date"`                           // 下单时间
	TotalAmount     Money          `gorm:"type:decimal(10,2);not null;default:0" json:"total_amount"`  // 订单总额
	Status          string         `gorm:"index" json:"status"`                                        // 订单状态（历史数据可能为空）
	CustomerName    string         `gorm:"type:varchar(255)" json:"customer_name"`                     // 收件人姓名
	ShippingAddress string         `gorm:"type:text" json:"shipping_address"`                          // 收件地址
	City            string         `gorm:"type:varchar(100)" json:"city"`                              // 城市
	PostalCode      string         `gorm:"type:varchar(20)" json:"postal_code"`                        // 邮编
	PaymentMethod   string         `gorm:"type:varchar(50)" json:"payment_method"`                     // 支付方式（仅记录）
	CreatedAt       time.Time      `gorm:"index" json:"created_at"`                                    // 创建时间
	UpdatedAt       time.Time      `gorm:"index" json:"updated_at"`                                    // 更新时间
	DeletedAt       gorm.DeletedAt `gorm:"index" json:"-"`                                             // 软删除时间

	Items []OrderItem `gorm:"foreignKey:OrderID" json:"items,omitempty"` // 订单项
}

// TableName 指定表名
func (Order) TableName() string {
	return "orders"
}
