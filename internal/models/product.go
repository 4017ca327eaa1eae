package models

import (
	"time"

	"gorm.io/gorm"
)

// Product 商品表
type Product struct {
	ID              uint           `gorm:"primarykey" json:"id"`                                      // 主键
	Name            string         `gorm:"not null;index" json:"name"`                                // 商品名称
	Category        string         `gorm:"type:varchar(50);index" json:"category"`                    // 分类（Men/Women/Unisex）
	Price           Money          `gorm:"type:decimal(10,2);not null;default:0" json:"price"`        // 售价
	MRP             Money          `gorm:"column:mrp;type:decimal(10,2);not null;default:0" json:"mrp"` // 市场指导价
	Description     string         `gorm:"type:text" json:"description"`                              // 商品描述
	StyleCode       string         `gorm:"type:varchar(50)" json:"style_code"`                        // 款式编号
	Origin          string         `gorm:"type:varchar(100)" json:"origin"`                           // 产地
	ImageMain       string         `gorm:"type:varchar(255)" json:"image_main"`                       // 主图
	ImageThumb1     string         `gorm:"type:varchar(255)" json:"image_thumb1"`                     // 缩略图1
	ImageThumb2     string         `gorm:"type:varchar(255)" json:"image_thumb2"`                     // 缩略图2
	ImageThumb3     string         `gorm:"type:varchar(255)" json:"image_thumb3"`                     // 缩略图3
	ImageThumb4     string         `gorm:"type:varchar(255)" json:"image_thumb4"`                     // 缩略图4
	Badge           string         `gorm:"type:varchar(50);index" json:"badge"`                       // 角标（Bestseller/New Arrival/...）
	ColorsAvailable int            `gorm:"not null;default:1" json:"colors_available"`                // 可选颜色数量
	CreatedAt       time.Time      `gorm:"index" json:"created_at"`                                   // 创建时间
	UpdatedAt       time.Time      `json:"updated_at"`                                                // 更新时间
	DeletedAt       gorm.DeletedAt `gorm:"index" json:"-"`                                            // 软删除时间
}

// TableName 指定表名
func (Product) TableName() string {
	return "products"
}
