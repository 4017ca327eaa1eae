package repository

// ProductListFilter 查询商品列表的过滤条件
type ProductListFilter struct {
	Page       int
	PageSize   int
	Categories []string // 分类集合（IN 匹配）
	PriceMin   *float64 // 价格下限（与 PriceMax 同时提供时生效）
	PriceMax   *float64 // 价格上限
	Search     string   // 名称模糊搜索
	Badge      string   // 角标过滤
}

// OrderListFilter 查询订单列表的过滤条件
type OrderListFilter struct {
	Page     int
	PageSize int
	UserID   uint
	Status   string
}
