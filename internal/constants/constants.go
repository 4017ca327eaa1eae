package constants

// 商品角标常量
const (
	ProductBadgeBestseller  = "Bestseller"
	ProductBadgeNewArrival  = "New Arrival"
	ProductBadgeLimited     = "Limited Edition"
	ProductBadgeSustainable = "Sustainable"
)

// 队列名称常量
const (
	QueueDefault = "default"
)

// 异步任务类型常量
const (
	TaskOrderShip = "order:ship"
)
