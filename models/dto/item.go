package dto

// CreateItemRequest 定义了创建商品条目的请求数据结构（管理端）
type CreateItemRequest struct {
	Type        int     `json:"type" form:"type" binding:"gte=0,lte=3"`             // 商品类别，0=一体式设备, 1=一次性设备, 2=盐油, 3=果汁油
	Name        string  `json:"name" form:"name" binding:"required,max=100"`        // 商品名，必填，最大100字符
	Description *string `json:"description" form:"description" binding:"omitempty"` // 描述，可选
}

// ListItemsRequest 定义了按类别分页查询商品的请求数据结构
type ListItemsRequest struct {
	Type     int `json:"type" form:"type" binding:"gte=0,lte=3"`             // 商品类别
	Page     int `json:"page" form:"page" binding:"omitempty,gte=1"`         // 页码，从1开始，缺省为1
	PageSize int `json:"page_size" form:"page_size" binding:"omitempty,gt=0"` // 每页数量，缺省使用服务默认值
}

// SearchItemsRequest 定义了按名称模糊搜索商品的请求数据结构
type SearchItemsRequest struct {
	Keyword  string `json:"keyword" form:"keyword" binding:"required,max=100"`   // 搜索关键字，必填
	Page     int    `json:"page" form:"page" binding:"omitempty,gte=1"`          // 页码，从1开始
	PageSize int    `json:"page_size" form:"page_size" binding:"omitempty,gt=0"` // 每页数量
}
