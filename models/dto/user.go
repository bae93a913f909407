package dto

// SetUsernameRequest 定义了设置用户名的请求数据结构
// - 用户名长度 3-30，唯一性由数据库唯一索引保证
type SetUsernameRequest struct {
	Username string `json:"username" form:"username" binding:"required,min=3,max=30"` // 用户名，必填
}

// SetPhoneNumberRequest 定义了绑定手机号的请求数据结构
type SetPhoneNumberRequest struct {
	PhoneNumber string `json:"phone_number" form:"phone_number" binding:"required,max=20"` // 手机号，必填
}
