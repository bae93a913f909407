package controller

import (
	"net/http"

	"github.com/Xushengqwer/go-common/response"
	"github.com/gin-gonic/gin"

	"github.com/ali-0019/vapeland/models/dto"
	"github.com/ali-0019/vapeland/service"
)

// UserController 负责处理用户账户相关的 API 请求。
type UserController struct {
	userService service.UserService
}

// NewUserController 创建一个新的 UserController 实例。
func NewUserController(userService service.UserService) *UserController {
	return &UserController{userService: userService}
}

// GetMe 获取当前用户信息
// @Summary      获取当前用户信息
// @Description  返回当前用户的资料与积分，首次访问时自动登记用户。
// @Tags         用户管理
// @Accept       json
// @Produce      json
// @Success      200 {object} vo.UserResponseWrapper "获取成功"
// @Failure      401 {object} vo.BaseResponseWrapper "未授权"
// @Failure      500 {object} vo.BaseResponseWrapper "系统内部错误"
// @Router       /api/v1/vapeland/users/me [get]
func (ctrl *UserController) GetMe(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	// 首次见到该用户时顺手登记，消息平台没有独立的注册入口
	userVO, err := ctrl.userService.EnsureUser(c.Request.Context(), userID)
	if err != nil {
		respondServiceError(c, err, "获取用户信息")
		return
	}
	response.RespondSuccess(c, userVO, "获取用户信息成功")
}

// SetUsername 设置用户名
// @Summary      设置用户名
// @Description  设置当前用户的用户名，长度 3~30 个字符，全局唯一。
// @Tags         用户管理
// @Accept       json
// @Produce      json
// @Param        request body dto.SetUsernameRequest true "用户名"
// @Success      200 {object} vo.BaseResponseWrapper "设置成功"
// @Failure      400 {object} vo.BaseResponseWrapper "请求参数无效"
// @Failure      401 {object} vo.BaseResponseWrapper "未授权"
// @Failure      500 {object} vo.BaseResponseWrapper "系统内部错误"
// @Router       /api/v1/vapeland/users/me/username [put]
func (ctrl *UserController) SetUsername(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	var req dto.SetUsernameRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.RespondError(c, http.StatusBadRequest, response.ErrCodeClientInvalidInput, "请求参数无效: "+err.Error())
		return
	}

	if err := ctrl.userService.SetUsername(c.Request.Context(), userID, req.Username); err != nil {
		respondServiceError(c, err, "设置用户名")
		return
	}
	response.RespondSuccess[any](c, nil, "用户名设置成功")
}

// SetPhoneNumber 绑定手机号
// @Summary      绑定手机号
// @Description  绑定当前用户的手机号并将账户标记为已认证。
// @Tags         用户管理
// @Accept       json
// @Produce      json
// @Param        request body dto.SetPhoneNumberRequest true "手机号"
// @Success      200 {object} vo.BaseResponseWrapper "绑定成功"
// @Failure      400 {object} vo.BaseResponseWrapper "请求参数无效"
// @Failure      401 {object} vo.BaseResponseWrapper "未授权"
// @Failure      500 {object} vo.BaseResponseWrapper "系统内部错误"
// @Router       /api/v1/vapeland/users/me/phone [put]
func (ctrl *UserController) SetPhoneNumber(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	var req dto.SetPhoneNumberRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.RespondError(c, http.StatusBadRequest, response.ErrCodeClientInvalidInput, "请求参数无效: "+err.Error())
		return
	}

	if err := ctrl.userService.SetPhoneNumber(c.Request.Context(), userID, req.PhoneNumber); err != nil {
		respondServiceError(c, err, "绑定手机号")
		return
	}
	response.RespondSuccess[any](c, nil, "手机号绑定成功")
}

// RegisterRoutes 注册用户账户相关的路由。
func (ctrl *UserController) RegisterRoutes(group *gin.RouterGroup) {
	userGroup := group.Group("/users")
	{
		userGroup.GET("/me", ctrl.GetMe)
		userGroup.PUT("/me/username", ctrl.SetUsername)
		userGroup.PUT("/me/phone", ctrl.SetPhoneNumber)
	}
}
