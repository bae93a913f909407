package controller

import (
	"net/http"

	"github.com/Xushengqwer/go-common/response"
	"github.com/gin-gonic/gin"

	"github.com/ali-0019/vapeland/models/dto"
	"github.com/ali-0019/vapeland/service"
)

// ContactController 负责处理用户侧的联系消息 API 请求。
// - 管理端的收件箱与答复在 admin.go 中。
type ContactController struct {
	contactService service.ContactService
}

// NewContactController 创建一个新的 ContactController 实例。
func NewContactController(contactService service.ContactService) *ContactController {
	return &ContactController{contactService: contactService}
}

// CreateMessage 给管理员留言
// @Summary      给管理员留言
// @Description  向管理员发送一条消息，受每日限额约束，不进入内容审核管道。
// @Tags         联系我们
// @Accept       json
// @Produce      json
// @Param        request body dto.CreateContactMessageRequest true "留言内容"
// @Success      200 {object} vo.ContactMessageResponseWrapper "留言成功"
// @Failure      400 {object} vo.BaseResponseWrapper "请求参数无效"
// @Failure      401 {object} vo.BaseResponseWrapper "未授权"
// @Failure      429 {object} vo.BaseResponseWrapper "今日留言已达上限"
// @Failure      500 {object} vo.BaseResponseWrapper "系统内部错误"
// @Router       /api/v1/vapeland/messages [post]
func (ctrl *ContactController) CreateMessage(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	var req dto.CreateContactMessageRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.RespondError(c, http.StatusBadRequest, response.ErrCodeClientInvalidInput, "请求参数无效: "+err.Error())
		return
	}

	messageVO, err := ctrl.contactService.SubmitMessage(c.Request.Context(), userID, &req)
	if err != nil {
		respondServiceError(c, err, "发送留言")
		return
	}
	response.RespondSuccess(c, messageVO, "留言发送成功")
}

// RegisterRoutes 注册联系消息相关的路由。
func (ctrl *ContactController) RegisterRoutes(group *gin.RouterGroup) {
	group.POST("/messages", ctrl.CreateMessage)
}
