package controller

import (
	"net/http"

	"github.com/Xushengqwer/go-common/response"
	"github.com/gin-gonic/gin"

	"github.com/ali-0019/vapeland/models/dto"
	"github.com/ali-0019/vapeland/models/enums"
	"github.com/ali-0019/vapeland/service"
)

// AdminController 负责处理管理端的 API 请求。
// - 管理员身份由网关鉴权，服务内不做二次校验。
type AdminController struct {
	itemService       service.ItemService
	contactService    service.ContactService
	moderationService service.ModerationService
}

// NewAdminController 创建一个新的 AdminController 实例。
func NewAdminController(
	itemService service.ItemService,
	contactService service.ContactService,
	moderationService service.ModerationService,
) *AdminController {
	return &AdminController{
		itemService:       itemService,
		contactService:    contactService,
		moderationService: moderationService,
	}
}

// CreateItem 录入商品
// @Summary      录入商品 (管理员)
// @Description  向商品目录录入一个新商品，商品不走审核管道。
// @Tags         管理端
// @Accept       json
// @Produce      json
// @Param        request body dto.CreateItemRequest true "商品信息"
// @Success      200 {object} vo.ItemResponseWrapper "录入成功"
// @Failure      400 {object} vo.BaseResponseWrapper "请求参数无效"
// @Failure      500 {object} vo.BaseResponseWrapper "系统内部错误"
// @Router       /api/v1/vapeland/admin/items [post]
func (ctrl *AdminController) CreateItem(c *gin.Context) {
	var req dto.CreateItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.RespondError(c, http.StatusBadRequest, response.ErrCodeClientInvalidInput, "请求参数无效: "+err.Error())
		return
	}

	itemVO, err := ctrl.itemService.CreateItem(c.Request.Context(), &req)
	if err != nil {
		respondServiceError(c, err, "录入商品")
		return
	}
	response.RespondSuccess(c, itemVO, "商品录入成功")
}

// DeleteItem 下架商品
// @Summary      下架商品 (管理员)
// @Description  删除商品并级联清理其评论、回复和评分。
// @Tags         管理端
// @Accept       json
// @Produce      json
// @Param        item_id path string true "商品ID (UUID)"
// @Success      200 {object} vo.BaseResponseWrapper "下架成功"
// @Failure      404 {object} vo.BaseResponseWrapper "商品不存在"
// @Failure      500 {object} vo.BaseResponseWrapper "系统内部错误"
// @Router       /api/v1/vapeland/admin/items/{item_id} [delete]
func (ctrl *AdminController) DeleteItem(c *gin.Context) {
	itemID := c.Param("item_id")
	if itemID == "" {
		response.RespondError(c, http.StatusBadRequest, response.ErrCodeClientMissingParam, "缺少商品ID")
		return
	}

	if err := ctrl.itemService.DeleteItem(c.Request.Context(), itemID); err != nil {
		respondServiceError(c, err, "下架商品")
		return
	}
	response.RespondSuccess[any](c, nil, "商品下架成功")
}

// ListPendingContent 查询审核队列
// @Summary      查询审核队列 (管理员)
// @Description  分页返回指定种类的待审核内容，先进先出。
// @Tags         管理端
// @Accept       json
// @Produce      json
// @Param        kind query string true "内容种类 (comment / comment_reply / question / question_reply / suggestion)"
// @Param        page query int false "页码 (从1开始)"
// @Param        page_size query int false "每页数量"
// @Success      200 {object} vo.PendingContentPageResponseWrapper "获取成功"
// @Failure      400 {object} vo.BaseResponseWrapper "请求参数无效"
// @Failure      500 {object} vo.BaseResponseWrapper "系统内部错误"
// @Router       /api/v1/vapeland/admin/moderation/pending [get]
func (ctrl *AdminController) ListPendingContent(c *gin.Context) {
	var req dto.ListPendingContentRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		response.RespondError(c, http.StatusBadRequest, response.ErrCodeClientInvalidInput, "请求参数无效: "+err.Error())
		return
	}

	pageVO, err := ctrl.moderationService.ListPendingContent(c.Request.Context(), &req)
	if err != nil {
		respondServiceError(c, err, "查询审核队列")
		return
	}
	response.RespondSuccess(c, pageVO, "审核队列获取成功")
}

// ModerateContent 人工审核内容
// @Summary      人工审核内容 (管理员)
// @Description  把待审核内容迁移到通过或拒绝，已处于终态的内容返回 409。
// @Tags         管理端
// @Accept       json
// @Produce      json
// @Param        request body dto.ModerateContentRequest true "审核结论"
// @Success      200 {object} vo.BaseResponseWrapper "审核成功"
// @Failure      400 {object} vo.BaseResponseWrapper "请求参数无效"
// @Failure      404 {object} vo.BaseResponseWrapper "内容不存在"
// @Failure      409 {object} vo.BaseResponseWrapper "内容已处于终态"
// @Failure      500 {object} vo.BaseResponseWrapper "系统内部错误"
// @Router       /api/v1/vapeland/admin/moderation [post]
func (ctrl *AdminController) ModerateContent(c *gin.Context) {
	var req dto.ModerateContentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.RespondError(c, http.StatusBadRequest, response.ErrCodeClientInvalidInput, "请求参数无效: "+err.Error())
		return
	}

	if err := ctrl.moderationService.ModerateContent(c.Request.Context(), &req); err != nil {
		respondServiceError(c, err, "审核内容")
		return
	}
	response.RespondSuccess[any](c, nil, "内容审核成功")
}

// ListMessages 查询留言收件箱
// @Summary      查询留言收件箱 (管理员)
// @Description  分页返回用户留言，可按状态过滤，先进先出。
// @Tags         管理端
// @Accept       json
// @Produce      json
// @Param        status query int false "消息状态 (0=待处理, 1=已答复, 2=已拒绝)，不传为全部"
// @Param        page query int false "页码 (从1开始)"
// @Param        page_size query int false "每页数量"
// @Success      200 {object} vo.ContactMessagePageResponseWrapper "获取成功"
// @Failure      400 {object} vo.BaseResponseWrapper "请求参数无效"
// @Failure      500 {object} vo.BaseResponseWrapper "系统内部错误"
// @Router       /api/v1/vapeland/admin/messages [get]
func (ctrl *AdminController) ListMessages(c *gin.Context) {
	var req dto.ListContactMessagesRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		response.RespondError(c, http.StatusBadRequest, response.ErrCodeClientInvalidInput, "请求参数无效: "+err.Error())
		return
	}

	var status *enums.MessageStatus
	if req.Status != nil {
		s := enums.MessageStatus(*req.Status)
		status = &s
	}

	pageVO, err := ctrl.contactService.ListMessages(c.Request.Context(), status, req.Page, req.PageSize)
	if err != nil {
		respondServiceError(c, err, "查询留言收件箱")
		return
	}
	response.RespondSuccess(c, pageVO, "留言收件箱获取成功")
}

// AnswerMessage 答复留言
// @Summary      答复留言 (管理员)
// @Description  答复一条待处理的留言，已处理过的留言返回 409。
// @Tags         管理端
// @Accept       json
// @Produce      json
// @Param        message_id path string true "留言ID (UUID)"
// @Param        request body dto.AnswerContactMessageRequest true "答复内容"
// @Success      200 {object} vo.BaseResponseWrapper "答复成功"
// @Failure      400 {object} vo.BaseResponseWrapper "请求参数无效"
// @Failure      404 {object} vo.BaseResponseWrapper "留言不存在"
// @Failure      409 {object} vo.BaseResponseWrapper "留言已处理"
// @Failure      500 {object} vo.BaseResponseWrapper "系统内部错误"
// @Router       /api/v1/vapeland/admin/messages/{message_id}/answer [put]
func (ctrl *AdminController) AnswerMessage(c *gin.Context) {
	messageID := c.Param("message_id")
	if messageID == "" {
		response.RespondError(c, http.StatusBadRequest, response.ErrCodeClientMissingParam, "缺少留言ID")
		return
	}

	var req dto.AnswerContactMessageRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.RespondError(c, http.StatusBadRequest, response.ErrCodeClientInvalidInput, "请求参数无效: "+err.Error())
		return
	}

	if err := ctrl.contactService.AnswerMessage(c.Request.Context(), messageID, &req); err != nil {
		respondServiceError(c, err, "答复留言")
		return
	}
	response.RespondSuccess[any](c, nil, "留言答复成功")
}

// RejectMessage 拒绝留言
// @Summary      拒绝留言 (管理员)
// @Description  拒绝一条待处理的留言（垃圾信息等），已处理过的留言返回 409。
// @Tags         管理端
// @Accept       json
// @Produce      json
// @Param        message_id path string true "留言ID (UUID)"
// @Success      200 {object} vo.BaseResponseWrapper "拒绝成功"
// @Failure      404 {object} vo.BaseResponseWrapper "留言不存在"
// @Failure      409 {object} vo.BaseResponseWrapper "留言已处理"
// @Failure      500 {object} vo.BaseResponseWrapper "系统内部错误"
// @Router       /api/v1/vapeland/admin/messages/{message_id}/reject [put]
func (ctrl *AdminController) RejectMessage(c *gin.Context) {
	messageID := c.Param("message_id")
	if messageID == "" {
		response.RespondError(c, http.StatusBadRequest, response.ErrCodeClientMissingParam, "缺少留言ID")
		return
	}

	if err := ctrl.contactService.RejectMessage(c.Request.Context(), messageID); err != nil {
		respondServiceError(c, err, "拒绝留言")
		return
	}
	response.RespondSuccess[any](c, nil, "留言已拒绝")
}

// RegisterRoutes 注册管理端相关的路由。
func (ctrl *AdminController) RegisterRoutes(group *gin.RouterGroup) {
	adminGroup := group.Group("/admin")
	{
		adminGroup.POST("/items", ctrl.CreateItem)
		adminGroup.DELETE("/items/:item_id", ctrl.DeleteItem)
		adminGroup.GET("/moderation/pending", ctrl.ListPendingContent)
		adminGroup.POST("/moderation", ctrl.ModerateContent)
		adminGroup.GET("/messages", ctrl.ListMessages)
		adminGroup.PUT("/messages/:message_id/answer", ctrl.AnswerMessage)
		adminGroup.PUT("/messages/:message_id/reject", ctrl.RejectMessage)
	}
}
