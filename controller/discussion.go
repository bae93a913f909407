package controller

import (
	"net/http"

	"github.com/Xushengqwer/go-common/response"
	"github.com/gin-gonic/gin"

	"github.com/ali-0019/vapeland/models/dto"
	"github.com/ali-0019/vapeland/service"
)

// DiscussionController 负责处理商品评论与回复树的 API 请求。
type DiscussionController struct {
	discussionService service.DiscussionService
}

// NewDiscussionController 创建一个新的 DiscussionController 实例。
func NewDiscussionController(discussionService service.DiscussionService) *DiscussionController {
	return &DiscussionController{discussionService: discussionService}
}

// CreateComment 发表商品评论
// @Summary      发表商品评论
// @Description  对指定商品发表评论，受每日限额约束，新评论进入审核管道。
// @Tags         商品讨论
// @Accept       json
// @Produce      json
// @Param        request body dto.CreateCommentRequest true "评论内容"
// @Success      200 {object} vo.CommentResponseWrapper "发表成功"
// @Failure      400 {object} vo.BaseResponseWrapper "请求参数无效"
// @Failure      401 {object} vo.BaseResponseWrapper "未授权"
// @Failure      404 {object} vo.BaseResponseWrapper "商品不存在"
// @Failure      429 {object} vo.BaseResponseWrapper "今日评论已达上限"
// @Failure      500 {object} vo.BaseResponseWrapper "系统内部错误"
// @Router       /api/v1/vapeland/comments [post]
func (ctrl *DiscussionController) CreateComment(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	var req dto.CreateCommentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.RespondError(c, http.StatusBadRequest, response.ErrCodeClientInvalidInput, "请求参数无效: "+err.Error())
		return
	}

	commentVO, err := ctrl.discussionService.AddComment(c.Request.Context(), userID, &req)
	if err != nil {
		respondServiceError(c, err, "发表评论")
		return
	}
	response.RespondSuccess(c, commentVO, "评论发表成功")
}

// CreateReply 回复评论
// @Summary      回复评论
// @Description  回复某条评论，或回复评论下的某条回复。父回复必须属于同一条评论。
// @Tags         商品讨论
// @Accept       json
// @Produce      json
// @Param        request body dto.CreateCommentReplyRequest true "回复内容"
// @Success      200 {object} vo.ReplyResponseWrapper "回复成功"
// @Failure      400 {object} vo.BaseResponseWrapper "请求参数无效"
// @Failure      401 {object} vo.BaseResponseWrapper "未授权"
// @Failure      404 {object} vo.BaseResponseWrapper "评论或父回复不存在"
// @Failure      409 {object} vo.BaseResponseWrapper "父回复属于另一条评论"
// @Failure      500 {object} vo.BaseResponseWrapper "系统内部错误"
// @Router       /api/v1/vapeland/replies [post]
func (ctrl *DiscussionController) CreateReply(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	var req dto.CreateCommentReplyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.RespondError(c, http.StatusBadRequest, response.ErrCodeClientInvalidInput, "请求参数无效: "+err.Error())
		return
	}

	replyVO, err := ctrl.discussionService.AddReply(c.Request.Context(), userID, &req)
	if err != nil {
		respondServiceError(c, err, "回复评论")
		return
	}
	response.RespondSuccess(c, replyVO, "回复成功")
}

// ListComments 查询商品评论列表
// @Summary      查询商品评论列表
// @Description  分页返回商品下已通过审核的评论，新评论在前，附带每条的回复数。
// @Tags         商品讨论
// @Accept       json
// @Produce      json
// @Param        item_id query string true "商品ID (UUID)"
// @Param        page query int false "页码 (从1开始)"
// @Param        page_size query int false "每页数量"
// @Success      200 {object} vo.CommentPageResponseWrapper "获取成功"
// @Failure      400 {object} vo.BaseResponseWrapper "请求参数无效"
// @Failure      500 {object} vo.BaseResponseWrapper "系统内部错误"
// @Router       /api/v1/vapeland/comments [get]
func (ctrl *DiscussionController) ListComments(c *gin.Context) {
	var req dto.ListCommentsRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		response.RespondError(c, http.StatusBadRequest, response.ErrCodeClientInvalidInput, "请求参数无效: "+err.Error())
		return
	}

	pageVO, err := ctrl.discussionService.ListComments(c.Request.Context(), &req)
	if err != nil {
		respondServiceError(c, err, "查询评论列表")
		return
	}
	response.RespondSuccess(c, pageVO, "评论列表获取成功")
}

// ListReplies 查询回复列表
// @Summary      查询回复列表
// @Description  不传 parent_reply_id 时返回评论的直接回复，否则返回该回复的子回复，时间正序。
// @Tags         商品讨论
// @Accept       json
// @Produce      json
// @Param        comment_id query string true "根评论ID (UUID)"
// @Param        parent_reply_id query string false "父回复ID (UUID)"
// @Param        page query int false "页码 (从1开始)"
// @Param        page_size query int false "每页数量"
// @Success      200 {object} vo.ReplyPageResponseWrapper "获取成功"
// @Failure      400 {object} vo.BaseResponseWrapper "请求参数无效"
// @Failure      500 {object} vo.BaseResponseWrapper "系统内部错误"
// @Router       /api/v1/vapeland/replies [get]
func (ctrl *DiscussionController) ListReplies(c *gin.Context) {
	var req dto.ListRepliesRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		response.RespondError(c, http.StatusBadRequest, response.ErrCodeClientInvalidInput, "请求参数无效: "+err.Error())
		return
	}

	pageVO, err := ctrl.discussionService.ListReplies(c.Request.Context(), &req)
	if err != nil {
		respondServiceError(c, err, "查询回复列表")
		return
	}
	response.RespondSuccess(c, pageVO, "回复列表获取成功")
}

// RegisterRoutes 注册商品讨论相关的路由。
func (ctrl *DiscussionController) RegisterRoutes(group *gin.RouterGroup) {
	commentGroup := group.Group("/comments")
	{
		commentGroup.POST("", ctrl.CreateComment)
		commentGroup.GET("", ctrl.ListComments)
	}
	replyGroup := group.Group("/replies")
	{
		replyGroup.POST("", ctrl.CreateReply)
		replyGroup.GET("", ctrl.ListReplies)
	}
}
