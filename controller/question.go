package controller

import (
	"net/http"

	"github.com/Xushengqwer/go-common/response"
	"github.com/gin-gonic/gin"

	"github.com/ali-0019/vapeland/models/dto"
	"github.com/ali-0019/vapeland/service"
)

// QuestionController 负责处理技术问答的 API 请求。
type QuestionController struct {
	questionService service.QuestionService
}

// NewQuestionController 创建一个新的 QuestionController 实例。
func NewQuestionController(questionService service.QuestionService) *QuestionController {
	return &QuestionController{questionService: questionService}
}

// CreateQuestion 发布技术问答
// @Summary      发布技术问答
// @Description  提交一个技术问题，受每日限额约束，新问题进入审核管道。
// @Tags         技术问答
// @Accept       json
// @Produce      json
// @Param        request body dto.CreateQuestionRequest true "问题内容"
// @Success      200 {object} vo.QuestionResponseWrapper "发布成功"
// @Failure      400 {object} vo.BaseResponseWrapper "请求参数无效"
// @Failure      401 {object} vo.BaseResponseWrapper "未授权"
// @Failure      429 {object} vo.BaseResponseWrapper "今日提问已达上限"
// @Failure      500 {object} vo.BaseResponseWrapper "系统内部错误"
// @Router       /api/v1/vapeland/questions [post]
func (ctrl *QuestionController) CreateQuestion(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	var req dto.CreateQuestionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.RespondError(c, http.StatusBadRequest, response.ErrCodeClientInvalidInput, "请求参数无效: "+err.Error())
		return
	}

	questionVO, err := ctrl.questionService.AddQuestion(c.Request.Context(), userID, &req)
	if err != nil {
		respondServiceError(c, err, "发布问答")
		return
	}
	response.RespondSuccess(c, questionVO, "问答发布成功")
}

// CreateQuestionReply 回复技术问答
// @Summary      回复技术问答
// @Description  对指定问答发表回复，问答的回复是平铺的。
// @Tags         技术问答
// @Accept       json
// @Produce      json
// @Param        request body dto.CreateQuestionReplyRequest true "回复内容"
// @Success      200 {object} vo.QuestionReplyResponseWrapper "回复成功"
// @Failure      400 {object} vo.BaseResponseWrapper "请求参数无效"
// @Failure      401 {object} vo.BaseResponseWrapper "未授权"
// @Failure      404 {object} vo.BaseResponseWrapper "问答不存在"
// @Failure      500 {object} vo.BaseResponseWrapper "系统内部错误"
// @Router       /api/v1/vapeland/questions/replies [post]
func (ctrl *QuestionController) CreateQuestionReply(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	var req dto.CreateQuestionReplyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.RespondError(c, http.StatusBadRequest, response.ErrCodeClientInvalidInput, "请求参数无效: "+err.Error())
		return
	}

	replyVO, err := ctrl.questionService.AddQuestionReply(c.Request.Context(), userID, &req)
	if err != nil {
		respondServiceError(c, err, "回复问答")
		return
	}
	response.RespondSuccess(c, replyVO, "回复成功")
}

// ListQuestions 查询问答列表
// @Summary      查询问答列表
// @Description  分页返回已通过审核的技术问答，新问题在前。
// @Tags         技术问答
// @Accept       json
// @Produce      json
// @Param        page query int false "页码 (从1开始)"
// @Param        page_size query int false "每页数量"
// @Success      200 {object} vo.QuestionPageResponseWrapper "获取成功"
// @Failure      400 {object} vo.BaseResponseWrapper "请求参数无效"
// @Failure      500 {object} vo.BaseResponseWrapper "系统内部错误"
// @Router       /api/v1/vapeland/questions [get]
func (ctrl *QuestionController) ListQuestions(c *gin.Context) {
	var req dto.ListQuestionsRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		response.RespondError(c, http.StatusBadRequest, response.ErrCodeClientInvalidInput, "请求参数无效: "+err.Error())
		return
	}

	pageVO, err := ctrl.questionService.ListQuestions(c.Request.Context(), &req)
	if err != nil {
		respondServiceError(c, err, "查询问答列表")
		return
	}
	response.RespondSuccess(c, pageVO, "问答列表获取成功")
}

// ListQuestionReplies 查询问答回复列表
// @Summary      查询问答回复列表
// @Description  分页返回问答下已通过审核的回复，时间正序。
// @Tags         技术问答
// @Accept       json
// @Produce      json
// @Param        question_id query string true "问答ID (UUID)"
// @Param        page query int false "页码 (从1开始)"
// @Param        page_size query int false "每页数量"
// @Success      200 {object} vo.QuestionReplyPageResponseWrapper "获取成功"
// @Failure      400 {object} vo.BaseResponseWrapper "请求参数无效"
// @Failure      500 {object} vo.BaseResponseWrapper "系统内部错误"
// @Router       /api/v1/vapeland/questions/replies [get]
func (ctrl *QuestionController) ListQuestionReplies(c *gin.Context) {
	var req dto.ListQuestionRepliesRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		response.RespondError(c, http.StatusBadRequest, response.ErrCodeClientInvalidInput, "请求参数无效: "+err.Error())
		return
	}

	pageVO, err := ctrl.questionService.ListQuestionReplies(c.Request.Context(), &req)
	if err != nil {
		respondServiceError(c, err, "查询问答回复列表")
		return
	}
	response.RespondSuccess(c, pageVO, "问答回复列表获取成功")
}

// GetTopQuestions 获取高分问答榜
// @Summary      获取高分问答榜
// @Description  返回按平均分排序的高分问答榜单，缓存优先。
// @Tags         技术问答
// @Accept       json
// @Produce      json
// @Success      200 {object} vo.TopQuestionsResponseWrapper "获取成功"
// @Failure      500 {object} vo.BaseResponseWrapper "系统内部错误"
// @Router       /api/v1/vapeland/questions/top [get]
func (ctrl *QuestionController) GetTopQuestions(c *gin.Context) {
	topVO, err := ctrl.questionService.GetTopQuestions(c.Request.Context())
	if err != nil {
		respondServiceError(c, err, "查询高分问答榜")
		return
	}
	response.RespondSuccess(c, topVO, "高分问答榜获取成功")
}

// RegisterRoutes 注册技术问答相关的路由。
func (ctrl *QuestionController) RegisterRoutes(group *gin.RouterGroup) {
	questionGroup := group.Group("/questions")
	{
		questionGroup.POST("", ctrl.CreateQuestion)
		questionGroup.GET("", ctrl.ListQuestions)
		questionGroup.GET("/top", ctrl.GetTopQuestions)
		questionGroup.POST("/replies", ctrl.CreateQuestionReply)
		questionGroup.GET("/replies", ctrl.ListQuestionReplies)
	}
}
