package controller

import (
	"net/http"

	"github.com/Xushengqwer/go-common/response"
	"github.com/gin-gonic/gin"

	"github.com/ali-0019/vapeland/models/dto"
	"github.com/ali-0019/vapeland/service"
)

// RatingController 负责处理评分相关的 API 请求。
// - 重复打分不报错，响应中 duplicate=true 并附当前聚合值。
type RatingController struct {
	ratingService service.RatingService
}

// NewRatingController 创建一个新的 RatingController 实例。
func NewRatingController(ratingService service.RatingService) *RatingController {
	return &RatingController{ratingService: ratingService}
}

// RateItem 给商品打分
// @Summary      给商品打分
// @Description  给指定商品打 1~5 分，同一用户只计一次，返回最新的聚合值。
// @Tags         评分
// @Accept       json
// @Produce      json
// @Param        request body dto.RateItemRequest true "打分请求"
// @Success      200 {object} vo.RatingResultResponseWrapper "打分成功"
// @Failure      400 {object} vo.BaseResponseWrapper "请求参数无效"
// @Failure      401 {object} vo.BaseResponseWrapper "未授权"
// @Failure      404 {object} vo.BaseResponseWrapper "商品不存在"
// @Failure      500 {object} vo.BaseResponseWrapper "系统内部错误"
// @Router       /api/v1/vapeland/ratings/items [post]
func (ctrl *RatingController) RateItem(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	var req dto.RateItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.RespondError(c, http.StatusBadRequest, response.ErrCodeClientInvalidInput, "请求参数无效: "+err.Error())
		return
	}

	resultVO, err := ctrl.ratingService.RateItem(c.Request.Context(), userID, &req)
	if err != nil {
		respondServiceError(c, err, "商品打分")
		return
	}
	response.RespondSuccess(c, resultVO, "打分成功")
}

// RateQuestion 给技术问答打分
// @Summary      给技术问答打分
// @Description  给指定问答打 1~5 分，同一用户只计一次，返回最新的聚合值。
// @Tags         评分
// @Accept       json
// @Produce      json
// @Param        request body dto.RateQuestionRequest true "打分请求"
// @Success      200 {object} vo.RatingResultResponseWrapper "打分成功"
// @Failure      400 {object} vo.BaseResponseWrapper "请求参数无效"
// @Failure      401 {object} vo.BaseResponseWrapper "未授权"
// @Failure      404 {object} vo.BaseResponseWrapper "问答不存在"
// @Failure      500 {object} vo.BaseResponseWrapper "系统内部错误"
// @Router       /api/v1/vapeland/ratings/questions [post]
func (ctrl *RatingController) RateQuestion(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	var req dto.RateQuestionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.RespondError(c, http.StatusBadRequest, response.ErrCodeClientInvalidInput, "请求参数无效: "+err.Error())
		return
	}

	resultVO, err := ctrl.ratingService.RateQuestion(c.Request.Context(), userID, &req)
	if err != nil {
		respondServiceError(c, err, "问答打分")
		return
	}
	response.RespondSuccess(c, resultVO, "打分成功")
}

// RegisterRoutes 注册评分相关的路由。
func (ctrl *RatingController) RegisterRoutes(group *gin.RouterGroup) {
	ratingGroup := group.Group("/ratings")
	{
		ratingGroup.POST("/items", ctrl.RateItem)
		ratingGroup.POST("/questions", ctrl.RateQuestion)
	}
}
