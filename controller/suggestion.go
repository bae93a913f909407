package controller

import (
	"net/http"

	"github.com/Xushengqwer/go-common/response"
	"github.com/gin-gonic/gin"

	"github.com/ali-0019/vapeland/models/dto"
	"github.com/ali-0019/vapeland/service"
)

// SuggestionController 负责处理新品建议的 API 请求。
type SuggestionController struct {
	suggestionService service.SuggestionService
}

// NewSuggestionController 创建一个新的 SuggestionController 实例。
func NewSuggestionController(suggestionService service.SuggestionService) *SuggestionController {
	return &SuggestionController{suggestionService: suggestionService}
}

// CreateSuggestion 提交新品建议
// @Summary      提交新品建议
// @Description  建议上架某个商品，不受每日限额约束，建议进入审核管道。
// @Tags         新品建议
// @Accept       json
// @Produce      json
// @Param        request body dto.CreateSuggestionRequest true "建议内容"
// @Success      200 {object} vo.SuggestionResponseWrapper "提交成功"
// @Failure      400 {object} vo.BaseResponseWrapper "请求参数无效"
// @Failure      401 {object} vo.BaseResponseWrapper "未授权"
// @Failure      500 {object} vo.BaseResponseWrapper "系统内部错误"
// @Router       /api/v1/vapeland/suggestions [post]
func (ctrl *SuggestionController) CreateSuggestion(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	var req dto.CreateSuggestionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.RespondError(c, http.StatusBadRequest, response.ErrCodeClientInvalidInput, "请求参数无效: "+err.Error())
		return
	}

	suggestionVO, err := ctrl.suggestionService.SubmitSuggestion(c.Request.Context(), userID, &req)
	if err != nil {
		respondServiceError(c, err, "提交新品建议")
		return
	}
	response.RespondSuccess(c, suggestionVO, "新品建议提交成功")
}

// RegisterRoutes 注册新品建议相关的路由。
func (ctrl *SuggestionController) RegisterRoutes(group *gin.RouterGroup) {
	group.POST("/suggestions", ctrl.CreateSuggestion)
}
