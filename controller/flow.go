package controller

import (
	"net/http"

	"github.com/Xushengqwer/go-common/response"
	"github.com/gin-gonic/gin"

	"github.com/ali-0019/vapeland/models/dto"
	"github.com/ali-0019/vapeland/models/vo"
	"github.com/ali-0019/vapeland/service"
)

// FlowController 负责多步会话流程状态的存取。
// - 会话前端在多条消息之间通过这组接口保存和恢复收集进度。
type FlowController struct {
	flowService service.FlowService
}

// NewFlowController 创建一个新的 FlowController 实例。
func NewFlowController(flowService service.FlowService) *FlowController {
	return &FlowController{flowService: flowService}
}

// StartFlow 开启会话流程
// @Summary      开启会话流程
// @Description  为当前用户开启一个新的多步流程，覆盖同种类的旧流程。
// @Tags         会话流程
// @Accept       json
// @Produce      json
// @Param        request body dto.StartFlowRequest true "流程种类与初始步骤"
// @Success      200 {object} vo.FlowStateResponseWrapper "流程已开启"
// @Failure      400 {object} vo.BaseResponseWrapper "请求参数无效"
// @Failure      401 {object} vo.BaseResponseWrapper "未授权"
// @Failure      500 {object} vo.BaseResponseWrapper "系统内部错误"
// @Router       /api/v1/vapeland/flows [post]
func (ctrl *FlowController) StartFlow(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	var req dto.StartFlowRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.RespondError(c, http.StatusBadRequest, response.ErrCodeClientInvalidInput, "请求参数无效: "+err.Error())
		return
	}

	state, err := ctrl.flowService.StartFlow(c.Request.Context(), userID, req.Kind, req.Step)
	if err != nil {
		respondServiceError(c, err, "开启会话流程")
		return
	}

	response.RespondSuccess(c, vo.MapFlowStateToVO(state), "流程已开启")
}

// GetFlow 查询进行中的会话流程
// @Summary      查询会话流程
// @Description  读取当前用户指定种类的进行中流程，不存在或已过期返回 404。
// @Tags         会话流程
// @Produce      json
// @Param        kind query string true "流程种类"
// @Success      200 {object} vo.FlowStateResponseWrapper "当前流程状态"
// @Failure      400 {object} vo.BaseResponseWrapper "请求参数无效"
// @Failure      401 {object} vo.BaseResponseWrapper "未授权"
// @Failure      404 {object} vo.BaseResponseWrapper "流程不存在或已过期"
// @Failure      500 {object} vo.BaseResponseWrapper "系统内部错误"
// @Router       /api/v1/vapeland/flows [get]
func (ctrl *FlowController) GetFlow(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	var req dto.GetFlowRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		response.RespondError(c, http.StatusBadRequest, response.ErrCodeClientInvalidInput, "请求参数无效: "+err.Error())
		return
	}

	state, err := ctrl.flowService.GetFlow(c.Request.Context(), userID, req.Kind)
	if err != nil {
		respondServiceError(c, err, "查询会话流程")
		return
	}

	response.RespondSuccess(c, vo.MapFlowStateToVO(state), "查询流程成功")
}

// AdvanceFlow 推进会话流程
// @Summary      推进会话流程
// @Description  把流程推进到下一步，并合并本步骤新收集的数据。
// @Tags         会话流程
// @Accept       json
// @Produce      json
// @Param        request body dto.AdvanceFlowRequest true "目标步骤与新数据"
// @Success      200 {object} vo.FlowStateResponseWrapper "推进后的流程状态"
// @Failure      400 {object} vo.BaseResponseWrapper "请求参数无效"
// @Failure      401 {object} vo.BaseResponseWrapper "未授权"
// @Failure      404 {object} vo.BaseResponseWrapper "流程不存在或已过期"
// @Failure      500 {object} vo.BaseResponseWrapper "系统内部错误"
// @Router       /api/v1/vapeland/flows/advance [put]
func (ctrl *FlowController) AdvanceFlow(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	var req dto.AdvanceFlowRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.RespondError(c, http.StatusBadRequest, response.ErrCodeClientInvalidInput, "请求参数无效: "+err.Error())
		return
	}

	state, err := ctrl.flowService.AdvanceFlow(c.Request.Context(), userID, req.Kind, req.NextStep, req.Data)
	if err != nil {
		respondServiceError(c, err, "推进会话流程")
		return
	}

	response.RespondSuccess(c, vo.MapFlowStateToVO(state), "流程已推进")
}

// CancelFlow 终止会话流程
// @Summary      终止会话流程
// @Description  终止当前用户指定种类的流程，流程不存在时同样返回成功。
// @Tags         会话流程
// @Produce      json
// @Param        kind query string true "流程种类"
// @Success      200 {object} vo.BaseResponseWrapper "流程已终止"
// @Failure      400 {object} vo.BaseResponseWrapper "请求参数无效"
// @Failure      401 {object} vo.BaseResponseWrapper "未授权"
// @Failure      500 {object} vo.BaseResponseWrapper "系统内部错误"
// @Router       /api/v1/vapeland/flows [delete]
func (ctrl *FlowController) CancelFlow(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	var req dto.CancelFlowRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		response.RespondError(c, http.StatusBadRequest, response.ErrCodeClientInvalidInput, "请求参数无效: "+err.Error())
		return
	}

	if err := ctrl.flowService.CancelFlow(c.Request.Context(), userID, req.Kind); err != nil {
		respondServiceError(c, err, "终止会话流程")
		return
	}

	response.RespondSuccess[any](c, nil, "流程已终止")
}

// RegisterRoutes 注册会话流程相关的路由。
func (ctrl *FlowController) RegisterRoutes(group *gin.RouterGroup) {
	flowGroup := group.Group("/flows")
	{
		flowGroup.POST("", ctrl.StartFlow)
		flowGroup.GET("", ctrl.GetFlow)
		flowGroup.PUT("/advance", ctrl.AdvanceFlow)
		flowGroup.DELETE("", ctrl.CancelFlow)
	}
}
