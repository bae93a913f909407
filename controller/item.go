package controller

import (
	"net/http"

	"github.com/Xushengqwer/go-common/response"
	"github.com/gin-gonic/gin"

	"github.com/ali-0019/vapeland/models/dto"
	"github.com/ali-0019/vapeland/service"
)

// ItemController 负责处理商品目录的查询类 API 请求。
// - 商品录入在管理端控制器中（见 admin.go）。
type ItemController struct {
	itemService service.ItemService
}

// NewItemController 创建一个新的 ItemController 实例。
func NewItemController(itemService service.ItemService) *ItemController {
	return &ItemController{itemService: itemService}
}

// ListItems 按类别浏览商品
// @Summary      按类别浏览商品
// @Description  按商品类别分页返回商品列表，按名称排序。
// @Tags         商品目录
// @Accept       json
// @Produce      json
// @Param        type query int true "商品类别 (0=换弹设备, 1=一次性设备, 2=尼古丁盐, 3=果汁)"
// @Param        page query int false "页码 (从1开始)"
// @Param        page_size query int false "每页数量"
// @Success      200 {object} vo.ItemPageResponseWrapper "获取成功"
// @Failure      400 {object} vo.BaseResponseWrapper "请求参数无效"
// @Failure      500 {object} vo.BaseResponseWrapper "系统内部错误"
// @Router       /api/v1/vapeland/items [get]
func (ctrl *ItemController) ListItems(c *gin.Context) {
	var req dto.ListItemsRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		response.RespondError(c, http.StatusBadRequest, response.ErrCodeClientInvalidInput, "请求参数无效: "+err.Error())
		return
	}

	pageVO, err := ctrl.itemService.ListItems(c.Request.Context(), &req)
	if err != nil {
		respondServiceError(c, err, "查询商品列表")
		return
	}
	response.RespondSuccess(c, pageVO, "商品列表获取成功")
}

// SearchItems 搜索商品
// @Summary      搜索商品
// @Description  按商品名模糊搜索，高分商品在前。
// @Tags         商品目录
// @Accept       json
// @Produce      json
// @Param        keyword query string true "搜索关键字"
// @Param        page query int false "页码 (从1开始)"
// @Param        page_size query int false "每页数量"
// @Success      200 {object} vo.ItemPageResponseWrapper "搜索成功"
// @Failure      400 {object} vo.BaseResponseWrapper "请求参数无效"
// @Failure      500 {object} vo.BaseResponseWrapper "系统内部错误"
// @Router       /api/v1/vapeland/items/search [get]
func (ctrl *ItemController) SearchItems(c *gin.Context) {
	var req dto.SearchItemsRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		response.RespondError(c, http.StatusBadRequest, response.ErrCodeClientInvalidInput, "请求参数无效: "+err.Error())
		return
	}

	pageVO, err := ctrl.itemService.SearchItems(c.Request.Context(), &req)
	if err != nil {
		respondServiceError(c, err, "搜索商品")
		return
	}
	response.RespondSuccess(c, pageVO, "商品搜索成功")
}

// GetItem 获取商品详情
// @Summary      获取商品详情
// @Description  按商品ID返回单个商品，包含评分聚合。
// @Tags         商品目录
// @Accept       json
// @Produce      json
// @Param        item_id path string true "商品ID (UUID)"
// @Success      200 {object} vo.ItemResponseWrapper "获取成功"
// @Failure      404 {object} vo.BaseResponseWrapper "商品不存在"
// @Failure      500 {object} vo.BaseResponseWrapper "系统内部错误"
// @Router       /api/v1/vapeland/items/{item_id} [get]
func (ctrl *ItemController) GetItem(c *gin.Context) {
	itemID := c.Param("item_id")
	if itemID == "" {
		response.RespondError(c, http.StatusBadRequest, response.ErrCodeClientMissingParam, "缺少商品ID")
		return
	}

	itemVO, err := ctrl.itemService.GetItem(c.Request.Context(), itemID)
	if err != nil {
		respondServiceError(c, err, "查询商品")
		return
	}
	response.RespondSuccess(c, itemVO, "商品详情获取成功")
}

// RegisterRoutes 注册商品目录相关的路由。
func (ctrl *ItemController) RegisterRoutes(group *gin.RouterGroup) {
	itemGroup := group.Group("/items")
	{
		itemGroup.GET("", ctrl.ListItems)
		itemGroup.GET("/search", ctrl.SearchItems)
		itemGroup.GET("/:item_id", ctrl.GetItem)
	}
}
