package controller

import (
	"fmt"
	"net/http"
	"path/filepath"

	"github.com/Xushengqwer/go-common/response"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/ali-0019/vapeland/dependencies"
	"github.com/ali-0019/vapeland/models/vo"
)

// 媒体附件大小上限，超过的直接在入口拒绝
const maxMediaSize = 10 << 20 // 10 MiB

// MediaController 负责媒体附件的上传。
// - 上传成功后返回不透明对象键，随后的评论/问答/留言提交时带上它。
type MediaController struct {
	cosClient dependencies.COSClientInterface
}

// NewMediaController 创建一个新的 MediaController 实例。
func NewMediaController(cosClient dependencies.COSClientInterface) *MediaController {
	return &MediaController{cosClient: cosClient}
}

// UploadMedia 上传媒体附件
// @Summary      上传媒体附件
// @Description  上传一张照片，返回对象键 (media_ref) 供后续内容提交引用。
// @Tags         媒体
// @Accept       multipart/form-data
// @Produce      json
// @Param        file formData file true "媒体文件，最大 10MB"
// @Success      200 {object} vo.MediaUploadResponseWrapper "上传成功"
// @Failure      400 {object} vo.BaseResponseWrapper "请求参数无效"
// @Failure      401 {object} vo.BaseResponseWrapper "未授权"
// @Failure      500 {object} vo.BaseResponseWrapper "系统内部错误"
// @Router       /api/v1/vapeland/media [post]
func (ctrl *MediaController) UploadMedia(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	fileHeader, err := c.FormFile("file")
	if err != nil {
		response.RespondError(c, http.StatusBadRequest, response.ErrCodeClientMissingParam, "缺少上传文件: "+err.Error())
		return
	}
	if fileHeader.Size > maxMediaSize {
		response.RespondError(c, http.StatusBadRequest, response.ErrCodeClientInvalidInput, "文件超过大小上限")
		return
	}

	file, err := fileHeader.Open()
	if err != nil {
		response.RespondError(c, http.StatusInternalServerError, response.ErrCodeServerInternal, "读取上传文件失败: "+err.Error())
		return
	}
	defer file.Close()

	// 对象键带用户ID前缀，便于排查归属
	objectKey := fmt.Sprintf("media/%d/%s%s", userID, uuid.NewString(), filepath.Ext(fileHeader.Filename))
	contentType := fileHeader.Header.Get("Content-Type")

	publicURL, err := ctrl.cosClient.UploadMedia(c.Request.Context(), objectKey, file, fileHeader.Size, contentType)
	if err != nil {
		response.RespondError(c, http.StatusInternalServerError, response.ErrCodeServerInternal, "上传媒体失败: "+err.Error())
		return
	}

	response.RespondSuccess(c, &vo.MediaUploadVO{
		MediaRef: objectKey,
		URL:      publicURL,
	}, "媒体上传成功")
}

// RegisterRoutes 注册媒体相关的路由。
func (ctrl *MediaController) RegisterRoutes(group *gin.RouterGroup) {
	group.POST("/media", ctrl.UploadMedia)
}
