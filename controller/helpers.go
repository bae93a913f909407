package controller

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/Xushengqwer/go-common/commonerrors"
	"github.com/Xushengqwer/go-common/constants"
	"github.com/Xushengqwer/go-common/response"
	"github.com/gin-gonic/gin"

	"github.com/ali-0019/vapeland/myErrors"
)

// currentUserID 从 gin.Context 取出网关透传的用户ID并解析为 int64。
// - 消息平台的用户ID是数字，网关以字符串形式放进上下文。
// - 取不到或解析失败时已写好 401 响应，调用方直接 return 即可。
func currentUserID(c *gin.Context) (int64, bool) {
	userIDValue, exists := c.Get(string(constants.UserIDKey))
	if !exists {
		response.RespondError(c, http.StatusUnauthorized, response.ErrCodeClientUnauthorized, "无法获取用户信息 (Context Key Not Found)")
		return 0, false
	}

	userIDStr, ok := userIDValue.(string)
	if !ok || userIDStr == "" {
		response.RespondError(c, http.StatusUnauthorized, response.ErrCodeClientUnauthorized, "无法获取有效的用户 ID (Invalid UserID in Context)")
		return 0, false
	}

	userID, err := strconv.ParseInt(userIDStr, 10, 64)
	if err != nil {
		response.RespondError(c, http.StatusUnauthorized, response.ErrCodeClientUnauthorized, "用户 ID 格式无效")
		return 0, false
	}
	return userID, true
}

// respondServiceError 把服务层错误映射为统一的 HTTP 响应。
// - 业务哨兵错误各有语义明确的状态码，其余按内部错误处理。
func respondServiceError(c *gin.Context, err error, action string) {
	switch {
	case errors.Is(err, commonerrors.ErrRepoNotFound):
		response.RespondError(c, http.StatusNotFound, response.ErrCodeClientResourceNotFound, action+": 目标不存在")
	case errors.Is(err, myErrors.ErrCacheMiss):
		response.RespondError(c, http.StatusNotFound, response.ErrCodeClientResourceNotFound, action+": 流程不存在或已过期")
	case errors.Is(err, myErrors.ErrValidation):
		response.RespondError(c, http.StatusBadRequest, response.ErrCodeClientInvalidInput, action+": "+err.Error())
	case errors.Is(err, myErrors.ErrRateLimitExceeded):
		response.RespondError(c, http.StatusTooManyRequests, response.ErrCodeClientInvalidInput, action+": 今日该类操作已达上限")
	case errors.Is(err, myErrors.ErrThreadMismatch):
		response.RespondError(c, http.StatusConflict, response.ErrCodeClientInvalidInput, action+": 父回复属于另一条评论")
	case errors.Is(err, myErrors.ErrStatusTerminal):
		response.RespondError(c, http.StatusConflict, response.ErrCodeClientInvalidInput, action+": 目标已处于终态")
	default:
		response.RespondError(c, http.StatusInternalServerError, response.ErrCodeServerInternal, action+"失败: "+err.Error())
	}
}
