package party_sdk

import (
	"net/http"
	"strconv"

	"github.com/cydxin/party-sdk/middleware"
	"github.com/cydxin/party-sdk/response"
	"github.com/gin-gonic/gin"
)

/* Gin handler 按模块拆分：
- handler_party.go
- handler_comment.go
- handler_notification.go
- handler_subscribe.go
*/

// mustUserID 取鉴权中间件写入的 user_id，不存在时直接写 401
func mustUserID(ctx *gin.Context) (uint64, bool) {
	uid, ok := middleware.UserID(ctx)
	if !ok {
		ctx.JSON(http.StatusUnauthorized, response.Error(response.CodeTokenInvalid, "user_id not found"))
		return 0, false
	}
	return uid, true
}

// paramID 解析路径参数中的正整数 id，失败时写 400
func paramID(ctx *gin.Context, name string) (uint64, bool) {
	id, err := strconv.ParseUint(ctx.Param(name), 10, 64)
	if err != nil || id == 0 {
		ctx.JSON(http.StatusBadRequest, response.Error(response.CodeParamError, "invalid "+name))
		return 0, false
	}
	return id, true
}

func writeError(ctx *gin.Context, err error) {
	status, resp := response.FromError(err)
	ctx.JSON(status, resp)
}
