package party_sdk

import (
	"log"

	"github.com/gin-gonic/gin"
)

// GinHandleSubscribe SSE 订阅
// @Summary 订阅实时通知（SSE）
// @Description 连接建立后先收到 event:connect data:connected；之后每条通知是 event:notification，data 为通知文案。
// @Description 每 90 秒一行 ":ping" 注释保活。同一用户新连接会替换旧连接。
// @Tags 实时通知
// @Produce text/event-stream
// @Success 200 {string} string "event stream"
// @Security BearerAuth
// @Security QueryToken
// @Router /subscribe [get]
func (e *PartyEngine) GinHandleSubscribe(ctx *gin.Context) {
	uid, ok := mustUserID(ctx)
	if !ok {
		return
	}
	if err := e.ServeSSE(ctx.Writer, ctx.Request, uid); err != nil {
		log.Printf("sse subscribe user %d: %v", uid, err)
	}
}

// GinHandleWS WebSocket 订阅
// @Summary 订阅实时通知（WebSocket）
// @Description 下行帧 {"event":"connect|notification|pong","data":"..."}；服务端定期发 ping 控制帧，客户端也可以发 {"type":"ping"}。
// @Tags 实时通知
// @Success 101 {string} string "Switching Protocols"
// @Security QueryToken
// @Router /ws [get]
func (e *PartyEngine) GinHandleWS(ctx *gin.Context) {
	uid, ok := mustUserID(ctx)
	if !ok {
		return
	}
	// 升级失败时 upgrader 已经写过错误响应
	if err := e.ServeWS(ctx.Writer, ctx.Request, uid); err != nil {
		log.Printf("ws subscribe user %d: %v", uid, err)
	}
}
