package party_sdk

import (
	"net/http"

	"github.com/cydxin/party-sdk/response"
	"github.com/gin-gonic/gin"
)

// -------------------- 通知（Notification）相关接口 --------------------

// GinHandleListNotifications 拉取通知
// @Summary 拉取通知
// @Description 当前用户的全部通知，按时间倒序
// @Tags 通知
// @Produce json
// @Success 200 {object} response.Response{data=[]service.NotificationDTO}
// @Security BearerAuth
// @Router /notifications [get]
func (e *PartyEngine) GinHandleListNotifications(ctx *gin.Context) {
	uid, ok := mustUserID(ctx)
	if !ok {
		return
	}

	items, err := e.NotificationService.ListByReceiver(ctx.Request.Context(), uid)
	if err != nil {
		writeError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, response.Success(items))
}

// GinHandleMarkNotificationRead 标记单条已读
// @Summary 标记通知已读
// @Tags 通知
// @Produce json
// @Param id path uint64 true "通知ID"
// @Success 200 {object} response.Response
// @Failure 403 {object} response.Response "不是自己的通知"
// @Failure 404 {object} response.Response
// @Security BearerAuth
// @Router /notifications/{id}/read [patch]
func (e *PartyEngine) GinHandleMarkNotificationRead(ctx *gin.Context) {
	uid, ok := mustUserID(ctx)
	if !ok {
		return
	}
	id, ok := paramID(ctx, "id")
	if !ok {
		return
	}

	if err := e.NotificationService.MarkRead(ctx.Request.Context(), id, uid); err != nil {
		writeError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, response.Success(nil))
}

// GinHandleMarkAllNotificationsRead 全部已读
// @Summary 全部标记已读
// @Tags 通知
// @Produce json
// @Success 200 {object} response.Response
// @Security BearerAuth
// @Router /notifications/read-all [patch]
func (e *PartyEngine) GinHandleMarkAllNotificationsRead(ctx *gin.Context) {
	uid, ok := mustUserID(ctx)
	if !ok {
		return
	}

	if err := e.NotificationService.MarkAllRead(ctx.Request.Context(), uid); err != nil {
		writeError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, response.Success(nil))
}

// GinHandleUnreadCount 未读数
// @Summary 未读通知数
// @Tags 通知
// @Produce json
// @Success 200 {object} response.Response{data=map[string]int64} "data.count"
// @Security BearerAuth
// @Router /notifications/unread-count [get]
func (e *PartyEngine) GinHandleUnreadCount(ctx *gin.Context) {
	uid, ok := mustUserID(ctx)
	if !ok {
		return
	}

	n, err := e.NotificationService.UnreadCount(ctx.Request.Context(), uid)
	if err != nil {
		writeError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, response.Success(gin.H{"count": n}))
}
