package party_sdk

import (
	"net/http"
	"strconv"
	"time"

	"github.com/cydxin/party-sdk/response"
	"github.com/cydxin/party-sdk/service"
	"github.com/gin-gonic/gin"
)

// -------------------- 组局（Party）相关接口 --------------------

// GinHandleCreatePost 发布组局
// @Summary 发布组局
// @Description 发帖人自己计入人数；max_participants 为 1 时创建即截止
// @Tags 组局
// @Accept json
// @Produce json
// @Param id path uint64 true "主题ID"
// @Param req body service.CreatePostInput true "请求参数"
// @Success 200 {object} response.Response{data=map[string]uint64} "data.id"
// @Failure 400 {object} response.Response
// @Failure 404 {object} response.Response "主题不存在"
// @Security BearerAuth
// @Router /party/{id} [post]
func (e *PartyEngine) GinHandleCreatePost(ctx *gin.Context) {
	uid, ok := mustUserID(ctx)
	if !ok {
		return
	}
	themeID, ok := paramID(ctx, "id")
	if !ok {
		return
	}

	var req service.CreatePostInput
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, response.Error(response.CodeParamError, err.Error()))
		return
	}

	id, err := e.PartyService.CreatePost(ctx.Request.Context(), uid, themeID, req)
	if err != nil {
		writeError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, response.Success(gin.H{"id": id}))
}

// GinHandleListPosts 分页查询组局
// @Summary 分页查询组局
// @Tags 组局
// @Produce json
// @Param page query int false "页码(从0开始)"
// @Param size query int false "每页条数(默认10,最大100)"
// @Param deadline query string false "截止日期 YYYY-MM-DD"
// @Param is_closed query bool false "是否已截止"
// @Success 200 {object} response.Response{data=[]service.PartyPostDTO}
// @Failure 400 {object} response.Response
// @Security BearerAuth
// @Router /party/paged [get]
func (e *PartyEngine) GinHandleListPosts(ctx *gin.Context) {
	if _, ok := mustUserID(ctx); !ok {
		return
	}

	q := service.PostQuery{}
	q.Page, _ = strconv.Atoi(ctx.DefaultQuery("page", "0"))
	q.Size, _ = strconv.Atoi(ctx.DefaultQuery("size", "10"))
	if s := ctx.Query("deadline"); s != "" {
		d, err := time.ParseInLocation(time.DateOnly, s, time.Local)
		if err != nil {
			ctx.JSON(http.StatusBadRequest, response.Error(response.CodeParamError, "invalid deadline"))
			return
		}
		q.Deadline = &d
	}
	if s := ctx.Query("is_closed"); s != "" {
		closed, err := strconv.ParseBool(s)
		if err != nil {
			ctx.JSON(http.StatusBadRequest, response.Error(response.CodeParamError, "invalid is_closed"))
			return
		}
		q.IsClosed = &closed
	}

	items, err := e.PartyService.ListPosts(ctx.Request.Context(), q)
	if err != nil {
		writeError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, response.Success(items))
}

// GinHandleGetPost 组局详情
// @Summary 组局详情
// @Description 包含发帖人、主题、申请列表，以及当前用户的申请状态
// @Tags 组局
// @Produce json
// @Param id path uint64 true "组局ID"
// @Success 200 {object} response.Response{data=service.PartyPostDetailDTO}
// @Failure 404 {object} response.Response
// @Security BearerAuth
// @Router /party/{id} [get]
func (e *PartyEngine) GinHandleGetPost(ctx *gin.Context) {
	uid, ok := mustUserID(ctx)
	if !ok {
		return
	}
	postID, ok := paramID(ctx, "id")
	if !ok {
		return
	}

	detail, err := e.PartyService.GetPostDetail(ctx.Request.Context(), postID, uid)
	if err != nil {
		writeError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, response.Success(detail))
}

// GinHandleDeletePost 删除组局（发帖人或管理员）
// @Summary 删除组局
// @Tags 组局
// @Produce json
// @Param id path uint64 true "组局ID"
// @Success 200 {object} response.Response
// @Failure 403 {object} response.Response
// @Failure 404 {object} response.Response
// @Security BearerAuth
// @Router /party/{id} [delete]
func (e *PartyEngine) GinHandleDeletePost(ctx *gin.Context) {
	uid, ok := mustUserID(ctx)
	if !ok {
		return
	}
	postID, ok := paramID(ctx, "id")
	if !ok {
		return
	}

	if err := e.PartyService.DeletePost(ctx.Request.Context(), postID, uid); err != nil {
		writeError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, response.Success(nil))
}

// GinHandleJoinPost 申请加入组局
// @Summary 申请加入组局
// @Description 被拒绝后可以再次申请；发帖人会收到 JOIN_REQUEST 通知
// @Tags 组局
// @Produce json
// @Param id path uint64 true "组局ID"
// @Success 200 {object} response.Response
// @Failure 400 {object} response.Response "自己的组局/已截止/已申请/已满"
// @Failure 404 {object} response.Response
// @Security BearerAuth
// @Router /party/{id}/join [post]
func (e *PartyEngine) GinHandleJoinPost(ctx *gin.Context) {
	uid, ok := mustUserID(ctx)
	if !ok {
		return
	}
	postID, ok := paramID(ctx, "id")
	if !ok {
		return
	}

	if err := e.PartyService.JoinPost(ctx.Request.Context(), postID, uid); err != nil {
		writeError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, response.Success(nil))
}

// GinHandleCancelJoin 取消申请
// @Summary 取消申请
// @Description 已通过的申请取消后释放名额并重新开放报名
// @Tags 组局
// @Produce json
// @Param id path uint64 true "组局ID"
// @Success 200 {object} response.Response
// @Failure 404 {object} response.Response
// @Security BearerAuth
// @Router /party/{id}/join [delete]
func (e *PartyEngine) GinHandleCancelJoin(ctx *gin.Context) {
	uid, ok := mustUserID(ctx)
	if !ok {
		return
	}
	postID, ok := paramID(ctx, "id")
	if !ok {
		return
	}

	if err := e.PartyService.CancelJoin(ctx.Request.Context(), postID, uid); err != nil {
		writeError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, response.Success(nil))
}

// DecideJoinReq 审批参数
type DecideJoinReq struct {
	Status string `json:"status" binding:"required" example:"APPROVED"` // APPROVED / REJECTED
}

// GinHandleDecideJoin 发帖人审批申请
// @Summary 审批申请
// @Tags 组局
// @Accept json
// @Produce json
// @Param joinId path uint64 true "申请ID"
// @Param req body DecideJoinReq true "请求参数"
// @Success 200 {object} response.Response
// @Failure 400 {object} response.Response "状态非法/已满"
// @Failure 403 {object} response.Response "不是发帖人"
// @Failure 404 {object} response.Response
// @Security BearerAuth
// @Router /party/join/{joinId}/status [post]
func (e *PartyEngine) GinHandleDecideJoin(ctx *gin.Context) {
	uid, ok := mustUserID(ctx)
	if !ok {
		return
	}
	joinID, ok := paramID(ctx, "joinId")
	if !ok {
		return
	}

	var req DecideJoinReq
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, response.Error(response.CodeParamError, err.Error()))
		return
	}

	if err := e.PartyService.Decide(ctx.Request.Context(), joinID, uid, req.Status); err != nil {
		writeError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, response.Success(nil))
}

// GinHandleJoinRequests 我发布的组局收到的申请
// @Summary 收到的申请
// @Tags 组局
// @Produce json
// @Success 200 {object} response.Response{data=[]service.PartyJoinDTO}
// @Security BearerAuth
// @Router /party/join/notification [get]
func (e *PartyEngine) GinHandleJoinRequests(ctx *gin.Context) {
	uid, ok := mustUserID(ctx)
	if !ok {
		return
	}

	items, err := e.PartyService.ListJoinRequestsForWriter(ctx.Request.Context(), uid)
	if err != nil {
		writeError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, response.Success(items))
}

// GinHandleMyJoins 我的申请中已有结果的（通过/拒绝）
// @Summary 我的申请结果
// @Tags 组局
// @Produce json
// @Success 200 {object} response.Response{data=[]service.PartyJoinDTO}
// @Security BearerAuth
// @Router /party/join/status [get]
func (e *PartyEngine) GinHandleMyJoins(ctx *gin.Context) {
	uid, ok := mustUserID(ctx)
	if !ok {
		return
	}

	items, err := e.PartyService.ListMyResolvedJoins(ctx.Request.Context(), uid)
	if err != nil {
		writeError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, response.Success(items))
}
