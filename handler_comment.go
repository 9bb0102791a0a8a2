package party_sdk

import (
	"net/http"

	"github.com/cydxin/party-sdk/response"
	"github.com/cydxin/party-sdk/service"
	"github.com/gin-gonic/gin"
)

// -------------------- 评论（Comment）相关接口 --------------------

// GinHandleAddComment 发表评论/回复
// @Summary 发表评论
// @Description parent_id 为空是顶级评论（通知发帖人 COMMENT），否则是回复（通知父评论作者和发帖人 REPLY）
// @Tags 评论
// @Accept json
// @Produce json
// @Param req body service.AddCommentInput true "请求参数"
// @Success 200 {object} response.Response{data=map[string]uint64} "data.id"
// @Failure 400 {object} response.Response
// @Failure 404 {object} response.Response "组局或父评论不存在"
// @Security BearerAuth
// @Router /party/comment [post]
func (e *PartyEngine) GinHandleAddComment(ctx *gin.Context) {
	uid, ok := mustUserID(ctx)
	if !ok {
		return
	}

	var req service.AddCommentInput
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, response.Error(response.CodeParamError, err.Error()))
		return
	}

	id, err := e.CommentService.AddComment(ctx.Request.Context(), uid, req)
	if err != nil {
		writeError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, response.Success(gin.H{"id": id}))
}

// GinHandleListComments 评论树
// @Summary 评论列表
// @Tags 评论
// @Produce json
// @Param id path uint64 true "组局ID"
// @Success 200 {object} response.Response{data=[]service.CommentNode}
// @Security BearerAuth
// @Router /party/comment/{id} [get]
func (e *PartyEngine) GinHandleListComments(ctx *gin.Context) {
	if _, ok := mustUserID(ctx); !ok {
		return
	}
	postID, ok := paramID(ctx, "id")
	if !ok {
		return
	}

	tree, err := e.CommentService.ListComments(ctx.Request.Context(), postID)
	if err != nil {
		writeError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, response.Success(tree))
}

// GinHandleDeleteComment 删除评论（作者或管理员），回复一并删除
// @Summary 删除评论
// @Tags 评论
// @Produce json
// @Param id path uint64 true "评论ID"
// @Success 200 {object} response.Response
// @Failure 403 {object} response.Response
// @Failure 404 {object} response.Response
// @Security BearerAuth
// @Router /party/comment/{id} [delete]
func (e *PartyEngine) GinHandleDeleteComment(ctx *gin.Context) {
	uid, ok := mustUserID(ctx)
	if !ok {
		return
	}
	commentID, ok := paramID(ctx, "id")
	if !ok {
		return
	}

	if err := e.CommentService.DeleteComment(ctx.Request.Context(), commentID, uid); err != nil {
		writeError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, response.Success(nil))
}
