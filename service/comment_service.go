package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/cydxin/party-sdk/models"
)

// CommentService 组局帖评论（支持多级回复）
type CommentService struct {
	*Service
}

func NewCommentService(s *Service) *CommentService {
	return &CommentService{Service: s}
}

// AddCommentInput 发表评论参数；ParentID 为空表示顶级评论
type AddCommentInput struct {
	PostID   uint64  `json:"post_id" binding:"required" example:"1"`
	ParentID *uint64 `json:"parent_id" example:"0"`
	Content  string  `json:"content" binding:"required" example:"我也想去"`
}

// CommentNode 评论树节点
type CommentNode struct {
	ID             uint64         `json:"id"`
	PostID         uint64         `json:"post_id"`
	WriterID       uint64         `json:"writer_id"`
	WriterNickname string         `json:"writer_nickname"`
	ParentID       *uint64        `json:"parent_id,omitempty"`
	Content        string         `json:"content"`
	CreatedAt      time.Time      `json:"created_at"`
	Children       []*CommentNode `json:"children"`
}

// AddComment 顶级评论通知发帖人（COMMENT）；
// 回复通知父评论作者，以及发帖人（REPLY，自己和父评论作者是发帖人时不重复通知）。
func (s *CommentService) AddComment(ctx context.Context, userID uint64, in AddCommentInput) (uint64, error) {
	in.Content = strings.TrimSpace(in.Content)
	if in.Content == "" {
		return 0, newError(CodeInvalidParam, "评论内容不能为空")
	}
	writer, err := s.Users.FindUser(ctx, userID)
	if err != nil {
		return 0, asNotFound(err, "用户不存在")
	}
	post, err := s.Store.Parties().GetPost(ctx, in.PostID, false)
	if err != nil {
		return 0, asNotFound(err, "组局帖不存在")
	}

	var parent *models.PartyComment
	if in.ParentID != nil && *in.ParentID != 0 {
		parent, err = s.Store.Comments().Get(ctx, *in.ParentID)
		if err != nil {
			return 0, asNotFound(err, "父评论不存在")
		}
		if parent.PostID != post.ID {
			return 0, newError(CodeInvalidParam, "父评论不属于该组局帖")
		}
	}

	c := &models.PartyComment{PostID: post.ID, WriterID: userID, Content: in.Content}
	if parent != nil {
		c.ParentID = &parent.ID
	}
	if err := s.Store.Comments().Create(ctx, c); err != nil {
		return 0, err
	}

	if parent == nil {
		if post.WriterID != userID {
			s.Notify.Dispatch(ctx, Event{
				ReceiverID:       post.WriterID,
				SenderID:         userID,
				Type:             models.NotificationComment,
				Content:          fmt.Sprintf("%s 评论了你的组局「%s」", writer.Nickname, post.Title),
				RelatedPostID:    post.ID,
				RelatedCommentID: c.ID,
			})
		}
		return c.ID, nil
	}

	if parent.WriterID != userID {
		s.Notify.Dispatch(ctx, Event{
			ReceiverID:       parent.WriterID,
			SenderID:         userID,
			Type:             models.NotificationReply,
			Content:          fmt.Sprintf("%s 回复了你的评论", writer.Nickname),
			RelatedPostID:    post.ID,
			RelatedCommentID: c.ID,
		})
	}
	if post.WriterID != userID && post.WriterID != parent.WriterID {
		s.Notify.Dispatch(ctx, Event{
			ReceiverID:       post.WriterID,
			SenderID:         userID,
			Type:             models.NotificationReply,
			Content:          fmt.Sprintf("%s 在你的组局「%s」下回复了评论", writer.Nickname, post.Title),
			RelatedPostID:    post.ID,
			RelatedCommentID: c.ID,
		})
	}
	return c.ID, nil
}

// ListComments 返回顶级评论列表，回复挂在 Children 下（按时间升序）
func (s *CommentService) ListComments(ctx context.Context, postID uint64) ([]*CommentNode, error) {
	if _, err := s.Store.Parties().GetPost(ctx, postID, false); err != nil {
		return nil, asNotFound(err, "组局帖不存在")
	}
	list, err := s.Store.Comments().ListByPost(ctx, postID)
	if err != nil {
		return nil, err
	}

	names := make(map[uint64]string)
	byParent := make(map[uint64][]models.PartyComment, len(list))
	for _, c := range list {
		var pid uint64
		if c.ParentID != nil {
			pid = *c.ParentID
		}
		byParent[pid] = append(byParent[pid], c)
		if _, ok := names[c.WriterID]; !ok {
			names[c.WriterID] = ""
			if u, err := s.Users.FindUser(ctx, c.WriterID); err == nil {
				names[c.WriterID] = u.Nickname
			}
		}
	}

	var build func(parentID uint64) []*CommentNode
	build = func(parentID uint64) []*CommentNode {
		children := byParent[parentID]
		out := make([]*CommentNode, 0, len(children))
		for _, c := range children {
			out = append(out, &CommentNode{
				ID:             c.ID,
				PostID:         c.PostID,
				WriterID:       c.WriterID,
				WriterNickname: names[c.WriterID],
				ParentID:       c.ParentID,
				Content:        c.Content,
				CreatedAt:      c.CreatedAt,
				Children:       build(c.ID),
			})
		}
		return out
	}
	return build(0), nil
}

// DeleteComment 作者或管理员删除评论，子回复及相关通知一起删除
func (s *CommentService) DeleteComment(ctx context.Context, commentID, callerID uint64) error {
	c, err := s.Store.Comments().Get(ctx, commentID)
	if err != nil {
		return asNotFound(err, "评论不存在")
	}
	if c.WriterID != callerID {
		caller, err := s.Users.FindUser(ctx, callerID)
		if err != nil {
			return asNotFound(err, "用户不存在")
		}
		if !caller.IsAdmin() {
			return newError(CodeForbidden, "只能删除自己的评论")
		}
	}

	return s.Store.Transaction(ctx, func(tx Store) error {
		all, err := tx.Comments().ListByPost(ctx, c.PostID)
		if err != nil {
			return err
		}
		ids := descendants(all, c.ID)
		if err := tx.Notifications().DeleteByRelatedComment(ctx, ids...); err != nil {
			return err
		}
		return tx.Comments().DeleteByIDs(ctx, ids...)
	})
}

// descendants 返回 rootID 及其所有子孙评论 id（广度优先）
func descendants(all []models.PartyComment, rootID uint64) []uint64 {
	byParent := make(map[uint64][]uint64, len(all))
	for _, c := range all {
		if c.ParentID != nil {
			byParent[*c.ParentID] = append(byParent[*c.ParentID], c.ID)
		}
	}
	ids := []uint64{rootID}
	for i := 0; i < len(ids); i++ {
		ids = append(ids, byParent[ids[i]]...)
	}
	return ids
}
