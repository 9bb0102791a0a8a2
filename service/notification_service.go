package service

import (
	"context"
	"encoding/json"
	"errors"
	"log"
	"time"

	"github.com/cydxin/party-sdk/models"
	"gorm.io/datatypes"
)

// NotificationService 统一处理组局相关通知
// 约定：先落库，再尽力在线推送；离线/新设备通过 HTTP 拉取。
type NotificationService struct {
	*Service
}

func NewNotificationService(s *Service) *NotificationService {
	return &NotificationService{Service: s}
}

// Event 一条待投递的通知。0 表示没有对应的 sender / 关联对象。
type Event struct {
	ReceiverID       uint64
	SenderID         uint64
	Type             models.NotificationType
	Content          string
	RelatedPostID    uint64
	RelatedCommentID uint64
	Meta             map[string]any
}

// Dispatch 落库 + 在线推送。
// 落库失败只记日志并放弃推送，不影响调用方（调用方的业务事务此时已提交）。
// 推送结果同样被吞掉：用户不在线就等下次 HTTP 拉取。
func (s *NotificationService) Dispatch(ctx context.Context, evt Event) {
	n, err := s.persist(ctx, evt)
	if err != nil {
		log.Printf("notification: persist %s for user %d failed: %v", evt.Type, evt.ReceiverID, err)
		return
	}
	if s.LivePush == nil {
		return
	}
	if !s.LivePush(n.ReceiverID, n.Content) && s.Config.Debug {
		log.Printf("notification: user %d offline, %s kept for pull", n.ReceiverID, n.Type)
	}
}

func (s *NotificationService) persist(ctx context.Context, evt Event) (*models.Notification, error) {
	if evt.ReceiverID == 0 {
		return nil, errors.New("receiver_id is required")
	}
	n := &models.Notification{
		ReceiverID:       evt.ReceiverID,
		SenderID:         optionalID(evt.SenderID),
		Type:             evt.Type,
		Content:          evt.Content,
		RelatedPostID:    optionalID(evt.RelatedPostID),
		RelatedCommentID: optionalID(evt.RelatedCommentID),
		CreatedAt:        time.Now(),
	}
	if len(evt.Meta) > 0 {
		b, err := json.Marshal(evt.Meta)
		if err != nil {
			return nil, err
		}
		n.Meta = datatypes.JSON(b)
	}
	if err := s.Store.Notifications().Save(ctx, n); err != nil {
		return nil, err
	}
	return n, nil
}

// NotificationDTO HTTP 返回结构
type NotificationDTO struct {
	ID               uint64                  `json:"id"`
	SenderID         *uint64                 `json:"sender_id,omitempty"`
	Type             models.NotificationType `json:"type"`
	Content          string                  `json:"content"`
	IsRead           bool                    `json:"is_read"`
	RelatedPostID    *uint64                 `json:"related_post_id,omitempty"`
	RelatedCommentID *uint64                 `json:"related_comment_id,omitempty"`
	Meta             datatypes.JSON          `json:"meta,omitempty" swaggertype:"object"`
	CreatedAt        time.Time               `json:"created_at"`
}

func toNotificationDTO(n models.Notification) NotificationDTO {
	return NotificationDTO{
		ID:               n.ID,
		SenderID:         n.SenderID,
		Type:             n.Type,
		Content:          n.Content,
		IsRead:           n.IsRead,
		RelatedPostID:    n.RelatedPostID,
		RelatedCommentID: n.RelatedCommentID,
		Meta:             n.Meta,
		CreatedAt:        n.CreatedAt,
	}
}

// ListByReceiver 拉取用户全部通知，最新的在前
func (s *NotificationService) ListByReceiver(ctx context.Context, userID uint64) ([]NotificationDTO, error) {
	list, err := s.Store.Notifications().FindByReceiver(ctx, userID)
	if err != nil {
		return nil, err
	}
	out := make([]NotificationDTO, 0, len(list))
	for _, n := range list {
		out = append(out, toNotificationDTO(n))
	}
	return out, nil
}

// MarkRead 只能标记自己的通知
func (s *NotificationService) MarkRead(ctx context.Context, id, userID uint64) error {
	n, err := s.Store.Notifications().FindByID(ctx, id)
	if err != nil {
		return asNotFound(err, "通知不存在")
	}
	if n.ReceiverID != userID {
		return newError(CodeForbidden, "只能标记自己的通知")
	}
	if n.IsRead {
		return nil
	}
	return s.Store.Notifications().MarkRead(ctx, id)
}

func (s *NotificationService) MarkAllRead(ctx context.Context, userID uint64) error {
	return s.Store.Notifications().MarkAllRead(ctx, userID)
}

func (s *NotificationService) UnreadCount(ctx context.Context, userID uint64) (int64, error) {
	return s.Store.Notifications().CountUnread(ctx, userID)
}

func optionalID(id uint64) *uint64 {
	if id == 0 {
		return nil
	}
	return &id
}
