package service

import (
	"context"
	"time"

	"github.com/cydxin/party-sdk/models"
)

// PostFilter 组局帖列表筛选
type PostFilter struct {
	Page     int
	Size     int
	Deadline *time.Time // 只看该日期（当天）截止的帖子
	IsClosed *bool
}

// PartyStore 组局帖 + 参与申请的持久化边界。
// 查不到时返回 ErrNotFound（或 errors.Is 为 ErrNotFound 的错误）。
type PartyStore interface {
	CreatePost(ctx context.Context, post *models.PartyPost) error
	// GetPost forUpdate=true 时加行锁，只在事务内有意义
	GetPost(ctx context.Context, postID uint64, forUpdate bool) (*models.PartyPost, error)
	SaveCounters(ctx context.Context, post *models.PartyPost) error
	DeletePost(ctx context.Context, postID uint64) error
	ListPosts(ctx context.Context, f PostFilter) ([]models.PartyPost, error)

	GetJoin(ctx context.Context, joinID uint64) (*models.PartyJoin, error)
	FindJoin(ctx context.Context, postID, userID uint64) (*models.PartyJoin, error)
	// CreateJoin 唯一键冲突时返回 ErrAlreadyJoined
	CreateJoin(ctx context.Context, join *models.PartyJoin) error
	UpdateJoinStatus(ctx context.Context, joinID uint64, status models.JoinStatus) error
	DeleteJoin(ctx context.Context, joinID uint64) error
	ListJoinsByPost(ctx context.Context, postID uint64) ([]models.PartyJoin, error)
	ListJoinsByWriter(ctx context.Context, writerID uint64) ([]models.PartyJoin, error)
	ListJoinsByUser(ctx context.Context, userID uint64, statuses ...models.JoinStatus) ([]models.PartyJoin, error)
}

// NotificationStore 通知落库边界
type NotificationStore interface {
	Save(ctx context.Context, n *models.Notification) error
	FindByID(ctx context.Context, id uint64) (*models.Notification, error)
	// FindByReceiver 按创建时间倒序
	FindByReceiver(ctx context.Context, userID uint64) ([]models.Notification, error)
	MarkRead(ctx context.Context, id uint64) error
	MarkAllRead(ctx context.Context, userID uint64) error
	CountUnread(ctx context.Context, userID uint64) (int64, error)
	DeleteByRelatedPost(ctx context.Context, postID uint64) error
	DeleteByRelatedComment(ctx context.Context, commentIDs ...uint64) error
}

// CommentStore 评论持久化边界
type CommentStore interface {
	Create(ctx context.Context, c *models.PartyComment) error
	Get(ctx context.Context, id uint64) (*models.PartyComment, error)
	// ListByPost 按创建时间升序
	ListByPost(ctx context.Context, postID uint64) ([]models.PartyComment, error)
	DeleteByIDs(ctx context.Context, ids ...uint64) error
	DeleteByPost(ctx context.Context, postID uint64) error
}

// Store 需要一起提交的几个存储。
// Transaction 内 fn 拿到的 Store 全部绑定同一个事务；fn 返回错误则整体回滚。
type Store interface {
	Parties() PartyStore
	Notifications() NotificationStore
	Comments() CommentStore
	Transaction(ctx context.Context, fn func(tx Store) error) error
}

// UserDirectory 用户目录（外部协作方）
type UserDirectory interface {
	FindUser(ctx context.Context, userID uint64) (*models.User, error)
}

// ActivityCatalog 主题目录（外部协作方），只在发帖时校验引用
type ActivityCatalog interface {
	FindTheme(ctx context.Context, themeID uint64) (*models.Theme, error)
}
