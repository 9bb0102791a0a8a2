package models

import (
	"time"

	"gorm.io/datatypes"
)

// NotificationType 通知类型
type NotificationType string

const (
	NotificationJoinRequest NotificationType = "JOIN_REQUEST" // 有人申请加入
	NotificationApproved    NotificationType = "APPROVED"     // 申请被通过
	NotificationRejected    NotificationType = "REJECTED"     // 申请被拒绝
	NotificationComment     NotificationType = "COMMENT"      // 帖子收到评论
	NotificationReply       NotificationType = "REPLY"        // 评论收到回复
)

// Notification 持久化通知
// 先落库再尽力推送；离线用户通过 HTTP 拉取。
// RelatedPostID / RelatedCommentID 只做引用清理，不是级联归属。
type Notification struct {
	ID               uint64           `gorm:"primarykey"`
	ReceiverID       uint64           `gorm:"index:idx_receiver_created,priority:1;not null"`
	SenderID         *uint64          `gorm:"index"`
	Type             NotificationType `gorm:"size:32;not null"`
	Content          string           `gorm:"type:text;not null"`
	IsRead           bool             `gorm:"default:false;index"`
	RelatedPostID    *uint64          `gorm:"index"`
	RelatedCommentID *uint64          `gorm:"index"`
	Meta             datatypes.JSON   `gorm:"type:json"` // 客户端渲染用的附加字段，例如 join_id
	CreatedAt        time.Time        `gorm:"index:idx_receiver_created,priority:2"`
}

func (Notification) TableName() string { return prefix + "notification" }
