package repository

import (
	"context"

	"github.com/cydxin/party-sdk/models"
	"gorm.io/gorm"
)

// NotificationDAO 通知落库
type NotificationDAO struct {
	db *gorm.DB
}

func NewNotificationDAO(db *gorm.DB) *NotificationDAO {
	return &NotificationDAO{db: db}
}

// WithDB 用于在事务（tx）中复用 DAO
func (dao *NotificationDAO) WithDB(db *gorm.DB) *NotificationDAO {
	if db == nil {
		return dao
	}
	return &NotificationDAO{db: db}
}

func (dao *NotificationDAO) Save(ctx context.Context, n *models.Notification) error {
	return dao.db.WithContext(ctx).Create(n).Error
}

func (dao *NotificationDAO) FindByID(ctx context.Context, id uint64) (*models.Notification, error) {
	var n models.Notification
	if err := dao.db.WithContext(ctx).Where("id = ?", id).First(&n).Error; err != nil {
		return nil, notFound(err)
	}
	return &n, nil
}

// FindByReceiver 按创建时间倒序（同一时刻按 id 倒序）
func (dao *NotificationDAO) FindByReceiver(ctx context.Context, userID uint64) ([]models.Notification, error) {
	var list []models.Notification
	err := dao.db.WithContext(ctx).
		Where("receiver_id = ?", userID).
		Order("created_at DESC").Order("id DESC").
		Find(&list).Error
	return list, err
}

func (dao *NotificationDAO) MarkRead(ctx context.Context, id uint64) error {
	return dao.db.WithContext(ctx).Model(&models.Notification{}).
		Where("id = ?", id).
		Update("is_read", true).Error
}

func (dao *NotificationDAO) MarkAllRead(ctx context.Context, userID uint64) error {
	return dao.db.WithContext(ctx).Model(&models.Notification{}).
		Where("receiver_id = ? AND is_read = ?", userID, false).
		Update("is_read", true).Error
}

func (dao *NotificationDAO) CountUnread(ctx context.Context, userID uint64) (int64, error) {
	var count int64
	err := dao.db.WithContext(ctx).Model(&models.Notification{}).
		Where("receiver_id = ? AND is_read = ?", userID, false).
		Count(&count).Error
	return count, err
}

func (dao *NotificationDAO) DeleteByRelatedPost(ctx context.Context, postID uint64) error {
	return dao.db.WithContext(ctx).
		Where("related_post_id = ?", postID).
		Delete(&models.Notification{}).Error
}

func (dao *NotificationDAO) DeleteByRelatedComment(ctx context.Context, commentIDs ...uint64) error {
	if len(commentIDs) == 0 {
		return nil
	}
	return dao.db.WithContext(ctx).
		Where("related_comment_id IN ?", commentIDs).
		Delete(&models.Notification{}).Error
}
