package repository

import (
	"context"
	"errors"

	"github.com/cydxin/party-sdk/service"
	"gorm.io/gorm"
)

// GormStore 基于 GORM 的 service.Store 实现
//
// 约定：
// - DAO 只做数据访问，不做业务编排（权限、通知等）。
// - 事务边界由 service 通过 Transaction 控制，事务内的 DAO 通过 WithDB(tx) 复用。
type GormStore struct {
	db            *gorm.DB
	parties       *PartyDAO
	notifications *NotificationDAO
	comments      *CommentDAO
}

func NewGormStore(db *gorm.DB) *GormStore {
	return &GormStore{
		db:            db,
		parties:       NewPartyDAO(db),
		notifications: NewNotificationDAO(db),
		comments:      NewCommentDAO(db),
	}
}

func (s *GormStore) Parties() service.PartyStore             { return s.parties }
func (s *GormStore) Notifications() service.NotificationStore { return s.notifications }
func (s *GormStore) Comments() service.CommentStore           { return s.comments }

// Transaction fn 内的 Store 绑定同一个 tx
func (s *GormStore) Transaction(ctx context.Context, fn func(tx service.Store) error) error {
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return fn(&GormStore{
			db:            tx,
			parties:       s.parties.WithDB(tx),
			notifications: s.notifications.WithDB(tx),
			comments:      s.comments.WithDB(tx),
		})
	})
}

// notFound 把 gorm 的 ErrRecordNotFound 统一转成 service.ErrNotFound
func notFound(err error) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return service.ErrNotFound
	}
	return err
}
