package repository

import (
	"context"

	"github.com/cydxin/party-sdk/models"
	"gorm.io/gorm"
)

// UserDAO 用户目录 / 主题目录的 gorm 实现（只读）
type UserDAO struct {
	db *gorm.DB
}

func NewUserDAO(db *gorm.DB) *UserDAO {
	return &UserDAO{db: db}
}

// FindUser 实现 service.UserDirectory
func (dao *UserDAO) FindUser(ctx context.Context, userID uint64) (*models.User, error) {
	var u models.User
	if err := dao.db.WithContext(ctx).Where("id = ?", userID).First(&u).Error; err != nil {
		return nil, notFound(err)
	}
	return &u, nil
}

// FindTheme 实现 service.ActivityCatalog
func (dao *UserDAO) FindTheme(ctx context.Context, themeID uint64) (*models.Theme, error) {
	var t models.Theme
	if err := dao.db.WithContext(ctx).Where("id = ?", themeID).First(&t).Error; err != nil {
		return nil, notFound(err)
	}
	return &t, nil
}

// FindUsers 批量取昵称，列表接口展示用
func (dao *UserDAO) FindUsers(ctx context.Context, ids []uint64) ([]models.User, error) {
	if len(ids) == 0 {
		return nil, nil
	}
	var users []models.User
	err := dao.db.WithContext(ctx).Where("id IN ?", ids).Find(&users).Error
	return users, err
}
