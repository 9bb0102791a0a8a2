package repository

import (
	"context"

	"github.com/cydxin/party-sdk/models"
	"gorm.io/gorm"
)

// CommentDAO 评论数据访问
type CommentDAO struct {
	db *gorm.DB
}

func NewCommentDAO(db *gorm.DB) *CommentDAO {
	return &CommentDAO{db: db}
}

func (dao *CommentDAO) WithDB(db *gorm.DB) *CommentDAO {
	if db == nil {
		return dao
	}
	return &CommentDAO{db: db}
}

func (dao *CommentDAO) Create(ctx context.Context, c *models.PartyComment) error {
	return dao.db.WithContext(ctx).Create(c).Error
}

func (dao *CommentDAO) Get(ctx context.Context, id uint64) (*models.PartyComment, error) {
	var c models.PartyComment
	if err := dao.db.WithContext(ctx).Where("id = ?", id).First(&c).Error; err != nil {
		return nil, notFound(err)
	}
	return &c, nil
}

// ListByPost 时间升序，便于上层构建树
func (dao *CommentDAO) ListByPost(ctx context.Context, postID uint64) ([]models.PartyComment, error) {
	var cs []models.PartyComment
	err := dao.db.WithContext(ctx).
		Where("post_id = ?", postID).
		Order("created_at ASC").Order("id ASC").
		Find(&cs).Error
	return cs, err
}

func (dao *CommentDAO) DeleteByIDs(ctx context.Context, ids ...uint64) error {
	if len(ids) == 0 {
		return nil
	}
	return dao.db.WithContext(ctx).Where("id IN ?", ids).Delete(&models.PartyComment{}).Error
}

func (dao *CommentDAO) DeleteByPost(ctx context.Context, postID uint64) error {
	return dao.db.WithContext(ctx).Where("post_id = ?", postID).Delete(&models.PartyComment{}).Error
}
