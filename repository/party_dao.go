package repository

import (
	"context"
	"errors"
	"time"

	"github.com/cydxin/party-sdk/models"
	"github.com/cydxin/party-sdk/service"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// PartyDAO 封装 PartyPost / PartyJoin 的数据库操作
type PartyDAO struct {
	db *gorm.DB
}

func NewPartyDAO(db *gorm.DB) *PartyDAO {
	return &PartyDAO{db: db}
}

// WithDB 用于在事务（tx）中复用 DAO
func (dao *PartyDAO) WithDB(db *gorm.DB) *PartyDAO {
	if db == nil {
		return dao
	}
	return &PartyDAO{db: db}
}

func (dao *PartyDAO) CreatePost(ctx context.Context, post *models.PartyPost) error {
	return dao.db.WithContext(ctx).Create(post).Error
}

// GetPost forUpdate 时使用 SELECT ... FOR UPDATE，同一帖子的并发审批在库里排队
func (dao *PartyDAO) GetPost(ctx context.Context, postID uint64, forUpdate bool) (*models.PartyPost, error) {
	q := dao.db.WithContext(ctx)
	if forUpdate {
		q = q.Clauses(clause.Locking{Strength: "UPDATE"})
	}
	var p models.PartyPost
	if err := q.Where("id = ?", postID).First(&p).Error; err != nil {
		return nil, notFound(err)
	}
	return &p, nil
}

// SaveCounters 只回写人数和关闭状态
func (dao *PartyDAO) SaveCounters(ctx context.Context, post *models.PartyPost) error {
	return dao.db.WithContext(ctx).Model(&models.PartyPost{}).
		Where("id = ?", post.ID).
		Updates(map[string]any{
			"current_participants": post.CurrentParticipants,
			"is_closed":            post.IsClosed,
		}).Error
}

// DeletePost 物理删除帖子及其参与记录（不依赖外键级联）
func (dao *PartyDAO) DeletePost(ctx context.Context, postID uint64) error {
	db := dao.db.WithContext(ctx)
	if err := db.Where("post_id = ?", postID).Delete(&models.PartyJoin{}).Error; err != nil {
		return err
	}
	res := db.Where("id = ?", postID).Delete(&models.PartyPost{})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return service.ErrNotFound
	}
	return nil
}

// ListPosts 按创建时间倒序分页
func (dao *PartyDAO) ListPosts(ctx context.Context, f service.PostFilter) ([]models.PartyPost, error) {
	q := dao.db.WithContext(ctx).Model(&models.PartyPost{})
	if f.Deadline != nil {
		y, m, d := f.Deadline.Date()
		start := time.Date(y, m, d, 0, 0, 0, 0, f.Deadline.Location())
		q = q.Where("deadline >= ? AND deadline < ?", start, start.AddDate(0, 0, 1))
	}
	if f.IsClosed != nil {
		q = q.Where("is_closed = ?", *f.IsClosed)
	}
	var posts []models.PartyPost
	err := q.Order("created_at DESC").Order("id DESC").
		Limit(f.Size).Offset(f.Page * f.Size).
		Find(&posts).Error
	return posts, err
}

func (dao *PartyDAO) GetJoin(ctx context.Context, joinID uint64) (*models.PartyJoin, error) {
	var j models.PartyJoin
	if err := dao.db.WithContext(ctx).Where("id = ?", joinID).First(&j).Error; err != nil {
		return nil, notFound(err)
	}
	return &j, nil
}

func (dao *PartyDAO) FindJoin(ctx context.Context, postID, userID uint64) (*models.PartyJoin, error) {
	var j models.PartyJoin
	if err := dao.db.WithContext(ctx).
		Where("post_id = ? AND user_id = ?", postID, userID).
		First(&j).Error; err != nil {
		return nil, notFound(err)
	}
	return &j, nil
}

// CreateJoin 依赖 (post_id, user_id) 唯一索引兜底重复申请（需开启 TranslateError）
func (dao *PartyDAO) CreateJoin(ctx context.Context, join *models.PartyJoin) error {
	err := dao.db.WithContext(ctx).Create(join).Error
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return service.ErrAlreadyJoined
	}
	return err
}

func (dao *PartyDAO) UpdateJoinStatus(ctx context.Context, joinID uint64, status models.JoinStatus) error {
	return dao.db.WithContext(ctx).Model(&models.PartyJoin{}).
		Where("id = ?", joinID).
		Update("status", status).Error
}

func (dao *PartyDAO) DeleteJoin(ctx context.Context, joinID uint64) error {
	return dao.db.WithContext(ctx).Where("id = ?", joinID).Delete(&models.PartyJoin{}).Error
}

func (dao *PartyDAO) ListJoinsByPost(ctx context.Context, postID uint64) ([]models.PartyJoin, error) {
	var joins []models.PartyJoin
	err := dao.db.WithContext(ctx).Where("post_id = ?", postID).Order("id ASC").Find(&joins).Error
	return joins, err
}

// ListJoinsByWriter 某个发帖人所有帖子收到的申请
func (dao *PartyDAO) ListJoinsByWriter(ctx context.Context, writerID uint64) ([]models.PartyJoin, error) {
	var joins []models.PartyJoin
	err := dao.db.WithContext(ctx).
		Where("post_id IN (?)", dao.db.Model(&models.PartyPost{}).Select("id").Where("writer_id = ?", writerID)).
		Order("id DESC").
		Find(&joins).Error
	return joins, err
}

func (dao *PartyDAO) ListJoinsByUser(ctx context.Context, userID uint64, statuses ...models.JoinStatus) ([]models.PartyJoin, error) {
	q := dao.db.WithContext(ctx).Where("user_id = ?", userID)
	if len(statuses) > 0 {
		q = q.Where("status IN ?", statuses)
	}
	var joins []models.PartyJoin
	err := q.Order("updated_at DESC").Find(&joins).Error
	return joins, err
}
