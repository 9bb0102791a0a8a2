package service

import (
	"context"
	"errors"
	"fmt"
	"log"
	"strings"
	"time"

	"github.com/cydxin/party-sdk/models"
)

// PartyService 组局帖状态机：发帖 / 申请 / 审批 / 取消 / 删帖
//
// 约定：
// - 每个状态流转都在一个事务内完成（人数与申请状态一起提交），同一帖子的流转按 post id 串行。
// - 通知只在事务提交成功后发送，发送结果不影响返回值。
type PartyService struct {
	*Service
}

func NewPartyService(s *Service) *PartyService {
	return &PartyService{Service: s}
}

// CreatePostInput 发帖参数
type CreatePostInput struct {
	Title           string    `json:"title" binding:"required" example:"周六晚上剧本杀"`
	Content         string    `json:"content" example:"新手友好，缺两位"`
	MaxParticipants int       `json:"max_participants" binding:"required" example:"4"`
	Deadline        time.Time `json:"deadline" binding:"required"`
}

// PartyPostDTO 列表项
type PartyPostDTO struct {
	ID                  uint64    `json:"id"`
	WriterID            uint64    `json:"writer_id"`
	ThemeID             uint64    `json:"theme_id"`
	Title               string    `json:"title"`
	Content             string    `json:"content"`
	MaxParticipants     int       `json:"max_participants"`
	CurrentParticipants int       `json:"current_participants"`
	Deadline            time.Time `json:"deadline"`
	IsClosed            bool      `json:"is_closed"`
	CreatedAt           time.Time `json:"created_at"`
}

// PartyPostDetailDTO 详情：帖子 + 发帖人 + 主题 + 当前用户的申请状态
type PartyPostDetailDTO struct {
	PartyPostDTO
	WriterNickname string         `json:"writer_nickname"`
	ThemeTitle     string         `json:"theme_title,omitempty"`
	ThemeBrand     string         `json:"theme_brand,omitempty"`
	ThemeLocation  string         `json:"theme_location,omitempty"`
	JoinStatus     string         `json:"join_status,omitempty"` // 当前用户对该帖的申请状态，未申请为空
	Joins          []PartyJoinDTO `json:"joins"`
}

// PartyJoinDTO 申请记录
type PartyJoinDTO struct {
	ID        uint64            `json:"join_id"`
	PostID    uint64            `json:"post_id"`
	UserID    uint64            `json:"user_id"`
	Nickname  string            `json:"nickname"`
	Status    models.JoinStatus `json:"status"`
	CreatedAt time.Time         `json:"created_at"`
	UpdatedAt time.Time         `json:"updated_at"`
}

// PostQuery 列表查询参数
type PostQuery struct {
	Page     int
	Size     int
	Deadline *time.Time
	IsClosed *bool
}

const (
	defaultPageSize = 10
	maxPageSize     = 100
)

func toPostDTO(p *models.PartyPost) PartyPostDTO {
	return PartyPostDTO{
		ID:                  p.ID,
		WriterID:            p.WriterID,
		ThemeID:             p.ThemeID,
		Title:               p.Title,
		Content:             p.Content,
		MaxParticipants:     p.MaxParticipants,
		CurrentParticipants: p.CurrentParticipants,
		Deadline:            p.Deadline,
		IsClosed:            p.IsClosed,
		CreatedAt:           p.CreatedAt,
	}
}

// CreatePost 发帖，发帖人自己算 1 人。不发通知。
func (s *PartyService) CreatePost(ctx context.Context, ownerID, themeID uint64, in CreatePostInput) (uint64, error) {
	in.Title = strings.TrimSpace(in.Title)
	if in.Title == "" {
		return 0, newError(CodeInvalidParam, "标题不能为空")
	}
	if in.MaxParticipants < 1 {
		return 0, newError(CodeInvalidParam, "人数上限必须大于 0")
	}
	if _, err := s.Users.FindUser(ctx, ownerID); err != nil {
		return 0, asNotFound(err, "用户不存在")
	}
	if _, err := s.Themes.FindTheme(ctx, themeID); err != nil {
		return 0, asNotFound(err, "主题不存在")
	}

	post := &models.PartyPost{
		WriterID:            ownerID,
		ThemeID:             themeID,
		Title:               in.Title,
		Content:             in.Content,
		MaxParticipants:     in.MaxParticipants,
		CurrentParticipants: 1,
		Deadline:            in.Deadline,
	}
	// 上限为 1 时只有发帖人自己，创建即满员
	post.IsClosed = post.CurrentParticipants >= post.MaxParticipants

	err := s.Store.Transaction(ctx, func(tx Store) error {
		return tx.Parties().CreatePost(ctx, post)
	})
	if err != nil {
		return 0, err
	}
	s.debugf("post %d created by user %d (max=%d)", post.ID, ownerID, post.MaxParticipants)
	return post.ID, nil
}

// JoinPost 申请加入，创建 PENDING 记录并通知发帖人
func (s *PartyService) JoinPost(ctx context.Context, postID, userID uint64) error {
	requester, err := s.Users.FindUser(ctx, userID)
	if err != nil {
		return asNotFound(err, "用户不存在")
	}

	var post *models.PartyPost
	join := &models.PartyJoin{PostID: postID, UserID: userID, Status: models.JoinStatusPending}
	err = s.withPost(ctx, postID, func(tx Store, p *models.PartyPost) error {
		if p.WriterID == userID {
			return ErrSelfJoinDenied
		}
		if !p.CanAcceptMore() {
			return ErrPartyClosed
		}
		_, err := tx.Parties().FindJoin(ctx, postID, userID)
		switch {
		case err == nil:
			return ErrAlreadyJoined
		case !errors.Is(err, ErrNotFound):
			return err
		}
		post = p
		return tx.Parties().CreateJoin(ctx, join)
	})
	if err != nil {
		return err
	}
	s.debugf("user %d requested to join post %d (join %d)", userID, postID, join.ID)

	s.Notify.Dispatch(ctx, Event{
		ReceiverID:    post.WriterID,
		SenderID:      userID,
		Type:          models.NotificationJoinRequest,
		Content:       fmt.Sprintf("%s 申请加入你的组局「%s」", requester.Nickname, post.Title),
		RelatedPostID: post.ID,
		Meta:          map[string]any{"join_id": join.ID, "post_id": post.ID},
	})
	return nil
}

// Decide 发帖人审批申请，status 只接受 APPROVED / REJECTED。
// 人数变化只看 "之前是否已通过" 与 "之后是否通过"：
// - APPROVED -> 其他：人数 -1 并重新开放
// - 其他 -> APPROVED：先确认还有名额（否则 ErrPartyFull），再人数 +1
func (s *PartyService) Decide(ctx context.Context, joinID, callerID uint64, status string) error {
	found, err := s.Store.Parties().GetJoin(ctx, joinID)
	if err != nil {
		return asNotFound(err, "申请记录不存在")
	}

	var (
		post   *models.PartyPost
		join   *models.PartyJoin
		prior  models.JoinStatus
		target models.JoinStatus
	)
	err = s.withPost(ctx, found.PostID, func(tx Store, p *models.PartyPost) error {
		// 排队期间申请可能已被取消，锁内重新读取
		j, err := tx.Parties().GetJoin(ctx, joinID)
		if err != nil {
			return asNotFound(err, "申请记录不存在")
		}
		if p.WriterID != callerID {
			return newError(CodeForbidden, "只有发帖人可以审批")
		}
		var ok bool
		if target, ok = models.ParseDecision(status); !ok {
			return newError(CodeInvalidParam, "无效的审批状态: "+status)
		}

		prior = j.Status
		countChanged := false
		if prior == models.JoinStatusApproved && target != models.JoinStatusApproved {
			p.DecreaseParticipantCount()
			countChanged = true
		}
		if prior != models.JoinStatusApproved && target == models.JoinStatusApproved {
			if !p.CanAcceptMore() {
				return ErrPartyFull
			}
			p.IncreaseParticipantCount()
			countChanged = true
		}
		if prior != target {
			if err := tx.Parties().UpdateJoinStatus(ctx, j.ID, target); err != nil {
				return err
			}
			j.Status = target
		}
		if countChanged {
			if err := tx.Parties().SaveCounters(ctx, p); err != nil {
				return err
			}
		}
		post, join = p, j
		return nil
	})
	if err != nil {
		return err
	}
	s.debugf("join %d on post %d: %s -> %s (%d/%d)", joinID, post.ID, prior, target, post.CurrentParticipants, post.MaxParticipants)

	if prior == target && !s.Config.NotifyUnchangedDecision {
		return nil
	}

	typ := models.NotificationApproved
	content := fmt.Sprintf("你申请加入的组局「%s」已通过", post.Title)
	if target == models.JoinStatusRejected {
		typ = models.NotificationRejected
		content = fmt.Sprintf("你申请加入的组局「%s」被拒绝了", post.Title)
	}
	s.Notify.Dispatch(ctx, Event{
		ReceiverID:    join.UserID,
		SenderID:      post.WriterID,
		Type:          typ,
		Content:       content,
		RelatedPostID: post.ID,
		Meta:          map[string]any{"join_id": join.ID, "post_id": post.ID, "status": target},
	})
	return nil
}

// CancelJoin 申请人撤回申请（删除记录），已通过的释放名额。不通知发帖人。
func (s *PartyService) CancelJoin(ctx context.Context, postID, userID uint64) error {
	err := s.withPost(ctx, postID, func(tx Store, p *models.PartyPost) error {
		j, err := tx.Parties().FindJoin(ctx, postID, userID)
		if err != nil {
			return asNotFound(err, "申请记录不存在")
		}
		if j.Status == models.JoinStatusApproved {
			p.DecreaseParticipantCount()
			if err := tx.Parties().SaveCounters(ctx, p); err != nil {
				return err
			}
		}
		return tx.Parties().DeleteJoin(ctx, j.ID)
	})
	if err != nil {
		return err
	}
	s.debugf("user %d cancelled join on post %d", userID, postID)
	return nil
}

// DeletePost 发帖人或管理员删帖：相关通知、评论、申请记录一起物理删除
func (s *PartyService) DeletePost(ctx context.Context, postID, callerID uint64) error {
	err := s.withPost(ctx, postID, func(tx Store, p *models.PartyPost) error {
		if p.WriterID != callerID {
			caller, err := s.Users.FindUser(ctx, callerID)
			if err != nil && !errors.Is(err, ErrNotFound) {
				return err
			}
			if !caller.IsAdmin() {
				return newError(CodeForbidden, "只能删除自己发布的组局")
			}
		}
		if err := tx.Notifications().DeleteByRelatedPost(ctx, postID); err != nil {
			return err
		}
		if err := tx.Comments().DeleteByPost(ctx, postID); err != nil {
			return err
		}
		return tx.Parties().DeletePost(ctx, postID)
	})
	if err != nil {
		return err
	}
	s.debugf("post %d deleted by user %d", postID, callerID)
	return nil
}

// ListPosts 按发帖时间倒序分页；page 从 0 开始
func (s *PartyService) ListPosts(ctx context.Context, q PostQuery) ([]PartyPostDTO, error) {
	if q.Page < 0 {
		q.Page = 0
	}
	if q.Size <= 0 {
		q.Size = defaultPageSize
	}
	if q.Size > maxPageSize {
		q.Size = maxPageSize
	}
	posts, err := s.Store.Parties().ListPosts(ctx, PostFilter{
		Page:     q.Page,
		Size:     q.Size,
		Deadline: q.Deadline,
		IsClosed: q.IsClosed,
	})
	if err != nil {
		return nil, err
	}
	out := make([]PartyPostDTO, 0, len(posts))
	for i := range posts {
		out = append(out, toPostDTO(&posts[i]))
	}
	return out, nil
}

// GetPostDetail viewerID 为 0 时不返回 join_status
func (s *PartyService) GetPostDetail(ctx context.Context, postID, viewerID uint64) (*PartyPostDetailDTO, error) {
	post, err := s.Store.Parties().GetPost(ctx, postID, false)
	if err != nil {
		return nil, asNotFound(err, "组局帖不存在")
	}
	joins, err := s.Store.Parties().ListJoinsByPost(ctx, postID)
	if err != nil {
		return nil, err
	}

	out := &PartyPostDetailDTO{PartyPostDTO: toPostDTO(post)}
	if writer, err := s.Users.FindUser(ctx, post.WriterID); err == nil {
		out.WriterNickname = writer.Nickname
	}
	if theme, err := s.Themes.FindTheme(ctx, post.ThemeID); err == nil {
		out.ThemeTitle = theme.Title
		out.ThemeBrand = theme.Brand
		out.ThemeLocation = theme.Location
	}
	for _, j := range joins {
		if viewerID != 0 && j.UserID == viewerID {
			out.JoinStatus = string(j.Status)
		}
	}
	out.Joins = s.toJoinDTOs(ctx, joins)
	return out, nil
}

// ListJoinRequestsForWriter 发帖人收到的所有申请（跨帖子）
func (s *PartyService) ListJoinRequestsForWriter(ctx context.Context, writerID uint64) ([]PartyJoinDTO, error) {
	joins, err := s.Store.Parties().ListJoinsByWriter(ctx, writerID)
	if err != nil {
		return nil, err
	}
	return s.toJoinDTOs(ctx, joins), nil
}

// ListMyResolvedJoins 我的申请里已经有结果（通过/拒绝）的
func (s *PartyService) ListMyResolvedJoins(ctx context.Context, userID uint64) ([]PartyJoinDTO, error) {
	joins, err := s.Store.Parties().ListJoinsByUser(ctx, userID, models.JoinStatusApproved, models.JoinStatusRejected)
	if err != nil {
		return nil, err
	}
	return s.toJoinDTOs(ctx, joins), nil
}

func (s *PartyService) toJoinDTOs(ctx context.Context, joins []models.PartyJoin) []PartyJoinDTO {
	names := make(map[uint64]string, len(joins))
	out := make([]PartyJoinDTO, 0, len(joins))
	for _, j := range joins {
		name, ok := names[j.UserID]
		if !ok {
			if u, err := s.Users.FindUser(ctx, j.UserID); err == nil {
				name = u.Nickname
			}
			names[j.UserID] = name
		}
		out = append(out, PartyJoinDTO{
			ID:        j.ID,
			PostID:    j.PostID,
			UserID:    j.UserID,
			Nickname:  name,
			Status:    j.Status,
			CreatedAt: j.CreatedAt,
			UpdatedAt: j.UpdatedAt,
		})
	}
	return out
}

// withPost 在 post 锁 + 事务内执行 fn，fn 拿到的是加了行锁的帖子
func (s *PartyService) withPost(ctx context.Context, postID uint64, fn func(tx Store, post *models.PartyPost) error) error {
	unlock := s.postLocks().lock(postID)
	defer unlock()

	return s.Store.Transaction(ctx, func(tx Store) error {
		post, err := tx.Parties().GetPost(ctx, postID, true)
		if err != nil {
			return asNotFound(err, "组局帖不存在")
		}
		return fn(tx, post)
	})
}

func (s *PartyService) debugf(format string, args ...any) {
	if s.Config.Debug {
		log.Printf("party: "+format, args...)
	}
}

// asNotFound 给 ErrNotFound 换上面向用户的文案，其他错误原样返回
func asNotFound(err error, msg string) error {
	if errors.Is(err, ErrNotFound) {
		return wrapError(CodeNotFound, msg, err)
	}
	return err
}
