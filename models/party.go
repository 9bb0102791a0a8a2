package models

import (
	"strings"
	"time"
)

// JoinStatus 参与申请状态
type JoinStatus string

const (
	JoinStatusPending  JoinStatus = "PENDING"
	JoinStatusApproved JoinStatus = "APPROVED"
	JoinStatusRejected JoinStatus = "REJECTED"
)

// ParseDecision 解析房主的审批结果，只接受 APPROVED / REJECTED（忽略大小写）
func ParseDecision(s string) (JoinStatus, bool) {
	switch JoinStatus(strings.ToUpper(strings.TrimSpace(s))) {
	case JoinStatusApproved:
		return JoinStatusApproved, true
	case JoinStatusRejected:
		return JoinStatusRejected, true
	}
	return "", false
}

// PartyPost 组局帖
// CurrentParticipants 包含发帖人本人，所以创建时为 1。
// 不变量：CurrentParticipants <= MaxParticipants，IsClosed == (CurrentParticipants >= MaxParticipants)。
type PartyPost struct {
	ID                  uint64    `gorm:"primarykey"`
	WriterID            uint64    `gorm:"index;not null"` // 发帖人
	ThemeID             uint64    `gorm:"index;not null"` // 关联主题
	Title               string    `gorm:"size:200;not null"`
	Content             string    `gorm:"type:text"`
	MaxParticipants     int       `gorm:"not null"`
	CurrentParticipants int       `gorm:"not null;default:1"`
	Deadline            time.Time `gorm:"index"`
	IsClosed            bool      `gorm:"default:false;index"`
	CreatedAt           time.Time `gorm:"index"`
	UpdatedAt           time.Time

	Joins []PartyJoin `gorm:"foreignKey:PostID;constraint:OnDelete:CASCADE"`
}

func (PartyPost) TableName() string {
	return prefix + "party_post"
}

// CanAcceptMore 是否还能接收新成员
func (p *PartyPost) CanAcceptMore() bool {
	return !p.IsClosed && p.CurrentParticipants < p.MaxParticipants
}

// IncreaseParticipantCount 人数 +1，满员自动关闭。
// 不做容量校验，调用方必须先确认 CanAcceptMore。
func (p *PartyPost) IncreaseParticipantCount() {
	p.CurrentParticipants++
	if p.CurrentParticipants >= p.MaxParticipants {
		p.IsClosed = true
	}
}

// DecreaseParticipantCount 人数 -1（不低于 0），并重新开放报名
func (p *PartyPost) DecreaseParticipantCount() {
	if p.CurrentParticipants > 0 {
		p.CurrentParticipants--
	}
	p.IsClosed = false
}

// PartyJoin 参与申请，(post_id, user_id) 唯一
type PartyJoin struct {
	ID        uint64     `gorm:"primarykey"`
	PostID    uint64     `gorm:"not null;uniqueIndex:idx_post_user"`
	UserID    uint64     `gorm:"not null;uniqueIndex:idx_post_user;index"`
	Status    JoinStatus `gorm:"size:16;not null;index"`
	CreatedAt time.Time
	UpdatedAt time.Time
}

func (PartyJoin) TableName() string {
	return prefix + "party_join"
}
