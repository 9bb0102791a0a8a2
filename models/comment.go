package models

import (
	"time"
)

// PartyComment 组局帖评论
// 支持多级回复（通过 ParentID 指向父评论），树由上层按 parent_id 重建。
type PartyComment struct {
	ID        uint64  `gorm:"primarykey"`
	PostID    uint64  `gorm:"index;not null"`
	WriterID  uint64  `gorm:"index;not null"`
	ParentID  *uint64 `gorm:"index"` // nil 为顶级评论
	Content   string  `gorm:"type:text;not null"`
	CreatedAt time.Time
	UpdatedAt time.Time
}

func (PartyComment) TableName() string { return prefix + "party_comment" }
