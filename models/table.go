package models

import (
	"time"
)

const (
	prefix = "pt_"
)

// 角色
const (
	RoleUser  = "ROLE_USER"
	RoleAdmin = "ROLE_ADMIN"
)

// User 用户表（只读：用户目录，资料维护不在本 SDK 内）
type User struct {
	ID        uint64 `gorm:"primarykey"`
	Nickname  string `gorm:"size:100;not null"`                  // 昵称（通知文案里展示）
	Role      string `gorm:"size:20;not null;default:ROLE_USER"` // 角色: ROLE_USER / ROLE_ADMIN
	CreatedAt time.Time
	UpdatedAt time.Time
}

func (User) TableName() string {
	return prefix + "user"
}

// IsAdmin 是否管理员
func (u *User) IsAdmin() bool {
	return u != nil && u.Role == RoleAdmin
}

// Theme 主题（可预约的活动），组局帖创建时挂载引用
type Theme struct {
	ID        uint64 `gorm:"primarykey"`
	Title     string `gorm:"size:200;not null"`
	Brand     string `gorm:"size:100"`
	Location  string `gorm:"size:100;index"`
	CreatedAt time.Time
	UpdatedAt time.Time
}

func (Theme) TableName() string {
	return prefix + "theme"
}
