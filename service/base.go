package service

import (
	"github.com/go-redis/redis/v8"
)

// Service 基础服务，包含存储、外部目录和配置
type Service struct {
	Store  Store
	Users  UserDirectory
	Themes ActivityCatalog
	RDB    *redis.Client

	// LivePush 在线推送回调（由 engine 注入 Registry.Push）
	// 避免循环依赖，通过函数注入的方式；返回值只用于日志
	LivePush func(userID uint64, message string) bool

	// Notify 通知服务（统一落库 + 在线推送 + HTTP 拉取）
	Notify *NotificationService

	Config Config

	locks *postLocks
}

// Config service 层的行为开关（engine 从 Options 里拷贝过来）
type Config struct {
	// NotifyUnchangedDecision 审批结果与原状态相同时是否仍然通知申请人
	NotifyUnchangedDecision bool
	// Debug 打印每次状态流转
	Debug bool
}

// NewService 组装基础服务；Notify 也在这里一并创建
func NewService(store Store, users UserDirectory, themes ActivityCatalog, cfg Config) *Service {
	s := &Service{
		Store:  store,
		Users:  users,
		Themes: themes,
		Config: cfg,
		locks:  newPostLocks(),
	}
	s.Notify = NewNotificationService(s)
	return s
}

func (s *Service) postLocks() *postLocks {
	if s.locks == nil {
		s.locks = newPostLocks()
	}
	return s.locks
}
