package party_sdk

import (
	"time"

	"github.com/cydxin/party-sdk/service"
	"github.com/go-redis/redis/v8"
	"gorm.io/gorm"
)

type ServiceConfig struct {
	Debug bool
}

// PartyConfig 组局流程开关
type PartyConfig struct {
	// NotifyUnchangedDecision 审批结果与当前状态相同（如重复 APPROVED）时是否仍通知申请人，默认 true
	NotifyUnchangedDecision bool
}

// LiveConfig 在线推送通道配置
type LiveConfig struct {
	// HeartbeatInterval 保活帧间隔，默认 90s
	HeartbeatInterval time.Duration
	// ChannelTimeout 单条订阅最长保持时间，<=0 表示不限（直到客户端断开）
	ChannelTimeout time.Duration
}

type Config struct {
	DB  *gorm.DB
	RDB *redis.Client

	// Store / Users / Themes 为空时用 DB 上的 gorm 实现
	Store  service.Store
	Users  service.UserDirectory
	Themes service.ActivityCatalog

	Service     ServiceConfig
	Party       PartyConfig
	Live        LiveConfig
	AutoMigrate bool
}

func defaultConfig() *Config {
	return &Config{
		Party: PartyConfig{NotifyUnchangedDecision: true},
		Live:  LiveConfig{HeartbeatInterval: defaultHeartbeatInterval},
	}
}

type Option func(*Config)

func WithDB(db *gorm.DB) Option {
	return func(c *Config) {
		c.DB = db
	}
}

func WithRDB(RDB *redis.Client) Option {
	return func(c *Config) {
		c.RDB = RDB
	}
}

// WithStore 替换持久化实现（测试或非 MySQL 存储）
func WithStore(store service.Store) Option {
	return func(c *Config) {
		c.Store = store
	}
}

func WithUserDirectory(users service.UserDirectory) Option {
	return func(c *Config) {
		c.Users = users
	}
}

func WithActivityCatalog(themes service.ActivityCatalog) Option {
	return func(c *Config) {
		c.Themes = themes
	}
}

func WithHeartbeatInterval(d time.Duration) Option {
	return func(c *Config) {
		c.Live.HeartbeatInterval = d
	}
}

func WithChannelTimeout(d time.Duration) Option {
	return func(c *Config) {
		c.Live.ChannelTimeout = d
	}
}

func WithNotifyUnchangedDecision(notify bool) Option {
	return func(c *Config) {
		c.Party.NotifyUnchangedDecision = notify
	}
}

func WithServiceDebug(debug bool) Option {
	return func(c *Config) {
		c.Service.Debug = debug
	}
}

// WithAutoMigrate 启动时建表（需要 DB）
func WithAutoMigrate(enabled bool) Option {
	return func(c *Config) {
		c.AutoMigrate = enabled
	}
}
