package main

import (
	"errors"
	"fmt"
	"time"

	"github.com/caarlos0/env/v11"
)

const (
	authModeToken = "token"
	authModeJWT   = "jwt"
)

// Config 示例服务的启动配置，全部来自环境变量
type Config struct {
	Addr string `env:"PARTY_ADDR" envDefault:":6789"`

	MySQLDSN string `env:"PARTY_MYSQL_DSN" envDefault:"root:password@tcp(127.0.0.1:3306)/party_db?charset=utf8mb4&parseTime=True&loc=Local"`

	RedisAddr     string `env:"PARTY_REDIS_ADDR" envDefault:"127.0.0.1:6379"`
	RedisPassword string `env:"PARTY_REDIS_PASSWORD"`
	RedisDB       int    `env:"PARTY_REDIS_DB" envDefault:"0"`

	// AuthMode token：Redis 里的不透明 token；jwt：HS256 无状态 token
	AuthMode  string `env:"PARTY_AUTH_MODE" envDefault:"token"`
	JWTSecret string `env:"PARTY_JWT_SECRET"`

	HeartbeatInterval       time.Duration `env:"PARTY_HEARTBEAT_INTERVAL" envDefault:"90s"`
	ChannelTimeout          time.Duration `env:"PARTY_CHANNEL_TIMEOUT" envDefault:"0s"`
	NotifyUnchangedDecision bool          `env:"PARTY_NOTIFY_UNCHANGED_DECISION" envDefault:"true"`
	AutoMigrate             bool          `env:"PARTY_AUTO_MIGRATE" envDefault:"true"`
	Debug                   bool          `env:"PARTY_DEBUG"`
}

func loadConfig() (Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("parse env: %w", err)
	}
	if err := cfg.validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func (c Config) validate() error {
	switch c.AuthMode {
	case authModeToken:
	case authModeJWT:
		if c.JWTSecret == "" {
			return errors.New("PARTY_JWT_SECRET is required when PARTY_AUTH_MODE=jwt")
		}
	default:
		return fmt.Errorf("unknown PARTY_AUTH_MODE %q", c.AuthMode)
	}
	if c.HeartbeatInterval <= 0 {
		return errors.New("PARTY_HEARTBEAT_INTERVAL must be positive")
	}
	return nil
}
