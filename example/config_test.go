package main

import (
	"testing"
	"time"
)

func TestLoadConfig_Defaults(t *testing.T) {
	cfg, err := loadConfig()
	if err != nil {
		t.Fatalf("loadConfig: %v", err)
	}
	if cfg.Addr != ":6789" || cfg.AuthMode != authModeToken {
		t.Fatalf("cfg=%+v", cfg)
	}
	if cfg.HeartbeatInterval != 90*time.Second || cfg.ChannelTimeout != 0 {
		t.Fatalf("durations %v %v", cfg.HeartbeatInterval, cfg.ChannelTimeout)
	}
	if !cfg.NotifyUnchangedDecision || !cfg.AutoMigrate {
		t.Fatalf("bool defaults: %+v", cfg)
	}
}

func TestLoadConfig_Overrides(t *testing.T) {
	t.Setenv("PARTY_ADDR", ":8080")
	t.Setenv("PARTY_AUTH_MODE", "jwt")
	t.Setenv("PARTY_JWT_SECRET", "s3cret")
	t.Setenv("PARTY_HEARTBEAT_INTERVAL", "15s")
	t.Setenv("PARTY_CHANNEL_TIMEOUT", "30m")
	t.Setenv("PARTY_NOTIFY_UNCHANGED_DECISION", "false")
	t.Setenv("PARTY_REDIS_DB", "3")

	cfg, err := loadConfig()
	if err != nil {
		t.Fatalf("loadConfig: %v", err)
	}
	if cfg.Addr != ":8080" || cfg.AuthMode != authModeJWT || cfg.JWTSecret != "s3cret" {
		t.Fatalf("cfg=%+v", cfg)
	}
	if cfg.HeartbeatInterval != 15*time.Second || cfg.ChannelTimeout != 30*time.Minute {
		t.Fatalf("durations %v %v", cfg.HeartbeatInterval, cfg.ChannelTimeout)
	}
	if cfg.NotifyUnchangedDecision || cfg.RedisDB != 3 {
		t.Fatalf("cfg=%+v", cfg)
	}
}

func TestLoadConfig_Invalid(t *testing.T) {
	cases := map[string]map[string]string{
		"jwt without secret": {"PARTY_AUTH_MODE": "jwt"},
		"unknown auth mode":  {"PARTY_AUTH_MODE": "basic"},
		"zero heartbeat":     {"PARTY_HEARTBEAT_INTERVAL": "0s"},
		"bad duration":       {"PARTY_CHANNEL_TIMEOUT": "soon"},
	}
	for name, envs := range cases {
		t.Run(name, func(t *testing.T) {
			for k, v := range envs {
				t.Setenv(k, v)
			}
			if _, err := loadConfig(); err == nil {
				t.Fatal("expected error")
			}
		})
	}
}
