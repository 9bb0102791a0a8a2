package party_sdk

import (
	"context"
	"log"
	"time"
)

const defaultHeartbeatInterval = 90 * time.Second

// Heartbeat 周期性给所有在线通道发保活帧（代理/负载均衡会断开长时间空闲的连接）
type Heartbeat struct {
	registry *Registry
	interval time.Duration
}

func NewHeartbeat(registry *Registry, interval time.Duration) *Heartbeat {
	if interval <= 0 {
		interval = defaultHeartbeatInterval
	}
	return &Heartbeat{registry: registry, interval: interval}
}

// Run 阻塞直到 ctx 结束
func (h *Heartbeat) Run(ctx context.Context) {
	ticker := time.NewTicker(h.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			if n := h.registry.Heartbeat(); n > 0 {
				log.Printf("heartbeat: pruned %d dead channels, %d online", n, h.registry.Len())
			}
		}
	}
}
