package party_sdk

import (
	"context"
	"log"
	"sync"
	"time"

	"github.com/cydxin/party-sdk/cons"
)

// Registry 进程内 userID -> 在线通道 的映射，每个用户最多一条。
//
// 约定：
// - map 由 mu 保护，I/O 不在 mu 下进行（通道自己串行化写）。
// - 新订阅替换旧条目并关闭旧通道；旧通道的清理通过 Remove 按通道 id 比较，不会误删新连接。
// - Push / Heartbeat 写失败即移除并关闭，不重试、不排队。
type Registry struct {
	mu       sync.RWMutex
	channels map[uint64]Channel
	debug    bool
}

func NewRegistry() *Registry {
	return &Registry{channels: make(map[uint64]Channel)}
}

// Subscribe 登记通道并发送 connect 帧；发送失败时撤销登记并返回错误
func (r *Registry) Subscribe(userID uint64, ch Channel) error {
	r.mu.Lock()
	old := r.channels[userID]
	r.channels[userID] = ch
	r.mu.Unlock()

	if old != nil && old.ID() != ch.ID() {
		_ = old.Close()
		if r.debug {
			log.Printf("registry: user %d channel %s replaced by %s", userID, old.ID(), ch.ID())
		}
	}

	if err := ch.Send(cons.EventConnect, cons.ConnectedData); err != nil {
		r.Remove(userID, ch)
		_ = ch.Close()
		return err
	}
	log.Printf("registry: user %d subscribed (%s)", userID, ch.ID())
	return nil
}

// Serve 订阅并阻塞，直到 ctx 结束（客户端断开）、超时（timeout > 0）或通道被关闭（传输错误 / 被替换）。
// 返回前移除自己的条目并关闭通道。
func (r *Registry) Serve(ctx context.Context, userID uint64, ch Channel, timeout time.Duration) error {
	if err := r.Subscribe(userID, ch); err != nil {
		return err
	}
	defer func() {
		r.Remove(userID, ch)
		_ = ch.Close()
		log.Printf("registry: user %d unsubscribed (%s)", userID, ch.ID())
	}()

	var expired <-chan time.Time
	if timeout > 0 {
		t := time.NewTimer(timeout)
		defer t.Stop()
		expired = t.C
	}

	select {
	case <-ctx.Done():
	case <-expired:
	case <-ch.Done():
	}
	return nil
}

// Push 向在线用户发送 notification 帧；不在线或写失败返回 false
func (r *Registry) Push(userID uint64, msg string) bool {
	r.mu.RLock()
	ch := r.channels[userID]
	r.mu.RUnlock()
	if ch == nil {
		return false
	}

	if err := ch.Send(cons.EventNotification, msg); err != nil {
		r.Remove(userID, ch)
		_ = ch.Close()
		log.Printf("registry: push to user %d failed, channel removed: %v", userID, err)
		return false
	}
	return true
}

// Heartbeat 给所有通道发保活帧，失败的移除，返回移除数量
func (r *Registry) Heartbeat() int {
	type entry struct {
		userID uint64
		ch     Channel
	}
	r.mu.RLock()
	entries := make([]entry, 0, len(r.channels))
	for uid, ch := range r.channels {
		entries = append(entries, entry{uid, ch})
	}
	r.mu.RUnlock()

	pruned := 0
	for _, e := range entries {
		if err := e.ch.Ping(); err != nil {
			r.Remove(e.userID, e.ch)
			_ = e.ch.Close()
			pruned++
		}
	}
	return pruned
}

// Remove 只有当前条目仍是 ch 时才删除
func (r *Registry) Remove(userID uint64, ch Channel) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if cur, ok := r.channels[userID]; ok && cur.ID() == ch.ID() {
		delete(r.channels, userID)
	}
}

// Online 用户当前是否有通道
func (r *Registry) Online(userID uint64) bool {
	r.mu.RLock()
	defer r.mu.RUnlock()
	_, ok := r.channels[userID]
	return ok
}

func (r *Registry) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.channels)
}

// Close 关闭全部通道（engine 关闭时调用），阻塞中的 Serve 随之返回
func (r *Registry) Close() {
	r.mu.Lock()
	all := r.channels
	r.channels = make(map[uint64]Channel)
	r.mu.Unlock()

	for _, ch := range all {
		_ = ch.Close()
	}
}
