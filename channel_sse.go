package party_sdk

import (
	"errors"
	"io"
	"net/http"
	"sync"
	"time"

	"github.com/cydxin/party-sdk/cons"
	"github.com/gin-contrib/sse"
	"github.com/google/uuid"
)

// SSEChannel text/event-stream 推送通道。
// 写操作可能来自任意请求 goroutine（Push）和心跳 goroutine，统一在 mu 下进行；
// 持有该通道的 handler 必须在返回前 Close，之后不会再碰 ResponseWriter。
type SSEChannel struct {
	id string
	w  http.ResponseWriter
	rc *http.ResponseController

	mu     sync.Mutex
	closed bool
	done   chan struct{}
	once   sync.Once
}

// NewSSEChannel 写出 SSE 响应头并立即 flush，让客户端尽早进入 open 状态
func NewSSEChannel(w http.ResponseWriter) *SSEChannel {
	h := w.Header()
	h.Set("Content-Type", sse.ContentType)
	h.Set("Cache-Control", "no-cache")
	h.Set("Connection", "keep-alive")
	h.Set("X-Accel-Buffering", "no") // nginx 不缓冲
	w.WriteHeader(http.StatusOK)

	c := &SSEChannel{
		id:   uuid.NewString(),
		w:    w,
		rc:   http.NewResponseController(w),
		done: make(chan struct{}),
	}
	_ = c.rc.Flush()
	return c
}

func (c *SSEChannel) ID() string { return c.id }

func (c *SSEChannel) Done() <-chan struct{} { return c.done }

// Send event:<event>\ndata:<data>\n\n
func (c *SSEChannel) Send(event, data string) error {
	return c.write(func(w io.Writer) error {
		return sse.Encode(w, sse.Event{Event: event, Data: data})
	})
}

// Ping :ping\n\n（注释行，浏览器 EventSource 会忽略）
func (c *SSEChannel) Ping() error {
	return c.write(func(w io.Writer) error {
		_, err := io.WriteString(w, cons.SSEPingComment)
		return err
	})
}

func (c *SSEChannel) write(fn func(w io.Writer) error) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.closed {
		return ErrChannelClosed
	}

	if err := c.rc.SetWriteDeadline(time.Now().Add(writeWait)); err != nil && !errors.Is(err, http.ErrNotSupported) {
		c.closeLocked()
		return err
	}
	err := fn(c.w)
	if err == nil {
		err = c.rc.Flush()
	}
	if err != nil {
		c.closeLocked()
		return err
	}
	_ = c.rc.SetWriteDeadline(time.Time{})
	return nil
}

// Close 标记关闭；底层连接由 net/http 在 handler 返回后回收
func (c *SSEChannel) Close() error {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.closeLocked()
	return nil
}

func (c *SSEChannel) closeLocked() {
	c.closed = true
	c.once.Do(func() { close(c.done) })
}
