package party_sdk

import (
	"encoding/json"
	"log"
	"net/http"
	"sync"
	"time"

	"github.com/cydxin/party-sdk/cons"
	"github.com/cydxin/party-sdk/message"
	"github.com/google/uuid"
	"github.com/gorilla/websocket"
)

const (
	// Maximum 对等端允许消息大小（上行只有保活）
	maxMessageSize = 512
)

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	CheckOrigin: func(r *http.Request) bool {
		return true // Allow all origins for SDK
	},
}

// WSChannel WebSocket 推送通道。
// 下行帧是 JSON 文本 {"event":...,"data":...}；保活用 ping 控制帧。
// readPump 只负责处理 pong / 关闭，读出错即关闭通道。
type WSChannel struct {
	id   string
	conn *websocket.Conn

	// pongWait 收不到任何数据（含 pong）多久视为断线，应大于心跳间隔
	pongWait time.Duration

	mu   sync.Mutex
	done chan struct{}
	once sync.Once
}

// UpgradeWS 升级连接并启动 readPump
func UpgradeWS(w http.ResponseWriter, r *http.Request, pongWait time.Duration) (*WSChannel, error) {
	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		return nil, err
	}
	return NewWSChannel(conn, pongWait), nil
}

func NewWSChannel(conn *websocket.Conn, pongWait time.Duration) *WSChannel {
	c := &WSChannel{
		id:       uuid.NewString(),
		conn:     conn,
		pongWait: pongWait,
		done:     make(chan struct{}),
	}
	go c.readPump()
	return c
}

func (c *WSChannel) ID() string { return c.id }

func (c *WSChannel) Done() <-chan struct{} { return c.done }

func (c *WSChannel) Send(event, data string) error {
	b, err := json.Marshal(message.Frame{Event: event, Data: data})
	if err != nil {
		return err
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.isClosed() {
		return ErrChannelClosed
	}
	_ = c.conn.SetWriteDeadline(time.Now().Add(writeWait))
	if err := c.conn.WriteMessage(websocket.TextMessage, b); err != nil {
		c.closeLocked()
		return err
	}
	return nil
}

func (c *WSChannel) Ping() error {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.isClosed() {
		return ErrChannelClosed
	}
	if err := c.conn.WriteControl(websocket.PingMessage, nil, time.Now().Add(writeWait)); err != nil {
		c.closeLocked()
		return err
	}
	return nil
}

func (c *WSChannel) Close() error {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.isClosed() {
		return nil
	}
	_ = c.conn.WriteControl(websocket.CloseMessage, websocket.FormatCloseMessage(websocket.CloseNormalClosure, ""), time.Now().Add(writeWait))
	c.closeLocked()
	return nil
}

func (c *WSChannel) isClosed() bool {
	select {
	case <-c.done:
		return true
	default:
		return false
	}
}

func (c *WSChannel) closeLocked() {
	c.once.Do(func() {
		close(c.done)
		_ = c.conn.Close()
	})
}

// readPump 读取客户端上行：pong 续期读超时，{"type":"ping"} 回 pong 帧，其他丢弃
func (c *WSChannel) readPump() {
	defer func() {
		c.mu.Lock()
		c.closeLocked()
		c.mu.Unlock()
	}()
	c.conn.SetReadLimit(maxMessageSize)
	c.extendReadDeadline()
	c.conn.SetPongHandler(func(string) error { c.extendReadDeadline(); return nil })
	for {
		_, raw, err := c.conn.ReadMessage()
		if err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseAbnormalClosure, websocket.CloseNormalClosure) {
				log.Printf("ws readPump error: %v", err)
			}
			return
		}
		c.extendReadDeadline()

		var msg message.ClientMsg
		if json.Unmarshal(raw, &msg) == nil && msg.Type == message.WsTypePing {
			_ = c.Send(cons.EventPong, "")
		}
	}
}

func (c *WSChannel) extendReadDeadline() {
	if c.pongWait > 0 {
		_ = c.conn.SetReadDeadline(time.Now().Add(c.pongWait))
	}
}
