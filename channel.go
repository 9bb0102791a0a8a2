package party_sdk

import (
	"errors"
	"time"
)

// Channel 单个用户的在线推送通道（SSE 或 WebSocket）。
// 同一个 Channel 的写操作由实现自己串行化；Close 之后所有写操作返回 ErrChannelClosed。
type Channel interface {
	// ID 连接唯一标识，Registry 用它判断条目是否已被新连接替换
	ID() string
	// Send 发送具名帧
	Send(event, data string) error
	// Ping 保活帧（SSE 注释行 / WebSocket ping 控制帧）
	Ping() error
	// Close 幂等
	Close() error
	// Done 通道关闭（主动关闭、被替换或传输出错）时关闭
	Done() <-chan struct{}
}

var ErrChannelClosed = errors.New("channel closed")

const (
	// 单次写超时
	writeWait = 10 * time.Second
)
