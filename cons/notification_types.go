package cons

// 在线通道的帧名（SSE event / WebSocket frame.event）
const (
	EventConnect      = "connect"      // 订阅成功后发送一次
	EventNotification = "notification" // 通知正文，data 为通知文案
	EventPong         = "pong"         // 回应 WebSocket 客户端的应用层 ping
)

// ConnectedData connect 帧的 data
const ConnectedData = "connected"

// SSE 心跳是注释行，不是具名事件
const SSEPingComment = ":ping\n\n"
