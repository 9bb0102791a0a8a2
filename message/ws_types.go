package message

// Frame WebSocket 下行帧（server -> client），与 SSE 的 event/data 一一对应
type Frame struct {
	Event string `json:"event"`          // connect / notification
	Data  string `json:"data,omitempty"` // 通知文案
}

// WS 上行消息类型（client -> server）。通道是单向推送，上行只用于保活。
const (
	WsTypePing = "ping"
)

// ClientMsg 客户端上行消息，只解析 type，其他内容丢弃
type ClientMsg struct {
	Type string `json:"type"`
}
