package response

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"

	"github.com/cydxin/party-sdk/service"
)

// Response 统一响应结构
type Response struct {
	Code int         `json:"code" example:"0"`                    // 业务状态码
	Msg  string      `json:"msg" example:"success"`               // 提示消息
	Data interface{} `json:"data,omitempty" swaggertype:"object"` // 响应数据
}

// 业务状态码定义
// 使用说明：
// - 中间件层：使用 HTTP 状态码（401/403/500）
// - 业务层：FromError 同时给出 HTTP 状态码和业务状态码
const (
	CodeSuccess        = 0     // 成功
	CodeParamError     = 10001 // 参数错误
	CodeUserNotFound   = 10002 // 用户不存在
	CodeTokenInvalid   = 10004 // Token 无效/过期
	CodePermissionDeny = 10005 // 权限不足
	CodeNotFound       = 10006 // 资源不存在

	CodeSelfJoinDenied = 20001 // 作者申请自己的组局
	CodePartyClosed    = 20002 // 组局已截止
	CodeAlreadyJoined  = 20003 // 重复申请
	CodePartyFull      = 20004 // 人数已满

	CodeInternalError = 99999 // 内部错误
)

var businessCodes = map[service.Code]int{
	service.CodeInvalidParam:   CodeParamError,
	service.CodeSelfJoinDenied: CodeSelfJoinDenied,
	service.CodePartyClosed:    CodePartyClosed,
	service.CodeAlreadyJoined:  CodeAlreadyJoined,
	service.CodePartyFull:      CodePartyFull,
}

// Success 成功响应
func Success(data interface{}, args ...string) *Response {
	msg := "success"
	for _, arg := range args {
		msg = arg
	}
	return &Response{
		Code: CodeSuccess,
		Msg:  msg,
		Data: data,
	}
}

// Error 错误响应
func Error(code int, msg string) *Response {
	return &Response{
		Code: code,
		Msg:  msg,
	}
}

// FromError 把 service 层错误转换成 HTTP 状态码 + 响应体。
// 业务规则 400，无权限 403，不存在 404；其余按内部错误处理，只记录日志不向外暴露细节。
func FromError(err error) (int, *Response) {
	var e *service.Error
	if errors.As(err, &e) {
		switch e.Code {
		case service.CodeNotFound:
			return http.StatusNotFound, Error(CodeNotFound, e.Message)
		case service.CodeForbidden:
			return http.StatusForbidden, Error(CodePermissionDeny, e.Message)
		}
		if code, ok := businessCodes[e.Code]; ok {
			return http.StatusBadRequest, Error(code, e.Message)
		}
	}
	log.Printf("unexpected error: %v", err)
	return http.StatusInternalServerError, Error(CodeInternalError, "internal error")
}

// WriteJSON 写入 JSON 响应（默认 HTTP 200）
func (r *Response) WriteJSON(w http.ResponseWriter) {
	r.WriteJSONWithStatus(w, http.StatusOK)
}

// WriteJSONWithStatus 写入 JSON 响应（指定 HTTP 状态码）
// 用于中间件层面的鉴权失败等场景（如 401）
func (r *Response) WriteJSONWithStatus(w http.ResponseWriter, httpStatus int) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(httpStatus)
	if err := json.NewEncoder(w).Encode(r); err != nil {
		log.Printf("Failed to encode response: %v", err)
	}
}
