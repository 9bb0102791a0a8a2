package service

import (
	"errors"
	"fmt"
)

// Code 业务错误码（与 HTTP 映射解耦，由 response 包负责转换）
type Code string

const (
	CodeNotFound       Code = "not_found"
	CodeForbidden      Code = "forbidden"
	CodeInvalidParam   Code = "invalid_param"
	CodeSelfJoinDenied Code = "self_join_denied"
	CodePartyClosed    Code = "party_closed"
	CodeAlreadyJoined  Code = "already_joined"
	CodePartyFull      Code = "party_full"
)

// Error 业务错误：Message 面向用户，Cause 仅用于日志
type Error struct {
	Code    Code
	Message string
	Cause   error
}

func (e *Error) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Cause)
	}
	return e.Message
}

func (e *Error) Unwrap() error { return e.Cause }

// Is 按错误码比较，errors.Is(err, ErrPartyFull) 即可判断
func (e *Error) Is(target error) bool {
	var t *Error
	if errors.As(target, &t) {
		return e.Code == t.Code
	}
	return false
}

var (
	ErrNotFound       = &Error{Code: CodeNotFound, Message: "not found"}
	ErrForbidden      = &Error{Code: CodeForbidden, Message: "forbidden"}
	ErrInvalidParam   = &Error{Code: CodeInvalidParam, Message: "invalid param"}
	ErrSelfJoinDenied = &Error{Code: CodeSelfJoinDenied, Message: "作者不能申请自己的组局"}
	ErrPartyClosed    = &Error{Code: CodePartyClosed, Message: "组局已截止报名"}
	ErrAlreadyJoined  = &Error{Code: CodeAlreadyJoined, Message: "已经申请过了"}
	ErrPartyFull      = &Error{Code: CodePartyFull, Message: "组局人数已满"}
)

func newError(code Code, msg string) *Error {
	return &Error{Code: code, Message: msg}
}

func wrapError(code Code, msg string, cause error) *Error {
	return &Error{Code: code, Message: msg, Cause: cause}
}

// IsBusiness 是否属于可预期的业务/权限/不存在错误（不需要按故障记录日志）
func IsBusiness(err error) bool {
	var e *Error
	return errors.As(err, &e)
}
