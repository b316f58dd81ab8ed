package domain

import (
	"errors"
	"fmt"
)

// ErrorCode represents a semantic classification shared across transport layers.
type ErrorCode string

const (
	ErrCodeNotFound     ErrorCode = "NOT_FOUND"
	ErrCodeInvalid      ErrorCode = "INVALID"
	ErrCodeConflict     ErrorCode = "CONFLICT"
	ErrCodeUnauthorized ErrorCode = "UNAUTHORIZED"
	ErrCodeInternal     ErrorCode = "INTERNAL"
)

// Error represents a domain-level error. Message carries the localized
// text shown to the caller; Err keeps the underlying cause for logs.
type Error struct {
	Code    ErrorCode
	Message string
	Err     error
}

func (e *Error) Error() string {
	if e == nil {
		return ""
	}
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

func (e *Error) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Err
}

// NewError builds a domain error.
func NewError(code ErrorCode, message string) *Error {
	return &Error{Code: code, Message: message}
}

// WrapError wraps an existing error with a domain classification.
func WrapError(code ErrorCode, message string, err error) *Error {
	return &Error{
		Code:    code,
		Message: message,
		Err:     err,
	}
}

// Common domain errors.
var (
	ErrTaskNotFound       = NewError(ErrCodeNotFound, "タスクが見つかりませんでした。")
	ErrUserNotFound       = NewError(ErrCodeNotFound, "ユーザーが見つかりませんでした。")
	ErrInvalidCredentials = NewError(ErrCodeUnauthorized, "無効なメールアドレスまたはパスワードです。")
)

// Conflict messages reported by signup. Shared so the uniqueness pre-check
// and the repository's constraint mapping agree on the exact text.
const (
	MsgUsernameTaken      = "このユーザーネームは既に使用されています。"
	MsgEmailTaken         = "このメールアドレスは既に使用されています。"
	MsgUsernameEmailTaken = "ユーザー名とメールアドレスの両方が使用されています。"
)

// IsDomainError helps checking error codes.
func IsDomainError(err error, code ErrorCode) bool {
	var dErr *Error
	if errors.As(err, &dErr) {
		return dErr.Code == code
	}
	return false
}
