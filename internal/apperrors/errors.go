// Package apperrors 定義了服務層錯誤的分類。
//
// 每個錯誤都帶有一個種類（Kind），讓 HTTP 層可以把不同的失敗
// 映射到不同的狀態碼，而不是一律回傳同一種錯誤響應。
package apperrors

import (
	"errors"
	"net/http"
)

// Kind 定義錯誤種類的類型
type Kind int

const (
	KindValidation   Kind = iota // 請求內容不合法
	KindNotFound                 // 找不到目標資源
	KindForbidden                // 操作者沒有權限
	KindInvalidState             // 目標狀態不允許此操作
)

// Error 是服務層統一的錯誤類型
type Error struct {
	Kind    Kind
	Op      string // 發生錯誤的操作名稱，例如 "room.Start"
	RoomID  uint   // 相關的房間 ID，0 表示與房間無關
	ActorID uint   // 發起操作的用戶 ID，0 表示未知
	Message string // 回傳給客戶端的訊息
}

func (e *Error) Error() string {
	return e.Message
}

// Validation 創建一個參數驗證錯誤
func Validation(op, message string) *Error {
	return &Error{Kind: KindValidation, Op: op, Message: message}
}

// NotFound 創建一個資源不存在錯誤
func NotFound(op, message string) *Error {
	return &Error{Kind: KindNotFound, Op: op, Message: message}
}

// Forbidden 創建一個權限不足錯誤
func Forbidden(op string, actorID uint, message string) *Error {
	return &Error{Kind: KindForbidden, Op: op, ActorID: actorID, Message: message}
}

// InvalidState 創建一個狀態不允許錯誤
func InvalidState(op string, roomID uint, message string) *Error {
	return &Error{Kind: KindInvalidState, Op: op, RoomID: roomID, Message: message}
}

// WithRoom 補上相關的房間 ID
func (e *Error) WithRoom(roomID uint) *Error {
	e.RoomID = roomID
	return e
}

// WithActor 補上發起操作的用戶 ID
func (e *Error) WithActor(actorID uint) *Error {
	e.ActorID = actorID
	return e
}

// IsKind 判斷錯誤是否屬於指定的種類
func IsKind(err error, kind Kind) bool {
	var appErr *Error
	if errors.As(err, &appErr) {
		return appErr.Kind == kind
	}
	return false
}

// HTTPStatus 把錯誤種類映射為 HTTP 狀態碼，
// 無法辨認的錯誤一律視為伺服器內部錯誤
func HTTPStatus(err error) int {
	var appErr *Error
	if !errors.As(err, &appErr) {
		return http.StatusInternalServerError
	}

	switch appErr.Kind {
	case KindValidation:
		return http.StatusBadRequest
	case KindNotFound:
		return http.StatusNotFound
	case KindForbidden:
		return http.StatusForbidden
	case KindInvalidState:
		return http.StatusConflict
	default:
		return http.StatusInternalServerError
	}
}
