package models

import (
	"time"

	"gorm.io/gorm"
)

// RoomMessage 代表房間內的一條辯論消息，同時滿足 WebSocket 廣播和數據庫存儲需求
type RoomMessage struct {
	gorm.Model
	Type      string    `json:"type" gorm:"type:varchar(50)"`
	RoomID    uint      `json:"room_id" gorm:"index"`
	UserID    uint      `json:"user_id"`
	Role      string    `json:"role" gorm:"type:varchar(20)"` // "owner", "judge", "pro", "con", "member", "system"
	Content   string    `json:"content" gorm:"type:text"`
	Timestamp time.Time `json:"timestamp"`
}

// NewDebateMessage 創建一條新的辯論消息
func NewDebateMessage(roomID, userID uint, role, content string) *RoomMessage {
	return &RoomMessage{
		Type:      "debate_message",
		RoomID:    roomID,
		UserID:    userID,
		Role:      role,
		Content:   content,
		Timestamp: time.Now(),
	}
}

// NewSystemMessage 創建一條新的系統消息
func NewSystemMessage(roomID uint, content string) *RoomMessage {
	return &RoomMessage{
		Type:      "system_message",
		RoomID:    roomID,
		Role:      "system",
		Content:   content,
		Timestamp: time.Now(),
	}
}
