package models

import (
	"gorm.io/gorm"
)

// User 表示系統中的用戶
type User struct {
	gorm.Model        // 內嵌 gorm.Model，提供 ID、CreatedAt、UpdatedAt 和 DeletedAt 字段
	Nickname   string `gorm:"uniqueIndex;not null" json:"nickname"` // 暱稱，必須唯一
	Email      string `gorm:"uniqueIndex;not null" json:"email"`    // 信箱，必須唯一
	Password   string `gorm:"not null" json:"-"`                    // 密碼，json 序列化時會被忽略
	Name       string `json:"name"`
	Surname    string `json:"surname"`
	Picture    string `json:"picture"` // 頭像的 URL
}
