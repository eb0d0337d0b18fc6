package models

import (
	"gorm.io/gorm"
)

// Invite 表示一條好友邀請
//
// 邀請被接受後即視為好友關係本身：好友關係是對稱的，
// 查詢時同時比對 sender 和 receiver 兩個方向。
type Invite struct {
	gorm.Model
	SenderID   uint         `gorm:"index;not null" json:"-"`
	Sender     User         `gorm:"foreignKey:SenderID" json:"sender"`
	ReceiverID uint         `gorm:"index;not null" json:"-"`
	Receiver   User         `gorm:"foreignKey:ReceiverID" json:"receiver"`
	Status     InviteStatus `gorm:"type:varchar(20);not null;default:'pending'" json:"status"`
}

// InviteStatus 定義邀請狀態的類型
type InviteStatus string

const (
	InviteStatusPending  InviteStatus = "pending"
	InviteStatusAccepted InviteStatus = "accepted"
	InviteStatusRejected InviteStatus = "rejected"
)

// FriendEdge 表示從某個用戶視角看到的一條好友關係
type FriendEdge struct {
	Friend User `json:"friend"`
}
