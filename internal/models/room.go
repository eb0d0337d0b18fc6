package models

import (
	"gorm.io/gorm"
)

// Room 表示一個辯論房間
//
// 房間在創建時就固定了所有角色：房主（owner）、裁判（judge）、
// 正方（proTeam）和反方（conTeam）。Members 只記錄實際按下「加入」
// 的參與者。Winners 在裁判評分之前保持為空。
type Room struct {
	gorm.Model
	Topic     string     `json:"topic"`
	Status    RoomStatus `gorm:"type:varchar(20);not null;default:'PENDING'" json:"status"`
	NotGraded bool       `gorm:"not null;default:true" json:"notGraded"` // 裁判評分後變為 false
	IsPublic  bool       `gorm:"not null;default:false" json:"isPublic"` // 是否出現在公開房間列表
	OwnerID   uint       `json:"-"`
	Owner     User       `gorm:"foreignKey:OwnerID" json:"owner"`
	JudgeID   uint       `json:"-"`
	Judge     User       `gorm:"foreignKey:JudgeID" json:"judge"`
	ProTeam   []User     `gorm:"many2many:room_pro_team" json:"proTeam"`
	ConTeam   []User     `gorm:"many2many:room_con_team" json:"conTeam"`
	Members   []User     `gorm:"many2many:room_members" json:"members"` // 已加入的參與者
	Winners   []User     `gorm:"many2many:room_winners" json:"winners"` // 評分後等於獲勝隊伍
	Likes     []User     `gorm:"many2many:room_likes" json:"-"`         // 只用於公開列表的排序

	// 查詢時由側查詢填入，不存進資料庫
	LikesCount           int64 `gorm:"-" json:"likesCount"`
	IsLikedByCurrentUser bool  `gorm:"-" json:"isLikedByCurrentUser"`
}

// RoomStatus 定義房間狀態的類型
type RoomStatus string

const (
	RoomStatusPending RoomStatus = "PENDING"
	RoomStatusStarted RoomStatus = "STARTED"
	RoomStatusPaused  RoomStatus = "PAUSED"
	RoomStatusGrading RoomStatus = "GRADING"
	RoomStatusEnded   RoomStatus = "ENDED"
)

// ActiveRoomStatuses 是「進行中」房間的狀態集合，
// 用於限制一人同時只能有一個進行中的房間
var ActiveRoomStatuses = []RoomStatus{
	RoomStatusPending,
	RoomStatusStarted,
	RoomStatusPaused,
	RoomStatusGrading,
}

// Team 定義評分時指定獲勝隊伍的類型
type Team string

const (
	TeamPro Team = "PRO_TEAM" // 正方
	TeamCon Team = "CON_TEAM" // 反方
)

// Valid 檢查隊伍值是否合法
func (t Team) Valid() bool {
	return t == TeamPro || t == TeamCon
}
