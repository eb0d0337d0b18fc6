package repository

import (
	"debate_arena/internal/models"
	"debate_arena/internal/storage"
)

// LikeRepository 提供房間按讚記錄的查詢和寫入
//
// 按讚只影響公開房間列表的排序，和房間的生命週期無關，
// 所以直接操作 room_likes 關聯表。
type LikeRepository interface {
	Exists(roomID, userID uint) (bool, error)
	CountByRoom(roomID uint) (int64, error)
	Add(room *models.Room, user *models.User) error
	Remove(room *models.Room, user *models.User) error
}

type likeRepository struct {
	db *storage.PostgresDB
}

func NewLikeRepository(db *storage.PostgresDB) LikeRepository {
	return &likeRepository{db: db}
}

func (r *likeRepository) Exists(roomID, userID uint) (bool, error) {
	var count int64
	err := r.db.Table("room_likes").
		Where("room_id = ? AND user_id = ?", roomID, userID).
		Count(&count).Error
	return count > 0, err
}

func (r *likeRepository) CountByRoom(roomID uint) (int64, error) {
	var count int64
	err := r.db.Table("room_likes").
		Where("room_id = ?", roomID).
		Count(&count).Error
	return count, err
}

func (r *likeRepository) Add(room *models.Room, user *models.User) error {
	return r.db.Model(room).Association("Likes").Append(user)
}

func (r *likeRepository) Remove(room *models.Room, user *models.User) error {
	return r.db.Model(room).Association("Likes").Delete(user)
}
