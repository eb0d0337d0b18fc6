package repository

import (
	"errors"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"debate_arena/internal/models"
	"debate_arena/internal/storage"
)

// participantFilter 比對用戶在房間中是否擔任裁判、正方或反方
const participantFilter = `rooms.judge_id = ?
	OR rooms.id IN (SELECT room_id FROM room_pro_team WHERE user_id = ?)
	OR rooms.id IN (SELECT room_id FROM room_con_team WHERE user_id = ?)`

// RoomRepository 提供房間聚合的查詢和寫入
//
// 每個查詢都載入完整的關聯（owner/judge/proTeam/conTeam/members/winners），
// 服務層的授權檢查依賴這一點。找不到記錄時回傳 (nil, nil)。
type RoomRepository interface {
	Create(room *models.Room) error
	FindByID(id uint) (*models.Room, error)
	// Save 只寫入房間本身的欄位，不碰關聯
	Save(room *models.Room) error
	// FindActiveByOwner 查詢房主名下仍在進行中的房間
	FindActiveByOwner(ownerID uint) (*models.Room, error)
	// FindActiveByParticipant 查詢用戶以任一角色參與、仍在進行中的房間
	FindActiveByParticipant(userID uint) (*models.Room, error)
	// FindActiveByParticipantAndID 同上，但限定房間 ID
	FindActiveByParticipantAndID(userID, roomID uint) (*models.Room, error)
	// FindEndedByParticipant 查詢用戶以任一角色參與過、已結束的房間
	FindEndedByParticipant(userID uint) ([]models.Room, error)
	// FindPublicEnded 查詢公開且已結束的房間，按讚數排序
	FindPublicEnded(descending bool) ([]models.Room, error)
	AddMember(room *models.Room, user *models.User) error
	RemoveMember(room *models.Room, user *models.User) error
	ReplaceWinners(room *models.Room, winners []models.User) error
}

type roomRepository struct {
	db *storage.PostgresDB
}

func NewRoomRepository(db *storage.PostgresDB) RoomRepository {
	return &roomRepository{db: db}
}

// withRelations 回傳預載入所有房間關聯的查詢
func (r *roomRepository) withRelations() *gorm.DB {
	return r.db.
		Preload("Owner").
		Preload("Judge").
		Preload("ProTeam").
		Preload("ConTeam").
		Preload("Members").
		Preload("Winners")
}

func (r *roomRepository) Create(room *models.Room) error {
	return r.db.Create(room).Error
}

func (r *roomRepository) FindByID(id uint) (*models.Room, error) {
	var room models.Room
	err := r.withRelations().First(&room, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &room, nil
}

func (r *roomRepository) Save(room *models.Room) error {
	return r.db.Omit(clause.Associations).Save(room).Error
}

func (r *roomRepository) FindActiveByOwner(ownerID uint) (*models.Room, error) {
	var room models.Room
	err := r.db.
		Where("owner_id = ? AND status IN ?", ownerID, models.ActiveRoomStatuses).
		First(&room).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &room, nil
}

func (r *roomRepository) FindActiveByParticipant(userID uint) (*models.Room, error) {
	var room models.Room
	err := r.withRelations().
		Where("rooms.status IN ?", models.ActiveRoomStatuses).
		Where(participantFilter, userID, userID, userID).
		First(&room).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &room, nil
}

func (r *roomRepository) FindActiveByParticipantAndID(userID, roomID uint) (*models.Room, error) {
	var room models.Room
	err := r.withRelations().
		Where("rooms.id = ? AND rooms.status IN ?", roomID, models.ActiveRoomStatuses).
		Where(participantFilter, userID, userID, userID).
		First(&room).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &room, nil
}

func (r *roomRepository) FindEndedByParticipant(userID uint) ([]models.Room, error) {
	var rooms []models.Room
	err := r.withRelations().
		Where("rooms.status = ?", models.RoomStatusEnded).
		Where(participantFilter, userID, userID, userID).
		Order("rooms.updated_at DESC").
		Find(&rooms).Error
	return rooms, err
}

func (r *roomRepository) FindPublicEnded(descending bool) ([]models.Room, error) {
	direction := "ASC"
	if descending {
		direction = "DESC"
	}

	var rooms []models.Room
	err := r.withRelations().
		Select("rooms.*").
		Joins("LEFT JOIN room_likes ON room_likes.room_id = rooms.id").
		Where("rooms.is_public = ? AND rooms.status = ?", true, models.RoomStatusEnded).
		Group("rooms.id").
		Order("COUNT(room_likes.user_id) " + direction).
		Find(&rooms).Error
	return rooms, err
}

func (r *roomRepository) AddMember(room *models.Room, user *models.User) error {
	return r.db.Model(room).Association("Members").Append(user)
}

func (r *roomRepository) RemoveMember(room *models.Room, user *models.User) error {
	return r.db.Model(room).Association("Members").Delete(user)
}

func (r *roomRepository) ReplaceWinners(room *models.Room, winners []models.User) error {
	return r.db.Model(room).Association("Winners").Replace(winners)
}
