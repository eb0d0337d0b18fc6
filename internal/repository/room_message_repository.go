package repository

import (
	"debate_arena/internal/models"
	"debate_arena/internal/storage"
)

type RoomMessageRepository interface {
	Create(message *models.RoomMessage) error
	FindByRoomID(roomID uint) ([]models.RoomMessage, error)
}

type roomMessageRepository struct {
	db *storage.PostgresDB
}

func NewRoomMessageRepository(db *storage.PostgresDB) RoomMessageRepository {
	return &roomMessageRepository{db: db}
}

func (r *roomMessageRepository) Create(message *models.RoomMessage) error {
	return r.db.Create(message).Error
}

func (r *roomMessageRepository) FindByRoomID(roomID uint) ([]models.RoomMessage, error) {
	var messages []models.RoomMessage
	err := r.db.Where("room_id = ?", roomID).Order("timestamp asc").Find(&messages).Error
	return messages, err
}
