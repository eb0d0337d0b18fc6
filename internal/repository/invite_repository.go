package repository

import (
	"errors"

	"gorm.io/gorm"

	"debate_arena/internal/models"
	"debate_arena/internal/storage"
)

// InviteRepository 提供好友邀請記錄的查詢和寫入
//
// 被接受的邀請記錄本身就是好友關係，所以「好友」相關的查詢
// 也在這裡，同時比對 sender 和 receiver 兩個方向。
type InviteRepository interface {
	Create(invite *models.Invite) error
	FindByID(id uint) (*models.Invite, error)
	Save(invite *models.Invite) error
	Delete(invite *models.Invite) error
	// FindBetween 查詢兩個用戶之間指定狀態的邀請，不分方向
	FindBetween(userA, userB uint, status models.InviteStatus) (*models.Invite, error)
	FindPendingByReceiver(userID uint) ([]models.Invite, error)
	FindPendingBySender(userID uint) ([]models.Invite, error)
	// FindAcceptedByUser 查詢用戶的所有好友關係（任一方向）
	FindAcceptedByUser(userID uint) ([]models.Invite, error)
}

type inviteRepository struct {
	db *storage.PostgresDB
}

func NewInviteRepository(db *storage.PostgresDB) InviteRepository {
	return &inviteRepository{db: db}
}

func (r *inviteRepository) withUsers() *gorm.DB {
	return r.db.Preload("Sender").Preload("Receiver")
}

func (r *inviteRepository) Create(invite *models.Invite) error {
	return r.db.Create(invite).Error
}

func (r *inviteRepository) FindByID(id uint) (*models.Invite, error) {
	var invite models.Invite
	err := r.withUsers().First(&invite, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &invite, nil
}

func (r *inviteRepository) Save(invite *models.Invite) error {
	return r.db.Save(invite).Error
}

func (r *inviteRepository) Delete(invite *models.Invite) error {
	return r.db.Delete(invite).Error
}

func (r *inviteRepository) FindBetween(userA, userB uint, status models.InviteStatus) (*models.Invite, error) {
	var invite models.Invite
	err := r.withUsers().
		Where("status = ?", status).
		Where("(sender_id = ? AND receiver_id = ?) OR (sender_id = ? AND receiver_id = ?)",
			userA, userB, userB, userA).
		First(&invite).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &invite, nil
}

func (r *inviteRepository) FindPendingByReceiver(userID uint) ([]models.Invite, error) {
	var invites []models.Invite
	err := r.withUsers().
		Where("receiver_id = ? AND status = ?", userID, models.InviteStatusPending).
		Order("created_at DESC").
		Find(&invites).Error
	return invites, err
}

func (r *inviteRepository) FindPendingBySender(userID uint) ([]models.Invite, error) {
	var invites []models.Invite
	err := r.withUsers().
		Where("sender_id = ? AND status = ?", userID, models.InviteStatusPending).
		Order("created_at DESC").
		Find(&invites).Error
	return invites, err
}

func (r *inviteRepository) FindAcceptedByUser(userID uint) ([]models.Invite, error) {
	var invites []models.Invite
	err := r.withUsers().
		Where("status = ?", models.InviteStatusAccepted).
		Where("sender_id = ? OR receiver_id = ?", userID, userID).
		Find(&invites).Error
	return invites, err
}
