package service

import (
	"debate_arena/internal/apperrors"
	"debate_arena/internal/models"
	"debate_arena/internal/repository"
)

// FriendService 管理好友邀請和好友關係
//
// 好友關係就是一條狀態為 accepted 的邀請記錄，
// 接受之後雙方互為好友，同一對用戶之間不會有重複的記錄。
type FriendService struct {
	inviteRepo repository.InviteRepository
	userRepo   repository.UserRepository
}

func NewFriendService(inviteRepo repository.InviteRepository, userRepo repository.UserRepository) *FriendService {
	return &FriendService{inviteRepo: inviteRepo, userRepo: userRepo}
}

// GetFriends 查詢用戶的好友列表，房間創建時用它計算允許名單
func (s *FriendService) GetFriends(userID uint) ([]models.FriendEdge, error) {
	if userID == 0 {
		return nil, apperrors.Validation("friend.List", "UserId is required")
	}

	invites, err := s.inviteRepo.FindAcceptedByUser(userID)
	if err != nil {
		return nil, err
	}

	edges := make([]models.FriendEdge, 0, len(invites))
	for _, invite := range invites {
		if invite.SenderID == userID {
			edges = append(edges, models.FriendEdge{Friend: invite.Receiver})
		} else {
			edges = append(edges, models.FriendEdge{Friend: invite.Sender})
		}
	}

	return edges, nil
}

// GetFriend 查詢單一好友
func (s *FriendService) GetFriend(userID, friendID uint) (*models.User, error) {
	const op = "friend.Get"

	if userID == 0 || friendID == 0 {
		return nil, apperrors.Validation(op, "Ids are required")
	}

	invite, err := s.inviteRepo.FindBetween(userID, friendID, models.InviteStatusAccepted)
	if err != nil {
		return nil, err
	}
	if invite == nil {
		return nil, apperrors.NotFound(op, "Friend not found")
	}

	if invite.SenderID == userID {
		return &invite.Receiver, nil
	}
	return &invite.Sender, nil
}

// DeleteFriend 移除好友關係（不分是誰先邀請的）
func (s *FriendService) DeleteFriend(userID, friendID uint) error {
	const op = "friend.Delete"

	if userID == 0 || friendID == 0 {
		return apperrors.Validation(op, "Ids are required")
	}

	invite, err := s.inviteRepo.FindBetween(userID, friendID, models.InviteStatusAccepted)
	if err != nil {
		return err
	}
	if invite == nil {
		return apperrors.NotFound(op, "Friend not found")
	}

	return s.inviteRepo.Delete(invite)
}

// SendInvite 發送好友邀請
func (s *FriendService) SendInvite(senderID, receiverID uint) (*models.Invite, error) {
	const op = "invite.Send"

	if senderID == 0 || receiverID == 0 {
		return nil, apperrors.Validation(op, "Ids are required")
	}

	if senderID == receiverID {
		return nil, apperrors.Validation(op, "Cannot invite yourself")
	}

	receiver, err := s.userRepo.FindByID(receiverID)
	if err != nil {
		return nil, err
	}
	if receiver == nil {
		return nil, apperrors.NotFound(op, "User not found")
	}

	accepted, err := s.inviteRepo.FindBetween(senderID, receiverID, models.InviteStatusAccepted)
	if err != nil {
		return nil, err
	}
	if accepted != nil {
		return nil, apperrors.InvalidState(op, 0, "Users are already friends").WithActor(senderID)
	}

	pending, err := s.inviteRepo.FindBetween(senderID, receiverID, models.InviteStatusPending)
	if err != nil {
		return nil, err
	}
	if pending != nil {
		return nil, apperrors.InvalidState(op, 0, "Invite already exists").WithActor(senderID)
	}

	invite := &models.Invite{
		SenderID:   senderID,
		ReceiverID: receiverID,
		Status:     models.InviteStatusPending,
	}

	if err := s.inviteRepo.Create(invite); err != nil {
		return nil, err
	}

	return s.inviteRepo.FindByID(invite.ID)
}

// GetInvite 查詢單一邀請，只有寄件人和收件人可以讀取
func (s *FriendService) GetInvite(actorID, inviteID uint) (*models.Invite, error) {
	const op = "invite.Get"

	if actorID == 0 || inviteID == 0 {
		return nil, apperrors.Validation(op, "Ids are required")
	}

	invite, err := s.inviteRepo.FindByID(inviteID)
	if err != nil {
		return nil, err
	}
	if invite == nil {
		return nil, apperrors.NotFound(op, "Invite not found")
	}

	if invite.SenderID != actorID && invite.ReceiverID != actorID {
		return nil, apperrors.Forbidden(op, actorID, "You are not a part of this invite")
	}

	return invite, nil
}

// AcceptInvite 由收件人接受邀請，從那一刻起雙方互為好友
func (s *FriendService) AcceptInvite(actorID, inviteID uint) (*models.Invite, error) {
	return s.resolveInvite("invite.Accept", actorID, inviteID, models.InviteStatusAccepted)
}

// RejectInvite 由收件人拒絕邀請
func (s *FriendService) RejectInvite(actorID, inviteID uint) (*models.Invite, error) {
	return s.resolveInvite("invite.Reject", actorID, inviteID, models.InviteStatusRejected)
}

// resolveInvite 是 accept/reject 共用的狀態更新
func (s *FriendService) resolveInvite(op string, actorID, inviteID uint, newStatus models.InviteStatus) (*models.Invite, error) {
	if actorID == 0 || inviteID == 0 {
		return nil, apperrors.Validation(op, "Ids are required")
	}

	invite, err := s.inviteRepo.FindByID(inviteID)
	if err != nil {
		return nil, err
	}
	if invite == nil {
		return nil, apperrors.NotFound(op, "Invite not found")
	}

	if invite.ReceiverID != actorID {
		return nil, apperrors.Forbidden(op, actorID, "You are not the receiver")
	}

	if invite.Status != models.InviteStatusPending {
		return nil, apperrors.InvalidState(op, 0, "Invite is not pending")
	}

	invite.Status = newStatus
	if err := s.inviteRepo.Save(invite); err != nil {
		return nil, err
	}

	return invite, nil
}

// GetReceivedInvites 列出用戶收到的待處理邀請
func (s *FriendService) GetReceivedInvites(userID uint) ([]models.Invite, error) {
	if userID == 0 {
		return nil, apperrors.Validation("invite.Received", "UserId is required")
	}

	return s.inviteRepo.FindPendingByReceiver(userID)
}

// GetSentInvites 列出用戶發出的待處理邀請
func (s *FriendService) GetSentInvites(userID uint) ([]models.Invite, error) {
	if userID == 0 {
		return nil, apperrors.Validation("invite.Sent", "UserId is required")
	}

	return s.inviteRepo.FindPendingBySender(userID)
}
