package service

import (
	"debate_arena/internal/apperrors"
	"debate_arena/internal/models"
	"debate_arena/internal/repository"
)

// CreateRoomPayload 定義創建房間所需的資料
type CreateRoomPayload struct {
	Topic      string `json:"topic"`
	JudgeID    uint   `json:"judgeId"`
	ProTeamIDs []uint `json:"proTeamIds"`
	ConTeamIDs []uint `json:"conTeamIds"`
}

// OrderDirection 定義公開房間列表的排序方向
type OrderDirection string

const (
	OrderAsc  OrderDirection = "ASC"
	OrderDesc OrderDirection = "DESC"
)

// RoomService 管理辯論房間的生命週期
//
// 房間的角色（房主、裁判、正反方）在創建時就固定下來，之後的每個
// 操作都先重新載入完整的房間聚合再做授權檢查。這裡刻意不做交易
// 包裝：讀取、檢查、寫回是三個獨立步驟，和請求互不共享狀態。
type RoomService struct {
	roomRepo      repository.RoomRepository
	userRepo      repository.UserRepository
	likeRepo      repository.LikeRepository
	messageRepo   repository.RoomMessageRepository
	friendService *FriendService
}

func NewRoomService(
	roomRepo repository.RoomRepository,
	userRepo repository.UserRepository,
	likeRepo repository.LikeRepository,
	messageRepo repository.RoomMessageRepository,
	friendService *FriendService,
) *RoomService {
	return &RoomService{
		roomRepo:      roomRepo,
		userRepo:      userRepo,
		likeRepo:      likeRepo,
		messageRepo:   messageRepo,
		friendService: friendService,
	}
}

// GetRoomByID 載入完整的房間聚合
func (s *RoomService) GetRoomByID(roomID uint) (*models.Room, error) {
	if roomID == 0 {
		return nil, apperrors.Validation("room.Get", "RoomId is required")
	}

	room, err := s.roomRepo.FindByID(roomID)
	if err != nil {
		return nil, err
	}
	if room == nil {
		return nil, apperrors.NotFound("room.Get", "Room not found").WithRoom(roomID)
	}

	return room, nil
}

// CreateRoom 創建一個新房間
//
// 裁判和正反方都必須來自「允許名單」：房主本人加上房主已接受的好友。
// 一個房主同時只能有一個進行中的房間。
func (s *RoomService) CreateRoom(ownerID uint, payload CreateRoomPayload) (*models.Room, error) {
	const op = "room.Create"

	if ownerID == 0 || len(payload.ProTeamIDs) == 0 || len(payload.ConTeamIDs) == 0 {
		return nil, apperrors.Validation(op, "Ids are required")
	}

	owner, err := s.userRepo.FindByID(ownerID)
	if err != nil {
		return nil, err
	}
	if owner == nil {
		return nil, apperrors.NotFound(op, "Owner not found").WithActor(ownerID)
	}

	activeRoom, err := s.roomRepo.FindActiveByOwner(ownerID)
	if err != nil {
		return nil, err
	}
	if activeRoom != nil {
		return nil, apperrors.InvalidState(op, activeRoom.ID, "You have already active room").WithActor(ownerID)
	}

	friends, err := s.friendService.GetFriends(ownerID)
	if err != nil {
		return nil, err
	}
	if len(friends) == 0 {
		return nil, apperrors.Validation(op, "No friends found")
	}

	// 允許名單 = 房主 + 房主的好友
	allowedUsers := make(map[uint]models.User, len(friends)+1)
	for _, edge := range friends {
		allowedUsers[edge.Friend.ID] = edge.Friend
	}
	allowedUsers[owner.ID] = *owner

	pool := append([]uint{payload.JudgeID}, payload.ProTeamIDs...)
	pool = append(pool, payload.ConTeamIDs...)
	for _, id := range pool {
		if _, ok := allowedUsers[id]; !ok {
			return nil, apperrors.Validation(op, "Not all users in the room are friends")
		}
	}

	judge, ok := allowedUsers[payload.JudgeID]
	if !ok {
		return nil, apperrors.NotFound(op, "Judge not found")
	}

	proTeam := make([]models.User, 0, len(payload.ProTeamIDs))
	for _, id := range payload.ProTeamIDs {
		proTeam = append(proTeam, allowedUsers[id])
	}
	conTeam := make([]models.User, 0, len(payload.ConTeamIDs))
	for _, id := range payload.ConTeamIDs {
		conTeam = append(conTeam, allowedUsers[id])
	}

	room := &models.Room{
		Topic:     payload.Topic,
		Status:    models.RoomStatusPending,
		NotGraded: true,
		Owner:     *owner,
		Judge:     judge,
		ProTeam:   proTeam,
		ConTeam:   conTeam,
	}

	if err := s.roomRepo.Create(room); err != nil {
		return nil, err
	}

	return room, nil
}

// StartRoom 由房主開始辯論
func (s *RoomService) StartRoom(userID, roomID uint) (*models.Room, error) {
	const op = "room.Start"

	if userID == 0 || roomID == 0 {
		return nil, apperrors.Validation(op, "Ids are required")
	}

	room, err := s.GetRoomByID(roomID)
	if err != nil {
		return nil, err
	}

	if room.Owner.ID != userID {
		return nil, apperrors.Forbidden(op, userID, "You are not owner").WithRoom(roomID)
	}

	switch room.Status {
	case models.RoomStatusStarted:
		return nil, apperrors.InvalidState(op, roomID, "Room is already started")
	case models.RoomStatusEnded:
		return nil, apperrors.InvalidState(op, roomID, "Room is already ended")
	case models.RoomStatusPaused:
		return nil, apperrors.InvalidState(op, roomID, "Room is paused")
	}

	room.Status = models.RoomStatusStarted
	if err := s.roomRepo.Save(room); err != nil {
		return nil, err
	}

	return room, nil
}

// updateRoomStatus 是 pause/resume 共用的狀態更新
func (s *RoomService) updateRoomStatus(op string, userID, roomID uint, newStatus models.RoomStatus) (*models.Room, error) {
	if userID == 0 || roomID == 0 {
		return nil, apperrors.Validation(op, "UserId and RoomId are required")
	}

	room, err := s.GetRoomByID(roomID)
	if err != nil {
		return nil, err
	}

	user, err := s.userRepo.FindByID(userID)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, apperrors.NotFound(op, "User not found").WithActor(userID)
	}

	if room.Owner.ID != user.ID {
		return nil, apperrors.Forbidden(op, userID, "You are not the owner").WithRoom(roomID)
	}

	room.Status = newStatus
	if err := s.roomRepo.Save(room); err != nil {
		return nil, err
	}

	return room, nil
}

// PauseRoom 由房主暫停辯論
func (s *RoomService) PauseRoom(userID, roomID uint) (*models.Room, error) {
	return s.updateRoomStatus("room.Pause", userID, roomID, models.RoomStatusPaused)
}

// ResumeRoom 由房主恢復辯論
func (s *RoomService) ResumeRoom(userID, roomID uint) (*models.Room, error) {
	return s.updateRoomStatus("room.Resume", userID, roomID, models.RoomStatusStarted)
}

// EndRoom 由房主結束辯論，結束後不會產生獲勝隊伍
func (s *RoomService) EndRoom(userID, roomID uint) (*models.Room, error) {
	const op = "room.End"

	if userID == 0 || roomID == 0 {
		return nil, apperrors.Validation(op, "UserId and RoomId are required")
	}

	room, err := s.GetRoomByID(roomID)
	if err != nil {
		return nil, err
	}

	user, err := s.userRepo.FindByID(userID)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, apperrors.NotFound(op, "User not found").WithActor(userID)
	}

	if room.Owner.ID != user.ID {
		return nil, apperrors.Forbidden(op, userID, "You are not owner").WithRoom(roomID)
	}

	if room.Status == models.RoomStatusEnded {
		return nil, apperrors.InvalidState(op, roomID, "Room is already ended")
	}

	room.Status = models.RoomStatusEnded
	if err := s.roomRepo.Save(room); err != nil {
		return nil, err
	}

	return room, nil
}

// JoinRoom 讓在房間中擔任角色的用戶加入成員列表。
// 重複加入不報錯也不會產生重複記錄。
func (s *RoomService) JoinRoom(userID, roomID uint) (*models.Room, error) {
	const op = "room.Join"

	if userID == 0 || roomID == 0 {
		return nil, apperrors.Validation(op, "Ids are required")
	}

	room, err := s.GetRoomByID(roomID)
	if err != nil {
		return nil, err
	}

	user, err := s.userRepo.FindByID(userID)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, apperrors.NotFound(op, "User not found").WithActor(userID)
	}

	usersInRoom := append(append([]models.User{}, room.ProTeam...), room.ConTeam...)
	usersInRoom = append(usersInRoom, room.Judge)

	hasRole := false
	for _, userInRoom := range usersInRoom {
		if userInRoom.ID == user.ID {
			hasRole = true
			break
		}
	}
	if !hasRole {
		return nil, apperrors.Forbidden(op, userID, "User isn't in room").WithRoom(roomID)
	}

	for _, member := range room.Members {
		if member.ID == user.ID {
			return room, nil
		}
	}

	if err := s.roomRepo.AddMember(room, user); err != nil {
		return nil, err
	}
	room.Members = append(room.Members, *user)

	return room, nil
}

// LeaveRoom 讓已加入的成員離開房間，比對一律以用戶 ID 為準
func (s *RoomService) LeaveRoom(userID, roomID uint) (*models.Room, error) {
	const op = "room.Leave"

	if userID == 0 || roomID == 0 {
		return nil, apperrors.Validation(op, "Ids are required")
	}

	room, err := s.GetRoomByID(roomID)
	if err != nil {
		return nil, err
	}

	user, err := s.userRepo.FindByID(userID)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, apperrors.NotFound(op, "User not found").WithActor(userID)
	}

	isMember := false
	for _, member := range room.Members {
		if member.ID == user.ID {
			isMember = true
			break
		}
	}
	if !isMember {
		return nil, apperrors.InvalidState(op, roomID, "User is not a room member").WithActor(userID)
	}

	if err := s.roomRepo.RemoveMember(room, user); err != nil {
		return nil, err
	}

	members := room.Members[:0]
	for _, member := range room.Members {
		if member.ID != user.ID {
			members = append(members, member)
		}
	}
	room.Members = members

	return room, nil
}

// GradeRoom 由裁判指定獲勝隊伍並結束房間，每個房間只能評分一次
func (s *RoomService) GradeRoom(userID, roomID uint, team models.Team) (*models.Room, error) {
	const op = "room.Grade"

	if userID == 0 || roomID == 0 || team == "" {
		return nil, apperrors.Validation(op, "Ids and team are required")
	}

	room, err := s.GetRoomByID(roomID)
	if err != nil {
		return nil, err
	}

	if !room.NotGraded {
		return nil, apperrors.InvalidState(op, roomID, "Room status is not grading")
	}

	if room.Judge.ID != userID {
		return nil, apperrors.Forbidden(op, userID, "User is not a judge").WithRoom(roomID)
	}

	winners := room.ConTeam
	if team == models.TeamPro {
		winners = room.ProTeam
	}

	room.NotGraded = false
	room.Status = models.RoomStatusEnded
	if err := s.roomRepo.Save(room); err != nil {
		return nil, err
	}
	if err := s.roomRepo.ReplaceWinners(room, winners); err != nil {
		return nil, err
	}
	room.Winners = winners

	return room, nil
}

// PublishRoom 由房主把房間加入公開列表
func (s *RoomService) PublishRoom(userID, roomID uint) (*models.Room, error) {
	const op = "room.Publish"

	if userID == 0 || roomID == 0 {
		return nil, apperrors.Validation(op, "Ids are required")
	}

	room, err := s.GetRoomByID(roomID)
	if err != nil {
		return nil, err
	}

	if room.Owner.ID != userID {
		return nil, apperrors.Forbidden(op, userID, "User is not a owner").WithRoom(roomID)
	}

	if room.IsPublic {
		return nil, apperrors.InvalidState(op, roomID, "Room is already public")
	}

	room.IsPublic = true
	if err := s.roomRepo.Save(room); err != nil {
		return nil, err
	}

	return room, nil
}

// UnpublishRoom 由房主把房間從公開列表移除
func (s *RoomService) UnpublishRoom(userID, roomID uint) (*models.Room, error) {
	const op = "room.Unpublish"

	if userID == 0 || roomID == 0 {
		return nil, apperrors.Validation(op, "Ids are required")
	}

	room, err := s.GetRoomByID(roomID)
	if err != nil {
		return nil, err
	}

	if room.Owner.ID != userID {
		return nil, apperrors.Forbidden(op, userID, "User is not a owner").WithRoom(roomID)
	}

	if !room.IsPublic {
		return nil, apperrors.InvalidState(op, roomID, "Room is already non-public")
	}

	room.IsPublic = false
	if err := s.roomRepo.Save(room); err != nil {
		return nil, err
	}

	return room, nil
}

// SetStatus 直接設定房間狀態，不做授權檢查。
// 這是留給外部協作者（例如計時器）的管理入口，
// 也是唯一會寫入 GRADING 狀態的地方。
func (s *RoomService) SetStatus(roomID uint, status models.RoomStatus) (*models.Room, error) {
	const op = "room.SetStatus"

	if roomID == 0 {
		return nil, apperrors.Validation(op, "RoomId is required")
	}

	room, err := s.GetRoomByID(roomID)
	if err != nil {
		return nil, err
	}

	room.Status = status
	if err := s.roomRepo.Save(room); err != nil {
		return nil, err
	}

	return room, nil
}

// IsLive 查詢用戶目前參與中的房間，沒有時回傳 (nil, nil) 而不是錯誤
func (s *RoomService) IsLive(userID uint) (*models.Room, error) {
	const op = "room.IsLive"

	user, err := s.userRepo.FindByID(userID)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, apperrors.NotFound(op, "User not found").WithActor(userID)
	}

	return s.roomRepo.FindActiveByParticipant(userID)
}

// CheckIsRoomValid 確認用戶在指定房間中擔任角色且房間仍在進行中，
// 作為其他入口（例如 WebSocket 連線）的授權檢查
func (s *RoomService) CheckIsRoomValid(userID, roomID uint) (*models.Room, error) {
	const op = "room.CheckValid"

	if userID == 0 || roomID == 0 {
		return nil, apperrors.Validation(op, "UserId and RoomId are required")
	}

	room, err := s.roomRepo.FindActiveByParticipantAndID(userID, roomID)
	if err != nil {
		return nil, err
	}
	if room == nil {
		return nil, apperrors.NotFound(op, "Room not found").WithRoom(roomID).WithActor(userID)
	}

	return room, nil
}

// GetUserEndedRooms 查詢用戶參與過的已結束房間
func (s *RoomService) GetUserEndedRooms(userID uint) ([]models.Room, error) {
	if userID == 0 {
		return nil, apperrors.Validation("room.EndedRooms", "UserId is required")
	}

	return s.roomRepo.FindEndedByParticipant(userID)
}

// GetPublicRooms 查詢公開且已結束的房間，按讚數排序（預設由多到少），
// 並為每個房間標記目前用戶是否按過讚
func (s *RoomService) GetPublicRooms(userID uint, direction OrderDirection) ([]models.Room, error) {
	rooms, err := s.roomRepo.FindPublicEnded(direction != OrderAsc)
	if err != nil {
		return nil, err
	}

	for i := range rooms {
		count, err := s.likeRepo.CountByRoom(rooms[i].ID)
		if err != nil {
			return nil, err
		}
		rooms[i].LikesCount = count

		liked, err := s.likeRepo.Exists(rooms[i].ID, userID)
		if err != nil {
			return nil, err
		}
		rooms[i].IsLikedByCurrentUser = liked
	}

	return rooms, nil
}

// LikeRoom 對公開且已結束的房間按讚
func (s *RoomService) LikeRoom(userID, roomID uint) error {
	const op = "room.Like"

	if userID == 0 || roomID == 0 {
		return apperrors.Validation(op, "Ids are required")
	}

	room, err := s.GetRoomByID(roomID)
	if err != nil {
		return err
	}

	if !room.IsPublic || room.Status != models.RoomStatusEnded {
		return apperrors.InvalidState(op, roomID, "Room is not public")
	}

	user, err := s.userRepo.FindByID(userID)
	if err != nil {
		return err
	}
	if user == nil {
		return apperrors.NotFound(op, "User not found").WithActor(userID)
	}

	liked, err := s.likeRepo.Exists(roomID, userID)
	if err != nil {
		return err
	}
	if liked {
		return apperrors.InvalidState(op, roomID, "Room is already liked")
	}

	return s.likeRepo.Add(room, user)
}

// UnlikeRoom 取消按讚
func (s *RoomService) UnlikeRoom(userID, roomID uint) error {
	const op = "room.Unlike"

	if userID == 0 || roomID == 0 {
		return apperrors.Validation(op, "Ids are required")
	}

	room, err := s.GetRoomByID(roomID)
	if err != nil {
		return err
	}

	user, err := s.userRepo.FindByID(userID)
	if err != nil {
		return err
	}
	if user == nil {
		return apperrors.NotFound(op, "User not found").WithActor(userID)
	}

	liked, err := s.likeRepo.Exists(roomID, userID)
	if err != nil {
		return err
	}
	if !liked {
		return apperrors.InvalidState(op, roomID, "Room is not liked")
	}

	return s.likeRepo.Remove(room, user)
}

// GetRoomMessages 查詢房間的辯論消息記錄
func (s *RoomService) GetRoomMessages(roomID uint) ([]models.RoomMessage, error) {
	if roomID == 0 {
		return nil, apperrors.Validation("room.Messages", "RoomId is required")
	}

	return s.messageRepo.FindByRoomID(roomID)
}
