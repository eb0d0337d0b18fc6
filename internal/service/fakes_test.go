package service

import (
	"sort"

	"debate_arena/internal/models"
)

// memStore 是測試用的記憶體資料庫，所有 fake repository 共享同一份資料
type memStore struct {
	users    map[uint]*models.User
	rooms    map[uint]*models.Room
	invites  map[uint]*models.Invite
	likes    map[uint]map[uint]bool // roomID -> userID -> liked
	messages []models.RoomMessage

	nextUserID   uint
	nextRoomID   uint
	nextInviteID uint
}

func newMemStore() *memStore {
	return &memStore{
		users:   make(map[uint]*models.User),
		rooms:   make(map[uint]*models.Room),
		invites: make(map[uint]*models.Invite),
		likes:   make(map[uint]map[uint]bool),
	}
}

func isActiveStatus(status models.RoomStatus) bool {
	for _, s := range models.ActiveRoomStatuses {
		if s == status {
			return true
		}
	}
	return false
}

func roomHasRole(room *models.Room, userID uint) bool {
	if room.JudgeID == userID {
		return true
	}
	for _, u := range room.ProTeam {
		if u.ID == userID {
			return true
		}
	}
	for _, u := range room.ConTeam {
		if u.ID == userID {
			return true
		}
	}
	return false
}

// --- UserRepository ---

type fakeUserRepo struct{ store *memStore }

func (r *fakeUserRepo) Create(user *models.User) error {
	r.store.nextUserID++
	user.ID = r.store.nextUserID
	copied := *user
	r.store.users[user.ID] = &copied
	return nil
}

func (r *fakeUserRepo) FindByID(id uint) (*models.User, error) {
	user, ok := r.store.users[id]
	if !ok {
		return nil, nil
	}
	copied := *user
	return &copied, nil
}

func (r *fakeUserRepo) FindByEmail(email string) (*models.User, error) {
	for _, user := range r.store.users {
		if user.Email == email {
			copied := *user
			return &copied, nil
		}
	}
	return nil, nil
}

func (r *fakeUserRepo) FindByNickname(nickname string) (*models.User, error) {
	for _, user := range r.store.users {
		if user.Nickname == nickname {
			copied := *user
			return &copied, nil
		}
	}
	return nil, nil
}

func (r *fakeUserRepo) FindAll() ([]models.User, error) {
	users := make([]models.User, 0, len(r.store.users))
	for _, user := range r.store.users {
		users = append(users, *user)
	}
	sort.Slice(users, func(i, j int) bool { return users[i].ID < users[j].ID })
	return users, nil
}

func (r *fakeUserRepo) Save(user *models.User) error {
	copied := *user
	r.store.users[user.ID] = &copied
	return nil
}

// --- RoomRepository ---

type fakeRoomRepo struct{ store *memStore }

func (r *fakeRoomRepo) Create(room *models.Room) error {
	r.store.nextRoomID++
	room.ID = r.store.nextRoomID
	room.OwnerID = room.Owner.ID
	room.JudgeID = room.Judge.ID
	copied := copyRoom(room)
	r.store.rooms[room.ID] = copied
	return nil
}

func copyRoom(room *models.Room) *models.Room {
	copied := *room
	copied.ProTeam = append([]models.User(nil), room.ProTeam...)
	copied.ConTeam = append([]models.User(nil), room.ConTeam...)
	copied.Members = append([]models.User(nil), room.Members...)
	copied.Winners = append([]models.User(nil), room.Winners...)
	return &copied
}

func (r *fakeRoomRepo) FindByID(id uint) (*models.Room, error) {
	room, ok := r.store.rooms[id]
	if !ok {
		return nil, nil
	}
	return copyRoom(room), nil
}

// Save 和真的 repository 一樣只寫入房間本身的欄位
func (r *fakeRoomRepo) Save(room *models.Room) error {
	stored, ok := r.store.rooms[room.ID]
	if !ok {
		return nil
	}
	stored.Topic = room.Topic
	stored.Status = room.Status
	stored.NotGraded = room.NotGraded
	stored.IsPublic = room.IsPublic
	return nil
}

func (r *fakeRoomRepo) FindActiveByOwner(ownerID uint) (*models.Room, error) {
	for _, room := range r.store.rooms {
		if room.OwnerID == ownerID && isActiveStatus(room.Status) {
			return copyRoom(room), nil
		}
	}
	return nil, nil
}

func (r *fakeRoomRepo) FindActiveByParticipant(userID uint) (*models.Room, error) {
	for _, room := range r.store.rooms {
		if isActiveStatus(room.Status) && roomHasRole(room, userID) {
			return copyRoom(room), nil
		}
	}
	return nil, nil
}

func (r *fakeRoomRepo) FindActiveByParticipantAndID(userID, roomID uint) (*models.Room, error) {
	room, ok := r.store.rooms[roomID]
	if !ok {
		return nil, nil
	}
	if !isActiveStatus(room.Status) || !roomHasRole(room, userID) {
		return nil, nil
	}
	return copyRoom(room), nil
}

func (r *fakeRoomRepo) FindEndedByParticipant(userID uint) ([]models.Room, error) {
	var rooms []models.Room
	for _, room := range r.store.rooms {
		if room.Status == models.RoomStatusEnded && roomHasRole(room, userID) {
			rooms = append(rooms, *copyRoom(room))
		}
	}
	return rooms, nil
}

func (r *fakeRoomRepo) FindPublicEnded(descending bool) ([]models.Room, error) {
	var rooms []models.Room
	for _, room := range r.store.rooms {
		if room.IsPublic && room.Status == models.RoomStatusEnded {
			rooms = append(rooms, *copyRoom(room))
		}
	}
	sort.Slice(rooms, func(i, j int) bool {
		ci := len(r.store.likes[rooms[i].ID])
		cj := len(r.store.likes[rooms[j].ID])
		if descending {
			return ci > cj
		}
		return ci < cj
	})
	return rooms, nil
}

func (r *fakeRoomRepo) AddMember(room *models.Room, user *models.User) error {
	stored, ok := r.store.rooms[room.ID]
	if !ok {
		return nil
	}
	stored.Members = append(stored.Members, *user)
	return nil
}

func (r *fakeRoomRepo) RemoveMember(room *models.Room, user *models.User) error {
	stored, ok := r.store.rooms[room.ID]
	if !ok {
		return nil
	}
	members := stored.Members[:0]
	for _, member := range stored.Members {
		if member.ID != user.ID {
			members = append(members, member)
		}
	}
	stored.Members = members
	return nil
}

func (r *fakeRoomRepo) ReplaceWinners(room *models.Room, winners []models.User) error {
	stored, ok := r.store.rooms[room.ID]
	if !ok {
		return nil
	}
	stored.Winners = append([]models.User(nil), winners...)
	return nil
}

// --- InviteRepository ---

type fakeInviteRepo struct{ store *memStore }

func (r *fakeInviteRepo) Create(invite *models.Invite) error {
	r.store.nextInviteID++
	invite.ID = r.store.nextInviteID
	copied := *invite
	r.store.invites[invite.ID] = &copied
	return nil
}

// withUsers 模仿真的 repository 的 Preload
func (r *fakeInviteRepo) withUsers(invite *models.Invite) *models.Invite {
	copied := *invite
	if sender, ok := r.store.users[invite.SenderID]; ok {
		copied.Sender = *sender
	}
	if receiver, ok := r.store.users[invite.ReceiverID]; ok {
		copied.Receiver = *receiver
	}
	return &copied
}

func (r *fakeInviteRepo) FindByID(id uint) (*models.Invite, error) {
	invite, ok := r.store.invites[id]
	if !ok {
		return nil, nil
	}
	return r.withUsers(invite), nil
}

func (r *fakeInviteRepo) Save(invite *models.Invite) error {
	copied := *invite
	r.store.invites[invite.ID] = &copied
	return nil
}

func (r *fakeInviteRepo) Delete(invite *models.Invite) error {
	delete(r.store.invites, invite.ID)
	return nil
}

func (r *fakeInviteRepo) FindBetween(userA, userB uint, status models.InviteStatus) (*models.Invite, error) {
	for _, invite := range r.store.invites {
		if invite.Status != status {
			continue
		}
		if (invite.SenderID == userA && invite.ReceiverID == userB) ||
			(invite.SenderID == userB && invite.ReceiverID == userA) {
			return r.withUsers(invite), nil
		}
	}
	return nil, nil
}

func (r *fakeInviteRepo) FindPendingByReceiver(userID uint) ([]models.Invite, error) {
	var invites []models.Invite
	for _, invite := range r.store.invites {
		if invite.ReceiverID == userID && invite.Status == models.InviteStatusPending {
			invites = append(invites, *r.withUsers(invite))
		}
	}
	return invites, nil
}

func (r *fakeInviteRepo) FindPendingBySender(userID uint) ([]models.Invite, error) {
	var invites []models.Invite
	for _, invite := range r.store.invites {
		if invite.SenderID == userID && invite.Status == models.InviteStatusPending {
			invites = append(invites, *r.withUsers(invite))
		}
	}
	return invites, nil
}

func (r *fakeInviteRepo) FindAcceptedByUser(userID uint) ([]models.Invite, error) {
	var invites []models.Invite
	for _, invite := range r.store.invites {
		if invite.Status != models.InviteStatusAccepted {
			continue
		}
		if invite.SenderID == userID || invite.ReceiverID == userID {
			invites = append(invites, *r.withUsers(invite))
		}
	}
	return invites, nil
}

// --- LikeRepository ---

type fakeLikeRepo struct{ store *memStore }

func (r *fakeLikeRepo) Exists(roomID, userID uint) (bool, error) {
	return r.store.likes[roomID][userID], nil
}

func (r *fakeLikeRepo) CountByRoom(roomID uint) (int64, error) {
	return int64(len(r.store.likes[roomID])), nil
}

func (r *fakeLikeRepo) Add(room *models.Room, user *models.User) error {
	if r.store.likes[room.ID] == nil {
		r.store.likes[room.ID] = make(map[uint]bool)
	}
	r.store.likes[room.ID][user.ID] = true
	return nil
}

func (r *fakeLikeRepo) Remove(room *models.Room, user *models.User) error {
	delete(r.store.likes[room.ID], user.ID)
	return nil
}

// --- RoomMessageRepository ---

type fakeRoomMessageRepo struct{ store *memStore }

func (r *fakeRoomMessageRepo) Create(message *models.RoomMessage) error {
	r.store.messages = append(r.store.messages, *message)
	return nil
}

func (r *fakeRoomMessageRepo) FindByRoomID(roomID uint) ([]models.RoomMessage, error) {
	var messages []models.RoomMessage
	for _, message := range r.store.messages {
		if message.RoomID == roomID {
			messages = append(messages, message)
		}
	}
	return messages, nil
}

// --- 測試環境 ---

type testEnv struct {
	store      *memStore
	userSvc    *UserService
	friendSvc  *FriendService
	roomSvc    *RoomService
	likeRepo   *fakeLikeRepo
	inviteRepo *fakeInviteRepo
}

func newTestEnv() *testEnv {
	store := newMemStore()
	userRepo := &fakeUserRepo{store: store}
	roomRepo := &fakeRoomRepo{store: store}
	inviteRepo := &fakeInviteRepo{store: store}
	likeRepo := &fakeLikeRepo{store: store}
	messageRepo := &fakeRoomMessageRepo{store: store}

	userSvc := NewUserService(userRepo)
	friendSvc := NewFriendService(inviteRepo, userRepo)
	roomSvc := NewRoomService(roomRepo, userRepo, likeRepo, messageRepo, friendSvc)

	return &testEnv{
		store:      store,
		userSvc:    userSvc,
		friendSvc:  friendSvc,
		roomSvc:    roomSvc,
		likeRepo:   likeRepo,
		inviteRepo: inviteRepo,
	}
}

// addUser 直接塞進一個用戶
func (e *testEnv) addUser(nickname string) *models.User {
	repo := &fakeUserRepo{store: e.store}
	user := &models.User{
		Nickname: nickname,
		Email:    nickname + "@example.com",
		Password: "hashed",
	}
	repo.Create(user)
	return user
}

// befriend 直接塞進一條已接受的好友關係
func (e *testEnv) befriend(a, b uint) {
	e.inviteRepo.Create(&models.Invite{
		SenderID:   a,
		ReceiverID: b,
		Status:     models.InviteStatusAccepted,
	})
}
