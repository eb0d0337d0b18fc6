package service

import (
	"go.uber.org/zap"

	"debate_arena/internal/repository"
)

type Services struct {
	User        *UserService
	Friend      *FriendService
	Room        *RoomService
	RoomChannel *RoomChannel
}

func NewServices(repos *repository.Repositories, logger *zap.Logger) *Services {
	userService := NewUserService(repos.User)
	friendService := NewFriendService(repos.Invite, repos.User)
	roomService := NewRoomService(repos.Room, repos.User, repos.Like, repos.RoomMessage, friendService)
	roomChannel := NewRoomChannel(repos.RoomMessage, logger)

	return &Services{
		User:        userService,
		Friend:      friendService,
		Room:        roomService,
		RoomChannel: roomChannel,
	}
}
