package repository

import "debate_arena/internal/storage"

type Repositories struct {
	User        UserRepository
	Room        RoomRepository
	Invite      InviteRepository
	Like        LikeRepository
	RoomMessage RoomMessageRepository
}

func NewRepositories(db *storage.PostgresDB) *Repositories {
	return &Repositories{
		User:        NewUserRepository(db),
		Room:        NewRoomRepository(db),
		Invite:      NewInviteRepository(db),
		Like:        NewLikeRepository(db),
		RoomMessage: NewRoomMessageRepository(db),
	}
}
