package service

import (
	"debate_arena/internal/apperrors"
	"debate_arena/internal/models"
	"debate_arena/internal/repository"
)

// CreateUserPayload 定義註冊新用戶所需的資料
type CreateUserPayload struct {
	Nickname string
	Email    string
	Password string // 已經過雜湊處理
	Name     string
	Surname  string
	Picture  string
}

// UpdateUserPayload 定義更新個人資料的欄位，nil 表示不更動
type UpdateUserPayload struct {
	Name    *string `json:"name"`
	Surname *string `json:"surname"`
	Picture *string `json:"picture"`
}

// UserService 提供用戶目錄的查詢和維護
type UserService struct {
	userRepo repository.UserRepository
}

func NewUserService(userRepo repository.UserRepository) *UserService {
	return &UserService{userRepo: userRepo}
}

// GetUserByID 以 ID 查詢用戶，找不到時回傳 NotFound 錯誤
func (s *UserService) GetUserByID(id uint) (*models.User, error) {
	const op = "user.GetByID"

	if id == 0 {
		return nil, apperrors.Validation(op, "Id is required")
	}

	user, err := s.userRepo.FindByID(id)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, apperrors.NotFound(op, "User not found")
	}

	return user, nil
}

// GetUserByEmail 以信箱查詢用戶。
// 和 GetUserByID 不同，找不到時回傳 (nil, nil)：
// 註冊流程靠這一點做唯一性預檢，「不存在」反而是正常情況。
func (s *UserService) GetUserByEmail(email string) (*models.User, error) {
	if email == "" {
		return nil, apperrors.Validation("user.GetByEmail", "Email is required")
	}

	return s.userRepo.FindByEmail(email)
}

// GetUserByNickname 以暱稱查詢用戶，找不到時回傳 (nil, nil)
func (s *UserService) GetUserByNickname(nickname string) (*models.User, error) {
	if nickname == "" {
		return nil, apperrors.Validation("user.GetByNickname", "Username is required")
	}

	return s.userRepo.FindByNickname(nickname)
}

// GetUsers 列出所有用戶
func (s *UserService) GetUsers() ([]models.User, error) {
	return s.userRepo.FindAll()
}

// CreateUser 創建新用戶，暱稱和信箱必須唯一
func (s *UserService) CreateUser(payload CreateUserPayload) (*models.User, error) {
	const op = "user.Create"

	if payload.Nickname == "" || payload.Email == "" || payload.Password == "" {
		return nil, apperrors.Validation(op, "Nickname, email and password are required")
	}

	existing, err := s.userRepo.FindByEmail(payload.Email)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, apperrors.Validation(op, "Email is already taken")
	}

	existing, err = s.userRepo.FindByNickname(payload.Nickname)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, apperrors.Validation(op, "Nickname is already taken")
	}

	user := &models.User{
		Nickname: payload.Nickname,
		Email:    payload.Email,
		Password: payload.Password,
		Name:     payload.Name,
		Surname:  payload.Surname,
		Picture:  payload.Picture,
	}

	if err := s.userRepo.Create(user); err != nil {
		return nil, err
	}

	return user, nil
}

// UpdateUser 更新個人資料，只覆蓋有提供的欄位
func (s *UserService) UpdateUser(id uint, payload UpdateUserPayload) (*models.User, error) {
	const op = "user.Update"

	if id == 0 {
		return nil, apperrors.Validation(op, "Id is required")
	}

	user, err := s.userRepo.FindByID(id)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, apperrors.NotFound(op, "User not found")
	}

	if payload.Name != nil {
		user.Name = *payload.Name
	}
	if payload.Surname != nil {
		user.Surname = *payload.Surname
	}
	if payload.Picture != nil {
		user.Picture = *payload.Picture
	}

	if err := s.userRepo.Save(user); err != nil {
		return nil, err
	}

	return user, nil
}
