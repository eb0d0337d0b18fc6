package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"debate_arena/internal/middleware"
	"debate_arena/internal/service"
)

// UserHandler 處理與用戶目錄相關的請求
type UserHandler struct {
	userService *service.UserService
}

// NewUserHandler 創建一個新的 UserHandler 實例
func NewUserHandler(userService *service.UserService) *UserHandler {
	return &UserHandler{userService: userService}
}

// GetUsers 列出所有用戶
func (h *UserHandler) GetUsers(c *gin.Context) {
	users, err := h.userService.GetUsers()
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, users)
}

// GetUser 以 ID 查詢單一用戶
func (h *UserHandler) GetUser(c *gin.Context) {
	user, err := h.userService.GetUserByID(parseIDParam(c, "id"))
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, user)
}

// UpdateUser 更新自己的個人資料
func (h *UserHandler) UpdateUser(c *gin.Context) {
	userID := middleware.CurrentUserID(c)

	// 只能改自己的資料
	if parseIDParam(c, "id") != userID {
		c.JSON(http.StatusForbidden, gin.H{"error": "You can only update your own profile"})
		return
	}

	var input service.UpdateUserPayload
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	user, err := h.userService.UpdateUser(userID, input)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, user)
}
