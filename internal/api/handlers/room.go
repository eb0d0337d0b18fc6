package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"debate_arena/internal/middleware"
	"debate_arena/internal/models"
	"debate_arena/internal/service"
)

// RoomHandler 處理與辯論房間相關的請求
type RoomHandler struct {
	roomService *service.RoomService
	roomChannel *service.RoomChannel
}

// NewRoomHandler 創建一個新的 RoomHandler 實例
func NewRoomHandler(roomService *service.RoomService, roomChannel *service.RoomChannel) *RoomHandler {
	return &RoomHandler{roomService: roomService, roomChannel: roomChannel}
}

// CreateRoom 處理創建新房間的請求
func (h *RoomHandler) CreateRoom(c *gin.Context) {
	var input service.CreateRoomPayload
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	room, err := h.roomService.CreateRoom(middleware.CurrentUserID(c), input)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, room)
}

// GetRoom 處理獲取房間訊息的請求
func (h *RoomHandler) GetRoom(c *gin.Context) {
	room, err := h.roomService.GetRoomByID(parseIDParam(c, "id"))
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, room)
}

// StartRoom 由房主開始辯論
func (h *RoomHandler) StartRoom(c *gin.Context) {
	room, err := h.roomService.StartRoom(middleware.CurrentUserID(c), parseIDParam(c, "id"))
	if err != nil {
		respondError(c, err)
		return
	}

	h.roomChannel.BroadcastSystemMessage(room.ID, "辯論開始")
	c.JSON(http.StatusOK, room)
}

// PauseRoom 由房主暫停辯論
func (h *RoomHandler) PauseRoom(c *gin.Context) {
	room, err := h.roomService.PauseRoom(middleware.CurrentUserID(c), parseIDParam(c, "id"))
	if err != nil {
		respondError(c, err)
		return
	}

	h.roomChannel.BroadcastSystemMessage(room.ID, "辯論暫停")
	c.JSON(http.StatusOK, room)
}

// ResumeRoom 由房主恢復辯論
func (h *RoomHandler) ResumeRoom(c *gin.Context) {
	room, err := h.roomService.ResumeRoom(middleware.CurrentUserID(c), parseIDParam(c, "id"))
	if err != nil {
		respondError(c, err)
		return
	}

	h.roomChannel.BroadcastSystemMessage(room.ID, "辯論繼續")
	c.JSON(http.StatusOK, room)
}

// EndRoom 由房主結束辯論
func (h *RoomHandler) EndRoom(c *gin.Context) {
	room, err := h.roomService.EndRoom(middleware.CurrentUserID(c), parseIDParam(c, "id"))
	if err != nil {
		respondError(c, err)
		return
	}

	h.roomChannel.BroadcastSystemMessage(room.ID, "辯論結束")
	c.JSON(http.StatusOK, room)
}

// JoinRoom 處理加入房間的請求
func (h *RoomHandler) JoinRoom(c *gin.Context) {
	room, err := h.roomService.JoinRoom(middleware.CurrentUserID(c), parseIDParam(c, "id"))
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, room)
}

// LeaveRoom 處理離開房間的請求
func (h *RoomHandler) LeaveRoom(c *gin.Context) {
	room, err := h.roomService.LeaveRoom(middleware.CurrentUserID(c), parseIDParam(c, "id"))
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, room)
}

// GradeInput 定義評分請求的結構
type GradeInput struct {
	Team models.Team `json:"team" binding:"required,oneof=PRO_TEAM CON_TEAM"`
}

// GradeRoom 由裁判評分並結束房間
func (h *RoomHandler) GradeRoom(c *gin.Context) {
	var input GradeInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	room, err := h.roomService.GradeRoom(middleware.CurrentUserID(c), parseIDParam(c, "id"), input.Team)
	if err != nil {
		respondError(c, err)
		return
	}

	h.roomChannel.BroadcastSystemMessage(room.ID, "裁判已評分，辯論結束")
	c.JSON(http.StatusOK, room)
}

// PublishRoom 把房間加入公開列表
func (h *RoomHandler) PublishRoom(c *gin.Context) {
	room, err := h.roomService.PublishRoom(middleware.CurrentUserID(c), parseIDParam(c, "id"))
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, room)
}

// UnpublishRoom 把房間從公開列表移除
func (h *RoomHandler) UnpublishRoom(c *gin.Context) {
	room, err := h.roomService.UnpublishRoom(middleware.CurrentUserID(c), parseIDParam(c, "id"))
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, room)
}

// IsLive 查詢目前用戶參與中的房間，沒有時回傳 null
func (h *RoomHandler) IsLive(c *gin.Context) {
	room, err := h.roomService.IsLive(middleware.CurrentUserID(c))
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, room)
}

// GetEndedRooms 查詢目前用戶參與過的已結束房間
func (h *RoomHandler) GetEndedRooms(c *gin.Context) {
	rooms, err := h.roomService.GetUserEndedRooms(middleware.CurrentUserID(c))
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, rooms)
}

// GetPublicRooms 查詢公開房間列表，?order=ASC 可以反轉排序
func (h *RoomHandler) GetPublicRooms(c *gin.Context) {
	direction := service.OrderDesc
	if c.Query("order") == string(service.OrderAsc) {
		direction = service.OrderAsc
	}

	rooms, err := h.roomService.GetPublicRooms(middleware.CurrentUserID(c), direction)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, rooms)
}

// LikeRoom 對公開房間按讚
func (h *RoomHandler) LikeRoom(c *gin.Context) {
	if err := h.roomService.LikeRoom(middleware.CurrentUserID(c), parseIDParam(c, "id")); err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Room liked"})
}

// UnlikeRoom 取消按讚
func (h *RoomHandler) UnlikeRoom(c *gin.Context) {
	if err := h.roomService.UnlikeRoom(middleware.CurrentUserID(c), parseIDParam(c, "id")); err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Room unliked"})
}

// GetRoomMessages 查詢房間的辯論消息記錄
func (h *RoomHandler) GetRoomMessages(c *gin.Context) {
	messages, err := h.roomService.GetRoomMessages(parseIDParam(c, "id"))
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, messages)
}
