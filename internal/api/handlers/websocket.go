package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"

	"debate_arena/internal/middleware"
	"debate_arena/internal/models"
	"debate_arena/internal/service"
)

// 定義 WebSocket 升級器
var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	CheckOrigin: func(r *http.Request) bool {
		return true // 注意：在生產環境中，應該檢查 origin
	},
}

// WebSocketHandler 處理 WebSocket 連接
type WebSocketHandler struct {
	roomChannel *service.RoomChannel
	roomService *service.RoomService
}

// NewWebSocketHandler 創建一個新的 WebSocketHandler 實例
func NewWebSocketHandler(roomChannel *service.RoomChannel, roomService *service.RoomService) *WebSocketHandler {
	return &WebSocketHandler{
		roomChannel: roomChannel,
		roomService: roomService,
	}
}

// HandleWebSocket 處理 WebSocket 連接請求
//
// 升級之前先用 CheckIsRoomValid 確認：房間存在、仍在進行中、
// 而且目前用戶在裡面擔任角色。
func (h *WebSocketHandler) HandleWebSocket(c *gin.Context) {
	userID := middleware.CurrentUserID(c)
	roomID := parseIDParam(c, "id")

	room, err := h.roomService.CheckIsRoomValid(userID, roomID)
	if err != nil {
		respondError(c, err)
		return
	}

	// 升級 HTTP 連接為 WebSocket 連接
	conn, err := upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to upgrade connection"})
		return
	}

	// 處理客戶端連接，連接關閉前這個呼叫不會返回
	h.roomChannel.HandleConnection(conn, roomID, userID, determineUserRole(room, userID))
}

// determineUserRole 確定用戶在房間中的角色
func determineUserRole(room *models.Room, userID uint) string {
	if room.Owner.ID == userID {
		return "owner"
	}
	if room.Judge.ID == userID {
		return "judge"
	}
	for _, user := range room.ProTeam {
		if user.ID == userID {
			return "pro"
		}
	}
	for _, user := range room.ConTeam {
		if user.ID == userID {
			return "con"
		}
	}
	return "member"
}
