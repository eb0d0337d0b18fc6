package service

import (
	"encoding/json"
	"fmt"
	"sync"
	"time"

	"github.com/gorilla/websocket"
	"go.uber.org/zap"

	"debate_arena/internal/models"
	"debate_arena/internal/repository"
)

// Client 代表一個 WebSocket 客戶端連接
type Client struct {
	Conn     *websocket.Conn          // WebSocket 連接
	UserID   uint                     // 用戶 ID
	RoomID   uint                     // 房間 ID
	Role     string                   // 用戶在房間中的角色 (owner/judge/pro/con/member)
	SendChan chan *models.RoomMessage // 消息發送通道，用於異步傳送消息
}

// RoomChannel 管理所有房間的 WebSocket 連接和消息傳遞
type RoomChannel struct {
	clients     map[uint]map[*Client]bool // 兩層 map: roomID -> client -> bool
	clientsMux  sync.RWMutex              // 用於保護 clients map 的讀寫鎖
	messageRepo repository.RoomMessageRepository
	logger      *zap.Logger
}

// NewRoomChannel 創建並初始化新的房間消息中心
func NewRoomChannel(messageRepo repository.RoomMessageRepository, logger *zap.Logger) *RoomChannel {
	return &RoomChannel{
		clients:     make(map[uint]map[*Client]bool),
		messageRepo: messageRepo,
		logger:      logger,
	}
}

// HandleConnection 處理新的 WebSocket 連接請求，
// 呼叫方必須先通過 RoomService.CheckIsRoomValid 的授權檢查
func (s *RoomChannel) HandleConnection(conn *websocket.Conn, roomID, userID uint, role string) {
	client := &Client{
		Conn:     conn,
		UserID:   userID,
		RoomID:   roomID,
		Role:     role,
		SendChan: make(chan *models.RoomMessage, 256),
	}

	s.addClient(client)

	// 確保連接關閉時清理資源
	defer func() {
		s.removeClient(client)
		conn.Close()
		close(client.SendChan)
	}()

	// 啟動讀寫處理
	go s.writePump(client)
	s.readPump(client)
}

// readPump 持續監聽並處理從客戶端接收的消息
func (s *RoomChannel) readPump(client *Client) {
	client.Conn.SetReadLimit(4096) // 設置最大消息大小為 4KB
	client.Conn.SetReadDeadline(time.Now().Add(60 * time.Second))
	client.Conn.SetPongHandler(func(string) error {
		client.Conn.SetReadDeadline(time.Now().Add(60 * time.Second))
		return nil
	})

	for {
		_, payload, err := client.Conn.ReadMessage()
		if err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseAbnormalClosure) {
				s.logger.Warn("websocket unexpected close",
					zap.Uint("room_id", client.RoomID),
					zap.Uint("user_id", client.UserID),
					zap.Error(err))
			}
			break
		}

		// 解析接收到的消息
		var incoming struct {
			Content string `json:"content"`
		}
		if err := json.Unmarshal(payload, &incoming); err != nil {
			s.logger.Warn("message parse error", zap.Error(err))
			continue
		}

		msg := models.NewDebateMessage(client.RoomID, client.UserID, client.Role, incoming.Content)

		// 先存進資料庫再廣播，讓消息記錄和在線用戶看到的一致
		if err := s.messageRepo.Create(msg); err != nil {
			s.logger.Error("message persist error",
				zap.Uint("room_id", client.RoomID),
				zap.Error(err))
			continue
		}

		s.BroadcastToRoom(client.RoomID, msg)
	}
}

// writePump 處理向客戶端發送消息的邏輯
func (s *RoomChannel) writePump(client *Client) {
	// 設置心跳檢查計時器
	ticker := time.NewTicker(54 * time.Second)
	defer ticker.Stop()

	for {
		select {
		case message, ok := <-client.SendChan:
			// 設置寫入超時
			client.Conn.SetWriteDeadline(time.Now().Add(10 * time.Second))
			if !ok {
				client.Conn.WriteMessage(websocket.CloseMessage, []byte{})
				return
			}

			w, err := client.Conn.NextWriter(websocket.TextMessage)
			if err != nil {
				return
			}

			messageBytes, err := json.Marshal(message)
			if err != nil {
				s.logger.Warn("message encoding error", zap.Error(err))
				continue
			}

			if _, err := w.Write(messageBytes); err != nil {
				return
			}
			if err := w.Close(); err != nil {
				return
			}

		case <-ticker.C:
			// 發送心跳包
			client.Conn.SetWriteDeadline(time.Now().Add(10 * time.Second))
			if err := client.Conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				return
			}
		}
	}
}

// BroadcastToRoom 向房間內的所有客戶端廣播消息
func (s *RoomChannel) BroadcastToRoom(roomID uint, message *models.RoomMessage) {
	s.clientsMux.RLock()
	clients := s.clients[roomID]
	s.clientsMux.RUnlock()

	for client := range clients {
		select {
		case client.SendChan <- message:
			// 消息成功加入發送隊列
		default:
			// 客戶端消息隊列已滿，關閉連接
			s.removeClient(client)
			client.Conn.Close()
		}
	}
}

// BroadcastSystemMessage 發送系統消息到指定房間
func (s *RoomChannel) BroadcastSystemMessage(roomID uint, content string) {
	s.BroadcastToRoom(roomID, models.NewSystemMessage(roomID, content))
}

// addClient 安全地添加新的客戶端連接
func (s *RoomChannel) addClient(client *Client) {
	s.clientsMux.Lock()
	if s.clients[client.RoomID] == nil {
		s.clients[client.RoomID] = make(map[*Client]bool)
	}
	s.clients[client.RoomID][client] = true
	s.clientsMux.Unlock()

	// 加入通知必須在釋放鎖之後發送，BroadcastToRoom 會再取讀鎖
	s.BroadcastSystemMessage(client.RoomID,
		fmt.Sprintf("用戶 %d 加入房間", client.UserID))
}

// removeClient 安全地移除客戶端連接
func (s *RoomChannel) removeClient(client *Client) {
	s.clientsMux.Lock()
	defer s.clientsMux.Unlock()

	if clients, ok := s.clients[client.RoomID]; ok {
		delete(clients, client)
		// 如果房間空了，刪除房間
		if len(clients) == 0 {
			delete(s.clients, client.RoomID)
		}
	}
}

// GetRoomClients 獲取指定房間的在線客戶端數量
func (s *RoomChannel) GetRoomClients(roomID uint) int {
	s.clientsMux.RLock()
	defer s.clientsMux.RUnlock()

	return len(s.clients[roomID])
}
