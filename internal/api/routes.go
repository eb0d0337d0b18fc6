package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"debate_arena/internal/api/handlers"
	"debate_arena/internal/middleware"
	"debate_arena/internal/service"
)

func SetupRoutes(r *gin.Engine, services *service.Services) {
	// 初始化 handlers
	authHandler := handlers.NewAuthHandler(services.User)
	userHandler := handlers.NewUserHandler(services.User)
	friendHandler := handlers.NewFriendHandler(services.Friend)
	roomHandler := handlers.NewRoomHandler(services.Room, services.RoomChannel)
	wsHandler := handlers.NewWebSocketHandler(services.RoomChannel, services.Room)

	// API 路由群組
	api := r.Group("/api")

	// 處理 404 錯誤
	r.NoRoute(func(c *gin.Context) {
		c.JSON(http.StatusNotFound, gin.H{
			"error": "Route not found",
		})
	})

	// 公開路由
	{
		// 用戶認證相關
		api.POST("/auth/sign-up", authHandler.SignUp)
		api.POST("/auth/sign-in", authHandler.SignIn)

		// 基本的健康檢查
		api.GET("/health", func(c *gin.Context) {
			c.JSON(http.StatusOK, gin.H{
				"status": "ok",
			})
		})
	}

	// 需要驗證的路由
	authorized := api.Group("/")
	authorized.Use(middleware.AuthMiddleware())
	{
		authorized.GET("/auth/whoami", authHandler.WhoAmI)

		// 用戶目錄
		users := authorized.Group("/users")
		{
			users.GET("", userHandler.GetUsers)
			users.GET("/:id", userHandler.GetUser)
			users.PUT("/:id", userHandler.UpdateUser)
		}

		// 好友邀請
		invites := authorized.Group("/invites")
		{
			invites.POST("/send/:userId", friendHandler.SendInvite)
			invites.PUT("/accept/:id", friendHandler.AcceptInvite)
			invites.PUT("/reject/:id", friendHandler.RejectInvite)
			invites.GET("/:id", friendHandler.GetInvite)
		}

		// 好友
		friends := authorized.Group("/friends")
		{
			friends.GET("", friendHandler.GetFriends)
			friends.GET("/received-invites", friendHandler.GetReceivedInvites)
			friends.GET("/sent-invites", friendHandler.GetSentInvites)
			friends.GET("/:id", friendHandler.GetFriend)
			friends.DELETE("/:id", friendHandler.DeleteFriend)
		}

		// 辯論室相關
		rooms := authorized.Group("/rooms")
		{
			// 基本操作
			rooms.POST("", roomHandler.CreateRoom)
			rooms.GET("/is-live", roomHandler.IsLive)
			rooms.GET("/history", roomHandler.GetEndedRooms)
			rooms.GET("/public", roomHandler.GetPublicRooms)
			rooms.GET("/:id", roomHandler.GetRoom)

			// 生命週期
			rooms.PUT("/:id/start", roomHandler.StartRoom)
			rooms.PUT("/:id/pause", roomHandler.PauseRoom)
			rooms.PUT("/:id/resume", roomHandler.ResumeRoom)
			rooms.PUT("/:id/end", roomHandler.EndRoom)
			rooms.PUT("/:id/grade", roomHandler.GradeRoom)

			// 房間參與
			rooms.PUT("/:id/join", roomHandler.JoinRoom)
			rooms.PUT("/:id/leave", roomHandler.LeaveRoom)

			// 公開列表和按讚
			rooms.PUT("/:id/publish", roomHandler.PublishRoom)
			rooms.PUT("/:id/unpublish", roomHandler.UnpublishRoom)
			rooms.PUT("/:id/like", roomHandler.LikeRoom)
			rooms.PUT("/:id/unlike", roomHandler.UnlikeRoom)

			// 辯論消息
			rooms.GET("/:id/messages", roomHandler.GetRoomMessages)

			// WebSocket 連接點
			rooms.GET("/:id/ws", wsHandler.HandleWebSocket)
		}
	}
}
