package main

import (
	"log"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"debate_arena/internal/api"
	"debate_arena/internal/middleware"
	"debate_arena/internal/models"
	"debate_arena/internal/repository"
	"debate_arena/internal/service"
	"debate_arena/internal/storage"
	"debate_arena/internal/utils"
	"debate_arena/pkg/config"
)

func main() {
	// 載入應用程式配置
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	// 初始化 zap 日誌
	logger, err := zap.NewProduction()
	if err != nil {
		log.Fatalf("Failed to initialize logger: %v", err)
	}
	defer logger.Sync()

	// 設定 JWT 簽發參數
	utils.Configure(cfg.JWT.Secret, cfg.JWT.ExpireHours)

	// 初始化資料庫連接
	db, err := storage.NewPostgresDB(cfg.DB.Host, cfg.DB.User, cfg.DB.Password, cfg.DB.Name, cfg.DB.Port)
	if err != nil {
		logger.Fatal("Failed to initialize database", zap.Error(err))
	}
	defer db.Close()

	// 自動遷移資料庫結構
	if err := db.AutoMigrate(&models.User{}, &models.Invite{}, &models.Room{}, &models.RoomMessage{}); err != nil {
		logger.Fatal("Failed to auto migrate database", zap.Error(err))
	}

	// 初始化 repositories 和 services
	repos := repository.NewRepositories(db)
	services := service.NewServices(repos, logger)

	// 設置 Gin 路由
	r := gin.New()
	r.Use(middleware.RequestLogger(logger), gin.Recovery())
	api.SetupRoutes(r, services)

	// 啟動伺服器
	logger.Info("server starting", zap.String("address", cfg.Server.Address))
	if err := r.Run(cfg.Server.Address); err != nil {
		logger.Fatal("Failed to run server", zap.Error(err))
	}
}
