package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"pet-game/config"
	"pet-game/internal/handler"
	"pet-game/internal/model"
	"pet-game/internal/repository"
	"pet-game/internal/service"
	dbPkg "pet-game/pkg/db"
	"pet-game/pkg/jwt"
	"pet-game/pkg/logger"
	redisPkg "pet-game/pkg/redis"
	"pet-game/pkg/response"
	"pet-game/pkg/websocket"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"go.uber.org/zap"
)

func main() {
	// 1. 加载环境变量与配置
	_ = godotenv.Load()
	cfg := config.LoadConfig()

	// 2. 初始化日志系统
	log := logger.InitLogger(cfg.Log)
	defer log.Sync()

	log.Info("=== 宠物养成服务启动 ===")
	log.Info("服务器配置信息",
		zap.String("port", cfg.Server.Port),
		zap.String("database_host", cfg.Database.Host),
		zap.Int("database_port", cfg.Database.Port),
		zap.String("database_name", cfg.Database.Database),
		zap.Duration("jwt_expire_time", cfg.JWT.ExpireTime),
		zap.String("log_level", cfg.Log.Level),
	)

	// 3. 初始化数据库连接
	if _, err := dbPkg.InitDB(cfg.Database); err != nil {
		log.Fatal("数据库连接失败", zap.Error(err))
	}
	defer func() {
		if err := dbPkg.CloseDB(); err != nil {
			log.Error("关闭数据库连接失败", zap.Error(err))
		}
	}()
	log.Info("数据库连接成功")

	// 3.1 自动迁移表结构
	if err := dbPkg.AutoMigrate(
		&model.User{},
		&model.UserPreference{},
		&model.Pet{},
		&model.PetCooldown{},
		&model.Friendship{},
		&model.FriendRequest{},
		&model.Invitation{},
		&model.UserAchievement{},
		&model.Notification{},
	); err != nil {
		log.Fatal("自动迁移失败", zap.Error(err))
	}
	log.Info("自动迁移完成")

	// 3.2 初始化Redis
	if err := redisPkg.InitRedis(cfg.Redis); err != nil {
		log.Fatal("Redis连接失败", zap.Error(err))
	}
	defer func() {
		if err := redisPkg.Close(); err != nil {
			log.Error("关闭Redis连接失败", zap.Error(err))
		}
	}()
	log.Info("Redis连接成功")

	// 3.3 初始化业务服务
	jwtSvc := jwt.NewJWTService(cfg.JWT)
	orm := dbPkg.GetDB()

	userRepo := repository.NewUserRepository()
	petRepo := repository.NewPetRepository(orm)
	friendRepo := repository.NewFriendRepository(orm)
	inviteRepo := repository.NewInvitationRepository(orm)
	achRepo := repository.NewAchievementRepository(orm)
	notifyRepo := repository.NewNotificationRepository(orm)

	achSvc := service.NewAchievementService(achRepo, userRepo, notifyRepo)
	presenceSvc := service.NewPresenceService(userRepo, cfg.Game.PlayingRevert)
	petSvc := service.NewPetService(petRepo, userRepo, achSvc, presenceSvc, cfg.Game)
	achSvc.BindExperienceSink(petSvc)
	userSvc := service.NewUserService(userRepo, achSvc, jwtSvc)
	friendSvc := service.NewFriendService(friendRepo, userRepo, petRepo, notifyRepo, achSvc,
		cfg.Game.SearchMinLength, cfg.Game.SearchLimit)
	inviteSvc := service.NewInvitationService(inviteRepo, friendRepo, userRepo, notifyRepo, cfg.Game.InviteTTL)
	notifySvc := service.NewNotificationService(notifyRepo)

	userHandler := handler.NewUserHandler(userSvc)
	petHandler := handler.NewPetHandler(petSvc)
	friendHandler := handler.NewFriendHandler(friendSvc, userSvc)
	inviteHandler := handler.NewInvitationHandler(inviteSvc, userSvc)
	achHandler := handler.NewAchievementHandler(achSvc)
	notifyHandler := handler.NewNotificationHandler(notifySvc)

	// 4. 设置Gin模式
	if os.Getenv("GIN_MODE") == "" {
		gin.SetMode(gin.ReleaseMode)
	}

	// 5. 创建Gin路由
	router := gin.New()

	// 注入配置到Gin context，供WebSocket使用
	router.Use(func(c *gin.Context) {
		c.Set("jwt_config", cfg.JWT)
		c.Set("ws_config", cfg.WebSocket)
		c.Next()
	})

	router.Use(logger.RequestLogger())
	router.Use(logger.ErrorLoggerMiddleware())

	// 6. 基础路由
	setupBasicRoutes(router)

	// 6.1 业务路由
	v1 := router.Group("/api/v1")
	{
		users := v1.Group("/users")
		{
			// 公开接口（无需认证）
			users.POST("/register", userHandler.Register)
			users.POST("/login", userHandler.Login)

			authUsers := users.Group("")
			authUsers.Use(jwtSvc.AuthMiddleware())
			{
				authUsers.POST("/logout", userHandler.Logout)
				authUsers.GET("/profile", userHandler.GetProfile)
				authUsers.GET("/preferences", userHandler.GetPreferences)
				authUsers.PUT("/preferences", userHandler.UpdatePreferences)
				authUsers.GET("/search", friendHandler.SearchUsers)
			}
		}

		// 宠物路由（需要认证）
		pet := v1.Group("/pet")
		pet.Use(jwtSvc.AuthMiddleware())
		{
			pet.GET("", petHandler.GetPet)                 // 宠物状态
			pet.POST("", petHandler.CreatePet)             // 创建宠物
			pet.POST("/interact", petHandler.Interact)     // 活动互动
			pet.POST("/care/:action", petHandler.Care)     // 照料动作
			pet.GET("/activities", petHandler.ListActivities)
		}

		// 好友路由（需要认证）
		friends := v1.Group("/friends")
		friends.Use(jwtSvc.AuthMiddleware())
		{
			friends.GET("", friendHandler.ListFriends)
			friends.DELETE("/:id", friendHandler.RemoveFriend)
			friends.GET("/requests", friendHandler.ListRequests)
			friends.POST("/requests", friendHandler.SendRequest)
			friends.PUT("/requests/:id", friendHandler.RespondRequest)
		}

		// 游戏邀请路由（需要认证）
		invites := v1.Group("/invitations")
		invites.Use(jwtSvc.AuthMiddleware())
		{
			invites.GET("", inviteHandler.List)
			invites.POST("", inviteHandler.Send)
			invites.GET("/pending", inviteHandler.ListPending)
			invites.PUT("/:id", inviteHandler.Respond)
		}

		// 成就路由（需要认证）
		achievements := v1.Group("/achievements")
		achievements.Use(jwtSvc.AuthMiddleware())
		{
			achievements.GET("", achHandler.List)
			achievements.GET("/recent", achHandler.Recent)
			achievements.GET("/:category", achHandler.ListByCategory)
		}

		// 通知路由（需要认证）
		notifications := v1.Group("/notifications")
		notifications.Use(jwtSvc.AuthMiddleware())
		{
			notifications.GET("", notifyHandler.List)
			notifications.GET("/unread", notifyHandler.UnreadCount)
			notifications.PUT("/:id/read", notifyHandler.MarkRead)
			notifications.PUT("/read-all", notifyHandler.MarkAllRead)
		}
	}

	// WebSocket路由
	router.GET("/ws", websocket.WsHandler)

	// 7. 创建HTTP服务器
	server := &http.Server{
		Addr:         ":" + cfg.Server.Port,
		Handler:      router,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  cfg.Server.IdleTimeout,
	}

	// 8. 启动HTTP服务器
	go func() {
		log.Info("HTTP服务器启动", zap.String("port", cfg.Server.Port))
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Error("HTTP服务器启动失败", zap.Error(err))
		}
	}()

	// 9. 优雅关闭
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info("正在关闭服务器...")

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := server.Shutdown(ctx); err != nil {
		log.Error("HTTP服务器关闭失败", zap.Error(err))
	}

	log.Info("服务器已安全关闭")
}

// setupBasicRoutes 设置基础路由
func setupBasicRoutes(router *gin.Engine) {
	// 健康检查
	router.GET("/health", func(c *gin.Context) {
		status := "ok"
		if err := dbPkg.HealthCheck(); err != nil {
			status = "db-down"
		} else if err := redisPkg.HealthCheck(); err != nil {
			status = "redis-down"
		}
		response.Success(c, gin.H{
			"status": status,
			"online": websocket.GetManager().OnlineCount(),
			"time":   time.Now().Format(time.RFC3339),
		})
	})

	// 根路径
	router.GET("/", func(c *gin.Context) {
		response.Success(c, gin.H{
			"message": "欢迎来到宠物乐园",
			"version": "1.0.0",
		})
	})

	// 配置信息路由（系统状态监控）
	router.GET("/config", func(c *gin.Context) {
		cfg := config.LoadConfig()
		response.Success(c, gin.H{
			"server": gin.H{
				"port": cfg.Server.Port,
			},
			"database": gin.H{
				"host":     cfg.Database.Host,
				"port":     cfg.Database.Port,
				"database": cfg.Database.Database,
				"driver":   cfg.Database.Driver,
			},
			"jwt": gin.H{
				"expireTime": cfg.JWT.ExpireTime.String(),
				"issuer":     cfg.JWT.Issuer,
			},
			"game": gin.H{
				"inviteTTL":     cfg.Game.InviteTTL.String(),
				"playingRevert": cfg.Game.PlayingRevert.String(),
				"searchMin":     cfg.Game.SearchMinLength,
				"searchLimit":   cfg.Game.SearchLimit,
			},
		})
	})
}
