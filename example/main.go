package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os/signal"
	"strconv"
	"syscall"
	"time"

	party "github.com/cydxin/party-sdk"
	"github.com/cydxin/party-sdk/middleware"
	"github.com/cydxin/party-sdk/response"
	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
	"gorm.io/driver/mysql"
	"gorm.io/gorm"
)

func main() {
	log.SetPrefix("party-example: ")

	cfg, err := loadConfig()
	if err != nil {
		log.Fatal(err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	// 1. 初始化数据库连接（唯一键冲突要翻译成 gorm.ErrDuplicatedKey）
	db, err := gorm.Open(mysql.Open(cfg.MySQLDSN), &gorm.Config{TranslateError: true})
	if err != nil {
		log.Fatal("数据库连接失败:", err)
	}

	// 2. Redis：token 模式鉴权用
	var rdb *redis.Client
	if cfg.AuthMode == authModeToken {
		rdb = redis.NewClient(&redis.Options{Addr: cfg.RedisAddr, Password: cfg.RedisPassword, DB: cfg.RedisDB})
		if err := rdb.Ping(ctx).Err(); err != nil {
			log.Fatal("Redis 连接失败:", err)
		}
		defer func() { _ = rdb.Close() }()
	}

	// 3. 初始化 Party Engine
	engine, err := party.NewEngine(
		party.WithDB(db),
		party.WithRDB(rdb),
		party.WithAutoMigrate(cfg.AutoMigrate),
		party.WithHeartbeatInterval(cfg.HeartbeatInterval),
		party.WithChannelTimeout(cfg.ChannelTimeout),
		party.WithNotifyUnchangedDecision(cfg.NotifyUnchangedDecision),
		party.WithServiceDebug(cfg.Debug),
	)
	if err != nil {
		log.Fatal("engine 初始化失败:", err)
	}
	defer engine.Close()

	// 4. 路由
	if !cfg.Debug {
		gin.SetMode(gin.ReleaseMode)
	}
	r := gin.New()
	r.Use(gin.Logger(), middleware.Recovery(), middleware.CORS([]string{"*"}))
	party.RegisterSwagger(r, "/swagger/*any")

	auth := engine.GinAuthMiddleware(nil)
	if cfg.AuthMode == authModeJWT {
		auth = middleware.JWTAuth(cfg.JWTSecret)
	}
	if cfg.Debug {
		registerDevLogin(r, engine, cfg)
	}
	engine.RegisterRoutes(r.Group("/api/v1"), auth)

	// 5. 启动服务器；SSE/WS 是长连接，不设 WriteTimeout
	srv := &http.Server{
		Addr:              cfg.Addr,
		Handler:           r,
		ReadHeaderTimeout: 10 * time.Second,
	}
	go func() {
		log.Printf("Party Server 启动在 %s（auth=%s）", cfg.Addr, cfg.AuthMode)
		log.Printf("Swagger UI: http://localhost%s/swagger/index.html", cfg.Addr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal("服务器启动失败:", err)
		}
	}()

	<-ctx.Done()
	log.Println("shutting down...")

	// 先断开长连接，Shutdown 才不会一直等在 SSE handler 上
	engine.Close()
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Printf("shutdown: %v", err)
	}
}

// registerDevLogin 调试用：直接给指定 user_id 签发 token，账号体系不在本 SDK 内
func registerDevLogin(r *gin.Engine, engine *party.PartyEngine, cfg Config) {
	r.POST("/dev/token/:userId", func(c *gin.Context) {
		uid, err := strconv.ParseUint(c.Param("userId"), 10, 64)
		if err != nil || uid == 0 {
			c.JSON(http.StatusBadRequest, response.Error(response.CodeParamError, "invalid userId"))
			return
		}

		var token string
		if cfg.AuthMode == authModeJWT {
			token, err = middleware.GenerateJWT(cfg.JWTSecret, uid, c.Query("role"), 24*time.Hour)
		} else {
			token, err = engine.AuthService.IssueToken(c.Request.Context(), uid, 24*time.Hour)
		}
		if err != nil {
			c.JSON(http.StatusInternalServerError, response.Error(response.CodeInternalError, err.Error()))
			return
		}
		c.JSON(http.StatusOK, response.Success(gin.H{"token": token}))
	})
	log.Println("dev login enabled: POST /dev/token/:userId")
}
