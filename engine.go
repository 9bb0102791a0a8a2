package party_sdk

import (
	"context"
	"errors"
	"log"
	"net/http"
	"sync"

	"github.com/cydxin/party-sdk/middleware"
	"github.com/cydxin/party-sdk/repository"
	"github.com/cydxin/party-sdk/service"
	"github.com/gin-gonic/gin"
)

type PartyEngine struct {
	config *Config

	PartyService        *service.PartyService
	CommentService      *service.CommentService
	NotificationService *service.NotificationService
	AuthService         *service.AuthService // 鉴权服务（需要 RDB）

	Registry  *Registry
	Heartbeat *Heartbeat

	stop      context.CancelFunc
	wg        sync.WaitGroup
	closeOnce sync.Once
}

var ErrNoStore = errors.New("party engine: DB or Store is required")

// NewEngine 创建实例
// 使用选项模式传入配置，Option回调。
// 返回前已启动心跳 goroutine，调用方负责 Close。
func NewEngine(opts ...Option) (*PartyEngine, error) {
	c := defaultConfig()
	for _, opt := range opts {
		opt(c)
	}

	if c.Store == nil {
		if c.DB == nil {
			return nil, ErrNoStore
		}
		c.Store = repository.NewGormStore(c.DB)
	}
	if c.Users == nil || c.Themes == nil {
		if c.DB == nil {
			return nil, errors.New("party engine: DB or UserDirectory/ActivityCatalog is required")
		}
		dir := repository.NewUserDAO(c.DB)
		if c.Users == nil {
			c.Users = dir
		}
		if c.Themes == nil {
			c.Themes = dir
		}
	}

	e := &PartyEngine{config: c}

	if c.AutoMigrate {
		if err := e.AutoMigrate(); err != nil {
			return nil, err
		}
	}

	e.Registry = NewRegistry()
	e.Registry.debug = c.Service.Debug
	e.Heartbeat = NewHeartbeat(e.Registry, c.Live.HeartbeatInterval)

	// 初始化基础 Service，注入在线推送回调
	base := service.NewService(c.Store, c.Users, c.Themes, service.Config{
		NotifyUnchangedDecision: c.Party.NotifyUnchangedDecision,
		Debug:                   c.Service.Debug,
	})
	base.RDB = c.RDB
	base.LivePush = e.Registry.Push

	e.PartyService = service.NewPartyService(base)
	e.CommentService = service.NewCommentService(base)
	e.NotificationService = base.Notify
	if c.RDB != nil {
		e.AuthService = service.NewAuthService(c.RDB)
	}

	ctx, cancel := context.WithCancel(context.Background())
	e.stop = cancel
	e.wg.Add(1)
	go func() {
		defer e.wg.Done()
		e.Heartbeat.Run(ctx)
	}()

	return e, nil
}

// Close 停止心跳并断开全部在线通道，可重复调用
func (e *PartyEngine) Close() {
	e.closeOnce.Do(func() {
		e.stop()
		e.wg.Wait()
		e.Registry.Close()
	})
}

// ServeSSE 建立 SSE 订阅并阻塞到连接结束
func (e *PartyEngine) ServeSSE(w http.ResponseWriter, r *http.Request, userID uint64) error {
	ch := NewSSEChannel(w)
	return e.Registry.Serve(r.Context(), userID, ch, e.config.Live.ChannelTimeout)
}

// ServeWS 升级为 WebSocket 并阻塞到连接结束。
// 读超时取两个心跳间隔，客户端回 pong 即续期。
func (e *PartyEngine) ServeWS(w http.ResponseWriter, r *http.Request, userID uint64) error {
	ch, err := UpgradeWS(w, r, 2*e.Heartbeat.interval)
	if err != nil {
		return err
	}
	return e.Registry.Serve(r.Context(), userID, ch, e.config.Live.ChannelTimeout)
}

// GinAuthMiddleware 返回配置好的 Gin 鉴权中间件
// 使用 PartyEngine 内部的 AuthService 和 Redis 配置
//
// 使用示例:
//
//	engine, _ := party_sdk.NewEngine(...)
//	r := gin.Default()
//	r.Use(engine.GinAuthMiddleware(nil)) // 使用默认配置
func (e *PartyEngine) GinAuthMiddleware(opt *middleware.AuthOptions) gin.HandlerFunc {
	if e.AuthService == nil {
		log.Println("party engine: RDB not configured, token auth will reject every request")
		return middleware.GinAuthMiddleware(nil, opt)
	}
	return middleware.GinAuthMiddleware(e.AuthService, opt)
}

// RegisterRoutes 在路由组上注册全部接口；auth 为空时使用 GinAuthMiddleware(nil)。
//
//	api := r.Group("/api/v1")
//	engine.RegisterRoutes(api, middleware.JWTAuth(secret))
func (e *PartyEngine) RegisterRoutes(g *gin.RouterGroup, auth gin.HandlerFunc) {
	if auth == nil {
		auth = e.GinAuthMiddleware(nil)
	}
	g.Use(auth)

	// 同一棵路由树上的通配段必须同名，/party 下统一用 :id
	party := g.Group("/party")
	{
		party.POST("/:id", e.GinHandleCreatePost)
		party.GET("/paged", e.GinHandleListPosts)
		party.GET("/:id", e.GinHandleGetPost)
		party.DELETE("/:id", e.GinHandleDeletePost)

		party.POST("/:id/join", e.GinHandleJoinPost)
		party.DELETE("/:id/join", e.GinHandleCancelJoin)
		party.POST("/join/:joinId/status", e.GinHandleDecideJoin)
		party.GET("/join/notification", e.GinHandleJoinRequests)
		party.GET("/join/status", e.GinHandleMyJoins)

		party.POST("/comment", e.GinHandleAddComment)
		party.GET("/comment/:id", e.GinHandleListComments)
		party.DELETE("/comment/:id", e.GinHandleDeleteComment)
	}

	g.GET("/subscribe", e.GinHandleSubscribe)
	g.GET("/ws", e.GinHandleWS)

	n := g.Group("/notifications")
	{
		n.GET("", e.GinHandleListNotifications)
		n.GET("/unread-count", e.GinHandleUnreadCount)
		n.PATCH("/read-all", e.GinHandleMarkAllNotificationsRead)
		n.PATCH("/:id/read", e.GinHandleMarkNotificationRead)
	}
}
