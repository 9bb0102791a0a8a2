package middleware

import (
	"context"
	"net/http"
	"strings"

	"github.com/cydxin/party-sdk/response"
	"github.com/gin-gonic/gin"
)

const (
	// ContextUserIDKey gin context 里保存 user id 的 key
	ContextUserIDKey = "user_id"
	ContextTokenKey  = "token"
	ContextRoleKey   = "role"
)

// Authenticator token -> userID，service.AuthService 实现了它
type Authenticator interface {
	Authenticate(ctx context.Context, token string) (uint64, error)
}

// AuthOptions 可选配置。
type AuthOptions struct {
	// HeaderKey 默认 Authorization
	HeaderKey string
	// QueryKey 默认 token
	QueryKey string
	// UserIDKey 默认 user_id
	UserIDKey string
	// TokenKey 默认 token
	TokenKey string
}

func (o *AuthOptions) withDefaults() AuthOptions {
	if o == nil {
		return AuthOptions{HeaderKey: "Authorization", QueryKey: "token", UserIDKey: ContextUserIDKey, TokenKey: ContextTokenKey}
	}
	out := *o
	if out.HeaderKey == "" {
		out.HeaderKey = "Authorization"
	}
	if out.QueryKey == "" {
		out.QueryKey = "token"
	}
	if out.UserIDKey == "" {
		out.UserIDKey = ContextUserIDKey
	}
	if out.TokenKey == "" {
		out.TokenKey = ContextTokenKey
	}
	return out
}

/*
	GinAuthMiddleware Gin 鉴权中间件：

- 优先从 Authorization: Bearer <token> 读取
- 如果没有，再从 query 参数读取（默认 token=xxx，EventSource 无法设置 header）
- 校验 token -> userID（Redis）成功后，写入 gin.Context

使用：router.Use(middleware.GinAuthMiddleware(authService, nil))
*/
func GinAuthMiddleware(auth Authenticator, opt *AuthOptions) gin.HandlerFunc {
	cfg := opt.withDefaults()

	return func(c *gin.Context) {
		if auth == nil {
			c.AbortWithStatusJSON(http.StatusInternalServerError, response.Error(response.CodeInternalError, "auth service is nil"))
			return
		}

		token := bearerToken(c.GetHeader(cfg.HeaderKey))
		if token == "" {
			token = strings.TrimSpace(c.Query(cfg.QueryKey))
		}
		if token == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, response.Error(response.CodeTokenInvalid, "missing token"))
			return
		}

		uid, err := auth.Authenticate(c.Request.Context(), token)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, response.Error(response.CodeTokenInvalid, err.Error()))
			return
		}

		c.Set(cfg.UserIDKey, uid)
		c.Set(cfg.TokenKey, token)
		c.Next()
	}
}

// bearerToken Authorization: Bearer <token>，scheme 不区分大小写
func bearerToken(header string) string {
	header = strings.TrimSpace(header)
	scheme, token, ok := strings.Cut(header, " ")
	if !ok || !strings.EqualFold(scheme, "Bearer") {
		return ""
	}
	return strings.TrimSpace(token)
}

// UserID 取出鉴权中间件写入的用户 id
func UserID(c *gin.Context) (uint64, bool) {
	v, ok := c.Get(ContextUserIDKey)
	if !ok {
		return 0, false
	}
	uid, ok := v.(uint64)
	return uid, ok && uid != 0
}
