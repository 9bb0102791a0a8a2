package middleware

import (
	"log"
	"net/http"
	"runtime/debug"

	"github.com/cydxin/party-sdk/response"
	"github.com/gin-gonic/gin"
)

// Recovery panic -> 500，打印堆栈
func Recovery() gin.HandlerFunc {
	return func(c *gin.Context) {
		defer func() {
			if r := recover(); r != nil {
				log.Printf("[PANIC] %s %s: %v\n%s", c.Request.Method, c.Request.URL.Path, r, debug.Stack())
				c.AbortWithStatusJSON(http.StatusInternalServerError, response.Error(response.CodeInternalError, "internal error"))
			}
		}()
		c.Next()
	}
}
