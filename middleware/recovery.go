package middleware

import (
	"fmt"
	"log"
	"net/http"
	"runtime/debug"

	"pet-blog-api/pkg/response"

	"github.com/gin-gonic/gin"
)

// Recovery 自定义恢复中间件，堆栈只进日志不出响应
func Recovery() gin.HandlerFunc {
	return gin.CustomRecovery(func(c *gin.Context, recovered interface{}) {
		err := fmt.Sprintf("panic recovered: %v", recovered)
		stack := string(debug.Stack())

		log.Printf("[PANIC RECOVERY] %s\n%s", err, stack)

		response.Error(c, http.StatusInternalServerError, "Something went wrong!")
		c.Abort()
	})
}

// NotFoundHandler 未匹配路由的统一404响应
func NotFoundHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		response.Error(c, http.StatusNotFound, "Route not found")
	}
}
