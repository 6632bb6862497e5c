package handler

import (
	"fmt"
	"net/http"
	"slices"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// RequestIDHeader リクエストIDを受け渡すヘッダー
const RequestIDHeader = "X-Request-ID"

const requestIDKey = "request_id"

// RequestID 呼び出し元のX-Request-IDを再利用し、なければ新しいUUIDを割り当てる
func RequestID() gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.GetHeader(RequestIDHeader)
		if _, err := uuid.Parse(id); err != nil {
			id = uuid.New().String()
		}
		c.Set(requestIDKey, id)
		c.Header(RequestIDHeader, id)
		c.Next()
	}
}

// GetRequestID RequestIDで割り当てたIDを返す（なければ""）
func GetRequestID(c *gin.Context) string {
	return c.GetString(requestIDKey)
}

// CORS ブラウザのUIからのAPI呼び出しを許可する（空のリストまたは"*"で全オリジンを許可）
func CORS(allowedOrigins []string) gin.HandlerFunc {
	cfg := cors.Config{
		AllowMethods:  []string{http.MethodGet, http.MethodPost, http.MethodOptions},
		AllowHeaders:  []string{"Origin", "Content-Type", RequestIDHeader},
		ExposeHeaders: []string{RequestIDHeader},
		MaxAge:        12 * time.Hour,
	}
	if len(allowedOrigins) == 0 || slices.Contains(allowedOrigins, "*") {
		cfg.AllowAllOrigins = true
	} else {
		cfg.AllowOrigins = allowedOrigins
	}
	return cors.New(cfg)
}

// AccessLogFormatter ginのデフォルトのアクセスログにリクエストIDを追加したフォーマット
func AccessLogFormatter(param gin.LogFormatterParams) string {
	id, _ := param.Keys[requestIDKey].(string)
	return fmt.Sprintf("[GIN] %v | %s | %3d | %13v | %15s | %-7s %#v\n%s",
		param.TimeStamp.Format("2006/01/02 - 15:04:05"),
		id,
		param.StatusCode,
		param.Latency,
		param.ClientIP,
		param.Method,
		param.Path,
		param.ErrorMessage,
	)
}
