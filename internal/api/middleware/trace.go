package middleware

import (
	"Bloghouse/internal/pkg/logger"
	"context"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

const (
	TraceHeader     = "X-Trace-ID"
	maxTraceIDBytes = 64
)

// TraceMiddleware 复用上游网关传入的 trace id；缺失或不可信时生成新的 uuid。
// trace id 会原样写入日志与响应头，因此只接受短的 [A-Za-z0-9._-] 串。
func TraceMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		traceID := c.GetHeader(TraceHeader)
		if !acceptableTraceID(traceID) {
			traceID = uuid.NewString()
		}

		c.Set(logger.TraceIDKey, traceID)
		c.Request = c.Request.WithContext(context.WithValue(c.Request.Context(), logger.TraceIDKey, traceID))
		c.Header(TraceHeader, traceID)
		c.Next()
	}
}

func acceptableTraceID(id string) bool {
	if id == "" || len(id) > maxTraceIDBytes {
		return false
	}
	for i := 0; i < len(id); i++ {
		ch := id[i]
		switch {
		case ch >= 'a' && ch <= 'z', ch >= 'A' && ch <= 'Z', ch >= '0' && ch <= '9':
		case ch == '-', ch == '_', ch == '.':
		default:
			return false
		}
	}
	return true
}
