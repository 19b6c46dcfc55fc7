package middleware

import (
	"bytes"
	"io"
	log "log/slog"
	"net/http"
	"net/url"
	"time"
	"unicode/utf8"

	"github.com/gin-gonic/gin"
)

const defaultAuditBodyLimit = 16384

type responseBodyWriter struct {
	gin.ResponseWriter
	body  *bytes.Buffer
	limit int
	full  bool
}

func (r *responseBodyWriter) Write(b []byte) (int, error) {
	if !r.full {
		kept := cutUTF8(b, r.limit-r.body.Len())
		r.body.Write(kept)
		r.full = len(kept) < len(b)
	}
	return r.ResponseWriter.Write(b)
}

func (r *responseBodyWriter) Flush() {
	if flusher, ok := r.ResponseWriter.(http.Flusher); ok {
		flusher.Flush()
	}
}

// AuditMiddleware 记录请求与响应体，两者都截断到 limit 字节
func AuditMiddleware(limit int) gin.HandlerFunc {
	if limit <= 0 {
		limit = defaultAuditBodyLimit
	}
	return func(c *gin.Context) {
		ctx := c.Request.Context()

		var reqBody []byte
		if c.Request.Body != nil {
			reqBody, _ = io.ReadAll(c.Request.Body)
			c.Request.Body = io.NopCloser(bytes.NewBuffer(reqBody))
		}

		rawQuery := c.Request.URL.RawQuery
		decodedQuery, err := url.QueryUnescape(rawQuery)
		if err != nil {
			decodedQuery = rawQuery
		}

		log.InfoContext(ctx, "Recv Request",
			log.String("method", c.Request.Method),
			log.String("path", c.Request.URL.Path),
			log.String("query", decodedQuery),
			log.String("req_body", truncate(reqBody, limit)),
		)

		w := &responseBodyWriter{body: &bytes.Buffer{}, ResponseWriter: c.Writer, limit: limit}
		c.Writer = w
		startTime := time.Now()

		c.Next()

		log.InfoContext(ctx, "Send Response",
			log.Int("status", c.Writer.Status()),
			log.Duration("latency", time.Since(startTime)),
			log.String("res_body", w.body.String()),
		)
	}
}

func truncate(b []byte, limit int) string {
	return string(cutUTF8(b, limit))
}

// cutUTF8 截断到不超过 limit 字节，且不拆开多字节字符
func cutUTF8(b []byte, limit int) []byte {
	if len(b) <= limit {
		return b
	}
	if limit <= 0 {
		return b[:0]
	}
	i := limit
	for i > 0 && !utf8.RuneStart(b[i]) {
		i--
	}
	return b[:i]
}
