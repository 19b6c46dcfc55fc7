package logger

import (
	"Bloghouse/internal/api/config"
	"io"
	log "log/slog"
	"net"
	"os"
	"strings"
	"time"
)

// LogWriter gin 访问日志的输出目标
var LogWriter io.Writer = os.Stdout

// InitLogger 设置默认 slog：stdout JSON，若配置了 Logstash 则同时以 TCP 上报
func InitLogger(cfg config.LoggerConfig) {
	level := ParseLevel(cfg.Level)
	hStdout := log.NewJSONHandler(os.Stdout, &log.HandlerOptions{Level: level})

	var finalHandler log.Handler = hStdout
	LogWriter = os.Stdout

	if cfg.LogstashAddress != "" {
		conn, err := net.DialTimeout("tcp", cfg.LogstashAddress, 3*time.Second)
		if err == nil {
			hRemote := log.NewJSONHandler(conn, &log.HandlerOptions{Level: level}).
				WithAttrs([]log.Attr{
					log.String("target_index", cfg.LogstashIndex),
					log.String("log_token", cfg.LogstashToken),
				})

			finalHandler = &TeeHandler{
				handlers: []log.Handler{hStdout, &RemoteFilterHandler{next: hRemote}},
			}
			LogWriter = io.MultiWriter(os.Stdout, conn)
		} else {
			log.Warn("Failed to connect to Logstash, logging to stdout only", "err", err)
		}
	}

	log.SetDefault(log.New(&ContextHandler{finalHandler}))
}

func ParseLevel(level string) log.Level {
	switch strings.ToLower(level) {
	case "debug":
		return log.LevelDebug
	case "warn", "warning":
		return log.LevelWarn
	case "error":
		return log.LevelError
	default:
		return log.LevelInfo
	}
}
