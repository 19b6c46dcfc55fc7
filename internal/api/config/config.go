package config

// Config 配置主体
type Config struct {
	Server ServerConfig `mapstructure:"server"`
	DB     DBConfig     `mapstructure:"database"`
	Logger LoggerConfig `mapstructure:"logger"`
	Auth   AuthConfig   `mapstructure:"auth"`
	App    AppConfig    `mapstructure:"app"`
}

// ServerConfig HTTP server settings
type ServerConfig struct {
	Port            int    `mapstructure:"port"`
	BasePath        string `mapstructure:"base_path"`
	ShutdownTimeout int    `mapstructure:"shutdown_timeout"`
}

// DBConfig database connection; Driver is one of mysql, postgres, sqlite
type DBConfig struct {
	Driver      string `mapstructure:"driver"`
	DSN         string `mapstructure:"dsn"`
	MaxIdle     int    `mapstructure:"max_idle"`
	MaxOpen     int    `mapstructure:"max_open"`
	MaxLifetime int    `mapstructure:"max_lifetime"`
	SlowQueryMs int    `mapstructure:"slow_query_ms"`
}

type LoggerConfig struct {
	Level           string `mapstructure:"level"`
	LogstashAddress string `mapstructure:"logstash_address"`
	LogstashIndex   string `mapstructure:"logstash_index"`
	LogstashToken   string `mapstructure:"logstash_token"`
	AuditBodyLimit  int    `mapstructure:"audit_body_limit"`
}

type AuthConfig struct {
	JWTSecret string `mapstructure:"jwt_secret"`
	// TokenTTL in hours
	TokenTTL int    `mapstructure:"token_ttl"`
	Issuer   string `mapstructure:"issuer"`
	// ProtectCategories 为 false 时分类写接口不要求 token，兼容不带凭证的旧管理前端；帖子写接口始终鉴权
	ProtectCategories bool `mapstructure:"protect_categories"`
}

type AppConfig struct {
	Locale            string `mapstructure:"locale"`
	RootCategoryTitle string `mapstructure:"root_category_title"`
}
