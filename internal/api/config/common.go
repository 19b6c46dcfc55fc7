package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/viper"
)

// Cfg 全局可访问的配置实例
var Cfg *Config

// EnvPrefix env overrides, e.g. BLOG_DATABASE_DSN
const EnvPrefix = "BLOG"

func setDefaults(v *viper.Viper) {
	v.SetDefault("server.port", 8080)
	v.SetDefault("server.base_path", "/api")
	v.SetDefault("server.shutdown_timeout", 5)

	v.SetDefault("database.driver", "mysql")
	v.SetDefault("database.dsn", "")
	v.SetDefault("database.max_idle", 10)
	v.SetDefault("database.max_open", 50)
	v.SetDefault("database.max_lifetime", 60)
	v.SetDefault("database.slow_query_ms", 200)

	v.SetDefault("logger.level", "info")
	v.SetDefault("logger.logstash_address", "")
	v.SetDefault("logger.logstash_token", "")
	v.SetDefault("logger.logstash_index", "logstash-bloghouse")
	v.SetDefault("logger.audit_body_limit", 16384)

	v.SetDefault("auth.jwt_secret", "")
	v.SetDefault("auth.token_ttl", 24)
	v.SetDefault("auth.issuer", "Bloghouse")
	v.SetDefault("auth.protect_categories", true)

	v.SetDefault("app.locale", "uk")
	v.SetDefault("app.root_category_title", "Без категорії")
}

// LoadConfig 从 ./configs/config.yaml 加载配置并填充到 Cfg
func LoadConfig() error {
	return LoadConfigFrom("")
}

// LoadConfigFrom reads the given file, or ./configs/config.yaml when path is
// empty. A missing default file is not an error: defaults and env still apply.
func LoadConfigFrom(path string) error {
	v := viper.New()
	setDefaults(v)

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if path != "" {
		v.SetConfigFile(path)
	} else {
		v.SetConfigName("config")
		v.SetConfigType("yaml")
		v.AddConfigPath("./configs")
	}

	if err := v.ReadInConfig(); err != nil {
		var configFileNotFoundError viper.ConfigFileNotFoundError
		if path != "" || !errors.As(err, &configFileNotFoundError) {
			return fmt.Errorf("failed to read config: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return fmt.Errorf("failed to unmarshal config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return err
	}

	Cfg = &cfg

	return nil
}

// Validate rejects settings the server cannot start with.
func (c *Config) Validate() error {
	switch c.DB.Driver {
	case "mysql", "postgres", "sqlite":
	default:
		return fmt.Errorf("unsupported database driver %q", c.DB.Driver)
	}
	if c.DB.DSN == "" {
		return errors.New("database.dsn is required")
	}
	if c.Auth.JWTSecret == "" {
		return errors.New("auth.jwt_secret is required")
	}
	return nil
}
