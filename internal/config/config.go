package config

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/rs/zerolog/log"
	"github.com/spf13/viper"
)

const devSecret = "dev-secret-change-me"

type RateLimit struct {
	Burst    int           `mapstructure:"burst"`
	Interval time.Duration `mapstructure:"interval"`
}

// Storage selects the durable backends. Empty values run that store from
// memory only.
type Storage struct {
	SQLitePath   string        `mapstructure:"sqlite_path"`
	RedisAddr    string        `mapstructure:"redis_addr"`
	RedisPrefix  string        `mapstructure:"redis_prefix"`
	RedisTimeout time.Duration `mapstructure:"redis_timeout"`
	UserStateTTL time.Duration `mapstructure:"user_state_ttl"`
}

type Config struct {
	Mode         string        `mapstructure:"mode"`
	Port         int           `mapstructure:"port"`
	StaticPath   string        `mapstructure:"static_path"`
	Secret       string        `mapstructure:"secret"`
	LogLevel     string        `mapstructure:"log_level"`
	ReadLimit    int64         `mapstructure:"read_limit"`
	PingPeriod   time.Duration `mapstructure:"ping_period"`
	PongWait     time.Duration `mapstructure:"pong_wait"`
	WriteWait    time.Duration `mapstructure:"write_wait"`
	SendBuffer   int           `mapstructure:"send_buffer"`
	Backpressure string        `mapstructure:"backpressure"`
	HistoryLimit int           `mapstructure:"history_limit"`
	MemoryLogCap int           `mapstructure:"memory_log_cap"`
	RateLimit    RateLimit     `mapstructure:"rate_limit"`
	Storage      Storage       `mapstructure:"storage"`
}

// Load reads config/config.<CONFIG_ENV>.yaml (dev by default) over the
// defaults below. Any key can be overridden with CHAT_<KEY>, nested keys
// joined by "_" (CHAT_STORAGE_REDIS_ADDR).
func Load() (*Config, error) {
	env := os.Getenv("CONFIG_ENV")
	if env == "" {
		env = "dev"
	}
	return LoadFile(fmt.Sprintf("config/config.%s.yaml", env))
}

func LoadFile(fileName string) (*Config, error) {
	v := viper.New()
	v.SetConfigType("yaml")
	v.SetConfigFile(fileName)

	v.SetEnvPrefix("chat")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	setDefaults(v)

	if err := v.ReadInConfig(); err != nil {
		log.Warn().Str("module", "config").Str("file", fileName).Msg("config file not found, using defaults")
	} else {
		log.Info().Str("module", "config").Str("file", fileName).Msg("loaded config")
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}
	if cfg.Mode == "release" && cfg.Secret == devSecret {
		log.Warn().Str("module", "config").Msg("release mode with the default session secret")
	}
	log.Info().
		Str("module", "config").
		Str("mode", cfg.Mode).
		Int("port", cfg.Port).
		Str("static", cfg.StaticPath).
		Str("sqlite", cfg.Storage.SQLitePath).
		Str("redis", cfg.Storage.RedisAddr).
		Msg("config ready")
	return &cfg, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("mode", "release")
	v.SetDefault("port", 8080)
	v.SetDefault("static_path", "./web")
	v.SetDefault("secret", devSecret)
	v.SetDefault("log_level", "info")
	v.SetDefault("read_limit", 9<<20)
	v.SetDefault("ping_period", "54s")
	v.SetDefault("pong_wait", "60s")
	v.SetDefault("write_wait", "10s")
	v.SetDefault("send_buffer", 256)
	v.SetDefault("backpressure", "kick")
	v.SetDefault("history_limit", 50)
	v.SetDefault("memory_log_cap", 500)
	v.SetDefault("rate_limit.burst", 20)
	v.SetDefault("rate_limit.interval", "10s")
	v.SetDefault("storage.sqlite_path", "")
	v.SetDefault("storage.redis_addr", "")
	v.SetDefault("storage.redis_prefix", "chat:")
	v.SetDefault("storage.redis_timeout", "2s")
	v.SetDefault("storage.user_state_ttl", "168h")
}
