// Package config centralises runtime configuration for the exercise tracker.
package config

import (
	"github.com/spf13/viper"
)

// Config captures the runtime settings of the service.
type Config struct {
	HTTPAddress string
	DatabaseURL string
	RedisAddr   string
	StaticDir   string
	RateLimit   RateLimit
}

// RateLimit holds the per-client request limiter knobs.
type RateLimit struct {
	PerSecond float64
	Burst     int
}

// Load reads configuration from the environment (EXTRACKER_ prefix) with
// defaults suitable for local development.
func Load() Config {
	v := viper.New()
	v.SetEnvPrefix("extracker")
	v.AutomaticEnv()

	v.SetDefault("http_address", ":8080")
	v.SetDefault("database_url", "")
	v.SetDefault("redis_addr", "exercise-redis:6379")
	v.SetDefault("static_dir", "public")
	v.SetDefault("rate_limit_per_second", 5.0)
	v.SetDefault("rate_limit_burst", 10)

	return Config{
		HTTPAddress: v.GetString("http_address"),
		DatabaseURL: v.GetString("database_url"),
		RedisAddr:   v.GetString("redis_addr"),
		StaticDir:   v.GetString("static_dir"),
		RateLimit: RateLimit{
			PerSecond: v.GetFloat64("rate_limit_per_second"),
			Burst:     v.GetInt("rate_limit_burst"),
		},
	}
}
