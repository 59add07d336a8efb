package config

import (
	"fmt"
	"time"

	"github.com/spf13/viper"
)

// Facebook groups the Graph API settings.
type Facebook struct {
	VerifyToken  string
	GraphVersion string
	GraphBaseURL string
	SendTimeout  time.Duration
}

// Config is the full runtime configuration, sourced from the environment.
type Config struct {
	Env            string
	Port           string
	DBURL          string
	RedisURL       string
	JWTSecret      string
	TokenTTL       time.Duration
	RequestTimeout time.Duration
	Facebook       Facebook
}

// Load reads configuration from the environment. Secrets have no defaults;
// startup fails fast when they are missing.
func Load() (*Config, error) {
	v := viper.New()
	v.AutomaticEnv()

	v.SetDefault("ENV", "development")
	v.SetDefault("PORT", "5001")
	v.SetDefault("REDIS_URL", "redis://localhost:6379/0")
	v.SetDefault("TOKEN_TTL", "24h")
	v.SetDefault("REQUEST_TIMEOUT", "3s")
	v.SetDefault("FACEBOOK_VERIFY_TOKEN", "fb_helpdesk_verify_token")
	v.SetDefault("FACEBOOK_GRAPH_VERSION", "v18.0")
	v.SetDefault("FACEBOOK_GRAPH_BASE_URL", "https://graph.facebook.com")
	v.SetDefault("FACEBOOK_SEND_TIMEOUT", "10s")

	cfg := &Config{
		Env:            v.GetString("ENV"),
		Port:           v.GetString("PORT"),
		DBURL:          v.GetString("DATABASE_URL"),
		RedisURL:       v.GetString("REDIS_URL"),
		JWTSecret:      v.GetString("JWT_SECRET"),
		TokenTTL:       v.GetDuration("TOKEN_TTL"),
		RequestTimeout: v.GetDuration("REQUEST_TIMEOUT"),
		Facebook: Facebook{
			VerifyToken:  v.GetString("FACEBOOK_VERIFY_TOKEN"),
			GraphVersion: v.GetString("FACEBOOK_GRAPH_VERSION"),
			GraphBaseURL: v.GetString("FACEBOOK_GRAPH_BASE_URL"),
			SendTimeout:  v.GetDuration("FACEBOOK_SEND_TIMEOUT"),
		},
	}

	if cfg.DBURL == "" {
		return nil, fmt.Errorf("DATABASE_URL is required")
	}
	if cfg.JWTSecret == "" {
		return nil, fmt.Errorf("JWT_SECRET is required")
	}
	return cfg, nil
}
