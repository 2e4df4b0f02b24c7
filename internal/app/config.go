package app

import (
	"time"

	"github.com/banglanlp/dialect-eval-backend/internal/platform/envutil"
	"github.com/banglanlp/dialect-eval-backend/internal/platform/logger"
)

type Config struct {
	HTTPAddr       string
	JWTSecretKey   string
	AccessTokenTTL time.Duration
	ServiceName    string
	Environment    string
	Version        string
}

func LoadConfig(log *logger.Logger) Config {
	cfg := Config{
		HTTPAddr:       envutil.String("HTTP_ADDR", ":8080"),
		JWTSecretKey:   envutil.String("JWT_SECRET_KEY", "defaultsecret"),
		AccessTokenTTL: time.Duration(envutil.Int("ACCESS_TOKEN_TTL", 86400)) * time.Second,
		ServiceName:    envutil.String("SERVICE_NAME", "dialect-eval-backend"),
		Environment:    envutil.String("APP_ENV", "development"),
		Version:        envutil.String("APP_VERSION", "dev"),
	}
	if cfg.JWTSecretKey == "defaultsecret" {
		log.Warn("JWT_SECRET_KEY not set, using insecure default")
	}
	return cfg
}
