package config

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"
	"github.com/spf13/viper"
)

const (
	envDatabaseURL      = "DATABASE_URL"
	envDatabaseName     = "DATABASE_NAME"
	envPort             = "PORT"
	envLogLevel         = "LOG_LEVEL"
	envLogFormat        = "LOG_FORMAT"
	envGinMode          = "GIN_MODE"
	envDBTimeout        = "DB_TIMEOUT"
	envShutdownTimeout  = "SHUTDOWN_TIMEOUT"
	envCORSAllowOrigins = "CORS_ALLOW_ORIGINS"
)

type Config struct {
	DatabaseURL      string        `validate:"omitempty,startswith=mongodb://|startswith=mongodb+srv://"`
	DatabaseName     string        `validate:"required"`
	Port             string        `validate:"required,numeric"`
	LogLevel         string        `validate:"oneof=debug info warn error"`
	LogFormat        string        `validate:"oneof=text json"`
	GinMode          string        `validate:"oneof=debug release test"`
	DBTimeout        time.Duration `validate:"gt=0"`
	ShutdownTimeout  time.Duration `validate:"gt=0"`
	CORSAllowOrigins []string      `validate:"min=1,dive,required"`
}

// DatabaseConfigured reports whether a connection string was provided.
func (c *Config) DatabaseConfigured() bool {
	return c.DatabaseURL != ""
}

// LoadConfig reads .env (when present) and the process environment.
func LoadConfig() (*Config, error) {
	// .env solo existe en desarrollo local
	if _, err := os.Stat(".env"); err == nil {
		if err := godotenv.Load(); err != nil {
			logrus.WithError(err).Warn("⚠️ Error loading .env file")
		} else {
			logrus.Info("✅ .env file loaded successfully")
		}
	} else {
		logrus.Info("🌐 Using system environment variables")
	}

	return FromViper(newViper())
}

func newViper() *viper.Viper {
	v := viper.New()
	v.SetDefault(envDatabaseURL, "")
	v.SetDefault(envDatabaseName, "swolez")
	v.SetDefault(envPort, "8000")
	v.SetDefault(envLogLevel, "info")
	v.SetDefault(envLogFormat, "text")
	v.SetDefault(envGinMode, "release")
	v.SetDefault(envDBTimeout, "5s")
	v.SetDefault(envShutdownTimeout, "10s")
	v.SetDefault(envCORSAllowOrigins, "*")
	v.AutomaticEnv()
	return v
}

// FromViper builds and validates a Config from an already populated viper instance.
func FromViper(v *viper.Viper) (*Config, error) {
	cfg := &Config{
		DatabaseURL:      strings.TrimSpace(v.GetString(envDatabaseURL)),
		DatabaseName:     v.GetString(envDatabaseName),
		Port:             v.GetString(envPort),
		LogLevel:         strings.ToLower(v.GetString(envLogLevel)),
		LogFormat:        strings.ToLower(v.GetString(envLogFormat)),
		GinMode:          strings.ToLower(v.GetString(envGinMode)),
		DBTimeout:        v.GetDuration(envDBTimeout),
		ShutdownTimeout:  v.GetDuration(envShutdownTimeout),
		CORSAllowOrigins: splitList(v.GetString(envCORSAllowOrigins)),
	}

	if err := validator.New().Struct(cfg); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}
	return cfg, nil
}

func splitList(raw string) []string {
	var out []string
	for _, part := range strings.Split(raw, ",") {
		if p := strings.TrimSpace(part); p != "" {
			out = append(out, p)
		}
	}
	return out
}
