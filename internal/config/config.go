// Package config loads service configuration from environment variables
// and an optional config file via viper. Every key has a default that
// yields a fully in-memory deployment: static question bank, in-memory
// sessions, no external services required.
package config

import (
	"strings"

	"github.com/pkg/errors"
	"github.com/spf13/viper"
)

// Session backends.
const (
	SessionBackendMemory = "memory"
	SessionBackendRedis  = "redis"
)

// Question bank sources.
const (
	QuestionSourceStatic = "static"
	QuestionSourceMongo  = "mongo"
)

// Config is the full service configuration.
type Config struct {
	Port       string `mapstructure:"port"`
	StaticDir  string `mapstructure:"static-dir"`
	CORSOrigin string `mapstructure:"cors-origin"`

	Sessions  SessionsConfig  `mapstructure:"sessions"`
	Questions QuestionsConfig `mapstructure:"questions"`
}

// SessionsConfig selects and parameterizes the session store backend.
type SessionsConfig struct {
	Backend   string `mapstructure:"backend"`
	RedisAddr string `mapstructure:"redis-addr"`
}

// QuestionsConfig selects and parameterizes the question bank source.
type QuestionsConfig struct {
	Source        string `mapstructure:"source"`
	MongoURI      string `mapstructure:"mongo-uri"`
	MongoDatabase string `mapstructure:"mongo-database"`
}

// Load reads configuration from the environment (SELECTRA_ prefix) and
// the config file viper was initialized with, if any.
func Load() (*Config, error) {
	viper.SetDefault("port", "8080")
	viper.SetDefault("static-dir", "static")
	viper.SetDefault("cors-origin", "*")
	viper.SetDefault("sessions.backend", SessionBackendMemory)
	viper.SetDefault("sessions.redis-addr", "localhost:6379")
	viper.SetDefault("questions.source", QuestionSourceStatic)
	viper.SetDefault("questions.mongo-uri", "mongodb://localhost:27017")
	viper.SetDefault("questions.mongo-database", "selectra")

	viper.SetEnvPrefix("selectra")
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_", "-", "_"))
	viper.AutomaticEnv()

	var cfg Config
	if err := viper.Unmarshal(&cfg); err != nil {
		return nil, errors.Wrap(err, "unmarshaling config")
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

func (c *Config) validate() error {
	switch c.Sessions.Backend {
	case SessionBackendMemory, SessionBackendRedis:
	default:
		return errors.Errorf("unknown session backend: %s", c.Sessions.Backend)
	}

	switch c.Questions.Source {
	case QuestionSourceStatic, QuestionSourceMongo:
	default:
		return errors.Errorf("unknown question source: %s", c.Questions.Source)
	}

	return nil
}
