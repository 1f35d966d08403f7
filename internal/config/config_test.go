package config

import (
	"testing"

	"github.com/spf13/viper"
)

func TestLoadDefaults(t *testing.T) {
	t.Cleanup(viper.Reset)

	cfg, err := Load()
	if err != nil {
		t.Fatal(err)
	}

	if cfg.Port != "8080" {
		t.Errorf("port = %q", cfg.Port)
	}
	if cfg.Sessions.Backend != SessionBackendMemory {
		t.Errorf("session backend = %q", cfg.Sessions.Backend)
	}
	if cfg.Questions.Source != QuestionSourceStatic {
		t.Errorf("question source = %q", cfg.Questions.Source)
	}
	if cfg.Questions.MongoDatabase != "selectra" {
		t.Errorf("mongo database = %q", cfg.Questions.MongoDatabase)
	}
}

func TestLoadRejectsUnknownSessionBackend(t *testing.T) {
	t.Cleanup(viper.Reset)
	viper.Set("sessions.backend", "postgres")

	if _, err := Load(); err == nil {
		t.Fatal("expected error for unknown session backend")
	}
}

func TestLoadRejectsUnknownQuestionSource(t *testing.T) {
	t.Cleanup(viper.Reset)
	viper.Set("questions.source", "csv")

	if _, err := Load(); err == nil {
		t.Fatal("expected error for unknown question source")
	}
}
