package config

import (
	"strings"
	"testing"
	"time"
)

// validConfig returns a Config that passes Validate.
func validConfig() *Config {
	return &Config{
		Auth: AuthConfig{
			JWTSecret: strings.Repeat("s", 32),
		},
		Pipeline: PipelineConfig{
			ChunkSize:           10,
			ChunkTimeout:        15 * time.Second,
			IdeaTimeout:         20 * time.Second,
			TopKeywords:         10,
			RequestSampleSize:   20,
			MaxRequests:         5,
			IdeasPerGeneration:  3,
			MaxCommentsPerBatch: 2000,
		},
	}
}

func TestValidate_OK(t *testing.T) {
	t.Parallel()

	if err := validConfig().Validate(); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestValidate_ShortJWTSecret(t *testing.T) {
	t.Parallel()

	cfg := validConfig()
	cfg.Auth.JWTSecret = "too-short"

	err := cfg.Validate()
	if err == nil {
		t.Fatal("expected error for short JWT secret")
	}
	if !strings.Contains(err.Error(), "jwt_secret") {
		t.Fatalf("error should mention jwt_secret: %v", err)
	}
}

func TestValidate_PipelineRules(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		mutate func(*Config)
	}{
		{"zero chunk size", func(c *Config) { c.Pipeline.ChunkSize = 0 }},
		{"zero chunk timeout", func(c *Config) { c.Pipeline.ChunkTimeout = 0 }},
		{"zero idea timeout", func(c *Config) { c.Pipeline.IdeaTimeout = 0 }},
		{"zero top keywords", func(c *Config) { c.Pipeline.TopKeywords = 0 }},
		{"zero ideas per generation", func(c *Config) { c.Pipeline.IdeasPerGeneration = 0 }},
		{"zero max comments", func(c *Config) { c.Pipeline.MaxCommentsPerBatch = 0 }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			cfg := validConfig()
			tt.mutate(cfg)
			if err := cfg.Validate(); err == nil {
				t.Fatal("expected validation error")
			}
		})
	}
}

func TestHasProviderKey(t *testing.T) {
	t.Parallel()

	if (ProviderConfig{}).HasProviderKey() {
		t.Fatal("empty key should report false")
	}
	if !(ProviderConfig{APIKey: "sk-test"}).HasProviderKey() {
		t.Fatal("set key should report true")
	}
}
