package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(c *Config)
		wantErr string
	}{
		{name: "defaults are valid", mutate: func(c *Config) {}},
		{name: "empty kubectl", mutate: func(c *Config) { c.Kubectl = "" }, wantErr: "Kubectl"},
		{name: "negative tail", mutate: func(c *Config) { c.Tail = -1 }, wantErr: "Tail"},
		{name: "no shells", mutate: func(c *Config) { c.Shells = nil }, wantErr: "Shells"},
		{name: "blank shell", mutate: func(c *Config) { c.Shells = []string{"/bin/bash", ""} }, wantErr: "Shells[1]"},
		{name: "empty debug image", mutate: func(c *Config) { c.DebugImage = "" }, wantErr: "DebugImage"},
		{name: "bad log level", mutate: func(c *Config) { c.LogLevel = "trace" }, wantErr: "LogLevel"},
		{name: "bad log format", mutate: func(c *Config) { c.LogFormat = "xml" }, wantErr: "LogFormat"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Default()
			tt.mutate(cfg)

			err := cfg.Validate()
			if tt.wantErr == "" {
				assert.NoError(t, err)
				return
			}
			if assert.Error(t, err) {
				assert.Contains(t, err.Error(), tt.wantErr)
			}
		})
	}
}

func TestValidatePort(t *testing.T) {
	tests := []struct {
		port    int
		wantErr bool
	}{
		{1, false},
		{8080, false},
		{65535, false},
		{0, true},
		{-1, true},
		{65536, true},
	}

	for _, tt := range tests {
		err := ValidatePort("local port", tt.port)
		if tt.wantErr {
			assert.Error(t, err, "port %d", tt.port)
		} else {
			assert.NoError(t, err, "port %d", tt.port)
		}
	}
}
