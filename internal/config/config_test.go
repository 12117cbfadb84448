// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package config

import "testing"

func TestLoadDefaults(t *testing.T) {
	t.Setenv("APP_ENV", "development")
	t.Setenv("APP_PORT", "")
	t.Setenv("POSTGRES_HOST", "")
	t.Setenv("TOKEN_SECRET", "")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Port != "8080" {
		t.Errorf("Port = %q", cfg.Port)
	}
	if cfg.DBHost != "localhost" {
		t.Errorf("DBHost = %q", cfg.DBHost)
	}
	if !cfg.IsDev() {
		t.Error("IsDev() = false in development")
	}
}

func TestLoadProductionGuards(t *testing.T) {
	t.Setenv("APP_ENV", "production")
	t.Setenv("POSTGRES_PASSWORD", "")
	t.Setenv("TOKEN_SECRET", "real-secret")

	if _, err := Load(); err == nil {
		t.Error("Load accepted the default database password in production")
	}

	t.Setenv("POSTGRES_PASSWORD", "real-password")
	t.Setenv("TOKEN_SECRET", "")
	if _, err := Load(); err == nil {
		t.Error("Load accepted the default token secret in production")
	}

	t.Setenv("TOKEN_SECRET", "real-secret")
	if _, err := Load(); err != nil {
		t.Errorf("Load failed with proper production config: %v", err)
	}
}

func TestDSN(t *testing.T) {
	cfg := &Config{DBUser: "u", DBPassword: "p", DBHost: "h", DBPort: "5432", DBName: "d"}
	want := "postgres://u:p@h:5432/d?sslmode=disable"
	if got := cfg.DSN(); got != want {
		t.Errorf("DSN = %q, want %q", got, want)
	}
}
