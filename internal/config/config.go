// Copyright (C) 2025 the seating-designer maintainers
// See root-dir/LICENSE for more information

// Package config resolves the process configuration. Values come from a
// .env file when one exists, from the environment otherwise, and every
// field has a working default so a bare `seating-server` starts up.
package config

import (
	"os"

	"github.com/joho/godotenv"
)

const envPrefix = "SEATING_"

type Config struct {
	ServiceName string
	Addr        string
	DB          string
	OTLPAddr    string
	LogLevel    string
}

// Load reads an optional .env file and resolves the configuration.
// A missing .env file is not an error.
func Load() Config {
	_ = godotenv.Load()
	return Config{
		ServiceName: envOr("SERVICE_NAME", "seating-designer"),
		Addr:        envOr("ADDR", "0.0.0.0:8080"),
		DB:          envOr("DB", "jsondb://testdata"),
		OTLPAddr:    envOr("OTLP_GRPC", ""),
		LogLevel:    envOr("LOG_LEVEL", "INFO"),
	}
}

func envOr(key, fallback string) string {
	if v, ok := os.LookupEnv(envPrefix + key); ok && v != "" {
		return v
	}
	return fallback
}
