package config

import (
	"os"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

// parseEnv overlays Config fields from the process environment. A .env file
// in the working directory is loaded first if present, without overriding
// variables that are already set. Parsing errors panic: a misconfigured
// environment should stop the server before it binds anything.
func parseEnv(config *Config) {
	if _, err := os.Stat(".env"); err == nil {
		if err := godotenv.Load(); err != nil {
			panic(err)
		}
	}

	if err := env.Parse(config); err != nil {
		panic(err)
	}
}
