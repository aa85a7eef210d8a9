package models

import (
	"os"
	"strconv"

	"github.com/goccy/go-json"
)

// Config holds the process-level settings. Values come from an optional JSON
// file, then environment variables, then Defaults — last writer wins.
type Config struct {
	Port        int    `json:"port"`
	DatabaseURL string `json:"database_url"`
	SQLitePath  string `json:"sqlite_path"`
	JWTKey      string `json:"jwt_key"`
	LogLevel    string `json:"log_level"`
}

// Defaults fills in anything still unset after file and env parsing.
func (c *Config) Defaults() {
	if c.Port == 0 {
		c.Port = 3000
	}
	if c.DatabaseURL == "" && c.SQLitePath == "" {
		c.SQLitePath = "fatoora.db"
	}
	if c.JWTKey == "" {
		c.JWTKey = "secretkey"
	}
	if c.LogLevel == "" {
		c.LogLevel = "debug"
	}
}

// FromEnv overlays environment variables onto the config.
func (c *Config) FromEnv() {
	if port := os.Getenv("PORT"); port != "" {
		if p, err := strconv.Atoi(port); err == nil {
			c.Port = p
		}
	}
	if v := os.Getenv("DATABASE_URL"); v != "" {
		c.DatabaseURL = v
	}
	if v := os.Getenv("SQLITE_PATH"); v != "" {
		c.SQLitePath = v
	}
	if v := os.Getenv("JWT_KEY"); v != "" {
		c.JWTKey = v
	}
	if v := os.Getenv("LOG_LEVEL"); v != "" {
		c.LogLevel = v
	}
}

// ParseConfig reads a JSON config file into cfg. A missing file is not an
// error; env vars and defaults still apply.
func ParseConfig(path string, cfg *Config) error {
	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return nil
	}
	if err != nil {
		return err
	}
	if err := json.Unmarshal(data, cfg); err != nil {
		log.Printf("Error in parsing config file: %v", err)
		return err
	}
	return nil
}
