package config

import (
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

type Config struct {
	ServerPort         string
	MaxFileSize        int64
	MaxMultipartMemory int64
	MaxConcurrency     int
	RulesFile          string
	MinValueDigits     int
	ValueLookahead     int
	LogLevel           string
	LogFormat          string
}

// New returns a viper instance with defaults and environment binding. A .env file in
// the working directory is loaded first when present.
func New() *viper.Viper {
	_ = godotenv.Load()

	v := viper.New()
	v.SetDefault("server_port", "8080")
	v.SetDefault("max_file_size", 10*1024*1024)        // 10 MB
	v.SetDefault("max_multipart_memory", 32*1024*1024) // 32 MB
	v.SetDefault("max_concurrency", 1)
	v.SetDefault("rules_file", "")
	v.SetDefault("min_value_digits", 1)
	v.SetDefault("value_lookahead", 0)
	v.SetDefault("log_level", "info")
	v.SetDefault("log_format", "console")

	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()
	return v
}

// FromViper decodes a (possibly flag-bound) viper instance.
func FromViper(v *viper.Viper) *Config {
	return &Config{
		ServerPort:         v.GetString("server_port"),
		MaxFileSize:        v.GetInt64("max_file_size"),
		MaxMultipartMemory: v.GetInt64("max_multipart_memory"),
		MaxConcurrency:     v.GetInt("max_concurrency"),
		RulesFile:          v.GetString("rules_file"),
		MinValueDigits:     v.GetInt("min_value_digits"),
		ValueLookahead:     v.GetInt("value_lookahead"),
		LogLevel:           v.GetString("log_level"),
		LogFormat:          v.GetString("log_format"),
	}
}
