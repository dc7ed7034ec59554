package config

import (
	"strings"

	"github.com/spf13/viper"
)

type Env struct {
	AppAddr string
	GinMode string

	DBUser     string
	DBPassword string
	DBAddr     string
	DBName     string

	// Reserved query parameter names and decode defaults.
	PageParamKey             string
	LimitParamKey            string
	SortParamKey             string
	DefaultPage              int
	DefaultLimit             int
	AllowComaSeparatedArrays bool

	LogLevel  string
	LogFormat string
	LogFile   string

	JWTSecret   string
	CORSOrigins []string
}

var defaultCORSOrigins = []string{
	"http://localhost:3000",
	"http://127.0.0.1:3000",
	"http://localhost:5173",
	"http://127.0.0.1:5173",
}

// LoadEnv reads settings from the environment, with an optional .env file in
// the working directory as a fallback.
func LoadEnv() Env {
	v := viper.New()
	v.SetConfigFile(".env")
	v.SetConfigType("env")
	_ = v.ReadInConfig()
	v.AutomaticEnv()

	v.SetDefault("APP_ADDR", ":8080")
	v.SetDefault("DB_USER", "root")
	v.SetDefault("DB_PASSWORD", "")
	v.SetDefault("DB_ADDR", "127.0.0.1:3306")
	v.SetDefault("DB_NAME", "fleet")
	v.SetDefault("QUERY_PAGE_KEY", "_page")
	v.SetDefault("QUERY_LIMIT_KEY", "_limit")
	v.SetDefault("QUERY_SORT_KEY", "_sort")
	v.SetDefault("QUERY_DEFAULT_PAGE", 1)
	v.SetDefault("QUERY_DEFAULT_LIMIT", 50)
	v.SetDefault("QUERY_COMMA_ARRAYS", false)
	v.SetDefault("LOG_LEVEL", "info")
	v.SetDefault("LOG_FORMAT", "console")

	return Env{
		AppAddr:                  strings.TrimSpace(v.GetString("APP_ADDR")),
		GinMode:                  strings.TrimSpace(v.GetString("GIN_MODE")),
		DBUser:                   v.GetString("DB_USER"),
		DBPassword:               v.GetString("DB_PASSWORD"),
		DBAddr:                   v.GetString("DB_ADDR"),
		DBName:                   v.GetString("DB_NAME"),
		PageParamKey:             v.GetString("QUERY_PAGE_KEY"),
		LimitParamKey:            v.GetString("QUERY_LIMIT_KEY"),
		SortParamKey:             v.GetString("QUERY_SORT_KEY"),
		DefaultPage:              v.GetInt("QUERY_DEFAULT_PAGE"),
		DefaultLimit:             v.GetInt("QUERY_DEFAULT_LIMIT"),
		AllowComaSeparatedArrays: v.GetBool("QUERY_COMMA_ARRAYS"),
		LogLevel:                 strings.ToLower(v.GetString("LOG_LEVEL")),
		LogFormat:                strings.ToLower(v.GetString("LOG_FORMAT")),
		LogFile:                  strings.TrimSpace(v.GetString("LOG_FILE")),
		JWTSecret:                v.GetString("JWT_SECRET"),
		CORSOrigins:              splitList(v.GetString("CORS_ALLOWED_ORIGINS"), defaultCORSOrigins),
	}
}

func splitList(raw string, fallback []string) []string {
	out := []string{}
	for _, s := range strings.Split(raw, ",") {
		s = strings.TrimSpace(s)
		if s != "" {
			out = append(out, s)
		}
	}
	if len(out) == 0 {
		return append([]string(nil), fallback...)
	}
	return out
}
