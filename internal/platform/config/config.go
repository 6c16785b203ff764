package config

import (
	"strings"

	"github.com/spf13/viper"
)

// Config agrupa toda la configuración del servicio.
// Todo viene de env vars con prefijo PETBOARD_ (main queda limpio).
type Config struct {
	Addr    string
	AppName string

	// DSN de Postgres. Vacío => repos in-memory (modo dev).
	DBDSN string

	// Verificación de sesión. Si AuthBaseURL+AuthAPIKey están seteados se usa el
	// verifier remoto; si solo AuthSigningKey, el verifier local HS256.
	// Si nada está seteado => modo dev (X-Debug-User-ID).
	AuthBaseURL    string
	AuthAPIKey     string
	AuthSigningKey string

	// Orígenes permitidos para /api/* (separados por coma). Vacío => mismo origen.
	CORSAllowedOrigins string

	LogLevel  string
	LogFormat string
}

// Load lee la configuración desde el entorno.
func Load() Config {
	v := viper.New()
	v.SetEnvPrefix("PETBOARD")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	v.SetDefault("addr", ":8080")
	v.SetDefault("app_name", "pet-board")
	v.SetDefault("db_dsn", "")
	v.SetDefault("auth_base_url", "")
	v.SetDefault("auth_api_key", "")
	v.SetDefault("auth_signing_key", "")
	v.SetDefault("cors_allowed_origins", "")
	v.SetDefault("log_level", "info")
	v.SetDefault("log_format", "text")

	return Config{
		Addr:               v.GetString("addr"),
		AppName:            v.GetString("app_name"),
		DBDSN:              v.GetString("db_dsn"),
		AuthBaseURL:        v.GetString("auth_base_url"),
		AuthAPIKey:         v.GetString("auth_api_key"),
		AuthSigningKey:     v.GetString("auth_signing_key"),
		CORSAllowedOrigins: v.GetString("cors_allowed_origins"),
		LogLevel:           v.GetString("log_level"),
		LogFormat:          v.GetString("log_format"),
	}
}

// Origins parsea CORSAllowedOrigins a slice (trim + sin vacíos).
func (c Config) Origins() []string {
	if strings.TrimSpace(c.CORSAllowedOrigins) == "" {
		return nil
	}
	parts := strings.Split(c.CORSAllowedOrigins, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		p = strings.TrimSpace(p)
		if p == "" {
			continue
		}
		out = append(out, p)
	}
	return out
}
