package Config

import (
	"github.com/spf13/viper"
)

// Config holds all runtime settings for the service.
type Config struct {
	Port       string
	DBDriver   string
	DBDSN      string
	CORSOrigin string
	LogFile    string
}

// Load reads configuration from environment variables, falling back to
// defaults suitable for local development.
func Load() *Config {
	v := viper.New()

	v.SetDefault("PORT", "3001")
	v.SetDefault("DB_DRIVER", "sqlite")
	v.SetDefault("DB_DSN", "database.db")
	v.SetDefault("CORS_ORIGIN", "http://localhost:4200")
	v.SetDefault("LOG_FILE", "logs/requests.log")
	v.AutomaticEnv()

	return &Config{
		Port:       v.GetString("PORT"),
		DBDriver:   v.GetString("DB_DRIVER"),
		DBDSN:      v.GetString("DB_DSN"),
		CORSOrigin: v.GetString("CORS_ORIGIN"),
		LogFile:    v.GetString("LOG_FILE"),
	}
}
