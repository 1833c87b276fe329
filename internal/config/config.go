package config

import (
	"log"

	"github.com/spf13/viper"
)

// Config holds the application configuration.
type Config struct {
	Port           string `mapstructure:"PORT"`
	Env            string `mapstructure:"ENV"`
	DBDriver       string `mapstructure:"DB_DRIVER"`
	DatabaseURL    string `mapstructure:"DATABASE_URL"`
	DatabasePath   string `mapstructure:"DATABASE_PATH"`
	JWTSecret      string `mapstructure:"JWT_SECRET"`
	UploadDir      string `mapstructure:"UPLOAD_DIR"`
	StaticDir      string `mapstructure:"STATIC_DIR"`
	AllowedOrigins string `mapstructure:"ALLOWED_ORIGINS"`
}

var AppConfig *Config

// IsProduction reports whether the server runs in production mode.
// Internal error messages are suppressed from responses when it does.
func (c *Config) IsProduction() bool {
	return c.Env == "production"
}

// LoadConfig loads the configuration from a .env file and environment variables.
func LoadConfig() {
	viper.AddConfigPath(".")
	viper.SetConfigName(".env")
	viper.SetConfigType("env")

	viper.SetDefault("PORT", "3000")
	viper.SetDefault("ENV", "development")
	viper.SetDefault("DB_DRIVER", "sqlite")
	viper.SetDefault("DATABASE_PATH", "database.sqlite")
	viper.SetDefault("JWT_SECRET", "your-secret-key")
	viper.SetDefault("UPLOAD_DIR", "public/uploads")
	viper.SetDefault("STATIC_DIR", "dist")

	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err != nil {
		log.Println("Warning: .env file not found, loading from environment variables")
	}

	err := viper.Unmarshal(&AppConfig)
	if err != nil {
		log.Fatalf("Unable to decode into struct, %v", err)
	}
}
