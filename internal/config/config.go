package config

import (
	"log"

	"github.com/spf13/viper"
)

type Config struct {
	Env   string
	Store StoreConfig
	Admin AdminConfig
}

type StoreConfig struct {
	Name              string
	WhatsAppNumber    string
	LowStockThreshold int
}

type AdminConfig struct {
	Username string
	Password string // startup password only; hashed on load, mutable at runtime
}

func Load() *Config {
	viper.SetConfigName(".env")
	viper.SetConfigType("env")
	viper.AddConfigPath(".")
	viper.AutomaticEnv()

	// Set defaults
	viper.SetDefault("SERVER_ENV", "development")
	viper.SetDefault("STORE_NAME", "Gabriela Colchões")
	viper.SetDefault("STORE_WHATSAPP_NUMBER", "+5562993294939")
	viper.SetDefault("STOCK_LOW_THRESHOLD", 5)
	viper.SetDefault("ADMIN_USERNAME", "admin")
	viper.SetDefault("ADMIN_PASSWORD", "admin123")

	if err := viper.ReadInConfig(); err != nil {
		log.Printf("Warning: Could not read config file: %v", err)
	}

	return &Config{
		Env: viper.GetString("SERVER_ENV"),
		Store: StoreConfig{
			Name:              viper.GetString("STORE_NAME"),
			WhatsAppNumber:    viper.GetString("STORE_WHATSAPP_NUMBER"),
			LowStockThreshold: viper.GetInt("STOCK_LOW_THRESHOLD"),
		},
		Admin: AdminConfig{
			Username: viper.GetString("ADMIN_USERNAME"),
			Password: viper.GetString("ADMIN_PASSWORD"),
		},
	}
}
