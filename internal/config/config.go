package config

import (
	"fmt"

	"github.com/spf13/viper"
)

// Backends de persistance supportés
const (
	BackendPostgres = "postgres"
	BackendSQLite   = "sqlite"
)

type Config struct {
	Port           string `mapstructure:"PORT"`
	StorageBackend string `mapstructure:"STORAGE_BACKEND"`

	DBHost     string `mapstructure:"DB_HOST"`
	DBPort     string `mapstructure:"DB_PORT"`
	DBUser     string `mapstructure:"DB_USER"`
	DBPassword string `mapstructure:"DB_PASSWORD"`
	DBName     string `mapstructure:"DB_NAME"`

	SQLitePath string `mapstructure:"SQLITE_PATH"`

	CloudinaryCloudName string `mapstructure:"CLOUDINARY_CLOUD_NAME"`
	CloudinaryAPIKey    string `mapstructure:"CLOUDINARY_API_KEY"`
	CloudinaryAPISecret string `mapstructure:"CLOUDINARY_API_SECRET"`
}

// LoadConfig charge la configuration depuis l'environnement.
// Le backend de stockage est choisi ici, une seule fois, au démarrage.
func LoadConfig() (*Config, error) {
	viper.SetDefault("PORT", "8080")
	viper.SetDefault("STORAGE_BACKEND", BackendSQLite)
	viper.SetDefault("DB_HOST", "localhost")
	viper.SetDefault("DB_PORT", "5432")
	viper.SetDefault("DB_USER", "postgres")
	viper.SetDefault("DB_NAME", "fitdaily")
	viper.SetDefault("SQLITE_PATH", "fitdaily.db")

	viper.BindEnv("PORT")
	viper.BindEnv("STORAGE_BACKEND")
	viper.BindEnv("DB_HOST")
	viper.BindEnv("DB_PORT")
	viper.BindEnv("DB_USER")
	viper.BindEnv("DB_PASSWORD")
	viper.BindEnv("DB_NAME")
	viper.BindEnv("SQLITE_PATH")
	viper.BindEnv("CLOUDINARY_CLOUD_NAME")
	viper.BindEnv("CLOUDINARY_API_KEY")
	viper.BindEnv("CLOUDINARY_API_SECRET")

	viper.AutomaticEnv()

	var config Config
	if err := viper.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("unable to decode config: %w", err)
	}

	if config.StorageBackend != BackendPostgres && config.StorageBackend != BackendSQLite {
		return nil, fmt.Errorf("unknown storage backend %q", config.StorageBackend)
	}

	return &config, nil
}
