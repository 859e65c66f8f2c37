package config

import (
	"time"

	"github.com/spf13/viper"
)

type Config struct {
	App   AppConfig
	Data  DataConfig
	Redis RedisConfig
	JWT   JWTConfig
}

type AppConfig struct {
	Port string
	Env  string
}

// DataConfig points at the static fixture tree the simulator serves:
// the roster CSV, the per-patient chart JSON directory, the drug
// manual directory, and the seeded accounts file.
type DataConfig struct {
	RosterPath string
	ChartsDir  string
	DrugsDir   string
	UsersPath  string
}

type RedisConfig struct {
	Host     string
	Port     string
	Password string
	DB       int
}

type JWTConfig struct {
	Secret        string
	SessionExpiry time.Duration
}

func LoadConfig() (*Config, error) {
	viper.SetConfigFile(".env")
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err != nil {
		return nil, err
	}

	sessionExpiry, err := time.ParseDuration(viper.GetString("JWT_SESSION_EXPIRY"))
	if err != nil {
		sessionExpiry = 8 * time.Hour
	}

	config := &Config{
		App: AppConfig{
			Port: viper.GetString("APP_PORT"),
			Env:  viper.GetString("APP_ENV"),
		},
		Data: DataConfig{
			RosterPath: withDefault(viper.GetString("DATA_ROSTER_PATH"), "data/patients.csv"),
			ChartsDir:  withDefault(viper.GetString("DATA_CHARTS_DIR"), "data/patients"),
			DrugsDir:   withDefault(viper.GetString("DATA_DRUGS_DIR"), "data/drugs"),
			UsersPath:  withDefault(viper.GetString("DATA_USERS_PATH"), "data/users.json"),
		},
		Redis: RedisConfig{
			Host:     viper.GetString("REDIS_HOST"),
			Port:     viper.GetString("REDIS_PORT"),
			Password: viper.GetString("REDIS_PASSWORD"),
			DB:       viper.GetInt("REDIS_DB"),
		},
		JWT: JWTConfig{
			Secret:        viper.GetString("JWT_SECRET"),
			SessionExpiry: sessionExpiry,
		},
	}

	return config, nil
}

func withDefault(value, fallback string) string {
	if value == "" {
		return fallback
	}
	return value
}
