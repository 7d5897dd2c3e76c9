package config

import (
	logger "github.com/Bparsons0904/goLogger"

	"github.com/spf13/viper"
)

type Config struct {
	GeneralVersion       string  `mapstructure:"GENERAL_VERSION"`
	Environment          string  `mapstructure:"ENVIRONMENT"`
	ServerPort           int     `mapstructure:"SERVER_PORT"`
	DatabaseHost         string  `mapstructure:"DB_HOST"`
	DatabasePort         int     `mapstructure:"DB_PORT"`
	DatabaseName         string  `mapstructure:"DB_NAME"`
	DatabaseUser         string  `mapstructure:"DB_USER"`
	DatabasePassword     string  `mapstructure:"DB_PASSWORD"`
	DatabaseCacheAddress string  `mapstructure:"DB_CACHE_ADDRESS"`
	DatabaseCachePort    int     `mapstructure:"DB_CACHE_PORT"`
	DatabaseCacheReset   int     `mapstructure:"DB_CACHE_RESET"`
	CorsAllowOrigins     string  `mapstructure:"CORS_ALLOW_ORIGINS"`
	JWTSecret            string  `mapstructure:"JWT_SECRET"`
	SessionTTLHours      int     `mapstructure:"SESSION_TTL_HOURS"`
	CampusEmailDomain    string  `mapstructure:"CAMPUS_EMAIL_DOMAIN"`
	CommissionRate       float64 `mapstructure:"COMMISSION_RATE"`
	StorageBucket        string  `mapstructure:"STORAGE_BUCKET"`
	SchedulerEnabled     bool    `mapstructure:"SCHEDULER_ENABLED"`
}

var ConfigInstance Config

func InitConfig() (Config, error) {
	log := logger.New("config").Function("InitConfig")
	log.Info("Initializing config")

	viper.AutomaticEnv()

	envVars := []string{
		"GENERAL_VERSION", "ENVIRONMENT", "SERVER_PORT",
		"DB_HOST", "DB_PORT", "DB_NAME", "DB_USER", "DB_PASSWORD",
		"DB_CACHE_ADDRESS", "DB_CACHE_PORT", "DB_CACHE_RESET",
		"CORS_ALLOW_ORIGINS",
		"JWT_SECRET", "SESSION_TTL_HOURS",
		"CAMPUS_EMAIL_DOMAIN", "COMMISSION_RATE",
		"STORAGE_BUCKET", "SCHEDULER_ENABLED",
	}

	for _, env := range envVars {
		if err := viper.BindEnv(env); err != nil {
			log.Warn("Failed to bind environment variable", "env", env, "error", err)
		}
	}

	viper.SetDefault("SESSION_TTL_HOURS", 72)
	viper.SetDefault("CAMPUS_EMAIL_DOMAIN", "@dtu.ac.in")
	viper.SetDefault("COMMISSION_RATE", 0.10)
	viper.SetDefault("DB_CACHE_RESET", -1)

	// Environment variables win; .env files are the local-run fallback
	envVarsSet := viper.IsSet("SERVER_PORT") && viper.IsSet("DB_HOST")

	if envVarsSet {
		log.Info("Environment variables detected, skipping file loading")
	} else {
		log.Info("Environment variables not found, attempting to load from files")

		viper.SetConfigFile(".env")
		viper.SetConfigType("env")

		if err := viper.ReadInConfig(); err != nil {
			log.Warn("Could not find .env file", "error", err)
		} else {
			log.Info("Loaded .env file")
		}

		viper.SetConfigFile(".env.local")
		if err := viper.MergeInConfig(); err != nil {
			log.Debug("No .env.local file found", "error", err)
		} else {
			log.Info("Loaded .env.local overrides")
		}
	}

	var config Config
	if err := viper.Unmarshal(&config); err != nil {
		return Config{}, log.Err("Fatal error: could not unmarshal config", err)
	}

	if err := validateConfig(config, log); err != nil {
		return Config{}, err
	}

	log.Info(
		"Successfully initialized config",
		"environment", config.Environment,
		"port", config.ServerPort,
	)
	return ConfigInstance, nil
}

func GetConfig() Config {
	return ConfigInstance
}

func validateConfig(config Config, log logger.Logger) error {
	if config.ServerPort <= 0 {
		return log.Error(
			"Fatal error: invalid server port",
			"port", config.ServerPort,
		)
	}

	if config.JWTSecret == "" {
		return log.ErrMsg("Fatal error: JWT_SECRET is required")
	}

	if config.CommissionRate < 0 || config.CommissionRate >= 1 {
		return log.Error(
			"Fatal error: commission rate must be in [0, 1)",
			"rate", config.CommissionRate,
		)
	}

	if config.CampusEmailDomain == "" {
		return log.ErrMsg("Fatal error: CAMPUS_EMAIL_DOMAIN is required")
	}

	ConfigInstance = config
	return nil
}
