package config

import (
	"fmt"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Defaults preserved from the first deployment.
const (
	DEFAULT_REDIS_ADDRESS           = "redis:6379"
	DEFAULT_SERVER_PORT             = 8080
	DEFAULT_BUSINESS_TIMEZONE       = "America/Sao_Paulo"
	DEFAULT_NEARBY_RADIUS_KM        = 50.0
	DEFAULT_CATALOG_FIXTURE_PATH    = "./resources/businesses_catalog.json"
	DEFAULT_CATALOG_REFRESH_MINUTES = 60
	DEFAULT_LOG_LEVEL               = "info"
)

type RedisConfig struct {
	Address  string `mapstructure:"address"`
	Password string `mapstructure:"password"`
	DB       int    `mapstructure:"db"`
}

type ServerConfig struct {
	Port int `mapstructure:"port"`
}

type SearchConfig struct {
	// Timezone is the operating locale used to evaluate opening hours.
	// Single-region deployment for now; per-business timezones would make
	// this a catalog attribute instead.
	Timezone         string  `mapstructure:"timezone"`
	AnnotatePoolSize int     `mapstructure:"annotate_pool_size"`
	NearbyRadiusKm   float64 `mapstructure:"nearby_radius_km"`
}

type CatalogConfig struct {
	FixturePath            string `mapstructure:"fixture_path"`
	RefreshIntervalMinutes int    `mapstructure:"refresh_interval_minutes"`
}

type LogConfig struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"`
}

// Config is the full application configuration.
type Config struct {
	Redis   RedisConfig   `mapstructure:"redis"`
	Server  ServerConfig  `mapstructure:"server"`
	Search  SearchConfig  `mapstructure:"search"`
	Catalog CatalogConfig `mapstructure:"catalog"`
	Log     LogConfig     `mapstructure:"log"`
}

// Load reads configuration from an optional yaml file plus environment
// overrides (DISCOVERY_REDIS_ADDRESS and friends), with a .env file loaded
// first when present.
func Load() (*Config, error) {
	_ = godotenv.Load()

	v := viper.New()
	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath("./configs")
	v.AddConfigPath(".")

	v.SetEnvPrefix("DISCOVERY")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("error reading config: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	applyDefaults(&cfg)
	return &cfg, nil
}

func applyDefaults(cfg *Config) {
	if cfg.Redis.Address == "" {
		cfg.Redis.Address = DEFAULT_REDIS_ADDRESS
	}
	if cfg.Server.Port == 0 {
		cfg.Server.Port = DEFAULT_SERVER_PORT
	}
	if cfg.Search.Timezone == "" {
		cfg.Search.Timezone = DEFAULT_BUSINESS_TIMEZONE
	}
	if cfg.Search.NearbyRadiusKm == 0 {
		cfg.Search.NearbyRadiusKm = DEFAULT_NEARBY_RADIUS_KM
	}
	if cfg.Catalog.FixturePath == "" {
		cfg.Catalog.FixturePath = DEFAULT_CATALOG_FIXTURE_PATH
	}
	if cfg.Catalog.RefreshIntervalMinutes == 0 {
		cfg.Catalog.RefreshIntervalMinutes = DEFAULT_CATALOG_REFRESH_MINUTES
	}
	if cfg.Log.Level == "" {
		cfg.Log.Level = DEFAULT_LOG_LEVEL
	}
}
