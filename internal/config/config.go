package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"gopkg.in/yaml.v3"
)

type AppConfig struct {
	Port        int      `yaml:"port"`
	GinMode     string   `yaml:"gin_mode"`
	CORSOrigins []string `yaml:"cors_origins"`
}

type MongoConfig struct {
	URI      string `yaml:"uri"`
	Database string `yaml:"database"`
}

type RedisConfig struct {
	Addr     string `yaml:"addr"`
	Password string `yaml:"password"`
	DB       int    `yaml:"db"`
	CacheTTL string `yaml:"cache_ttl"`
}

type JWTConfig struct {
	AccessSecret  string `yaml:"access_secret"`
	RefreshSecret string `yaml:"refresh_secret"`
	Issuer        string `yaml:"issuer"`
	AccessTTL     string `yaml:"access_ttl"`
	RefreshTTL    string `yaml:"refresh_ttl"`
}

type S3Config struct {
	Bucket string `yaml:"bucket"`
	Region string `yaml:"region"`
}

type ConfigFile struct {
	App   AppConfig   `yaml:"app"`
	Mongo MongoConfig `yaml:"mongo"`
	Redis RedisConfig `yaml:"redis"`
	JWT   JWTConfig   `yaml:"jwt"`
	S3    S3Config    `yaml:"s3"`
}

type Config struct {
	Port          string
	GinMode       string
	CORSOrigins   []string
	MongoURI      string
	MongoDatabase string
	RedisAddr     string
	RedisPassword string
	RedisDB       int
	CacheTTL      time.Duration
	AccessSecret  string
	RefreshSecret string
	JWTIssuer     string
	AccessTTL     time.Duration
	RefreshTTL    time.Duration
	S3Bucket      string
	S3Region      string
}

func env(k, def string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return def
}

// Load reads config/config.yml and lets environment variables override every
// value, so the same binary runs locally off the file and in Lambda off env
// alone. Secrets always come from the environment when set.
func Load() (*Config, error) {
	configFile, err := loadConfigFile(env("CONFIG_PATH", "config/config.yml"))
	if err != nil {
		if !os.IsNotExist(err) {
			return nil, fmt.Errorf("failed to load config file: %w", err)
		}
		configFile = &ConfigFile{}
	}

	accTTL, err := time.ParseDuration(env("JWT_ACCESS_TTL", defString(configFile.JWT.AccessTTL, "15m")))
	if err != nil {
		return nil, fmt.Errorf("invalid JWT access TTL: %w", err)
	}
	refTTL, err := time.ParseDuration(env("JWT_REFRESH_TTL", defString(configFile.JWT.RefreshTTL, "720h")))
	if err != nil {
		return nil, fmt.Errorf("invalid JWT refresh TTL: %w", err)
	}
	cacheTTL, err := time.ParseDuration(env("CACHE_TTL", defString(configFile.Redis.CacheTTL, "10m")))
	if err != nil {
		return nil, fmt.Errorf("invalid cache TTL: %w", err)
	}
	redisDB, err := strconv.Atoi(env("REDIS_DB", strconv.Itoa(configFile.Redis.DB)))
	if err != nil {
		return nil, fmt.Errorf("invalid redis db: %w", err)
	}

	corsOrigins := configFile.App.CORSOrigins
	if v := os.Getenv("CORS_ORIGINS"); v != "" {
		corsOrigins = strings.Split(v, ",")
	}

	cfg := &Config{
		Port:          env("PORT", defString(strconv.Itoa(configFile.App.Port), "8080")),
		GinMode:       env("GIN_MODE", defString(configFile.App.GinMode, "release")),
		CORSOrigins:   corsOrigins,
		MongoURI:      env("MONGO_URI", defString(configFile.Mongo.URI, "mongodb://localhost:27017")),
		MongoDatabase: env("MONGO_DATABASE", defString(configFile.Mongo.Database, "storefront")),
		RedisAddr:     env("REDIS_ADDR", defString(configFile.Redis.Addr, "localhost:6379")),
		RedisPassword: env("REDIS_PASSWORD", configFile.Redis.Password),
		RedisDB:       redisDB,
		CacheTTL:      cacheTTL,
		AccessSecret:  env("JWT_ACCESS_SECRET", configFile.JWT.AccessSecret),
		RefreshSecret: env("JWT_REFRESH_SECRET", configFile.JWT.RefreshSecret),
		JWTIssuer:     env("JWT_ISSUER", defString(configFile.JWT.Issuer, "son-phuong-nam")),
		AccessTTL:     accTTL,
		RefreshTTL:    refTTL,
		S3Bucket:      env("S3_BUCKET", configFile.S3.Bucket),
		S3Region:      env("S3_REGION", defString(configFile.S3.Region, "ap-southeast-1")),
	}

	if cfg.AccessSecret == "" || cfg.RefreshSecret == "" {
		return nil, fmt.Errorf("JWT secrets are not configured")
	}
	if cfg.AccessSecret == cfg.RefreshSecret {
		return nil, fmt.Errorf("access and refresh secrets must differ")
	}

	return cfg, nil
}

func loadConfigFile(path string) (*ConfigFile, error) {
	bytes, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var config ConfigFile
	if err := yaml.Unmarshal(bytes, &config); err != nil {
		return nil, fmt.Errorf("could not parse config yaml: %w", err)
	}
	return &config, nil
}

func defString(v, def string) string {
	if v == "" || v == "0" {
		return def
	}
	return v
}
