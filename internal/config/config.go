package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

const (
	DefaultPath          = "config.yaml"
	DefaultMaxFileSize   = 5 << 20
	DefaultHolidayImage  = "defaultImg/logoTravel3.png"
	DefaultActivityImage = "defaultImg/activity.png"
)

// Config holds all configuration for the application
type Config struct {
	Server    ServerConfig    `yaml:"server"`
	Database  DatabaseConfig  `yaml:"database"`
	JWT       JWTConfig       `yaml:"jwt"`
	Log       LogConfig       `yaml:"log"`
	Pictures  PicturesConfig  `yaml:"pictures"`
	AWS       AWSConfig       `yaml:"aws"`
	Geocoding GeocodingConfig `yaml:"geocoding"`
	SMTP      SMTPConfig      `yaml:"smtp"`
	Redis     RedisConfig     `yaml:"redis"`
}

type ServerConfig struct {
	Port int    `yaml:"port"`
	Host string `yaml:"host"`
}

func (s ServerConfig) Addr() string {
	return fmt.Sprintf("%s:%d", s.Host, s.Port)
}

type DatabaseConfig struct {
	DSN         string `yaml:"dsn"`
	AutoMigrate bool   `yaml:"auto_migrate"`
}

type JWTConfig struct {
	Secret     string `yaml:"secret"`
	TTLMinutes int    `yaml:"ttl_minutes"`
}

func (j JWTConfig) TTL() time.Duration {
	return time.Duration(j.TTLMinutes) * time.Minute
}

type LogConfig struct {
	Level  string `yaml:"level"`
	Format string `yaml:"format"` // console or json
}

type PicturesConfig struct {
	Backend         string `yaml:"backend"` // local or s3
	RootPath        string `yaml:"root_path"`
	Folder          string `yaml:"folder"`
	DefaultFolder   string `yaml:"default_folder"`
	DefaultHoliday  string `yaml:"default_holiday"`
	DefaultActivity string `yaml:"default_activity"`
	MaxFileSize     int64  `yaml:"max_file_size"`
}

type AWSConfig struct {
	Region    string `yaml:"region"`
	S3Bucket  string `yaml:"s3_bucket"`
	AccessKey string `yaml:"access_key"`
	SecretKey string `yaml:"secret_key"`
	Endpoint  string `yaml:"endpoint"`
}

type GeocodingConfig struct {
	Enabled         bool   `yaml:"enabled"`
	APIKey          string `yaml:"api_key"`
	BaseURL         string `yaml:"base_url"`
	CacheTTLMinutes int    `yaml:"cache_ttl_minutes"`
}

type SMTPConfig struct {
	Host       string `yaml:"host"`
	Port       int    `yaml:"port"`
	Username   string `yaml:"username"`
	Password   string `yaml:"password"`
	From       string `yaml:"from"`
	AppBaseURL string `yaml:"app_base_url"`
}

func (s SMTPConfig) Enabled() bool {
	return s.Host != ""
}

type RedisConfig struct {
	Enabled  bool   `yaml:"enabled"`
	Addr     string `yaml:"addr"`
	Password string `yaml:"password"`
	DB       int    `yaml:"db"`
	Channel  string `yaml:"channel"`
}

// Load reads the YAML file at path, then applies environment overrides.
// A missing file is not an error; defaults and environment still apply.
func Load(path string) (*Config, error) {
	cfg := Default()

	data, err := os.ReadFile(path)
	switch {
	case err == nil:
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("failed to parse config file: %w", err)
		}
	case errors.Is(err, fs.ErrNotExist):
	default:
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	applyEnv(cfg)
	return cfg, nil
}

// LoadFromEnv loads an optional .env file, then Load(CONFIG_PATH).
func LoadFromEnv() (*Config, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("failed to load .env: %w", err)
	}

	path := os.Getenv("CONFIG_PATH")
	if path == "" {
		path = DefaultPath
	}
	return Load(path)
}

func Default() *Config {
	return &Config{
		Server:   ServerConfig{Host: "0.0.0.0", Port: 8080},
		Database: DatabaseConfig{AutoMigrate: true},
		JWT:      JWTConfig{TTLMinutes: 60},
		Log:      LogConfig{Level: "info", Format: "json"},
		Pictures: PicturesConfig{
			Backend:         "local",
			RootPath:        "wwwroot",
			Folder:          "images",
			DefaultFolder:   "defaultImg",
			DefaultHoliday:  DefaultHolidayImage,
			DefaultActivity: DefaultActivityImage,
			MaxFileSize:     DefaultMaxFileSize,
		},
		Geocoding: GeocodingConfig{
			BaseURL:         "https://maps.googleapis.com/maps/api/geocode/json",
			CacheTTLMinutes: 24 * 60,
		},
		Redis: RedisConfig{Addr: "localhost:6379", Channel: "holiday-chat"},
	}
}

func applyEnv(cfg *Config) {
	setString(&cfg.Server.Host, "HOST")
	setInt(&cfg.Server.Port, "PORT")
	setString(&cfg.Database.DSN, "POSTGRES_URL")
	setString(&cfg.JWT.Secret, "JWT_SECRET")
	setString(&cfg.Log.Level, "LOG_LEVEL")
	setString(&cfg.AWS.AccessKey, "AWS_ACCESS_KEY_ID")
	setString(&cfg.AWS.SecretKey, "AWS_SECRET_ACCESS_KEY")
	setString(&cfg.Geocoding.APIKey, "GEOCODING_API_KEY")
	setString(&cfg.SMTP.Password, "SMTP_PASSWORD")
	setString(&cfg.Redis.Addr, "REDIS_URL")
}

func setString(dst *string, key string) {
	if v, ok := os.LookupEnv(key); ok && v != "" {
		*dst = v
	}
}

func setInt(dst *int, key string) {
	if v, ok := os.LookupEnv(key); ok {
		if n, err := strconv.Atoi(v); err == nil {
			*dst = n
		}
	}
}
