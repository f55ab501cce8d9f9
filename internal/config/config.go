// Package config loads server and client settings from YAML files and the
// environment.
package config

import (
	"fmt"
	"os"
	"time"

	"github.com/ilyakaznacheev/cleanenv"
)

type Config struct {
	Env        string `yaml:"env" env:"BILLED_ENV" env-default:"local"`
	HTTPServer `yaml:"http_server"`
	Database   `yaml:"database"`
	Auth       `yaml:"auth"`
	Uploads    `yaml:"uploads"`
}

type HTTPServer struct {
	Address        string        `yaml:"address" env:"HTTP_ADDRESS" env-default:":5678"`
	ReadTimeout    time.Duration `yaml:"read_timeout" env-default:"15s"`
	WriteTimeout   time.Duration `yaml:"write_timeout" env-default:"15s"`
	IdleTimeout    time.Duration `yaml:"idle_timeout" env-default:"60s"`
	AllowedOrigins []string      `yaml:"allowed_origins" env:"CORS_ORIGINS" env-separator:"," env-default:"http://localhost:8080"`
}

type Database struct {
	// Driver is "sqlite" or "postgres".
	Driver string `yaml:"driver" env:"DB_DRIVER" env-default:"sqlite"`
	Path   string `yaml:"path" env:"DB_PATH" env-default:"./data/billed.db"`
	URL    string `yaml:"url" env:"DATABASE_URL"`
}

type Auth struct {
	JWTSecret string        `yaml:"jwt_secret" env:"JWT_SECRET" env-required:"true"`
	TokenTTL  time.Duration `yaml:"token_ttl" env:"JWT_TTL" env-default:"24h"`
}

type Uploads struct {
	Dir     string `yaml:"dir" env:"UPLOADS_DIR" env-default:"./data/public"`
	BaseURL string `yaml:"base_url" env:"UPLOADS_BASE_URL" env-default:"http://localhost:5678/public"`
}

// Client holds the command-line client settings. Everything comes from the
// environment.
type Client struct {
	Env          string `env:"BILLED_ENV" env-default:"local"`
	APIURL       string `env:"BILLED_API_URL" env-default:"http://localhost:5678"`
	LocalStorage string `env:"BILLED_LOCAL_STORAGE" env-default:"./data/local.db"`
}

// MustLoad reads the server config or panics. An empty path reads the
// environment only.
func MustLoad(configPath string) *Config {
	if configPath != "" {
		if _, err := os.Stat(configPath); err != nil {
			panic(fmt.Sprintf("config file not found: %s", configPath))
		}
	}

	cfg, err := Load(configPath)
	if err != nil {
		panic(fmt.Sprintf("failed to load config: %v", err))
	}

	return cfg
}

func Load(configPath string) (*Config, error) {
	var cfg Config

	if configPath == "" {
		if err := cleanenv.ReadEnv(&cfg); err != nil {
			return nil, err
		}
	} else if err := cleanenv.ReadConfig(configPath, &cfg); err != nil {
		return nil, err
	}

	if cfg.Driver != "sqlite" && cfg.Driver != "postgres" {
		return nil, fmt.Errorf("unsupported database driver %q", cfg.Driver)
	}
	if cfg.Driver == "postgres" && cfg.URL == "" {
		return nil, fmt.Errorf("database url is required for postgres")
	}

	return &cfg, nil
}

func LoadClient() (*Client, error) {
	var cfg Client
	if err := cleanenv.ReadEnv(&cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}
