// Package config loads each service's settings from the environment with
// go-envconfig. Every service shares Server; the rest is per binary.
package config

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/sethvargo/go-envconfig"
)

const (
	StoreFile  = "file"
	StoreS3    = "s3"
	StoreRedis = "redis"
	StoreMongo = "mongo"
)

type Server struct {
	Port            string        `env:"PORT,             default=8080"`
	Env             string        `env:"ENV,              default=development"`
	LogLevel        string        `env:"LOG_LEVEL,        default=info"`
	JWTSecret       string        `env:"JWT_SECRET,       required"`
	RequestTimeout  time.Duration `env:"REQUEST_TIMEOUT,  default=10s"`
	ShutdownTimeout time.Duration `env:"SHUTDOWN_TIMEOUT, default=10s"`
}

// Development reports whether human-friendly log output should be used.
func (s Server) Development() bool {
	return strings.EqualFold(s.Env, "development")
}

func (s Server) Addr() string {
	return ":" + s.Port
}

type Auth struct {
	Server

	TokenTTL  time.Duration `env:"TOKEN_TTL,       default=24h"`
	RateLimit float64       `env:"AUTH_RATE_LIMIT, default=5"`
	RateBurst int           `env:"AUTH_RATE_BURST, default=10"`

	UserStore string `env:"USER_STORE, default=file"`
	UsersFile string `env:"USERS_FILE, default=users.json"`

	S3    S3Config
	Redis RedisConfig
	Mongo MongoConfig
}

type S3Config struct {
	Bucket          string `env:"S3_BUCKET"`
	Key             string `env:"S3_KEY,            default=users.json"`
	Region          string `env:"S3_REGION,         default=us-east-1"`
	Endpoint        string `env:"S3_ENDPOINT"`
	AccessKeyID     string `env:"S3_ACCESS_KEY_ID"`
	SecretAccessKey string `env:"S3_SECRET_ACCESS_KEY"`
	UsePathStyle    bool   `env:"S3_USE_PATH_STYLE, default=false"`
}

type RedisConfig struct {
	Addr     string `env:"REDIS_ADDR,     default=localhost:6379"`
	Password string `env:"REDIS_PASSWORD"`
	DB       int    `env:"REDIS_DB,       default=0"`
	Key      string `env:"REDIS_USERS_KEY, default=cityweather:users"`
}

type MongoConfig struct {
	URI      string `env:"MONGO_URI, default=mongodb://localhost:27017"`
	Database string `env:"MONGO_DB,  default=cityweather"`
}

type Suggestions struct {
	Server

	GeoNamesUsername string `env:"GEONAMES_USERNAME, required"`
	GeoNamesBaseURL  string `env:"GEONAMES_BASE_URL, default=http://api.geonames.org"`
	GeoNamesMaxRows  int    `env:"GEONAMES_MAX_ROWS, default=5"`
}

type Weather struct {
	Server

	OpenWeatherAPIKey  string `env:"OPENWEATHER_API_KEY,  required"`
	OpenWeatherBaseURL string `env:"OPENWEATHER_BASE_URL, default=https://api.openweathermap.org/data/2.5"`
	OpenWeatherUnits   string `env:"OPENWEATHER_UNITS,    default=metric"`
}

// LoadAuth reads the auth service configuration. A nil lookuper reads the
// process environment.
func LoadAuth(ctx context.Context, l envconfig.Lookuper) (*Auth, error) {
	var cfg Auth
	if err := process(ctx, l, &cfg); err != nil {
		return nil, err
	}
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func LoadSuggestions(ctx context.Context, l envconfig.Lookuper) (*Suggestions, error) {
	var cfg Suggestions
	if err := process(ctx, l, &cfg); err != nil {
		return nil, err
	}
	if err := cfg.Server.validate(); err != nil {
		return nil, err
	}
	if strings.TrimSpace(cfg.GeoNamesUsername) == "" {
		return nil, errors.New("config: GEONAMES_USERNAME must not be empty")
	}
	return &cfg, nil
}

func LoadWeather(ctx context.Context, l envconfig.Lookuper) (*Weather, error) {
	var cfg Weather
	if err := process(ctx, l, &cfg); err != nil {
		return nil, err
	}
	if err := cfg.Server.validate(); err != nil {
		return nil, err
	}
	if strings.TrimSpace(cfg.OpenWeatherAPIKey) == "" {
		return nil, errors.New("config: OPENWEATHER_API_KEY must not be empty")
	}
	return &cfg, nil
}

func process(ctx context.Context, l envconfig.Lookuper, target any) error {
	if l == nil {
		l = envconfig.OsLookuper()
	}
	if err := envconfig.ProcessWith(ctx, &envconfig.Config{
		Target:   target,
		Lookuper: l,
	}); err != nil {
		return fmt.Errorf("config: %w", err)
	}
	return nil
}

// required only checks presence, so an empty secret is rejected here.
func (s Server) validate() error {
	if s.JWTSecret == "" {
		return errors.New("config: JWT_SECRET must not be empty")
	}
	if s.RequestTimeout <= 0 {
		return errors.New("config: REQUEST_TIMEOUT must be positive")
	}
	return nil
}

func (a Auth) validate() error {
	if err := a.Server.validate(); err != nil {
		return err
	}
	if a.RateLimit < 0 || a.RateBurst < 0 {
		return errors.New("config: AUTH_RATE_LIMIT and AUTH_RATE_BURST must not be negative")
	}

	switch a.UserStore {
	case StoreFile:
		if a.UsersFile == "" {
			return errors.New("config: USERS_FILE must not be empty")
		}
	case StoreS3:
		if a.S3.Bucket == "" {
			return errors.New("config: S3_BUCKET is required when USER_STORE=s3")
		}
	case StoreRedis, StoreMongo:
	default:
		return fmt.Errorf("config: unknown USER_STORE %q (want file, s3, redis or mongo)", a.UserStore)
	}
	return nil
}
