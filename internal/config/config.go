package config

import (
	"encoding/hex"
	"errors"
	"fmt"
	"net/url"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

const (
	EnvDev   = "dev"
	EnvStage = "stage"
	EnvProd  = "prod"
)

var (
	ErrInvalidBaseURL     = errors.New("base_url must be an absolute http(s) url")
	ErrInvalidFallbackURL = errors.New("fallback_url must be an absolute http(s) url")
	ErrInvalidTokenKey    = errors.New("auth.token_key must be 32 bytes hex encoded")
)

type Config struct {
	Env         string `yaml:"env"`
	BaseURL     string `yaml:"base_url"`
	FallbackURL string `yaml:"fallback_url"`
	HTTPServer  `yaml:"http_server"`
	Postgres    `yaml:"postgres"`
	Auth        `yaml:"auth"`
	Retry       `yaml:"retry"`
	QR          `yaml:"qr"`
}

type HTTPServer struct {
	Port           int           `yaml:"port"`
	ReadTimeout    time.Duration `yaml:"read_timeout"`
	WriteTimeout   time.Duration `yaml:"write_timeout"`
	IdleTimeout    time.Duration `yaml:"idle_timeout"`
	MaxHeaderBytes int           `yaml:"max_header_bytes"`
	CertFile       string        `yaml:"cert_file"`
	KeyFile        string        `yaml:"key_file"`
}

var defaultHTTPServer = HTTPServer{
	Port:           8080,
	ReadTimeout:    5 * time.Second,
	WriteTimeout:   10 * time.Second,
	IdleTimeout:    time.Minute,
	MaxHeaderBytes: 1 << 20,
}

func (s *HTTPServer) Addr() string {
	return fmt.Sprintf(":%d", s.Port)
}

type Postgres struct {
	User            string        `yaml:"user"`
	Password        string        `yaml:"password"`
	Host            string        `yaml:"host"`
	Port            int           `yaml:"port"`
	DB              string        `yaml:"db"`
	SSLMode         string        `yaml:"sslmode"`
	ConnMaxIdleTime time.Duration `yaml:"conn_max_idle_time"`
	ConnMaxLifetime time.Duration `yaml:"conn_max_lifetime"`
	MaxIdleConns    int           `yaml:"max_idle_conns"`
	MaxOpenConns    int           `yaml:"max_open_conns"`
	MigrationsPath  string        `yaml:"migrations_path"`
}

var defaultPostgres = Postgres{
	Host:            "localhost",
	Port:            5432,
	SSLMode:         "disable",
	ConnMaxIdleTime: 5 * time.Minute,
	ConnMaxLifetime: 30 * time.Minute,
	MaxIdleConns:    5,
	MaxOpenConns:    25,
	MigrationsPath:  "file://migrations",
}

func (p *Postgres) DSN() string {
	return fmt.Sprintf("postgres://%s:%s@%s:%d/%s?sslmode=%s",
		url.QueryEscape(p.User), url.QueryEscape(p.Password), p.Host, p.Port, p.DB, p.SSLMode)
}

// Auth configures access tokens and login throttling.
type Auth struct {
	TokenKey   string        `yaml:"token_key"`
	TokenTTL   time.Duration `yaml:"token_ttl"`
	LoginRPS   float64       `yaml:"login_rps"`
	LoginBurst int           `yaml:"login_burst"`
}

var defaultAuth = Auth{
	TokenTTL:   24 * time.Hour,
	LoginRPS:   1,
	LoginBurst: 5,
}

// Retry configures the backoff used for the database connection at start-up
// and for storage errors on the public redirect route.
type Retry struct {
	Attempts     int           `yaml:"attempts"`
	InitialDelay time.Duration `yaml:"initial_delay"`
	MaxDelay     time.Duration `yaml:"max_delay"`
	Multiplier   float64       `yaml:"multiplier"`
	Jitter       float64       `yaml:"jitter"`
}

var defaultRetry = Retry{
	Attempts:     3,
	InitialDelay: 100 * time.Millisecond,
	MaxDelay:     2 * time.Second,
	Multiplier:   2,
	Jitter:       0.5,
}

type QR struct {
	LogoPath string `yaml:"logo_path"`
}

func Load(path string) (*Config, error) {
	const op = "config.Load"

	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("%s: failed to open config file: %w", op, err)
	}
	defer f.Close()

	var cfg Config
	setDefaults(&cfg)

	if err := yaml.NewDecoder(f).Decode(&cfg); err != nil {
		return nil, fmt.Errorf("%s: failed to decode config file: %w", op, err)
	}

	if err := cfg.validate(); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return &cfg, nil
}

func setDefaults(cfg *Config) {
	cfg.Env = EnvDev
	cfg.BaseURL = "http://localhost:8080"
	cfg.HTTPServer = defaultHTTPServer
	cfg.Postgres = defaultPostgres
	cfg.Auth = defaultAuth
	cfg.Retry = defaultRetry
}

func (cfg *Config) validate() error {
	if !isHTTPURL(cfg.BaseURL) {
		return ErrInvalidBaseURL
	}
	if !isHTTPURL(cfg.FallbackURL) {
		return ErrInvalidFallbackURL
	}
	if key, err := hex.DecodeString(cfg.Auth.TokenKey); err != nil || len(key) != 32 {
		return ErrInvalidTokenKey
	}
	return nil
}

func isHTTPURL(raw string) bool {
	u, err := url.Parse(raw)
	if err != nil {
		return false
	}
	return (u.Scheme == "http" || u.Scheme == "https") && u.Host != ""
}
