package config

import (
	"fmt"
	"github.com/ilyakaznacheev/cleanenv"
	"log"
	"os"
	"roomBooker/internal/models"
	"time"
)

type Config struct {
	Env        string     `yaml:"env" env:"ENV" env-default:"local"`
	HTTPServer HTTPServer `yaml:"http_server"`
	Database   Database   `yaml:"database"`
	Booking    Booking    `yaml:"booking"`
	RateLimit  RateLimit  `yaml:"rate_limit"`
}

type HTTPServer struct {
	Address     string        `yaml:"address" env:"HTTP_ADDRESS" env-default:"localhost:8080"`
	Timeout     time.Duration `yaml:"timeout" env-default:"4s"`
	IdleTimeout time.Duration `yaml:"idle_timeout" env-default:"60s"`
}

type Database struct {
	Enabled  bool   `yaml:"enabled" env:"DB_ENABLED" env-default:"false"`
	Host     string `yaml:"host" env:"DB_HOST" env-default:"localhost"`
	Port     int    `yaml:"port" env:"DB_PORT" env-default:"5432"`
	User     string `yaml:"user" env:"DB_USER" env-default:"postgres"`
	Password string `yaml:"password" env:"DB_PASSWORD"`
	DBName   string `yaml:"dbname" env:"DB_NAME" env-default:"room_booker"`
	SSLMode  string `yaml:"sslmode" env:"DB_SSLMODE" env-default:"disable"`
}

type Booking struct {
	WorkspaceWindow  string        `yaml:"workspace_window" env-default:"00:00-23:59"`
	RoomWindow       string        `yaml:"room_window" env-default:"09:00-18:00"`
	SnapshotInterval time.Duration `yaml:"snapshot_interval" env-default:"1m"`
	Seed             bool          `yaml:"seed" env:"BOOKING_SEED" env-default:"false"`
}

type RateLimit struct {
	RPS   float64       `yaml:"rps" env-default:"20"`
	Burst int           `yaml:"burst" env-default:"40"`
	TTL   time.Duration `yaml:"ttl" env-default:"10m"`
}

func MustLoad() *Config {
	configPath := os.Getenv("CONFIG_PATH")
	if configPath == "" {
		log.Fatal("CONFIG_PATH is not set")
	}

	cfg, err := Load(configPath)
	if err != nil {
		log.Fatal(err)
	}

	return cfg
}

func Load(configPath string) (*Config, error) {
	if _, err := os.Stat(configPath); os.IsNotExist(err) {
		return nil, fmt.Errorf("config file does not exist: %s", configPath)
	}

	var cfg Config

	if err := cleanenv.ReadConfig(configPath, &cfg); err != nil {
		return nil, fmt.Errorf("cannot read config: %w", err)
	}

	if _, err := cfg.Booking.Windows(); err != nil {
		return nil, fmt.Errorf("invalid booking windows: %w", err)
	}

	return &cfg, nil
}

// Windows builds the day window policy from the "HH:MM-HH:MM" settings.
func (b Booking) Windows() (models.WindowPolicy, error) {
	ws, err := parseWindow(b.WorkspaceWindow)
	if err != nil {
		return nil, fmt.Errorf("workspace_window: %w", err)
	}

	room, err := parseWindow(b.RoomWindow)
	if err != nil {
		return nil, fmt.Errorf("room_window: %w", err)
	}

	return models.WindowPolicy{
		models.KindWorkspace:      ws,
		models.KindConferenceRoom: room,
	}, nil
}

func parseWindow(s string) (models.Window, error) {
	if len(s) != len("00:00-00:00") || s[5] != '-' {
		return models.Window{}, fmt.Errorf("window %q must look like HH:MM-HH:MM", s)
	}

	start, err := models.ParseTimeOfDay(s[:5])
	if err != nil {
		return models.Window{}, err
	}

	end, err := models.ParseTimeOfDay(s[6:])
	if err != nil {
		return models.Window{}, err
	}

	if end <= start {
		return models.Window{}, fmt.Errorf("window %q ends before it starts", s)
	}

	return models.Window{Start: start, End: end}, nil
}
