package config

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"strings"
	"time"

	"github.com/lmittmann/tint"
	"github.com/spf13/viper"

	"github.com/ValeriiVasyliev/webnorthcodechallenge/internal/types"
)

// Config holds all configuration for the application
type Config struct {
	Server      ServerConfig
	Log         LogConfig
	OpenWeather OpenWeatherConfig
	Security    SecurityConfig
	Database    DatabaseConfig
	Stations    []StationSeed
}

// ServerConfig holds server-specific configuration
type ServerConfig struct {
	Port    int
	GinMode string // debug, release, test
}

// LogConfig holds logging configuration
type LogConfig struct {
	Level  string // debug, info, warn, error
	Format string // json, text
}

// OpenWeatherConfig holds the upstream weather API configuration.
type OpenWeatherConfig struct {
	APIKey string
}

// SecurityConfig holds the anti-forgery token secret.
type SecurityConfig struct {
	NonceSecret string
}

// DatabaseConfig holds the SQLite database location. An empty path
// selects the in-memory store.
type DatabaseConfig struct {
	Path string
}

// StationSeed is one station entry from the configuration, loaded into
// the station directory at startup.
type StationSeed struct {
	ID    int
	Title string
	Lat   float64
	Lng   float64
}

// Load reads configuration from file and environment variables
func Load() (*Config, error) {
	// Set config file name and paths
	viper.SetConfigName("config")
	viper.SetConfigType("yaml")
	viper.AddConfigPath(".")
	viper.AddConfigPath("./config")
	viper.AddConfigPath("$HOME/.webnorthcodechallenge")

	// Set defaults
	viper.SetDefault("server.port", 8080)
	viper.SetDefault("server.ginmode", "release")
	viper.SetDefault("log.level", "info")
	viper.SetDefault("log.format", "text")
	viper.SetDefault("openweather.apikey", "")
	viper.SetDefault("security.noncesecret", "")
	viper.SetDefault("database.path", "")

	// Read from environment variables
	viper.SetEnvPrefix("WNCC")
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	viper.AutomaticEnv()

	// Read config file
	if err := viper.ReadInConfig(); err != nil {
		// It's okay if config file doesn't exist, we have defaults
		var configFileNotFoundError viper.ConfigFileNotFoundError
		if !errors.As(err, &configFileNotFoundError) {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	}

	// Unmarshal into config struct
	var cfg Config
	if err := viper.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	return &cfg, nil
}

// GetServerAddr returns the server address in the format ":port"
func (c *Config) GetServerAddr() string {
	return fmt.Sprintf(":%d", c.Server.Port)
}

// StationList converts the configured seeds into directory stations.
func (c *Config) StationList() []types.Station {
	stations := make([]types.Station, 0, len(c.Stations))
	for _, s := range c.Stations {
		stations = append(stations, types.Station{
			ID:     s.ID,
			Title:  s.Title,
			Coords: types.NewCoords(s.Lat, s.Lng),
		})
	}
	return stations
}

// NewLogger creates a new slog.Logger based on the configuration
func (c *Config) NewLogger() *slog.Logger {
	// Parse log level
	var level slog.Level
	switch strings.ToLower(c.Log.Level) {
	case "debug":
		level = slog.LevelDebug
	case "info":
		level = slog.LevelInfo
	case "warn", "warning":
		level = slog.LevelWarn
	case "error":
		level = slog.LevelError
	default:
		level = slog.LevelInfo
	}

	// Choose handler based on format
	var handler slog.Handler
	switch strings.ToLower(c.Log.Format) {
	case "json":
		handler = slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: level})
	default: // "text" or anything else
		handler = tint.NewHandler(os.Stdout, &tint.Options{
			Level:      level,
			TimeFormat: time.Kitchen,
		})
	}

	return slog.New(handler)
}
