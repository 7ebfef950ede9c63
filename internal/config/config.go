package config

import (
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Config holds application configuration
type Config struct {
	// Timeout applied to each HTTP lookup (geocoding, prayer times)
	// Default: 10s
	HTTPTimeout time.Duration

	// Maximum interactive attempts before giving up on a location
	MaxAttempts int

	Aladhan   AladhanConfig
	Nominatim NominatimConfig
	Audio     AudioConfig
}

// AladhanConfig holds prayer times API settings
type AladhanConfig struct {
	BaseURL string
	Method  int // Calculation method id, 2 = ISNA
}

// NominatimConfig holds geocoding settings
type NominatimConfig struct {
	BaseURL   string
	UserAgent string
	Language  string
}

// AudioConfig holds playback settings
type AudioConfig struct {
	Dir          string        // Default directory for the play command
	Player       string        // External player command line
	Extensions   []string      // File extensions to play
	PollInterval time.Duration // How often to check whether a track finished
}

// Load reads configuration from file and environment.
// path overrides the default config file location when non-empty.
func Load(path string) (*Config, error) {
	// Values from a .env file in the working directory become environment
	// variables; variables already set take precedence.
	_ = godotenv.Load()

	v := viper.New()

	if path != "" {
		v.SetConfigFile(path)
	} else {
		v.SetConfigName("config")
		v.SetConfigType("yaml")

		// Config file locations (in order of precedence)
		v.AddConfigPath(getConfigDir())
		v.AddConfigPath(".")
	}

	setDefaults(v)

	if err := v.ReadInConfig(); err != nil {
		// A missing default config is fine; an explicit path must exist.
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok || path != "" {
			return nil, err
		}
	}

	// Read from environment variables, e.g. HOMEPOD_ALADHAN_METHOD
	v.SetEnvPrefix("HOMEPOD")
	v.SetEnvKeyReplacer(envKeyReplacer)
	v.AutomaticEnv()

	cfg := &Config{
		HTTPTimeout: v.GetDuration("http_timeout"),
		MaxAttempts: v.GetInt("location.max_attempts"),
		Aladhan: AladhanConfig{
			BaseURL: v.GetString("aladhan.base_url"),
			Method:  v.GetInt("aladhan.method"),
		},
		Nominatim: NominatimConfig{
			BaseURL:   v.GetString("nominatim.base_url"),
			UserAgent: v.GetString("nominatim.user_agent"),
			Language:  v.GetString("nominatim.language"),
		},
		Audio: AudioConfig{
			Dir:          v.GetString("audio.dir"),
			Player:       v.GetString("audio.player"),
			Extensions:   v.GetStringSlice("audio.extensions"),
			PollInterval: v.GetDuration("audio.poll_interval"),
		},
	}

	return cfg, nil
}

var envKeyReplacer = strings.NewReplacer(".", "_")

func setDefaults(v *viper.Viper) {
	v.SetDefault("http_timeout", 10*time.Second)
	v.SetDefault("location.max_attempts", 3)
	v.SetDefault("aladhan.base_url", "https://api.aladhan.com/v1")
	v.SetDefault("aladhan.method", 2)
	v.SetDefault("nominatim.base_url", "https://nominatim.openstreetmap.org")
	v.SetDefault("nominatim.user_agent", "homepod/1.0")
	v.SetDefault("nominatim.language", "")
	v.SetDefault("audio.dir", "")
	v.SetDefault("audio.player", "ffplay -nodisp -autoexit -loglevel quiet")
	v.SetDefault("audio.extensions", []string{".mp3"})
	v.SetDefault("audio.poll_interval", 100*time.Millisecond)
}

// getConfigDir returns the configuration directory path
func getConfigDir() string {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "."
	}

	return filepath.Join(homeDir, ".config", "homepod")
}

// GetConfigDir returns the directory searched for config.yaml when no
// explicit path is given.
func GetConfigDir() string {
	return getConfigDir()
}
