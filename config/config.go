package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Foursquare API defaults.
// Photo sizes supported by the API: 36, 100, 300 or 500.
// Category icon sizes supported by the API: 32, 44, 64 and 88.
const FOURSQUARE_ENDPOINT_BASE_V2 = "https://api.foursquare.com/v2"
const FOURSQUARE_VENUES_GROUP = "/venues"
const FOURSQUARE_API_VERSION = "20180317"
const FOURSQUARE_PHOTO_SIZE = 500
const FOURSQUARE_CATEGORY_ICON_SIZE = 88
const FOURSQUARE_SEARCH_LIMIT = 10
const FOURSQUARE_TIPS_PAGE_SIZE = 10

// Projection settings.
const SEARCH_RESULT_SEP = " in " // Beer 'in' London
const PLACEHOLDER_IMAGE_URL = "http://via.placeholder.com/500x500/12195f/ff5f5f?text=:(%20No%20Image"

// User-visible messages.
const MSG_ERROR_TITLE = "Ooops! Something bad happened."
const MSG_API_RESPONSE_TITLE = "Foursquare says:"
const MSG_NO_RESULTS_TEXT = "Sorry, no results found. Please try again."
const MSG_CLEARED_ALL = "Perfect! All clear."

// Resources file paths
const RESOURCES_PATH_PREFIX = "resources"
const EXPLORE_RESPONSE_RESOURCE = "explore_response.json"
const VENUE_PHOTOS_RESPONSE_RESOURCE = "venue_photos_response.json"
const VENUE_TIPS_RESPONSE_RESOURCE = "venue_tips_response.json"

// Config holds the file-driven configuration of the service.
type Config struct {
	Server     ServerConfig     `yaml:"server"`
	Redis      RedisConfig      `yaml:"redis"`
	Foursquare FoursquareConfig `yaml:"foursquare"`
	Log        LogConfig        `yaml:"log"`
}

// ServerConfig holds the HTTP server configuration.
type ServerConfig struct {
	Host string `yaml:"host"`
	Port int    `yaml:"port"`
}

// RedisConfig holds the snapshot store configuration.
type RedisConfig struct {
	Address  string `yaml:"address"`
	Password string `yaml:"password"`
	DB       int    `yaml:"db"`
}

// FoursquareConfig holds the userless-auth credentials for the API.
type FoursquareConfig struct {
	ClientID     string `yaml:"client_id"`
	ClientSecret string `yaml:"client_secret"`
}

// LogConfig holds logging configuration.
type LogConfig struct {
	Level string `yaml:"level"`
}

// Default returns the configuration used when no config file is present.
func Default() *Config {
	return &Config{
		Server: ServerConfig{Host: "", Port: 8080},
		Redis:  RedisConfig{Address: "redis:6379", Password: "", DB: 0},
		Log:    LogConfig{Level: "info"},
	}
}

// Load reads configuration from a YAML file.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file %q: %w", path, err)
	}

	cfg := Default()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config file %q: %w", path, err)
	}

	return cfg, nil
}

// Addr returns the listen address of the HTTP server.
func (c *ServerConfig) Addr() string {
	return fmt.Sprintf("%s:%d", c.Host, c.Port)
}

// BaseDir returns the absolute path of the project root directory
func BaseDir() string {
	// Check if PROJECT_ROOT is set
	if root := os.Getenv("PROJECT_ROOT"); root != "" {
		return root
	}

	// Default to the current working directory
	wd, err := os.Getwd()
	if err != nil {
		panic("Unable to determine working directory: " + err.Error())
	}

	return wd
}

func GetResourcePath(resourceFile string) string {
	return filepath.Join(BaseDir(), RESOURCES_PATH_PREFIX, resourceFile)
}
