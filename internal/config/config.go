package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// DatabaseConfig holds PostgreSQL connection parameters.
type DatabaseConfig struct {
	Host     string `yaml:"host"`
	Port     int    `yaml:"port"`
	User     string `yaml:"user"`
	Password string `yaml:"password"`
	DBName   string `yaml:"dbname"`
	SSLMode  string `yaml:"sslmode"`
}

// DSN returns the PostgreSQL connection string.
func (d DatabaseConfig) DSN() string {
	return fmt.Sprintf(
		"postgres://%s:%s@%s:%d/%s?sslmode=%s",
		d.User, d.Password, d.Host, d.Port, d.DBName, d.SSLMode,
	)
}

// WorldConfig holds overmap and spawn parameters.
type WorldConfig struct {
	// Starting submap position for new players.
	SpawnX int32 `yaml:"spawn_x"`
	SpawnY int32 `yaml:"spawn_y"`

	// Search bound for mission target lookups, in overmap terrain
	// cells. 0 keeps the built-in default.
	TargetSearchRange int32 `yaml:"target_search_range"`
}

// GameServer holds all configuration for the game server.
type GameServer struct {
	// Network
	BindAddress string `yaml:"bind_address"`
	Port        int    `yaml:"port"`

	// Logging: debug, info, warn or error.
	LogLevel string `yaml:"log_level"`

	// Database
	Database DatabaseConfig `yaml:"database"`

	// World
	World WorldConfig `yaml:"world"`
}

// DefaultGameServer returns GameServer config with sensible defaults.
func DefaultGameServer() GameServer {
	return GameServer{
		BindAddress: "0.0.0.0",
		Port:        7777,
		LogLevel:    "info",
		Database: DatabaseConfig{
			Host:     "127.0.0.1",
			Port:     5432,
			User:     "wastefall",
			Password: "wastefall",
			DBName:   "wastefall",
			SSLMode:  "disable",
		},
		World: WorldConfig{
			SpawnX: 0,
			SpawnY: 0,
		},
	}
}

// LoadGameServer loads game server config from a YAML file.
// If the file doesn't exist, returns defaults.
func LoadGameServer(path string) (GameServer, error) {
	cfg := DefaultGameServer()

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return cfg, fmt.Errorf("reading config %s: %w", path, err)
	}

	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("parsing config %s: %w", path, err)
	}

	return cfg, nil
}
