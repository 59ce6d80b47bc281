package config

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
)

type Config struct {
	Timezone  string `json:"timezone"`
	StoreFile string `json:"store_file"`
}

func Default() *Config {
	return &Config{
		Timezone:  "local",
		StoreFile: "todos.json",
	}
}

func Load(path string) (*Config, error) {
	// #nosec G304 -- path is controlled by the app config location
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var cfg Config
	if err := json.Unmarshal(data, &cfg); err != nil {
		return nil, err
	}
	normalize(&cfg)
	return &cfg, nil
}

func Save(path string, cfg *Config) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o700); err != nil {
		return err
	}
	data, err := json.MarshalIndent(cfg, "", "  ")
	if err != nil {
		return err
	}
	data = append(data, '\n')
	return os.WriteFile(path, data, 0o600)
}

func LoadOrCreate(path string) (*Config, error) {
	// #nosec G304 -- path is controlled by the app config location
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			cfg := Default()
			if err := Save(path, cfg); err != nil {
				return nil, err
			}
			return cfg, nil
		}
		return nil, err
	}
	var cfg Config
	if err := json.Unmarshal(data, &cfg); err != nil {
		return nil, err
	}
	normalize(&cfg)
	return &cfg, nil
}

func normalize(cfg *Config) {
	if strings.TrimSpace(cfg.Timezone) == "" {
		cfg.Timezone = "local"
	}
	if strings.TrimSpace(cfg.StoreFile) == "" {
		cfg.StoreFile = "todos.json"
	}
}
