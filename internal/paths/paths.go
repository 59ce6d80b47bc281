package paths

import (
	"os"
	"path/filepath"
)

const (
	appDirName = "todoster"
	configFile = "config.json"
	storeFile  = "todos.json"
)

func ConfigDir() (string, error) {
	if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
		return filepath.Join(xdg, appDirName), nil
	}
	// Prefer an existing ~/.config/todoster on platforms where
	// os.UserConfigDir points elsewhere (macOS, Windows); on Linux the
	// two resolve to the same directory.
	if home, err := os.UserHomeDir(); err == nil {
		dotConfig := filepath.Join(home, ".config", appDirName)
		if _, err := os.Stat(dotConfig); err == nil {
			return dotConfig, nil
		}
	}
	cfg, err := os.UserConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(cfg, appDirName), nil
}

func ConfigPath() (string, error) {
	dir, err := ConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, configFile), nil
}

// StorePath resolves the task store location inside the config dir. An empty
// filename means the default store file.
func StorePath(filename string) (string, error) {
	dir, err := ConfigDir()
	if err != nil {
		return "", err
	}
	if filename == "" {
		filename = storeFile
	}
	return filepath.Join(dir, filename), nil
}
