// Package store reads and writes the task list file.
package store

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"todoster/internal/task"
)

// Load reads the list at path. A missing file is an empty list, not an
// error; anything else that goes wrong is fatal for the invocation.
func Load(path string) (*task.List, error) {
	// #nosec G304 -- path is controlled by the app config location
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return &task.List{}, nil
		}
		return nil, fmt.Errorf("read store %s: %w", path, err)
	}
	var list task.List
	if err := json.Unmarshal(data, &list); err != nil {
		return nil, fmt.Errorf("parse store %s: %w", path, err)
	}
	return &list, nil
}

// Save writes the list to path, creating the parent directory if needed.
func Save(path string, list *task.List) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o700); err != nil {
		return fmt.Errorf("create directory %s: %w", dir, err)
	}
	data, err := json.MarshalIndent(list, "", "  ")
	if err != nil {
		return err
	}
	data = append(data, '\n')
	if err := os.WriteFile(path, data, 0o600); err != nil {
		return fmt.Errorf("write store %s: %w", path, err)
	}
	return nil
}
