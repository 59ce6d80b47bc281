// Package timeparse resolves the configured timezone into a time.Location.
package timeparse

import (
	"strings"
	"time"
)

func LoadLocation(name string) (*time.Location, error) {
	if name == "" || strings.EqualFold(name, "local") {
		return time.Local, nil
	}
	return time.LoadLocation(name)
}
