// Package persist is the on-disk collaborator for the settings store.
// It owns the load boundary: everything read from disk passes through
// the sanitizer before being trusted as typed data.
package persist

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"settingsd/internal/common/fsutil"
	"settingsd/internal/settings"
	"settingsd/pkg/types"
)

// File persists the settings value as pretty-printed JSON at a fixed path.
type File struct {
	path     string
	defaults types.Settings
}

// NewFile builds a file store for path, expanding a leading '~'.
func NewFile(path string, defaults types.Settings) (*File, error) {
	p, err := fsutil.ExpandHome(path)
	if err != nil {
		return nil, err
	}
	if p == "" {
		return nil, fmt.Errorf("empty settings path")
	}
	return &File{path: p, defaults: defaults.Clone()}, nil
}

// Path returns the resolved on-disk location.
func (f *File) Path() string { return f.path }

// Load reads the settings file and sanitizes its numeric fields.
// A missing or corrupt file yields the defaults; Load never fails.
func (f *File) Load() types.Settings {
	data, err := os.ReadFile(f.path)
	if err != nil {
		return f.defaults.Clone()
	}
	var raw settings.Raw
	if err := json.Unmarshal(data, &raw); err != nil {
		return f.defaults.Clone()
	}
	return settings.Sanitize(raw, f.defaults)
}

// Save writes s atomically: temp file in the same directory, then rename.
func (f *File) Save(s types.Settings) error {
	dir := filepath.Dir(f.path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("create settings dir: %w", err)
	}
	data, err := json.MarshalIndent(s, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal settings: %w", err)
	}
	tmp := f.path + ".tmp"
	if err := os.WriteFile(tmp, data, 0o644); err != nil {
		return fmt.Errorf("write temp settings: %w", err)
	}
	if err := os.Rename(tmp, f.path); err != nil {
		return fmt.Errorf("rename settings: %w", err)
	}
	return nil
}
