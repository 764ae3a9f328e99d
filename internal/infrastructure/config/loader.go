package config

import (
	"encoding/json"
	"fmt"
	"io/fs"
	"os"
)

// AppFile is the name of the application config file
const AppFile = "app.json"

// Loader loads application configuration from JSON files using fs.FS interface
type Loader struct {
	fsys     fs.FS
	basePath string
}

// NewLoader creates a new config loader from filesystem path
func NewLoader(basePath string) *Loader {
	return &Loader{
		fsys:     os.DirFS(basePath),
		basePath: basePath,
	}
}

// NewFSLoader creates a new config loader from fs.FS
func NewFSLoader(fsys fs.FS, basePath string) *Loader {
	return &Loader{
		fsys:     fsys,
		basePath: basePath,
	}
}

// LoadApp loads app.json. Fields missing from the file keep their
// built-in defaults.
func (l *Loader) LoadApp() (*AppConfig, error) {
	data, err := fs.ReadFile(l.fsys, AppFile)
	if err != nil {
		return nil, fmt.Errorf("failed to read %s/%s: %w", l.basePath, AppFile, err)
	}

	cfg := Default()
	if err := json.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse %s: %w", AppFile, err)
	}

	return cfg, nil
}

// LoadAll loads app.json, applies environment overrides and validates
// the result.
func (l *Loader) LoadAll() (*AppConfig, error) {
	cfg, err := l.LoadApp()
	if err != nil {
		return nil, err
	}

	if err := ApplyEnv(cfg, nil); err != nil {
		return nil, err
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	return cfg, nil
}
