package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/go-playground/validator/v10"
	"github.com/pelletier/go-toml/v2"
)

// DefaultPath is the config file looked up in the working directory
const DefaultPath = "lassopick.toml"

// Config represents the application configuration
type Config struct {
	Points    PointsSettings    `toml:"points"`
	Selection SelectionSettings `toml:"selection"`
	Export    ExportSettings    `toml:"export"`
	UI        UISettings        `toml:"ui"`
	Log       LogSettings       `toml:"log"`
}

// PointsSettings controls how the initial point table is read
type PointsSettings struct {
	Columns string `toml:"columns" validate:"oneof=xy yx"`
}

// SelectionSettings records the membership convention in force
type SelectionSettings struct {
	Boundary string `toml:"boundary" validate:"oneof=inclusive"`
}

// ExportSettings controls where exports are written
type ExportSettings struct {
	Dir       string `toml:"dir" validate:"required"`
	Extension string `toml:"extension" validate:"required,startswith=.,excludesall=/\\"`
}

// UISettings represents UI-related configuration
type UISettings struct {
	SelectedColor   string `toml:"selected_color" validate:"required"`
	UnselectedColor string `toml:"unselected_color" validate:"required"`
	LassoColor      string `toml:"lasso_color" validate:"required"`
	Marker          string `toml:"marker" validate:"required"`
	ShowBackdrop    bool   `toml:"show_backdrop"`
}

// LogSettings controls the log file
type LogSettings struct {
	File  string `toml:"file"`
	Level string `toml:"level" validate:"oneof=debug info warn error"`
}

// ConfigService handles configuration management
type ConfigService interface {
	LoadFromPath(path string) (*Config, error)
	SaveToPath(config *Config, path string) error
}

// configService is the concrete implementation
type configService struct {
	validate *validator.Validate
}

// NewConfigService creates a new config service
func NewConfigService() ConfigService {
	return &configService{validate: validator.New()}
}

// LoadFromPath loads configuration from a specific path. A missing file
// yields the defaults; values present in the file override them.
func (cs *configService) LoadFromPath(path string) (*Config, error) {
	cfg := DefaultConfig()

	data, err := os.ReadFile(path)
	if errors.Is(err, os.ErrNotExist) {
		return cfg, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	if err := toml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}

	if err := cs.Validate(cfg); err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return cfg, nil
}

// SaveToPath saves configuration to a specific path
func (cs *configService) SaveToPath(config *Config, path string) error {
	if err := cs.Validate(config); err != nil {
		return err
	}

	// Ensure config directory exists
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	data, err := toml.Marshal(config)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}
	return nil
}

// Validate checks every field against its constraints
func (cs *configService) Validate(config *Config) error {
	if err := cs.validate.Struct(config); err != nil {
		var verrs validator.ValidationErrors
		if errors.As(err, &verrs) && len(verrs) > 0 {
			fe := verrs[0]
			return fmt.Errorf("invalid config: %s fails %q (got %v)", fe.Namespace(), fe.Tag(), fe.Value())
		}
		return fmt.Errorf("invalid config: %w", err)
	}
	return nil
}

// DefaultConfig returns the default configuration
func DefaultConfig() *Config {
	return &Config{
		Points: PointsSettings{
			Columns: "xy",
		},
		Selection: SelectionSettings{
			Boundary: "inclusive",
		},
		Export: ExportSettings{
			Dir:       ".",
			Extension: ".txt",
		},
		UI: UISettings{
			SelectedColor:   "196", // red
			UnselectedColor: "33",  // blue
			LassoColor:      "226", // yellow
			Marker:          "■",
			ShowBackdrop:    true,
		},
		Log: LogSettings{
			File:  "lassopick.log",
			Level: "info",
		},
	}
}
