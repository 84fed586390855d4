// Package config loads the YAML configuration shared by the game and the SSH
// host. Every field has a default, so a missing file is not an error.
package config

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"
)

// ErrInvalidConfig is wrapped by every validation failure.
var ErrInvalidConfig = errors.New("invalid configuration")

type Config struct {
	Players Players     `yaml:"players"`
	Theme   string      `yaml:"theme" validate:"required"`
	Themes  []ThemeSpec `yaml:"themes" validate:"dive"`
	Layout  Layout      `yaml:"layout"`
	Log     Log         `yaml:"log"`
	Server  Server      `yaml:"server"`
}

type Players struct {
	White string `yaml:"white" validate:"required,max=16"`
	Black string `yaml:"black" validate:"required,max=16"`
}

// ThemeSpec is a theme in hex colours, converted by the gui package.
type ThemeSpec struct {
	Name           string `yaml:"name" validate:"required"`
	SquareLight    string `yaml:"squareLight"`
	SquareDark     string `yaml:"squareDark"`
	SquareSelected string `yaml:"squareSelected"`
	SquareLastMove string `yaml:"squareLastMove"`
	SquareCursor   string `yaml:"squareCursor"`
	WhitePiece     string `yaml:"whitePiece"`
	BlackPiece     string `yaml:"blackPiece"`
	StatusBg       string `yaml:"statusBg"`
	StatusFg       string `yaml:"statusFg"`
	Turn           string `yaml:"turn"`
	ResetBg        string `yaml:"resetBg"`
	ResetFg        string `yaml:"resetFg"`
	Label          string `yaml:"label"`
}

type Layout struct {
	SquareWidth  int `yaml:"squareWidth" validate:"min=3,max=12"`
	SquareHeight int `yaml:"squareHeight" validate:"min=1,max=6"`
}

type Log struct {
	Level  string `yaml:"level" validate:"oneof=debug info warn warning error"`
	File   string `yaml:"file"`
	Format string `yaml:"format" validate:"oneof=console json"`
}

type Server struct {
	Addr        string        `yaml:"addr" validate:"required"`
	HostKeyFile string        `yaml:"hostKeyFile"`
	Binary      string        `yaml:"binary" validate:"required"`
	IdleTimeout time.Duration `yaml:"idleTimeout"`
}

// Default returns the configuration used when no file is given.
func Default() *Config {
	return &Config{
		Players: Players{White: "White", Black: "Black"},
		Theme:   "basic",
		Layout:  Layout{SquareWidth: 6, SquareHeight: 3},
		Log:     Log{Level: "info", File: "./hotseat.log", Format: "console"},
		Server: Server{
			Addr:        ":2222",
			Binary:      "hotseat",
			IdleTimeout: 5 * time.Minute,
		},
	}
}

// Load reads path over the defaults. An empty path returns the defaults.
func Load(path string) (*Config, error) {
	cfg := Default()
	if strings.TrimSpace(path) == "" {
		return cfg, cfg.Validate()
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config: %w", err)
	}
	return Parse(data)
}

// Parse decodes YAML over the defaults.
func Parse(data []byte) (*Config, error) {
	cfg := Default()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parse config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

var validate = validator.New()

// Validate checks field constraints.
func (c *Config) Validate() error {
	err := validate.Struct(c)
	if err == nil {
		return nil
	}
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return fmt.Errorf("%w: %v", ErrInvalidConfig, err)
	}
	var details strings.Builder
	for _, fe := range verrs {
		if details.Len() > 0 {
			details.WriteString("; ")
		}
		switch fe.Tag() {
		case "required":
			details.WriteString(fmt.Sprintf("%s is required", fe.Namespace()))
		case "oneof":
			details.WriteString(fmt.Sprintf("%s must be one of [%s]", fe.Namespace(), fe.Param()))
		case "min":
			details.WriteString(fmt.Sprintf("%s must be at least %s", fe.Namespace(), fe.Param()))
		case "max":
			details.WriteString(fmt.Sprintf("%s must be at most %s", fe.Namespace(), fe.Param()))
		default:
			details.WriteString(fmt.Sprintf("%s failed %s validation", fe.Namespace(), fe.Tag()))
		}
	}
	return fmt.Errorf("%w: %s", ErrInvalidConfig, details.String())
}
