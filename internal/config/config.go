// Package config resolves runtime settings from defaults, an optional YAML
// file and TODO_* environment variables.
package config

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

const (
	UIConsole = "console"
	UITUI     = "tui"

	DefaultTasksFile = "todo_list.txt"
)

type RuntimeConfig struct {
	TasksFile string `yaml:"tasks_file"`
	UI        string `yaml:"ui"`
	LogLevel  string `yaml:"log_level"`
	LogFile   string `yaml:"log_file"`
}

func DefaultRuntimeConfig() RuntimeConfig {
	return RuntimeConfig{
		TasksFile: DefaultTasksFile,
		UI:        UIConsole,
		LogLevel:  "info",
	}
}

// LoadFile overlays the non-empty keys of a YAML file onto base.
func LoadFile(path string, base RuntimeConfig) (RuntimeConfig, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return base, fmt.Errorf("config: read %s: %w", path, err)
	}
	var file RuntimeConfig
	if err := yaml.Unmarshal(raw, &file); err != nil {
		return base, fmt.Errorf("config: parse %s: %w", path, err)
	}
	return Merge(base, file), nil
}

func RuntimeConfigFromEnv(base RuntimeConfig) RuntimeConfig {
	return Merge(base, RuntimeConfig{
		TasksFile: getEnv("TODO_FILE"),
		UI:        getEnv("TODO_UI"),
		LogLevel:  getEnv("TODO_LOG_LEVEL"),
		LogFile:   getEnv("TODO_LOG_FILE"),
	})
}

func (c RuntimeConfig) Validate() error {
	if strings.TrimSpace(c.TasksFile) == "" {
		return errors.New("config: tasks file is required")
	}
	switch c.UI {
	case UIConsole, UITUI:
	default:
		return fmt.Errorf("config: unknown ui %q (want %s or %s)", c.UI, UIConsole, UITUI)
	}
	return nil
}

// Merge overlays the non-blank fields of over onto base.
func Merge(base, over RuntimeConfig) RuntimeConfig {
	cfg := base
	if v := strings.TrimSpace(over.TasksFile); v != "" {
		cfg.TasksFile = v
	}
	if v := strings.TrimSpace(over.UI); v != "" {
		cfg.UI = strings.ToLower(v)
	}
	if v := strings.TrimSpace(over.LogLevel); v != "" {
		cfg.LogLevel = v
	}
	if v := strings.TrimSpace(over.LogFile); v != "" {
		cfg.LogFile = v
	}
	return cfg
}

func getEnv(name string) string {
	return strings.TrimSpace(os.Getenv(name))
}
