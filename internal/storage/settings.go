package storage

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"

	"github.com/admiralsuez/shakshuka/pkg/models"
)

const settingsFile = "settings.yaml"

// SettingsManager reads and writes the per-user temporal settings.
type SettingsManager struct {
	basePath string
}

// NewSettingsManager creates a SettingsManager rooted at basePath.
func NewSettingsManager(basePath string) *SettingsManager {
	return &SettingsManager{basePath: basePath}
}

// HostZone returns the host-detected IANA zone name, falling back to UTC
// when the platform exposes an unnamed or unloadable zone.
func HostZone() string {
	if loc := time.Local; loc != nil {
		// "Local" is not a portable IANA name; fail closed to UTC.
		if name := loc.String(); name != "" && name != "Local" {
			return name
		}
	}
	return "UTC"
}

// Load reads settings.yaml via Viper. Missing file or missing keys fall
// back to the documented defaults: reset hour 9 in the host zone.
func (m *SettingsManager) Load() (models.Settings, error) {
	defaults := models.DefaultSettings(HostZone())

	v := viper.New()
	v.SetConfigName("settings")
	v.SetConfigType("yaml")
	v.AddConfigPath(m.basePath)
	v.SetDefault("reset_hour", defaults.ResetHour)
	v.SetDefault("timezone", defaults.Timezone)

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); ok {
			return defaults, nil
		}
		// Unparseable settings degrade to defaults rather than failing.
		return defaults, nil
	}

	s := models.Settings{
		ResetHour: v.GetInt("reset_hour"),
		Timezone:  v.GetString("timezone"),
	}
	if s.ResetHour < 0 || s.ResetHour > 23 {
		s.ResetHour = defaults.ResetHour
	}
	if s.Timezone == "" {
		s.Timezone = defaults.Timezone
	}
	return s, nil
}

// Save writes the settings back as YAML.
func (m *SettingsManager) Save(s models.Settings) error {
	if err := os.MkdirAll(m.basePath, 0o750); err != nil {
		return fmt.Errorf("saving settings: creating directory: %w", err)
	}
	data, err := yaml.Marshal(s)
	if err != nil {
		return fmt.Errorf("saving settings: marshaling: %w", err)
	}
	path := filepath.Join(m.basePath, settingsFile)
	if err := os.WriteFile(path, data, 0o600); err != nil {
		return fmt.Errorf("saving settings: writing: %w", err)
	}
	return nil
}
