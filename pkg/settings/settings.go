// Package settings manages persistent user settings for the apvlan CLI.
package settings

import (
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Built-in defaults, used when neither a flag nor a setting overrides them.
const (
	DefaultCredentialsFile = "credentials"
	DefaultLogFile         = "apvlan.log"
	DefaultAuditFile       = "apvlan_audit.log"
)

// Settings holds persistent user preferences. Flags override settings;
// settings override built-in defaults.
type Settings struct {
	// APIURL overrides the RUCKUS One API base URL
	APIURL string `yaml:"api_url,omitempty"`

	// CredentialsFile is the credentials file path when -c is not specified
	CredentialsFile string `yaml:"credentials_file,omitempty"`

	// LogFile is the run log path when --log-file is not specified
	LogFile string `yaml:"log_file,omitempty"`

	// AuditFile is the audit log path when --audit-file is not specified
	AuditFile string `yaml:"audit_file,omitempty"`
}

// DefaultSettingsPath returns the default path for the settings file.
func DefaultSettingsPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return "apvlan_settings.yaml"
	}
	return filepath.Join(home, ".apvlan", "settings.yaml")
}

// Load reads settings from the default location.
func Load() (*Settings, error) {
	return LoadFrom(DefaultSettingsPath())
}

// LoadFrom reads settings from a specific path. A missing file is not an
// error; it yields empty settings.
func LoadFrom(path string) (*Settings, error) {
	s := &Settings{}

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return s, nil
		}
		return nil, err
	}

	if err := yaml.Unmarshal(data, s); err != nil {
		return nil, err
	}

	return s, nil
}

// Save writes settings to the default location.
func (s *Settings) Save() error {
	return s.SaveTo(DefaultSettingsPath())
}

// SaveTo writes settings to a specific path, creating the directory.
func (s *Settings) SaveTo(path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return err
	}

	data, err := yaml.Marshal(s)
	if err != nil {
		return err
	}

	return os.WriteFile(path, data, 0644)
}

// GetCredentialsFile returns the credentials path (with fallback).
func (s *Settings) GetCredentialsFile() string {
	if s.CredentialsFile != "" {
		return s.CredentialsFile
	}
	return DefaultCredentialsFile
}

// GetLogFile returns the run log path (with fallback).
func (s *Settings) GetLogFile() string {
	if s.LogFile != "" {
		return s.LogFile
	}
	return DefaultLogFile
}

// GetAuditFile returns the audit log path (with fallback).
func (s *Settings) GetAuditFile() string {
	if s.AuditFile != "" {
		return s.AuditFile
	}
	return DefaultAuditFile
}

// Clear resets all settings to defaults.
func (s *Settings) Clear() {
	*s = Settings{}
}
