package ui

import (
	"os"
	"path/filepath"

	"github.com/spf13/viper"
)

// Settings are the persistent viewer preferences, stored under the
// platform config directory (~/.config/sensordeck on Linux/macOS,
// %APPDATA%\sensordeck on Windows).
type Settings struct {
	Skin         string  `mapstructure:"skin"`
	Preset       string  `mapstructure:"preset"`
	WindowWidth  int     `mapstructure:"window_width"`
	WindowHeight int     `mapstructure:"window_height"`
	Speed        float64 `mapstructure:"animation_speed"`

	v *viper.Viper
}

func settingsDir() (string, error) {
	if appData := os.Getenv("APPDATA"); appData != "" {
		return filepath.Join(appData, "sensordeck"), nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".config", "sensordeck"), nil
}

// LoadSettings reads the settings file, falling back to defaults when it
// does not exist yet.
func LoadSettings() (*Settings, error) {
	dir, err := settingsDir()
	if err != nil {
		return nil, err
	}

	v := viper.New()
	v.SetConfigName("settings")
	v.SetConfigType("yaml")
	v.AddConfigPath(dir)
	v.SetDefault("skin", "hud")
	v.SetDefault("preset", "midnight")
	v.SetDefault("window_width", 520)
	v.SetDefault("window_height", 360)
	v.SetDefault("animation_speed", 1.0)

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, err
		}
	}

	s := &Settings{v: v}
	if err := v.Unmarshal(s); err != nil {
		return nil, err
	}
	return s, nil
}

// Save writes the settings back, creating the config directory on first
// use.
func (s *Settings) Save() error {
	dir, err := settingsDir()
	if err != nil {
		return err
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return err
	}

	s.v.Set("skin", s.Skin)
	s.v.Set("preset", s.Preset)
	s.v.Set("window_width", s.WindowWidth)
	s.v.Set("window_height", s.WindowHeight)
	s.v.Set("animation_speed", s.Speed)
	return s.v.WriteConfigAs(filepath.Join(dir, "settings.yaml"))
}
