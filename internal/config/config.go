package config

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/spf13/viper"

	"github.com/zhubert/growmate/internal/auth"
	gmerrors "github.com/zhubert/growmate/internal/errors"
)

// Config keys, shared by the config file, GROWMATE_* env vars and CLI flags.
const (
	KeyTheme                = "theme"
	KeyNotificationsEnabled = "notifications_enabled"
	KeyThirstyAfterDays     = "thirsty_after_days"
	KeySeedFile             = "seed_file"
	KeyResetViewsOnLogout   = "reset_views_on_logout"
	KeyAuthMode             = "auth_mode"
)

// DefaultThirstyAfterDays is how long a plant may go without water before
// it is flagged on the dashboard.
const DefaultThirstyAfterDays = 5

// Config holds user settings. Plant data is never stored here.
type Config struct {
	Theme                string `mapstructure:"theme"`
	NotificationsEnabled bool   `mapstructure:"notifications_enabled"`
	ThirstyAfterDays     int    `mapstructure:"thirsty_after_days"`
	SeedFile             string `mapstructure:"seed_file"`
	ResetViewsOnLogout   bool   `mapstructure:"reset_views_on_logout"`
	AuthMode             string `mapstructure:"auth_mode"`

	mu       sync.RWMutex
	filePath string
}

// Loader reads configuration through viper. Callers bind CLI flags on
// Viper() before calling Load.
type Loader struct {
	v *viper.Viper
}

// NewLoader returns a loader with defaults and GROWMATE_ env overrides set.
func NewLoader() *Loader {
	v := viper.New()
	setDefaults(v)
	v.SetEnvPrefix("GROWMATE")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	return &Loader{v: v}
}

func setDefaults(v *viper.Viper) {
	v.SetDefault(KeyTheme, "")
	v.SetDefault(KeyNotificationsEnabled, false)
	v.SetDefault(KeyThirstyAfterDays, DefaultThirstyAfterDays)
	v.SetDefault(KeySeedFile, "")
	v.SetDefault(KeyResetViewsOnLogout, false)
	v.SetDefault(KeyAuthMode, auth.ModeOpen)
}

// Viper exposes the underlying viper instance for flag binding.
func (l *Loader) Viper() *viper.Viper {
	return l.v
}

// configDir returns the path to the config directory
func configDir() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".growmate"), nil
}

// Load reads the config file at path, or config.yaml from ~/.growmate and
// the working directory when path is empty. A missing file is not an error.
func (l *Loader) Load(path string) (*Config, error) {
	if path != "" {
		l.v.SetConfigFile(path)
	} else {
		l.v.SetConfigName("config")
		l.v.SetConfigType("yaml")
		if dir, err := configDir(); err == nil {
			l.v.AddConfigPath(dir)
			path = filepath.Join(dir, "config.yaml")
		}
		l.v.AddConfigPath(".")
	}

	if err := l.v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) && !errors.Is(err, fs.ErrNotExist) {
			return nil, gmerrors.ConfigLoadFailed(path, err)
		}
	} else {
		path = l.v.ConfigFileUsed()
	}

	cfg := &Config{filePath: path}
	if err := l.v.Unmarshal(cfg); err != nil {
		return nil, gmerrors.ConfigLoadFailed(path, err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks that settings are usable.
func (c *Config) Validate() error {
	c.mu.RLock()
	defer c.mu.RUnlock()

	switch c.AuthMode {
	case auth.ModeOpen, auth.ModeLocal:
	default:
		return gmerrors.ConfigInvalid("auth_mode must be \"open\" or \"local\", got " + c.AuthMode)
	}
	if c.ThirstyAfterDays < 1 {
		return gmerrors.ConfigInvalid("thirsty_after_days must be at least 1")
	}
	return nil
}

// Save writes the config as YAML to the file it was loaded from.
func (c *Config) Save() error {
	c.mu.RLock()
	defer c.mu.RUnlock()

	if c.filePath == "" {
		return gmerrors.ConfigSaveFailed("", errors.New("no config path"))
	}
	if err := os.MkdirAll(filepath.Dir(c.filePath), 0755); err != nil {
		return gmerrors.ConfigSaveFailed(c.filePath, err)
	}

	v := viper.New()
	v.SetConfigType("yaml")
	v.Set(KeyTheme, c.Theme)
	v.Set(KeyNotificationsEnabled, c.NotificationsEnabled)
	v.Set(KeyThirstyAfterDays, c.ThirstyAfterDays)
	v.Set(KeySeedFile, c.SeedFile)
	v.Set(KeyResetViewsOnLogout, c.ResetViewsOnLogout)
	v.Set(KeyAuthMode, c.AuthMode)
	if err := v.WriteConfigAs(c.filePath); err != nil {
		return gmerrors.ConfigSaveFailed(c.filePath, err)
	}
	return nil
}

// Path returns the file the config is saved to.
func (c *Config) Path() string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.filePath
}

// GetTheme returns the current theme name
func (c *Config) GetTheme() string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.Theme
}

// SetTheme sets the current theme name
func (c *Config) SetTheme(theme string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.Theme = theme
}

// GetNotificationsEnabled returns whether watering reminders are enabled
func (c *Config) GetNotificationsEnabled() bool {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.NotificationsEnabled
}

// SetNotificationsEnabled sets whether watering reminders are enabled
func (c *Config) SetNotificationsEnabled(enabled bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.NotificationsEnabled = enabled
}

// GetThirstyAfterDays returns the watering threshold in days
func (c *Config) GetThirstyAfterDays() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	if c.ThirstyAfterDays < 1 {
		return DefaultThirstyAfterDays
	}
	return c.ThirstyAfterDays
}

// GetSeedFile returns the seed file path, empty for the built-in plants
func (c *Config) GetSeedFile() string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.SeedFile
}

// GetResetViewsOnLogout returns whether logout resets navigation
func (c *Config) GetResetViewsOnLogout() bool {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.ResetViewsOnLogout
}

// GetAuthMode returns the configured auth gateway mode
func (c *Config) GetAuthMode() string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.AuthMode
}
