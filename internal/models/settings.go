package models

// SearchConfig holds list-search behavior settings.
type SearchConfig struct {
	// Fuzzy switches panel search from substring matching to fuzzy
	// matching. Substring is the default.
	Fuzzy bool `yaml:"fuzzy"`
}

// DaemonConfig holds overrides for daemon discovery.
type DaemonConfig struct {
	// Host/Port override ~/.hearth/daemon.yaml when set. Empty means
	// use the discovery file.
	Host string `yaml:"host,omitempty"`
	Port int    `yaml:"port,omitempty"`
}

// AppearanceConfig holds appearance settings.
type AppearanceConfig struct {
	Theme string `yaml:"theme"` // "system" | "light" | "dark"
}

// Settings represents global application settings.
// This corresponds to ~/.hearth/settings.yaml.
type Settings struct {
	Version    int              `yaml:"version"`
	Search     SearchConfig     `yaml:"search"`
	Daemon     DaemonConfig     `yaml:"daemon"`
	Appearance AppearanceConfig `yaml:"appearance"`
}

// NewSettings creates settings with default values.
func NewSettings() *Settings {
	return &Settings{
		Version: 1,
		Search:  SearchConfig{Fuzzy: false},
		Appearance: AppearanceConfig{
			Theme: "system",
		},
	}
}
