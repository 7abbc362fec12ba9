// Package config provides YAML-based configuration loading and difficulty
// presets for the Pac-Man platform.
package config

// Config contains all runtime configuration for the game and its servers.
type Config struct {
	Game       GameConfig       `yaml:"game"`
	SSH        SSHConfig        `yaml:"ssh"`
	Web        WebConfig        `yaml:"web"`
	Storage    StorageConfig    `yaml:"storage"`
	Difficulty DifficultyPreset `yaml:"difficulty"`
}

// GameConfig defines simulation timing parameters.
type GameConfig struct {
	TickRate int    `yaml:"tick_rate"` // Raw ticks per second
	Seed     uint64 `yaml:"seed"`      // 0 = derive from the clock
}

// SSHConfig defines the Wish SSH server parameters.
type SSHConfig struct {
	Host    string `yaml:"host"`
	Port    int    `yaml:"port"`
	KeyPath string `yaml:"key_path"`
}

// WebConfig defines the WebSocket snapshot server parameters.
type WebConfig struct {
	Addr string `yaml:"addr"`
}

// StorageConfig defines score persistence parameters.
type StorageConfig struct {
	DBPath string `yaml:"db_path"`
}

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
)

// PresetSettings holds the simulation parameters a preset maps to.
type PresetSettings struct {
	Lives        int // Starting lives
	UpdatePeriod int // Ticks per simulation step; lower is faster
}

// SettingsForPreset returns the starting lives and update period for a
// difficulty preset. Unknown presets fall back to normal.
func SettingsForPreset(preset DifficultyPreset) PresetSettings {
	switch preset {
	case DifficultyEasy:
		return PresetSettings{Lives: 5, UpdatePeriod: 14}
	case DifficultyHard:
		return PresetSettings{Lives: 2, UpdatePeriod: 10}
	default:
		return PresetSettings{Lives: 3, UpdatePeriod: 12}
	}
}
