package config

import (
	_ "embed"
)

//go:embed defaults/pacman.yaml
var defaultYAML []byte

// DefaultConfig returns the hardcoded default configuration, used when even
// the embedded YAML fails to parse.
func DefaultConfig() Config {
	return Config{
		Game: GameConfig{
			TickRate: 24,
			Seed:     0,
		},
		SSH: SSHConfig{
			Host:    "0.0.0.0",
			Port:    2222,
			KeyPath: ".ssh/pacman_ed25519",
		},
		Web: WebConfig{
			Addr: ":8080",
		},
		Storage: StorageConfig{
			DBPath: "~/.pacman/scores.db",
		},
		Difficulty: DifficultyNormal,
	}
}

// GetDefaultYAML returns the embedded default YAML.
func GetDefaultYAML() []byte {
	return defaultYAML
}
