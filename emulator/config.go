package emulator

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strconv"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

// Default capacities, matching the reference machine.
const (
	DEFAULT_RAM_SIZE        = 10 // bytes
	DEFAULT_ETHERNET_SIZE   = 10 // bytes
	DEFAULT_TOKEN_RING_SIZE = 10 // words
	DEFAULT_CPUS            = 2
)

// ENV_PREFIX prefixes the environment overrides, as in MINISYS_RAM_SIZE.
const ENV_PREFIX = "MINISYS_"

// Config holds the capacities of the machine.
type Config struct {
	RamSize       int `yaml:"ram_size"`
	EthernetSize  int `yaml:"ethernet_size"`
	TokenRingSize int `yaml:"token_ring_size"`
	Cpus          int `yaml:"cpus"`
}

// DefaultConfig returns the reference machine configuration.
func DefaultConfig() Config {
	return Config{
		RamSize:       DEFAULT_RAM_SIZE,
		EthernetSize:  DEFAULT_ETHERNET_SIZE,
		TokenRingSize: DEFAULT_TOKEN_RING_SIZE,
		Cpus:          DEFAULT_CPUS,
	}
}

// LoadConfig starts from DefaultConfig, applies the YAML file at path (if
// path is not empty), then the environment. A .env file in the working
// directory is loaded into the environment first, when present.
func LoadConfig(path string) (cfg Config, err error) {
	cfg = DefaultConfig()

	if len(path) != 0 {
		var data []byte
		data, err = os.ReadFile(path)
		if err != nil {
			return
		}
		err = yaml.Unmarshal(data, &cfg)
		if err != nil {
			err = fmt.Errorf("%v: %w: %w", path, ErrConfig, err)
			return
		}
	}

	err = godotenv.Load()
	if err != nil && !errors.Is(err, fs.ErrNotExist) {
		return
	}

	err = cfg.ApplyEnv(os.LookupEnv)
	if err != nil {
		return
	}

	err = cfg.Validate()

	return
}

// ApplyEnv overrides settings from MINISYS_* variables found by lookup.
func (cfg *Config) ApplyEnv(lookup func(key string) (string, bool)) (err error) {
	settings := []struct {
		key   string
		value *int
	}{
		{"RAM_SIZE", &cfg.RamSize},
		{"ETHERNET_SIZE", &cfg.EthernetSize},
		{"TOKEN_RING_SIZE", &cfg.TokenRingSize},
		{"CPUS", &cfg.Cpus},
	}

	for _, setting := range settings {
		key := ENV_PREFIX + setting.key
		str, ok := lookup(key)
		if !ok {
			continue
		}
		var value int
		value, err = strconv.Atoi(str)
		if err != nil {
			err = &ErrConfigValue{Key: key, Value: str}
			return
		}
		*setting.value = value
	}

	return
}

// Validate checks that every capacity is positive.
func (cfg Config) Validate() (err error) {
	settings := []struct {
		key   string
		value int
	}{
		{"ram_size", cfg.RamSize},
		{"ethernet_size", cfg.EthernetSize},
		{"token_ring_size", cfg.TokenRingSize},
		{"cpus", cfg.Cpus},
	}

	for _, setting := range settings {
		if setting.value <= 0 {
			err = &ErrConfigValue{Key: setting.key, Value: strconv.Itoa(setting.value)}
			return
		}
	}

	return
}
