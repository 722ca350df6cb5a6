package fiber

import (
	"fmt"
	"os"

	"github.com/inhies/go-bytesize"
	"gopkg.in/yaml.v2"
)

// DefaultStackSize is the per-fiber stack reservation used when Config
// leaves StackSize zero.
const DefaultStackSize = bytesize.MB

// Config carries the tunables of a cooperative scheduler. The zero value
// selects all defaults.
type Config struct {
	// StackSize is the fixed memory reservation accounted to each fiber
	// stack. Defaults to DefaultStackSize (1 MiB).
	StackSize bytesize.ByteSize

	// MemoryBudget, when non-zero, caps the total memory the stack pool
	// may keep live. The live-stack limit is MemoryBudget / StackSize;
	// Schedule fails with ErrPoolExhausted beyond it. Zero means no cap.
	MemoryBudget bytesize.ByteSize
}

func (c *Config) applyDefaults() {
	if c.StackSize == 0 {
		c.StackSize = DefaultStackSize
	}
}

// maxStacks converts the memory budget into a live-stack limit, 0 meaning
// unlimited. A budget smaller than a single stack still permits one fiber,
// since a scheduler that can never run anything is useless.
func (c *Config) maxStacks() int {
	if c.MemoryBudget == 0 {
		return 0
	}
	n := int(c.MemoryBudget / c.StackSize)
	if n < 1 {
		n = 1
	}
	return n
}

// The YAML form uses human-readable sizes:
//
//	stack-size: 1MB
//	memory-budget: 8MB
type fileConfig struct {
	StackSize    string `yaml:"stack-size"`
	MemoryBudget string `yaml:"memory-budget"`
}

// ParseConfig decodes a YAML scheduler configuration. Unknown keys are
// rejected. Absent keys keep their defaults.
func ParseConfig(data []byte) (Config, error) {
	var raw fileConfig
	if err := yaml.UnmarshalStrict(data, &raw); err != nil {
		return Config{}, fmt.Errorf("fiber: parsing config: %w", err)
	}
	var cfg Config
	if raw.StackSize != "" {
		size, err := bytesize.Parse(raw.StackSize)
		if err != nil {
			return Config{}, fmt.Errorf("fiber: invalid stack-size %q: %w", raw.StackSize, err)
		}
		cfg.StackSize = size
	}
	if raw.MemoryBudget != "" {
		budget, err := bytesize.Parse(raw.MemoryBudget)
		if err != nil {
			return Config{}, fmt.Errorf("fiber: invalid memory-budget %q: %w", raw.MemoryBudget, err)
		}
		cfg.MemoryBudget = budget
	}
	return cfg, nil
}

// LoadConfig reads and parses a YAML configuration file.
func LoadConfig(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, err
	}
	return ParseConfig(data)
}
