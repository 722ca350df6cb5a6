package fiber

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/inhies/go-bytesize"
)

func TestParseConfig(t *testing.T) {
	cfg, err := ParseConfig([]byte("stack-size: 512KB\nmemory-budget: 2MB\n"))
	if err != nil {
		t.Fatalf("ParseConfig returned %v", err)
	}
	if cfg.StackSize != 512*bytesize.KB {
		t.Errorf("StackSize = %v, want 512KB", cfg.StackSize)
	}
	if cfg.MemoryBudget != 2*bytesize.MB {
		t.Errorf("MemoryBudget = %v, want 2MB", cfg.MemoryBudget)
	}
	if got := cfg.maxStacks(); got != 4 {
		t.Errorf("maxStacks() = %d, want 4", got)
	}
}

func TestParseConfigDefaults(t *testing.T) {
	cfg, err := ParseConfig([]byte(""))
	if err != nil {
		t.Fatalf("ParseConfig returned %v", err)
	}
	cfg.applyDefaults()
	if cfg.StackSize != DefaultStackSize {
		t.Errorf("StackSize = %v, want %v", cfg.StackSize, DefaultStackSize)
	}
	if got := cfg.maxStacks(); got != 0 {
		t.Errorf("maxStacks() = %d, want 0 (unlimited)", got)
	}
}

func TestParseConfigErrors(t *testing.T) {
	if _, err := ParseConfig([]byte("stack-size: huge\n")); err == nil {
		t.Errorf("bad stack-size did not error")
	}
	if _, err := ParseConfig([]byte("stack-sze: 1MB\n")); err == nil {
		t.Errorf("unknown key did not error")
	}
}

// A memory budget below a single stack still permits one fiber.
func TestMaxStacksTinyBudget(t *testing.T) {
	cfg := Config{StackSize: bytesize.MB, MemoryBudget: bytesize.KB}
	if got := cfg.maxStacks(); got != 1 {
		t.Errorf("maxStacks() = %d, want 1", got)
	}
}

func TestLoadConfig(t *testing.T) {
	path := filepath.Join(t.TempDir(), "sched.yaml")
	if err := os.WriteFile(path, []byte("stack-size: 1MB\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	cfg, err := LoadConfig(path)
	if err != nil {
		t.Fatalf("LoadConfig returned %v", err)
	}
	if cfg.StackSize != bytesize.MB {
		t.Errorf("StackSize = %v, want 1MB", cfg.StackSize)
	}
	if _, err := LoadConfig(filepath.Join(t.TempDir(), "missing.yaml")); err == nil {
		t.Errorf("missing file did not error")
	}
}
