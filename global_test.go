package fiber_test

import (
	"errors"
	"testing"

	"github.com/tinysched/fiber"
)

func TestGlobalNotInstalled(t *testing.T) {
	fiber.Install(nil)
	if err := fiber.Schedule(func() {}); !errors.Is(err, fiber.ErrNotInstalled) {
		t.Errorf("Schedule returned %v, want ErrNotInstalled", err)
	}
	if err := fiber.Yield(); !errors.Is(err, fiber.ErrNotInstalled) {
		t.Errorf("Yield returned %v, want ErrNotInstalled", err)
	}
	if err := fiber.Run(); !errors.Is(err, fiber.ErrNotInstalled) {
		t.Errorf("Run returned %v, want ErrNotInstalled", err)
	}
	if err := fiber.Shutdown(); !errors.Is(err, fiber.ErrNotInstalled) {
		t.Errorf("Shutdown returned %v, want ErrNotInstalled", err)
	}
}

func TestGlobalScheduler(t *testing.T) {
	fiber.Init()
	defer fiber.Install(nil)

	x := 0
	fiber.Schedule(func() {
		x++
		fiber.Yield()
		x++
	})
	if err := fiber.Run(); err != nil {
		t.Fatalf("Run returned %v", err)
	}
	if x != 2 {
		t.Errorf("counter = %d after drain, want 2", x)
	}
	if err := fiber.Shutdown(); err != nil {
		t.Errorf("Shutdown returned %v", err)
	}
	if err := fiber.Schedule(func() {}); !errors.Is(err, fiber.ErrNotInstalled) {
		t.Errorf("Schedule after Shutdown returned %v, want ErrNotInstalled", err)
	}
}

func TestGlobalShutdownNotDrained(t *testing.T) {
	fiber.Init()
	defer fiber.Install(nil)

	fiber.Schedule(func() {})
	if err := fiber.Shutdown(); !errors.Is(err, fiber.ErrNotDrained) {
		t.Errorf("Shutdown with queued fibers returned %v, want ErrNotDrained", err)
	}
	fiber.Run()
	if err := fiber.Shutdown(); err != nil {
		t.Errorf("Shutdown after drain returned %v", err)
	}
}

func TestGlobalInstallInline(t *testing.T) {
	fiber.Install(fiber.Inline{})
	defer fiber.Install(nil)

	x := 0
	fiber.Schedule(func() { x++ })
	if x != 1 {
		t.Errorf("counter = %d after inline Schedule, want 1", x)
	}
	if err := fiber.Shutdown(); err != nil {
		t.Errorf("Shutdown of inline scheduler returned %v", err)
	}
}
