package fiber

// The process-wide scheduler instance, for programs that want the
// free-function surface. Tests and libraries should prefer explicit
// instances from NewCooperative.
var global Scheduler

// Init installs a fresh cooperative scheduler with default configuration as
// the process-wide instance, replacing any previous one.
func Init() {
	Install(NewCooperative(Config{}))
}

// Install makes s the process-wide instance. Installing nil uninstalls the
// current one, after which the package-level functions fail with
// ErrNotInstalled.
func Install(s Scheduler) {
	global = s
}

// Schedule enqueues body on the process-wide instance.
func Schedule(body func()) error {
	if global == nil {
		return ErrNotInstalled
	}
	return global.Schedule(body)
}

// Yield suspends the calling fiber via the process-wide instance.
func Yield() error {
	if global == nil {
		return ErrNotInstalled
	}
	global.Yield()
	return nil
}

// Run drains the process-wide instance's ready queue, running every
// scheduled fiber, nested-scheduled ones included, to completion.
func Run() error {
	if global == nil {
		return ErrNotInstalled
	}
	global.Run()
	return nil
}

// Shutdown uninstalls the process-wide instance, tearing down its stack
// pool when it is a Cooperative. It refuses with ErrNotDrained while fibers
// are still queued.
func Shutdown() error {
	if global == nil {
		return ErrNotInstalled
	}
	if c, ok := global.(*Cooperative); ok {
		if err := c.Close(); err != nil {
			return err
		}
	}
	global = nil
	return nil
}
