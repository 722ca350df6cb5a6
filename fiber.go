// Package fiber implements a single-threaded cooperative fiber scheduler.
//
// A fiber is a unit of work (a plain closure) that executes on its own
// stack, can voluntarily suspend itself with Yield, and is resumed in
// strict FIFO order. Fibers may schedule further fibers while running;
// nested work is appended to the same ready queue and drained in the same
// Run call. There is no preemption and no parallelism: exactly one of the
// scheduler and one fiber is executing at any moment, and a fiber that
// never yields and never returns blocks everything behind it.
//
// The cooperative scheduler is created with NewCooperative and driven
// explicitly:
//
//	s := fiber.NewCooperative(fiber.Config{})
//	s.Schedule(func() {
//		work()
//		s.Yield() // let other fibers run
//		moreWork()
//	})
//	s.Run() // returns once every fiber, nested ones included, completed
//
// Inline is the degenerate baseline: Schedule runs the body immediately and
// Yield and Run do nothing. It exists as a mock for code that depends on
// the Scheduler capability without exercising suspension.
//
// A process-wide instance is available through Init, Schedule, Yield and
// Run at package level for programs that want a global scheduler. Library
// code should prefer explicit instances.
//
// A scheduler instance must only be driven from a single goroutine, and
// Yield must only be called from within a fiber body that instance is
// currently running. Violations of the second rule panic; violations of the
// first are data races.
package fiber

import "errors"

var (
	// ErrNotInstalled is returned by the package-level functions when no
	// process-wide scheduler has been installed.
	ErrNotInstalled = errors.New("fiber: no scheduler installed")

	// ErrNilBody is returned by Schedule when the fiber body is nil.
	ErrNilBody = errors.New("fiber: nil fiber body")

	// ErrNotDrained is returned by Close and Shutdown while scheduled
	// fibers are still waiting in the ready queue.
	ErrNotDrained = errors.New("fiber: ready queue is not empty")
)

// Scheduler is the capability shared by the cooperative scheduler and the
// inline baseline.
type Scheduler interface {
	// Schedule registers work for eventual execution. The cooperative
	// implementation never runs the body synchronously; Inline always
	// does. Scheduling from within a running fiber is legal.
	Schedule(body func()) error

	// Yield suspends the calling fiber and moves it to the back of the
	// ready queue. Under Inline it is a no-op. Under the cooperative
	// implementation it must only be called from a running fiber body.
	Yield()

	// Run executes all currently and subsequently scheduled work until
	// none remains. Under Inline it is a no-op, since work already ran at
	// Schedule time. Running with an empty queue returns immediately.
	Run()
}
