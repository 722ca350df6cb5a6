package fiber

import "github.com/tinysched/fiber/internal/task"

// ErrPoolExhausted is returned by Schedule when the configured memory
// budget leaves no room for another fiber stack.
var ErrPoolExhausted = task.ErrPoolExhausted

// PanicError is the error a panicking fiber body is re-raised as. Run
// panics with a *PanicError once control returns to the loop; fibers still
// queued behind the panicking one stay queued.
type PanicError = task.PanicError

// Cooperative is the fiber scheduler. It owns a FIFO ready queue of tasks
// and a recycling pool of fiber stacks, and multiplexes the single logical
// thread of control between the run loop and the scheduled fibers.
//
// The zero value is not usable; create instances with NewCooperative.
// Instances are independent, so tests can run several side by side, but
// each one must be driven from a single goroutine.
type Cooperative struct {
	queue   task.Queue
	pool    *task.Pool
	gate    chan struct{} // the run loop's own context: fibers hand control back here
	current *task.Task    // fiber being executed, nil while in the loop
	stats   Stats
}

// NewCooperative returns a scheduler configured by cfg. A zero Config
// selects the defaults: 1 MiB per stack, no memory budget.
func NewCooperative(cfg Config) *Cooperative {
	cfg.applyDefaults()
	return &Cooperative{
		pool: task.NewPool(cfg.maxStacks()),
		gate: make(chan struct{}),
	}
}

// Schedule claims a stack from the pool, binds body to it and appends the
// new fiber to the back of the ready queue. The body does not start
// executing until Run switches into it.
func (c *Cooperative) Schedule(body func()) error {
	if body == nil {
		return ErrNilBody
	}
	s, err := c.pool.Alloc()
	if err != nil {
		return err
	}
	c.queue.Push(task.New(body, s, c.gate))
	c.stats.Scheduled++
	return nil
}

// Yield suspends the calling fiber, placing its continuation at the back of
// the ready queue, and returns control to the run loop. It returns to the
// caller when the fiber reaches the front of the queue again.
//
// Yield panics if no fiber is currently running on this scheduler.
func (c *Cooperative) Yield() {
	t := c.current
	if t == nil {
		panic("fiber: Yield called outside a running fiber")
	}
	c.stats.Yields++
	c.queue.Push(t)
	t.Pause()
}

// Run drains the ready queue: it repeatedly pops the front task and
// switches into it, regaining control when the fiber yields or completes.
// Fibers scheduled during the drain are processed after the entries already
// queued, in order. Run returns once the queue is empty; with nothing
// scheduled it is a no-op.
//
// If a fiber body panicked, Run re-raises the panic as a *PanicError after
// the fiber's resources have been released.
func (c *Cooperative) Run() {
	if c.current != nil {
		panic("fiber: Run called from inside a running fiber")
	}
	for {
		t := c.queue.Pop()
		if t == nil {
			return
		}
		c.current = t
		t.Resume()
		c.current = nil
		if t.Completed() {
			c.stats.Completed++
			if trap := t.Trap(); trap != nil {
				panic(trap)
			}
		}
	}
}

// Close tears down the stack pool, unwinding its parked carriers. It fails
// with ErrNotDrained if fibers are still queued; drain with Run first.
func (c *Cooperative) Close() error {
	if !c.queue.Empty() {
		return ErrNotDrained
	}
	return c.pool.Close()
}

// Stats are counters describing a scheduler's activity so far.
type Stats struct {
	Scheduled       uint64 `json:"scheduled"`
	Completed       uint64 `json:"completed"`
	Yields          uint64 `json:"yields"`
	StacksAllocated uint64 `json:"stacks_allocated"`
	StacksReused    uint64 `json:"stacks_reused"`
}

// Stats returns a snapshot of the scheduler's counters. StacksAllocated
// staying flat while fibers complete and new ones are scheduled shows the
// pool recycling at work.
func (c *Cooperative) Stats() Stats {
	s := c.stats
	s.StacksAllocated = c.pool.Allocated()
	s.StacksReused = c.pool.Reused()
	return s
}
