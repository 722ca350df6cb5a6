package task

import "runtime/debug"

// Enable internal invariant checks. These catch contract violations in the
// scheduler protocol (resuming a completed task, pausing from the wrong
// place) and panic instead of deadlocking.
const asserts = true

// Run states of a task.
//
// A task moves Scheduled -> Running and then bounces between Running and
// Suspended until the body returns, which makes it Completed. Completed is
// terminal: a completed task must never be resumed again.
const (
	RunStateScheduled = iota // queued, body not started
	RunStateRunning          // body executing right now
	RunStateSuspended        // paused mid-body, queued for resumption
	RunStateCompleted        // body returned, resources released
)

// Task is a fiber: a body closure plus the execution state needed to
// suspend and resume it. A task exclusively owns its Stack from creation
// until completion, at which point the stack goes back to the pool and the
// body reference is dropped, both exactly once.
type Task struct {
	// Next is the intrusive link used by Queue. It must be nil whenever
	// the task is not queued.
	Next *Task

	body  func()
	stack *Stack
	main  chan struct{} // scheduler gate: where control is handed back
	state uint8
	trap  *PanicError
}

// New prepares a task that will run body on stack s. The task does not
// start executing until the first Resume; until then the stack's carrier
// stays parked at the trampoline.
func New(body func(), s *Stack, main chan struct{}) *Task {
	return &Task{
		body:  body,
		stack: s,
		main:  main,
		state: RunStateScheduled,
	}
}

// Resume transfers control to the task until it pauses or completes.
// This may only be called from the scheduler, never from a fiber.
func (t *Task) Resume() {
	if asserts && t.state != RunStateScheduled && t.state != RunStateSuspended {
		panic("task: resuming a task that is not runnable")
	}
	s := t.stack
	t.state = RunStateRunning
	// The carrier is parked on the gate in exactly one place: at the
	// trampoline (not yet started) or inside Pause (suspended). Either way
	// a single send wakes it with this task.
	s.gate <- t
	<-t.main
}

// Pause suspends the task and returns control to the scheduler. It blocks
// until the scheduler resumes the task, then returns to the caller in the
// fiber body. This may only be called from within the running fiber.
func (t *Task) Pause() {
	if asserts && t.state != RunStateRunning {
		panic("task: pausing a task that is not running")
	}
	t.state = RunStateSuspended
	t.main <- struct{}{}
	got, ok := <-t.stack.gate
	if asserts && (!ok || got != t) {
		panic("task: stack was handed a different task while suspended")
	}
}

// Completed reports whether the body has returned.
func (t *Task) Completed() bool {
	return t.state == RunStateCompleted
}

// Trap returns the panic captured from the body, or nil if the body
// returned normally. Only meaningful once the task has completed.
func (t *Task) Trap() *PanicError {
	return t.trap
}

// invoke runs the body on the carrier goroutine, converting a panic into a
// recorded trap so it can be re-raised on the scheduler side.
func (t *Task) invoke() {
	defer func() {
		if v := recover(); v != nil {
			t.trap = &PanicError{Value: v, Stack: debug.Stack()}
		}
	}()
	t.body()
}

// finish releases the task's resources. The body closure is dropped and the
// stack reference cleared; the caller (the trampoline) returns the stack to
// the pool itself, because the order there matters.
func (t *Task) finish() {
	if asserts && t.state != RunStateRunning {
		panic("task: completing a task that is not running")
	}
	t.state = RunStateCompleted
	t.body = nil
	t.stack = nil
}
