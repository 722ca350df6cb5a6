package task

import "fmt"

// PanicError wraps a panic that escaped a fiber body. The panic is
// recovered on the fiber's own goroutine, recorded together with that
// goroutine's stack trace, and re-raised on the scheduler side once control
// returns to the run loop.
type PanicError struct {
	// Value is the value the fiber body panicked with.
	Value any

	// Stack is the fiber goroutine's stack at the time of the panic, as
	// formatted by runtime/debug.Stack.
	Stack []byte
}

func (e *PanicError) Error() string {
	return fmt.Sprintf("fiber: panic in fiber body: %v", e.Value)
}
