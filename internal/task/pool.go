package task

import "errors"

// ErrPoolExhausted is returned by Alloc when the pool's live-stack limit is
// reached and no freed stack is available for reuse.
var ErrPoolExhausted = errors.New("fiber: stack pool exhausted")

// A Stack is the execution resource a fiber runs on: a carrier goroutine
// parked on a rendezvous channel. Waking the carrier is the context switch
// into the fiber; the carrier (or a task pausing on it) blocking on a
// channel again is the switch out. At any instant a stack is owned by
// exactly one party: the pool's free list or a single task.
type Stack struct {
	next *Stack // free-list link, nil while claimed
	gate chan *Task
}

// run is the trampoline: the carrier loop every stack goroutine executes.
// Each iteration claims one task handed over the gate, runs its body to
// completion, releases the task's resources and returns the stack to the
// pool before handing control back to the scheduler. Returning the stack
// first is safe: the pool only relinks it, and the carrier touches no task
// state after the hand-back, so nothing here is observable until the stack
// is claimed again.
func (s *Stack) run(p *Pool) {
	for t := range s.gate {
		t.invoke()
		main := t.main
		t.finish()
		p.Free(s)
		main <- struct{}{}
	}
}

// Pool is a recycling allocator for fiber stacks. Freed stacks go onto a
// LIFO free list, so Alloc prefers the most recently freed stack over
// starting a new carrier. Stacks are never torn down until the pool itself
// is closed.
//
// A Pool belongs to one scheduler instance and inherits its single logical
// thread contract.
type Pool struct {
	free   *Stack
	total  uint64 // carriers started, all still live
	reused uint64
	limit  int // max live stacks, 0 = unlimited
}

// NewPool returns a pool that will keep at most limit stacks live.
// A limit of 0 means unlimited.
func NewPool(limit int) *Pool {
	return &Pool{limit: limit}
}

// Alloc claims a stack for a new fiber, reusing the most recently freed one
// when possible. It fails with ErrPoolExhausted if a limit is set and all
// permitted stacks are claimed.
func (p *Pool) Alloc() (*Stack, error) {
	if s := p.free; s != nil {
		p.free = s.next
		s.next = nil
		p.reused++
		return s, nil
	}
	if p.limit > 0 && p.total >= uint64(p.limit) {
		return nil, ErrPoolExhausted
	}
	s := &Stack{gate: make(chan *Task)}
	go s.run(p)
	p.total++
	return s, nil
}

// Free returns a stack to the free list for future reuse.
func (p *Pool) Free(s *Stack) {
	if asserts && s.next != nil {
		panic("task: freeing a stack that is already on the free list")
	}
	s.next = p.free
	p.free = s
}

// Allocated returns the number of carriers started over the pool's
// lifetime. Because stacks are only released at Close, this is also the
// number of live stacks.
func (p *Pool) Allocated() uint64 { return p.total }

// Reused returns how many Alloc calls were served from the free list.
func (p *Pool) Reused() uint64 { return p.reused }

// Close unwinds every parked carrier. It fails if any stack is still
// claimed by a task, since tearing down a pool with fibers in flight is a
// contract violation.
func (p *Pool) Close() error {
	var n uint64
	for s := p.free; s != nil; s = s.next {
		n++
	}
	if n != p.total {
		return errors.New("fiber: closing stack pool with stacks still in use")
	}
	for p.free != nil {
		s := p.free
		p.free = s.next
		s.next = nil
		close(s.gate)
	}
	p.total = 0
	p.reused = 0
	return nil
}
