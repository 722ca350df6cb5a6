package fiber

// Inline is a Scheduler that runs work immediately and synchronously at
// Schedule time. Yield and Run are no-ops. It is only useful as a baseline
// or mock for code that depends on the Scheduler capability without
// exercising suspension.
type Inline struct{}

func (Inline) Schedule(body func()) error {
	if body == nil {
		return ErrNilBody
	}
	body()
	return nil
}

func (Inline) Yield() {}

func (Inline) Run() {}
