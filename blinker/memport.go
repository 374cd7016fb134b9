package blinker

import "sync"

// PinWrite is one recorded output transition.
type PinWrite struct {
	Pin  Pin
	High bool
}

// MemPort is a deterministic in-memory Port. Tests and the simulator use it
// in place of hardware: inputs are poked with Set, outputs land in the same
// cell map and, while recording, in a journal. The zero value is not usable;
// call NewMemPort.
type MemPort struct {
	mu      sync.Mutex
	cells   map[Pin]bool
	journal []PinWrite
	record  bool

	// OnRead and OnWrite run after the access, outside the lock, on the
	// caller's goroutine. Tests use them to flip an input at an exact point
	// inside an animation.
	OnRead  func(Pin, bool)
	OnWrite func(Pin, bool)
}

func NewMemPort() *MemPort {
	return &MemPort{cells: make(map[Pin]bool)}
}

func (p *MemPort) Read(pin Pin) bool {
	p.mu.Lock()
	v := p.cells[pin]
	p.mu.Unlock()
	if p.OnRead != nil {
		p.OnRead(pin, v)
	}
	return v
}

func (p *MemPort) Write(pin Pin, high bool) {
	p.mu.Lock()
	p.cells[pin] = high
	if p.record {
		p.journal = append(p.journal, PinWrite{Pin: pin, High: high})
	}
	p.mu.Unlock()
	if p.OnWrite != nil {
		p.OnWrite(pin, high)
	}
}

// Set pokes an input line from the outside, without touching the journal.
func (p *MemPort) Set(pin Pin, high bool) {
	p.mu.Lock()
	p.cells[pin] = high
	p.mu.Unlock()
}

// Get returns the current level of a line without triggering OnRead.
func (p *MemPort) Get(pin Pin) bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.cells[pin]
}

// Record starts or stops journal capture. Recording is off by default so
// long-running hosts do not accumulate an unbounded journal.
func (p *MemPort) Record(on bool) {
	p.mu.Lock()
	p.record = on
	p.mu.Unlock()
}

// Writes drains and returns the journal captured since the last call.
func (p *MemPort) Writes() []PinWrite {
	p.mu.Lock()
	defer p.mu.Unlock()
	w := p.journal
	p.journal = nil
	return w
}

// Snapshot copies the current level of every line touched so far.
func (p *MemPort) Snapshot() map[Pin]bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	out := make(map[Pin]bool, len(p.cells))
	for pin, v := range p.cells {
		out[pin] = v
	}
	return out
}
