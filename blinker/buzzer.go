package blinker

import "time"

// Buzzer produces the feedback click by toggling the sounder line through a
// short hand-driven square wave. The default shape, 8 cycles at 128 us per
// half, gives a burst of about 2 ms around 3.9 kHz.
type Buzzer struct {
	port   Port
	pin    Pin
	cycles int
	half   time.Duration
	wait   func(time.Duration)
}

// NewBuzzer builds a buzzer on cfg.BuzzerPin. Zero click fields fall back to
// the defaults.
func NewBuzzer(port Port, cfg Config) *Buzzer {
	cfg = cfg.withDefaults()
	return &Buzzer{
		port:   port,
		pin:    cfg.BuzzerPin,
		cycles: cfg.ClickCycles,
		half:   cfg.ClickHalfPeriod,
		wait:   cfg.Wait,
	}
}

// Click emits one click and leaves the line low. It blocks for the whole
// burst: the waveform is a fixed side effect with no cancellation point, so
// input latency degrades by the burst length around each click.
func (b *Buzzer) Click() {
	for i := 0; i < b.cycles; i++ {
		b.port.Write(b.pin, true)
		b.wait(b.half)
		b.port.Write(b.pin, false)
		b.wait(b.half)
	}
}
