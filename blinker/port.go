// Package blinker implements the turn-signal control loop: a debounced
// two-button mode selector, the sequential chase and hazard animations across
// two lamp banks, and the feedback click buzzer. All hardware access goes
// through the Port interface, so the same loop runs on MCU pins, Linux GPIO,
// an I/O expander, or the in-memory port used by tests and the simulator.
package blinker

// Pin identifies a single digital line. On the GPIO backends the value is the
// BCM/GP number; on other backends it is an arbitrary key agreed with the
// backend's mapping.
type Pin uint8

// Port is the minimal digital I/O surface the control loop needs. Writes are
// fire-and-forget: wiring problems surface when a backend is set up, never on
// the hot path.
type Port interface {
	Read(pin Pin) bool
	Write(pin Pin, high bool)
}
