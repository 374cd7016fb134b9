package blinker

import (
	"fmt"
	"time"
)

// Default timing and click shape. Interval paces both the chase step and each
// hazard phase; Debounce is the settle pause after every input sample and
// therefore the poll period of every cancellable wait in the loop.
const (
	DefaultInterval        = 500 * time.Millisecond
	DefaultDebounce        = time.Millisecond
	DefaultClickCycles     = 8
	DefaultClickHalfPeriod = 128 * time.Microsecond
)

// Config binds the pin roles and timing of one controller. It is fixed for
// the lifetime of the controller; there is no runtime reconfiguration.
type Config struct {
	LeftButton  Pin
	RightButton Pin
	BuzzerPin   Pin

	// Chase order follows slice order: index 0 lights first.
	LeftBank  []Pin
	RightBank []Pin

	Interval time.Duration // hold per chase slot and per hazard phase
	Debounce time.Duration // settle pause after each input sample

	ClickCycles     int           // full on/off cycles per buzzer click
	ClickHalfPeriod time.Duration // hold per half cycle

	// Wait implements every fixed pause. Defaults to time.Sleep; the
	// firmware substitutes its calibrated spin wait.
	Wait func(time.Duration)

	// Heartbeat, when set, runs once per input sample. The sample loop is
	// the only place guaranteed to execute at bounded latency, which makes
	// it the right spot to feed a watchdog.
	Heartbeat func()
}

func (c Config) withDefaults() Config {
	if c.Interval == 0 {
		c.Interval = DefaultInterval
	}
	if c.Debounce == 0 {
		c.Debounce = DefaultDebounce
	}
	if c.ClickCycles == 0 {
		c.ClickCycles = DefaultClickCycles
	}
	if c.ClickHalfPeriod == 0 {
		c.ClickHalfPeriod = DefaultClickHalfPeriod
	}
	if c.Wait == nil {
		c.Wait = time.Sleep
	}
	return c
}

// Validate checks that the configuration describes a buildable rig: no empty
// bank, every role on its own pin, sane timing. A failure here is a wiring
// defect to fix at build time, not a runtime condition to recover from.
func (c Config) Validate() error {
	if len(c.LeftBank) == 0 || len(c.RightBank) == 0 {
		return ErrEmptyBank
	}
	if c.Debounce <= 0 {
		return ErrBadDebounce
	}
	if c.Interval < c.Debounce {
		return ErrBadInterval
	}
	if c.ClickCycles <= 0 || c.ClickHalfPeriod <= 0 {
		return ErrBadClick
	}

	seen := make(map[Pin]string)
	claim := func(p Pin, role string) error {
		if prev, ok := seen[p]; ok {
			return fmt.Errorf("%w: pin %d is both %s and %s", ErrPinConflict, p, prev, role)
		}
		seen[p] = role
		return nil
	}

	if err := claim(c.LeftButton, "left button"); err != nil {
		return err
	}
	if err := claim(c.RightButton, "right button"); err != nil {
		return err
	}
	if err := claim(c.BuzzerPin, "buzzer"); err != nil {
		return err
	}
	for i, p := range c.LeftBank {
		if err := claim(p, fmt.Sprintf("left bank slot %d", i)); err != nil {
			return err
		}
	}
	for i, p := range c.RightBank {
		if err := claim(p, fmt.Sprintf("right bank slot %d", i)); err != nil {
			return err
		}
	}
	return nil
}

// outputs returns every signal lamp, left bank first. The order only matters
// to the write journal in tests; electrically the writes are independent.
func (c Config) outputs() []Pin {
	out := make([]Pin, 0, len(c.LeftBank)+len(c.RightBank))
	out = append(out, c.LeftBank...)
	out = append(out, c.RightBank...)
	return out
}
