//go:build rp2040

package config

import (
	"machine"
	"time"
)

// Wiring of the reference Pico rig. Stalk lines are driven active-high by the
// loom; no internal pulls.
var (
	LeftButton  = machine.GP14
	RightButton = machine.GP15

	// Chase order runs inner lamp to outer.
	LeftBank  = [...]machine.Pin{machine.GP2, machine.GP3, machine.GP4, machine.GP5}
	RightBank = [...]machine.Pin{machine.GP6, machine.GP7, machine.GP8, machine.GP9}

	Buzzer = machine.GP10

	StatusLED = machine.LED

	// Bench panel extras, unused by the firmware itself.
	EncoderA = machine.GP12
	EncoderB = machine.GP13
)

const (
	// Interval paces one chase slot and one hazard phase; Debounce is the
	// settle pause after each stalk sample.
	Interval = 500 * time.Millisecond
	Debounce = time.Millisecond

	WatchdogTimeoutMillis = 3000
)

const (
	WaitCalibrationK time.Duration = 80339
	WaitCalibrationM time.Duration = 1000000
)
