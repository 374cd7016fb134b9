//go:build linux && !tinygo

package ports

import (
	"github.com/stianeikeland/go-rpio/v4"

	"turnsig/blinker"
)

// RPi drives the Broadcom header directly through /dev/gpiomem. Pin values
// are BCM numbers. Fastest backend on a Pi, close enough to the MCU's write
// latency that the click waveform stays audible.
type RPi struct{}

// SetupRPi maps the GPIO register range and configures the lines: inputs
// floating (the stalk loom provides the active-high drive), outputs driven
// low.
func SetupRPi(inputs, outputs []blinker.Pin) (*RPi, error) {
	if err := rpio.Open(); err != nil {
		return nil, err
	}
	for _, p := range inputs {
		rpio.Pin(p).Input()
	}
	for _, p := range outputs {
		pin := rpio.Pin(p)
		pin.Output()
		pin.Low()
	}
	return &RPi{}, nil
}

func (*RPi) Read(pin blinker.Pin) bool {
	return rpio.Pin(pin).Read() == rpio.High
}

func (*RPi) Write(pin blinker.Pin, high bool) {
	if high {
		rpio.Pin(pin).High()
	} else {
		rpio.Pin(pin).Low()
	}
}

// Close releases the register mapping.
func (*RPi) Close() error {
	return rpio.Close()
}
