//go:build tinygo

package ports

import (
	"machine"

	"turnsig/blinker"
)

// Machine drives the MCU's own header through the machine package. Pin values
// are GP numbers; mode configuration happens once in the firmware entry, so
// this backend only reads and writes.
type Machine struct{}

func (Machine) Read(pin blinker.Pin) bool {
	return machine.Pin(pin).Get()
}

func (Machine) Write(pin blinker.Pin, high bool) {
	machine.Pin(pin).Set(high)
}
