//go:build linux && !tinygo

package ports

import (
	"fmt"

	"periph.io/x/conn/v3/gpio"
	"periph.io/x/conn/v3/gpio/gpioreg"
	"periph.io/x/host/v3"

	"turnsig/blinker"
)

// Periph drives GPIO through the periph.io host drivers. Slower per write
// than the register map but portable to any board periph knows.
type Periph struct {
	byPin map[blinker.Pin]gpio.PinIO
}

// SetupPeriph initializes the periph host and resolves every line by its
// GPIO number: inputs floating, outputs driven low.
func SetupPeriph(inputs, outputs []blinker.Pin) (*Periph, error) {
	if _, err := host.Init(); err != nil {
		return nil, err
	}

	p := &Periph{byPin: make(map[blinker.Pin]gpio.PinIO)}
	for _, n := range inputs {
		pin := gpioreg.ByName(fmt.Sprintf("GPIO%d", n))
		if pin == nil {
			return nil, fmt.Errorf("%w: GPIO%d", ErrNoSuchPin, n)
		}
		if err := pin.In(gpio.Float, gpio.NoEdge); err != nil {
			return nil, err
		}
		p.byPin[n] = pin
	}
	for _, n := range outputs {
		pin := gpioreg.ByName(fmt.Sprintf("GPIO%d", n))
		if pin == nil {
			return nil, fmt.Errorf("%w: GPIO%d", ErrNoSuchPin, n)
		}
		if err := pin.Out(gpio.Low); err != nil {
			return nil, err
		}
		p.byPin[n] = pin
	}
	return p, nil
}

func (p *Periph) Read(pin blinker.Pin) bool {
	line, ok := p.byPin[pin]
	return ok && line.Read() == gpio.High
}

func (p *Periph) Write(pin blinker.Pin, high bool) {
	if line, ok := p.byPin[pin]; ok {
		line.Out(gpio.Level(high))
	}
}

// Close exists for symmetry with the other backends; periph keeps no state
// that needs releasing.
func (*Periph) Close() error {
	return nil
}
