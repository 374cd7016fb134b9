//go:build linux && !tinygo

package ports

import (
	"github.com/racerxdl/go-mcp23017"

	"turnsig/blinker"
)

// MCP drives an MCP23017 16-line I2C expander, for rigs where the lamps
// outnumber the header's free pins. Pin values 0..15 select the expander
// line.
type MCP struct {
	dev *mcp23017.Device
}

// SetupMCP opens the expander at (bus, device) and configures the lines:
// inputs floating, outputs driven low.
func SetupMCP(bus, device uint8, inputs, outputs []blinker.Pin) (*MCP, error) {
	dev, err := mcp23017.Open(bus, device)
	if err != nil {
		return nil, err
	}
	for _, p := range inputs {
		if err := dev.PinMode(uint8(p), mcp23017.INPUT); err != nil {
			dev.Close()
			return nil, err
		}
	}
	for _, p := range outputs {
		if err := dev.PinMode(uint8(p), mcp23017.OUTPUT); err != nil {
			dev.Close()
			return nil, err
		}
		if err := dev.DigitalWrite(uint8(p), mcp23017.PinLevel(false)); err != nil {
			dev.Close()
			return nil, err
		}
	}
	return &MCP{dev: dev}, nil
}

func (m *MCP) Read(pin blinker.Pin) bool {
	level, err := m.dev.DigitalRead(uint8(pin))
	return err == nil && bool(level)
}

// Write drops the bus error if one occurs; the port contract has no channel
// for it and the next animation frame rewrites the line anyway.
func (m *MCP) Write(pin blinker.Pin, high bool) {
	_ = m.dev.DigitalWrite(uint8(pin), mcp23017.PinLevel(high))
}

// Close releases the I2C handle.
func (m *MCP) Close() error {
	return m.dev.Close()
}
