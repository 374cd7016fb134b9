package ports

import (
	"io"
	"sync"

	"turnsig/blinker"
)

// Command bytes of the usb-serial tower lights this was written against.
// One byte per action, no framing, no reply.
const (
	TowerRedOn     byte = 0x11
	TowerRedOff    byte = 0x21
	TowerYellowOn  byte = 0x12
	TowerYellowOff byte = 0x22
	TowerGreenOn   byte = 0x14
	TowerGreenOff  byte = 0x24
	TowerBuzzerOn  byte = 0x18
	TowerBuzzerOff byte = 0x28
)

// TowerCommand is the on/off byte pair one tower lamp understands.
type TowerCommand struct {
	On  byte
	Off byte
}

// Tower adapts a serial tower light to the port interface. Output pins map
// to lamp command pairs; input pins are shadow cells the host program pokes,
// since the light has no buttons of its own. Writes to unmapped pins are
// dropped.
type Tower struct {
	mu    sync.Mutex
	w     io.Writer
	lamps map[blinker.Pin]TowerCommand
	cells map[blinker.Pin]bool
}

// NewTower wraps an opened serial port, or any writer. The mapping assigns a
// command pair to every output role the controller will drive.
func NewTower(w io.Writer, lamps map[blinker.Pin]TowerCommand) *Tower {
	t := &Tower{
		w:     w,
		lamps: make(map[blinker.Pin]TowerCommand, len(lamps)),
		cells: make(map[blinker.Pin]bool),
	}
	for pin, cmd := range lamps {
		t.lamps[pin] = cmd
	}
	return t
}

func (t *Tower) Read(pin blinker.Pin) bool {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.cells[pin]
}

// Write sends the lamp's command byte. Serial errors are dropped; the port
// contract has no channel for them and the next frame resends the state.
func (t *Tower) Write(pin blinker.Pin, high bool) {
	t.mu.Lock()
	defer t.mu.Unlock()
	cmd, ok := t.lamps[pin]
	if !ok {
		return
	}
	b := cmd.Off
	if high {
		b = cmd.On
	}
	_, _ = t.w.Write([]byte{b})
	t.cells[pin] = high
}

// Set pokes an input line, standing in for the stalk.
func (t *Tower) Set(pin blinker.Pin, high bool) {
	t.mu.Lock()
	t.cells[pin] = high
	t.mu.Unlock()
}
