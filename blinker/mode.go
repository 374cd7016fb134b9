package blinker

// Mode is the signal mode requested by the stalk lines.
type Mode uint8

const (
	ModeOff Mode = iota
	ModeLeft
	ModeRight
	ModeHazard
)

func (m Mode) String() string {
	switch m {
	case ModeOff:
		return "off"
	case ModeLeft:
		return "left"
	case ModeRight:
		return "right"
	case ModeHazard:
		return "hazard"
	}
	return "unknown"
}
