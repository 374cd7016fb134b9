// Package ports provides blinker.Port backends for real hardware. Each
// backend translates the logical pin numbers of a blinker.Config into
// whatever the underlying stack expects. Setup failures are returned when a
// backend is opened; the write path itself never reports.
package ports

import "turnsig/blinker"

// error definitions
type Error string

func (e Error) Error() string {
	return string(e)
}

const (
	ErrNoSuchPin = Error("no such pin")
)

// Roles splits a configuration into its input and output lines, the shape the
// backend setup calls expect.
func Roles(cfg blinker.Config) (inputs, outputs []blinker.Pin) {
	inputs = []blinker.Pin{cfg.LeftButton, cfg.RightButton}
	outputs = append(outputs, cfg.LeftBank...)
	outputs = append(outputs, cfg.RightBank...)
	outputs = append(outputs, cfg.BuzzerPin)
	return inputs, outputs
}
