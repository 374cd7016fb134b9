package blinker

import "time"

// flasher animates hazard mode: every lamp in both banks flashes in phase,
// half a period dark and half lit, with one click opening each phase.
type flasher struct {
	sampler  *Sampler
	buzzer   *Buzzer
	port     Port
	all      []Pin
	interval time.Duration
}

// Animate flashes until the stalk stops requesting hazards. As with the
// chase, the lamps end dark no matter which phase the cancellation lands in.
func (f *flasher) Animate() {
	defer f.setAll(false)
	for f.sampler.Sample() == ModeHazard {
		f.setAll(false)
		f.buzzer.Click()
		if !f.sampler.WaitWhile(ModeHazard, f.interval) {
			return
		}
		f.setAll(true)
		f.buzzer.Click()
		if !f.sampler.WaitWhile(ModeHazard, f.interval) {
			return
		}
	}
}

func (f *flasher) setAll(high bool) {
	for _, pin := range f.all {
		f.port.Write(pin, high)
	}
}
