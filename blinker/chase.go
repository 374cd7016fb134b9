package blinker

import "time"

// chaser animates one side's sequential sweep. Lamps fill from slot 0
// outward, one interval and one click per slot, then the bank blanks and the
// sweep restarts. It owns the lamps only while its mode stays selected.
type chaser struct {
	sampler  *Sampler
	buzzer   *Buzzer
	port     Port
	mode     Mode
	bank     []Pin
	all      []Pin // every signal lamp, both banks
	interval time.Duration
}

// Animate runs sweep cycles until the sampled mode stops matching. However
// the sweep ends, the lamps are blanked before returning: a cancelled cycle
// must not strand a lit slot.
func (c *chaser) Animate() {
	defer c.blank()
	cancelled := false
	for !cancelled && c.sampler.Sample() == c.mode {
		c.blank()
		for _, slot := range c.bank {
			c.port.Write(slot, true)
			c.buzzer.Click()
			if !c.sampler.WaitWhile(c.mode, c.interval) {
				cancelled = true
				break
			}
		}
	}
}

func (c *chaser) blank() {
	for _, pin := range c.all {
		c.port.Write(pin, false)
	}
}
