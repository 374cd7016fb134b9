package blinker

import "time"

// Sampler derives the requested Mode from the two stalk lines. A sample is
// cheap and writes nothing, so the animators poll it continuously; the
// debounce pause after each read doubles as the timebase for every
// cancellable wait in the loop.
type Sampler struct {
	port      Port
	left      Pin
	right     Pin
	debounce  time.Duration
	wait      func(time.Duration)
	heartbeat func()
}

// NewSampler builds a sampler for the button pins in cfg. Zero timing fields
// fall back to the defaults.
func NewSampler(port Port, cfg Config) *Sampler {
	cfg = cfg.withDefaults()
	return &Sampler{
		port:      port,
		left:      cfg.LeftButton,
		right:     cfg.RightButton,
		debounce:  cfg.Debounce,
		wait:      cfg.Wait,
		heartbeat: cfg.Heartbeat,
	}
}

// Sample reads both stalk lines, derives the mode and lets the contacts
// settle for one debounce period. Both lines high means hazards.
func (s *Sampler) Sample() Mode {
	if s.heartbeat != nil {
		s.heartbeat()
	}
	left := s.port.Read(s.left)
	right := s.port.Read(s.right)
	s.wait(s.debounce)
	switch {
	case left && right:
		return ModeHazard
	case left:
		return ModeLeft
	case right:
		return ModeRight
	}
	return ModeOff
}

// ticks converts a duration to whole debounce periods, at least one.
func (s *Sampler) ticks(d time.Duration) int {
	n := int(d / s.debounce)
	if n < 1 {
		n = 1
	}
	return n
}

// WaitWhile holds for d as long as the sampled mode stays m. It returns false
// the moment the mode differs, within one debounce period of the change. That
// period is the cancellation latency bound of the whole loop.
func (s *Sampler) WaitWhile(m Mode, d time.Duration) bool {
	for n := s.ticks(d); n > 0; n-- {
		if s.Sample() != m {
			return false
		}
	}
	return true
}
