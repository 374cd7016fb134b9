package blinker

// Controller is the top of the loop. It owns the sampler, the buzzer and the
// three animators, and dispatches one whole animation per sampled mode.
type Controller struct {
	port    Port
	sampler *Sampler
	left    *chaser
	right   *chaser
	hazard  *flasher
	outputs []Pin
}

// New wires a controller from a validated configuration. The port must
// already have its pin modes configured; New never touches them.
func New(port Port, cfg Config) (*Controller, error) {
	if port == nil {
		return nil, ErrNilPort
	}
	cfg = cfg.withDefaults()
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	outputs := cfg.outputs()
	sampler := NewSampler(port, cfg)
	buzzer := NewBuzzer(port, cfg)

	return &Controller{
		port:    port,
		sampler: sampler,
		left: &chaser{
			sampler:  sampler,
			buzzer:   buzzer,
			port:     port,
			mode:     ModeLeft,
			bank:     cfg.LeftBank,
			all:      outputs,
			interval: cfg.Interval,
		},
		right: &chaser{
			sampler:  sampler,
			buzzer:   buzzer,
			port:     port,
			mode:     ModeRight,
			bank:     cfg.RightBank,
			all:      outputs,
			interval: cfg.Interval,
		},
		hazard: &flasher{
			sampler:  sampler,
			buzzer:   buzzer,
			port:     port,
			all:      outputs,
			interval: cfg.Interval,
		},
		outputs: outputs,
	}, nil
}

// Run drives the dispatch loop forever. The sampler's debounce pause is the
// only pacing between iterations.
func (c *Controller) Run() {
	for {
		c.Step()
	}
}

// Step samples the stalk once and plays out the entire selected animation,
// or blanks the lamps when nothing is requested.
func (c *Controller) Step() {
	switch c.sampler.Sample() {
	case ModeLeft:
		c.left.Animate()
	case ModeRight:
		c.right.Animate()
	case ModeHazard:
		c.hazard.Animate()
	default:
		c.AllOff()
	}
}

// AllOff forces every signal lamp inactive. It is safe from any prior state;
// the off dispatch path, the animator exits and daemon shutdown all funnel
// through the same writes.
func (c *Controller) AllOff() {
	for _, pin := range c.outputs {
		c.port.Write(pin, false)
	}
}
