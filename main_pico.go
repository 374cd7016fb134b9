//go:build rp2040

package main

import (
	"machine"
	"time"

	"turnsig/blinker"
	"turnsig/config"
	"turnsig/ports"
)

//go:generate tinygo flash -target=pico

func main() {
	configurePins()
	calibrateSpin()

	cfg := blinker.Config{
		LeftButton:  blinker.Pin(config.LeftButton),
		RightButton: blinker.Pin(config.RightButton),
		BuzzerPin:   blinker.Pin(config.Buzzer),
		LeftBank:    bankPins(config.LeftBank),
		RightBank:   bankPins(config.RightBank),
		Interval:    config.Interval,
		Debounce:    config.Debounce,
		Wait:        spinWait,
		Heartbeat:   machine.Watchdog.Update,
	}

	ctl, err := blinker.New(ports.Machine{}, cfg)
	if err != nil {
		// a bad pin map is a build defect; complain forever instead of
		// driving a miswired loom
		for {
			println("pin config:", err.Error())
			time.Sleep(time.Second)
		}
	}

	machine.Watchdog.Configure(machine.WatchdogConfig{
		TimeoutMillis: config.WatchdogTimeoutMillis,
	})
	machine.Watchdog.Start()

	config.StatusLED.High()
	println("turnsig up, interval", config.Interval.String())

	ctl.Run()
}

// configurePins runs the one-time mode setup: stalk lines as plain inputs,
// the loom provides the active-high drive, lamps and buzzer as outputs,
// everything dark. Happens exactly once per power-on, before the loop.
func configurePins() {
	config.LeftButton.Configure(machine.PinConfig{Mode: machine.PinInput})
	config.RightButton.Configure(machine.PinConfig{Mode: machine.PinInput})

	outputs := []machine.Pin{config.Buzzer, config.StatusLED}
	outputs = append(outputs, config.LeftBank[:]...)
	outputs = append(outputs, config.RightBank[:]...)
	for _, p := range outputs {
		p.Configure(machine.PinConfig{Mode: machine.PinOutput})
		p.Low()
	}
}

// bankPins converts a board bank into the logical pins the controller uses.
func bankPins(bank [4]machine.Pin) []blinker.Pin {
	out := make([]blinker.Pin, len(bank))
	for i, p := range bank {
		out[i] = blinker.Pin(p)
	}
	return out
}
