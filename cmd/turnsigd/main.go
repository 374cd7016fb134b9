//go:build linux && !tinygo

// turnsigd runs the signal controller on a Raspberry Pi, with the stalk and
// lamp loom wired to the header or to an MCP23017 expander. Pin roles are
// fixed at build time, same as on the MCU; only the backend is selectable.
package main

import (
	"flag"
	"os"
	"os/signal"
	"syscall"

	"github.com/sirupsen/logrus"

	"turnsig/blinker"
	"turnsig/ports"
)

// Reference rig wiring, BCM numbering. Expander rigs reuse the same logical
// numbers for lines 0..15.
const (
	leftButton  blinker.Pin = 23
	rightButton blinker.Pin = 24
	buzzerPin   blinker.Pin = 12
)

var (
	leftBank  = []blinker.Pin{17, 27, 22, 5}
	rightBank = []blinker.Pin{6, 13, 19, 26}
)

type backend interface {
	blinker.Port
	Close() error
}

func main() {
	backendName := flag.String("backend", "rpio", "gpio backend: rpio, periph or mcp")
	bus := flag.Uint("bus", 1, "i2c bus number, mcp backend only")
	device := flag.Uint("device", 0, "expander device number, mcp backend only")
	flag.Parse()

	cfg := blinker.Config{
		LeftButton:  leftButton,
		RightButton: rightButton,
		BuzzerPin:   buzzerPin,
		LeftBank:    leftBank,
		RightBank:   rightBank,
	}

	inputs, outputs := ports.Roles(cfg)

	var (
		port backend
		err  error
	)
	switch *backendName {
	case "rpio":
		port, err = ports.SetupRPi(inputs, outputs)
	case "periph":
		port, err = ports.SetupPeriph(inputs, outputs)
	case "mcp":
		port, err = ports.SetupMCP(uint8(*bus), uint8(*device), inputs, outputs)
	default:
		logrus.Fatalf("unknown backend %q", *backendName)
	}
	if err != nil {
		logrus.WithError(err).Fatal("gpio setup failed")
	}

	ctl, err := blinker.New(port, cfg)
	if err != nil {
		logrus.WithError(err).Fatal("bad pin configuration")
	}

	sig := make(chan os.Signal, 1)
	signal.Notify(sig, os.Interrupt, syscall.SIGTERM)
	go func() {
		<-sig
		ctl.AllOff()
		if err := port.Close(); err != nil {
			logrus.WithError(err).Warn("gpio close failed")
		}
		os.Exit(0)
	}()

	logrus.WithFields(logrus.Fields{
		"backend":  *backendName,
		"interval": blinker.DefaultInterval,
	}).Info("signal controller running")

	ctl.Run()
}
