// turnsig-tower plays a fixed signal demo on a usb-serial tower light: left
// blinks the red lamp, right the green, hazards both, with the tower's own
// buzzer clicking. Single-lamp banks make the chase degenerate into a plain
// blink, which is all a tower can show.
package main

import (
	"flag"
	"log"
	"time"

	"github.com/tarm/serial"

	"turnsig/blinker"
	"turnsig/ports"
)

const (
	leftButton  blinker.Pin = 1
	rightButton blinker.Pin = 2
	buzzerPin   blinker.Pin = 3
	leftLamp    blinker.Pin = 10
	rightLamp   blinker.Pin = 11
)

func main() {
	dev := flag.String("port", "/dev/ttyUSB0", "serial device of the tower light")
	baud := flag.Int("baud", 9600, "serial baud rate")
	flag.Parse()

	s, err := serial.OpenPort(&serial.Config{Name: *dev, Baud: *baud})
	if err != nil {
		log.Fatalf("open %s: %v", *dev, err)
	}
	defer s.Close()

	tower := ports.NewTower(s, map[blinker.Pin]ports.TowerCommand{
		leftLamp:  {On: ports.TowerRedOn, Off: ports.TowerRedOff},
		rightLamp: {On: ports.TowerGreenOn, Off: ports.TowerGreenOff},
		buzzerPin: {On: ports.TowerBuzzerOn, Off: ports.TowerBuzzerOff},
	})

	cfg := blinker.Config{
		LeftButton:  leftButton,
		RightButton: rightButton,
		BuzzerPin:   buzzerPin,
		LeftBank:    []blinker.Pin{leftLamp},
		RightBank:   []blinker.Pin{rightLamp},
		Interval:    700 * time.Millisecond,
		// the tower buzzer switches on command bytes, not at audio rate, so
		// one long cycle replaces the 3.9 kHz burst
		ClickCycles:     1,
		ClickHalfPeriod: 60 * time.Millisecond,
	}

	ctl, err := blinker.New(tower, cfg)
	if err != nil {
		log.Fatalf("config: %v", err)
	}

	go ctl.Run()

	step := func(name string, left, right bool, hold time.Duration) {
		log.Printf("stalk: %s", name)
		tower.Set(leftButton, left)
		tower.Set(rightButton, right)
		time.Sleep(hold)
	}

	step("left", true, false, 4*time.Second)
	step("right", false, true, 4*time.Second)
	step("hazard", true, true, 4*time.Second)
	step("released", false, false, time.Second)

	ctl.AllOff()
	log.Println("demo complete")
}
