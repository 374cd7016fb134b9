//go:build !tinygo

package main

import (
	"fmt"
	"strings"
	"sync"
	"time"

	"turnsig/blinker"
)

// Host build: no pins to drive, so walk the stalk through the reference
// scenario against the in-memory port and print each lamp frame. `go run .`
// shows the loop's behavior; real deployments build with tinygo or run one of
// the cmd binaries.

const (
	leftButton  blinker.Pin = 2
	rightButton blinker.Pin = 3
	buzzerPin   blinker.Pin = 4
)

var (
	leftBank  = []blinker.Pin{10, 11, 12, 13}
	rightBank = []blinker.Pin{20, 21, 22, 23}
)

func main() {
	port := blinker.NewMemPort()

	cfg := blinker.Config{
		LeftButton:  leftButton,
		RightButton: rightButton,
		BuzzerPin:   buzzerPin,
		LeftBank:    leftBank,
		RightBank:   rightBank,
		Interval:    300 * time.Millisecond,
	}

	ctl, err := blinker.New(port, cfg)
	if err != nil {
		fmt.Println("config:", err)
		return
	}

	var mu sync.Mutex
	last := ""
	port.OnWrite = func(pin blinker.Pin, _ bool) {
		if pin == buzzerPin {
			return
		}
		mu.Lock()
		defer mu.Unlock()
		if f := frame(port); f != last {
			last = f
			fmt.Println(f)
		}
	}

	go ctl.Run()

	hold := func(name string, left, right bool, d time.Duration) {
		fmt.Println("stalk:", name)
		port.Set(leftButton, left)
		port.Set(rightButton, right)
		time.Sleep(d)
	}

	hold("idle", false, false, 500*time.Millisecond)
	hold("left", true, false, 3*time.Second)
	hold("released", false, false, 500*time.Millisecond)
	hold("hazard", true, true, 2*time.Second)
	hold("released", false, false, 500*time.Millisecond)
}

func frame(port *blinker.MemPort) string {
	var b strings.Builder
	for i := len(leftBank) - 1; i >= 0; i-- {
		b.WriteString(cell(port.Get(leftBank[i])))
	}
	b.WriteString(" << L  R >> ")
	for _, pin := range rightBank {
		b.WriteString(cell(port.Get(pin)))
	}
	return b.String()
}

func cell(on bool) string {
	if on {
		return "[#]"
	}
	return "[ ]"
}
