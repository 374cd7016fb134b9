// turnsig-sim runs the controller against the in-memory port and turns the
// terminal into the stalk: type left, right, hazard or off and watch the lamp
// frames scroll by. Handy for eyeballing animation changes without a rig.
package main

import (
	"fmt"
	"io"
	"strings"
	"sync"

	"github.com/chzyer/readline"

	"turnsig/blinker"
)

const (
	leftButton  blinker.Pin = 2
	rightButton blinker.Pin = 3
	buzzerPin   blinker.Pin = 4
)

var (
	leftBank  = []blinker.Pin{10, 11, 12, 13}
	rightBank = []blinker.Pin{20, 21, 22, 23}
)

// frame renders the bank state on one line, left bank mirrored so the sweep
// reads outward from the center like on the tail of the rig.
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

func main() {
	port := blinker.NewMemPort()

	cfg := blinker.Config{
		LeftButton:  leftButton,
		RightButton: rightButton,
		BuzzerPin:   buzzerPin,
		LeftBank:    leftBank,
		RightBank:   rightBank,
	}

	ctl, err := blinker.New(port, cfg)
	if err != nil {
		fmt.Println("config:", err)
		return
	}

	// print a frame whenever the lamp picture changes; buzzer writes and
	// repeated blanks stay quiet
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

	rl, err := readline.NewEx(&readline.Config{
		Prompt:          "stalk> ",
		EOFPrompt:       "exit",
		InterruptPrompt: "exit",
		AutoComplete: readline.NewPrefixCompleter(
			readline.PcItem("left"),
			readline.PcItem("right"),
			readline.PcItem("hazard"),
			readline.PcItem("off"),
			readline.PcItem("state"),
			readline.PcItem("exit"),
		),
	})
	if err != nil {
		fmt.Println("readline:", err)
		return
	}
	defer rl.Close()

	prev := ""
	for {
		line, err := rl.Readline()
		if err == readline.ErrInterrupt || err == io.EOF {
			return
		}

		cmd := strings.TrimSpace(line)
		if cmd == "" {
			// empty line repeats the previous command
			cmd = prev
		}
		prev = cmd

		switch cmd {
		case "left":
			port.Set(rightButton, false)
			port.Set(leftButton, true)
		case "right":
			port.Set(leftButton, false)
			port.Set(rightButton, true)
		case "hazard":
			port.Set(leftButton, true)
			port.Set(rightButton, true)
		case "off":
			port.Set(leftButton, false)
			port.Set(rightButton, false)
		case "state":
			fmt.Println(frame(port))
		case "exit", "quit":
			return
		case "":
		default:
			fmt.Printf("unknown command %q\n", cmd)
		}
	}
}
