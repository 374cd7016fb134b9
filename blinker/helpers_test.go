package blinker

import "time"

// Test rig wiring. Values are arbitrary; only distinctness matters.
const (
	tpLeftBtn  Pin = 2
	tpRightBtn Pin = 3
	tpBuzzer   Pin = 4
)

var (
	tpLeftBank  = []Pin{10, 11, 12, 13}
	tpRightBank = []Pin{20, 21, 22, 23}
)

// waitRecorder stands in for the sleep so tests finish instantly and can
// audit every pause the loop requested.
type waitRecorder struct {
	calls []time.Duration
}

func (w *waitRecorder) wait(d time.Duration) {
	w.calls = append(w.calls, d)
}

func (w *waitRecorder) count(d time.Duration) int {
	n := 0
	for _, c := range w.calls {
		if c == d {
			n++
		}
	}
	return n
}

// testConfig uses a 4 ms interval over a 1 ms debounce, so every cancellable
// wait is exactly four sample ticks.
func testConfig(w *waitRecorder) Config {
	cfg := Config{
		LeftButton:  tpLeftBtn,
		RightButton: tpRightBtn,
		BuzzerPin:   tpBuzzer,
		LeftBank:    tpLeftBank,
		RightBank:   tpRightBank,
		Interval:    4 * time.Millisecond,
		Debounce:    time.Millisecond,
	}
	if w != nil {
		cfg.Wait = w.wait
	}
	return cfg
}

// lampHighs extracts the lamps activated, in order, from a write journal.
func lampHighs(writes []PinWrite) []Pin {
	var out []Pin
	for _, w := range writes {
		if w.Pin != tpBuzzer && w.High {
			out = append(out, w.Pin)
		}
	}
	return out
}

// buzzerWrites counts journal entries on the buzzer line.
func buzzerWrites(writes []PinWrite) int {
	n := 0
	for _, w := range writes {
		if w.Pin == tpBuzzer {
			n++
		}
	}
	return n
}
