package blinker

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// lampGroups splits a journal into runs of consecutive lamp writes at the
// same level, ignoring the buzzer. A synchronized flash shows up as groups of
// eight, alternating level.
func lampGroups(writes []PinWrite) [][]PinWrite {
	var groups [][]PinWrite
	for _, w := range writes {
		if w.Pin == tpBuzzer {
			continue
		}
		last := len(groups) - 1
		if last >= 0 && groups[last][0].High == w.High {
			groups[last] = append(groups[last], w)
			continue
		}
		groups = append(groups, []PinWrite{w})
	}
	return groups
}

func TestHazardFlashesBothBanksTogether(t *testing.T) {
	port := NewMemPort()
	port.Set(tpLeftBtn, true)
	port.Set(tpRightBtn, true)
	releaseAfterClicks(port, 4, tpLeftBtn, tpRightBtn)

	ctl, err := New(port, testConfig(&waitRecorder{}))
	require.NoError(t, err)

	port.Record(true)
	ctl.hazard.Animate()

	writes := port.Writes()

	// four phases, one click opening each
	assert.Equal(t, 4*2*DefaultClickCycles, buzzerWrites(writes))

	// off, on, off, on, then the exit blank
	groups := lampGroups(writes)
	require.Len(t, groups, 5)
	for i, g := range groups {
		assert.Len(t, g, len(tpLeftBank)+len(tpRightBank), "group %d", i)
		assert.Equal(t, i%2 == 1, g[0].High, "group %d level", i)

		covered := make(map[Pin]bool)
		for _, w := range g {
			covered[w.Pin] = true
		}
		for _, pin := range append(append([]Pin{}, tpLeftBank...), tpRightBank...) {
			assert.True(t, covered[pin], "group %d missed pin %d", i, pin)
		}
	}
}

func TestHazardCancelMidPhaseLeavesAllDark(t *testing.T) {
	port := NewMemPort()
	port.Set(tpLeftBtn, true)
	port.Set(tpRightBtn, true)
	// release during the lit phase, after its opening click
	releaseAfterClicks(port, 2, tpLeftBtn, tpRightBtn)

	ctl, err := New(port, testConfig(&waitRecorder{}))
	require.NoError(t, err)

	ctl.hazard.Animate()

	for pin, high := range port.Snapshot() {
		assert.False(t, high, "pin %d left high", pin)
	}
}

func TestHazardDropToSingleButtonCancels(t *testing.T) {
	port := NewMemPort()
	port.Set(tpLeftBtn, true)
	port.Set(tpRightBtn, true)
	// keep left held: hazard must still yield, handing over to the chase
	releaseAfterClicks(port, 2, tpRightBtn)

	ctl, err := New(port, testConfig(&waitRecorder{}))
	require.NoError(t, err)

	ctl.hazard.Animate()

	for pin, high := range port.Snapshot() {
		if pin == tpLeftBtn {
			continue
		}
		assert.False(t, high, "pin %d left high", pin)
	}
}
