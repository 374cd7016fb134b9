package blinker

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewRejectsNilPort(t *testing.T) {
	_, err := New(nil, testConfig(nil))
	assert.ErrorIs(t, err, ErrNilPort)
}

func TestNewAppliesDefaults(t *testing.T) {
	cfg := Config{
		LeftButton:  tpLeftBtn,
		RightButton: tpRightBtn,
		BuzzerPin:   tpBuzzer,
		LeftBank:    tpLeftBank,
		RightBank:   tpRightBank,
	}
	ctl, err := New(NewMemPort(), cfg)
	require.NoError(t, err)

	assert.Equal(t, DefaultInterval, ctl.left.interval)
	assert.Equal(t, DefaultDebounce, ctl.sampler.debounce)
	assert.Equal(t, DefaultClickCycles, ctl.left.buzzer.cycles)
	assert.Equal(t, DefaultClickHalfPeriod, ctl.left.buzzer.half)
}

func TestStepDispatchesOffToAllOff(t *testing.T) {
	port := NewMemPort()
	// stale lamp state from a previous run
	port.Set(tpLeftBank[1], true)
	port.Set(tpRightBank[3], true)

	ctl, err := New(port, testConfig(&waitRecorder{}))
	require.NoError(t, err)

	port.Record(true)
	ctl.Step()

	writes := port.Writes()
	assert.Empty(t, lampHighs(writes))
	assert.Zero(t, buzzerWrites(writes))
	for pin, high := range port.Snapshot() {
		assert.False(t, high, "pin %d left high", pin)
	}
}

func TestStepRunsSelectedAnimationToCompletion(t *testing.T) {
	cases := []struct {
		name        string
		left, right bool
		wantFirst   Pin
	}{
		{"left chase", true, false, tpLeftBank[0]},
		{"right chase", false, true, tpRightBank[0]},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			port := NewMemPort()
			port.Set(tpLeftBtn, tc.left)
			port.Set(tpRightBtn, tc.right)
			releaseAfterClicks(port, 2, tpLeftBtn, tpRightBtn)

			ctl, err := New(port, testConfig(&waitRecorder{}))
			require.NoError(t, err)

			port.Record(true)
			ctl.Step()

			highs := lampHighs(port.Writes())
			require.NotEmpty(t, highs)
			assert.Equal(t, tc.wantFirst, highs[0])
		})
	}
}

func TestStepDispatchesHazard(t *testing.T) {
	port := NewMemPort()
	port.Set(tpLeftBtn, true)
	port.Set(tpRightBtn, true)
	releaseAfterClicks(port, 2, tpLeftBtn, tpRightBtn)

	ctl, err := New(port, testConfig(&waitRecorder{}))
	require.NoError(t, err)

	port.Record(true)
	ctl.Step()

	// first phase is dark with a click, so lamps all land low with the
	// buzzer having spoken
	writes := port.Writes()
	assert.NotZero(t, buzzerWrites(writes))
	groups := lampGroups(writes)
	require.NotEmpty(t, groups)
	assert.Len(t, groups[0], len(tpLeftBank)+len(tpRightBank))
	assert.False(t, groups[0][0].High)
}

func TestAllOffIsIdempotent(t *testing.T) {
	port := NewMemPort()
	ctl, err := New(port, testConfig(&waitRecorder{}))
	require.NoError(t, err)

	ctl.AllOff()
	port.Record(true)
	ctl.AllOff()

	writes := port.Writes()
	assert.Len(t, writes, len(tpLeftBank)+len(tpRightBank))
	for _, w := range writes {
		assert.False(t, w.High)
	}
}

// The reference hand-test: idle stays dark, a left pull sweeps the left bank
// twice, releasing the stalk blanks everything and goes back to idle.
func TestScenarioLeftPullAndRelease(t *testing.T) {
	port := NewMemPort()
	ctl, err := New(port, testConfig(&waitRecorder{}))
	require.NoError(t, err)

	port.Record(true)
	ctl.Step()
	idle := port.Writes()
	assert.Empty(t, lampHighs(idle))
	assert.Zero(t, buzzerWrites(idle))

	port.Set(tpLeftBtn, true)
	releaseAfterClicks(port, 8, tpLeftBtn)

	port.Record(true)
	ctl.Step()

	writes := port.Writes()
	want := append(append([]Pin{}, tpLeftBank...), tpLeftBank...)
	assert.Equal(t, want, lampHighs(writes))
	assert.Equal(t, 8*2*DefaultClickCycles, buzzerWrites(writes))

	port.OnWrite = nil
	port.Record(true)
	ctl.Step()
	assert.Empty(t, lampHighs(port.Writes()))

	for pin, high := range port.Snapshot() {
		assert.False(t, high, "pin %d left high", pin)
	}
}
