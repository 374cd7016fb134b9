//go:build rp2040

package main

import (
	"device"
	"time"
	_ "unsafe"

	"turnsig/config"
)

//go:linkname ticks runtime.ticks
func ticks() uint64

//go:linkname ticksToNanoseconds runtime.ticksToNanoseconds
func ticksToNanoseconds(ticks uint64) int64

// Wait calibration. Actual nop loop count is duration * K / M; the config
// defaults are measured on an rp2040 at 125 MHz and rescaled once at boot.
var (
	spinK = config.WaitCalibrationK
	spinM = config.WaitCalibrationM
)

// spinWait burns CPU for roughly d. The click half periods are far below the
// scheduler's sleep granularity, and single-threaded firmware has nothing
// better to do during a pause, so every wait in the loop spins.
//
//go:inline
func spinWait(d time.Duration) {
	for n := d * spinK / spinM; n > 0; n-- {
		device.Asm(`nop`)
	}
}

// calibrateSpin measures the real cost of the configured loop constant and
// rescales it. Runs once at boot, before the control loop starts.
func calibrateSpin() {
	const (
		probe  = 2 * time.Millisecond
		rounds = 50
	)

	t1 := ticks()
	for i := 0; i < rounds; i++ {
		spinWait(probe)
	}
	actual := time.Duration(ticksToNanoseconds(ticks()-t1)) / rounds

	if actual <= 0 {
		return
	}
	spinK = spinK * probe / actual
}
