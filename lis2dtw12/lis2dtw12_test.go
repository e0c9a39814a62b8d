// Copyright 2025 The Periph Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

package lis2dtw12

import (
	"os"
	"testing"
	"time"

	"periph.io/x/conn/v3/i2c/i2creg"
	"periph.io/x/conn/v3/i2c/i2ctest"
	"periph.io/x/conn/v3/physic"
	"periph.io/x/host/v3"
)

const testAddr = DefaultAddress

// whoAmIOp is the identity probe every construction performs.
func whoAmIOp() i2ctest.IO {
	return i2ctest.IO{Addr: testAddr, W: []byte{0x0F}, R: []byte{0x44}}
}

// newDev builds a Dev over a playback bus primed with the WHO_AM_I probe
// followed by ops.
func newDev(t *testing.T, ops []i2ctest.IO) (*Dev, *i2ctest.Playback) {
	t.Helper()
	pb := &i2ctest.Playback{Ops: append([]i2ctest.IO{whoAmIOp()}, ops...), DontPanic: true}
	d, err := NewI2C(pb, testAddr, nil)
	if err != nil {
		t.Fatal(err)
	}
	return d, pb
}

func TestNewWhoAmIMismatch(t *testing.T) {
	pb := &i2ctest.Playback{
		Ops:       []i2ctest.IO{{Addr: testAddr, W: []byte{0x0F}, R: []byte{0x43}}},
		DontPanic: true,
	}
	defer pb.Close()
	if _, err := NewI2C(pb, testAddr, nil); err == nil {
		t.Fatal("expected WHO_AM_I mismatch error")
	}
}

func TestNewInvalidAddress(t *testing.T) {
	pb := &i2ctest.Playback{DontPanic: true}
	defer pb.Close()
	if _, err := NewI2C(pb, 0x42, nil); err == nil {
		t.Fatal("expected invalid address error")
	}
}

// TestSetFullScaleIsolation presets unrelated CTRL6 bits and verifies the
// read-modify-write only touches the FS field.
func TestSetFullScaleIsolation(t *testing.T) {
	// 0xCF has the bandwidth, FDS and low-noise bits set and FS clear.
	d, pb := newDev(t, []i2ctest.IO{
		{Addr: testAddr, W: []byte{0x25}, R: []byte{0xCF}},
		{Addr: testAddr, W: []byte{0x25, 0xEF}},
	})
	if err := d.SetFullScale(FullScale8G); err != nil {
		t.Fatal(err)
	}
	if d.fullScale != FullScale8G {
		t.Errorf("cached full scale = %d, want %d", d.fullScale, FullScale8G)
	}
	if err := pb.Close(); err != nil {
		t.Error(err)
	}
}

// TestSetModeUpdatesCache verifies the mode write and the cache update that
// later conversions depend on.
func TestSetModeUpdatesCache(t *testing.T) {
	d, pb := newDev(t, []i2ctest.IO{
		{Addr: testAddr, W: []byte{0x20}, R: []byte{0x00}},
		{Addr: testAddr, W: []byte{0x20, 0x04}},
		{Addr: testAddr, W: []byte{0x20}, R: []byte{0x04}},
		{Addr: testAddr, W: []byte{0x20, 0x05}},
	})
	if err := d.SetMode(ModeHighPerformance); err != nil {
		t.Fatal(err)
	}
	if d.mode != ModeHighPerformance {
		t.Errorf("cached mode = %d, want %d", d.mode, ModeHighPerformance)
	}
	if err := d.SetLowPowerMode(LowPowerMode2); err != nil {
		t.Fatal(err)
	}
	if d.lpMode != LowPowerMode2 {
		t.Errorf("cached low-power mode = %d, want %d", d.lpMode, LowPowerMode2)
	}
	if err := pb.Close(); err != nil {
		t.Error(err)
	}
}

// TestFifoThresholdClamping verifies that an out-of-range threshold writes
// the same register value as the maximum.
func TestFifoThresholdClamping(t *testing.T) {
	// FIFO mode bits preset to 0x20; both calls must write 0x3F.
	d, pb := newDev(t, []i2ctest.IO{
		{Addr: testAddr, W: []byte{0x2E}, R: []byte{0x20}},
		{Addr: testAddr, W: []byte{0x2E, 0x3F}},
		{Addr: testAddr, W: []byte{0x2E}, R: []byte{0x20}},
		{Addr: testAddr, W: []byte{0x2E, 0x3F}},
	})
	if err := d.SetFifoThreshold(40); err != nil {
		t.Fatal(err)
	}
	if err := d.SetFifoThreshold(31); err != nil {
		t.Fatal(err)
	}
	if err := pb.Close(); err != nil {
		t.Error(err)
	}
}

func TestWakeUpThresholdClamping(t *testing.T) {
	// Sleep-on bit preset; both calls must write 0xBF.
	d, pb := newDev(t, []i2ctest.IO{
		{Addr: testAddr, W: []byte{0x34}, R: []byte{0x80}},
		{Addr: testAddr, W: []byte{0x34, 0xBF}},
		{Addr: testAddr, W: []byte{0x34}, R: []byte{0x80}},
		{Addr: testAddr, W: []byte{0x34, 0xBF}},
	})
	if err := d.SetWakeUpThreshold(100); err != nil {
		t.Fatal(err)
	}
	if err := d.SetWakeUpThreshold(63); err != nil {
		t.Fatal(err)
	}
	if err := pb.Close(); err != nil {
		t.Error(err)
	}
}

// TestFreeFallDuration verifies the split of the 6 bit duration between
// WAKE_UP_DUR bit 7 and FREE_FALL bits 7:3, with clamping.
func TestFreeFallDuration(t *testing.T) {
	d, pb := newDev(t, []i2ctest.IO{
		// 100 clamps to 63: MSB set, low bits 0x1F shifted into place.
		{Addr: testAddr, W: []byte{0x35}, R: []byte{0x00}},
		{Addr: testAddr, W: []byte{0x35, 0x80}},
		{Addr: testAddr, W: []byte{0x36}, R: []byte{0x03}},
		{Addr: testAddr, W: []byte{0x36, 0xFB}},
		// 5: MSB cleared, 0x05<<3 in FREE_FALL.
		{Addr: testAddr, W: []byte{0x35}, R: []byte{0x80}},
		{Addr: testAddr, W: []byte{0x35, 0x00}},
		{Addr: testAddr, W: []byte{0x36}, R: []byte{0xFB}},
		{Addr: testAddr, W: []byte{0x36, 0x2B}},
	})
	if err := d.SetFreeFallDuration(100); err != nil {
		t.Fatal(err)
	}
	if err := d.SetFreeFallDuration(5); err != nil {
		t.Fatal(err)
	}
	if err := pb.Close(); err != nil {
		t.Error(err)
	}
}

// TestErrorPropagation verifies that a failing bus transaction surfaces to
// the caller and leaves the cached conversion state untouched.
func TestErrorPropagation(t *testing.T) {
	// No ops scripted beyond the probe: the CTRL6 read fails.
	d, _ := newDev(t, nil)
	if err := d.SetFullScale(FullScale16G); err == nil {
		t.Fatal("expected a transport error")
	}
	if d.fullScale != FullScale2G {
		t.Errorf("cached full scale mutated to %d on a failed write", d.fullScale)
	}
	if err := d.SetMode(ModeHighPerformance); err == nil {
		t.Fatal("expected a transport error")
	}
	if d.mode != ModeLowPower {
		t.Errorf("cached mode mutated to %d on a failed write", d.mode)
	}
}

func TestStatus(t *testing.T) {
	d, pb := newDev(t, []i2ctest.IO{
		{Addr: testAddr, W: []byte{0x27}, R: []byte{0x91}},
	})
	s, err := d.Status()
	if err != nil {
		t.Fatal(err)
	}
	want := Status{FifoThreshold: true, DoubleTap: true, DataReady: true}
	if s != want {
		t.Errorf("Status() = %+v, want %+v", s, want)
	}
	if err := pb.Close(); err != nil {
		t.Error(err)
	}
}

// TestAllSources verifies the 5 byte burst: one transaction starting at
// STATUS_DUP with the auto-increment bit set.
func TestAllSources(t *testing.T) {
	d, pb := newDev(t, []i2ctest.IO{
		{Addr: testAddr, W: []byte{0xB7}, R: []byte{0x11, 0x08, 0x48, 0x40, 0x21}},
	})
	s, err := d.AllSources()
	if err != nil {
		t.Fatal(err)
	}
	if !s.EventStatus.DoubleTap || !s.WakeUpSource.WakeUp || !s.TapSource.Tap ||
		!s.SixDSource.PositionChange || !s.AllInterruptSources.SleepChange {
		t.Errorf("AllSources() = %+v", s)
	}
	if err := pb.Close(); err != nil {
		t.Error(err)
	}
}

func TestRawAcceleration(t *testing.T) {
	d, pb := newDev(t, []i2ctest.IO{
		{Addr: testAddr, W: []byte{0xA8}, R: []byte{0x40, 0x06, 0x00, 0x00, 0x00, 0xF0}},
	})
	raw, err := d.RawAcceleration()
	if err != nil {
		t.Fatal(err)
	}
	want := RawAccelerationData{X: 1600, Y: 0, Z: -4096}
	if raw != want {
		t.Errorf("RawAcceleration() = %+v, want %+v", raw, want)
	}
	if err := pb.Close(); err != nil {
		t.Error(err)
	}
}

// TestAcceleration reads a sample with the power-on cache: low-power mode 1
// is the 12 bit sub-mode, so the raw values shift right by 4 before scaling
// with the ±2g factor.
func TestAcceleration(t *testing.T) {
	d, pb := newDev(t, []i2ctest.IO{
		{Addr: testAddr, W: []byte{0xA8}, R: []byte{0x40, 0x06, 0x00, 0x00, 0x00, 0xF0}},
	})
	a, err := d.Acceleration()
	if err != nil {
		t.Fatal(err)
	}
	if !almostEqual(a.X, 100*0.244) || !almostEqual(a.Y, 0) || !almostEqual(a.Z, -256*0.244) {
		t.Errorf("Acceleration() = %+v", a)
	}
	if err := pb.Close(); err != nil {
		t.Error(err)
	}
}

func TestTemperature(t *testing.T) {
	tests := []struct {
		raw      []byte
		expected physic.Temperature
	}{
		{[]byte{0x00, 0x00}, physic.ZeroCelsius + 25*physic.Kelvin},
		{[]byte{0x00, 0x01}, physic.ZeroCelsius + 26*physic.Kelvin},
		{[]byte{0x00, 0xFF}, physic.ZeroCelsius + 24*physic.Kelvin},
	}
	var ops []i2ctest.IO
	for _, test := range tests {
		ops = append(ops, i2ctest.IO{Addr: testAddr, W: []byte{0x8D}, R: test.raw})
	}
	d, pb := newDev(t, ops)
	for _, test := range tests {
		got, err := d.Temperature()
		if err != nil {
			t.Fatal(err)
		}
		if got != test.expected {
			t.Errorf("Temperature() = %s, want %s", got, test.expected)
		}
	}
	if err := pb.Close(); err != nil {
		t.Error(err)
	}
}

func TestSense(t *testing.T) {
	d, pb := newDev(t, []i2ctest.IO{
		{Addr: testAddr, W: []byte{0x8D}, R: []byte{0x00, 0x01}},
	})
	var e physic.Env
	if err := d.Sense(&e); err != nil {
		t.Fatal(err)
	}
	if e.Temperature != physic.ZeroCelsius+26*physic.Kelvin {
		t.Errorf("Sense() temperature = %s, want 26°C", e.Temperature)
	}
	var p physic.Env
	d.Precision(&p)
	if p.Temperature != physic.Temperature(int64(physic.Kelvin)/256) {
		t.Errorf("Precision() temperature = %d", p.Temperature)
	}
	if err := pb.Close(); err != nil {
		t.Error(err)
	}
}

// TestResetBlocking scripts a reset where the device reports completion on
// the third poll.
func TestResetBlocking(t *testing.T) {
	d, pb := newDev(t, []i2ctest.IO{
		{Addr: testAddr, W: []byte{0x21}, R: []byte{0x04}},
		{Addr: testAddr, W: []byte{0x21, 0x44}},
		{Addr: testAddr, W: []byte{0x21}, R: []byte{0x44}},
		{Addr: testAddr, W: []byte{0x21}, R: []byte{0x44}},
		{Addr: testAddr, W: []byte{0x21}, R: []byte{0x04}},
	})
	d.fullScale = FullScale16G
	d.mode = ModeHighPerformance
	if err := d.ResetBlocking(); err != nil {
		t.Fatal(err)
	}
	if d.fullScale != FullScale2G || d.mode != ModeLowPower || d.lpMode != LowPowerMode1 {
		t.Error("cached configuration not reset to power-on defaults")
	}
	// The playback must be fully consumed: exactly three polls happened.
	if err := pb.Close(); err != nil {
		t.Error(err)
	}
}

// TestResetNonBlocking verifies that Reset returns after the single write,
// issuing no polls.
func TestResetNonBlocking(t *testing.T) {
	d, pb := newDev(t, []i2ctest.IO{
		{Addr: testAddr, W: []byte{0x21}, R: []byte{0x04}},
		{Addr: testAddr, W: []byte{0x21, 0x44}},
	})
	d.fullScale = FullScale4G
	if err := d.Reset(); err != nil {
		t.Fatal(err)
	}
	if d.fullScale != FullScale2G {
		t.Error("cached configuration not reset to power-on defaults")
	}
	if err := pb.Close(); err != nil {
		t.Error(err)
	}
}

func TestResetComplete(t *testing.T) {
	d, pb := newDev(t, []i2ctest.IO{
		{Addr: testAddr, W: []byte{0x21}, R: []byte{0x44}},
		{Addr: testAddr, W: []byte{0x21}, R: []byte{0x04}},
	})
	done, err := d.ResetComplete()
	if err != nil {
		t.Fatal(err)
	}
	if done {
		t.Error("ResetComplete() = true while the reset bit is still set")
	}
	done, err = d.ResetComplete()
	if err != nil {
		t.Fatal(err)
	}
	if !done {
		t.Error("ResetComplete() = false after the reset bit cleared")
	}
	if err := pb.Close(); err != nil {
		t.Error(err)
	}
}

func TestPadConfigReadback(t *testing.T) {
	d, pb := newDev(t, []i2ctest.IO{
		{Addr: testAddr, W: []byte{0x23, 0x21}},
		{Addr: testAddr, W: []byte{0x23}, R: []byte{0x21}},
		{Addr: testAddr, W: []byte{0x24, 0x90}},
		{Addr: testAddr, W: []byte{0x24}, R: []byte{0x90}},
	})
	cfg1 := Int1PadConfig{WakeUp: true, DataReady: true}
	if err := d.SetInt1PadConfig(cfg1); err != nil {
		t.Fatal(err)
	}
	got1, err := d.Int1PadConfig()
	if err != nil {
		t.Fatal(err)
	}
	if got1 != cfg1 {
		t.Errorf("Int1PadConfig() = %+v, want %+v", got1, cfg1)
	}
	cfg2 := Int2PadConfig{SleepState: true, TemperatureDataReady: true}
	if err := d.SetInt2PadConfig(cfg2); err != nil {
		t.Fatal(err)
	}
	got2, err := d.Int2PadConfig()
	if err != nil {
		t.Fatal(err)
	}
	if got2 != cfg2 {
		t.Errorf("Int2PadConfig() = %+v, want %+v", got2, cfg2)
	}
	if err := pb.Close(); err != nil {
		t.Error(err)
	}
}

func TestWhoAmI(t *testing.T) {
	d, pb := newDev(t, []i2ctest.IO{
		{Addr: testAddr, W: []byte{0x0F}, R: []byte{0x44}},
	})
	v, err := d.WhoAmI()
	if err != nil {
		t.Fatal(err)
	}
	if v != 0x44 {
		t.Errorf("WhoAmI() = %#x, want 0x44", v)
	}
	if err := pb.Close(); err != nil {
		t.Error(err)
	}
}

func TestString(t *testing.T) {
	d, _ := newDev(t, nil)
	if len(d.String()) == 0 {
		t.Error("invalid String() result")
	}
}

// TestLiveDevice exercises a real device on the first available I2C bus.
// Set LIS2DTW12 in the environment to enable it; the bus traffic is logged
// in playback format.
func TestLiveDevice(t *testing.T) {
	if os.Getenv("LIS2DTW12") == "" {
		t.Skip("set LIS2DTW12 in the environment to test against a live device")
	}
	if _, err := host.Init(); err != nil {
		t.Fatal(err)
	}
	bus, err := i2creg.Open("")
	if err != nil {
		t.Fatal(err)
	}
	defer bus.Close()
	rec := &i2ctest.Record{Bus: bus}
	defer func() { t.Logf("%#v", rec.Ops) }()

	d, err := NewI2C(rec, DefaultAddress, nil)
	if err != nil {
		t.Fatal(err)
	}
	if err := d.SetMode(ModeHighPerformance); err != nil {
		t.Fatal(err)
	}
	if err := d.SetOutputDataRate(ODR50Hz); err != nil {
		t.Fatal(err)
	}
	time.Sleep(100 * time.Millisecond)
	a, err := d.Acceleration()
	if err != nil {
		t.Fatal(err)
	}
	t.Logf("X: %.1f mg, Y: %.1f mg, Z: %.1f mg", a.X, a.Y, a.Z)
	temp, err := d.Temperature()
	if err != nil {
		t.Fatal(err)
	}
	t.Logf("temperature: %s", temp)
}

func TestSenseContinuous(t *testing.T) {
	d, _ := newDev(t, []i2ctest.IO{
		{Addr: testAddr, W: []byte{0x8D}, R: []byte{0x00, 0x01}},
		{Addr: testAddr, W: []byte{0x8D}, R: []byte{0x00, 0x02}},
	})
	ch, err := d.SenseContinuous(time.Millisecond)
	if err != nil {
		t.Fatal(err)
	}
	if _, err := d.SenseContinuous(time.Millisecond); err == nil {
		t.Error("expected second SenseContinuous to fail")
	}
	e := <-ch
	if e.Temperature != physic.ZeroCelsius+26*physic.Kelvin {
		t.Errorf("first reading = %s, want 26°C", e.Temperature)
	}
	if err := d.Halt(); err != nil {
		t.Fatal(err)
	}
	// Halt is idempotent.
	if err := d.Halt(); err != nil {
		t.Fatal(err)
	}
}
