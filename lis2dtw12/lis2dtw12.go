// Copyright 2025 The Periph Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

package lis2dtw12

import (
	"errors"
	"fmt"
	"sync"
	"time"

	"periph.io/x/conn/v3"
	"periph.io/x/conn/v3/gpio"
	"periph.io/x/conn/v3/i2c"
	"periph.io/x/conn/v3/physic"
	"periph.io/x/conn/v3/spi"
)

// AccelerationData is one acceleration sample in milli-g.
type AccelerationData struct {
	X float64
	Y float64
	Z float64
}

// RawAccelerationData is one acceleration sample in raw counts. The counts
// are left justified; see Dev.Acceleration for the scaled form.
type RawAccelerationData struct {
	X int16
	Y int16
	Z int16
}

// Opts holds the configuration options for the device.
type Opts struct {
	// SkipWhoAmICheck disables the WHO_AM_I probe during construction.
	SkipWhoAmICheck bool
	// Debug is an optional debug print hook for bus traffic.
	Debug DebugF
}

// DefaultOpts probes WHO_AM_I and does not print debug output.
var DefaultOpts = Opts{}

// Dev is a driver for the LIS2DTW12 3-axis accelerometer with integrated
// temperature sensor.
//
// The Dev caches the mode, low-power mode and full-scale settings because the
// raw-to-milli-g conversion depends on them. The cache starts at the device's
// power-on defaults and is only updated by the corresponding setter after a
// successful register write; it is not read back from the device, so a device
// configured by a previous session should be reset or reconfigured through
// this driver before samples are converted.
type Dev struct {
	t *Transport

	mu        sync.Mutex
	mode      Mode
	lpMode    LowPowerMode
	fullScale FullScale
	stop      chan struct{}
}

// New returns a Dev on the given transport. Unless disabled in opts, the
// WHO_AM_I register is probed to verify the device identity.
func New(t *Transport, opts *Opts) (*Dev, error) {
	if opts == nil {
		opts = &DefaultOpts
	}
	if opts.Debug != nil {
		t.EnableDebug(opts.Debug)
	}
	d := &Dev{
		t:         t,
		mode:      ModeLowPower,
		lpMode:    LowPowerMode1,
		fullScale: FullScale2G,
	}
	if !opts.SkipWhoAmICheck {
		v, err := d.readReg(regWhoAmI)
		if err != nil {
			return nil, err
		}
		if v != whoAmIValue {
			return nil, fmt.Errorf("lis2dtw12: unexpected WHO_AM_I %#x, want %#x", v, whoAmIValue)
		}
	}
	return d, nil
}

// NewI2C returns a Dev on the given I2C bus. addr must be DefaultAddress or
// AlternateAddress, matching the SA0 strap pin.
func NewI2C(b i2c.Bus, addr uint16, opts *Opts) (*Dev, error) {
	t, err := NewI2CTransport(b, addr)
	if err != nil {
		return nil, err
	}
	return New(t, opts)
}

// NewSPI returns a Dev on the given SPI port, using the port's chip select.
func NewSPI(p spi.Port, opts *Opts) (*Dev, error) {
	t, err := NewSPITransport(p)
	if err != nil {
		return nil, err
	}
	return New(t, opts)
}

// NewSPIBus returns a Dev on a shared SPI bus with an explicitly driven chip
// select pin.
func NewSPIBus(p spi.Port, cs gpio.PinOut, opts *Opts) (*Dev, error) {
	t, err := NewSPIBusTransport(p, cs)
	if err != nil {
		return nil, err
	}
	return New(t, opts)
}

func (d *Dev) String() string {
	return fmt.Sprintf("lis2dtw12: %s", d.t)
}

// register access helpers

func (d *Dev) readReg(reg byte) (byte, error) {
	var buf [1]byte
	if err := d.t.readRegs(reg, buf[:]); err != nil {
		return 0, err
	}
	return buf[0], nil
}

// modifyReg read-modify-writes the masked field of a register, leaving bits
// outside mask untouched. Not atomic with respect to external bus traffic.
func (d *Dev) modifyReg(reg, mask, bits byte) error {
	v, err := d.readReg(reg)
	if err != nil {
		return err
	}
	return d.t.writeReg(reg, (v&^mask)|(bits&mask))
}

func (d *Dev) setFlag(reg, mask byte, enable bool) error {
	if enable {
		return d.modifyReg(reg, mask, mask)
	}
	return d.modifyReg(reg, mask, 0)
}

func clamp(v, max uint8) uint8 {
	if v > max {
		return max
	}
	return v
}

// WhoAmI reads the identity register. It is fixed at 0x44.
func (d *Dev) WhoAmI() (byte, error) {
	return d.readReg(regWhoAmI)
}

// SetMode sets the operating mode. The cached conversion state is updated
// only after the write succeeded.
func (d *Dev) SetMode(m Mode) error {
	d.mu.Lock()
	defer d.mu.Unlock()
	if err := d.modifyReg(regCtrl1, ctrl1ModeMask, byte(m)<<ctrl1ModeShift); err != nil {
		return err
	}
	d.mode = m
	return nil
}

// SetOutputDataRate sets the sample rate.
func (d *Dev) SetOutputDataRate(odr OutputDataRate) error {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.modifyReg(regCtrl1, ctrl1OdrMask, byte(odr)<<ctrl1OdrShift)
}

// SetLowPowerMode sets the resolution sub-mode used by ModeLowPower and
// ModeSingleDataConversion.
func (d *Dev) SetLowPowerMode(lp LowPowerMode) error {
	d.mu.Lock()
	defer d.mu.Unlock()
	if err := d.modifyReg(regCtrl1, ctrl1LpModeMask, byte(lp)); err != nil {
		return err
	}
	d.lpMode = lp
	return nil
}

// SetFullScale sets the measurement range.
func (d *Dev) SetFullScale(fs FullScale) error {
	d.mu.Lock()
	defer d.mu.Unlock()
	if err := d.modifyReg(regCtrl6, ctrl6FsMask, byte(fs)<<ctrl6FsShift); err != nil {
		return err
	}
	d.fullScale = fs
	return nil
}

// SetBandwidth sets the digital filter cutoff.
func (d *Dev) SetBandwidth(bw BandwidthSelection) error {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.modifyReg(regCtrl6, ctrl6BwMask, byte(bw)<<ctrl6BwShift)
}

// EnableLowNoise enables the low-noise configuration.
func (d *Dev) EnableLowNoise(enable bool) error {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.setFlag(regCtrl6, ctrl6LowNoise, enable)
}

// EnableFilteredData selects the high-pass filter path for the data output
// when enabled, the low-pass path otherwise.
func (d *Dev) EnableFilteredData(enable bool) error {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.setFlag(regCtrl6, ctrl6Fds, enable)
}

// EnableBlockDataUpdate prevents the output registers from updating between
// the low and high byte reads of a sample.
func (d *Dev) EnableBlockDataUpdate(enable bool) error {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.setFlag(regCtrl2, ctrl2Bdu, enable)
}

// SetFifoMode sets the FIFO operating mode.
func (d *Dev) SetFifoMode(m FifoMode) error {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.modifyReg(regFifoCtrl, fifoModeMask, byte(m)<<fifoModeShift)
}

// SetFifoThreshold sets the FIFO threshold level. Values above 31 are
// clamped.
func (d *Dev) SetFifoThreshold(samples uint8) error {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.modifyReg(regFifoCtrl, fifoThresholdMask, clamp(samples, 31))
}

// FifoSamples reads the FIFO fill status.
func (d *Dev) FifoSamples() (FifoSamplesStatus, error) {
	v, err := d.readReg(regFifoSamples)
	if err != nil {
		return FifoSamplesStatus{}, err
	}
	return decodeFifoSamplesStatus(v), nil
}

// SetTapThresholdX sets the X-axis tap threshold. Values above 31 are
// clamped.
func (d *Dev) SetTapThresholdX(ths uint8) error {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.modifyReg(regTapThsX, tapThsMask, clamp(ths, 31))
}

// SetTapThresholdY sets the Y-axis tap threshold. Values above 31 are
// clamped.
func (d *Dev) SetTapThresholdY(ths uint8) error {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.modifyReg(regTapThsY, tapThsMask, clamp(ths, 31))
}

// SetTapThresholdZ sets the Z-axis tap threshold. Values above 31 are
// clamped.
func (d *Dev) SetTapThresholdZ(ths uint8) error {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.modifyReg(regTapThsZ, tapThsMask, clamp(ths, 31))
}

// EnableTapAxes selects the axes participating in tap detection.
func (d *Dev) EnableTapAxes(x, y, z bool) error {
	d.mu.Lock()
	defer d.mu.Unlock()
	var bits byte
	if x {
		bits |= tapEnableX
	}
	if y {
		bits |= tapEnableY
	}
	if z {
		bits |= tapEnableZ
	}
	return d.modifyReg(regTapThsZ, tapEnableX|tapEnableY|tapEnableZ, bits)
}

// SetTapPriority sets the axis priority order for tap detection.
func (d *Dev) SetTapPriority(p TapPriority) error {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.modifyReg(regTapThsY, tapPriorityMask, byte(p)<<tapPriorityShift)
}

// SetThreshold6D sets the angle threshold for position change detection.
func (d *Dev) SetThreshold6D(t Threshold6D) error {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.modifyReg(regTapThsX, tapThsXSixDMask, byte(t)<<tapThsXSixDShift)
}

// Enable4DDetection restricts position change detection to the four
// portrait/landscape orientations.
func (d *Dev) Enable4DDetection(enable bool) error {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.setFlag(regTapThsX, tapThsXFourD, enable)
}

// SetTapLatency sets the maximum time between taps of a double tap, in
// units of 32/ODR. Values above 15 are clamped.
func (d *Dev) SetTapLatency(latency uint8) error {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.modifyReg(regIntDur, intDurLatencyMask, clamp(latency, 15)<<intDurLatencyShift)
}

// SetTapQuiet sets the quiet window after a tap, in units of 4/ODR. Values
// above 3 are clamped.
func (d *Dev) SetTapQuiet(quiet uint8) error {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.modifyReg(regIntDur, intDurQuietMask, clamp(quiet, 3)<<intDurQuietShift)
}

// SetTapShock sets the maximum over-threshold duration of a tap, in units
// of 8/ODR. Values above 3 are clamped.
func (d *Dev) SetTapShock(shock uint8) error {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.modifyReg(regIntDur, intDurShockMask, clamp(shock, 3))
}

// EnableSingleDoubleTap enables double-tap recognition in addition to
// single taps.
func (d *Dev) EnableSingleDoubleTap(enable bool) error {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.setFlag(regWakeUpThs, wakeUpThsSingleDouble, enable)
}

// SetWakeUpThreshold sets the wake-up threshold in units of FS/64. Values
// above 63 are clamped.
func (d *Dev) SetWakeUpThreshold(ths uint8) error {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.modifyReg(regWakeUpThs, wakeUpThsThresholdMask, clamp(ths, 63))
}

// SetWakeUpDuration sets the minimum wake-up event duration in ODR cycles.
// Values above 3 are clamped.
func (d *Dev) SetWakeUpDuration(dur uint8) error {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.modifyReg(regWakeUpDur, wakeUpDurMask, clamp(dur, 3)<<wakeUpDurShift)
}

// EnableSleep enables sleep state detection.
func (d *Dev) EnableSleep(enable bool) error {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.setFlag(regWakeUpThs, wakeUpThsSleepOn, enable)
}

// SetSleepDuration sets the inactivity time before entering sleep, in units
// of 512/ODR. Values above 15 are clamped.
func (d *Dev) SetSleepDuration(dur uint8) error {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.modifyReg(regWakeUpDur, wakeUpDurSleepMask, clamp(dur, 15))
}

// EnableStationaryDetection enables motion detection without changing the
// output data rate on a sleep event.
func (d *Dev) EnableStationaryDetection(enable bool) error {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.setFlag(regWakeUpDur, wakeUpDurStationary, enable)
}

// SetFreeFallThreshold sets the free-fall detection threshold.
func (d *Dev) SetFreeFallThreshold(ths FreeFallThreshold) error {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.modifyReg(regFreeFall, freeFallThsMask, byte(ths))
}

// SetFreeFallDuration sets the minimum free-fall duration in ODR cycles.
// The 6 bit value is split between WAKE_UP_DUR and FREE_FALL. Values above
// 63 are clamped.
func (d *Dev) SetFreeFallDuration(dur uint8) error {
	d.mu.Lock()
	defer d.mu.Unlock()
	dur = clamp(dur, 63)
	var msb byte
	if dur&0x20 != 0 {
		msb = wakeUpDurFreeFall5
	}
	if err := d.modifyReg(regWakeUpDur, wakeUpDurFreeFall5, msb); err != nil {
		return err
	}
	return d.modifyReg(regFreeFall, freeFallDurMask, (dur&0x1F)<<freeFallDurShift)
}

// SetOffsets sets the user offsets applied to the output when enabled with
// EnableOffsetsOnOutput. The weight is selected with EnableCoarseOffsetWeight.
func (d *Dev) SetOffsets(x, y, z int8) error {
	d.mu.Lock()
	defer d.mu.Unlock()
	if err := d.t.writeReg(regXOfsUsr, byte(x)); err != nil {
		return err
	}
	if err := d.t.writeReg(regYOfsUsr, byte(y)); err != nil {
		return err
	}
	return d.t.writeReg(regZOfsUsr, byte(z))
}

// EnableOffsetsOnOutput applies the user offsets to the output registers.
func (d *Dev) EnableOffsetsOnOutput(enable bool) error {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.setFlag(regCtrl7, ctrl7UsrOffOnOut, enable)
}

// EnableOffsetsOnWakeUp applies the user offsets to the wake-up function
// input.
func (d *Dev) EnableOffsetsOnWakeUp(enable bool) error {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.setFlag(regCtrl7, ctrl7UsrOffOnWu, enable)
}

// EnableCoarseOffsetWeight selects 977 µg per offset LSB instead of 15.6 µg.
func (d *Dev) EnableCoarseOffsetWeight(enable bool) error {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.setFlag(regCtrl7, ctrl7UsrOffWeight, enable)
}

// SetInt1PadConfig routes the selected events to the INT1 pad.
func (d *Dev) SetInt1PadConfig(c Int1PadConfig) error {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.t.writeReg(regCtrl4, c.bits())
}

// Int1PadConfig reads back the INT1 pad routing.
func (d *Dev) Int1PadConfig() (Int1PadConfig, error) {
	v, err := d.readReg(regCtrl4)
	if err != nil {
		return Int1PadConfig{}, err
	}
	return decodeInt1PadConfig(v), nil
}

// SetInt2PadConfig routes the selected events to the INT2 pad.
func (d *Dev) SetInt2PadConfig(c Int2PadConfig) error {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.t.writeReg(regCtrl5, c.bits())
}

// Int2PadConfig reads back the INT2 pad routing.
func (d *Dev) Int2PadConfig() (Int2PadConfig, error) {
	v, err := d.readReg(regCtrl5)
	if err != nil {
		return Int2PadConfig{}, err
	}
	return decodeInt2PadConfig(v), nil
}

// EnableLatchedInterrupts keeps interrupt signals asserted until their
// source register is read.
func (d *Dev) EnableLatchedInterrupts(enable bool) error {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.setFlag(regCtrl3, ctrl3Lir, enable)
}

// EnableInterrupts globally enables the event interrupts.
func (d *Dev) EnableInterrupts(enable bool) error {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.setFlag(regCtrl7, ctrl7InterruptsEnable, enable)
}

// EnableDataReadyPulsed switches the data-ready signal from latched to
// pulsed.
func (d *Dev) EnableDataReadyPulsed(enable bool) error {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.setFlag(regCtrl7, ctrl7DrdyPulsed, enable)
}

// RouteInt2OnInt1 signals all INT2 events on the INT1 pad.
func (d *Dev) RouteInt2OnInt1(enable bool) error {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.setFlag(regCtrl7, ctrl7Int2OnInt1, enable)
}

// Status reads the STATUS register.
func (d *Dev) Status() (Status, error) {
	v, err := d.readReg(regStatus)
	if err != nil {
		return Status{}, err
	}
	return decodeStatus(v), nil
}

// EventStatus reads the STATUS_DUP register.
func (d *Dev) EventStatus() (EventStatus, error) {
	v, err := d.readReg(regStatusDup)
	if err != nil {
		return EventStatus{}, err
	}
	return decodeEventStatus(v), nil
}

// WakeUpSource reads the WAKE_UP_SRC register.
func (d *Dev) WakeUpSource() (WakeUpSource, error) {
	v, err := d.readReg(regWakeUpSrc)
	if err != nil {
		return WakeUpSource{}, err
	}
	return decodeWakeUpSource(v), nil
}

// TapSource reads the TAP_SRC register.
func (d *Dev) TapSource() (TapSource, error) {
	v, err := d.readReg(regTapSrc)
	if err != nil {
		return TapSource{}, err
	}
	return decodeTapSource(v), nil
}

// SixDSource reads the SIXD_SRC register.
func (d *Dev) SixDSource() (SixDSource, error) {
	v, err := d.readReg(regSixDSrc)
	if err != nil {
		return SixDSource{}, err
	}
	return decodeSixDSource(v), nil
}

// AllInterruptSources reads the ALL_INT_SRC register.
//
// Reading it clears all latched interrupt flags on the device; the returned
// snapshot is the only record of them.
func (d *Dev) AllInterruptSources() (AllInterruptSources, error) {
	v, err := d.readReg(regAllIntSrc)
	if err != nil {
		return AllInterruptSources{}, err
	}
	return decodeAllInterruptSources(v), nil
}

// AllSources reads the five event source registers STATUS_DUP through
// ALL_INT_SRC in a single burst.
//
// The burst covers ALL_INT_SRC, so it clears all latched interrupt flags on
// the device; the returned snapshot is the only record of them.
func (d *Dev) AllSources() (AllSources, error) {
	var buf [5]byte
	if err := d.t.readRegs(regStatusDup, buf[:]); err != nil {
		return AllSources{}, err
	}
	return decodeAllSources(buf), nil
}

// RawAcceleration reads one raw X/Y/Z sample.
func (d *Dev) RawAcceleration() (RawAccelerationData, error) {
	var buf [6]byte
	if err := d.t.readRegs(regOutXL, buf[:]); err != nil {
		return RawAccelerationData{}, err
	}
	return RawAccelerationData{
		X: int16(uint16(buf[1])<<8 | uint16(buf[0])),
		Y: int16(uint16(buf[3])<<8 | uint16(buf[2])),
		Z: int16(uint16(buf[5])<<8 | uint16(buf[4])),
	}, nil
}

// Acceleration reads one X/Y/Z sample scaled to milli-g using the cached
// mode, low-power mode and full-scale settings.
func (d *Dev) Acceleration() (AccelerationData, error) {
	raw, err := d.RawAcceleration()
	if err != nil {
		return AccelerationData{}, err
	}
	d.mu.Lock()
	mode, lp, fs := d.mode, d.lpMode, d.fullScale
	d.mu.Unlock()
	return AccelerationData{
		X: convertMilliG(raw.X, mode, lp, fs),
		Y: convertMilliG(raw.Y, mode, lp, fs),
		Z: convertMilliG(raw.Z, mode, lp, fs),
	}, nil
}

// RawTemperature reads the raw temperature code. 0 corresponds to 25°C,
// one LSB to 1/256°C.
func (d *Dev) RawTemperature() (int16, error) {
	var buf [2]byte
	if err := d.t.readRegs(regOutTL, buf[:]); err != nil {
		return 0, err
	}
	return int16(uint16(buf[1])<<8 | uint16(buf[0])), nil
}

// Temperature reads the temperature sensor.
func (d *Dev) Temperature() (physic.Temperature, error) {
	raw, err := d.RawTemperature()
	if err != nil {
		return 0, err
	}
	return physic.ZeroCelsius + 25*physic.Kelvin +
		physic.Temperature(int64(raw)*int64(physic.Kelvin)/256), nil
}

// Reset triggers a soft reset and returns without waiting for it to finish.
// The cached conversion state is optimistically set back to the power-on
// defaults. Use ResetComplete to poll for completion, or ResetBlocking to
// wait.
func (d *Dev) Reset() error {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.reset()
}

func (d *Dev) reset() error {
	if err := d.modifyReg(regCtrl2, ctrl2SoftReset, ctrl2SoftReset); err != nil {
		return err
	}
	d.mode = ModeLowPower
	d.lpMode = LowPowerMode1
	d.fullScale = FullScale2G
	return nil
}

// ResetComplete reports whether a previously triggered soft reset has
// finished, by checking that the device cleared the reset bit.
func (d *Dev) ResetComplete() (bool, error) {
	v, err := d.readReg(regCtrl2)
	if err != nil {
		return false, err
	}
	return v&ctrl2SoftReset == 0, nil
}

// ResetBlocking triggers a soft reset and polls until the device reports
// completion. The poll loop has no timeout; callers needing one should use
// Reset and ResetComplete instead.
func (d *Dev) ResetBlocking() error {
	d.mu.Lock()
	defer d.mu.Unlock()
	if err := d.reset(); err != nil {
		return err
	}
	for {
		done, err := d.ResetComplete()
		if err != nil {
			return err
		}
		if done {
			return nil
		}
	}
}

// Boot reloads the trimming parameters from non-volatile memory. The reload
// takes about 20ms; the device must not be addressed while it runs.
func (d *Dev) Boot() error {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.modifyReg(regCtrl2, ctrl2Boot, ctrl2Boot)
}

// Sense reads the temperature sensor into env. Implements physic.SenseEnv.
// Pressure and humidity are left at zero, the device does not measure them.
func (d *Dev) Sense(env *physic.Env) error {
	t, err := d.Temperature()
	if err != nil {
		return err
	}
	env.Temperature = t
	return nil
}

// SenseContinuous reads the temperature at the given interval and delivers
// the readings on the returned channel until Halt is called. Implements
// physic.SenseEnv.
func (d *Dev) SenseContinuous(interval time.Duration) (<-chan physic.Env, error) {
	d.mu.Lock()
	defer d.mu.Unlock()
	if d.stop != nil {
		return nil, errors.New("lis2dtw12: already sensing continuously")
	}
	d.stop = make(chan struct{})
	sensing := make(chan physic.Env, 16)
	go func(stop <-chan struct{}) {
		defer close(sensing)
		ticker := time.NewTicker(interval)
		defer ticker.Stop()
		for {
			select {
			case <-stop:
				return
			case <-ticker.C:
				var e physic.Env
				if err := d.Sense(&e); err == nil {
					select {
					case sensing <- e:
					default:
					}
				}
			}
		}
	}(d.stop)
	return sensing, nil
}

// AccelerationContinuous reads acceleration samples at the given interval
// and delivers them on the returned channel until Halt is called.
func (d *Dev) AccelerationContinuous(interval time.Duration) (<-chan AccelerationData, error) {
	d.mu.Lock()
	defer d.mu.Unlock()
	if d.stop != nil {
		return nil, errors.New("lis2dtw12: already sensing continuously")
	}
	d.stop = make(chan struct{})
	sensing := make(chan AccelerationData, 16)
	go func(stop <-chan struct{}) {
		defer close(sensing)
		ticker := time.NewTicker(interval)
		defer ticker.Stop()
		for {
			select {
			case <-stop:
				return
			case <-ticker.C:
				if a, err := d.Acceleration(); err == nil {
					select {
					case sensing <- a:
					default:
					}
				}
			}
		}
	}(d.stop)
	return sensing, nil
}

// Precision implements physic.SenseEnv. The temperature resolution is
// 1/256°C.
func (d *Dev) Precision(env *physic.Env) {
	env.Temperature = physic.Temperature(int64(physic.Kelvin) / 256)
}

// Halt stops a continuous read started by SenseContinuous or
// AccelerationContinuous. Implements conn.Resource. The device itself keeps
// its configuration; use SetOutputDataRate(ODRPowerDown) to stop sampling.
func (d *Dev) Halt() error {
	d.mu.Lock()
	defer d.mu.Unlock()
	if d.stop != nil {
		close(d.stop)
		d.stop = nil
	}
	return nil
}

var _ conn.Resource = &Dev{}
var _ physic.SenseEnv = &Dev{}
