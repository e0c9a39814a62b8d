// Copyright 2025 The Periph Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

package lis2dtw12

// Mode is the operating mode of the accelerometer, the MODE field of CTRL1.
//
// The effective sample resolution is 12 bit when the mode is ModeLowPower or
// ModeSingleDataConversion combined with LowPowerMode1, and 14 bit otherwise.
type Mode byte

const (
	// ModeLowPower is the power-on default. 12 or 14 bit resolution
	// depending on the configured LowPowerMode.
	ModeLowPower Mode = 0b00
	// ModeHighPerformance always samples at 14 bit resolution.
	ModeHighPerformance Mode = 0b01
	// ModeSingleDataConversion performs one conversion on demand. 12 or 14
	// bit resolution depending on the configured LowPowerMode.
	ModeSingleDataConversion Mode = 0b10
)

// OutputDataRate is the ODR field of CTRL1. The rates differ between
// high-performance and low-power modes; values list them as HP/LP.
type OutputDataRate byte

const (
	// ODRPowerDown stops sampling. Power-on default.
	ODRPowerDown OutputDataRate = 0b0000
	// ODR1Hz6 is 12.5 Hz / 1.6 Hz.
	ODR1Hz6 OutputDataRate = 0b0001
	// ODR12Hz5 is 12.5 Hz / 12.5 Hz.
	ODR12Hz5 OutputDataRate = 0b0010
	// ODR25Hz is 25 Hz on both.
	ODR25Hz OutputDataRate = 0b0011
	// ODR50Hz is 50 Hz on both.
	ODR50Hz OutputDataRate = 0b0100
	// ODR100Hz is 100 Hz on both.
	ODR100Hz OutputDataRate = 0b0101
	// ODR200Hz is 200 Hz on both.
	ODR200Hz OutputDataRate = 0b0110
	// ODR400Hz is 400 Hz / 200 Hz.
	ODR400Hz OutputDataRate = 0b0111
	// ODR800Hz is 800 Hz / 200 Hz.
	ODR800Hz OutputDataRate = 0b1000
	// ODR1600Hz is 1600 Hz / 200 Hz.
	ODR1600Hz OutputDataRate = 0b1001
)

// LowPowerMode is the LP_MODE field of CTRL1. It selects the resolution
// sub-mode used by ModeLowPower and ModeSingleDataConversion.
type LowPowerMode byte

const (
	// LowPowerMode1 is 12 bit resolution. Power-on default.
	LowPowerMode1 LowPowerMode = 0b00
	// LowPowerMode2 is 14 bit resolution.
	LowPowerMode2 LowPowerMode = 0b01
	// LowPowerMode3 is 14 bit resolution.
	LowPowerMode3 LowPowerMode = 0b10
	// LowPowerMode4 is 14 bit resolution.
	LowPowerMode4 LowPowerMode = 0b11
)

// BandwidthSelection is the BW_FILT field of CTRL6, the digital filter
// cutoff as a fraction of the output data rate.
type BandwidthSelection byte

const (
	// BandwidthODRDiv2 is ODR/2, limited to 400 Hz at ODR 1600 Hz.
	// Power-on default.
	BandwidthODRDiv2 BandwidthSelection = 0b00
	// BandwidthODRDiv4 is ODR/4.
	BandwidthODRDiv4 BandwidthSelection = 0b01
	// BandwidthODRDiv10 is ODR/10.
	BandwidthODRDiv10 BandwidthSelection = 0b10
	// BandwidthODRDiv20 is ODR/20.
	BandwidthODRDiv20 BandwidthSelection = 0b11
)

// FullScale is the FS field of CTRL6, the measurement range.
type FullScale byte

const (
	// FullScale2G is ±2 g. Power-on default.
	FullScale2G FullScale = 0b00
	// FullScale4G is ±4 g.
	FullScale4G FullScale = 0b01
	// FullScale8G is ±8 g.
	FullScale8G FullScale = 0b10
	// FullScale16G is ±16 g.
	FullScale16G FullScale = 0b11
)

// factor returns the milli-g per count scale factor for the range.
func (fs FullScale) factor() float64 {
	switch fs {
	case FullScale4G:
		return 0.488
	case FullScale8G:
		return 0.976
	case FullScale16G:
		return 1.952
	default:
		return 0.244
	}
}

// FifoMode is the FMode field of FIFO_CTRL.
type FifoMode byte

const (
	// FifoBypass disables the FIFO. Power-on default.
	FifoBypass FifoMode = 0b000
	// FifoStopOnFull collects until the FIFO is full, then stops.
	FifoStopOnFull FifoMode = 0b001
	// FifoContinuousToFifo streams until the trigger deasserts, then
	// behaves like FifoStopOnFull.
	FifoContinuousToFifo FifoMode = 0b011
	// FifoBypassToContinuous bypasses until the trigger deasserts, then
	// streams continuously.
	FifoBypassToContinuous FifoMode = 0b100
	// FifoContinuous overwrites the oldest sample when full.
	FifoContinuous FifoMode = 0b110
)

// Threshold6D is the 6D_THS field of TAP_THS_X, the angle threshold for
// position change detection at ±2 g.
type Threshold6D byte

const (
	// Threshold6D80Deg is 80°. Power-on default.
	Threshold6D80Deg Threshold6D = 0b00
	// Threshold6D70Deg is 70°.
	Threshold6D70Deg Threshold6D = 0b01
	// Threshold6D60Deg is 60°.
	Threshold6D60Deg Threshold6D = 0b10
	// Threshold6D50Deg is 50°.
	Threshold6D50Deg Threshold6D = 0b11
)

// TapPriority is the TAP_PRIOR field of TAP_THS_Y, the axis priority order
// (max, mid, min) for tap detection.
type TapPriority byte

const (
	// TapPriorityXYZ is the power-on default.
	TapPriorityXYZ TapPriority = 0b000
	// TapPriorityYXZ orders Y, X, Z.
	TapPriorityYXZ TapPriority = 0b001
	// TapPriorityXZY orders X, Z, Y.
	TapPriorityXZY TapPriority = 0b010
	// TapPriorityZYX orders Z, Y, X.
	TapPriorityZYX TapPriority = 0b011
	// TapPriorityXYZAlt behaves like TapPriorityXYZ.
	TapPriorityXYZAlt TapPriority = 0b100
	// TapPriorityYZX orders Y, Z, X.
	TapPriorityYZX TapPriority = 0b101
	// TapPriorityZXY orders Z, X, Y.
	TapPriorityZXY TapPriority = 0b110
	// TapPriorityZYXAlt behaves like TapPriorityZYX.
	TapPriorityZYXAlt TapPriority = 0b111
)

// FreeFallThreshold is the FF_THS field of FREE_FALL, the free-fall
// detection threshold at ±2 g. Values are the datasheet decoding steps.
type FreeFallThreshold byte

const (
	// FreeFallThreshold5 is the power-on default.
	FreeFallThreshold5  FreeFallThreshold = 0b000
	FreeFallThreshold7  FreeFallThreshold = 0b001
	FreeFallThreshold8  FreeFallThreshold = 0b010
	FreeFallThreshold10 FreeFallThreshold = 0b011
	FreeFallThreshold11 FreeFallThreshold = 0b100
	FreeFallThreshold13 FreeFallThreshold = 0b101
	FreeFallThreshold15 FreeFallThreshold = 0b110
	FreeFallThreshold16 FreeFallThreshold = 0b111
)

// convertMilliG scales a raw two's-complement sample to milli-g.
//
// The ADC output is left justified: 12 significant bits in low-power mode 1,
// 14 in every other mode, so the raw value is arithmetically shifted right
// before applying the range's scale factor.
func convertMilliG(raw int16, mode Mode, lp LowPowerMode, fs FullScale) float64 {
	shift := uint(2)
	if (mode == ModeLowPower || mode == ModeSingleDataConversion) && lp == LowPowerMode1 {
		shift = 4
	}
	return float64(raw>>shift) * fs.factor()
}
