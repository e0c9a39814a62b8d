// Copyright 2025 The Periph Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

package lis2dtw12

// Status is the decoded STATUS register.
type Status struct {
	// FifoThreshold is set when the FIFO filling reached the threshold
	// level.
	FifoThreshold bool
	// WakeUp is set when a wake-up event was detected.
	WakeUp bool
	// Sleep is set when a sleep event was detected.
	Sleep bool
	// DoubleTap is set when a double-tap event was detected.
	DoubleTap bool
	// SingleTap is set when a single-tap event was detected.
	SingleTap bool
	// PositionChange is set when a portrait/landscape/face-up/face-down
	// transition was detected.
	PositionChange bool
	// FreeFall is set when a free-fall event was detected.
	FreeFall bool
	// DataReady is set when a new X/Y/Z sample set is available.
	DataReady bool
}

func decodeStatus(v byte) Status {
	return Status{
		FifoThreshold:  v&statusFifoThreshold != 0,
		WakeUp:         v&statusWakeUp != 0,
		Sleep:          v&statusSleepState != 0,
		DoubleTap:      v&statusDoubleTap != 0,
		SingleTap:      v&statusSingleTap != 0,
		PositionChange: v&statusSixD != 0,
		FreeFall:       v&statusFreeFall != 0,
		DataReady:      v&statusDataReady != 0,
	}
}

// EventStatus is the decoded STATUS_DUP register. It mirrors Status but
// reports FIFO overrun and temperature data ready instead of the FIFO
// threshold and wake-up flags.
type EventStatus struct {
	// FifoOverrun is set when the FIFO has overrun.
	FifoOverrun bool
	// TemperatureDataReady is set when a new temperature sample is
	// available.
	TemperatureDataReady bool
	Sleep                bool
	DoubleTap            bool
	SingleTap            bool
	PositionChange       bool
	FreeFall             bool
	DataReady            bool
}

func decodeEventStatus(v byte) EventStatus {
	return EventStatus{
		FifoOverrun:          v&eventFifoOverrun != 0,
		TemperatureDataReady: v&eventDataReadyT != 0,
		Sleep:                v&eventSleepState != 0,
		DoubleTap:            v&eventDoubleTap != 0,
		SingleTap:            v&eventSingleTap != 0,
		PositionChange:       v&eventSixD != 0,
		FreeFall:             v&eventFreeFall != 0,
		DataReady:            v&eventDataReady != 0,
	}
}

// FifoSamplesStatus is the decoded FIFO_SAMPLES register.
type FifoSamplesStatus struct {
	// Threshold is set when the FIFO filling reached the threshold level.
	Threshold bool
	// Overrun is set when the FIFO has overrun.
	Overrun bool
	// Samples is the number of unread samples in the FIFO.
	Samples uint8
}

func decodeFifoSamplesStatus(v byte) FifoSamplesStatus {
	return FifoSamplesStatus{
		Threshold: v&fifoSamplesThreshold != 0,
		Overrun:   v&fifoSamplesOverrun != 0,
		Samples:   v & fifoSamplesDiffMask,
	}
}

// WakeUpSource is the decoded WAKE_UP_SRC register.
type WakeUpSource struct {
	FreeFall bool
	Sleep    bool
	WakeUp   bool
	// WakeUpX/Y/Z report the axis that triggered the wake-up event.
	WakeUpX bool
	WakeUpY bool
	WakeUpZ bool
}

func decodeWakeUpSource(v byte) WakeUpSource {
	return WakeUpSource{
		FreeFall: v&wakeSrcFreeFall != 0,
		Sleep:    v&wakeSrcSleepState != 0,
		WakeUp:   v&wakeSrcWakeUp != 0,
		WakeUpX:  v&wakeSrcX != 0,
		WakeUpY:  v&wakeSrcY != 0,
		WakeUpZ:  v&wakeSrcZ != 0,
	}
}

// Sign is the direction of a tap event.
type Sign int

const (
	// Positive acceleration on the tap axis.
	Positive Sign = iota
	// Negative acceleration on the tap axis.
	Negative
)

func (s Sign) String() string {
	if s == Negative {
		return "negative"
	}
	return "positive"
}

// TapSource is the decoded TAP_SRC register.
type TapSource struct {
	Tap       bool
	SingleTap bool
	DoubleTap bool
	// TapSign is the acceleration direction of the tap. Positive when the
	// sign bit is clear.
	TapSign Sign
	TapX    bool
	TapY    bool
	TapZ    bool
}

func decodeTapSource(v byte) TapSource {
	sign := Positive
	if v&tapSrcSign != 0 {
		sign = Negative
	}
	return TapSource{
		Tap:       v&tapSrcEvent != 0,
		SingleTap: v&tapSrcSingleTap != 0,
		DoubleTap: v&tapSrcDoubleTap != 0,
		TapSign:   sign,
		TapX:      v&tapSrcX != 0,
		TapY:      v&tapSrcY != 0,
		TapZ:      v&tapSrcZ != 0,
	}
}

// SixDSource is the decoded SIXD_SRC register. The High/Low flags report
// which half of each axis is over the 6D threshold.
type SixDSource struct {
	PositionChange bool
	ZHigh          bool
	ZLow           bool
	YHigh          bool
	YLow           bool
	XHigh          bool
	XLow           bool
}

func decodeSixDSource(v byte) SixDSource {
	return SixDSource{
		PositionChange: v&sixDSrcEvent != 0,
		ZHigh:          v&sixDSrcZH != 0,
		ZLow:           v&sixDSrcZL != 0,
		YHigh:          v&sixDSrcYH != 0,
		YLow:           v&sixDSrcYL != 0,
		XHigh:          v&sixDSrcXH != 0,
		XLow:           v&sixDSrcXL != 0,
	}
}

// AllInterruptSources is the decoded ALL_INT_SRC register.
//
// Reading that register clears all latched interrupt flags on the device.
type AllInterruptSources struct {
	SleepChange bool
	SixD        bool
	DoubleTap   bool
	SingleTap   bool
	WakeUp      bool
	FreeFall    bool
}

func decodeAllInterruptSources(v byte) AllInterruptSources {
	return AllInterruptSources{
		SleepChange: v&allIntSleepChange != 0,
		SixD:        v&allIntSixD != 0,
		DoubleTap:   v&allIntDoubleTap != 0,
		SingleTap:   v&allIntSingleTap != 0,
		WakeUp:      v&allIntWakeUp != 0,
		FreeFall:    v&allIntFreeFall != 0,
	}
}

// AllSources is the decoded view of the five event source registers
// STATUS_DUP through ALL_INT_SRC, read in one burst.
type AllSources struct {
	EventStatus         EventStatus
	WakeUpSource        WakeUpSource
	TapSource           TapSource
	SixDSource          SixDSource
	AllInterruptSources AllInterruptSources
}

func decodeAllSources(v [5]byte) AllSources {
	return AllSources{
		EventStatus:         decodeEventStatus(v[0]),
		WakeUpSource:        decodeWakeUpSource(v[1]),
		TapSource:           decodeTapSource(v[2]),
		SixDSource:          decodeSixDSource(v[3]),
		AllInterruptSources: decodeAllInterruptSources(v[4]),
	}
}

// Int1PadConfig selects which events are routed to the INT1 pad,
// register CTRL4_INT1_PAD_CTRL.
type Int1PadConfig struct {
	SixD          bool
	SingleTap     bool
	WakeUp        bool
	FreeFall      bool
	DoubleTap     bool
	FifoFull      bool
	FifoThreshold bool
	DataReady     bool
}

func decodeInt1PadConfig(v byte) Int1PadConfig {
	return Int1PadConfig{
		SixD:          v&int1SixD != 0,
		SingleTap:     v&int1SingleTap != 0,
		WakeUp:        v&int1WakeUp != 0,
		FreeFall:      v&int1FreeFall != 0,
		DoubleTap:     v&int1DoubleTap != 0,
		FifoFull:      v&int1FifoFull != 0,
		FifoThreshold: v&int1FifoThreshold != 0,
		DataReady:     v&int1DataReady != 0,
	}
}

func (c Int1PadConfig) bits() byte {
	var v byte
	if c.SixD {
		v |= int1SixD
	}
	if c.SingleTap {
		v |= int1SingleTap
	}
	if c.WakeUp {
		v |= int1WakeUp
	}
	if c.FreeFall {
		v |= int1FreeFall
	}
	if c.DoubleTap {
		v |= int1DoubleTap
	}
	if c.FifoFull {
		v |= int1FifoFull
	}
	if c.FifoThreshold {
		v |= int1FifoThreshold
	}
	if c.DataReady {
		v |= int1DataReady
	}
	return v
}

// Int2PadConfig selects which events are routed to the INT2 pad,
// register CTRL5_INT2_PAD_CTRL.
type Int2PadConfig struct {
	SleepState           bool
	SleepChange          bool
	Boot                 bool
	TemperatureDataReady bool
	FifoOverrun          bool
	FifoFull             bool
	FifoThreshold        bool
	DataReady            bool
}

func decodeInt2PadConfig(v byte) Int2PadConfig {
	return Int2PadConfig{
		SleepState:           v&int2SleepState != 0,
		SleepChange:          v&int2SleepChange != 0,
		Boot:                 v&int2Boot != 0,
		TemperatureDataReady: v&int2DataReadyT != 0,
		FifoOverrun:          v&int2FifoOverrun != 0,
		FifoFull:             v&int2FifoFull != 0,
		FifoThreshold:        v&int2FifoThreshold != 0,
		DataReady:            v&int2DataReady != 0,
	}
}

func (c Int2PadConfig) bits() byte {
	var v byte
	if c.SleepState {
		v |= int2SleepState
	}
	if c.SleepChange {
		v |= int2SleepChange
	}
	if c.Boot {
		v |= int2Boot
	}
	if c.TemperatureDataReady {
		v |= int2DataReadyT
	}
	if c.FifoOverrun {
		v |= int2FifoOverrun
	}
	if c.FifoFull {
		v |= int2FifoFull
	}
	if c.FifoThreshold {
		v |= int2FifoThreshold
	}
	if c.DataReady {
		v |= int2DataReady
	}
	return v
}
