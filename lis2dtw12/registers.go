// Copyright 2025 The Periph Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

package lis2dtw12

// Register addresses. The device decodes a single address byte; all registers
// live in 0x0D..0x3F.
const (
	regOutTL       byte = 0x0D // OUT_T_L temperature output, low byte
	regOutTH       byte = 0x0E // OUT_T_H temperature output, high byte
	regWhoAmI      byte = 0x0F // WHO_AM_I
	regCtrl1       byte = 0x20 // CTRL1 ODR / mode / low-power mode
	regCtrl2       byte = 0x21 // CTRL2 boot / soft reset / BDU
	regCtrl3       byte = 0x22 // CTRL3 self test / interrupt behavior
	regCtrl4       byte = 0x23 // CTRL4_INT1_PAD_CTRL INT1 routing
	regCtrl5       byte = 0x24 // CTRL5_INT2_PAD_CTRL INT2 routing
	regCtrl6       byte = 0x25 // CTRL6 bandwidth / full scale / filter path
	regStatus      byte = 0x27 // STATUS
	regOutXL       byte = 0x28 // OUT_X_L
	regOutXH       byte = 0x29 // OUT_X_H
	regOutYL       byte = 0x2A // OUT_Y_L
	regOutYH       byte = 0x2B // OUT_Y_H
	regOutZL       byte = 0x2C // OUT_Z_L
	regOutZH       byte = 0x2D // OUT_Z_H
	regFifoCtrl    byte = 0x2E // FIFO_CTRL
	regFifoSamples byte = 0x2F // FIFO_SAMPLES
	regTapThsX     byte = 0x30 // TAP_THS_X 4D/6D config, X tap threshold
	regTapThsY     byte = 0x31 // TAP_THS_Y tap priority, Y tap threshold
	regTapThsZ     byte = 0x32 // TAP_THS_Z tap axis enables, Z tap threshold
	regIntDur      byte = 0x33 // INT_DUR tap latency / quiet / shock
	regWakeUpThs   byte = 0x34 // WAKE_UP_THS
	regWakeUpDur   byte = 0x35 // WAKE_UP_DUR
	regFreeFall    byte = 0x36 // FREE_FALL
	regStatusDup   byte = 0x37 // STATUS_DUP event status
	regWakeUpSrc   byte = 0x38 // WAKE_UP_SRC
	regTapSrc      byte = 0x39 // TAP_SRC
	regSixDSrc     byte = 0x3A // SIXD_SRC
	regAllIntSrc   byte = 0x3B // ALL_INT_SRC, read clears latched interrupts
	regXOfsUsr     byte = 0x3C // X_OFS_USR
	regYOfsUsr     byte = 0x3D // Y_OFS_USR
	regZOfsUsr     byte = 0x3E // Z_OFS_USR
	regCtrl7       byte = 0x3F // CTRL7
)

// whoAmIValue is the fixed WHO_AM_I register content.
const whoAmIValue byte = 0x44

// regAutoIncrement is ORed into the address byte for multi-byte reads to
// enable register address auto-increment.
const regAutoIncrement byte = 0x80

// CTRL1 fields.
const (
	ctrl1OdrMask    byte = 0xF0
	ctrl1ModeMask   byte = 0x0C
	ctrl1LpModeMask byte = 0x03
	ctrl1OdrShift        = 4
	ctrl1ModeShift       = 2
)

// CTRL2 fields.
const (
	ctrl2Boot       byte = 0x80
	ctrl2SoftReset  byte = 0x40
	ctrl2CsPuDisc   byte = 0x20
	ctrl2Bdu        byte = 0x08
	ctrl2IfAddInc   byte = 0x04
	ctrl2I2cDisable byte = 0x02
	ctrl2Sim        byte = 0x01
)

// CTRL3 fields.
const (
	ctrl3SelfTestMask byte = 0xC0
	ctrl3PpOd         byte = 0x20
	ctrl3Lir          byte = 0x10
	ctrl3HLactive     byte = 0x08
	ctrl3SlpModeSel   byte = 0x02
	ctrl3SlpMode1     byte = 0x01
)

// CTRL4_INT1_PAD_CTRL bits.
const (
	int1SixD          byte = 0x80
	int1SingleTap     byte = 0x40
	int1WakeUp        byte = 0x20
	int1FreeFall      byte = 0x10
	int1DoubleTap     byte = 0x08
	int1FifoFull      byte = 0x04
	int1FifoThreshold byte = 0x02
	int1DataReady     byte = 0x01
)

// CTRL5_INT2_PAD_CTRL bits.
const (
	int2SleepState    byte = 0x80
	int2SleepChange   byte = 0x40
	int2Boot          byte = 0x20
	int2DataReadyT    byte = 0x10
	int2FifoOverrun   byte = 0x08
	int2FifoFull      byte = 0x04
	int2FifoThreshold byte = 0x02
	int2DataReady     byte = 0x01
)

// CTRL6 fields.
const (
	ctrl6BwMask   byte = 0xC0
	ctrl6FsMask   byte = 0x30
	ctrl6Fds      byte = 0x08
	ctrl6LowNoise byte = 0x04
	ctrl6BwShift       = 6
	ctrl6FsShift       = 4
)

// CTRL7 bits.
const (
	ctrl7DrdyPulsed       byte = 0x80
	ctrl7Int2OnInt1       byte = 0x40
	ctrl7InterruptsEnable byte = 0x20
	ctrl7UsrOffOnOut      byte = 0x10
	ctrl7UsrOffOnWu       byte = 0x08
	ctrl7UsrOffWeight     byte = 0x04
	ctrl7HpRefMode        byte = 0x02
	ctrl7LowPassOn6D      byte = 0x01
)

// STATUS bits.
const (
	statusFifoThreshold byte = 0x80
	statusWakeUp        byte = 0x40
	statusSleepState    byte = 0x20
	statusDoubleTap     byte = 0x10
	statusSingleTap     byte = 0x08
	statusSixD          byte = 0x04
	statusFreeFall      byte = 0x02
	statusDataReady     byte = 0x01
)

// STATUS_DUP bits.
const (
	eventFifoOverrun byte = 0x80
	eventDataReadyT  byte = 0x40
	eventSleepState  byte = 0x20
	eventDoubleTap   byte = 0x10
	eventSingleTap   byte = 0x08
	eventSixD        byte = 0x04
	eventFreeFall    byte = 0x02
	eventDataReady   byte = 0x01
)

// FIFO_CTRL fields.
const (
	fifoModeMask      byte = 0xE0
	fifoThresholdMask byte = 0x1F
	fifoModeShift          = 5
)

// FIFO_SAMPLES bits.
const (
	fifoSamplesThreshold byte = 0x80
	fifoSamplesOverrun   byte = 0x40
	fifoSamplesDiffMask  byte = 0x3F
)

// TAP_THS_X fields. tapThsMask also covers TAP_THS_Y and TAP_THS_Z.
const (
	tapThsXFourD    byte = 0x80
	tapThsXSixDMask byte = 0x60
	tapThsMask      byte = 0x1F
	tapThsXSixDShift     = 5
)

// TAP_THS_Y fields.
const (
	tapPriorityMask  byte = 0xE0
	tapPriorityShift      = 5
)

// TAP_THS_Z fields.
const (
	tapEnableX byte = 0x80
	tapEnableY byte = 0x40
	tapEnableZ byte = 0x20
)

// INT_DUR fields.
const (
	intDurLatencyMask byte = 0xF0
	intDurQuietMask   byte = 0x0C
	intDurShockMask   byte = 0x03
	intDurLatencyShift     = 4
	intDurQuietShift       = 2
)

// WAKE_UP_THS fields.
const (
	wakeUpThsSingleDouble  byte = 0x80
	wakeUpThsSleepOn       byte = 0x40
	wakeUpThsThresholdMask byte = 0x3F
)

// WAKE_UP_DUR fields.
const (
	wakeUpDurFreeFall5  byte = 0x80
	wakeUpDurMask       byte = 0x60
	wakeUpDurStationary byte = 0x10
	wakeUpDurSleepMask  byte = 0x0F
	wakeUpDurShift           = 5
)

// FREE_FALL fields.
const (
	freeFallDurMask byte = 0xF8
	freeFallThsMask byte = 0x07
	freeFallDurShift     = 3
)

// WAKE_UP_SRC bits.
const (
	wakeSrcFreeFall   byte = 0x20
	wakeSrcSleepState byte = 0x10
	wakeSrcWakeUp     byte = 0x08
	wakeSrcX          byte = 0x04
	wakeSrcY          byte = 0x02
	wakeSrcZ          byte = 0x01
)

// TAP_SRC bits.
const (
	tapSrcEvent     byte = 0x40
	tapSrcSingleTap byte = 0x20
	tapSrcDoubleTap byte = 0x10
	tapSrcSign      byte = 0x08
	tapSrcX         byte = 0x04
	tapSrcY         byte = 0x02
	tapSrcZ         byte = 0x01
)

// SIXD_SRC bits.
const (
	sixDSrcEvent byte = 0x40
	sixDSrcZH    byte = 0x20
	sixDSrcZL    byte = 0x10
	sixDSrcYH    byte = 0x08
	sixDSrcYL    byte = 0x04
	sixDSrcXH    byte = 0x02
	sixDSrcXL    byte = 0x01
)

// ALL_INT_SRC bits.
const (
	allIntSleepChange byte = 0x20
	allIntSixD        byte = 0x10
	allIntDoubleTap   byte = 0x08
	allIntSingleTap   byte = 0x04
	allIntWakeUp      byte = 0x02
	allIntFreeFall    byte = 0x01
)
