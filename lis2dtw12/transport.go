// Copyright 2025 The Periph Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

package lis2dtw12

import (
	"fmt"

	"periph.io/x/conn/v3/gpio"
	"periph.io/x/conn/v3/i2c"
	"periph.io/x/conn/v3/physic"
	"periph.io/x/conn/v3/spi"
)

// DefaultAddress is the I2C address with the SA0 strap pin low.
const DefaultAddress uint16 = 0x18

// AlternateAddress is the I2C address with the SA0 strap pin high.
const AlternateAddress uint16 = 0x19

// spiRead is ORed into the address byte of an SPI read frame.
const spiRead byte = 0x80

// SPI port parameters. The device supports up to 10MHz in SPI mode 0 or 3.
var (
	SpiFrequency = 5 * physic.MegaHertz
	SpiMode      = spi.Mode3
	SpiBits      = 8
)

// DebugF is the debug print function type.
type DebugF func(string, ...interface{})

// Transport encapsulates the register-level bus access of the device. It
// supports I2C, SPI with a port-managed chip select, and SPI on a shared bus
// with an explicitly driven chip select pin.
type Transport struct {
	c     spi.Conn
	d     *i2c.Dev
	cs    gpio.PinOut
	debug DebugF
}

// NewI2CTransport returns a Transport using the given I2C bus. addr must be
// DefaultAddress or AlternateAddress, matching the SA0 strap pin.
func NewI2CTransport(b i2c.Bus, addr uint16) (*Transport, error) {
	if addr != DefaultAddress && addr != AlternateAddress {
		return nil, fmt.Errorf("lis2dtw12: invalid I2C address %#x", addr)
	}
	return &Transport{d: &i2c.Dev{Bus: b, Addr: addr}, debug: noop}, nil
}

// NewSPITransport returns a Transport using the given SPI port. The port's
// own chip select is used for framing.
func NewSPITransport(p spi.Port) (*Transport, error) {
	c, err := p.Connect(SpiFrequency, SpiMode, SpiBits)
	if err != nil {
		return nil, err
	}
	return &Transport{c: c, debug: noop}, nil
}

// NewSPIBusTransport returns a Transport on a shared SPI bus, asserting cs
// around every transfer. cs is driven low for the transfer and high again
// afterwards.
func NewSPIBusTransport(p spi.Port, cs gpio.PinOut) (*Transport, error) {
	c, err := p.Connect(SpiFrequency, SpiMode, SpiBits)
	if err != nil {
		return nil, err
	}
	if err := cs.Out(gpio.High); err != nil {
		return nil, err
	}
	return &Transport{c: c, cs: cs, debug: noop}, nil
}

// EnableDebug sets the debug print hook.
func (t *Transport) EnableDebug(f DebugF) {
	t.debug = f
}

// readRegs reads len(buf) bytes starting at reg. For multi-byte reads the
// address MSB is set to enable register auto-increment.
func (t *Transport) readRegs(reg byte, buf []byte) error {
	if len(buf) > 1 {
		reg |= regAutoIncrement
	}
	t.debug("read %#x, %d bytes", reg, len(buf))
	if t.d != nil {
		return t.d.Tx([]byte{reg}, buf)
	}
	w := make([]byte, len(buf)+1)
	r := make([]byte, len(buf)+1)
	w[0] = spiRead | reg
	if err := t.csAssert(); err != nil {
		return err
	}
	if err := t.c.Tx(w, r); err != nil {
		t.csDeassert()
		return err
	}
	copy(buf, r[1:])
	return t.csDeassert()
}

// writeReg writes a single register.
func (t *Transport) writeReg(reg, value byte) error {
	t.debug("write %#x = %#x", reg, value)
	if t.d != nil {
		return t.d.Tx([]byte{reg, value}, nil)
	}
	w := [...]byte{reg, value}
	var r [2]byte
	if err := t.csAssert(); err != nil {
		return err
	}
	if err := t.c.Tx(w[:], r[:]); err != nil {
		t.csDeassert()
		return err
	}
	return t.csDeassert()
}

func (t *Transport) csAssert() error {
	if t.cs == nil {
		return nil
	}
	return t.cs.Out(gpio.Low)
}

func (t *Transport) csDeassert() error {
	if t.cs == nil {
		return nil
	}
	return t.cs.Out(gpio.High)
}

func (t *Transport) String() string {
	if t.d != nil {
		return t.d.String()
	}
	return t.c.String()
}

func noop(string, ...interface{}) {}
