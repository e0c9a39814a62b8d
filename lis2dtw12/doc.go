// Copyright 2025 The Periph Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

// Package lis2dtw12 controls a ST LIS2DTW12 3-axis MEMS accelerometer with
// integrated temperature sensor over I2C or SPI.
//
// The driver exposes the full register set of the device: operating mode,
// output data rate and full-scale configuration, FIFO control, tap, wake-up,
// sleep, free-fall and 6D position change detection, user offsets and
// interrupt pad routing. Acceleration samples are returned raw or scaled to
// milli-g according to the configured resolution and range; the temperature
// sensor is exposed through physic.SenseEnv.
//
// One Dev owns one physical device. The driver performs no bus arbitration;
// concurrent access to the same device from several Dev instances requires
// external synchronization.
//
// # Datasheet
//
// https://www.st.com/resource/en/datasheet/lis2dtw12.pdf
package lis2dtw12
