// Package signal converts between float amplitudes and fixed-point
// sample formats at the I/O boundary. The core never clamps; conversion
// to integer formats here does.
package signal

import (
	"math"
	"time"
)

// BitDepth is the size of an integer sample format.
type BitDepth int

// Supported bit depths.
const (
	BitDepth8  = BitDepth(8)
	BitDepth16 = BitDepth(16)
	BitDepth24 = BitDepth(24)
	BitDepth32 = BitDepth(32)
)

// devider is used when int to float conversion is done.
func (bitDepth BitDepth) devider() float64 {
	switch bitDepth {
	case BitDepth8:
		return math.MaxInt8
	case BitDepth16:
		return math.MaxInt16
	case BitDepth24:
		return 1<<23 - 1
	case BitDepth32:
		return math.MaxInt32
	default:
		return 1
	}
}

// multiplier is used when float to int conversion is done.
func (bitDepth BitDepth) multiplier() float64 {
	switch bitDepth {
	case BitDepth8:
		return math.MaxInt8 - 1
	case BitDepth16:
		return math.MaxInt16 - 1
	case BitDepth24:
		return 1<<23 - 2
	case BitDepth32:
		return math.MaxInt32 - 1
	default:
		return 1
	}
}

// Float converts an integer sample to a float amplitude in [-1, 1].
func (bitDepth BitDepth) Float(sample int) float64 {
	return float64(sample) / bitDepth.devider()
}

// Int converts a float amplitude to an integer sample, clamping to
// [-1, 1] first.
func (bitDepth BitDepth) Int(amp float64) int {
	if amp > 1 {
		amp = 1
	} else if amp < -1 {
		amp = -1
	}
	return int(amp * bitDepth.multiplier())
}

// DurationOf returns the time duration of the given number of samples at
// this sample rate.
func DurationOf(sampleRate int, samples int64) time.Duration {
	return time.Duration(float64(samples) / float64(sampleRate) * float64(time.Second))
}
