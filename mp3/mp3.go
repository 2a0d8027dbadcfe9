// Package mp3 adapts mp3 streams to the library's UnrolledSource
// interface. The decoder always produces two channels of 16-bit
// samples, which are rescaled to float amplitudes here.
package mp3

import (
	"encoding/binary"
	"io"

	"github.com/hajimehoshi/go-mp3"

	"github.com/kaikalii/hodaun/signal"
)

// the decoder's fixed output layout
const (
	channels       = 2
	bytesPerSample = 2
)

// Decoder reads an mp3 stream as an UnrolledSource.
type Decoder struct {
	dec      *mp3.Decoder
	buf      [bufferSize]byte
	length   int
	pos      int
	finished bool
}

const bufferSize = 4096

// NewDecoder returns a decoder for the mp3 stream in r.
func NewDecoder(r io.Reader) (*Decoder, error) {
	dec, err := mp3.NewDecoder(r)
	if err != nil {
		return nil, err
	}
	return &Decoder{dec: dec}, nil
}

// Channels implements hodaun.UnrolledSource.
func (d *Decoder) Channels() int { return channels }

// SampleRate implements hodaun.UnrolledSource.
func (d *Decoder) SampleRate() float64 { return float64(d.dec.SampleRate()) }

// Next implements hodaun.UnrolledSource. Decode errors end the stream.
func (d *Decoder) Next() (float64, bool) {
	if d.pos+bytesPerSample > d.length {
		if d.finished {
			return 0, false
		}
		n, err := io.ReadFull(d.dec, d.buf[:])
		if err != nil {
			d.finished = true
		}
		n -= n % bytesPerSample
		if n == 0 {
			return 0, false
		}
		d.length = n
		d.pos = 0
	}
	sample := int(int16(binary.LittleEndian.Uint16(d.buf[d.pos:])))
	d.pos += bytesPerSample
	return signal.BitDepth16.Float(sample), true
}
