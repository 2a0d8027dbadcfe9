// Package ogg adapts ogg/vorbis streams to the library's UnrolledSource
// interface. The boundary is read-only.
package ogg

import (
	"io"

	"github.com/jfreymuth/oggvorbis"
)

const bufferSize = 4096

// Decoder reads an ogg/vorbis stream as an UnrolledSource.
type Decoder struct {
	reader   *oggvorbis.Reader
	buf      []float32
	length   int
	pos      int
	finished bool
}

// NewDecoder returns a decoder for the ogg/vorbis stream in r.
func NewDecoder(r io.Reader) (*Decoder, error) {
	reader, err := oggvorbis.NewReader(r)
	if err != nil {
		return nil, err
	}
	return &Decoder{
		reader: reader,
		buf:    make([]float32, bufferSize),
	}, nil
}

// Channels implements hodaun.UnrolledSource.
func (d *Decoder) Channels() int { return d.reader.Channels() }

// SampleRate implements hodaun.UnrolledSource.
func (d *Decoder) SampleRate() float64 { return float64(d.reader.SampleRate()) }

// Next implements hodaun.UnrolledSource. Decode errors end the stream.
func (d *Decoder) Next() (float64, bool) {
	if d.pos >= d.length {
		if d.finished {
			return 0, false
		}
		n, err := d.reader.Read(d.buf)
		if err != nil {
			d.finished = true
		}
		if n == 0 {
			d.finished = true
			return 0, false
		}
		d.length = n
		d.pos = 0
	}
	amp := float64(d.buf[d.pos])
	d.pos++
	return amp, true
}
