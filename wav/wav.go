// Package wav adapts wav files to the library's source interfaces.
// Reading lifts a file into an UnrolledSource; writing drains a Source
// into fixed-point PCM, clamping at this boundary only.
package wav

import (
	"errors"
	"io"

	"github.com/go-audio/audio"
	"github.com/go-audio/wav"

	"github.com/kaikalii/hodaun"
	"github.com/kaikalii/hodaun/signal"
)

// ErrInvalidFile is returned when the reader does not contain a valid
// wav stream.
var ErrInvalidFile = errors.New("wav: invalid file")

const bufferSize = 4096

// Decoder reads a wav stream as an UnrolledSource.
type Decoder struct {
	dec      *wav.Decoder
	depth    signal.BitDepth
	buf      *audio.IntBuffer
	length   int
	pos      int
	finished bool
}

// NewDecoder returns a decoder for the wav stream in r.
func NewDecoder(r io.ReadSeeker) (*Decoder, error) {
	dec := wav.NewDecoder(r)
	if !dec.IsValidFile() {
		return nil, ErrInvalidFile
	}
	return &Decoder{
		dec:   dec,
		depth: signal.BitDepth(dec.BitDepth),
		buf: &audio.IntBuffer{
			Format: &audio.Format{
				NumChannels: int(dec.NumChans),
				SampleRate:  int(dec.SampleRate),
			},
			Data:           make([]int, bufferSize),
			SourceBitDepth: int(dec.BitDepth),
		},
	}, nil
}

// Channels implements hodaun.UnrolledSource.
func (d *Decoder) Channels() int { return int(d.dec.NumChans) }

// SampleRate implements hodaun.UnrolledSource.
func (d *Decoder) SampleRate() float64 { return float64(d.dec.SampleRate) }

// Next implements hodaun.UnrolledSource. Decode errors end the stream.
func (d *Decoder) Next() (float64, bool) {
	if d.pos >= d.length {
		if d.finished {
			return 0, false
		}
		n, err := d.dec.PCMBuffer(d.buf)
		if err != nil && !errors.Is(err, io.EOF) {
			d.finished = true
			return 0, false
		}
		if n == 0 {
			d.finished = true
			return 0, false
		}
		if n < len(d.buf.Data) {
			d.finished = true
		}
		d.length = n
		d.pos = 0
	}
	amp := d.depth.Float(d.buf.Data[d.pos])
	d.pos++
	return amp, true
}

// WriteSource drains a source to completion, writing PCM at the given
// bit depth, one sample per channel per frame.
func WriteSource[F hodaun.Frame[F]](ws io.WriteSeeker, source hodaun.Source[F], sampleRate int, bitDepth signal.BitDepth) error {
	var zero F
	channels := zero.Channels()
	enc := wav.NewEncoder(ws, sampleRate, int(bitDepth), channels, 1)
	buf := &audio.IntBuffer{
		Format: &audio.Format{
			NumChannels: channels,
			SampleRate:  sampleRate,
		},
		Data:           make([]int, 0, bufferSize*channels),
		SourceBitDepth: int(bitDepth),
	}
	out := make([]float64, channels)
	for {
		frame, ok := source.Next(float64(sampleRate))
		if !ok {
			break
		}
		hodaun.WriteSlice(frame, out)
		for _, amp := range out {
			buf.Data = append(buf.Data, bitDepth.Int(amp))
		}
		if len(buf.Data) == cap(buf.Data) {
			if err := enc.Write(buf); err != nil {
				return err
			}
			buf.Data = buf.Data[:0]
		}
	}
	if len(buf.Data) > 0 {
		if err := enc.Write(buf); err != nil {
			return err
		}
	}
	return enc.Close()
}
