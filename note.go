package hodaun

import "math"

// Letter is a note of the western chromatic scale.
type Letter int

// The twelve letters, C first.
const (
	C Letter = iota
	Db
	D
	Eb
	E
	F
	Gb
	G
	Ab
	A
	Bb
	B
)

var letterNames = [...]string{"C", "Db", "D", "Eb", "E", "F", "Gb", "G", "Ab", "A", "Bb", "B"}

func (l Letter) String() string {
	if l < C || l > B {
		return "?"
	}
	return letterNames[l]
}

// Frequency returns the letter's equal-temperament frequency in the
// given octave, tuned to A4 = 440 Hz.
func (l Letter) Frequency(octave int) float64 {
	return 440 * math.Pow(2, float64((octave-4)*12+int(l)-9)/12)
}

// Oct pairs the letter with an octave.
func (l Letter) Oct(octave int) Pitch {
	return Pitch{Letter: l, Octave: octave}
}

// Pitch is a letter-octave pair representing a frequency.
type Pitch struct {
	Letter Letter
	Octave int
}

// Frequency returns the pitch's frequency in Hz.
func (p Pitch) Frequency() float64 {
	return p.Letter.Frequency(p.Octave)
}

// HalfSteps returns the number of half-steps above C0.
func (p Pitch) HalfSteps() int {
	return p.Octave*12 + int(p.Letter)
}
