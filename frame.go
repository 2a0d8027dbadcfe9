package hodaun

// Frame is a single multi-channel amplitude sample. The channel count is
// part of the concrete type: Mono has one channel, Stereo has two. Any
// fixed-size array type can implement Frame to get more channels.
//
// Frames are values. Operations that modify a frame return the modified
// copy. Amplitudes are nominally in [-1, 1] but are never clamped; if
// clamping is needed it happens at the I/O boundary when converting to
// fixed-point sample formats.
type Frame[F any] interface {
	// Uniform returns a frame with the same amplitude on every channel.
	Uniform(amp float64) F
	// Channels returns the number of channels.
	Channels() int
	// Channel returns the amplitude of channel i.
	Channel(i int) float64
	// SetChannel returns a copy with channel i set to amp.
	SetChannel(i int, amp float64) F
	// Map applies f to every channel.
	Map(f func(float64) float64) F
	// Merge combines two frames channel by channel. Arguments to f keep
	// their order: the receiver's channel first, other's second.
	Merge(other F, f func(a, b float64) float64) F
	// Avg returns the mean amplitude over all channels.
	Avg() float64
}

// Mono is a single-channel frame.
type Mono float64

// Uniform implements Frame.
func (Mono) Uniform(amp float64) Mono { return Mono(amp) }

// Channels implements Frame.
func (Mono) Channels() int { return 1 }

// Channel implements Frame. The index is ignored.
func (m Mono) Channel(int) float64 { return float64(m) }

// SetChannel implements Frame. The index is ignored.
func (Mono) SetChannel(_ int, amp float64) Mono { return Mono(amp) }

// Map implements Frame.
func (m Mono) Map(f func(float64) float64) Mono { return Mono(f(float64(m))) }

// Merge implements Frame.
func (m Mono) Merge(other Mono, f func(a, b float64) float64) Mono {
	return Mono(f(float64(m), float64(other)))
}

// Avg implements Frame.
func (m Mono) Avg() float64 { return float64(m) }

// Stereo is a two-channel frame, left then right.
type Stereo [2]float64

// Uniform implements Frame.
func (Stereo) Uniform(amp float64) Stereo { return Stereo{amp, amp} }

// Channels implements Frame.
func (Stereo) Channels() int { return 2 }

// Channel implements Frame. Out-of-range indices wrap.
func (s Stereo) Channel(i int) float64 { return s[i%2] }

// SetChannel implements Frame. Out-of-range indices wrap.
func (s Stereo) SetChannel(i int, amp float64) Stereo {
	s[i%2] = amp
	return s
}

// Map implements Frame.
func (s Stereo) Map(f func(float64) float64) Stereo {
	return Stereo{f(s[0]), f(s[1])}
}

// Merge implements Frame.
func (s Stereo) Merge(other Stereo, f func(a, b float64) float64) Stereo {
	return Stereo{f(s[0], other[0]), f(s[1], other[1])}
}

// Avg implements Frame.
func (s Stereo) Avg() float64 { return (s[0] + s[1]) / 2 }

// Add sums two frames channel by channel.
func Add[F Frame[F]](a, b F) F {
	return a.Merge(b, func(x, y float64) float64 { return x + y })
}

// MonoOf converts any frame to mono by averaging its channels.
func MonoOf[F Frame[F]](f F) Mono { return Mono(f.Avg()) }

// StereoOf broadcasts a mono frame to both stereo channels.
func StereoOf(m Mono) Stereo { return Stereo{float64(m), float64(m)} }

// Lerp linearly interpolates between a and b.
func Lerp(a, b, t float64) float64 { return (1-t)*a + t*b }

// WriteSlice writes a frame to an output slice whose channel count need
// not match the frame's. A mono frame is broadcast to every output
// channel, a mono output receives the frame average, and otherwise
// channels are copied by position, leaving extra output channels
// untouched.
func WriteSlice[F Frame[F]](frame F, out []float64) {
	switch {
	case frame.Channels() == 1:
		for i := range out {
			out[i] = frame.Channel(0)
		}
	case len(out) == 1:
		out[0] = frame.Avg()
	default:
		n := frame.Channels()
		if len(out) < n {
			n = len(out)
		}
		for i := 0; i < n; i++ {
			out[i] = frame.Channel(i)
		}
	}
}
