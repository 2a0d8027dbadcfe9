/*
Package hodaun is a composable audio signal processing library.

Concept

The library is built around two abstractions. A Frame is a single
multi-channel amplitude sample whose channel count is part of its type:
Mono has one channel, Stereo has two. A Source is a pull-based stream of
frames:

	type Source[F Frame[F]] interface {
		Next(sampleRate float64) (F, bool)
	}

The sample rate is passed on every call rather than stored, so the same
source graph can be driven at whatever rate the consumer reports, and the
rate may even change between calls.

Sources compose. Generators (see the gen package) produce frames, and
combinators such as Amplify, Take, Chain, LowPass, Pan and Repeat wrap
sources into new sources. A Mixer is a dynamic fan-in point: sources can
be added to it from any goroutine while another drives playback.

Combinator parameters are Automations: any mono source can drive a
parameter, so a parameter can be a Constant, a live Shared cell mutated
from another goroutine, or a full audio-rate signal.

Termination

A source signals exhaustion by returning false from Next. This is a
one-shot terminal signal: once a caller observes it, the source must not
be pulled again. Combinators honor this contract for their upstreams.
The core has no fallible operations; device and codec errors belong to
the boundary packages (portaudio, wav, ogg, mp3).
*/
package hodaun
