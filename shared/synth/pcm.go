// Package synth renders the game's sound effects and music loop as raw
// PCM, so the client needs no audio files on disk.
package synth

import (
	"encoding/binary"
	"math"
	"math/rand/v2"
	"time"

	cfg "github.com/automoto/downhill/config"
)

const (
	channels  = 2
	frameSize = channels * 2 // bytes per stereo 16-bit frame
)

// Samples returns the mono samples in [-1, 1] for a tone: a linear frequency
// sweep with an exponential decay and an optional noise mix.
func Samples(t cfg.Tone, sampleRate int, seed uint64) []float64 {
	n := int(t.Duration.Seconds() * float64(sampleRate))
	if n <= 0 {
		return nil
	}
	r := rand.New(rand.NewPCG(seed, seed+1))
	out := make([]float64, n)

	phase := 0.0
	for i := range out {
		p := float64(i) / float64(n)
		hz := t.StartHz + (t.EndHz-t.StartHz)*p
		phase += 2 * math.Pi * hz / float64(sampleRate)

		tone := math.Sin(phase)
		if t.Noise > 0 {
			tone = tone*(1-t.Noise) + (r.Float64()*2-1)*t.Noise
		}
		env := math.Exp(-4 * p)
		// Short attack so the start doesn't click.
		if attack := 0.01; p < attack {
			env *= p / attack
		}
		out[i] = tone * env * t.Volume
	}
	return out
}

// Melody renders notes of equal length back to back.
func Melody(notes []float64, noteLength time.Duration, volume float64, sampleRate int) []float64 {
	var out []float64
	for i, hz := range notes {
		out = append(out, Samples(cfg.Tone{StartHz: hz, EndHz: hz, Duration: noteLength, Volume: volume}, sampleRate, uint64(i))...)
	}
	return out
}

// PCM encodes mono samples as signed 16-bit little-endian stereo, the
// format an ebiten audio context plays. Samples outside [-1, 1] clip.
func PCM(samples []float64) []byte {
	out := make([]byte, len(samples)*frameSize)
	for i, s := range samples {
		v := uint16(int16(math.Max(-1, math.Min(1, s)) * math.MaxInt16))
		for c := 0; c < channels; c++ {
			binary.LittleEndian.PutUint16(out[i*frameSize+c*2:], v)
		}
	}
	return out
}

// TonePCM renders a tone straight to playable bytes.
func TonePCM(t cfg.Tone, sampleRate int, seed uint64) []byte {
	return PCM(Samples(t, sampleRate, seed))
}
