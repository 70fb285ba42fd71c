package synth

import (
	"encoding/binary"
	"math"
	"testing"
	"time"

	cfg "github.com/automoto/downhill/config"
)

func TestPCMLayout(t *testing.T) {
	samples := []float64{0, 0.5, -0.5, 2, -2}
	data := PCM(samples)

	if len(data) != len(samples)*frameSize {
		t.Fatalf("len = %d, want %d", len(data), len(samples)*frameSize)
	}
	frame := func(i int) (int16, int16) {
		f := data[i*frameSize:]
		return int16(binary.LittleEndian.Uint16(f[0:2])), int16(binary.LittleEndian.Uint16(f[2:4]))
	}
	if l, r := frame(1); l != math.MaxInt16/2 || r != l {
		t.Fatalf("half sample = %d/%d, want %d on both channels", l, r, math.MaxInt16/2)
	}
	if l, _ := frame(2); l != -(math.MaxInt16 / 2) {
		t.Fatalf("negative half sample = %d", l)
	}
	// Out-of-range samples clip.
	if l, r := frame(3); l != math.MaxInt16 || r != l {
		t.Fatalf("clipped sample = %d/%d, want %d", l, r, math.MaxInt16)
	}
	if l, _ := frame(4); l != -math.MaxInt16 {
		t.Fatalf("clipped negative sample = %d, want %d", l, -math.MaxInt16)
	}
	if PCM(nil) == nil || len(PCM(nil)) != 0 {
		t.Fatalf("PCM(nil) should be empty")
	}
}

func TestSamplesLengthAndRange(t *testing.T) {
	tone := cfg.Tone{StartHz: 200, EndHz: 800, Duration: 100 * time.Millisecond, Noise: 0.5, Volume: 0.8}
	s := Samples(tone, 10000, 1)

	if len(s) != 1000 {
		t.Fatalf("len = %d, want 1000", len(s))
	}
	for i, v := range s {
		if math.Abs(v) > tone.Volume {
			t.Fatalf("sample %d = %v exceeds volume %v", i, v, tone.Volume)
		}
	}
	if s[0] != 0 {
		t.Fatalf("first sample = %v, want a silent attack", s[0])
	}
}

func TestSamplesDeterministic(t *testing.T) {
	tone := cfg.Sound.Tones[cfg.SoundFall]
	a := Samples(tone, 8000, 3)
	b := Samples(tone, 8000, 3)
	for i := range a {
		if a[i] != b[i] {
			t.Fatalf("sample %d differs between runs", i)
		}
	}
}

func TestMelody(t *testing.T) {
	m := Melody([]float64{440, 880}, 50*time.Millisecond, 0.5, 1000)
	if len(m) != 100 {
		t.Fatalf("len = %d, want 100", len(m))
	}
	if Samples(cfg.Tone{Duration: 0}, 1000, 0) != nil {
		t.Fatalf("zero-length tone produced samples")
	}
}
