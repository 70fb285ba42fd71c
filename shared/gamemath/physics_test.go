package gamemath

import (
	"math"
	"testing"
)

const (
	maxAngle = math.Pi / 3
	straight = 20.0
	turning  = 16.0
	eps      = 1e-9
)

func TestMaxSpeedForAngleEndpoints(t *testing.T) {
	if got := MaxSpeedForAngle(0, maxAngle, straight, turning); got != straight {
		t.Fatalf("MaxSpeedForAngle(0) = %v, want %v", got, straight)
	}
	for _, a := range []float64{maxAngle, -maxAngle} {
		if got := MaxSpeedForAngle(a, maxAngle, straight, turning); math.Abs(got-turning) > eps {
			t.Fatalf("MaxSpeedForAngle(%v) = %v, want %v", a, got, turning)
		}
	}
}

func TestMaxSpeedForAngleMonotonic(t *testing.T) {
	prev := math.Inf(1)
	for i := 0; i <= 1000; i++ {
		a := maxAngle * float64(i) / 1000
		got := MaxSpeedForAngle(a, maxAngle, straight, turning)
		if got > prev+eps {
			t.Fatalf("MaxSpeedForAngle(%v) = %v increased from %v", a, got, prev)
		}
		if neg := MaxSpeedForAngle(-a, maxAngle, straight, turning); math.Abs(neg-got) > eps {
			t.Fatalf("MaxSpeedForAngle(-%v) = %v, want symmetric %v", a, neg, got)
		}
		prev = got
	}
}

func TestDriftStraightIsZero(t *testing.T) {
	if got := Drift(0, 10, straight, 0.6, 0.8); got != 0 {
		t.Fatalf("Drift(angle 0) = %v, want 0", got)
	}
}

func TestDriftWidensWithSpeed(t *testing.T) {
	// Per unit of speed, a fast skier drifts less than a slow one.
	slow := Drift(0.5, 4, straight, 0.6, 0.8) / 4
	fast := Drift(0.5, 18, straight, 0.6, 0.8) / 18
	if fast >= slow {
		t.Fatalf("drift per speed fast = %v, slow = %v, want fast < slow", fast, slow)
	}
	if Drift(-0.5, 10, straight, 0.6, 0.8) >= 0 {
		t.Fatalf("negative angle should drift left")
	}
}

func TestDownhillSpeed(t *testing.T) {
	if got := DownhillSpeed(10, 0, 0.3); got != 10 {
		t.Fatalf("DownhillSpeed(angle 0) = %v, want 10", got)
	}
	// At max angle the penalty scales with |sin(angle)|.
	want := turning * (1 - math.Sin(maxAngle)*0.3)
	if got := DownhillSpeed(turning, maxAngle, 0.3); math.Abs(got-want) > eps {
		t.Fatalf("DownhillSpeed(max angle) = %v, want %v", got, want)
	}
	if got := DownhillSpeed(turning, math.Pi/2, 0.3); math.Abs(got-turning*0.7) > eps {
		t.Fatalf("DownhillSpeed(pi/2) = %v, want %v", got, turning*0.7)
	}
}

func TestDecaySpeed(t *testing.T) {
	if got := DecaySpeed(10, 0.95, 0.05); math.Abs(got-9.5) > eps {
		t.Fatalf("DecaySpeed(10) = %v, want 9.5", got)
	}
	if got := DecaySpeed(0.05, 0.95, 0.05); got != 0 {
		t.Fatalf("DecaySpeed(0.05) = %v, want 0", got)
	}

	speed := 20.0
	for i := 0; i < 1000 && speed > 0; i++ {
		speed = DecaySpeed(speed, 0.95, 0.05)
	}
	if speed != 0 {
		t.Fatalf("speed after long slide = %v, want exactly 0", speed)
	}
}

func TestClamp(t *testing.T) {
	if Clamp(-1, 0, 5) != 0 || Clamp(6, 0, 5) != 5 || Clamp(3, 0, 5) != 3 {
		t.Fatalf("Clamp out of range")
	}
}
