package core

import (
	"math"
	"math/rand/v2"
	"testing"

	"github.com/automoto/downhill/components"
	cfg "github.com/automoto/downhill/config"
)

func newField(seed uint64) *components.ObstacleFieldData {
	f := &components.ObstacleFieldData{Rand: rand.New(rand.NewPCG(seed, seed+1))}
	ResetObstacleField(f)
	return f
}

func TestPickObstacleKindWeights(t *testing.T) {
	r := rand.New(rand.NewPCG(42, 43))
	const trials = 100000

	var counts [cfg.ObstacleKindCount]int
	for i := 0; i < trials; i++ {
		counts[PickObstacleKind(r)]++
	}

	total := 0.0
	for _, typ := range cfg.Obstacles.Types {
		total += typ.Weight
	}
	for k, typ := range cfg.Obstacles.Types {
		if typ.Weight == 0 {
			if counts[k] != 0 {
				t.Fatalf("%s has weight 0 but was picked %d times", typ.Name, counts[k])
			}
			continue
		}
		got := float64(counts[k]) / trials
		want := typ.Weight / total
		if math.Abs(got-want) > 0.01 {
			t.Fatalf("%s picked %.4f of the time, want %.4f", typ.Name, got, want)
		}
	}
}

func TestSpawnXPolicy(t *testing.T) {
	r := rand.New(rand.NewPCG(1, 1))
	width := float64(cfg.C.Width)

	if got := SpawnX(cfg.ObstacleArrowLeft, r); got != cfg.ObstacleArrowLeft.Type().Width {
		t.Fatalf("left sign x = %v, want %v", got, cfg.ObstacleArrowLeft.Type().Width)
	}
	if got := SpawnX(cfg.ObstacleArrowRight, r); got != width-cfg.ObstacleArrowRight.Type().Width {
		t.Fatalf("right sign x = %v, want %v", got, width-cfg.ObstacleArrowRight.Type().Width)
	}
	tree := cfg.ObstacleTree.Type()
	for i := 0; i < 1000; i++ {
		x := SpawnX(cfg.ObstacleTree, r)
		if x < tree.Width/2 || x > width-tree.Width/2 {
			t.Fatalf("tree x %v outside margins", x)
		}
	}
}

func TestStepObstaclesSpawnsBelowScreen(t *testing.T) {
	f := newField(9)
	s := &components.SkierData{Downhill: 6}
	height := float64(cfg.C.Height)

	spawnedTotal := 0
	for i := 0; i < 3000; i++ {
		spawned, _ := StepObstacles(f, s, 0, true)
		spawnedTotal += spawned
		if spawned > 0 {
			if o := f.Obstacles[len(f.Obstacles)-1]; o.Y <= height {
				t.Fatalf("obstacle spawned at y %v, inside the screen", o.Y)
			}
		}
		for _, o := range f.Obstacles {
			if o.Kind == cfg.ObstacleBarrel {
				t.Fatalf("barrel spawned")
			}
		}
	}
	if spawnedTotal == 0 {
		t.Fatalf("nothing spawned in 3000 ticks")
	}
}

func TestStepObstaclesEvictsFromFront(t *testing.T) {
	f := newField(1)
	tree := cfg.ObstacleTree.Type()
	f.Obstacles = []components.Obstacle{
		{Kind: cfg.ObstacleTree, X: 100, Y: -tree.Height + 1},
		{Kind: cfg.ObstacleTree, X: 200, Y: -tree.Height + 3},
		{Kind: cfg.ObstacleTree, X: 300, Y: 400},
	}
	s := &components.SkierData{Downhill: 2}

	_, evicted := StepObstacles(f, s, 0, false)
	if evicted != 1 || len(f.Obstacles) != 2 || f.Obstacles[0].X != 200 {
		t.Fatalf("evicted %d, left %+v; want the first obstacle gone", evicted, f.Obstacles)
	}
	if f.Obstacles[0].Y != -tree.Height+1 {
		t.Fatalf("obstacle y = %v, want %v", f.Obstacles[0].Y, -tree.Height+1)
	}

	// Exactly at -height stays.
	_, evicted = StepObstacles(f, &components.SkierData{Downhill: 1}, 0, false)
	if evicted != 0 {
		t.Fatalf("obstacle at exactly -height evicted")
	}
}

func TestStepObstaclesSpawnCutoff(t *testing.T) {
	f := newField(2)
	s := &components.SkierData{Downhill: 8}
	distance := cfg.World.RaceDistance * cfg.World.SpawnCutoff

	for i := 0; i < 2000; i++ {
		if spawned, _ := StepObstacles(f, s, distance, true); spawned != 0 {
			t.Fatalf("spawned past the cutoff")
		}
	}
}

func TestStepObstaclesNoSpawnWhileSliding(t *testing.T) {
	f := newField(3)
	s := &components.SkierData{Downhill: 8}
	for i := 0; i < 2000; i++ {
		if spawned, _ := StepObstacles(f, s, 0, false); spawned != 0 {
			t.Fatalf("spawned while not racing")
		}
	}
}

func TestFinishMarker(t *testing.T) {
	height := float64(cfg.C.Height)
	total := cfg.World.RaceDistance

	f := newField(4)
	s := &components.SkierData{X: 300, Y: cfg.SkierStartY()}
	StepObstacles(f, s, total-height, true)
	if f.HasFinish {
		t.Fatalf("marker created with a full screen left")
	}

	StepObstacles(f, s, total-height+1, true)
	if !f.HasFinish {
		t.Fatalf("marker not created")
	}
	if want := height + height - 1; f.FinishY != want {
		t.Fatalf("marker y = %v, want %v", f.FinishY, want)
	}

	// Completion needs the marker well above the skier, not just above.
	f.FinishY = s.Y - 1
	StepObstacles(f, s, total, true)
	if f.FinishPassed {
		t.Fatalf("finish signalled with the marker just above the skier")
	}
	f.FinishY = s.Y - cfg.Finish.PassMargin
	StepObstacles(f, s, total, true)
	if f.FinishPassed {
		t.Fatalf("finish signalled at exactly the pass margin")
	}
	f.FinishY = s.Y - cfg.Finish.PassMargin - 1
	StepObstacles(f, s, total, true)
	if !f.FinishPassed {
		t.Fatalf("finish not signalled")
	}
}

func TestFinishMarkerAdvects(t *testing.T) {
	f := newField(5)
	s := &components.SkierData{X: 300, Y: cfg.SkierStartY(), Downhill: 5}
	f.HasFinish = true
	f.FinishY = 700

	StepObstacles(f, s, cfg.World.RaceDistance, true)
	if f.FinishY != 695 {
		t.Fatalf("marker y = %v, want 695", f.FinishY)
	}
	if f.Homing {
		t.Fatalf("homing started far from the marker")
	}
}

func TestFinishHoming(t *testing.T) {
	f := newField(6)
	s := &components.SkierData{X: 100, Y: cfg.SkierStartY(), Angle: 0.5}
	f.HasFinish = true
	f.FinishY = s.Y + cfg.Finish.HomingRange - 1

	StepObstacles(f, s, cfg.World.RaceDistance, true)
	if !f.Homing {
		t.Fatalf("homing not started")
	}
	wantX := 100 + (cfg.Finish.GapX-100)*cfg.Finish.HomingPull
	if math.Abs(s.X-wantX) > 1e-9 {
		t.Fatalf("x = %v, want %v", s.X, wantX)
	}
	if math.Abs(s.Angle-0.5*cfg.Finish.AngleDecay) > 1e-9 {
		t.Fatalf("angle = %v, want %v", s.Angle, 0.5*cfg.Finish.AngleDecay)
	}
}
