package assets

import (
	"fmt"

	cfg "github.com/automoto/downhill/config"
	"github.com/automoto/downhill/fonts"
)

// Step is one unit of asset preparation run during the loading phase.
type Step struct {
	Name string
	Run  func() error
}

// Loader runs steps one per call so the loading screen can draw between
// them. A failed step is reported and skipped; it never stops the loader.
type Loader struct {
	steps []Step
	next  int
}

func NewLoader(steps ...Step) *Loader {
	return &Loader{steps: steps}
}

// Total is the number of steps.
func (l *Loader) Total() int {
	return len(l.steps)
}

// Done reports whether every step has run.
func (l *Loader) Done() bool {
	return l.next >= len(l.steps)
}

// Next runs the next step and returns its name and error. ok is false once
// every step has run.
func (l *Loader) Next() (name string, ok bool, err error) {
	if l.Done() {
		return "", false, nil
	}
	s := l.steps[l.next]
	l.next++
	name, ok = s.Name, true

	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("%s: %v", s.Name, r)
		}
	}()
	err = s.Run()
	return name, ok, err
}

// GameSteps lists everything the game loads before the menu. audio may be
// nil, in which case no sound steps are added.
func GameSteps(audio *AudioLoader, music bool) []Step {
	steps := []Step{
		{Name: "fonts", Run: fonts.LoadDefaults},
	}

	sprites := []string{SpriteSnowTile, SpriteSkier, SpriteSki, SpriteFallen}
	for k := cfg.ObstacleKind(0); k < cfg.ObstacleKindCount; k++ {
		sprites = append(sprites, obstacleSprite(k))
	}
	for _, name := range sprites {
		steps = append(steps, Step{Name: name, Run: func() error { return spriteLoader.Load(name) }})
	}

	if audio == nil {
		return steps
	}
	for id := cfg.SoundJump; id <= cfg.SoundType; id++ {
		steps = append(steps, Step{
			Name: fmt.Sprintf("sound %d", id),
			Run:  func() error { return audio.PreloadSFX(id) },
		})
	}
	if music {
		steps = append(steps, Step{Name: "music", Run: audio.PreloadMusic})
	}
	return steps
}
