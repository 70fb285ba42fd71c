package archetypes

import (
	"github.com/automoto/downhill/components"
	"github.com/automoto/downhill/tags"
	"github.com/yohamta/donburi"
)

var (
	Session = newArchetype(
		tags.Session,
		components.Clock,
		components.Race,
		components.Transition,
		components.Cinematic,
		components.Debug,
	)
	Skier = newArchetype(
		tags.Skier,
		components.Skier,
	)
	Slope = newArchetype(
		tags.Slope,
		components.Slope,
		components.ObstacleField,
	)
	Controls = newArchetype(
		tags.Controls,
		components.Input,
		components.Audio,
	)
	Backend = newArchetype(
		tags.Backend,
		components.Scores,
		components.Loading,
	)
)

type archetype struct {
	components []donburi.IComponentType
}

func newArchetype(cs ...donburi.IComponentType) *archetype {
	return &archetype{
		components: cs,
	}
}

func (a *archetype) Spawn(w donburi.World, cs ...donburi.IComponentType) *donburi.Entry {
	e := w.Entry(w.Create(
		append(a.components, cs...)...,
	))
	return e
}
