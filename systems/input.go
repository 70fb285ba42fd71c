package systems

import (
	"github.com/automoto/downhill/core"
	cfg "github.com/automoto/downhill/config"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi/ecs"
)

// Binding maps one action to its keys and gamepad buttons.
type Binding struct {
	Keys                   []ebiten.Key
	StandardGamepadButtons []ebiten.StandardGamepadButton
}

// AnalogDeadzone is the stick deflection below which no turn registers.
const AnalogDeadzone = 0.3

var Bindings = map[cfg.ActionID]Binding{
	cfg.ActionTurnLeft: {
		Keys:                   []ebiten.Key{ebiten.KeyArrowLeft, ebiten.KeyA},
		StandardGamepadButtons: []ebiten.StandardGamepadButton{ebiten.StandardGamepadButtonLeftLeft},
	},
	cfg.ActionTurnRight: {
		Keys:                   []ebiten.Key{ebiten.KeyArrowRight, ebiten.KeyD},
		StandardGamepadButtons: []ebiten.StandardGamepadButton{ebiten.StandardGamepadButtonLeftRight},
	},
	cfg.ActionFaster: {
		Keys:                   []ebiten.Key{ebiten.KeyArrowDown, ebiten.KeyS},
		StandardGamepadButtons: []ebiten.StandardGamepadButton{ebiten.StandardGamepadButtonLeftBottom, ebiten.StandardGamepadButtonFrontBottomRight},
	},
	cfg.ActionSlower: {
		Keys:                   []ebiten.Key{ebiten.KeyArrowUp, ebiten.KeyW},
		StandardGamepadButtons: []ebiten.StandardGamepadButton{ebiten.StandardGamepadButtonLeftTop, ebiten.StandardGamepadButtonFrontBottomLeft},
	},
	cfg.ActionJump: {
		Keys:                   []ebiten.Key{ebiten.KeySpace},
		StandardGamepadButtons: []ebiten.StandardGamepadButton{ebiten.StandardGamepadButtonRightBottom},
	},
	cfg.ActionStart: {
		Keys:                   []ebiten.Key{ebiten.KeySpace, ebiten.KeyEnter},
		StandardGamepadButtons: []ebiten.StandardGamepadButton{ebiten.StandardGamepadButtonCenterRight, ebiten.StandardGamepadButtonRightBottom},
	},
	cfg.ActionConfirm: {
		Keys:                   []ebiten.Key{ebiten.KeyEnter, ebiten.KeyNumpadEnter},
		StandardGamepadButtons: []ebiten.StandardGamepadButton{ebiten.StandardGamepadButtonCenterRight},
	},
	cfg.ActionBackspace: {
		Keys: []ebiten.Key{ebiten.KeyBackspace},
	},
	cfg.ActionToggleCollision: {
		Keys: []ebiten.Key{ebiten.KeyF2},
	},
}

// Reusable slice for gamepad IDs to avoid allocations
var gamepadIDs []ebiten.GamepadID

// UpdateInput polls raw input into the Input singleton.
// Must run after UpdateClock and before the simulation systems.
func UpdateInput(e *ecs.ECS) {
	in := core.GetInput(e.World)
	in.Advance()

	gamepadIDs = ebiten.AppendGamepadIDs(gamepadIDs[:0])

	for action, binding := range Bindings {
		for _, key := range binding.Keys {
			if ebiten.IsKeyPressed(key) {
				in.Current[action] = true
			}
		}
		for _, id := range gamepadIDs {
			if !ebiten.IsStandardGamepadLayoutAvailable(id) {
				continue
			}
			for _, btn := range binding.StandardGamepadButtons {
				if ebiten.IsStandardGamepadButtonPressed(id, btn) {
					in.Current[action] = true
				}
			}
		}
	}

	left, right := analogTurn(gamepadIDs)
	if left {
		in.Current[cfg.ActionTurnLeft] = true
	}
	if right {
		in.Current[cfg.ActionTurnRight] = true
	}

	in.Chars = ebiten.AppendInputChars(in.Chars)
}

// analogTurn reads the left stick of every standard gamepad.
func analogTurn(gamepads []ebiten.GamepadID) (left, right bool) {
	for _, id := range gamepads {
		if !ebiten.IsStandardGamepadLayoutAvailable(id) {
			continue
		}
		h := ebiten.StandardGamepadAxisValue(id, ebiten.StandardGamepadAxisLeftStickHorizontal)
		if h < -AnalogDeadzone {
			left = true
		}
		if h > AnalogDeadzone {
			right = true
		}
	}
	return
}
