package systems

import (
	"github.com/automoto/bugspy/components"
	cfg "github.com/automoto/bugspy/config"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi/ecs"
)

// InputSource fills in the codes held this frame.
type InputSource interface {
	Poll(codes *[cfg.InputCount]bool)
}

// Reusable slice for gamepad IDs to avoid allocations
var gamepadIDs []ebiten.GamepadID

// DeviceInput polls the keyboard and every standard-layout gamepad.
type DeviceInput struct{}

func (DeviceInput) Poll(codes *[cfg.InputCount]bool) {
	gamepadIDs = ebiten.AppendGamepadIDs(gamepadIDs[:0])

	for code, binding := range cfg.Input.Bindings {
		for _, key := range binding.Keys {
			if ebiten.IsKeyPressed(key) {
				codes[code] = true
			}
		}
		for _, gpID := range gamepadIDs {
			if !ebiten.IsStandardGamepadLayoutAvailable(gpID) {
				continue
			}
			for _, btn := range binding.StandardGamepadButtons {
				if ebiten.IsStandardGamepadButtonPressed(gpID, btn) {
					codes[code] = true
				}
			}
		}
	}

	left, right, up, down := analogStick(gamepadIDs)
	codes[cfg.InputLeft] = codes[cfg.InputLeft] || left
	codes[cfg.InputRight] = codes[cfg.InputRight] || right
	codes[cfg.InputUp] = codes[cfg.InputUp] || up
	codes[cfg.InputDown] = codes[cfg.InputDown] || down
}

// analogStick reads the left stick of every gamepad against the deadzone
func analogStick(gamepads []ebiten.GamepadID) (left, right, up, down bool) {
	deadzone := cfg.Input.AnalogDeadzone

	for _, gpID := range gamepads {
		if !ebiten.IsStandardGamepadLayoutAvailable(gpID) {
			continue
		}
		horizontal := ebiten.StandardGamepadAxisValue(gpID, ebiten.StandardGamepadAxisLeftStickHorizontal)
		vertical := ebiten.StandardGamepadAxisValue(gpID, ebiten.StandardGamepadAxisLeftStickVertical)

		left = left || horizontal < -deadzone
		right = right || horizontal > deadzone
		up = up || vertical < -deadzone
		down = down || vertical > deadzone
	}
	return
}

// HeldInput reports the same codes every frame. Headless runs use it.
type HeldInput struct {
	Codes []cfg.InputCode
}

func (h *HeldInput) Poll(codes *[cfg.InputCount]bool) {
	for _, c := range h.Codes {
		codes[c] = true
	}
}

// ScriptedInput plays back one code set per frame and then holds nothing.
type ScriptedInput struct {
	Frames [][]cfg.InputCode
	frame  int
}

func (s *ScriptedInput) Poll(codes *[cfg.InputCount]bool) {
	if s.frame >= len(s.Frames) {
		return
	}
	for _, c := range s.Frames[s.frame] {
		codes[c] = true
	}
	s.frame++
}

// InputSystem returns the system that swaps input buffers and polls src.
// It must run before every system that reads input.
func InputSystem(src InputSource) ecs.System {
	return func(e *ecs.ECS) {
		input := getInput(e)
		input.Previous = input.Current
		input.Current = [cfg.InputCount]bool{}
		if src != nil {
			src.Poll(&input.Current)
		}
	}
}

// SetInput replaces the held codes of the current frame.
func SetInput(input *components.InputData, codes ...cfg.InputCode) {
	input.Previous = input.Current
	input.Current = [cfg.InputCount]bool{}
	for _, c := range codes {
		input.Current[c] = true
	}
}

// getInput returns the singleton Input component
func getInput(e *ecs.ECS) *components.InputData {
	return components.Input.Get(components.Input.MustFirst(e.World))
}

// GetAction returns the full ActionState for an input code.
// JustPressed/JustReleased are derived from current vs previous frame.
func GetAction(input *components.InputData, code cfg.InputCode) components.ActionState {
	curr := input.Current[code]
	prev := input.Previous[code]
	return components.ActionState{
		Pressed:      curr,
		JustPressed:  curr && !prev,
		JustReleased: !curr && prev,
	}
}
