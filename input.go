package main

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/milk9111/voxelsandbox/sandbox"
)

const stickDeadzone = 0.2

// readInput samples the keyboard and the first gamepad.
func readInput() sandbox.Input {
	in := sandbox.Input{
		Left:       ebiten.IsKeyPressed(ebiten.KeyA) || ebiten.IsKeyPressed(ebiten.KeyArrowLeft),
		Right:      ebiten.IsKeyPressed(ebiten.KeyD) || ebiten.IsKeyPressed(ebiten.KeyArrowRight),
		Jump:       ebiten.IsKeyPressed(ebiten.KeySpace) || ebiten.IsKeyPressed(ebiten.KeyW) || ebiten.IsKeyPressed(ebiten.KeyArrowUp),
		SelectNext: ebiten.IsKeyPressed(ebiten.KeyTab) || ebiten.IsKeyPressed(ebiten.KeyE),
	}

	if gamepads := ebiten.GamepadIDs(); len(gamepads) > 0 {
		id := gamepads[0]
		x := ebiten.StandardGamepadAxisValue(id, ebiten.StandardGamepadAxisLeftStickHorizontal)
		if x < -stickDeadzone {
			in.Left = true
		} else if x > stickDeadzone {
			in.Right = true
		}
		in.Left = in.Left || ebiten.IsStandardGamepadButtonPressed(id, ebiten.StandardGamepadButtonLeftLeft)
		in.Right = in.Right || ebiten.IsStandardGamepadButtonPressed(id, ebiten.StandardGamepadButtonLeftRight)
		in.Jump = in.Jump || ebiten.IsStandardGamepadButtonPressed(id, ebiten.StandardGamepadButtonRightBottom)
		in.SelectNext = in.SelectNext || ebiten.IsStandardGamepadButtonPressed(id, ebiten.StandardGamepadButtonFrontBottomRight)
	}
	return in
}
