package obj

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// InputState is one frame of player commands.
type InputState struct {
	// TurnLeft/TurnRight are true while the turn keys are held.
	TurnLeft  bool
	TurnRight bool
	// Thrust is true while the forward key is held.
	Thrust bool

	// Pause, Restart and Exit are true on the frame their key was pressed.
	Pause   bool
	Restart bool
	Exit    bool
}

// Input polls keyboard and the first gamepad.
type Input struct {
	state InputState
}

func NewInput() *Input {
	return &Input{}
}

// State returns what the last Update observed.
func (i *Input) State() InputState {
	return i.state
}

// Update polls the keyboard. Arrow keys or A/D turn, Up or W thrusts.
func (i *Input) Update() {
	var s InputState

	s.TurnLeft = ebiten.IsKeyPressed(ebiten.KeyLeft) || ebiten.IsKeyPressed(ebiten.KeyA)
	s.TurnRight = ebiten.IsKeyPressed(ebiten.KeyRight) || ebiten.IsKeyPressed(ebiten.KeyD)
	s.Thrust = ebiten.IsKeyPressed(ebiten.KeyUp) || ebiten.IsKeyPressed(ebiten.KeyW)

	s.Pause = inpututil.IsKeyJustPressed(ebiten.KeyP)
	s.Restart = inpututil.IsKeyJustPressed(ebiten.KeyR)
	s.Exit = inpututil.IsKeyJustPressed(ebiten.KeyEscape)

	// Gamepad: left stick or d-pad turns, bottom face button thrusts,
	// start pauses and back exits.
	ids := ebiten.GamepadIDs()
	if len(ids) > 0 {
		gid := ids[0]

		leftX := ebiten.StandardGamepadAxisValue(gid, ebiten.StandardGamepadAxisLeftStickHorizontal)
		if leftX < -0.3 || ebiten.IsStandardGamepadButtonPressed(gid, ebiten.StandardGamepadButtonLeftLeft) {
			s.TurnLeft = true
		}
		if leftX > 0.3 || ebiten.IsStandardGamepadButtonPressed(gid, ebiten.StandardGamepadButtonLeftRight) {
			s.TurnRight = true
		}
		if ebiten.IsStandardGamepadButtonPressed(gid, ebiten.StandardGamepadButtonRightBottom) {
			s.Thrust = true
		}
		if inpututil.IsStandardGamepadButtonJustPressed(gid, ebiten.StandardGamepadButtonCenterRight) {
			s.Pause = true
		}
		if inpututil.IsStandardGamepadButtonJustPressed(gid, ebiten.StandardGamepadButtonCenterLeft) {
			s.Exit = true
		}
	}

	i.state = s
}
