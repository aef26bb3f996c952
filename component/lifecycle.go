package component

// Lifecycle is the single tagged state of a game entity.
//
// The zero value is Active so literal sprites participate immediately.
type Lifecycle uint8

const (
	// Active entities move, draw and can collide.
	Active Lifecycle = iota
	// Spawning entities were created during the current update pass. They
	// draw and can collide but are not moved until activated.
	Spawning
	// Destroyed is the tombstone. Nothing leaves it.
	Destroyed
)

func (l Lifecycle) String() string {
	switch l {
	case Active:
		return "active"
	case Spawning:
		return "spawning"
	case Destroyed:
		return "destroyed"
	default:
		return "unknown"
	}
}

// Updates reports whether the entity takes part in the update pass.
func (l Lifecycle) Updates() bool { return l == Active }

// Visible reports whether the entity takes part in the draw pass.
func (l Lifecycle) Visible() bool { return l != Destroyed }

// Alive reports whether the entity can still score or cause damage.
func (l Lifecycle) Alive() bool { return l != Destroyed }

// Activate promotes Spawning to Active. Other states are left untouched.
func (l *Lifecycle) Activate() {
	if *l == Spawning {
		*l = Active
	}
}

// Destroy moves to the tombstone state.
func (l *Lifecycle) Destroy() {
	*l = Destroyed
}
