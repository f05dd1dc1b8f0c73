package runner

// Kind is the category of a scrolling element. It decides the collision outcome.
type Kind uint8

const (
	KindObstacle Kind = iota // traffic cone, ends the session
	KindCoin                 // scores a point and shows a fact
	KindHeart                // shows the donation popup
)

// String returns a human-readable name for the kind.
func (k Kind) String() string {
	switch k {
	case KindObstacle:
		return "obstacle"
	case KindCoin:
		return "coin"
	case KindHeart:
		return "heart"
	default:
		return "unknown"
	}
}

// Element is one live scrolling object.
type Element struct {
	Kind      Kind
	Offset    float64 // Distance of the right edge from the field's right edge, grows as it moves left
	SpawnedAt int     // Tick the element was created in
}

// JumpPhase is the player's vertical state.
type JumpPhase uint8

const (
	Grounded JumpPhase = iota
	Ascending
	Descending
)

// String returns a human-readable name for the phase.
func (p JumpPhase) String() string {
	switch p {
	case Grounded:
		return "grounded"
	case Ascending:
		return "ascending"
	case Descending:
		return "descending"
	default:
		return "unknown"
	}
}

// Player is the runner sprite.
type Player struct {
	Offset float64 // Height above the field bottom, never below ground level
	Phase  JumpPhase

	// token identifies the pending jump sub-tick timer; 0 while grounded.
	token uint64
}

// Airborne reports whether a jump arc is in progress.
func (p Player) Airborne() bool {
	return p.Phase != Grounded
}

// Field is the play-field geometry the core computes against.
type Field struct {
	Width       float64
	GroundLevel float64
}
