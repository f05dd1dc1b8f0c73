package runner

// ScrollEngine moves every live element left each tick and retires the
// ones that have left the field.
type ScrollEngine struct {
	boost        float64
	retireMargin float64
}

// NewScrollEngine creates a scroll engine.
func NewScrollEngine(boost, retireMargin float64) *ScrollEngine {
	return &ScrollEngine{boost: boost, retireMargin: retireMargin}
}

// Step advances all elements and returns how many were retired.
// Elements spawned during the current tick start moving on the next one.
func (e *ScrollEngine) Step(st *SessionState, field Field, accelerating bool) int {
	speed := st.Speed
	if accelerating {
		speed += e.boost
	}
	limit := field.Width + e.retireMargin

	kept := st.Elements[:0]
	for _, el := range st.Elements {
		if el.SpawnedAt != st.Tick {
			el.Offset += speed
		}
		if el.Offset > limit {
			continue
		}
		kept = append(kept, el)
	}
	retired := len(st.Elements) - len(kept)
	st.Elements = kept
	return retired
}
