package runner

import (
	"github.com/factrunner/factrunner/internal/config"
	"github.com/factrunner/factrunner/internal/core"
)

// CollisionDetector tests the player's box against every element's box.
// Geometry comes from the core's own position model, never from rendering.
type CollisionDetector struct {
	player   config.BoxConfig
	elements config.ElementsConfig
}

// NewCollisionDetector creates a detector for the configured boxes.
func NewCollisionDetector(player config.BoxConfig, elements config.ElementsConfig) *CollisionDetector {
	return &CollisionDetector{player: player, elements: elements}
}

// PlayerRect returns the player's box.
func (d *CollisionDetector) PlayerRect(p Player) core.Rect {
	return core.NewRect(d.player.X, p.Offset, d.player.Width, d.player.Height)
}

// ElementRect returns an element's box. Its right edge sits Offset units
// left of the field's right edge.
func (d *CollisionDetector) ElementRect(el Element, field Field) core.Rect {
	box := d.box(el.Kind)
	right := field.Width - el.Offset
	return core.NewRect(right-box.Width, field.GroundLevel+box.Elevation, box.Width, box.Height)
}

// Step removes every element overlapping the player and returns their
// kinds in iteration order. An obstacle ends the scan: elements after it
// are left untouched. Elements spawned this tick are not tested.
func (d *CollisionDetector) Step(st *SessionState, field Field) []Kind {
	playerRect := d.PlayerRect(st.Player)

	var hits []Kind
	kept := st.Elements[:0]
	for i, el := range st.Elements {
		if el.SpawnedAt == st.Tick || !playerRect.Intersects(d.ElementRect(el, field)) {
			kept = append(kept, el)
			continue
		}
		hits = append(hits, el.Kind)
		if el.Kind == KindObstacle {
			kept = append(kept, st.Elements[i+1:]...)
			break
		}
	}
	st.Elements = kept
	return hits
}

func (d *CollisionDetector) box(k Kind) config.BoxConfig {
	switch k {
	case KindCoin:
		return d.elements.Coin
	case KindHeart:
		return d.elements.Heart
	default:
		return d.elements.Obstacle
	}
}
