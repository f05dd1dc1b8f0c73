package runner

import (
	"slices"
	"testing"

	"github.com/factrunner/factrunner/internal/config"
	"github.com/factrunner/factrunner/internal/core"
)

func newDetector() *CollisionDetector {
	cfg := config.DefaultRunnerConfig()
	return NewCollisionDetector(cfg.Player, cfg.Elements)
}

var testField = Field{Width: 640, GroundLevel: 5}

func TestElementRect(t *testing.T) {
	d := newDetector()

	got := d.ElementRect(Element{Kind: KindObstacle, Offset: 0}, testField)
	if want := core.NewRect(610, 5, 30, 40); got != want {
		t.Errorf("obstacle at offset 0 = %+v, expected %+v", got, want)
	}

	got = d.ElementRect(Element{Kind: KindCoin, Offset: 100}, testField)
	if want := core.NewRect(510, 5, 30, 30); got != want {
		t.Errorf("coin at offset 100 = %+v, expected %+v", got, want)
	}

	// Negative offsets are still off-screen to the right.
	got = d.ElementRect(Element{Kind: KindHeart, Offset: -150}, testField)
	if got.X != 760 {
		t.Errorf("fresh heart X = %v, expected 760", got.X)
	}
}

func TestCollisionOverlap(t *testing.T) {
	tests := []struct {
		name   string
		offset float64
		player float64
		want   bool
	}{
		{"far right", 0, 5, false},
		{"touching player's right edge", 520, 5, false},
		{"just overlapping", 521, 5, true},
		{"fully overlapping", 555, 5, true},
		{"just overlapping left", 589, 5, true},
		{"touching player's left edge", 590, 5, false},
		{"player above obstacle", 555, 45, false},
		{"player grazing obstacle top", 555, 44, true},
	}

	d := newDetector()
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			st := &SessionState{
				Tick:     10,
				Player:   Player{Offset: tc.player},
				Elements: []Element{{Kind: KindObstacle, Offset: tc.offset}},
			}
			hits := d.Step(st, testField)
			if got := len(hits) == 1; got != tc.want {
				t.Errorf("hit = %v, expected %v", got, tc.want)
			}
		})
	}
}

func TestCollisionStopsAtObstacle(t *testing.T) {
	tests := []struct {
		name     string
		elements []Element
		hits     []Kind
		left     []Kind
	}{
		{
			name: "coin then obstacle then heart",
			elements: []Element{
				{Kind: KindCoin, Offset: 550},
				{Kind: KindObstacle, Offset: 555},
				{Kind: KindHeart, Offset: 560},
			},
			hits: []Kind{KindCoin, KindObstacle},
			left: []Kind{KindHeart},
		},
		{
			name: "obstacle first",
			elements: []Element{
				{Kind: KindObstacle, Offset: 550},
				{Kind: KindCoin, Offset: 555},
			},
			hits: []Kind{KindObstacle},
			left: []Kind{KindCoin},
		},
		{
			name: "coin and heart",
			elements: []Element{
				{Kind: KindHeart, Offset: 100},
				{Kind: KindCoin, Offset: 550},
				{Kind: KindHeart, Offset: 560},
			},
			hits: []Kind{KindCoin, KindHeart},
			left: []Kind{KindHeart},
		},
	}

	d := newDetector()
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			st := &SessionState{Tick: 10, Player: Player{Offset: 5}, Elements: tc.elements}
			hits := d.Step(st, testField)
			if !slices.Equal(hits, tc.hits) {
				t.Errorf("hits = %v, expected %v", hits, tc.hits)
			}
			var left []Kind
			for _, el := range st.Elements {
				left = append(left, el.Kind)
			}
			if !slices.Equal(left, tc.left) {
				t.Errorf("remaining = %v, expected %v", left, tc.left)
			}
		})
	}
}

func TestCollisionSkipsFreshElements(t *testing.T) {
	d := newDetector()
	st := &SessionState{
		Tick:     10,
		Player:   Player{Offset: 5},
		Elements: []Element{{Kind: KindObstacle, Offset: 555, SpawnedAt: 10}},
	}
	if hits := d.Step(st, testField); len(hits) != 0 {
		t.Errorf("fresh element collided: %v", hits)
	}
	if len(st.Elements) != 1 {
		t.Error("fresh element was removed")
	}
}
