package game

import "github.com/mlange-42/ark/ecs"

// Layer is the draw depth of an entity. Higher layers are drawn on top.
type Layer uint8

const (
	LayerDust       Layer = 8
	LayerStructure  Layer = 9
	LayerProjectile Layer = 9
	LayerShip       Layer = 10
	LayerText       Layer = 11
)

// SpriteKind tells the presentation layer which image an entity uses.
type SpriteKind uint8

const (
	SpritePlayer SpriteKind = iota
	SpriteNPC
	SpriteStation
	SpriteProjectile
	SpriteText
)

// Anchor says which point of the sprite ScreenPos refers to.
type Anchor uint8

const (
	AnchorCenter Anchor = iota
	AnchorTopLeft
)

// WorldPos is a position in world units.
type WorldPos struct {
	X, Y float64
}

// ScreenPos is derived from WorldPos through the viewport every frame,
// except for HUD text which is placed directly in screen space.
type ScreenPos struct {
	X, Y float64
}

// Extent is the visual size used for visibility tests and draw rectangles.
type Extent struct {
	W, H float64
}

// Drawable carries render ordering and presentation hints.
type Drawable struct {
	Layer    Layer
	Sprite   SpriteKind
	Anchor   Anchor
	Rotation float64 // degrees, counter-clockwise
	Serial   uint64  // creation order, breaks ties within a layer
}

// PlayerControlled marks the ship driven by input intents. It also drives the viewport.
type PlayerControlled struct {
	System string
}

// ReactiveAI marks a ship steered by the proximity rule.
type ReactiveAI struct{}

// Station is a static structure.
type Station struct {
	Name string
}

// Lifetime expires an entity once Elapsed exceeds Max.
type Lifetime struct {
	Elapsed float64
	Max     float64
}

// Indicator points at an off-screen target from the viewport edge.
type Indicator struct {
	Target ecs.Entity
}

// Label is displayable text.
type Label struct {
	Text string
}
