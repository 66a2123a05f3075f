package game

import (
	"cmp"
	"fmt"
	"math"
	"slices"

	"github.com/mlange-42/ark/ecs"
	"github.com/rs/zerolog"
	"github.com/spacehole-rogue/spacegame/internal/viewport"
)

// Projectile constants.
const (
	ProjectileSpeed    = 10.0
	ProjectileLifetime = 10.0 // seconds
)

// Sprite extents in screen pixels.
var (
	ShipExtent       = Extent{W: 24, H: 24}
	StationExtent    = Extent{W: 48, H: 48}
	ProjectileExtent = Extent{W: 10, H: 10}
)

// TextSizer measures rendered text. The presentation layer provides it.
type TextSizer interface {
	Measure(s string) (w, h int)
}

// monoSizer is used when no presentation layer is attached.
type monoSizer struct{}

func (monoSizer) Measure(s string) (int, int) { return 7 * len(s), 13 }

// Intents are the abstract player inputs for one frame.
type Intents struct {
	MoveForward bool
	MoveBack    bool
	TurnLeft    bool
	TurnRight   bool
	Fire        bool
}

// Options configures a Sim.
type Options struct {
	Width, Height int
	DustCount     int
	DustSeed      uint64
	Text          TextSizer
	Logger        zerolog.Logger
}

// Renderable is one entry of the draw list handed to the presentation layer.
type Renderable struct {
	Entity   ecs.Entity
	Layer    Layer
	Sprite   SpriteKind
	Anchor   Anchor
	X, Y     float64
	W, H     float64
	Rotation float64
	Text     string

	serial uint64
}

// Sim is the game simulation. It owns the entity registry, the viewport and the dust
// field, and advances them once per frame.
type Sim struct {
	ECS      *ecs.World
	View     *viewport.Viewport
	Dust     *Dust
	Playtime float64 // seconds

	log    zerolog.Logger
	text   TextSizer
	serial uint64

	player ecs.Entity
	status ecs.Entity

	ships       *ecs.Map6[WorldPos, Heading, Throttle, ScreenPos, Extent, Drawable]
	stations    *ecs.Map5[WorldPos, ScreenPos, Extent, Drawable, Station]
	projectiles *ecs.Map7[WorldPos, Heading, Throttle, ScreenPos, Extent, Drawable, Lifetime]
	texts       *ecs.Map4[ScreenPos, Extent, Drawable, Label]
	indicators  *ecs.Map5[ScreenPos, Extent, Drawable, Label, Indicator]

	posMap     *ecs.Map[WorldPos]
	headingMap *ecs.Map[Heading]
	speedMap   *ecs.Map[Throttle]
	screenMap  *ecs.Map[ScreenPos]
	extentMap  *ecs.Map[Extent]
	labelMap   *ecs.Map[Label]
	playerMap  *ecs.Map[PlayerControlled]
	aiMap      *ecs.Map[ReactiveAI]

	aiFilter         *ecs.Filter6[WorldPos, Heading, Throttle, ScreenPos, Drawable, ReactiveAI]
	stationFilter    *ecs.Filter3[WorldPos, ScreenPos, Station]
	projectileFilter *ecs.Filter5[WorldPos, Heading, Throttle, ScreenPos, Lifetime]
	indicatorFilter  *ecs.Filter3[ScreenPos, Extent, Indicator]
	drawFilter       *ecs.Filter3[ScreenPos, Extent, Drawable]
}

// NewSim creates an empty simulation with a viewport of opts.Width x opts.Height.
func NewSim(opts Options) *Sim {
	w := ecs.NewWorld(256)

	text := opts.Text
	if text == nil {
		text = monoSizer{}
	}

	return &Sim{
		ECS:  w,
		View: viewport.New(opts.Width, opts.Height),
		Dust: NewDust(opts.Width, opts.Height, opts.DustCount, opts.DustSeed),
		log:  opts.Logger,
		text: text,

		ships:       ecs.NewMap6[WorldPos, Heading, Throttle, ScreenPos, Extent, Drawable](w),
		stations:    ecs.NewMap5[WorldPos, ScreenPos, Extent, Drawable, Station](w),
		projectiles: ecs.NewMap7[WorldPos, Heading, Throttle, ScreenPos, Extent, Drawable, Lifetime](w),
		texts:       ecs.NewMap4[ScreenPos, Extent, Drawable, Label](w),
		indicators:  ecs.NewMap5[ScreenPos, Extent, Drawable, Label, Indicator](w),

		posMap:     ecs.NewMap[WorldPos](w),
		headingMap: ecs.NewMap[Heading](w),
		speedMap:   ecs.NewMap[Throttle](w),
		screenMap:  ecs.NewMap[ScreenPos](w),
		extentMap:  ecs.NewMap[Extent](w),
		labelMap:   ecs.NewMap[Label](w),
		playerMap:  ecs.NewMap[PlayerControlled](w),
		aiMap:      ecs.NewMap[ReactiveAI](w),

		aiFilter:         ecs.NewFilter6[WorldPos, Heading, Throttle, ScreenPos, Drawable, ReactiveAI](w),
		stationFilter:    ecs.NewFilter3[WorldPos, ScreenPos, Station](w),
		projectileFilter: ecs.NewFilter5[WorldPos, Heading, Throttle, ScreenPos, Lifetime](w),
		indicatorFilter:  ecs.NewFilter3[ScreenPos, Extent, Indicator](w),
		drawFilter:       ecs.NewFilter3[ScreenPos, Extent, Drawable](w),
	}
}

func (s *Sim) nextDrawable(layer Layer, sprite SpriteKind, anchor Anchor) Drawable {
	s.serial++
	return Drawable{Layer: layer, Sprite: sprite, Anchor: anchor, Serial: s.serial}
}

func (s *Sim) spawnShip(x, y, direction float64, sprite SpriteKind) ecs.Entity {
	h := NewHeading(direction)
	draw := s.nextDrawable(LayerShip, sprite, AnchorCenter)
	draw.Rotation = h.SpriteRotation()
	pos := WorldPos{X: x, Y: y}
	screen := ScreenPos{X: s.View.ScreenX(x), Y: s.View.ScreenY(y)}
	ext := ShipExtent
	return s.ships.NewEntity(&pos, &h, &Throttle{}, &screen, &ext, &draw)
}

// SpawnPlayer creates the player ship in the named system and focuses the viewport on it.
func (s *Sim) SpawnPlayer(system string, x, y, direction float64) ecs.Entity {
	e := s.spawnShip(x, y, direction, SpritePlayer)
	s.playerMap.Add(e, &PlayerControlled{System: system})
	s.player = e

	pos, h, t, screen, _, _ := s.ships.Get(e)
	screen.X, screen.Y = s.View.Center()
	s.View.Update(pos.X, pos.Y, h.DX, h.DY, t.Speed)

	s.log.Debug().Str("system", system).Float64("x", x).Float64("y", y).Msg("player spawned")
	return e
}

// SpawnAI creates a reactive AI ship with an off-screen indicator labelled label.
func (s *Sim) SpawnAI(label string, x, y, direction float64) ecs.Entity {
	e := s.spawnShip(x, y, direction, SpriteNPC)
	s.aiMap.Add(e, &ReactiveAI{})
	s.SpawnIndicator(e, label)

	s.log.Debug().Str("label", label).Float64("x", x).Float64("y", y).Msg("ai ship spawned")
	return e
}

// SpawnStation creates a static station with an off-screen indicator showing its name.
func (s *Sim) SpawnStation(name string, x, y float64) ecs.Entity {
	pos := WorldPos{X: x, Y: y}
	screen := ScreenPos{X: s.View.ScreenX(x), Y: s.View.ScreenY(y)}
	ext := StationExtent
	draw := s.nextDrawable(LayerStructure, SpriteStation, AnchorTopLeft)
	e := s.stations.NewEntity(&pos, &screen, &ext, &draw, &Station{Name: name})
	s.SpawnIndicator(e, name)

	s.log.Debug().Str("name", name).Float64("x", x).Float64("y", y).Msg("station spawned")
	return e
}

// SpawnProjectile fires from owner. The owner's position and heading are copied once;
// the projectile does not follow the owner afterwards.
func (s *Sim) SpawnProjectile(owner ecs.Entity) ecs.Entity {
	pos := *s.posMap.Get(owner)
	h := *s.headingMap.Get(owner)
	screen := *s.screenMap.Get(owner)
	ext := ProjectileExtent
	draw := s.nextDrawable(LayerProjectile, SpriteProjectile, AnchorCenter)
	draw.Rotation = h.SpriteRotation()

	e := s.projectiles.NewEntity(&pos, &h, &Throttle{Speed: ProjectileSpeed}, &screen, &ext, &draw,
		&Lifetime{Max: ProjectileLifetime})

	s.log.Debug().Float64("direction", h.Direction).Msg("projectile fired")
	return e
}

// SpawnText places a fixed screen-space text.
func (s *Sim) SpawnText(content string, x, y float64) ecs.Entity {
	w, h := s.text.Measure(content)
	draw := s.nextDrawable(LayerText, SpriteText, AnchorTopLeft)
	return s.texts.NewEntity(&ScreenPos{X: x, Y: y}, &Extent{W: float64(w), H: float64(h)}, &draw,
		&Label{Text: content})
}

// SpawnIndicator attaches an edge indicator to target. It starts parked.
func (s *Sim) SpawnIndicator(target ecs.Entity, content string) ecs.Entity {
	w, h := s.text.Measure(content)
	draw := s.nextDrawable(LayerText, SpriteText, AnchorTopLeft)
	return s.indicators.NewEntity(&ScreenPos{X: Parked, Y: Parked}, &Extent{W: float64(w), H: float64(h)},
		&draw, &Label{Text: content}, &Indicator{Target: target})
}

// IndicatorsOf returns the indicators tracking target.
func (s *Sim) IndicatorsOf(target ecs.Entity) []ecs.Entity {
	var out []ecs.Entity
	q := s.indicatorFilter.Query()
	for q.Next() {
		_, _, ind := q.Get()
		if ind.Target == target {
			out = append(out, q.Entity())
		}
	}
	return out
}

// SetText replaces the content of a text entity and re-measures it.
func (s *Sim) SetText(e ecs.Entity, content string) {
	label := s.labelMap.Get(e)
	if label.Text == content {
		return
	}
	label.Text = content
	w, h := s.text.Measure(content)
	ext := s.extentMap.Get(e)
	ext.W, ext.H = float64(w), float64(h)
}

// Despawn removes e and every indicator tracking it. Must not be called while a
// query is open.
func (s *Sim) Despawn(e ecs.Entity) {
	if !s.Alive(e) {
		return
	}
	for _, t := range s.IndicatorsOf(e) {
		s.ECS.RemoveEntity(t)
	}
	s.ECS.RemoveEntity(e)
}

// Alive reports whether e is still registered.
func (s *Sim) Alive(e ecs.Entity) bool {
	return !e.IsZero() && s.ECS.Alive(e)
}

// Player returns the player entity.
func (s *Sim) Player() ecs.Entity { return s.player }

// Status returns the HUD status text entity, if the scene has one.
func (s *Sim) Status() ecs.Entity { return s.status }

// Ship returns copies of a ship's motion state.
func (s *Sim) Ship(e ecs.Entity) (WorldPos, Heading, Throttle) {
	return *s.posMap.Get(e), *s.headingMap.Get(e), *s.speedMap.Get(e)
}

// Screen returns an entity's screen position.
func (s *Sim) Screen(e ecs.Entity) ScreenPos { return *s.screenMap.Get(e) }

// Text returns the content of a text entity.
func (s *Sim) Text(e ecs.Entity) string { return s.labelMap.Get(e).Text }

// System returns the player's current system name.
func (s *Sim) System() string {
	if !s.Alive(s.player) {
		return ""
	}
	return s.playerMap.Get(s.player).System
}

// Projectiles returns the live projectile entities.
func (s *Sim) Projectiles() []ecs.Entity {
	var out []ecs.Entity
	q := s.projectileFilter.Query()
	for q.Next() {
		out = append(out, q.Entity())
	}
	return out
}

// Update advances the simulation one frame. frametime is the wall time since the
// previous frame in seconds.
func (s *Sim) Update(in Intents, frametime float64) {
	s.Playtime += frametime

	if s.Alive(s.player) {
		s.applyIntents(in)
		s.steerAI()
		s.updatePlayer()
	}
	s.Dust.Update(s.View)
	s.updateStations()
	s.updateProjectiles(frametime)
	s.updateAI()
	s.updateIndicators()
}

func (s *Sim) applyIntents(in Intents) {
	h := s.headingMap.Get(s.player)
	t := s.speedMap.Get(s.player)

	if in.MoveForward {
		t.Accelerate()
	} else if in.MoveBack {
		t.Decelerate()
	}
	if in.TurnLeft {
		h.Turn(-1)
	} else if in.TurnRight {
		h.Turn(1)
	}
	if in.Fire {
		s.SpawnProjectile(s.player)
	}

	if s.Alive(s.status) {
		pos := s.posMap.Get(s.player)
		s.SetText(s.status, fmt.Sprintf("%d, %d", int(math.RoundToEven(pos.X)), int(math.RoundToEven(pos.Y))))
	}
}

// steerAI runs before any ship moves, against the player's position from last frame.
func (s *Sim) steerAI() {
	player := *s.posMap.Get(s.player)
	q := s.aiFilter.Query()
	for q.Next() {
		pos, h, t, _, _, _ := q.Get()
		t.Accelerate()
		h.Turn(ReactiveTurn(*pos, player))
	}
}

// updatePlayer moves the player, pins it to the screen centre and recentres the viewport.
func (s *Sim) updatePlayer() {
	pos, h, t, screen, _, draw := s.ships.Get(s.player)
	Drift(pos, h, t)
	draw.Rotation = h.SpriteRotation()
	screen.X, screen.Y = s.View.Center()
	s.View.Update(pos.X, pos.Y, h.DX, h.DY, t.Speed)
}

func (s *Sim) updateStations() {
	q := s.stationFilter.Query()
	for q.Next() {
		pos, screen, _ := q.Get()
		screen.X = s.View.ScreenX(pos.X)
		screen.Y = s.View.ScreenY(pos.Y)
	}
}

func (s *Sim) updateProjectiles(frametime float64) {
	var expired []ecs.Entity
	q := s.projectileFilter.Query()
	for q.Next() {
		pos, h, t, screen, life := q.Get()
		life.Elapsed += frametime
		if life.Elapsed > life.Max {
			expired = append(expired, q.Entity())
			continue
		}
		pos.X += h.DX * t.Speed
		pos.Y += h.DY * t.Speed
		screen.X = s.View.ScreenX(pos.X)
		screen.Y = s.View.ScreenY(pos.Y)
	}
	for _, e := range expired {
		s.Despawn(e)
		s.log.Debug().Msg("projectile expired")
	}
}

func (s *Sim) updateAI() {
	q := s.aiFilter.Query()
	for q.Next() {
		pos, h, t, screen, draw, _ := q.Get()
		Drift(pos, h, t)
		draw.Rotation = h.SpriteRotation()
		screen.X = s.View.ScreenX(pos.X)
		screen.Y = s.View.ScreenY(pos.Y)
	}
}

func (s *Sim) updateIndicators() {
	var orphans []ecs.Entity
	w, h := float64(s.View.Width), float64(s.View.Height)

	q := s.indicatorFilter.Query()
	for q.Next() {
		screen, ext, ind := q.Get()
		if !s.ECS.Alive(ind.Target) {
			orphans = append(orphans, q.Entity())
			continue
		}
		tp := s.screenMap.Get(ind.Target)
		te := s.extentMap.Get(ind.Target)
		p := ProjectIndicator(w, h, Box{X: tp.X, Y: tp.Y, W: te.W, H: te.H}, ext.W, ext.H)
		if p.Vertical {
			s.log.Debug().Float64("x", tp.X).Float64("y", tp.Y).Msg("indicator target straight above or below")
		}
		screen.X, screen.Y = p.X, p.Y
	}
	for _, e := range orphans {
		s.ECS.RemoveEntity(e)
	}
}

// Renderables returns every drawable entity ordered by layer, then creation order.
func (s *Sim) Renderables() []Renderable {
	var out []Renderable
	q := s.drawFilter.Query()
	for q.Next() {
		screen, ext, draw := q.Get()
		r := Renderable{
			Entity:   q.Entity(),
			Layer:    draw.Layer,
			Sprite:   draw.Sprite,
			Anchor:   draw.Anchor,
			X:        screen.X,
			Y:        screen.Y,
			W:        ext.W,
			H:        ext.H,
			Rotation: draw.Rotation,
			serial:   draw.Serial,
		}
		out = append(out, r)
	}
	for i := range out {
		if s.labelMap.Has(out[i].Entity) {
			out[i].Text = s.labelMap.Get(out[i].Entity).Text
		}
	}
	slices.SortStableFunc(out, func(a, b Renderable) int {
		if c := cmp.Compare(a.Layer, b.Layer); c != 0 {
			return c
		}
		return cmp.Compare(a.serial, b.serial)
	})
	return out
}
