package main

import (
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/rs/zerolog"
	"github.com/spacehole-rogue/spacegame/internal/config"
	"github.com/spacehole-rogue/spacegame/internal/game"
	"github.com/spacehole-rogue/spacegame/internal/logging"
	"github.com/spacehole-rogue/spacegame/internal/render"
)

// Game is the Ebitengine game struct. It owns rendering and input.
// All gameplay state lives in sim.
type Game struct {
	sim      *game.Sim
	renderer *render.Renderer
	clock    *frameClock
	log      zerolog.Logger

	width, height int
}

func NewGame(cfg *config.Config, log zerolog.Logger) *Game {
	width, height := cfg.ViewportSize()
	text := render.NewText()

	seed := cfg.Dust.Seed
	if seed == 0 {
		seed = uint64(time.Now().UnixNano())
	}

	sim := game.NewSim(game.Options{
		Width:     width,
		Height:    height,
		DustCount: cfg.Dust.Count,
		DustSeed:  seed,
		Text:      text,
		Logger:    log,
	})
	sim.Populate(game.Scene{
		System:      cfg.Player.System,
		PlayerX:     cfg.Player.X,
		PlayerY:     cfg.Player.Y,
		NPCLabel:    cfg.NPC.Label,
		NPCX:        cfg.NPC.X,
		NPCY:        cfg.NPC.Y,
		StationName: cfg.Station.Name,
		StationX:    cfg.Station.X,
		StationY:    cfg.Station.Y,
	})

	return &Game{
		sim:      sim,
		renderer: render.NewRenderer(text, width, height),
		clock:    newFrameClock(time.Now),
		log:      log,
		width:    width,
		height:   height,
	}
}

// readIntents polls the keyboard. Fire is edge-triggered: one shot per press.
func readIntents() game.Intents {
	return game.Intents{
		MoveForward: ebiten.IsKeyPressed(ebiten.KeyW) || ebiten.IsKeyPressed(ebiten.KeyArrowUp),
		MoveBack:    ebiten.IsKeyPressed(ebiten.KeyS) || ebiten.IsKeyPressed(ebiten.KeyArrowDown),
		TurnLeft:    ebiten.IsKeyPressed(ebiten.KeyA) || ebiten.IsKeyPressed(ebiten.KeyArrowLeft),
		TurnRight:   ebiten.IsKeyPressed(ebiten.KeyD) || ebiten.IsKeyPressed(ebiten.KeyArrowRight),
		Fire:        inpututil.IsKeyJustPressed(ebiten.KeySpace),
	}
}

func (g *Game) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		g.log.Info().Float64("playtime", g.sim.Playtime).Msg("quit")
		return ebiten.Termination
	}

	g.sim.Update(readIntents(), g.clock.Tick())
	return nil
}

func (g *Game) Draw(screen *ebiten.Image) {
	g.renderer.Draw(screen, g.sim)
}

// Layout returns the logical viewport; Ebitengine scales it up to the window.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return g.width, g.height
}

func run(configDir string) error {
	cfg, err := config.Load(configDir)
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}
	log := logging.Setup(cfg.LogLevel, os.Stdout)

	ebiten.SetWindowSize(cfg.Window.Width, cfg.Window.Height)
	ebiten.SetWindowTitle(cfg.Window.Title)
	ebiten.SetFullscreen(cfg.Window.Fullscreen)
	ebiten.SetTPS(cfg.FPS)

	g := NewGame(cfg, log)
	log.Info().Int("tps", cfg.FPS).Str("system", cfg.Player.System).Msg("starting")
	if err := ebiten.RunGame(g); err != nil {
		return fmt.Errorf("run game: %w", err)
	}
	return nil
}

func main() {
	configDir := flag.String("config", ".", "directory containing "+config.FileName)
	flag.Parse()

	if err := run(*configDir); err != nil {
		fatalLog := zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).With().Timestamp().Logger()
		fatalLog.Fatal().Err(err).Msg("spacegame stopped")
	}
}
