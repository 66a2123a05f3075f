package game

// Scene describes the starting contents of a Sim.
type Scene struct {
	System           string
	PlayerX, PlayerY float64
	NPCLabel         string
	NPCX, NPCY       float64
	StationName      string
	StationX         float64
	StationY         float64
}

// HUD text positions in screen pixels.
const (
	hudMargin    = 8
	hudTop       = 5
	hudLineStep  = 12
	statusOnLoad = "Game started"
)

// Populate spawns the player, one AI ship, one station and the HUD.
func (s *Sim) Populate(sc Scene) {
	s.SpawnPlayer(sc.System, sc.PlayerX, sc.PlayerY, 0)
	s.SpawnAI(sc.NPCLabel, sc.NPCX, sc.NPCY, 0)
	s.SpawnStation(sc.StationName, sc.StationX, sc.StationY)

	cx, _ := s.View.Center()
	s.status = s.SpawnText(statusOnLoad, cx, hudTop)
	s.SpawnText("Current system:", hudMargin, hudTop)
	s.SpawnText(sc.System, hudMargin, hudTop+hudLineStep)

	s.log.Info().
		Str("system", sc.System).
		Int("width", s.View.Width).
		Int("height", s.View.Height).
		Int("dust", len(s.Dust.Particles)).
		Msg("scene populated")
}
