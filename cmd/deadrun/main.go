package main

import (
	"fmt"
	"os"
	"runtime/debug"
	"strings"
	"time"

	"github.com/alecthomas/kong"
	"github.com/gdamore/tcell/v2"
	"github.com/rs/zerolog"

	"github.com/lixenwraith/deadrun/audio"
	"github.com/lixenwraith/deadrun/config"
	"github.com/lixenwraith/deadrun/constant"
	"github.com/lixenwraith/deadrun/core"
	"github.com/lixenwraith/deadrun/engine"
	"github.com/lixenwraith/deadrun/event"
	"github.com/lixenwraith/deadrun/input"
	"github.com/lixenwraith/deadrun/render"
	"github.com/lixenwraith/deadrun/scoreboard"
	"github.com/lixenwraith/deadrun/system"
)

const appVersion = "0.1.0"

// scoreTopN is how many scoreboard rows the menu shows
const scoreTopN = 5

var CLI struct {
	Config     string `help:"Directory containing ${config_file}." default:"." type:"existingdir"`
	Debug      bool   `help:"Enable debug logging and the on-screen overlay."`
	Seed       uint64 `help:"Road seed for the first run (0 picks one from the clock)."`
	Difficulty string `help:"Override the configured difficulty: easy, moderate or hard."`
	Mute       bool   `help:"Start with audio muted."`
}

// Game owns the terminal, the simulation context, and the supporting
// services for one process lifetime
type Game struct {
	screen   tcell.Screen
	ctx      *engine.GameContext
	renderer *render.Renderer
	handler  *input.Handler
	player   *audio.Engine
	scores   *scoreboard.Store
	log      zerolog.Logger

	// screenID mirrors the handler's parsing context; SetScreen drops
	// latched input, so it runs only on actual phase changes
	screenID input.Screen

	// nextSeed feeds the first StartRun, then zero (fresh road per run)
	nextSeed uint64
}

func NewGame(settings config.Settings, debugOverlay bool, logger zerolog.Logger) (*Game, error) {
	screen, err := tcell.NewScreen()
	if err != nil {
		return nil, fmt.Errorf("error creating screen: %w", err)
	}
	if err := screen.Init(); err != nil {
		return nil, fmt.Errorf("error initializing screen: %w", err)
	}
	screen.EnableMouse()

	width, height := screen.Size()

	world := engine.NewWorld()
	ctx := engine.NewGameContext(world, engine.NewMonotonicTimeProvider(), width, height)

	res := world.Resources
	res.Settings.Difficulty = core.ParseDifficulty(settings.Difficulty)
	res.Settings.PopulationCap = settings.PopulationCap
	res.Settings.GodMode = settings.GodMode

	world.AddSystem(system.NewVehicleSystem(world))
	world.AddSystem(system.NewProgressSystem(world))
	world.AddSystem(system.NewSpawnSystem(world))
	world.AddSystem(system.NewEnemySystem(world))
	world.AddSystem(system.NewProjectileSystem(world))
	world.AddSystem(system.NewCollisionSystem(world))

	g := &Game{
		screen:   screen,
		ctx:      ctx,
		handler:  input.NewHandler(),
		log:      logger,
		screenID: input.ScreenMenu,
		nextSeed: settings.Seed,
	}

	audioConfig := audio.DefaultConfig()
	audioConfig.Enabled = settings.AudioEnabled
	player := audio.NewEngine(audioConfig)
	if err := player.Start(); err != nil {
		logger.Warn().Err(err).Msg("Audio unavailable, continuing without sound")
	} else {
		res.Audio.Player = player
		g.player = player
		ctx.IsMuted.Store(player.IsMuted())
	}

	scores, err := scoreboard.Open(settings.ScorePath, logger)
	if err != nil {
		// Runs go unrecorded but the game still plays
		logger.Warn().Err(err).Str("path", settings.ScorePath).Msg("Scoreboard unavailable")
		scores = nil
	}
	g.scores = scores

	g.renderer = render.NewRenderer(screen, width, height, debugOverlay)
	g.handler.ScreenToWorld = g.renderer.AimTransform(ctx)
	g.refreshScores()

	return g, nil
}

func (g *Game) run() {
	ticker := time.NewTicker(constant.FrameUpdateInterval)
	defer ticker.Stop()

	eventChan := make(chan tcell.Event, 100)
	go func() {
		for {
			eventChan <- g.screen.PollEvent()
		}
	}()

	for {
		select {
		case ev := <-eventChan:
			if !g.handleEvent(ev) {
				return
			}

		case <-ticker.C:
			g.tick()
		}
	}
}

// handleEvent routes one terminal event; returns false on quit
func (g *Game) handleEvent(ev tcell.Event) bool {
	switch g.handler.HandleEvent(ev, time.Now()) {
	case input.CommandQuit:
		return false
	case input.CommandResize:
		g.handleResize()
	case input.CommandStart:
		g.startRun()
	case input.CommandPauseToggle:
		g.togglePause()
	case input.CommandMenu:
		g.quitToMenu()
	case input.CommandToggleMute:
		g.ctx.ToggleAudioMute()
	case input.CommandCycleDifficulty:
		g.cycleDifficulty()
	case input.CommandCyclePopulation:
		g.cyclePopulation()
	case input.CommandToggleGodMode:
		g.toggleGodMode()
	}
	g.syncScreen()
	return true
}

// tick runs one simulation update when driving and draws the frame.
// Simulation halts while paused and outside the driving phase; the
// pausable clock keeps game time flat across pauses.
func (g *Game) tick() {
	if g.ctx.State.GetPhase() == engine.PhaseDriving && !g.ctx.IsPaused.Load() {
		res := g.ctx.World.Resources
		g.handler.Apply(res.Input, time.Now())

		frame := g.ctx.IncrementFrameNumber()
		res.Time.Update(g.ctx.PausableClock.Now(), g.ctx.PausableClock.RealTime(),
			constant.FrameUpdateInterval, frame)
		g.ctx.World.Update(constant.FrameUpdateInterval)
	}

	g.drainEvents()
	g.syncScreen()
	g.renderer.RenderFrame(g.ctx, constant.FrameUpdateInterval)
}

// drainEvents is the queue's single consumer, routing audio cues and the
// end-of-run transition
func (g *Game) drainEvents() {
	for {
		ev, ok := g.ctx.ConsumeEvent()
		if !ok {
			return
		}

		switch ev.Type {
		case event.EventSoundRequest:
			if p, ok := ev.Payload.(*event.SoundRequestPayload); ok && g.player != nil {
				g.player.Play(p.Sound)
			}
		case event.EventTurboFired:
			if g.player != nil {
				g.player.Play(core.SoundTurbo)
			}
		case event.EventRunEnded:
			if p, ok := ev.Payload.(*event.RunEndedPayload); ok {
				g.finishRun(p)
			}
		}
	}
}

// finishRun records the completed run and flips to the end screen. Both a
// win and a loss can land in the same tick's queue; the phase transition
// accepts only the first.
func (g *Game) finishRun(p *event.RunEndedPayload) {
	if !g.ctx.FinishRun(p.Won) {
		return
	}

	settings := g.ctx.World.Resources.Settings
	rec := scoreboard.RunRecord{
		Won:        p.Won,
		Score:      p.Score,
		Progress:   p.Progress,
		Difficulty: settings.Difficulty.String(),
		Duration:   p.Duration,
		Seed:       g.ctx.State.GetRunSeed(),
	}
	if err := g.scores.Insert(rec); err != nil {
		g.log.Warn().Err(err).Msg("Failed to record run")
	}

	g.log.Info().
		Bool("won", p.Won).
		Uint32("score", p.Score).
		Float64("progress", p.Progress).
		Dur("duration", p.Duration).
		Msg("Run ended")

	g.refreshScores()
}

func (g *Game) startRun() {
	if g.ctx.IsPaused.Load() {
		g.ctx.SetPaused(false)
	}

	seed := g.nextSeed
	g.nextSeed = 0
	if g.ctx.StartRun(seed) {
		g.log.Info().
			Uint64("seed", g.ctx.State.GetRunSeed()).
			Str("difficulty", g.ctx.World.Resources.Settings.Difficulty.String()).
			Msg("Run started")
	}
}

func (g *Game) togglePause() {
	if g.ctx.State.GetPhase() != engine.PhaseDriving {
		return
	}
	g.ctx.SetPaused(!g.ctx.IsPaused.Load())
}

func (g *Game) quitToMenu() {
	if g.ctx.IsPaused.Load() {
		g.ctx.SetPaused(false)
	}
	g.ctx.QuitToMenu()
}

func (g *Game) cycleDifficulty() {
	settings := g.ctx.World.Resources.Settings
	switch settings.Difficulty {
	case core.DifficultyEasy:
		settings.Difficulty = core.DifficultyModerate
	case core.DifficultyModerate:
		settings.Difficulty = core.DifficultyHard
	default:
		settings.Difficulty = core.DifficultyEasy
	}
}

func (g *Game) cyclePopulation() {
	settings := g.ctx.World.Resources.Settings
	settings.PopulationCap = nextPopulationCap(settings.PopulationCap)
}

// nextPopulationCap advances through the preset ladder; off-ladder values
// from the config file snap to the smallest preset
func nextPopulationCap(current int) int {
	for i, preset := range constant.PopulationLadder {
		if preset == current {
			return constant.PopulationLadder[(i+1)%len(constant.PopulationLadder)]
		}
	}
	return constant.PopulationLadder[0]
}

func (g *Game) toggleGodMode() {
	settings := g.ctx.World.Resources.Settings
	settings.GodMode = !settings.GodMode
}

func (g *Game) handleResize() {
	g.screen.Sync()
	width, height := g.screen.Size()
	g.ctx.Width, g.ctx.Height = width, height
	g.ctx.HandleResize()
	g.renderer.Resize(width, height)
}

// syncScreen realigns the input parsing context with the game phase
func (g *Game) syncScreen() {
	want := input.ScreenMenu
	switch g.ctx.State.GetPhase() {
	case engine.PhaseDriving:
		if g.ctx.IsPaused.Load() {
			want = input.ScreenPause
		} else {
			want = input.ScreenDrive
		}
	case engine.PhaseWon, engine.PhaseLost:
		want = input.ScreenEnd
	}

	if want != g.screenID {
		g.screenID = want
		g.handler.SetScreen(want)
	}
}

// refreshScores reloads the menu scoreboard from the store
func (g *Game) refreshScores() {
	rows, err := g.scores.Top(scoreTopN)
	if err != nil {
		g.log.Warn().Err(err).Msg("Failed to load scoreboard")
		return
	}

	display := make([]render.ScoreRow, 0, len(rows))
	for _, row := range rows {
		display = append(display, render.ScoreRow{
			PlayedAt:   row.PlayedAt,
			Won:        row.Won,
			Score:      row.Score,
			Progress:   row.Progress,
			Difficulty: row.Difficulty,
		})
	}
	g.renderer.SetScoreRows(display)
}

func (g *Game) cleanup() {
	if g.player != nil {
		g.player.Stop()
	}
	if err := g.scores.Close(); err != nil {
		g.log.Warn().Err(err).Msg("Failed to close scoreboard")
	}
	g.screen.Fini()
	g.log.Info().Msg("Shutdown complete")
}

func parseLogLevel(s string, debugFlag bool) zerolog.Level {
	if debugFlag {
		return zerolog.DebugLevel
	}
	switch strings.ToLower(s) {
	case "debug":
		return zerolog.DebugLevel
	case "warn":
		return zerolog.WarnLevel
	case "error":
		return zerolog.ErrorLevel
	default:
		return zerolog.InfoLevel
	}
}

func main() {
	kong.Parse(&CLI,
		kong.Name("deadrun"),
		kong.Description("a terminal survival driving game"),
		kong.UsageOnError(),
		kong.ConfigureHelp(kong.HelpOptions{
			Compact: true,
			Summary: true,
		}),
		kong.Vars{"config_file": config.FileName})

	if err := config.Load(CLI.Config); err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load configuration: %v\n", err)
		os.Exit(1)
	}
	settings := config.GetSettings()
	if CLI.Seed != 0 {
		settings.Seed = CLI.Seed
	}
	if CLI.Difficulty != "" {
		settings.Difficulty = CLI.Difficulty
	}
	if CLI.Mute {
		settings.AudioEnabled = false
	}

	// The terminal belongs to tcell, so logs go to a file
	logFile, err := os.OpenFile(settings.LogFile, os.O_RDWR|os.O_CREATE|os.O_APPEND, 0666)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to open log file: %v\n", err)
		os.Exit(1)
	}
	defer logFile.Close()

	zerolog.SetGlobalLevel(parseLogLevel(settings.LogLevel, CLI.Debug))
	logger := zerolog.New(zerolog.ConsoleWriter{
		Out:        logFile,
		TimeFormat: time.RFC3339,
		NoColor:    true,
	}).With().Timestamp().Logger()

	logger.Info().
		Str("version", appVersion).
		Str("difficulty", settings.Difficulty).
		Uint64("seed", settings.Seed).
		Bool("audio", settings.AudioEnabled).
		Msg("Starting deadrun")

	game, err := NewGame(settings, CLI.Debug, logger)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize: %v\n", err)
		os.Exit(1)
	}
	defer game.cleanup()

	// Restore the terminal before the stack trace prints, or the panic
	// drowns in the alternate screen
	defer func() {
		if r := recover(); r != nil {
			game.screen.Fini()
			fmt.Fprintf(os.Stderr, "deadrun crashed: %v\n", r)
			fmt.Fprintf(os.Stderr, "Stack Trace:\n%s\n", debug.Stack())
			os.Exit(1)
		}
	}()

	game.run()
}
