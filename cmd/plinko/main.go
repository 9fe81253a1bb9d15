package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/google/uuid"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/lixenwraith/plinko/audio"
	"github.com/lixenwraith/plinko/config"
	"github.com/lixenwraith/plinko/core"
	"github.com/lixenwraith/plinko/engine"
	"github.com/lixenwraith/plinko/input"
	"github.com/lixenwraith/plinko/monitor"
	"github.com/lixenwraith/plinko/physics"
	"github.com/lixenwraith/plinko/render"
	"github.com/lixenwraith/plinko/system"
	"github.com/lixenwraith/plinko/vmath"
)

var (
	configFlag  = flag.String("config", "", "Config file (.toml, .yaml, .yml)")
	debugFlag   = flag.Bool("debug", false, "Write debug logs to logs/plinko.log")
	seedFlag    = flag.Uint64("seed", 0, "Random seed for jitter and shake; 0 picks one from the clock")
	monitorFlag = flag.String("monitor", "", "Serve the read-only monitor on this address, e.g. :8080")
	muteFlag    = flag.Bool("mute", false, "Start with sound muted")
)

// errQuit ends the session from the input loop
var errQuit = errors.New("quit")

func main() {
	flag.Parse()
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "plinko: %v\n", err)
		os.Exit(1)
	}
}

func loadConfig() (*config.Config, error) {
	cfg, err := config.Load(*configFlag)
	if err != nil {
		return nil, err
	}
	if err := cfg.LoadEnv(".env"); err != nil {
		return nil, err
	}

	// Flags override file and environment
	flag.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "seed":
			cfg.Engine.Seed = *seedFlag
		case "monitor":
			cfg.Monitor.Addr = *monitorFlag
		case "mute":
			cfg.Audio.Enabled = !*muteFlag
		}
	})

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func run() error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	keys, err := input.ApplyBindings(input.DefaultKeyTable(), cfg.Keys)
	if err != nil {
		return err
	}

	session := uuid.NewString()
	logger, logFile, err := setupLogging(*debugFlag)
	if err != nil {
		return err
	}
	if logFile != nil {
		defer logFile.Close()
	}
	logger = logger.With(zap.String("session", session))
	defer logger.Sync()

	world, err := engine.NewGameWorld(cfg, physics.NewWorld(engine.SolverConfig(cfg)))
	if err != nil {
		return err
	}
	engine.SetLogger(world, logger)
	res := engine.GetResourceStore(world)
	res.Status.Labels.Get("session.id").Store(session)

	player := audio.NewPlayer(cfg.Audio, logger)
	player.Start()
	defer player.Stop()
	engine.SetAudio(world, player)

	if err := system.Install(world); err != nil {
		return err
	}
	logger.Info("session started",
		zap.Uint64("seed", res.Rand.Seed),
		zap.Int("systems", len(world.Systems())),
		zap.Bool("grant_allowed", cfg.Economy.AllowGrant),
	)

	screen, err := tcell.NewScreen()
	if err != nil {
		return fmt.Errorf("create screen: %w", err)
	}
	if err := screen.Init(); err != nil {
		return fmt.Errorf("init screen: %w", err)
	}
	defer screen.Fini()

	// Crashed goroutines must leave a usable terminal behind
	core.SetCrashHandler(func(any) { screen.Fini() })

	scheduler, tickDone := engine.NewClockScheduler(world, engine.NewPausableClock(), cfg.Engine.TickInterval.Duration)
	renderer := render.NewRenderer(screen, res.Board.Board, vmath.V2(cfg.Ball.DropX, cfg.Ball.DropY))
	machine := input.NewMachine(keys)
	controller := input.NewController(world, scheduler)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	g, gctx := errgroup.WithContext(ctx)

	g.Go(guarded(func() error { return scheduler.Run(gctx) }))
	if cfg.Monitor.Addr != "" {
		srv := monitor.NewServer(world, session)
		g.Go(guarded(func() error { return srv.Run(gctx, cfg.Monitor.Addr) }))
	}
	g.Go(guarded(func() error {
		return uiLoop(gctx, screen, renderer, machine, controller, world, tickDone, cfg.Engine.FrameInterval.Duration)
	}))

	err = g.Wait()
	played, dropped := player.Stats()
	logger.Info("session ended",
		zap.Float64("balance", res.Economy.Balance()),
		zap.Uint64("ticks", scheduler.TickCount()),
		zap.Uint64("sounds_played", played),
		zap.Uint64("sounds_dropped", dropped),
	)
	if errors.Is(err, errQuit) {
		return nil
	}
	return err
}

// guarded routes panics in errgroup goroutines through the crash handler
func guarded(fn func() error) func() error {
	return func() error {
		defer func() {
			if r := recover(); r != nil {
				core.HandleCrash(r)
			}
		}()
		return fn()
	}
}

// uiLoop owns the screen: polls keys, applies intents and draws frames
// Returns errQuit when the player quits, which cancels the group
func uiLoop(
	ctx context.Context,
	screen tcell.Screen,
	renderer *render.Renderer,
	machine *input.Machine,
	controller *input.Controller,
	world *engine.World,
	tickDone <-chan struct{},
	frameInterval time.Duration,
) error {
	events := make(chan tcell.Event, 256)
	core.Go(func() {
		for {
			ev := screen.PollEvent()
			// nil after Fini
			if ev == nil {
				return
			}
			select {
			case events <- ev:
			case <-ctx.Done():
				return
			}
		}
	})

	frameTicker := time.NewTicker(frameInterval)
	defer frameTicker.Stop()

	dirty := true
	for {
		select {
		case <-ctx.Done():
			return nil

		case ev := <-events:
			intent := machine.Process(ev)
			if intent == input.IntentResize {
				screen.Sync()
				renderer.Resize()
			}
			if controller.Apply(intent) {
				return errQuit
			}
			dirty = true

		case <-tickDone:
			dirty = true

		case <-frameTicker.C:
			if dirty {
				renderer.Draw(engine.TakeSnapshot(world))
				dirty = false
			}
		}
	}
}
