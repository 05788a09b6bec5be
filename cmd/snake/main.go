package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"runtime/debug"
	"time"

	"github.com/gdamore/tcell/v2"
	"golang.org/x/term"

	"github.com/lixenwraith/vi-snake/config"
	"github.com/lixenwraith/vi-snake/constants"
	"github.com/lixenwraith/vi-snake/engine"
	"github.com/lixenwraith/vi-snake/modes"
	"github.com/lixenwraith/vi-snake/render"
)

var (
	debugFlag = flag.Bool("debug", false, "Write logs to logs/snake.log")
	colorFlag = flag.String("color", "", "Color mode: auto, truecolor, 256, mono")
	asciiFlag = flag.Bool("ascii", false, "Draw the border with ASCII characters")
	envFlag   = flag.String("env", "", "Env file with SNAKE_* settings (default .env if present)")
)

func main() {
	flag.Parse()

	cfg, err := config.Load(*envFlag)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load config: %v\n", err)
		os.Exit(1)
	}
	applyFlags(&cfg)

	if logFile := setupLogging(cfg.Debug); logFile != nil {
		defer logFile.Close()
	}

	stats, err := run(cfg)
	if err != nil {
		fmt.Fprintf(os.Stderr, "snake: %v\n", err)
		os.Exit(1)
	}

	if s := render.Summary(stats.GamesPlayed, stats.BestScore, stats.LastScore); s != "" {
		fmt.Println(s)
	}
}

// applyFlags overrides config with flags given explicitly on the command line
func applyFlags(cfg *config.Config) {
	flag.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "debug":
			cfg.Debug = *debugFlag
		case "color":
			cfg.ColorMode = *colorFlag
		case "ascii":
			cfg.ASCII = *asciiFlag
		}
	})
}

// run owns the terminal for the lifetime of the application and returns the session stats
func run(cfg config.Config) (stats engine.Stats, err error) {
	if !term.IsTerminal(int(os.Stdout.Fd())) {
		return stats, fmt.Errorf("stdout is not a terminal")
	}

	screen, err := tcell.NewScreen()
	if err != nil {
		return stats, fmt.Errorf("create screen: %w", err)
	}
	if err := screen.Init(); err != nil {
		return stats, fmt.Errorf("init screen: %w", err)
	}

	// Panic Recovery: the deferred Fini below restores the terminal before this runs
	defer func() {
		if r := recover(); r != nil {
			fmt.Fprintf(os.Stderr, "\n\x1b[31mSNAKE CRASHED: %v\x1b[0m\n", r)
			fmt.Fprintf(os.Stderr, "Stack Trace:\n%s\n", debug.Stack())
			os.Exit(1)
		}
	}()
	defer screen.Fini()

	screen.HideCursor()
	palette := render.NewPalette(render.ParseColorMode(cfg.ColorMode, screen.Colors()))

	width, height := screen.Size()
	game := engine.NewGame(width-1, height-1, engine.NewCoordinateGenerator(), engine.NewMonotonicTimeProvider())
	router := modes.NewRouter(
		modes.NewMenuScreen(palette),
		modes.NewInfoScreen(palette, game.Stats),
		modes.NewGameScreen(game, palette),
		palette,
		cfg.ASCII,
	)
	input := modes.NewInputHandler(router)
	log.Printf("snake: started on %dx%d, %d colors", width, height, screen.Colors())

	events := make(chan tcell.Event, constants.EventChannelSize)
	go func() {
		for {
			ev := screen.PollEvent()
			// nil after Fini
			if ev == nil {
				return
			}
			events <- ev
		}
	}()

	for {
		// Drain pending input without blocking
	poll:
		for {
			select {
			case ev := <-events:
				if !input.HandleEvent(ev) {
					log.Printf("snake: exit from %v", router.State())
					return game.Stats(), nil
				}
				if _, ok := ev.(*tcell.EventResize); ok {
					screen.Sync()
				}
			default:
				break poll
			}
		}

		router.Update()
		router.Render(screen)
		screen.Show()

		time.Sleep(constants.FrameInterval)
	}
}
