package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/rook-computer/knobkit/internal/app"
	"github.com/rook-computer/knobkit/internal/atlas"
	"github.com/rook-computer/knobkit/internal/config"
)

func main() {
	os.Exit(run())
}

func run() int {
	defaults, err := config.ViewerFromEnv()
	if err != nil {
		fmt.Fprintln(os.Stderr, "config error:", err)
		return 2
	}

	// Flags
	cfg := defaults
	flag.StringVar(&cfg.Atlas, "atlas", defaults.Atlas, "sprite atlas PNG to view; also configurable via KNOBKIT_ATLAS")
	flag.StringVar(&cfg.Backend, "backend", defaults.Backend, "output backend: window or framebuffer")
	flag.StringVar(&cfg.FBDev, "fbdev", defaults.FBDev, "framebuffer device for -backend framebuffer")
	flag.BoolVar(&cfg.ShowValue, "show-value", defaults.ShowValue, "draw the current value below the control")
	flag.StringVar(&cfg.Title, "title", defaults.Title, "window title")
	flag.BoolVar(&cfg.Debug, "debug", defaults.Debug, "enable debug logging to -debug-log")
	flag.StringVar(&cfg.DebugLog, "debug-log", defaults.DebugLog, "debug log path")
	flag.StringVar(&cfg.LogFormat, "log-format", defaults.LogFormat, "debug log format: zap or plain")
	flag.StringVar(&cfg.StdioLog, "stdio-log", defaults.StdioLog, "redirect stdout+stderr (including panics) to this file; also configurable via KNOBKIT_STDIO_LOG")
	flag.Parse()
	if flag.NArg() == 1 {
		cfg.Atlas = flag.Arg(0)
	}
	if err := cfg.Validate(); err != nil {
		fmt.Fprintln(os.Stderr, "config error:", err)
		return 2
	}

	// Best-effort: redirect all stdout/stderr output (including panic stack traces)
	// to a file so crashes are diagnosable even when the console is left in graphics mode.
	if cfg.StdioLog != "" {
		if err := redirectStdIO(cfg.StdioLog); err != nil {
			fmt.Println("stdio log redirect error:", err)
		}
	}

	var logger app.Logger = app.NoopLogger{}
	if cfg.Debug {
		l, closeLog, err := app.OpenDebugLogger(cfg.DebugLog, cfg.LogFormat)
		if err == nil {
			defer closeLog()
			logger = l
			logger.Infof("main", "debug logging enabled")
		} else {
			fmt.Println("debug log open error:", err)
		}
	}

	a, err := atlas.Load(cfg.Atlas)
	if err != nil {
		switch {
		case errors.Is(err, atlas.ErrFileNotFound):
			fmt.Fprintf(os.Stderr, "%s: no such atlas; create one with maker\n", cfg.Atlas)
		default:
			fmt.Fprintf(os.Stderr, "%s: %v\n", cfg.Atlas, err)
		}
		return 1
	}
	logger.Infof("main", "loaded %s: %d frames of %dx%d", cfg.Atlas, a.FrameCount, a.FrameWidth, a.FrameHeight)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	viewer := app.New(a, cfg)
	viewer.Logger = logger
	if err := viewer.Run(ctx); err != nil {
		fmt.Fprintln(os.Stderr, "viewer error:", err)
		return 1
	}
	return 0
}
