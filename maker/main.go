// Command maker renders a knob or switch sprite atlas: one PNG with every
// animation frame side by side, ready for the knobkit viewer.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"
	"path/filepath"
	"strconv"
	"syscall"

	"github.com/rook-computer/knobkit/internal/app"
	"github.com/rook-computer/knobkit/internal/atlas"
	"github.com/rook-computer/knobkit/internal/config"
	"github.com/rook-computer/knobkit/internal/render"
	"github.com/rook-computer/knobkit/internal/system"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	code := run(ctx, os.Args[1:], os.Stdout, os.Stderr, system.ExecRunner{Stdout: os.Stdout, Stderr: os.Stderr})
	stop()
	os.Exit(code)
}

const usageText = `usage: maker [flags] size frames [offset]

  size    frame edge length in pixels
  frames  number of frames (1 or 2 frames make a switch-style atlas)
  offset  pixels kept clear around the control (default 0)

flags:
`

// request is a validated set of positional arguments.
type request struct {
	size, frames, offset int
}

var errUsage = errors.New("missing arguments")

func parseArgs(args []string) (request, error) {
	if len(args) < 2 || len(args) > 3 {
		return request{}, errUsage
	}
	var r request
	var err error
	if r.size, err = positive("size", args[0]); err != nil {
		return request{}, err
	}
	if r.frames, err = positive("frames", args[1]); err != nil {
		return request{}, err
	}
	if len(args) == 3 {
		if r.offset, err = strconv.Atoi(args[2]); err != nil || r.offset < 0 {
			return request{}, fmt.Errorf("offset must be a non-negative integer (got %q)", args[2])
		}
	}
	if r.offset >= r.size {
		return request{}, fmt.Errorf("offset %d leaves nothing to draw in a %dpx frame", r.offset, r.size)
	}
	return r, nil
}

func positive(name, raw string) (int, error) {
	n, err := strconv.Atoi(raw)
	if err != nil || n <= 0 {
		return 0, fmt.Errorf("%s must be a positive integer (got %q)", name, raw)
	}
	return n, nil
}

func run(ctx context.Context, args []string, stdout, stderr io.Writer, runner system.Runner) int {
	defaults, err := config.MakerFromEnv()
	if err != nil {
		fmt.Fprintln(stderr, "config error:", err)
		return 2
	}

	cfg := defaults
	fs := flag.NewFlagSet("maker", flag.ContinueOnError)
	fs.SetOutput(stdout)
	fs.StringVar(&cfg.Kind, "kind", defaults.Kind, "control to draw: knob or switch; also configurable via KNOBKIT_KIND")
	fs.StringVar(&cfg.OutDir, "out-dir", defaults.OutDir, "directory for the atlas file")
	fs.StringVar(&cfg.Link, "link", defaults.Link, "well-known name pointed at the new atlas inside -out-dir; empty to skip")
	fs.StringVar(&cfg.Viewer, "viewer", defaults.Viewer, "viewer program started by -view")
	fs.BoolVar(&cfg.Debug, "debug", defaults.Debug, "enable debug logging to -debug-log")
	fs.StringVar(&cfg.DebugLog, "debug-log", defaults.DebugLog, "debug log path")
	fs.StringVar(&cfg.LogFormat, "log-format", defaults.LogFormat, "debug log format: zap or plain")
	view := fs.Bool("view", false, "open the atlas in the viewer once it is written")
	fs.Usage = func() {
		fmt.Fprint(fs.Output(), usageText)
		fs.PrintDefaults()
	}
	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return 0
		}
		return 1
	}
	if err := cfg.Validate(); err != nil {
		fmt.Fprintln(stderr, "config error:", err)
		return 2
	}

	req, err := parseArgs(fs.Args())
	if err != nil {
		if !errors.Is(err, errUsage) {
			fmt.Fprintln(stderr, "maker:", err)
		}
		fs.Usage()
		return 1
	}

	var logger app.Logger = app.NoopLogger{}
	if cfg.Debug {
		l, closeLog, err := app.OpenDebugLogger(cfg.DebugLog, cfg.LogFormat)
		if err != nil {
			fmt.Fprintln(stderr, "debug log open error:", err)
		} else {
			defer closeLog()
			logger = l
		}
	}

	painter, err := render.PainterFor(cfg.Kind)
	if err != nil {
		fmt.Fprintln(stderr, "maker:", err)
		return 2
	}
	a, err := atlas.Generate(painter, req.size, req.frames, req.offset, logger)
	if err != nil {
		fmt.Fprintln(stderr, "maker:", err)
		return 1
	}

	name := atlas.FileName(cfg.Kind, req.size, req.frames)
	out := filepath.Join(cfg.OutDir, name)
	if err := atlas.Save(a, out); err != nil {
		fmt.Fprintln(stderr, "maker:", err)
		return 1
	}
	logger.Infof("maker", "wrote %s (%dx%d)", out, a.Image.Bounds().Dx(), a.Image.Bounds().Dy())
	fmt.Fprintln(stdout, out)

	viewTarget := out
	if cfg.Link != "" {
		link := filepath.Join(cfg.OutDir, cfg.Link)
		if err := atlas.Link(name, link); err != nil {
			fmt.Fprintln(stderr, "maker:", err)
			return 1
		}
		fmt.Fprintln(stdout, link, "->", name)
		viewTarget = link
	}

	if !*view {
		return 0
	}
	viewer, err := system.ResolveProgram(cfg.Viewer, executableDir())
	if err != nil {
		fmt.Fprintln(stderr, "maker: viewer:", err)
		return 1
	}
	logger.Infof("maker", "starting %s on %s", viewer, viewTarget)
	if err := runner.Run(ctx, viewer, "-atlas", viewTarget); err != nil {
		fmt.Fprintln(stderr, "maker:", err)
		return 1
	}
	return 0
}

func executableDir() string {
	exe, err := os.Executable()
	if err != nil {
		return ""
	}
	return filepath.Dir(exe)
}
