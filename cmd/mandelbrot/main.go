package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log"
	"os"
	"os/signal"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/google/gops/agent"
	"github.com/zeromicro/go-zero/core/logx"

	"mandelview/internal/buildinfo"
	"mandelview/internal/config"
	"mandelview/internal/geom"
	"mandelview/internal/imageio"
	"mandelview/internal/mandel"
	"mandelview/internal/tui"
)

func usage() {
	fmt.Fprintf(os.Stderr, "Usage: %s [flags] FILE PIXELS UPPERLEFT LOWERRIGHT\n", os.Args[0])
	fmt.Fprintf(os.Stderr, "Example: %s mandel.png 1000x750 -1.20,0.35 -1,0.20\n", os.Args[0])
	fmt.Fprintf(os.Stderr, "         %s -view [-1.20,0.35 -1,0.20]\n\n", os.Args[0])
	flag.PrintDefaults()
}

func main() {
	var (
		cfgPath  = flag.String("f", "", "config file (yaml, json or toml)")
		limit    = flag.Int("limit", 0, "iteration limit (overrides config)")
		workers  = flag.Int("workers", -1, "parallel row partitions, 0 = GOMAXPROCS, 1 = sequential")
		inside   = flag.Int("inside", -1, "intensity for points that never escape, 0..255")
		timeout  = flag.Duration("timeout", 0, "abort the render after this long")
		metaPath = flag.String("meta", "", "write a JSON metadata sidecar to this path")
		view     = flag.Bool("view", false, "open the interactive terminal viewer")
		diag     = flag.Bool("diag", false, "start a gops diagnostics agent")
		version  = flag.Bool("version", false, "print version and exit")
	)
	flag.Usage = usage
	flag.Parse()

	if *version {
		fmt.Println(buildinfo.Short())
		return
	}

	cfg, err := config.Load(*cfgPath)
	if err != nil {
		log.Fatal(err)
	}
	if *limit > 0 {
		cfg.Limit = *limit
	}
	if *workers >= 0 {
		cfg.Workers = *workers
	}
	if *inside >= 0 {
		cfg.Inside = *inside
	}
	if *timeout > 0 {
		cfg.Timeout = *timeout
	}
	if *diag {
		cfg.Diag = true
	}
	if err := cfg.Validate(); err != nil {
		log.Fatal(err)
	}

	if cfg.Diag {
		if err := agent.Listen(agent.Options{}); err != nil {
			log.Fatal(err)
		}
		defer agent.Close()
	}

	if *view {
		if err := runViewer(cfg, flag.Args()); err != nil {
			log.Fatal(err)
		}
		return
	}

	args := flag.Args()
	if len(args) != 4 {
		usage()
		os.Exit(1)
	}
	logx.MustSetup(cfg.Log)
	defer logx.Close()

	d, ok := geom.ParseDims(args[1])
	if !ok {
		log.Fatalf("bad image dimensions %q, want WIDTHxHEIGHT", args[1])
	}
	ul, ok := geom.ParseComplex(args[2])
	if !ok {
		log.Fatalf("bad upper-left point %q, want RE,IM", args[2])
	}
	lr, ok := geom.ParseComplex(args[3])
	if !ok {
		log.Fatalf("bad lower-right point %q, want RE,IM", args[3])
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()
	if err := renderFile(ctx, cfg, args[0], d, geom.Bounds{UpperLeft: ul, LowerRight: lr}, *metaPath); err != nil {
		logx.Errorw("render failed", logx.Field("file", args[0]), logx.Field("error", err.Error()))
		logx.Close()
		os.Exit(1)
	}
}

// renderFile renders b at size d and writes it to path.
func renderFile(ctx context.Context, cfg config.Config, path string, d geom.Dims, b geom.Bounds, metaPath string) error {
	if cfg.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, cfg.Timeout)
		defer cancel()
	}
	start := time.Now()
	buf, err := mandel.Render(ctx, d, b.UpperLeft, b.LowerRight, cfg.Limit,
		mandel.WithWorkers(cfg.Workers),
		mandel.WithRowsPerTask(cfg.RowsPerTask),
		mandel.WithInside(byte(cfg.Inside)),
	)
	if errors.Is(err, context.DeadlineExceeded) {
		return fmt.Errorf("render exceeded %s: %w", cfg.Timeout, err)
	}
	if err != nil {
		return err
	}
	elapsed := time.Since(start)
	logx.Infow("rendered",
		logx.Field("size", fmt.Sprintf("%dx%d", d.W, d.H)),
		logx.Field("limit", cfg.Limit),
		logx.Field("elapsed", elapsed.String()),
	)
	if err := imageio.WritePNG(path, buf, d); err != nil {
		return err
	}
	logx.Infow("wrote image", logx.Field("file", path))
	if metaPath == "" {
		return nil
	}
	meta := imageio.NewMeta(d, b, cfg.Limit, cfg.Workers, byte(cfg.Inside), elapsed, mandel.Summarize(buf))
	meta.Version = buildinfo.Short()
	return imageio.WriteMeta(metaPath, meta)
}

// runViewer starts the terminal explorer. args may carry UPPERLEFT LOWERRIGHT.
func runViewer(cfg config.Config, args []string) error {
	// the terminal belongs to bubbletea
	logx.Disable()
	b := geom.Default
	switch len(args) {
	case 0:
	case 2:
		ul, ok1 := geom.ParseComplex(args[0])
		lr, ok2 := geom.ParseComplex(args[1])
		if !ok1 || !ok2 {
			return fmt.Errorf("bad view corners %q %q, want RE,IM RE,IM", args[0], args[1])
		}
		b = geom.Bounds{UpperLeft: ul, LowerRight: lr}
	default:
		return errors.New("-view takes no arguments or UPPERLEFT LOWERRIGHT")
	}
	_, err := tea.NewProgram(tui.New(cfg, b), tea.WithAltScreen(), tea.WithMouseAllMotion()).Run()
	return err
}
