package main

import (
	"errors"
	"flag"
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"lassopick/internal/backdrop"
	"lassopick/internal/config"
	"lassopick/internal/domain"
	"lassopick/internal/eventbus"
	"lassopick/internal/logging"
	"lassopick/internal/pointfile"
	"lassopick/internal/registry"
	"lassopick/internal/selection"
	"lassopick/internal/ui"
)

// readyMarker is shown once on startup when LASSOPICK_E2E_TEST=1
const readyMarker = "__READY__"

type options struct {
	points      string
	image       string
	config      string
	swap        bool
	writeConfig bool
}

func parseFlags(args []string) (options, error) {
	var opts options
	fs := flag.NewFlagSet("lassopick", flag.ContinueOnError)
	fs.StringVar(&opts.points, "points", "", "Whitespace-separated table of candidate points")
	fs.StringVar(&opts.image, "image", "", "Background image (bmp, png, jpeg or tiff)")
	fs.StringVar(&opts.config, "config", config.DefaultPath, "Config file")
	fs.BoolVar(&opts.swap, "swap", false, "Read the point table as y x columns")
	fs.BoolVar(&opts.writeConfig, "write-config", false, "Write the effective config to the -config path and exit")
	if err := fs.Parse(args); err != nil {
		return opts, err
	}

	// Positional fallback: lassopick points.txt [image.bmp]
	rest := fs.Args()
	if opts.points == "" && len(rest) > 0 {
		opts.points, rest = rest[0], rest[1:]
	}
	if opts.image == "" && len(rest) > 0 {
		opts.image = rest[0]
	}

	if opts.points == "" && !opts.writeConfig {
		return opts, errors.New("no points file given (use -points or a positional argument)")
	}
	return opts, nil
}

func main() {
	if err := run(os.Args[1:]); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return
		}
		fmt.Fprintf(os.Stderr, "lassopick: %v\n", err)
		os.Exit(1)
	}
}

// loadConfig reads the config file and applies command line overrides
func loadConfig(svc config.ConfigService, opts options) (*config.Config, error) {
	cfg, err := svc.LoadFromPath(opts.config)
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}
	if opts.swap {
		cfg.Points.Columns = string(pointfile.ColumnsYX)
	}
	return cfg, nil
}

func run(args []string) error {
	opts, err := parseFlags(args)
	if err != nil {
		return err
	}

	configSvc := config.NewConfigService()
	cfg, err := loadConfig(configSvc, opts)
	if err != nil {
		return err
	}
	if opts.writeConfig {
		if err := configSvc.SaveToPath(cfg, opts.config); err != nil {
			return err
		}
		fmt.Printf("wrote %s\n", opts.config)
		return nil
	}

	// Set up logging
	session := uuid.NewString()
	logger, err := logging.New(cfg.Log, session)
	if err != nil {
		return err
	}
	defer func() { _ = logger.Sync() }()
	logger.Info("starting",
		zap.String("points", opts.points),
		zap.String("image", opts.image),
		zap.String("columns", cfg.Points.Columns),
		zap.String("boundary", cfg.Selection.Boundary))

	// Create event bus; every domain event lands in the log
	bus := eventbus.New(logger)
	defer bus.Close()
	bus.SubscribeAll(func(e eventbus.DomainEvent) {
		logger.Debug("event", zap.String("type", string(e.Type())), zap.String("event", fmt.Sprintf("%+v", e)))
	})
	// export outcomes go to the status line once the program runs
	var p *tea.Program
	toStatus := func(e eventbus.DomainEvent) { p.Send(ui.EventMsg{Event: e}) }
	bus.Subscribe(domain.EventExportCompleted, toStatus)
	bus.Subscribe(domain.EventExportFailed, toStatus)

	pts, err := pointfile.ReadFile(opts.points, pointfile.Columns(cfg.Points.Columns))
	if err != nil {
		return err
	}
	bus.Publish(domain.PointsLoadedEvent{Source: opts.points, Count: len(pts)})

	var bd *backdrop.Backdrop
	if opts.image != "" {
		bd, err = backdrop.Load(opts.image)
		if err != nil {
			return err
		}
		logger.Info("backdrop loaded", zap.String("format", bd.Format), zap.Int("width", bd.Width()), zap.Int("height", bd.Height()))
	}

	ctrl := selection.NewController(
		registry.New(pts),
		pointfile.NewExporter(cfg.Export.Dir, cfg.Export.Extension),
		selection.WithPublisher(bus),
		selection.WithLogger(logger),
	)

	uiModel := ui.NewModel(cfg, ctrl, bd, logger)
	if os.Getenv("LASSOPICK_E2E_TEST") == "1" {
		uiModel.Notify(readyMarker)
	}

	p = tea.NewProgram(uiModel, tea.WithAltScreen(), tea.WithMouseCellMotion())
	uiModel.SetProgram(p)

	if _, err := p.Run(); err != nil {
		logger.Error("program failed", zap.Error(err))
		return fmt.Errorf("error running program: %w", err)
	}
	logger.Info("exited", zap.Int("selected", ctrl.Registry().SelectedCount()))
	return nil
}
