package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"runtime"
	"strings"
	"time"

	"github.com/fatih/color"
	"github.com/mattn/go-runewidth"
	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/grindlemire/clicktrack"
	"github.com/grindlemire/clicktrack/internal/scenario"
	"github.com/grindlemire/clicktrack/pkg/config"
	"github.com/grindlemire/clicktrack/pkg/telemetry"
)

var (
	replayMode   string
	replayOutput string
)

func init() {
	replayCmd.Flags().StringVar(&replayMode, "mode", "", "telemetry sink, overrides config (slog|stream|ring|msgpack|multi)")
	replayCmd.Flags().StringVar(&replayOutput, "output", "", "telemetry output path, overrides config (- for stderr)")
}

var replayCmd = &cobra.Command{
	Use:   "replay scenario.toml...",
	Short: "Replay scenario pointer scripts through click tracking",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := applyColor(cmd, stdoutFile(cmd)); err != nil {
			return err
		}
		rt, err := setup(cmd, cmd.ErrOrStderr())
		if err != nil {
			return err
		}
		if replayMode != "" {
			rt.cfg.Telemetry.Mode = replayMode
		}
		if replayOutput != "" {
			rt.cfg.Telemetry.Output = replayOutput
		}
		if err := rt.cfg.Validate(); err != nil {
			return err
		}
		return replay(cmd.Context(), replayOptions{
			Files:  args,
			Config: rt.cfg,
			Log:    rt.log,
			Out:    cmd.OutOrStdout(),
			Width:  terminalWidth(stdoutFile(cmd)),
		})
	},
}

type replayOptions struct {
	Files  []string
	Config config.Config
	Log    *slog.Logger
	Out    io.Writer
	// Width truncates printed lines. Zero disables truncation.
	Width int
	// Clock stamps replayed events and records. Nil uses time.Now.
	Clock func() time.Time
}

// loadScenarios reads every file concurrently, preserving argument order.
func loadScenarios(ctx context.Context, files []string) ([]*scenario.Scenario, error) {
	out := make([]*scenario.Scenario, len(files))
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(min(runtime.GOMAXPROCS(0), len(files)))
	for i, path := range files {
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			s, err := scenario.Load(path)
			if err != nil {
				return err
			}
			out[i] = s
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return out, nil
}

func replay(ctx context.Context, opts replayOptions) (err error) {
	if ctx == nil {
		ctx = context.Background()
	}
	if opts.Clock == nil {
		opts.Clock = time.Now
	}

	scenarios, err := loadScenarios(ctx, opts.Files)
	if err != nil {
		return err
	}

	sinkCfg, err := opts.Config.TelemetrySink()
	if err != nil {
		return err
	}
	sinkCfg.Slog = opts.Log
	sink, err := telemetry.New(sinkCfg)
	if err != nil {
		return err
	}
	defer func() {
		if cerr := sink.Close(); err == nil {
			err = cerr
		}
	}()

	for _, s := range scenarios {
		events := s.Events(opts.Clock())
		// Each pointer event yields at most two records.
		ring := telemetry.NewRingLogger(max(opts.Config.Telemetry.RingSize, 2*len(events)))
		tel := telemetry.NewMultiLogger(sink, ring)
		if err := replayOne(s, events, tel, opts); err != nil {
			return fmt.Errorf("%s: %w", s.Name, err)
		}
		printRecords(opts.Out, s, ring.Snapshot(), opts.Width)
	}
	return sink.Flush()
}

func replayOne(s *scenario.Scenario, events []clicktrack.MotionEvent, tel telemetry.Logger, opts replayOptions) error {
	gen, err := clicktrack.New(tel, clicktrack.StaticGeometry{},
		clicktrack.WithLogger(opts.Log.With("scenario", s.Name)),
		clicktrack.WithClock(opts.Clock),
		clicktrack.WithMaxDepth(opts.Config.Tracking.MaxDepth),
	)
	if err != nil {
		return err
	}

	w, _ := s.Window()
	lc := clicktrack.NewLifecycle(gen)
	lc.OnForeground(w)
	defer lc.OnBackground()

	for _, ev := range events {
		w.DispatchTouchEvent(ev)
	}
	return nil
}

var (
	scenarioColor = color.New(color.FgWhite, color.Bold)
	screenColor   = color.New(color.FgCyan)
	viewColor     = color.New(color.FgGreen, color.Bold)
	dimColor      = color.New(color.FgHiBlack)
)

// printRecords writes one line per record. Lines wider than width are
// truncated before colouring.
func printRecords(w io.Writer, s *scenario.Scenario, records []telemetry.Record, width int) {
	scenarioColor.Fprintf(w, "%s\n", s.Name)
	if len(records) == 0 {
		dimColor.Fprintln(w, "  no clicks")
		return
	}
	for _, rec := range records {
		line := "  " + describe(rec)
		if width > 0 {
			line = runewidth.Truncate(line, width, "…")
		}
		switch rec.Name {
		case clicktrack.ViewClickEventName:
			viewColor.Fprintln(w, line)
		case clicktrack.ScreenClickEventName:
			screenColor.Fprintln(w, line)
		default:
			fmt.Fprintln(w, line)
		}
	}
}

func describe(rec telemetry.Record) string {
	switch rec.Name {
	case clicktrack.ScreenClickEventName:
		x, _ := rec.IntAttr(clicktrack.AttrCoordinateX)
		y, _ := rec.IntAttr(clicktrack.AttrCoordinateY)
		return fmt.Sprintf("screen click at (%d, %d)", x, y)
	case clicktrack.ViewClickEventName:
		id, _ := rec.IntAttr(clicktrack.AttrWidgetID)
		name, _ := rec.StringAttr(clicktrack.AttrWidgetName)
		if name == "" {
			return fmt.Sprintf("  -> widget #%d", id)
		}
		return fmt.Sprintf("  -> widget #%d %q", id, name)
	default:
		return strings.TrimSpace(string(telemetry.FormatRecord(rec, telemetry.FormatText)))
	}
}
