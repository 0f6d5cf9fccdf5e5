package main

import (
	"io"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/grindlemire/clicktrack"
	"github.com/grindlemire/clicktrack/internal/scenario"
	"github.com/grindlemire/clicktrack/internal/termhost"
	"github.com/grindlemire/clicktrack/pkg/telemetry"
)

var watchCmd = &cobra.Command{
	Use:   "watch scenario.toml",
	Short: "Host a scenario window in the terminal and track clicks on it",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		// The terminal is owned by the UI; logs only go to the debug file.
		rt, err := setup(cmd, io.Discard)
		if err != nil {
			return err
		}

		s, err := scenario.Load(args[0])
		if err != nil {
			return err
		}

		ring := telemetry.NewRingLogger(rt.cfg.Telemetry.RingSize)
		var tel telemetry.Logger = ring
		if out := rt.cfg.Telemetry.Output; out != "" && out != "-" && rt.cfg.Telemetry.Mode != "ring" {
			sinkCfg, err := rt.cfg.TelemetrySink()
			if err != nil {
				return err
			}
			sinkCfg.Slog = rt.log
			sink, err := telemetry.New(sinkCfg)
			if err != nil {
				return err
			}
			defer sink.Close()
			tel = telemetry.NewMultiLogger(sink, ring)
		}

		gen, err := clicktrack.New(tel, clicktrack.StaticGeometry{},
			clicktrack.WithLogger(rt.log),
			clicktrack.WithMaxDepth(rt.cfg.Tracking.MaxDepth),
		)
		if err != nil {
			return err
		}

		w, _ := s.Window()
		root, _ := w.Content().Root().(*clicktrack.StaticNode)
		m, err := termhost.New(termhost.Config{
			Title:     filepath.Base(s.Name),
			Window:    w,
			Tree:      root,
			Generator: gen,
			Ring:      ring,
		})
		if err != nil {
			return err
		}
		return termhost.Run(cmd.Context(), m)
	},
}
