// Command watertrackcli tracks daily water intake against a goal.
//
// Each day gets one record in a local history file. Without flags the
// program prints today's intake; -add, -sip and -remove change it, -goal and
// -glass change the settings, -report and -chart show the trailing history
// and -dashboard opens an interactive terminal view.
package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/rezmoss/watertrackcli/internal/chart"
	"github.com/rezmoss/watertrackcli/internal/cliparse"
	"github.com/rezmoss/watertrackcli/internal/history"
	"github.com/rezmoss/watertrackcli/internal/report"
	"github.com/rezmoss/watertrackcli/internal/store"
	"github.com/rezmoss/watertrackcli/internal/tui"
	"github.com/rezmoss/watertrackcli/internal/version"
)

func main() {
	cfg, err := cliparse.ParseFlags(os.Args[1:])
	if err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return
		}
		slog.Error("Error parsing flags", "error", err)
		os.Exit(1)
	}

	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: cfg.LogLevel}))
	slog.SetDefault(logger)

	ver := version.Find()
	if cfg.Action == cliparse.ActionVersion {
		if ver == "" {
			ver = "unknown"
		}
		fmt.Println(ver)
		return
	}

	if dir := filepath.Dir(cfg.File); dir != "." && dir != "" {
		if err := os.MkdirAll(dir, 0755); err != nil {
			slog.Error("mkdir failed", "dir", dir, "error", err)
			os.Exit(1)
		}
	}

	backend, closeBackend, err := openBackend(cfg)
	if err != nil {
		slog.Error("opening history failed", "file", cfg.File, "error", err)
		os.Exit(1)
	}

	s := store.New(backend, store.WithLogger(logger))
	err = run(cfg, s, ver, os.Stdout)
	closeBackend()
	if err != nil {
		slog.Error("command failed", "error", err)
		os.Exit(1)
	}
}

func openBackend(cfg cliparse.Config) (store.Backend, func(), error) {
	switch cfg.Backend {
	case cliparse.BackendSQLite:
		db, err := store.OpenSQLite(cfg.File)
		if err != nil {
			return nil, nil, err
		}
		return db, func() {
			if err := db.Close(); err != nil {
				slog.Warn("closing database", "error", err)
			}
		}, nil
	default:
		return &store.JSONFile{Path: cfg.File, BackupCorrupt: cfg.BackupCorrupt}, func() {}, nil
	}
}

func run(cfg cliparse.Config, s *store.Store, ver string, out io.Writer) error {
	switch cfg.Action {
	case cliparse.ActionReport:
		points, err := history.Get(s, cfg.Days)
		if err != nil {
			return err
		}
		return report.Write(out, points, cfg.Days)

	case cliparse.ActionChart:
		points, err := history.Get(s, cfg.Days)
		if err != nil {
			return err
		}
		return writeChart(cfg.ChartPath, points, cfg.Days)

	case cliparse.ActionDashboard:
		m, err := tui.New(s, cfg.Days, ver)
		if err != nil {
			return err
		}
		p := tea.NewProgram(m, tea.WithAltScreen())
		if _, err := p.Run(); err != nil {
			return fmt.Errorf("running dashboard: %w", err)
		}
		return nil
	}

	rec, err := s.Today()
	if err != nil {
		return err
	}
	switch cfg.Action {
	case cliparse.ActionAdd:
		err = s.AddWater(&rec, false)
	case cliparse.ActionSip:
		err = s.AddWater(&rec, true)
	case cliparse.ActionRemove:
		err = s.RemoveWater(&rec)
	case cliparse.ActionSettings:
		err = s.UpdateSettings(&rec, cfg.Goal, cfg.GlassSize)
	}
	if err != nil {
		return err
	}
	_, err = fmt.Fprintln(out, report.Status(rec.Date, rec.Intake, rec.Goal))
	return err
}

func writeChart(path string, points []history.Point, days int) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	opts := chart.DefaultOptions()
	opts.Days = days
	if err := chart.Render(f, points, opts); err != nil {
		f.Close()
		return err
	}
	if err := f.Close(); err != nil {
		return err
	}
	slog.Info("chart written", "path", path, "days", len(points))
	return nil
}
