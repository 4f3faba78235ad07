package cliparse

import (
	"errors"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"strings"

	"github.com/joho/godotenv"

	"github.com/rezmoss/watertrackcli/internal/store"
)

const (
	BackendJSON   = "json"
	BackendSQLite = "sqlite"
)

// Action is what a single invocation does.
type Action int

const (
	ActionStatus Action = iota
	ActionAdd
	ActionSip
	ActionRemove
	ActionSettings
	ActionReport
	ActionChart
	ActionDashboard
	ActionVersion
)

type Config struct {
	File          string
	Backend       string
	Days          int
	BackupCorrupt bool
	LogLevel      slog.Level

	Action    Action
	ChartPath string
	Goal      int
	GlassSize int
}

// ParseFlags reads flags, falling back to the environment and an optional
// .env file in the working directory.
func ParseFlags(args []string) (Config, error) {
	// a missing .env is fine, a broken one is not
	if err := godotenv.Load(); err != nil && !errors.Is(err, os.ErrNotExist) {
		return Config{}, fmt.Errorf("load .env: %w", err)
	}

	var cfg Config
	var (
		logLevel          string
		add, sip, remove  bool
		report, dashboard bool
		showVersion       bool
	)

	fs := flag.NewFlagSet("watertrackcli", flag.ContinueOnError)

	fs.StringVar(&cfg.File, "file", "", "path to the history file")
	fs.StringVar(&cfg.Backend, "backend", "", "history backend: json|sqlite")
	fs.IntVar(&cfg.Days, "days", 7, "days of history for -report, -chart and the dashboard")
	fs.BoolVar(&cfg.BackupCorrupt, "backup-corrupt", false, "keep an unreadable history file as <file>.corrupt")
	fs.StringVar(&logLevel, "log-level", "", "debug|info|warn|error")

	fs.BoolVar(&add, "add", false, "add a glass of water")
	fs.BoolVar(&sip, "sip", false, "add a sip of water")
	fs.BoolVar(&remove, "remove", false, "remove a glass of water")
	fs.IntVar(&cfg.Goal, "goal", 0, "daily goal in ml (with -glass)")
	fs.IntVar(&cfg.GlassSize, "glass", 0, "glass size in ml (with -goal)")
	fs.BoolVar(&report, "report", false, "print the history report and exit")
	fs.StringVar(&cfg.ChartPath, "chart", "", "write the history chart as PNG to this path")
	fs.BoolVar(&dashboard, "dashboard", false, "show the interactive dashboard")
	fs.BoolVar(&showVersion, "version", false, "print the version and exit")

	if err := fs.Parse(args); err != nil {
		return Config{}, err
	}

	if cfg.File == "" {
		cfg.File = os.Getenv("WATER_FILE")
	}
	if cfg.File == "" {
		cfg.File = store.DefaultFile
	}

	if cfg.Backend == "" {
		cfg.Backend = os.Getenv("WATER_BACKEND")
		if cfg.Backend == "" {
			cfg.Backend = BackendJSON
		}
	}
	cfg.Backend = strings.ToLower(cfg.Backend)
	if cfg.Backend != BackendJSON && cfg.Backend != BackendSQLite {
		return Config{}, fmt.Errorf("unknown backend %q (use json or sqlite)", cfg.Backend)
	}

	if logLevel == "" {
		logLevel = os.Getenv("WATER_LOG_LEVEL")
	}
	if logLevel == "" {
		logLevel = "warn"
	}
	if err := cfg.LogLevel.UnmarshalText([]byte(logLevel)); err != nil {
		return Config{}, fmt.Errorf("invalid log level %q", logLevel)
	}

	if cfg.Days < 1 {
		return Config{}, errors.New("days must be at least 1")
	}

	var actions []Action
	if add {
		actions = append(actions, ActionAdd)
	}
	if sip {
		actions = append(actions, ActionSip)
	}
	if remove {
		actions = append(actions, ActionRemove)
	}
	if cfg.Goal != 0 || cfg.GlassSize != 0 {
		if err := store.Validate(cfg.Goal, cfg.GlassSize); err != nil {
			return Config{}, fmt.Errorf("-goal and -glass: %w", err)
		}
		actions = append(actions, ActionSettings)
	}
	if report {
		actions = append(actions, ActionReport)
	}
	if cfg.ChartPath != "" {
		actions = append(actions, ActionChart)
	}
	if dashboard {
		actions = append(actions, ActionDashboard)
	}
	if showVersion {
		actions = append(actions, ActionVersion)
	}

	switch len(actions) {
	case 0:
		cfg.Action = ActionStatus
	case 1:
		cfg.Action = actions[0]
	default:
		return Config{}, errors.New("choose only one of -add, -sip, -remove, -goal/-glass, -report, -chart, -dashboard, -version")
	}

	return cfg, nil
}
