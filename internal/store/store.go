package store

import (
	"errors"
	"fmt"
	"log/slog"
	"math"
	"time"
)

// ErrCorrupt marks persisted content that could not be parsed as a history.
var ErrCorrupt = errors.New("corrupt history")

// Backend persists the whole history at once.
type Backend interface {
	// Load returns the persisted history in stored order. A missing store is
	// an empty history; unparseable content is an error wrapping ErrCorrupt.
	Load() ([]Record, error)
	Save(records []Record) error
}

type Store struct {
	backend Backend
	now     func() time.Time
	log     *slog.Logger
}

type Option func(*Store)

// WithClock replaces time.Now as the source of "today".
func WithClock(now func() time.Time) Option {
	return func(s *Store) { s.now = now }
}

func WithLogger(l *slog.Logger) Option {
	return func(s *Store) { s.log = l }
}

func New(backend Backend, opts ...Option) *Store {
	s := &Store{
		backend: backend,
		now:     time.Now,
		log:     slog.Default(),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Today returns the current day's record, rolling over first if needed.
func (s *Store) Today() (Record, error) {
	records, err := s.load()
	if err != nil {
		return Record{}, err
	}
	return records[len(records)-1], nil
}

// Recent returns the trailing window of at most days records, oldest first.
// The last element is always today's record. days < 1 behaves like Today.
func (s *Store) Recent(days int) ([]Record, error) {
	records, err := s.load()
	if err != nil {
		return nil, err
	}
	if days < 1 {
		days = 1
	}
	if days > len(records) {
		days = len(records)
	}
	window := make([]Record, days)
	copy(window, records[len(records)-days:])
	return window, nil
}

// AddWater adds a glass, or a sip when useSip is set, to r and persists it.
func (s *Store) AddWater(r *Record, useSip bool) error {
	inc := float64(r.GlassSize)
	if useSip {
		inc = r.SipSize
	}
	r.Intake += inc
	return s.upsert(*r)
}

// RemoveWater takes one glass off r, never going below zero. It always
// subtracts the glass size, even if the last addition was a sip.
func (s *Store) RemoveWater(r *Record) error {
	r.Intake = math.Max(0, r.Intake-float64(r.GlassSize))
	return s.upsert(*r)
}

// UpdateSettings stores a new goal and glass size on r. Values are not
// checked here; see Validate.
func (s *Store) UpdateSettings(r *Record, goal, glassSize int) error {
	r.Goal = goal
	r.GlassSize = glassSize
	return s.upsert(*r)
}

func (s *Store) today() string {
	return s.now().Format(DateLayout)
}

func (s *Store) read() ([]Record, error) {
	records, err := s.backend.Load()
	if err != nil {
		if errors.Is(err, ErrCorrupt) {
			s.log.Warn("discarding unreadable history", "error", err)
			return nil, nil
		}
		return nil, fmt.Errorf("load history: %w", err)
	}
	return records, nil
}

func (s *Store) load() ([]Record, error) {
	records, err := s.read()
	if err != nil {
		return nil, err
	}
	today := s.today()
	if len(records) > 0 && records[len(records)-1].Date == today {
		return records, nil
	}

	prev := DefaultRecord()
	if len(records) > 0 {
		prev = records[len(records)-1]
	}
	records = append(records, prev.nextDay(today))
	if err := s.backend.Save(records); err != nil {
		return nil, fmt.Errorf("save rollover: %w", err)
	}
	s.log.Info("started new day", "date", today, "goal", prev.Goal, "glass_size", prev.GlassSize)
	return records, nil
}

// upsert replaces the last persisted record when it has r's date and appends
// r otherwise.
func (s *Store) upsert(r Record) error {
	records, err := s.read()
	if err != nil {
		return err
	}
	if n := len(records); n > 0 && records[n-1].Date == r.Date {
		records[n-1] = r
	} else {
		records = append(records, r)
	}
	if err := s.backend.Save(records); err != nil {
		return fmt.Errorf("save %s: %w", r.Date, err)
	}
	s.log.Debug("saved record", "date", r.Date, "intake", r.Intake, "goal", r.Goal)
	return nil
}
