package store

import (
	"bytes"
	"encoding/json"
	"errors"
	"maps"
)

// DateLayout is the on-disk date format of a Record.
const DateLayout = "2006-01-02"

// Record is one day of water tracking. Volumes are in milliliters.
type Record struct {
	Date      string  `json:"date"`
	Goal      int     `json:"goal"`
	GlassSize int     `json:"glass_size"`
	SipSize   float64 `json:"sip_size"`
	Intake    float64 `json:"intake"`

	// keys we don't know about, written back as they were read
	extra map[string]json.RawMessage
}

var knownKeys = []string{"date", "goal", "glass_size", "sip_size", "intake"}

var errNullRecord = errors.New("record is null")

// ErrInvalidSettings is returned by Validate.
var ErrInvalidSettings = errors.New("values must be greater than 0")

// DefaultRecord seeds an empty history.
func DefaultRecord() Record {
	return Record{
		Goal:      2000,
		GlassSize: 250,
		SipSize:   62.5,
	}
}

// Validate reports whether goal and glass size may be stored. The store never
// calls it; settings editors do.
func Validate(goal, glassSize int) error {
	if goal <= 0 || glassSize <= 0 {
		return ErrInvalidSettings
	}
	return nil
}

// nextDay returns the record that follows r on date.
func (r Record) nextDay(date string) Record {
	next := r
	next.Date = date
	next.Intake = 0
	next.extra = maps.Clone(r.extra)
	return next
}

func (r *Record) UnmarshalJSON(data []byte) error {
	if bytes.Equal(bytes.TrimSpace(data), []byte("null")) {
		return errNullRecord
	}
	type plain Record
	var p plain
	if err := json.Unmarshal(data, &p); err != nil {
		return err
	}
	var raw map[string]json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	for _, k := range knownKeys {
		delete(raw, k)
	}
	if len(raw) > 0 {
		p.extra = raw
	}
	*r = Record(p)
	return nil
}

func (r Record) MarshalJSON() ([]byte, error) {
	type plain Record
	if len(r.extra) == 0 {
		return json.Marshal(plain(r))
	}
	out := make(map[string]any, len(r.extra)+len(knownKeys))
	for k, v := range r.extra {
		out[k] = v
	}
	out["date"] = r.Date
	out["goal"] = r.Goal
	out["glass_size"] = r.GlassSize
	out["sip_size"] = r.SipSize
	out["intake"] = r.Intake
	return json.Marshal(out)
}
