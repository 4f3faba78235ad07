package store

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
)

// DefaultFile is the history file used when none is configured.
const DefaultFile = "water_data.json"

// JSONFile keeps the history as a JSON array in a single file.
type JSONFile struct {
	Path string
	// BackupCorrupt moves an unparseable file to Path+".corrupt" instead of
	// letting the next save overwrite it.
	BackupCorrupt bool
}

func (f *JSONFile) Load() ([]Record, error) {
	data, err := os.ReadFile(f.Path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, nil
		}
		return nil, err
	}
	var records []Record
	if err := json.Unmarshal(data, &records); err != nil {
		if f.BackupCorrupt {
			if rerr := os.Rename(f.Path, f.Path+".corrupt"); rerr != nil {
				return nil, fmt.Errorf("backup %s: %w", f.Path, rerr)
			}
		}
		return nil, fmt.Errorf("%w: %s: %v", ErrCorrupt, f.Path, err)
	}
	return records, nil
}

func (f *JSONFile) Save(records []Record) error {
	if records == nil {
		records = []Record{}
	}
	tmp := f.Path + ".tmp"
	out, err := os.Create(tmp)
	if err != nil {
		return err
	}
	enc := json.NewEncoder(out)
	enc.SetIndent("", "    ")
	if err := enc.Encode(records); err != nil {
		out.Close()
		return err
	}
	if err := out.Close(); err != nil {
		return err
	}
	return os.Rename(tmp, f.Path)
}
