/*
Package store keeps the per-day water intake history.

The history is an ordered list of Record values, one per calendar date, oldest
first. The last record is the current day. Reading the history through Today or
Recent performs the day rollover: when the last record is not dated today, a
new record is appended that copies goal, glass size and sip size from the
previous day and starts with zero intake. The rollover is persisted
immediately.

# Mutations

AddWater, RemoveWater and UpdateSettings change the record they are handed and
then upsert it by date: the persisted history is re-read, its last element is
replaced when the dates match, otherwise the record is appended, and the whole
list is written back.

	s := store.New(&store.JSONFile{Path: "water_data.json"})
	rec, err := s.Today()
	if err != nil {
		return err
	}
	if err := s.AddWater(&rec, false); err != nil {
		return err
	}

The store does not validate settings. Callers check values with Validate
before calling UpdateSettings.

# Backends

JSONFile stores the history as a pretty-printed JSON array. SQLite stores it
in a single table. A missing JSON file is an empty history. Content that cannot
be parsed is reported by the backend as ErrCorrupt and the store treats it as
an empty history as well, so the next read starts over from DefaultRecord.

There is no locking. Two writers racing on the same file lose updates; the
last write wins.
*/
package store
