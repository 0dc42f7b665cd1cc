// Package train holds the training-side collaborators of the
// preprocessing pipeline: epoch bookkeeping and the data-parallel
// distribution scope.
package train

import (
	"encoding/json"
	"os"
	"path/filepath"
)

const statsFile = "stats.json"

type stats struct {
	Epoch int `json:"epoch"`
}

// CurrentEpoch reads the epoch counter recorded in dir. A missing or
// malformed stats file means a fresh run, so any read failure yields
// epoch 0 rather than an error.
func CurrentEpoch(dir string) int {
	data, err := os.ReadFile(filepath.Join(dir, statsFile))
	if err != nil {
		return 0
	}

	var s stats
	if err := json.Unmarshal(data, &s); err != nil {
		return 0
	}
	if s.Epoch < 0 {
		return 0
	}
	return s.Epoch
}

// RecordEpoch persists the epoch counter to dir, creating it if
// needed. The file is written to a temporary name and renamed so a
// concurrent CurrentEpoch never observes a partial write.
func RecordEpoch(dir string, epoch int) error {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return err
	}

	data, err := json.Marshal(stats{Epoch: epoch})
	if err != nil {
		return err
	}

	tmp, err := os.CreateTemp(dir, statsFile+".*")
	if err != nil {
		return err
	}
	defer os.Remove(tmp.Name())

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		return err
	}
	if err := tmp.Close(); err != nil {
		return err
	}

	return os.Rename(tmp.Name(), filepath.Join(dir, statsFile))
}
