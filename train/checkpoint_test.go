package train

import (
	"os"
	"path/filepath"
	"testing"
)

func TestCurrentEpochMissing(t *testing.T) {
	if got := CurrentEpoch(t.TempDir()); got != 0 {
		t.Errorf("CurrentEpoch() = %d, want 0 for missing stats", got)
	}

	if got := CurrentEpoch(filepath.Join(t.TempDir(), "does", "not", "exist")); got != 0 {
		t.Errorf("CurrentEpoch() = %d, want 0 for missing directory", got)
	}
}

func TestCurrentEpochMalformed(t *testing.T) {
	cases := []struct {
		name    string
		content string
	}{
		{"not json", "epoch: 5"},
		{"wrong type", `{"epoch": "five"}`},
		{"empty", ""},
		{"negative", `{"epoch": -3}`},
	}

	for _, tt := range cases {
		t.Run(tt.name, func(t *testing.T) {
			dir := t.TempDir()
			if err := os.WriteFile(filepath.Join(dir, "stats.json"), []byte(tt.content), 0o644); err != nil {
				t.Fatal(err)
			}

			if got := CurrentEpoch(dir); got != 0 {
				t.Errorf("CurrentEpoch() = %d, want 0", got)
			}
		})
	}
}

func TestRecordAndCurrentEpoch(t *testing.T) {
	dir := t.TempDir()

	for _, epoch := range []int{0, 1, 7, 120} {
		if err := RecordEpoch(dir, epoch); err != nil {
			t.Fatalf("RecordEpoch(%d) error = %v", epoch, err)
		}
		if got := CurrentEpoch(dir); got != epoch {
			t.Errorf("CurrentEpoch() = %d, want %d", got, epoch)
		}
	}
}

func TestRecordEpochCreatesDir(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "run", "output")

	if err := RecordEpoch(dir, 3); err != nil {
		t.Fatalf("RecordEpoch() error = %v", err)
	}
	if got := CurrentEpoch(dir); got != 3 {
		t.Errorf("CurrentEpoch() = %d, want 3", got)
	}
}
