package envconfig

import (
	"log/slog"
	"testing"
)

func TestVar(t *testing.T) {
	cases := []struct {
		value string
		want  string
	}{
		{"plain", "plain"},
		{"  padded  ", "padded"},
		{`"quoted"`, "quoted"},
		{"'single'", "single"},
		{"", ""},
	}

	for _, tt := range cases {
		t.Setenv("IMAGEPIPE_TEST_VAR", tt.value)
		if got := Var("IMAGEPIPE_TEST_VAR"); got != tt.want {
			t.Errorf("Var(%q) = %q, want %q", tt.value, got, tt.want)
		}
	}
}

func TestDevices(t *testing.T) {
	t.Setenv("IMAGEPIPE_DEVICES", "")
	if got := Devices(); got != 1 {
		t.Errorf("Devices() = %d, want default 1", got)
	}

	t.Setenv("IMAGEPIPE_DEVICES", "8")
	if got := Devices(); got != 8 {
		t.Errorf("Devices() = %d, want 8", got)
	}

	t.Setenv("IMAGEPIPE_DEVICES", "banana")
	if got := Devices(); got != 1 {
		t.Errorf("Devices() = %d, want default 1 for invalid value", got)
	}
}

func TestSeed(t *testing.T) {
	t.Setenv("IMAGEPIPE_SEED", "")
	if got := Seed(); got != 0 {
		t.Errorf("Seed() = %d, want default 0", got)
	}

	t.Setenv("IMAGEPIPE_SEED", "-42")
	if got := Seed(); got != -42 {
		t.Errorf("Seed() = %d, want -42", got)
	}
}

func TestLogLevel(t *testing.T) {
	t.Setenv("IMAGEPIPE_DEBUG", "")
	if got := LogLevel(); got != slog.LevelInfo {
		t.Errorf("LogLevel() = %v, want info", got)
	}

	t.Setenv("IMAGEPIPE_DEBUG", "1")
	if got := LogLevel(); got != slog.LevelDebug {
		t.Errorf("LogLevel() = %v, want debug", got)
	}
}

func TestAsMapCoversAllVars(t *testing.T) {
	m := AsMap()
	for _, name := range []string{"IMAGEPIPE_DEBUG", "IMAGEPIPE_DEVICES", "IMAGEPIPE_WORKERS", "IMAGEPIPE_SEED", "IMAGEPIPE_OUTPUT"} {
		if _, ok := m[name]; !ok {
			t.Errorf("AsMap() missing %s", name)
		}
	}
}
