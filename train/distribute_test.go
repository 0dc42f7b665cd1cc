package train

import "testing"

func TestScopeSingleDevice(t *testing.T) {
	t.Setenv("IMAGEPIPE_DEVICES", "1")

	s, err := Scope(32)
	if err != nil {
		t.Fatalf("Scope() error = %v", err)
	}
	if s.Replicas != 1 || s.BatchSize != 32 {
		t.Errorf("Scope() = %+v, want 1 replica, batch 32", s)
	}
	if s.Distributed() {
		t.Error("Distributed() = true, want false")
	}
	if got := s.PerReplicaBatch(); got != 32 {
		t.Errorf("PerReplicaBatch() = %d, want 32", got)
	}
}

func TestScopeMultiDevice(t *testing.T) {
	t.Setenv("IMAGEPIPE_DEVICES", "4")

	s, err := Scope(32)
	if err != nil {
		t.Fatalf("Scope() error = %v", err)
	}
	if s.Replicas != 4 || s.BatchSize != 32 {
		t.Errorf("Scope() = %+v, want 4 replicas, batch 32", s)
	}
	if !s.Distributed() {
		t.Error("Distributed() = false, want true")
	}
	if got := s.PerReplicaBatch(); got != 8 {
		t.Errorf("PerReplicaBatch() = %d, want 8", got)
	}
}

func TestScopeIndivisibleBatch(t *testing.T) {
	t.Setenv("IMAGEPIPE_DEVICES", "3")

	if _, err := Scope(32); err == nil {
		t.Error("Scope(32) on 3 devices: error = nil, want divisibility error")
	}
}

func TestScopeInvalidBatch(t *testing.T) {
	if _, err := Scope(0); err == nil {
		t.Error("Scope(0) error = nil, want non-nil")
	}
	if _, err := Scope(-8); err == nil {
		t.Error("Scope(-8) error = nil, want non-nil")
	}
}
