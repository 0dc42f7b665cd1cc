package train

import (
	"fmt"
	"log/slog"

	"github.com/imagepipe/imagepipe/envconfig"
)

// Strategy describes how a global batch is split across replicas.
type Strategy struct {
	Replicas  int
	BatchSize int
}

// PerReplicaBatch returns the batch size each replica processes.
func (s Strategy) PerReplicaBatch() int {
	return s.BatchSize / s.Replicas
}

// Distributed reports whether the strategy spans more than one device.
func (s Strategy) Distributed() bool {
	return s.Replicas > 1
}

// Scope decides whether to enter a multi-device data-parallel scope
// based on the configured device count. When more than one device is
// available the global batch size must divide evenly across replicas;
// otherwise the call fails fast with a descriptive error.
func Scope(batchSize int) (Strategy, error) {
	if batchSize <= 0 {
		return Strategy{}, fmt.Errorf("train: batch size must be positive, got %d", batchSize)
	}

	devices := envconfig.Devices()
	if devices <= 1 {
		return Strategy{Replicas: 1, BatchSize: batchSize}, nil
	}

	if batchSize%devices != 0 {
		return Strategy{}, fmt.Errorf("train: batch size %d cannot be divided onto %d devices", batchSize, devices)
	}

	slog.Debug("entering data-parallel scope", "devices", devices, "batch", batchSize)
	return Strategy{Replicas: devices, BatchSize: batchSize}, nil
}
