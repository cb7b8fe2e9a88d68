package flow

import (
	"context"
	"fmt"
)

// ErrSourceNotFound is returned when the specified source vertex is missing.
var ErrSourceNotFound = fmt.Errorf("flow: %w", errSourceNotFound)
var errSourceNotFound = fmt.Errorf("source vertex not found")

// ErrSinkNotFound is returned when the specified sink vertex is missing.
var ErrSinkNotFound = fmt.Errorf("flow: %w", errSinkNotFound)
var errSinkNotFound = fmt.Errorf("sink vertex not found")

// Options configures Dinic's algorithm.
//   - Ctx allows cancellation and deadlines.
//   - LevelRebuildInterval, if > 0, rebuilds the level graph every N
//     augmentations instead of after every blocking flow exhausts.
type Options struct {
	Ctx                  context.Context
	LevelRebuildInterval int
}

func (o *Options) normalize() {
	if o.Ctx == nil {
		o.Ctx = context.Background()
	}
}
