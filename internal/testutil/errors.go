package testutil

import (
	"context"
	"errors"

	"github.com/udisondev/npcfsm/internal/model"
)

// ErrSimulated is a sentinel error for testing error handling paths
var ErrSimulated = errors.New("simulated error for testing")

// FailingSource is an object source whose LoadAll always fails with Err
// (ErrSimulated when Err is nil).
type FailingSource struct {
	Err error
}

func (s FailingSource) LoadAll(ctx context.Context) ([]model.SceneObject, error) {
	if s.Err != nil {
		return nil, s.Err
	}
	return nil, ErrSimulated
}
