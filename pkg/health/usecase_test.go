package health

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

type stubChecker struct {
	name string
	err  error
}

func (c stubChecker) Name() string                    { return c.name }
func (c stubChecker) Check(ctx context.Context) error { return c.err }

func TestReady_NoCheckers(t *testing.T) {
	assert.NoError(t, NewService().Ready(context.Background()))
}

func TestReady_FailureNamesDependency(t *testing.T) {
	svc := NewService(
		stubChecker{name: "postgres"},
		stubChecker{name: "cache", err: errors.New("connection refused")},
	)

	err := svc.Ready(context.Background())
	assert.ErrorContains(t, err, "cache")
	assert.ErrorContains(t, err, "connection refused")
}
