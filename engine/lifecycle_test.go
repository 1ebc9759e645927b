package engine

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAllowedNextStatuses(t *testing.T) {
	tests := []struct {
		current Status
		want    []Status
	}{
		{StatusPending, []Status{StatusConfirmed, StatusRejected}},
		{StatusConfirmed, []Status{StatusInProgress, StatusCancelled}},
		{StatusInProgress, []Status{StatusCompleted, StatusCancelled}},
		{StatusCompleted, []Status{}},
		{StatusRejected, []Status{}},
		{StatusCancelled, []Status{}},
	}

	for _, tt := range tests {
		t.Run(string(tt.current), func(t *testing.T) {
			assert.Equal(t, tt.want, AllowedNextStatuses(tt.current))
		})
	}
}

func TestTransitionFromTerminalIsStateError(t *testing.T) {
	err := Transition(StatusCompleted, StatusConfirmed)
	require.Error(t, err)

	var stateErr *StateError
	require.True(t, errors.As(err, &stateErr))
	assert.Equal(t, StatusCompleted, stateErr.From)
	assert.Equal(t, StatusConfirmed, stateErr.To)
}

func TestTransitionRejectsSkippedStates(t *testing.T) {
	assert.Error(t, Transition(StatusPending, StatusCompleted))
	assert.Error(t, Transition(StatusPending, StatusInProgress))
	assert.Error(t, Transition(StatusConfirmed, StatusCompleted))
	assert.Error(t, Transition(StatusConfirmed, StatusRejected))
}

func TestTransitionAllowsLifecyclePath(t *testing.T) {
	assert.NoError(t, Transition(StatusPending, StatusConfirmed))
	assert.NoError(t, Transition(StatusPending, StatusRejected))
	assert.NoError(t, Transition(StatusConfirmed, StatusInProgress))
	assert.NoError(t, Transition(StatusConfirmed, StatusCancelled))
	assert.NoError(t, Transition(StatusInProgress, StatusCompleted))
	assert.NoError(t, Transition(StatusInProgress, StatusCancelled))
}

func TestTransitionRejectsUnknownStatus(t *testing.T) {
	assert.Error(t, Transition(StatusPending, Status("archived")))
}

func TestIsTerminal(t *testing.T) {
	assert.True(t, IsTerminal(StatusCompleted))
	assert.True(t, IsTerminal(StatusRejected))
	assert.True(t, IsTerminal(StatusCancelled))
	assert.False(t, IsTerminal(StatusPending))
	assert.False(t, IsTerminal(StatusConfirmed))
	assert.False(t, IsTerminal(StatusInProgress))
}

func TestBlockingStatuses(t *testing.T) {
	assert.ElementsMatch(t,
		[]Status{StatusPending, StatusConfirmed, StatusInProgress},
		BlockingStatuses())

	for _, s := range BlockingStatuses() {
		assert.True(t, IsBlocking(s))
	}
	assert.False(t, IsBlocking(StatusCompleted))
	assert.False(t, IsBlocking(StatusCancelled))
	assert.False(t, IsBlocking(StatusRejected))
}
