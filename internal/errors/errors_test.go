package errors

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLaunchError(t *testing.T) {
	err := NewLaunchError("harbor", 4, "current time is 6", ErrTimeBeforeCursor)

	assert.Equal(t, "launch rejected [harbor] at t=4: current time is 6: launch time is before the current time", err.Error())
	assert.True(t, Is(err, ErrTimeBeforeCursor))
	assert.False(t, Is(err, ErrCapacityReached))
}

func TestShowError(t *testing.T) {
	err := NewShowError(2, "add firework", Wrapf(ErrShowNotFound, "town has %d shows", 1))

	assert.Equal(t, "show error [2] add firework: town has 1 shows: show not found", err.Error())
	assert.True(t, Is(err, ErrShowNotFound))

	var showErr *ShowError
	assert.True(t, As(Wrap(err, "replay"), &showErr))
	assert.Equal(t, 2, showErr.Index)
}

func TestJoin(t *testing.T) {
	assert.NoError(t, Join(ErrConfigInvalid, nil))

	err := Join(ErrScenarioInvalid, []error{
		NewValidationError("shows", 0, "at least one show is required"),
		errors.New("second"),
	})
	assert.True(t, Is(err, ErrScenarioInvalid))
	assert.Contains(t, err.Error(), "validation error: shows (0): at least one show is required")
	assert.Contains(t, err.Error(), "second")

	var vErr *ValidationError
	assert.True(t, As(err, &vErr))
	assert.Equal(t, "shows", vErr.Field)
}

func TestWrapNil(t *testing.T) {
	assert.NoError(t, Wrap(nil, "context"))
	assert.NoError(t, Wrapf(nil, "context %d", 1))
}
