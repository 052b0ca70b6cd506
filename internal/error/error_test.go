package error

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAppErrorMessage(t *testing.T) {
	inner := errors.New("disk full")
	err := New(StorageError, "failed to write state", inner)

	assert.Equal(t, "failed to write state: disk full", err.Error())
	assert.ErrorIs(t, err, inner)
	assert.Equal(t, "bare", New(ValidationError, "bare", nil).Error())
}

func TestIs(t *testing.T) {
	err := fmt.Errorf("dispatch run: %w", New(DispatchError, "status 500", nil))

	assert.True(t, Is(err, DispatchError))
	assert.False(t, Is(err, ConfigError))
	assert.False(t, Is(errors.New("plain"), DispatchError))
}
