package debug

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDropError(t *testing.T) {
	assert.NotPanics(t, func() { DropError("TEST", errors.New("boom")) })
	assert.NotPanics(t, func() { DropError("TEST", nil) })
}

func TestDropMessage(t *testing.T) {
	assert.NotPanics(t, func() { DropMessage("TEST", "message") })
	assert.NotPanics(t, func() { DropMessage("", "") })
}
