package core

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestInputFrameKeepsOrder(t *testing.T) {
	f := NewInputFrame()
	f.Set(ActionUp)
	f.Set(ActionNone)
	f.Set(ActionLeft)
	f.Set(ActionUp)

	assert.Equal(t, []Action{ActionUp, ActionLeft, ActionUp}, f.Actions())
	assert.True(t, f.Has(ActionLeft))
	assert.False(t, f.Has(ActionRestart))

	f.Clear()
	assert.Empty(t, f.Actions())
	assert.False(t, f.Has(ActionUp))
}

func TestActionString(t *testing.T) {
	assert.Equal(t, "Restart", ActionRestart.String())
	assert.Equal(t, "Unknown", Action(99).String())
}
