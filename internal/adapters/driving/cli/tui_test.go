package cli

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTUICmd_Use(t *testing.T) {
	assert.Equal(t, "tui", tuiCmd.Use)
}

func TestTUICmd_Long(t *testing.T) {
	assert.Contains(t, tuiCmd.Long, "Ctrl+F")
	assert.Contains(t, tuiCmd.Long, "Ctrl+S")
}

func TestTUICmd_ErrorsWithoutServices(t *testing.T) {
	SetServices(nil, nil, nil)

	_, err := execute(t, "tui")

	assert.Error(t, err)
	assert.Contains(t, err.Error(), "stamp service is required")
}
