package cli

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestVersionCmd_Use(t *testing.T) {
	assert.Equal(t, "version", versionCmd.Use)
}

func TestVersionCmd_PrintsVersion(t *testing.T) {
	output, err := execute(t, "version")

	require.NoError(t, err)
	assert.Contains(t, output, "qrstamp")
	assert.Contains(t, output, version)
}

func TestRootCmd_Use(t *testing.T) {
	assert.Equal(t, "qrstamp", rootCmd.Use)
}

func TestRootCmd_HasVerboseFlag(t *testing.T) {
	flag := rootCmd.PersistentFlags().Lookup("verbose")
	require.NotNil(t, flag)
	assert.Equal(t, "false", flag.DefValue)
}
