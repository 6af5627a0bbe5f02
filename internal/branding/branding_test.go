package branding

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestEmbeddedBranding(t *testing.T) {
	assert.Equal(t, "frontstrap", CLIName())
	assert.Equal(t, ".frontstrap", HomeDir())
	assert.Equal(t, "FRONTSTRAP", EnvPrefix())
	assert.NotEmpty(t, Description())
}

func TestEnvVar(t *testing.T) {
	assert.Equal(t, "FRONTSTRAP_TIMEOUT", EnvVar("timeout"))
	assert.Equal(t, "FRONTSTRAP_MIN_NODE_VERSION", EnvVar("min_node_version"))
}
