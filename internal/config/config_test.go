package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestProcessEnvironmentVariables_Defaults(t *testing.T) {
	cfg, err := ProcessEnvironmentVariables()
	require.NoError(t, err)

	assert.Equal(t, "Fake", cfg.SyntheticPayee)
	assert.Equal(t, "Inflow: Ready to Assign", cfg.InflowCategory)
	assert.Empty(t, cfg.ReviewPrefix)
}

func TestProcessEnvironmentVariables_Overrides(t *testing.T) {
	t.Setenv("SNAPSHOT_SYNTHETIC_PAYEE", "Internal")
	t.Setenv("SNAPSHOT_INFLOW_CATEGORY", "To Assign")
	t.Setenv("SNAPSHOT_REVIEW_PREFIX", "[review] ")

	cfg, err := ProcessEnvironmentVariables()
	require.NoError(t, err)

	assert.Equal(t, "Internal", cfg.SyntheticPayee)
	assert.Equal(t, "To Assign", cfg.InflowCategory)
	assert.Equal(t, "[review] ", cfg.ReviewPrefix)
}
