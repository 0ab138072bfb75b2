package cli

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kidssmart-labs/edufind-cli/internal/core/domain"
)

func TestRegionsCmd_ListsAllCountries(t *testing.T) {
	out, err := executeCommand(t, "regions")

	require.NoError(t, err)
	assert.Contains(t, out, "Australia")
	assert.Contains(t, out, "Melbourne")
	assert.Contains(t, out, "United Kingdom")
}

func TestRegionsCmd_SingleCountry(t *testing.T) {
	out, err := executeCommand(t, "regions", "Canada")

	require.NoError(t, err)
	assert.Contains(t, out, "Toronto")
	assert.NotContains(t, out, "Melbourne")
}

func TestRegionsCmd_UnknownCountry(t *testing.T) {
	_, err := executeCommand(t, "regions", "Atlantis")

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}
