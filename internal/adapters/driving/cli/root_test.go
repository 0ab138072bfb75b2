package cli

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/kidssmart-labs/edufind-cli/internal/logger"
)

func TestApplyConfigVerbosity_EnablesFromConfig(t *testing.T) {
	logger.SetVerbose(false)
	t.Cleanup(func() { logger.SetVerbose(false) })

	cfg := newMockConfig()
	cfg.data["verbose"] = true

	applyConfigVerbosity(cfg)

	assert.True(t, logger.IsVerbose())
}

func TestApplyConfigVerbosity_UnsetKeyKeepsQuiet(t *testing.T) {
	logger.SetVerbose(false)

	applyConfigVerbosity(newMockConfig())

	assert.False(t, logger.IsVerbose())
}

func TestApplyConfigVerbosity_ConfigFalseDoesNotDisableFlag(t *testing.T) {
	verboseFlag = true
	logger.SetVerbose(true)
	t.Cleanup(func() {
		verboseFlag = false
		logger.SetVerbose(false)
	})

	cfg := newMockConfig()
	cfg.data["verbose"] = false

	applyConfigVerbosity(cfg)

	assert.True(t, logger.IsVerbose())
}
