package cli_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rshade/holdtrack/internal/cli"
)

func TestVersionFlag(t *testing.T) {
	setupCLITest(t)

	out := mustExecute(t, "--version")
	assert.Contains(t, out, "test")
}

func TestStatus_Once(t *testing.T) {
	setupCLITest(t)
	url := startAPI(t, &holdersAPI{lastBlock: 19876543})

	out := mustExecute(t, "status", "--api-url", url)
	assert.Equal(t, "Last synced block: 19,876,543\n", out)
}

func TestStatus_ServerDown(t *testing.T) {
	setupCLITest(t)

	_, err := execute(t, "status", "--api-url", "http://127.0.0.1:1")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "fetching status")
}

func TestStatus_InvalidInterval(t *testing.T) {
	setupCLITest(t)

	_, err := execute(t, "status", "--watch", "--interval", "0s")
	require.Error(t, err)
}

func TestBrowse_RequiresTerminal(t *testing.T) {
	setupCLITest(t)

	_, err := execute(t, "browse")
	require.ErrorIs(t, err, cli.ErrNotTerminal)
}

func TestConfigInit(t *testing.T) {
	home := setupCLITest(t)

	out := mustExecute(t, "config", "init")
	assert.Contains(t, out, "Configuration initialized successfully")

	path := filepath.Join(home, "config.yaml")
	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "base_url: http://localhost:8000")
	assert.Contains(t, string(data), "page_size: 50")

	_, err = execute(t, "config", "init")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "already exists")

	mustExecute(t, "config", "init", "--force")
}

func TestConfigShow_AppliesFlags(t *testing.T) {
	setupCLITest(t)

	out := mustExecute(t, "config", "show", "--api-url", "https://holders.example.com", "--page-size", "25")
	assert.Contains(t, out, "base_url: https://holders.example.com")
	assert.Contains(t, out, "page_size: 25")
	assert.Contains(t, out, "timeout: 10s")
}

func TestConfigValidate(t *testing.T) {
	home := setupCLITest(t)

	out := mustExecute(t, "config", "validate")
	assert.Contains(t, out, "Configuration is valid")

	bad := "holders:\n  page_size: 9999\noutput:\n  default_format: xml\n"
	require.NoError(t, os.WriteFile(filepath.Join(home, "config.yaml"), []byte(bad), 0o600))

	_, err := execute(t, "config", "validate")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "holders.page_size")
	assert.Contains(t, err.Error(), "output.default_format")
}

func TestConfigValidate_Malformed(t *testing.T) {
	home := setupCLITest(t)
	require.NoError(t, os.WriteFile(filepath.Join(home, "config.yaml"), []byte("api: [unclosed"), 0o600))

	_, err := execute(t, "config", "validate")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "parsing config file")
}
