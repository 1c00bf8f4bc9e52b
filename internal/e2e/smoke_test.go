package e2e

import (
	"bytes"
	"os"
	"os/exec"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const smokePrivateKey = "0x4c0883a69102937d6231471b5dbb6204fe5129617082792ae468d01a3f362318"

func TestSmokeFlow(t *testing.T) {
	home := t.TempDir()
	binaryPath := buildBinary(t)

	stdout, stderr, err := runWeth(t, binaryPath, home, "version")
	require.NoError(t, err, "stderr: %s", stderr)
	assert.NotEmpty(t, stdout)

	stdout, stderr, err = runWeth(t, binaryPath, home,
		"wallet", "import",
		"--name", "Primary",
		"--private-key", smokePrivateKey,
	)
	require.NoError(t, err, "stderr: %s", stderr)
	assert.Contains(t, stdout, "imported Primary")

	stdout, stderr, err = runWeth(t, binaryPath, home, "wallet", "list")
	require.NoError(t, err, "stderr: %s", stderr)
	assert.Contains(t, stdout, "Primary")
	assert.Contains(t, stdout, "key stored")

	_, err = os.Stat(filepath.Join(home, ".weth", "wallets.toml"))
	require.NoError(t, err)
}

func TestSmokeUnreachableNodeFails(t *testing.T) {
	home := t.TempDir()
	binaryPath := buildBinary(t)

	_, stderr, err := runWeth(t, binaryPath, home, "wallet", "import", "--private-key", smokePrivateKey)
	require.NoError(t, err, "stderr: %s", stderr)

	_, stderr, err = runWeth(t, binaryPath, home, "status", "--yes")
	require.Error(t, err)
	assert.Contains(t, stderr, "ledger unavailable")
}

func buildBinary(t *testing.T) string {
	t.Helper()

	binaryPath := filepath.Join(t.TempDir(), "weth-e2e")
	cmd := exec.Command("go", "build", "-o", binaryPath, "./cmd/weth")
	cmd.Dir = repoRoot(t)

	output, err := cmd.CombinedOutput()
	require.NoError(t, err, "build weth binary: %s", string(output))
	return binaryPath
}

func runWeth(t *testing.T, binaryPath, home string, args ...string) (string, string, error) {
	t.Helper()

	cmd := exec.Command(binaryPath, args...)
	cmd.Env = append(os.Environ(),
		"HOME="+home,
		"WETH_SECRETS_BACKEND=file",
		"WETH_NETWORK_RPC_URL=http://127.0.0.1:1",
	)

	var stdout bytes.Buffer
	var stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	err := cmd.Run()
	return stdout.String(), stderr.String(), err
}

func repoRoot(t *testing.T) string {
	t.Helper()

	wd, err := os.Getwd()
	require.NoError(t, err)
	return filepath.Clean(filepath.Join(wd, "..", ".."))
}
