package commands_test

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bankofai/agent-wallet/cmd/keystore/commands"
	"github.com/bankofai/agent-wallet/internal/app"
	"github.com/bankofai/agent-wallet/internal/crypto"
)

func run(t *testing.T, args ...string) (string, error) {
	t.Helper()
	t.Setenv(app.EnvPath, "")
	t.Setenv(app.EnvPassword, "")

	var out bytes.Buffer
	root := commands.NewRootCmd()
	root.SetOut(&out)
	root.SetErr(&bytes.Buffer{})
	root.SetArgs(args)
	err := root.Execute()
	return out.String(), err
}

func TestCLI_Lifecycle(t *testing.T) {
	path := filepath.Join(t.TempDir(), "ks.bin")

	out, err := run(t, "--path", path, "init")
	require.NoError(t, err)
	assert.Equal(t, "Created: "+path+"\n", out)

	_, err = run(t, "--path", path, "init")
	assert.ErrorContains(t, err, "file already exists")

	out, err = run(t, "--path", path, "write", "privateKey", `"abc`, `def"`)
	require.NoError(t, err)
	assert.Equal(t, "Written: privateKey\n", out)

	_, err = run(t, "--path", path, "write", "apiKey", "xyz")
	require.NoError(t, err)

	out, err = run(t, "--path", path, "read", "privateKey")
	require.NoError(t, err)
	assert.Equal(t, "abc def\n", out)

	out, err = run(t, "--path", path, "read")
	require.NoError(t, err)
	var all map[string]string
	require.NoError(t, json.Unmarshal([]byte(out), &all))
	assert.Equal(t, map[string]string{"privateKey": "abc def", "apiKey": "xyz"}, all)

	out, err = run(t, "--path", path, "delete", "apiKey")
	require.NoError(t, err)
	assert.Equal(t, "Deleted: apiKey\n", out)

	_, err = run(t, "--path", path, "read", "apiKey")
	assert.ErrorContains(t, err, "key not found: apiKey")

	_, err = run(t, "--path", path, "delete", "apiKey")
	assert.ErrorContains(t, err, "key not found: apiKey")

	out, err = run(t, "--path", path, "info")
	require.NoError(t, err)
	assert.Contains(t, out, "Format:  binary")
	assert.Contains(t, out, "Entries: 1")
}

func TestCLI_Encrypted(t *testing.T) {
	path := filepath.Join(t.TempDir(), "ks.json")

	_, err := run(t, "--path", path, "-p", "my-password", "write", "secret", "treasure")
	require.NoError(t, err)

	raw, err := os.ReadFile(path)
	require.NoError(t, err)
	var v any
	require.NoError(t, json.Unmarshal(raw, &v))
	assert.True(t, crypto.IsEncryptedPayload(v))

	out, err := run(t, "--path", path, "--password", "my-password", "read", "secret")
	require.NoError(t, err)
	assert.Equal(t, "treasure\n", out)

	_, err = run(t, "--path", path, "read")
	assert.ErrorContains(t, err, "no password")

	_, err = run(t, "--path", path, "-p", "wrong", "read")
	assert.ErrorIs(t, err, crypto.ErrAuthentication)
}

func TestCLI_InfoLegacyAndMissing(t *testing.T) {
	dir := t.TempDir()

	out, err := run(t, "--path", filepath.Join(dir, "missing"), "info")
	require.NoError(t, err)
	assert.Contains(t, out, "Format:  none")
	assert.Contains(t, out, "Size:    -")

	legacy := filepath.Join(dir, "legacy.json")
	require.NoError(t, os.WriteFile(legacy, []byte(`{"oldKey":"oldVal"}`), 0o600))
	out, err = run(t, "--path", legacy, "info")
	require.NoError(t, err)
	assert.Contains(t, out, "Format:  legacy-json (legacy, upgraded on next write)")
	assert.Contains(t, out, "Size:    19 B")
}

func TestCLI_EnvPath(t *testing.T) {
	path := filepath.Join(t.TempDir(), "env.bin")

	var out bytes.Buffer
	root := commands.NewRootCmd()
	root.SetOut(&out)
	root.SetErr(&bytes.Buffer{})
	root.SetArgs([]string{"write", "k", "v"})
	t.Setenv(app.EnvPath, path)
	t.Setenv(app.EnvPassword, "")
	require.NoError(t, root.Execute())

	_, err := os.Stat(path)
	assert.NoError(t, err)
}
