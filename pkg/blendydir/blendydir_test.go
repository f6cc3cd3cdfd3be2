package blendydir

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDir_PathAccessors(t *testing.T) {
	d := New("/tmp/project/.blendy")

	assert.Equal(t, "/tmp/project/.blendy", d.Root())
	assert.Equal(t, "/tmp/project/.blendy/config.yaml", d.ConfigPath())
	assert.Equal(t, "/tmp/project/.blendy/local", d.LocalDir())
	assert.Equal(t, "/tmp/project/.blendy/local/history.jsonl", d.HistoryPath())
	assert.Equal(t, "/tmp/project/.blendy/.gitignore", d.GitignorePath())
}

func TestDir_RelativePathMadeAbsolute(t *testing.T) {
	d := New(".blendy")

	assert.True(t, filepath.IsAbs(d.Root()))
}

func TestDir_Exists(t *testing.T) {
	tmp := t.TempDir()

	assert.True(t, New(tmp).Exists())
	assert.False(t, New(filepath.Join(tmp, "missing")).Exists())
}

func TestEnsureStructure(t *testing.T) {
	tmp := t.TempDir()
	d := New(tmp)

	require.NoError(t, EnsureStructure(d))

	info, err := os.Stat(d.LocalDir())
	require.NoError(t, err)
	assert.True(t, info.IsDir())

	data, err := os.ReadFile(d.GitignorePath())
	require.NoError(t, err)
	assert.Equal(t, "local/\n", string(data))
}

func TestEnsureStructure_Idempotent(t *testing.T) {
	tmp := t.TempDir()
	d := New(tmp)

	require.NoError(t, EnsureStructure(d))

	// A user-edited .gitignore survives a second call.
	require.NoError(t, os.WriteFile(d.GitignorePath(), []byte("local/\ncustom/\n"), 0o600))
	require.NoError(t, EnsureStructure(d))

	data, err := os.ReadFile(d.GitignorePath())
	require.NoError(t, err)
	assert.Equal(t, "local/\ncustom/\n", string(data))
}

func TestBootstrap(t *testing.T) {
	tmp := t.TempDir()
	d := New(filepath.Join(tmp, ".blendy"))

	require.NoError(t, Bootstrap(d, []byte("host_url: ws://localhost:7520/mcp\n")))

	assert.True(t, d.Exists())

	data, err := os.ReadFile(d.ConfigPath())
	require.NoError(t, err)
	assert.Contains(t, string(data), "host_url")
}

func TestBootstrap_DoesNotOverwrite(t *testing.T) {
	tmp := t.TempDir()
	d := New(filepath.Join(tmp, ".blendy"))

	require.NoError(t, Bootstrap(d, []byte("first\n")))
	require.NoError(t, Bootstrap(d, []byte("second\n")))

	data, err := os.ReadFile(d.ConfigPath())
	require.NoError(t, err)
	assert.Equal(t, "first\n", string(data))
}
