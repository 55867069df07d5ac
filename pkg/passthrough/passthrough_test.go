package passthrough_test

import (
	"io/fs"
	"os"
	"path/filepath"
	"testing"

	"plansfs/pkg/passthrough"
	"plansfs/pkg/vfs"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRoundTrip(t *testing.T) {
	p := passthrough.NewWithBackend(afero.NewMemMapFs())

	require.NoError(t, p.WriteFile("/dir/file.txt", []byte("hello")))

	data, err := p.ReadFile("/dir/file.txt")
	require.NoError(t, err)
	assert.Equal(t, "hello", string(data))

	str, err := p.ReadFileString("/dir/file.txt")
	require.NoError(t, err)
	assert.Equal(t, "hello", str)
}

func TestExists(t *testing.T) {
	p := passthrough.NewWithBackend(afero.NewMemMapFs())

	assert.False(t, p.Exists("/nope"))

	require.NoError(t, p.WriteFile("/yes", []byte("y")))
	assert.True(t, p.Exists("/yes"))
}

func TestExistsOsBackend(t *testing.T) {
	p := passthrough.New()

	name := filepath.Join(t.TempDir(), "real.txt")
	assert.False(t, p.Exists(name))

	require.NoError(t, os.WriteFile(name, []byte("x"), 0o644))
	assert.True(t, p.Exists(name))
}

func TestRename(t *testing.T) {
	p := passthrough.NewWithBackend(afero.NewMemMapFs())

	require.NoError(t, p.WriteFile("/a", []byte("x")))
	require.NoError(t, p.Rename("/a", "/b"))

	assert.False(t, p.Exists("/a"))
	assert.True(t, p.Exists("/b"))
}

func TestRemove(t *testing.T) {
	p := passthrough.NewWithBackend(afero.NewMemMapFs())

	require.NoError(t, p.WriteFile("/a", []byte("x")))
	require.NoError(t, p.Remove("/a"))
	assert.False(t, p.Exists("/a"))

	err := p.Remove("/a")
	require.Error(t, err)
	assert.ErrorIs(t, err, fs.ErrNotExist)
}

func TestStat(t *testing.T) {
	p := passthrough.NewWithBackend(afero.NewMemMapFs())

	require.NoError(t, p.WriteFile("/a.txt", []byte("12345")))

	info, err := p.Stat("/a.txt")
	require.NoError(t, err)
	assert.Equal(t, int64(5), info.Size)
	assert.False(t, info.IsDir)

	_, err = p.Stat("/missing")
	require.Error(t, err)
}

func TestAsync(t *testing.T) {
	p := passthrough.NewWithBackend(afero.NewMemMapFs())

	done := make(chan error, 1)
	p.WriteFileAsync("/a", []byte("x"), func(err error) {
		done <- err
	})
	require.NoError(t, <-done)

	type result struct {
		data []byte
		err  error
	}
	read := make(chan result, 1)
	p.ReadFileAsync("/a", func(data []byte, err error) {
		read <- result{data, err}
	})

	res := <-read
	require.NoError(t, res.err)
	assert.Equal(t, "x", string(res.data))
}

var _ vfs.FileOperations = (*passthrough.FS)(nil)
