package structure

import (
	"testing"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newOps(t *testing.T, files map[string]string) FileOps {
	t.Helper()
	src := afero.NewMemMapFs()
	for p, content := range files {
		require.NoError(t, afero.WriteFile(src, p, []byte(content), 0o644))
	}
	return FileOps{Src: src, Dst: afero.NewMemMapFs()}
}

func TestCopyDirectory(t *testing.T) {
	ops := newOps(t, map[string]string{
		"tpl/a.txt":     "a",
		"tpl/sub/b.txt": "b",
	})

	written, err := ops.Copy("out", "tpl")
	require.NoError(t, err)
	assert.ElementsMatch(t, []string{"out/a.txt", "out/sub/b.txt"}, written)

	data, err := afero.ReadFile(ops.Dst, "out/sub/b.txt")
	require.NoError(t, err)
	assert.Equal(t, "b", string(data))
}

func TestCopyManySources(t *testing.T) {
	ops := newOps(t, map[string]string{
		"one/a.txt": "a",
		"two/b.txt": "b",
	})

	written, err := ops.Copy("out", "one", "two")
	require.NoError(t, err)
	assert.Len(t, written, 2)
}

func TestCopySingleFile(t *testing.T) {
	ops := newOps(t, map[string]string{"root/.gitignore": "dist/"})

	written, err := ops.Copy("project/.gitignore", "root/.gitignore")
	require.NoError(t, err)
	assert.Equal(t, []string{"project/.gitignore"}, written)
}

func TestCopyMissingSource(t *testing.T) {
	ops := newOps(t, nil)

	_, err := ops.Copy("out", "missing")
	assert.Error(t, err)
}

func TestWriteIfExists(t *testing.T) {
	ops := newOps(t, nil)

	ok, err := ops.WriteIfExists("absent.txt", []byte("x"))
	require.NoError(t, err)
	assert.False(t, ok)
	exists, _ := afero.Exists(ops.Dst, "absent.txt")
	assert.False(t, exists)

	require.NoError(t, afero.WriteFile(ops.Dst, "present.txt", []byte("old"), 0o644))
	ok, err = ops.WriteIfExists("present.txt", []byte("new"))
	require.NoError(t, err)
	assert.True(t, ok)

	data, err := ops.ReadOrEmpty("present.txt")
	require.NoError(t, err)
	assert.Equal(t, "new", string(data))
}

func TestReadOrEmpty(t *testing.T) {
	ops := newOps(t, nil)

	data, err := ops.ReadOrEmpty("missing.txt")
	require.NoError(t, err)
	assert.Nil(t, data)
}

func TestDeleteIfExists(t *testing.T) {
	ops := newOps(t, nil)
	require.NoError(t, afero.WriteFile(ops.Dst, "dir/.gitkeep", nil, 0o644))

	require.NoError(t, ops.DeleteIfExists("dir/.gitkeep"))
	require.NoError(t, ops.DeleteIfExists("dir/.gitkeep"))

	exists, _ := afero.Exists(ops.Dst, "dir/.gitkeep")
	assert.False(t, exists)
}

func TestRelTo(t *testing.T) {
	assert.Equal(t, "src/v6y-front/package.json", relTo("./vitality", "vitality/src/v6y-front/package.json"))
	assert.Equal(t, ".", relTo("./vitality", "vitality"))
	assert.Equal(t, "a", relTo("/tmp/x", "/tmp/x/a"))
}
