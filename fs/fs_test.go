package fs_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/pacchoferes/dispatch"
	"github.com/pacchoferes/dispatch/fs"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDecodeText(t *testing.T) {
	t.Parallel()

	t.Run("strips byte order mark", func(t *testing.T) {
		t.Parallel()

		text, err := fs.DecodeText([]byte("\xEF\xBB\xBFJuan\nCalle 1"))
		require.NoError(t, err)
		assert.Equal(t, "Juan\nCalle 1", text)
	})

	t.Run("rejects invalid UTF-8", func(t *testing.T) {
		t.Parallel()

		_, err := fs.DecodeText([]byte{0xff, 0xfe, 'J'})
		require.Error(t, err)
		assert.Equal(t, dispatch.EINVALID, dispatch.ErrorCode(err))
	})
}

func TestReadImportFile(t *testing.T) {
	t.Parallel()

	t.Run("reads file", func(t *testing.T) {
		t.Parallel()

		path := filepath.Join(t.TempDir(), "route.txt")
		require.NoError(t, os.WriteFile(path, []byte("Juan\nCalle 1\n"), 0644))

		text, err := fs.ReadImportFile(path)
		require.NoError(t, err)
		assert.Equal(t, "Juan\nCalle 1\n", text)
	})

	t.Run("returns error for missing file", func(t *testing.T) {
		t.Parallel()

		_, err := fs.ReadImportFile(filepath.Join(t.TempDir(), "missing.txt"))
		require.Error(t, err)
	})
}

func TestFormatBoard(t *testing.T) {
	t.Parallel()

	addresses := []*dispatch.Address{
		{Address: "Calle 1", Driver: "Juan"},
		{Address: "Calle 2", Driver: "Maria"},
		{Address: "Calle 3", Driver: ""},
		{Address: "Calle 4", Driver: "Juan"},
	}

	text, skipped := fs.FormatBoard(addresses)

	assert.Equal(t, "Juan\nCalle 1\nCalle 4\n\nMaria\nCalle 2\n", text)
	assert.Equal(t, 1, skipped)

	blocks := dispatch.ParseBlocks(text)
	require.Len(t, blocks, 2)
	assert.Equal(t, "Juan", blocks[0].Driver)
	assert.Equal(t, []string{"Calle 1", "Calle 4"}, blocks[0].Addresses)
}

func TestWriteExport(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "out", "board.txt")
	require.NoError(t, fs.WriteExport(path, "Juan\nCalle 1\n"))

	b, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "Juan\nCalle 1\n", string(b))
}
