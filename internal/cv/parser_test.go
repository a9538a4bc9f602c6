package cv

import (
	"os"
	"strings"
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParser_ParseFile_Text(t *testing.T) {
	dir := t.TempDir()
	p := NewParser(dir)

	up, err := p.ParseFile("../../transcript.txt", strings.NewReader("  I know Python.\n"))
	require.NoError(t, err)
	assert.Equal(t, "transcript.txt", up.Filename)
	assert.Equal(t, ".txt", up.FileType)
	assert.Equal(t, int64(17), up.FileSize)
	assert.Equal(t, "I know Python.", up.Text)
	assert.True(t, strings.HasPrefix(up.Path, dir), "uploads stay inside the uploads dir")

	_, err = os.Stat(up.Path)
	assert.NoError(t, err)
}

func TestParser_ParseFile_Unsupported(t *testing.T) {
	_, err := NewParser(t.TempDir()).ParseFile("song.mp3", strings.NewReader("x"))
	assert.True(t, errors.Is(err, ErrUnsupportedFile))
}
