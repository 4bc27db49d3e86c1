package conf

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReadDefaults(t *testing.T) {
	c, err := Read(strings.NewReader(""))
	require.NoError(t, err)
	assert.Equal(t, Default(), c)

	c, err = Read(strings.NewReader("# nothing set\n"))
	require.NoError(t, err)
	assert.Equal(t, "en.tr100", c.Corpus)
	assert.Equal(t, 5, c.Iterations)
}

func TestRead(t *testing.T) {
	c, err := Read(strings.NewReader(`
corpus: data/en.tr
iterations: 12
verbose: true
normalize: true
limit: 40
`))
	require.NoError(t, err)
	assert.Equal(t, &Conf{
		Corpus:     "data/en.tr",
		Iterations: 12,
		Verbose:    true,
		Normalize:  true,
		Limit:      40,
	}, c)
}

func TestReadErrors(t *testing.T) {
	for _, text := range []string{
		"iterations: -1\n",
		"limit: -3\n",
		"corpus: \"\"\n",
		"iterations: many\n",
		"epochs: 3\n",
	} {
		_, err := Read(strings.NewReader(text))
		assert.Error(t, err, text)
	}
}

func TestReadFile(t *testing.T) {
	filename := filepath.Join(t.TempDir(), "train.yaml")
	require.NoError(t, os.WriteFile(filename, []byte("iterations: 2\n"), 0o644))
	c, err := ReadFile(filename)
	require.NoError(t, err)
	assert.Equal(t, 2, c.Iterations)

	_, err = ReadFile(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.ErrorIs(t, err, os.ErrNotExist)
}
