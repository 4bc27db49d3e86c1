package util

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAbsInt(t *testing.T) {
	assert.Equal(t, 3, AbsInt(-3))
	assert.Equal(t, 3, AbsInt(3))
	assert.Equal(t, 0, AbsInt(0))
}

func TestGetTopNStrFloat(t *testing.T) {
	m := map[string]float64{"a": 1.0, "b": 3.0, "c": -2.0, "d": 3.0}
	top := GetTopNStrFloat(m, 3)
	assert.Equal(t, []TopNStrFloatDatum{{"b", 3.0}, {"d", 3.0}, {"a", 1.0}}, top)
	assert.Len(t, GetTopNStrFloat(m, 10), 4)
	assert.Empty(t, GetTopNStrFloat(nil, 5))
}

func TestMD5File(t *testing.T) {
	filename := filepath.Join(t.TempDir(), "corpus")
	require.NoError(t, os.WriteFile(filename, []byte("hello\n"), 0o644))
	sum, err := MD5File(filename)
	require.NoError(t, err)
	assert.Equal(t, "b1946ac92492d2347c6235b4d2611184", sum)

	_, err = MD5File(filepath.Join(t.TempDir(), "missing"))
	assert.Error(t, err)
}
