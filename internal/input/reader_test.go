package input_test

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/fpgrowth/internal/input"
)

func TestRead(t *testing.T) {
	src := `
# baskets
milk, bread
 bread ,butter,, jam

butter,milk,bread
`
	tx, err := input.Read(strings.NewReader(src), ",")
	require.NoError(t, err)
	assert.Equal(t, [][]string{
		{"milk", "bread"},
		{"bread", "butter", "jam"},
		{"butter", "milk", "bread"},
	}, tx)
}

func TestRead_Separator(t *testing.T) {
	tx, err := input.Read(strings.NewReader("a;b\nc ; d;\n ; \n"), ";")
	require.NoError(t, err)
	assert.Equal(t, [][]string{{"a", "b"}, {"c", "d"}}, tx)

	_, err = input.Read(strings.NewReader("a"), "")
	assert.ErrorIs(t, err, input.ErrEmptySeparator)
}

func TestRead_Empty(t *testing.T) {
	tx, err := input.Read(strings.NewReader(""), ",")
	require.NoError(t, err)
	assert.Empty(t, tx)
}

func TestReadFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "tx.txt")
	require.NoError(t, os.WriteFile(path, []byte("a,b\nb,c\n"), 0o600))

	tx, err := input.ReadFile(path, ",")
	require.NoError(t, err)
	assert.Equal(t, [][]string{{"a", "b"}, {"b", "c"}}, tx)

	_, err = input.ReadFile(filepath.Join(t.TempDir(), "missing.txt"), ",")
	assert.ErrorIs(t, err, os.ErrNotExist)
}
