package encode

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/relnet-dev/relnet/internal/cnf"
	"github.com/relnet-dev/relnet/internal/dyadic"
)

const instance = `p g
T 1 4
e 1 2 0.5
e 1 3 0.625
e 2 4 0.5
e 3 4 0.5
`

func TestEncodeWritesFormula(t *testing.T) {
	dir := t.TempDir()
	graphPath := filepath.Join(dir, "diamond.txt")
	cnfPath := filepath.Join(dir, "diamond.cnf")
	require.NoError(t, os.WriteFile(graphPath, []byte(instance), 0o600))

	require.NoError(t, encode(graphPath, cnfPath, dyadic.DefaultMaxBits))

	cnfFile, err := os.Open(cnfPath)
	require.NoError(t, err)
	defer cnfFile.Close()

	f, err := cnf.Parse(cnfFile)
	require.NoError(t, err)
	assert.Equal(t, []int{1, 2, 3, 4, 5, 6}, f.Sampling)
	assert.NotEmpty(t, f.Clauses)
}

func TestEncodeRejectsBadInput(t *testing.T) {
	dir := t.TempDir()
	graphPath := filepath.Join(dir, "bad.txt")
	cnfPath := filepath.Join(dir, "bad.cnf")
	require.NoError(t, os.WriteFile(graphPath, []byte("p g\nT 1\ne 1 2 0.5\n"), 0o600))

	err := encode(graphPath, cnfPath, dyadic.DefaultMaxBits)
	assert.Error(t, err)

	// fail fast: no partial formula may reach the output path
	_, statErr := os.Stat(cnfPath)
	assert.True(t, os.IsNotExist(statErr))
}

func TestEncodeCommandArgs(t *testing.T) {
	cmd := NewEncodeCommand()
	cmd.SetArgs([]string{"missing-input.txt", "out.cnf"})
	assert.Error(t, cmd.Execute())
}
