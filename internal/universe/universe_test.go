package universe

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sampleYAML = `
tickers:
  - symbol: AAPL
    name: Apple Inc.
  - symbol: MSFT
    name: Microsoft Corp.
  - symbol: GOOGL
    name: Alphabet Inc.
`

func TestParse(t *testing.T) {
	u, err := Parse([]byte(sampleYAML))
	require.NoError(t, err)

	assert.Equal(t, 3, u.Size())
	assert.Equal(t, []string{"AAPL", "MSFT", "GOOGL"}, u.Symbols())
	assert.True(t, u.Contains("MSFT"))
	assert.False(t, u.Contains("TSLA"))

	tickers := u.Tickers()
	require.Len(t, tickers, 3)
	assert.Equal(t, "Apple Inc.", tickers[0].Name)
}

func TestParse_PreservesOrder(t *testing.T) {
	u, err := Parse([]byte(sampleYAML))
	require.NoError(t, err)
	assert.Equal(t, "AAPL", u.Symbols()[0])
	assert.Equal(t, "GOOGL", u.Symbols()[2])
}

func TestParse_RejectsEmpty(t *testing.T) {
	_, err := Parse([]byte("tickers: []"))
	assert.Error(t, err)
}

func TestParse_RejectsDuplicates(t *testing.T) {
	_, err := Parse([]byte(`
tickers:
  - symbol: AAPL
    name: Apple Inc.
  - symbol: AAPL
    name: Apple again
`))
	assert.Error(t, err)
}

func TestParse_RejectsMissingSymbol(t *testing.T) {
	_, err := Parse([]byte(`
tickers:
  - name: Mystery Corp.
`))
	assert.Error(t, err)
}

func TestLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "universe.yaml")
	require.NoError(t, os.WriteFile(path, []byte(sampleYAML), 0644))

	u, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, 3, u.Size())
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)
}
