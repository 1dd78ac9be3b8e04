package tsp_test

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/tspprune/tsp"
)

func TestDecodeConfig(t *testing.T) {
	cfg, err := tsp.DecodeConfig(strings.NewReader(`
decimals    = 0
dominance   = "all-vs-all"
bucket_size = 4
`))
	require.NoError(t, err)
	require.NotNil(t, cfg.Decimals)
	assert.Equal(t, 0, *cfg.Decimals)
	assert.Equal(t, "all-vs-all", cfg.Dominance)
	assert.Equal(t, 4, cfg.BucketSize)

	inst := unitSquare(t, cfg.Options()...)
	assert.Equal(t, 0, inst.Decimals())
	assert.Equal(t, 1, inst.Line(0, 3).Length())
	assert.Equal(t, 8, inst.DominatedEdges().Count())
}

func TestDecodeConfig_Defaults(t *testing.T) {
	cfg, err := tsp.DecodeConfig(strings.NewReader(""))
	require.NoError(t, err)
	assert.Nil(t, cfg.Decimals)

	inst := unitSquare(t, cfg.Options()...)
	assert.Equal(t, 2, inst.Decimals())
}

func TestDecodeConfig_Invalid(t *testing.T) {
	cases := map[string]string{
		"decimals":  "decimals = 5",
		"dominance": `dominance = "sweep"`,
		"bucket":    "bucket_size = -1",
		"syntax":    "decimals = ",
	}
	for name, doc := range cases {
		t.Run(name, func(t *testing.T) {
			_, err := tsp.DecodeConfig(strings.NewReader(doc))
			require.Error(t, err)
			assert.Contains(t, err.Error(), "tsp: decode config")
		})
	}

	_, err := tsp.DecodeConfig(strings.NewReader(`dominance = "sweep"`))
	require.ErrorIs(t, err, tsp.ErrUnknownDominance)
}

func TestLoadConfig(t *testing.T) {
	path := filepath.Join(t.TempDir(), "tsp.toml")
	require.NoError(t, os.WriteFile(path, []byte("dominance = \"spatial\"\nbucket_size = 2\n"), 0o600))

	cfg, err := tsp.LoadConfig(path)
	require.NoError(t, err)
	assert.Equal(t, 2, cfg.BucketSize)

	_, err = tsp.LoadConfig(filepath.Join(t.TempDir(), "missing.toml"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "tsp: load config")
}

func TestParseDominance(t *testing.T) {
	for _, d := range []tsp.Dominance{tsp.DominanceSpatialIndex, tsp.DominanceAllVsAll} {
		got, err := tsp.ParseDominance(d.String())
		require.NoError(t, err)
		assert.Equal(t, d, got)
	}
	assert.Equal(t, "Dominance(9)", tsp.Dominance(9).String())
}
