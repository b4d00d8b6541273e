package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_DefaultsWithSymbol(t *testing.T) {
	t.Setenv("LAZYTRADER_SYMBOL", "arkk")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "arkk", cfg.Symbol)
	assert.Equal(t, ".", cfg.DataDir)
	assert.Equal(t, DefaultInitialFund, cfg.InitialFund)
	assert.Equal(t, DefaultPineOut, cfg.PineOut)
	assert.Equal(t, []float64{20}, cfg.OperationPcts)
	assert.Equal(t, []float64{2}, cfg.Volatilities)
	assert.Equal(t, 1, cfg.Workers)
}

func TestLoad_RequiresSymbol(t *testing.T) {
	t.Setenv("LAZYTRADER_SYMBOL", "")

	_, err := Load()
	assert.Error(t, err)
}

func TestLoad_Overrides(t *testing.T) {
	t.Setenv("LAZYTRADER_SYMBOL", "tsla")
	t.Setenv("LAZYTRADER_DATA_DIR", "/data")
	t.Setenv("LAZYTRADER_INITIAL_FUND", "50000")
	t.Setenv("LAZYTRADER_OPERATION_PCTS", "10, 20,30")
	t.Setenv("LAZYTRADER_VOLATILITIES", "0.5,1,2")
	t.Setenv("LAZYTRADER_WORKERS", "8")
	t.Setenv("LAZYTRADER_PINE_OUT", "out.pine")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "tsla", cfg.Symbol)
	assert.Equal(t, "/data", cfg.DataDir)
	assert.Equal(t, 50000.0, cfg.InitialFund)
	assert.Equal(t, []float64{10, 20, 30}, cfg.OperationPcts)
	assert.Equal(t, []float64{0.5, 1, 2}, cfg.Volatilities)
	assert.Equal(t, 8, cfg.Workers)
	assert.Equal(t, "out.pine", cfg.PineOut)
}

func TestLoad_RejectsBadValues(t *testing.T) {
	t.Setenv("LAZYTRADER_SYMBOL", "arkk")

	t.Run("unparseable fund", func(t *testing.T) {
		t.Setenv("LAZYTRADER_INITIAL_FUND", "lots")
		_, err := Load()
		assert.Error(t, err)
	})

	t.Run("non-positive fund", func(t *testing.T) {
		t.Setenv("LAZYTRADER_INITIAL_FUND", "0")
		_, err := Load()
		assert.Error(t, err)
	})

	t.Run("unparseable grid list", func(t *testing.T) {
		t.Setenv("LAZYTRADER_OPERATION_PCTS", "10,twenty")
		_, err := Load()
		assert.Error(t, err)
	})

	t.Run("zero workers", func(t *testing.T) {
		t.Setenv("LAZYTRADER_WORKERS", "0")
		_, err := Load()
		assert.Error(t, err)
	})
}
