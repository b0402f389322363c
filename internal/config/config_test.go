package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func Test_Validate_Defaults(t *testing.T) {
	cfg := &Config{}

	require.NoError(t, cfg.Validate())

	assert.Equal(t, "info", cfg.Log.Level)
	assert.Equal(t, 5, cfg.Store.LowStockThreshold)
}

func Test_Validate_Errors(t *testing.T) {
	testCases := []struct {
		name string
		cfg  Config
	}{
		{name: "invalid log level", cfg: Config{Log: LogConfig{Level: "verbose"}}},
		{name: "negative threshold", cfg: Config{Store: StoreConfig{LowStockThreshold: -1}}},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Error(t, tc.cfg.Validate())
		})
	}
}

func Test_String_ListsKeys(t *testing.T) {
	cfg := &Config{}
	require.NoError(t, cfg.Validate())

	s := cfg.String()
	assert.Contains(t, s, "store.low_stock_threshold: 5")
	assert.Contains(t, s, "seed.file: <none>")
	assert.Contains(t, s, "log.level: info")
}
