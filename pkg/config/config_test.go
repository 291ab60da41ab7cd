package config_test

import (
	_ "embed"
	"strings"
	"testing"

	. "github.com/pseudomuto/unitdiff/pkg/config"
	"github.com/pseudomuto/unitdiff/pkg/consts"
	"github.com/stretchr/testify/require"
)

//go:embed testdata/unitdiff.yaml
var testConfigYAML string

func TestLoadConfig(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		config, err := LoadConfig(strings.NewReader(testConfigYAML))
		require.NoError(t, err)
		validateTestConfig(t, config)
	})

	t.Run("error", func(t *testing.T) {
		// Invalid YAML
		config, err := LoadConfig(strings.NewReader("invalid: yaml: ["))
		require.Error(t, err)
		require.Nil(t, config)
		require.Contains(t, err.Error(), "failed to unmarshal config")

		// Empty input
		config, err = LoadConfig(strings.NewReader(""))
		require.Error(t, err)
		require.Nil(t, config)
		require.Contains(t, err.Error(), "failed to unmarshal config")
	})
}

func TestLoadConfigFile(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		config, err := LoadConfigFile("testdata/unitdiff.yaml")
		require.NoError(t, err)
		validateTestConfig(t, config)
	})

	t.Run("error", func(t *testing.T) {
		config, err := LoadConfigFile("nonexistent.yaml")
		require.Error(t, err)
		require.Nil(t, config)
		require.Contains(t, err.Error(), "failed to open file")
	})
}

func TestLoadConfigDefaults(t *testing.T) {
	t.Run("keeps configured values when set", func(t *testing.T) {
		yamlData := `
compare:
  workers: 2
clickhouse:
  table: custom_verdicts
`
		config, err := LoadConfig(strings.NewReader(yamlData))
		require.NoError(t, err)
		require.Equal(t, 2, config.Compare.Workers)
		require.Equal(t, "custom_verdicts", config.ClickHouse.Table)
	})

	t.Run("sets defaults when not specified", func(t *testing.T) {
		config, err := LoadConfig(strings.NewReader("compare: {}"))
		require.NoError(t, err)
		require.Equal(t, consts.DefaultWorkers, config.Compare.Workers)
		require.Equal(t, consts.DefaultVerdictTable, config.ClickHouse.Table)
		require.Empty(t, config.Compare.IgnoreAttributes)
		require.False(t, config.ClickHouse.Enabled())
	})
}

// validateTestConfig validates that a config contains the expected test data
func validateTestConfig(t *testing.T, config *Config) {
	t.Helper()
	require.NotNil(t, config)
	require.Equal(t, []string{"__Memoize", "__Deprecated"}, config.Compare.IgnoreAttributes)
	require.True(t, config.Compare.IgnoreBodies)
	require.False(t, config.Compare.IgnoreDocs)
	require.Equal(t, 8, config.Compare.Workers)
	require.Equal(t, "clickhouse://localhost:9000/ci", config.ClickHouse.DSN)
	require.Equal(t, "compiler_verdicts", config.ClickHouse.Table)
	require.True(t, config.ClickHouse.Enabled())
}

func TestCompareOptions(t *testing.T) {
	t.Run("full policy", func(t *testing.T) {
		config, err := LoadConfig(strings.NewReader(testConfigYAML))
		require.NoError(t, err)

		// one per ignored attribute, plus bodies and workers
		require.Len(t, config.Compare.Options(), 4)
	})

	t.Run("single worker adds no parallel option", func(t *testing.T) {
		opts := Compare{Workers: 1}.Options()
		require.Empty(t, opts)
	})
}
