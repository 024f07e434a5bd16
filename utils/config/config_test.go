package config_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tsinghua-fib-lab/independnet/corporate"
	"github.com/tsinghua-fib-lab/independnet/utils/config"
)

func TestParseAndDefaults(t *testing.T) {
	c, err := config.Parse([]byte(`
rates:
  wht_dividend: 0.27
scenarios:
  - name: a
    net_profit: 20000
    small_company: true
    highest_remuneration: 30000
  - name: b
    net_profit: -500
    eligible_reduced_wht: true
`))
	require.NoError(t, err)
	require.Len(t, c.Scenarios, 2)
	assert.Equal(t, "a", c.Scenarios[0].Name)
	assert.True(t, c.Scenarios[0].SmallCompany)
	assert.Equal(t, 30000.0, c.Scenarios[0].HighestRemuneration)
	assert.True(t, c.Scenarios[1].EligibleReducedWHT)

	rc, err := config.NewRuntimeConfig(c)
	require.NoError(t, err)
	assert.Equal(t, 0.27, rc.Rates.WHTDividend)
	assert.Equal(t, corporate.CorporateTaxRate, rc.Rates.CorporateTaxRate)
	assert.Equal(t, corporate.ReducedCorporateTaxRate, rc.Rates.ReducedCorporateTaxRate)
	assert.Equal(t, corporate.ReducedWHTDividend, rc.Rates.ReducedWHTDividend)
}

func TestParseUnknownField(t *testing.T) {
	_, err := config.Parse([]byte("rates:\n  vat: 0.21\n"))
	assert.Error(t, err)
}

func TestRuntimeConfigInvalidRate(t *testing.T) {
	c, err := config.Parse([]byte("rates:\n  corporate_tax_rate: 1.0\n"))
	require.NoError(t, err)
	_, err = config.NewRuntimeConfig(c)
	assert.ErrorIs(t, err, corporate.ErrInvalidArgument)
}

func TestRuntimeConfigEmpty(t *testing.T) {
	rc, err := config.NewRuntimeConfig(config.Config{})
	require.NoError(t, err)
	assert.Equal(t, corporate.DefaultRates, rc.Rates)
	assert.Empty(t, rc.All.Scenarios)
}
