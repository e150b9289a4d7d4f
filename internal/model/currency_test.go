package model_test

import (
	"errors"
	"testing"

	"github.com/Lutefd/currency-widget/internal/model"
	"github.com/stretchr/testify/assert"
)

func TestParseCurrency(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected model.Currency
		wantErr  bool
	}{
		{name: "Upper case", input: "EUR", expected: model.EUR},
		{name: "Lower case with spaces", input: " pkr ", expected: model.PKR},
		{name: "Unknown code", input: "XYZ", wantErr: true},
		{name: "Empty", input: "", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, err := model.ParseCurrency(tt.input)
			if tt.wantErr {
				assert.Error(t, err)
				assert.True(t, errors.Is(err, model.ErrUnsupportedCurrency))
				return
			}
			assert.NoError(t, err)
			assert.Equal(t, tt.expected, c)
		})
	}
}

func TestCurrencies(t *testing.T) {
	assert.Len(t, model.Currencies, 19)
	seen := make(map[model.Currency]bool)
	for _, c := range model.Currencies {
		assert.True(t, c.Valid())
		assert.False(t, seen[c], "duplicate currency %s", c)
		seen[c] = true
	}
	assert.Equal(t, model.USD, model.Currencies[0])
}

func TestFlagURL(t *testing.T) {
	assert.Equal(t, "https://flagcdn.com/us.svg", model.USD.FlagURL())
	assert.Equal(t, "https://flagcdn.com/eu.svg", model.EUR.FlagURL())
	assert.Equal(t, "", model.Currency("XYZ").FlagURL())

	options := model.CurrencyOptions()
	assert.Len(t, options, len(model.Currencies))
	assert.Equal(t, model.CurrencyOption{Code: model.ZAR, FlagURL: "https://flagcdn.com/za.svg"}, options[len(options)-1])
}

func TestLatestRatesResponse_Table(t *testing.T) {
	resp := model.LatestRatesResponse{
		Result: "success",
		ConversionRates: map[string]float64{
			"USD": 1,
			"PKR": 278.5,
			"AED": 3.6725,
		},
	}

	table := resp.Table()

	assert.Equal(t, model.ExchangeRateTable{model.USD: 1, model.PKR: 278.5}, table)

	rate, ok := table.Lookup(model.PKR)
	assert.True(t, ok)
	assert.Equal(t, 278.5, rate)

	_, ok = table.Lookup(model.EUR)
	assert.False(t, ok)
}

func TestExchangeRateTable_LookupRejectsNonPositive(t *testing.T) {
	table := model.ExchangeRateTable{model.EUR: 0, model.GBP: -1}

	_, ok := table.Lookup(model.EUR)
	assert.False(t, ok)
	_, ok = table.Lookup(model.GBP)
	assert.False(t, ok)
}
