package model

// ExchangeRateTable maps a currency to its rate relative to BaseCurrency.
// It is filled once per widget session and never mutated afterwards.
type ExchangeRateTable map[Currency]float64

func (t ExchangeRateTable) Lookup(c Currency) (float64, bool) {
	rate, ok := t[c]
	if !ok || rate <= 0 {
		return 0, false
	}
	return rate, true
}

// LatestRatesResponse is the payload of the provider's /latest/{base} endpoint.
type LatestRatesResponse struct {
	Result             string             `json:"result"`
	ErrorType          string             `json:"error-type,omitempty"`
	BaseCode           string             `json:"base_code"`
	TimeLastUpdateUnix int64              `json:"time_last_update_unix"`
	ConversionRates    map[string]float64 `json:"conversion_rates"`
}

// Table keeps the supported currencies and drops every other code.
func (r LatestRatesResponse) Table() ExchangeRateTable {
	table := make(ExchangeRateTable, len(Currencies))
	for code, rate := range r.ConversionRates {
		c := Currency(code)
		if c.Valid() {
			table[c] = rate
		}
	}
	return table
}
