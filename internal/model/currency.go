package model

import (
	"fmt"
	"strings"
)

type Currency string

const (
	USD Currency = "USD"
	EUR Currency = "EUR"
	GBP Currency = "GBP"
	JPY Currency = "JPY"
	AUD Currency = "AUD"
	CAD Currency = "CAD"
	PKR Currency = "PKR"
	INR Currency = "INR"
	CHF Currency = "CHF"
	CNY Currency = "CNY"
	NZD Currency = "NZD"
	SGD Currency = "SGD"
	HKD Currency = "HKD"
	NOK Currency = "NOK"
	SEK Currency = "SEK"
	MXN Currency = "MXN"
	BRL Currency = "BRL"
	RUB Currency = "RUB"
	ZAR Currency = "ZAR"
)

// BaseCurrency is the currency every fetched rate is expressed against.
const BaseCurrency = USD

// Currencies lists the supported codes in selector order.
var Currencies = []Currency{
	USD, EUR, GBP, JPY, AUD, CAD, PKR, INR, CHF, CNY,
	NZD, SGD, HKD, NOK, SEK, MXN, BRL, RUB, ZAR,
}

var flagCountries = map[Currency]string{
	USD: "us", EUR: "eu", GBP: "gb", JPY: "jp", AUD: "au",
	CAD: "ca", PKR: "pk", INR: "in", CHF: "ch", CNY: "cn",
	NZD: "nz", SGD: "sg", HKD: "hk", NOK: "no", SEK: "se",
	MXN: "mx", BRL: "br", RUB: "ru", ZAR: "za",
}

func (c Currency) String() string {
	return string(c)
}

func (c Currency) Valid() bool {
	_, ok := flagCountries[c]
	return ok
}

// FlagURL returns the flag icon shown next to the code in currency selectors.
func (c Currency) FlagURL() string {
	country, ok := flagCountries[c]
	if !ok {
		return ""
	}
	return fmt.Sprintf("https://flagcdn.com/%s.svg", country)
}

func ParseCurrency(code string) (Currency, error) {
	c := Currency(strings.ToUpper(strings.TrimSpace(code)))
	if !c.Valid() {
		return "", fmt.Errorf("%w: %q", ErrUnsupportedCurrency, code)
	}
	return c, nil
}

type CurrencyOption struct {
	Code    Currency `json:"code"`
	FlagURL string   `json:"flag_url"`
}

func CurrencyOptions() []CurrencyOption {
	options := make([]CurrencyOption, 0, len(Currencies))
	for _, c := range Currencies {
		options = append(options, CurrencyOption{Code: c, FlagURL: c.FlagURL()})
	}
	return options
}
