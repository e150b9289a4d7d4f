// Package converter holds the rate lookup and conversion arithmetic used by the widget.
package converter

import (
	"fmt"
	"math"
	"strconv"

	"github.com/Lutefd/currency-widget/internal/model"
)

// Rate returns how many units of target one unit of source buys.
func Rate(rates model.ExchangeRateTable, source, target model.Currency) (float64, error) {
	targetRate, ok := rates.Lookup(target)
	if !ok {
		return 0, fmt.Errorf("%w: %s", model.ErrMissingRate, target)
	}
	if source == model.BaseCurrency {
		return targetRate, nil
	}
	sourceRate, ok := rates.Lookup(source)
	if !ok {
		return 0, fmt.Errorf("%w: %s", model.ErrMissingRate, source)
	}
	return targetRate / sourceRate, nil
}

// Convert formats amount * Rate(rates, source, target) with FormatAmount.
func Convert(rates model.ExchangeRateTable, source, target model.Currency, amount float64) (string, error) {
	rate, err := Rate(rates, source, target)
	if err != nil {
		return "", err
	}
	return FormatAmount(amount * rate), nil
}

// FormatAmount renders v with two fractional digits, rounding the exact binary
// value and breaking ties away from zero.
func FormatAmount(v float64) string {
	// A float64 sits exactly halfway between two hundredths only when it is an
	// odd multiple of 1/8.
	if scaled := v * 8; !math.IsInf(v, 0) && scaled == math.Trunc(scaled) && math.Mod(scaled, 2) != 0 {
		abs := math.Abs(v)
		whole := math.Floor(abs)
		cents := int(math.Ceil((abs - whole) * 100))
		sign := ""
		if v < 0 {
			sign = "-"
		}
		return fmt.Sprintf("%s%s.%02d", sign, strconv.FormatFloat(whole, 'f', 0, 64), cents)
	}
	return strconv.FormatFloat(v, 'f', 2, 64)
}
