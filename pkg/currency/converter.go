package currency

import (
	"fmt"
	"strings"

	custom_error "assettracking/pkg/errors"

	"github.com/shopspring/decimal"
)

const DefaultBaseCurrency = "USD"

// DefaultRates is the static table used when no rates are configured.
func DefaultRates() map[string]decimal.Decimal {
	return map[string]decimal.Decimal{
		"USD": decimal.NewFromInt(1),
		"EUR": decimal.RequireFromString("0.85"),
		"GBP": decimal.RequireFromString("0.75"),
	}
}

// Converter converts amounts between currencies using a fixed table of rates
// relative to a common base. It is safe for concurrent use.
type Converter struct {
	rates map[string]decimal.Decimal
}

func NewConverter(rates map[string]decimal.Decimal) (*Converter, error) {
	if len(rates) == 0 {
		return nil, fmt.Errorf("currency rate table is empty")
	}

	table := make(map[string]decimal.Decimal, len(rates))
	for code, rate := range rates {
		if !rate.IsPositive() {
			return nil, fmt.Errorf("rate for %s must be positive, got %s", code, rate)
		}
		table[strings.ToUpper(code)] = rate
	}

	return &Converter{rates: table}, nil
}

// Convert looks codes up case-insensitively. Unknown codes are reported as given.
func (c *Converter) Convert(amount decimal.Decimal, fromCode, toCode string) (decimal.Decimal, error) {
	fromRate, ok := c.rates[strings.ToUpper(fromCode)]
	if !ok {
		return decimal.Decimal{}, &custom_error.UnknownCurrencyError{Code: fromCode}
	}
	toRate, ok := c.rates[strings.ToUpper(toCode)]
	if !ok {
		return decimal.Decimal{}, &custom_error.UnknownCurrencyError{Code: toCode}
	}
	if strings.EqualFold(fromCode, toCode) {
		return amount, nil
	}

	amountInBase := amount.Div(fromRate)
	return amountInBase.Mul(toRate), nil
}

func (c *Converter) Supports(code string) bool {
	_, ok := c.rates[strings.ToUpper(code)]
	return ok
}

// ParseRates reads a table in the form "USD:1,EUR:0.85".
func ParseRates(value string) (map[string]decimal.Decimal, error) {
	rates := make(map[string]decimal.Decimal)
	for _, pair := range strings.Split(value, ",") {
		pair = strings.TrimSpace(pair)
		if pair == "" {
			continue
		}
		code, rawRate, found := strings.Cut(pair, ":")
		if !found {
			return nil, fmt.Errorf("invalid rate entry %q, expected CODE:RATE", pair)
		}
		code = strings.ToUpper(strings.TrimSpace(code))
		if len(code) != 3 {
			return nil, fmt.Errorf("invalid currency code %q", code)
		}
		rate, err := decimal.NewFromString(strings.TrimSpace(rawRate))
		if err != nil {
			return nil, fmt.Errorf("invalid rate for %s: %w", code, err)
		}
		rates[code] = rate
	}

	if len(rates) == 0 {
		return nil, fmt.Errorf("no currency rates in %q", value)
	}

	return rates, nil
}
