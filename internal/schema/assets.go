package schema

import (
	"bytes"
	"encoding/json"
	"fmt"

	"github.com/shopspring/decimal"
)

// PortfolioAssets narrows a stored holdings object. every value must be a
// json number greater than zero
func PortfolioAssets(payload []byte) (map[string]decimal.Decimal, error) {
	name := SchemaName_PortfolioAssets

	var raw map[string]any
	decoder := json.NewDecoder(bytes.NewReader(payload))
	decoder.UseNumber()
	if err := decoder.Decode(&raw); err != nil {
		return nil, newValidationError(name, "%s", err.Error())
	}
	if raw == nil {
		return nil, newValidationError(name, "expected an object")
	}

	quantities := map[string]float64{}
	out := map[string]decimal.Decimal{}
	for symbol, value := range raw {
		number, ok := value.(json.Number)
		if !ok {
			return nil, newValidationError(name, "quantity for %q must be a number, got %T", symbol, value)
		}
		d, err := decimal.NewFromString(number.String())
		if err != nil {
			return nil, newValidationError(name, "quantity for %q: %s", symbol, err.Error())
		}
		quantities[symbol] = d.InexactFloat64()
		out[symbol] = d
	}

	if err := validate.Var(quantities, "dive,keys,required,endkeys,gt=0"); err != nil {
		return nil, structError(name, err)
	}

	return out, nil
}

// EncodePortfolioAssets renders holdings as a json object of numbers and
// runs the result back through PortfolioAssets
func EncodePortfolioAssets(assets map[string]decimal.Decimal) ([]byte, error) {
	numbers := make(map[string]json.Number, len(assets))
	for symbol, quantity := range assets {
		numbers[symbol] = json.Number(quantity.String())
	}

	out, err := json.Marshal(numbers)
	if err != nil {
		return nil, fmt.Errorf("failed to encode assets: %w", err)
	}
	if _, err := PortfolioAssets(out); err != nil {
		return nil, err
	}
	return out, nil
}
