package ledger

import (
	"encoding/json"
	"math"
	"math/big"
	"strings"

	"github.com/shopspring/decimal"
)

// AmountPlaces is the number of decimal places every exposed monetary figure carries
const AmountPlaces int32 = 2

// NormalizeAmount converts any value intended to represent money into a
// decimal rounded to two places. Missing, non-numeric and non-finite input
// yields zero.
func NormalizeAmount(v any) decimal.Decimal {
	switch x := v.(type) {
	case nil:
		return decimal.Zero
	case decimal.Decimal:
		return x.Round(AmountPlaces)
	case *decimal.Decimal:
		if x == nil {
			return decimal.Zero
		}
		return x.Round(AmountPlaces)
	case decimal.NullDecimal:
		if !x.Valid {
			return decimal.Zero
		}
		return x.Decimal.Round(AmountPlaces)
	case *decimal.NullDecimal:
		if x == nil {
			return decimal.Zero
		}
		return NormalizeAmount(*x)
	case float64:
		return fromFloat(x)
	case float32:
		return fromFloat(float64(x))
	case *float64:
		if x == nil {
			return decimal.Zero
		}
		return fromFloat(*x)
	case int:
		return decimal.NewFromInt(int64(x))
	case int8:
		return decimal.NewFromInt(int64(x))
	case int16:
		return decimal.NewFromInt(int64(x))
	case int32:
		return decimal.NewFromInt(int64(x))
	case int64:
		return decimal.NewFromInt(x)
	case *int64:
		if x == nil {
			return decimal.Zero
		}
		return decimal.NewFromInt(*x)
	case uint:
		return fromUint(uint64(x))
	case uint8:
		return fromUint(uint64(x))
	case uint16:
		return fromUint(uint64(x))
	case uint32:
		return fromUint(uint64(x))
	case uint64:
		return fromUint(x)
	case json.Number:
		return fromString(x.String())
	case string:
		return fromString(x)
	case *string:
		if x == nil {
			return decimal.Zero
		}
		return fromString(*x)
	default:
		return decimal.Zero
	}
}

// Float converts a decimal into a float64 after normalization, for JSON output
func Float(d decimal.Decimal) float64 {
	return d.Round(AmountPlaces).InexactFloat64()
}

// SumAmounts adds normalized amounts; the result is normalized too
func SumAmounts(amounts ...decimal.Decimal) decimal.Decimal {
	total := decimal.Zero
	for _, a := range amounts {
		total = total.Add(NormalizeAmount(a))
	}
	return total.Round(AmountPlaces)
}

func fromFloat(f float64) decimal.Decimal {
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return decimal.Zero
	}
	return decimal.NewFromFloat(f).Round(AmountPlaces)
}

func fromUint(u uint64) decimal.Decimal {
	return decimal.NewFromBigInt(new(big.Int).SetUint64(u), 0)
}

func fromString(s string) decimal.Decimal {
	s = strings.TrimSpace(s)
	if s == "" {
		return decimal.Zero
	}
	d, err := decimal.NewFromString(s)
	if err != nil {
		return decimal.Zero
	}
	return d.Round(AmountPlaces)
}
