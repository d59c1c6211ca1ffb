package coerce

import (
	"encoding/json"
	"math"
	"math/big"
	"strconv"
	"strings"

	"github.com/shopspring/decimal"
)

// ToBoolean reports whether v is the upstream truthy flag.
// Only numeric 1, the string "1" and the Go bool true are true.
func ToBoolean(v any) bool {
	switch val := v.(type) {
	case bool:
		return val
	case string:
		return val == "1"
	case json.Number:
		return val.String() == "1"
	case decimal.Decimal:
		return val.Equal(decimal.NewFromInt(1))
	}

	f, ok := asFloat(v)

	return ok && f == 1
}

// ToString renders v as a string. Nil and composite values yield "".
func ToString(v any) string {
	switch val := v.(type) {
	case nil:
		return ""
	case string:
		return val
	case []byte:
		return string(val)
	case json.Number:
		return val.String()
	case decimal.Decimal:
		return val.String()
	case bool:
		return strconv.FormatBool(val)
	case float64:
		return strconv.FormatFloat(val, 'f', -1, 64)
	case float32:
		return strconv.FormatFloat(float64(val), 'f', -1, 32)
	}

	if i, ok := asInt(v); ok {
		return strconv.FormatInt(i, 10)
	}

	if u, ok := v.(uint64); ok {
		return strconv.FormatUint(u, 10)
	}

	return ""
}

// ToDecimal converts v to a decimal. Nil, NaN, infinities and unparseable
// strings yield zero.
func ToDecimal(v any) decimal.Decimal {
	switch val := v.(type) {
	case nil:
		return decimal.Zero
	case decimal.Decimal:
		return val
	case string:
		return parseDecimal(val)
	case json.Number:
		return parseDecimal(val.String())
	case float64:
		return fromFloat(val)
	case float32:
		return fromFloat(float64(val))
	}

	if i, ok := asInt(v); ok {
		return decimal.NewFromInt(i)
	}

	if u, ok := v.(uint64); ok {
		return decimal.NewFromBigInt(new(big.Int).SetUint64(u), 0)
	}

	return decimal.Zero
}

// ToInt converts v to an int64, truncating fractions. Unusable input yields 0.
func ToInt(v any) int64 {
	if i, ok := asInt(v); ok {
		return i
	}

	switch v.(type) {
	case string, json.Number, float64, float32, decimal.Decimal:
		return ToDecimal(v).IntPart()
	case uint64:
		return ToDecimal(v).IntPart()
	}

	return 0
}

func parseDecimal(s string) decimal.Decimal {
	s = strings.TrimSpace(s)
	if s == "" {
		return decimal.Zero
	}

	d, err := decimal.NewFromString(s)
	if err != nil {
		return decimal.Zero
	}

	return d
}

func fromFloat(f float64) decimal.Decimal {
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return decimal.Zero
	}

	return decimal.NewFromFloat(f)
}

// asInt handles the signed and small unsigned integer kinds exactly.
func asInt(v any) (int64, bool) {
	switch val := v.(type) {
	case int:
		return int64(val), true
	case int8:
		return int64(val), true
	case int16:
		return int64(val), true
	case int32:
		return int64(val), true
	case int64:
		return val, true
	case uint:
		return int64(val), true
	case uint8:
		return int64(val), true
	case uint16:
		return int64(val), true
	case uint32:
		return int64(val), true
	}

	return 0, false
}

func asFloat(v any) (float64, bool) {
	switch val := v.(type) {
	case float64:
		return val, true
	case float32:
		return float64(val), true
	case uint64:
		return float64(val), true
	}

	if i, ok := asInt(v); ok {
		return float64(i), true
	}

	return 0, false
}
