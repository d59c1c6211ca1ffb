package coerce

import (
	"encoding/json"
	"math"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestToBoolean(t *testing.T) {
	tests := []struct {
		name  string
		input any
		want  bool
	}{
		{"int one", 1, true},
		{"float one", 1.0, true},
		{"int64 one", int64(1), true},
		{"string one", "1", true},
		{"json number one", json.Number("1"), true},
		{"decimal one", decimal.NewFromInt(1), true},
		{"bool true", true, true},
		{"int zero", 0, false},
		{"empty string", "", false},
		{"nil", nil, false},
		{"string zero", "0", false},
		{"string true", "true", false},
		{"int two", 2, false},
		{"bool false", false, false},
		{"map", map[string]any{"a": 1}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ToBoolean(tt.input))
		})
	}
}

func TestToDecimal(t *testing.T) {
	tests := []struct {
		name  string
		input any
		want  string
	}{
		{"nil", nil, "0"},
		{"float", 49.99, "49.99"},
		{"int", 15, "15"},
		{"string", " 12.50 ", "12.5"},
		{"json number", json.Number("3.25"), "3.25"},
		{"garbage", "abc", "0"},
		{"empty", "", "0"},
		{"nan", math.NaN(), "0"},
		{"inf", math.Inf(1), "0"},
		{"bool", true, "0"},
		{"uint64", uint64(9), "9"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ToDecimal(tt.input).String())
		})
	}
}

func TestToInt(t *testing.T) {
	tests := []struct {
		name  string
		input any
		want  int64
	}{
		{"nil", nil, 0},
		{"int", 42, 42},
		{"float truncates", 7.9, 7},
		{"string", "1001", 1001},
		{"string float", "3.5", 3},
		{"garbage", "x", 0},
		{"json number", json.Number("88"), 88},
		{"uint8", uint8(4), 4},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ToInt(tt.input))
		})
	}
}

func TestToString(t *testing.T) {
	tests := []struct {
		name  string
		input any
		want  string
	}{
		{"nil", nil, ""},
		{"string", "abc", "abc"},
		{"int", 90210, "90210"},
		{"float", 1.5, "1.5"},
		{"whole float", 90210.0, "90210"},
		{"bool", true, "true"},
		{"bytes", []byte("hi"), "hi"},
		{"slice", []any{"a"}, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ToString(tt.input))
		})
	}
}
