package match

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDistance(t *testing.T) {
	tests := []struct {
		a, b string
		want int
	}{
		{"", "", 0},
		{"", "abc", 3},
		{"abc", "", 3},
		{"same", "same", 0},
		{"kitten", "sitting", 3},
		{"integer", "integr", 1},
		{"flaw", "lawn", 2},
		{"café", "cafe", 1},
	}

	for _, tt := range tests {
		t.Run(tt.a+"_"+tt.b, func(t *testing.T) {
			assert.Equal(t, tt.want, Distance(tt.a, tt.b))
			assert.Equal(t, tt.want, Distance(tt.b, tt.a))
		})
	}
}

func TestFold(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"ORDER_LINE_ID", "orderlineid"},
		{"orderLineId", "orderlineid"},
		{"order-line-id", "orderlineid"},
		{"short_date", "shortdate"},
		{"  ", ""},
		{"", ""},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			assert.Equal(t, tt.want, Fold(tt.in))
		})
	}
}

func TestSimilarity(t *testing.T) {
	assert.InDelta(t, 1.0, Similarity("ORDER_ID", "orderId"), 1e-9)
	assert.InDelta(t, 1.0, Similarity("", "__"), 1e-9)
	assert.InDelta(t, 0.0, Similarity("abc", "xyz"), 1e-9)
	assert.InDelta(t, 0.75, Similarity("date", "data"), 1e-9)
}

func TestRank(t *testing.T) {
	got := Rank("Adress", []string{"Tracking", "Address", "OrderDetail"})

	assert.Equal(t, "Address", got[0].Name)
	assert.Len(t, got, 3)
	assert.GreaterOrEqual(t, got[0].Score, got[1].Score)
	assert.GreaterOrEqual(t, got[1].Score, got[2].Score)
}

func TestRank_StableTies(t *testing.T) {
	got := Rank("zz", []string{"ab", "cd", "ef"})

	assert.Equal(t, []string{"ab", "cd", "ef"}, []string{got[0].Name, got[1].Name, got[2].Name})
}

func TestSuggest(t *testing.T) {
	coercions := []string{"string", "integer", "number", "boolean", "date", "short_date", "opaque"}

	tests := []struct {
		name   string
		want   string
		wantOK bool
	}{
		{"integr", "integer", true},
		{"bool", "boolean", true},
		{"shortdate", "short_date", true},
		{"NUMBER", "number", true},
		{"money", "", false},
		{"", "", false},
		{"___", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := Suggest(tt.name, coercions)
			assert.Equal(t, tt.wantOK, ok)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestSuggest_NoCandidates(t *testing.T) {
	_, ok := Suggest("anything", nil)
	assert.False(t, ok)
}

func TestHint(t *testing.T) {
	assert.Equal(t, `, did you mean "each"?`, Hint("eech", []string{"first", "exactly_one", "each"}))
	assert.Empty(t, Hint("zzzzzz", []string{"first", "each"}))
}
