package coerce

import "order-mapper/internal/common"

// AsRecord returns v as a string-keyed record when it has one of the map
// shapes produced by JSON or YAML decoding.
func AsRecord(v any) (map[string]any, bool) {
	switch val := v.(type) {
	case map[string]any:
		return val, val != nil
	case map[any]any:
		out := make(map[string]any, len(val))
		for k, e := range val {
			key, ok := k.(string)
			if !ok {
				return nil, false
			}

			out[key] = e
		}

		return out, true
	}

	return nil, false
}

// AsSequence returns v as a slice when it is one.
func AsSequence(v any) ([]any, bool) {
	switch val := v.(type) {
	case []any:
		return val, true
	case []map[string]any:
		out := make([]any, len(val))
		for i, e := range val {
			out[i] = e
		}

		return out, true
	}

	return nil, false
}

// UnwrapSingle returns the first element of a sequence, or nil for an empty
// one. Any other value is returned unchanged.
func UnwrapSingle(v any) any {
	seq, ok := AsSequence(v)
	if !ok {
		return v
	}

	first, _ := common.First(seq)

	return first
}

// ExactlyOne returns the element of a one-element sequence. Scalars, maps and
// sequences of any other length report false.
func ExactlyOne(v any) (any, bool) {
	seq, ok := AsSequence(v)
	if !ok {
		return nil, false
	}

	return common.Only(seq)
}
