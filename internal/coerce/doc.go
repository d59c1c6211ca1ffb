// Package coerce turns loosely-typed upstream values into typed Go values.
//
// Every function is total: unusable input produces a deterministic fallback
// (zero value, false, empty string or the zero-time date sentinel) instead of
// an error. Inputs are the shapes produced by encoding/json and gopkg.in/yaml.v3
// decoding into interface values: nil, bool, string, the Go numeric kinds,
// json.Number, []any and map[string]any.
package coerce
