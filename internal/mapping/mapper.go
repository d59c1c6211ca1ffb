package mapping

import "order-mapper/internal/keys"

// Map builds a T from rec, normalizing keys to the schema's own case.
func (s *Schema[T]) Map(rec map[string]any) T {
	return s.MapCase(rec, s.Case)
}

// MapCase builds a T from rec after normalizing its keys to case c.
//
// Source keys are looked up exactly as the table spells them, so a case that
// does not match the schema's family leaves every field unpopulated.
func (s *Schema[T]) MapCase(rec map[string]any, c keys.Case) T {
	var out T

	normalized := keys.Normalize(rec, c)

	for i := range s.Fields {
		f := &s.Fields[i]

		raw, ok := normalized[f.Source]
		if !ok || raw == nil || f.assign == nil {
			continue
		}

		f.assign(&out, raw)
	}

	return out
}
