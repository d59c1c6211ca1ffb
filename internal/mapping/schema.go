package mapping

import (
	"time"

	"github.com/shopspring/decimal"

	"order-mapper/internal/coerce"
	"order-mapper/internal/keys"
)

// Coercion names the scalar conversion applied to a source value.
type Coercion string

const (
	CoerceNone      Coercion = ""
	CoerceString    Coercion = "string"
	CoerceInteger   Coercion = "integer"
	CoerceNumber    Coercion = "number"
	CoerceBoolean   Coercion = "boolean"
	CoerceDate      Coercion = "date"
	CoerceShortDate Coercion = "short_date"
	// CoerceOpaque passes the upstream value through untouched.
	CoerceOpaque Coercion = "opaque"
)

// IsValid returns true if the coercion is a recognized value.
func (c Coercion) IsValid() bool {
	switch c {
	case CoerceNone, CoerceString, CoerceInteger, CoerceNumber,
		CoerceBoolean, CoerceDate, CoerceShortDate, CoerceOpaque:
		return true
	}

	return false
}

// Coercions lists the named coercions, excluding CoerceNone.
func Coercions() []string {
	return []string{
		string(CoerceString), string(CoerceInteger), string(CoerceNumber), string(CoerceBoolean),
		string(CoerceDate), string(CoerceShortDate), string(CoerceOpaque),
	}
}

// Nesting is the cardinality rule for a field holding sub-records.
type Nesting string

const (
	// NestNone marks a scalar field.
	NestNone Nesting = ""
	// NestFirst maps the first element of a sequence, or a bare record.
	NestFirst Nesting = "first"
	// NestExactlyOne maps only a sequence of exactly one record.
	NestExactlyOne Nesting = "exactly_one"
	// NestEach maps every record in a sequence.
	NestEach Nesting = "each"
)

// IsValid returns true if the nesting is a recognized value.
func (n Nesting) IsValid() bool {
	return n == NestNone || n == NestFirst || n == NestExactlyOne || n == NestEach
}

// Nestings lists the nesting rules, excluding NestNone.
func Nestings() []string {
	return []string{string(NestFirst), string(NestExactlyOne), string(NestEach)}
}

// Field describes how one target field of T is populated.
type Field[T any] struct {
	// Target is the output field name (the json name on T).
	Target string
	// Source is the upstream key, spelled in the schema's case.
	Source string
	// Coercion applied to scalar values.
	Coercion Coercion
	// Nesting is set for fields built from sub-records.
	Nesting Nesting

	nested func() string
	assign func(dst *T, raw any)
}

// Nested returns the name of the nested schema, or "" for scalar fields.
func (f Field[T]) Nested() string {
	if f.nested == nil {
		return ""
	}

	return f.nested()
}

// Schema is the complete field table for one target type.
type Schema[T any] struct {
	// Name identifies the table (usually the entity name).
	Name string
	// Case is the key case of the source family.
	Case keys.Case
	// Fields is the closed list of mapped fields.
	Fields []Field[T]
}

func scalar[T any](target, source string, c Coercion, assign func(*T, any)) Field[T] {
	return Field[T]{Target: target, Source: source, Coercion: c, assign: assign}
}

// Text maps a value rendered as a string.
func Text[T any](target, source string, set func(*T, string)) Field[T] {
	return scalar(target, source, CoerceString, func(dst *T, raw any) {
		set(dst, coerce.ToString(raw))
	})
}

// Int maps an integer value.
func Int[T any](target, source string, set func(*T, int64)) Field[T] {
	return scalar(target, source, CoerceInteger, func(dst *T, raw any) {
		set(dst, coerce.ToInt(raw))
	})
}

// Number maps a decimal value.
func Number[T any](target, source string, set func(*T, decimal.Decimal)) Field[T] {
	return scalar(target, source, CoerceNumber, func(dst *T, raw any) {
		set(dst, coerce.ToDecimal(raw))
	})
}

// Bool maps an upstream 1/0 flag.
func Bool[T any](target, source string, set func(*T, bool)) Field[T] {
	return scalar(target, source, CoerceBoolean, func(dst *T, raw any) {
		set(dst, coerce.ToBoolean(raw))
	})
}

// Date maps a timestamp. Unparseable input sets the zero-time sentinel.
func Date[T any](target, source string, set func(*T, time.Time)) Field[T] {
	return scalar(target, source, CoerceDate, func(dst *T, raw any) {
		set(dst, coerce.ToDate(raw))
	})
}

// ShortDate maps a timestamp rendered as MM/DD/YYYY.
func ShortDate[T any](target, source string, set func(*T, string)) Field[T] {
	return scalar(target, source, CoerceShortDate, func(dst *T, raw any) {
		set(dst, coerce.ToShortDateString(raw))
	})
}

// Opaque passes the upstream value through unmodified.
func Opaque[T any](target, source string, set func(*T, any)) Field[T] {
	return scalar(target, source, CoerceOpaque, set)
}

func nestedName[N any](nested func() *Schema[N]) func() string {
	return func() string { return nested().Name }
}

// One maps a sub-record through the nested schema, taking the first element
// when the upstream value is a sequence.
func One[T, N any](target, source string, nested func() *Schema[N], set func(*T, *N)) Field[T] {
	return Field[T]{
		Target:  target,
		Source:  source,
		Nesting: NestFirst,
		nested:  nestedName(nested),
		assign: func(dst *T, raw any) {
			rec, ok := coerce.AsRecord(coerce.UnwrapSingle(raw))
			if !ok {
				return
			}

			n := nested().Map(rec)
			set(dst, &n)
		},
	}
}

// ExactlyOne maps a sub-record only when the upstream value is a sequence of
// exactly one record. Any other shape leaves the field absent.
func ExactlyOne[T, N any](target, source string, nested func() *Schema[N], set func(*T, *N)) Field[T] {
	return Field[T]{
		Target:  target,
		Source:  source,
		Nesting: NestExactlyOne,
		nested:  nestedName(nested),
		assign: func(dst *T, raw any) {
			elem, ok := coerce.ExactlyOne(raw)
			if !ok {
				return
			}

			rec, ok := coerce.AsRecord(elem)
			if !ok {
				return
			}

			n := nested().Map(rec)
			set(dst, &n)
		},
	}
}

// Many maps every record of a sequence through the nested schema. A bare
// record is treated as a one-element sequence; non-record elements are skipped.
func Many[T, N any](target, source string, nested func() *Schema[N], set func(*T, []N)) Field[T] {
	return Field[T]{
		Target:  target,
		Source:  source,
		Nesting: NestEach,
		nested:  nestedName(nested),
		assign: func(dst *T, raw any) {
			seq, ok := coerce.AsSequence(raw)
			if !ok {
				rec, isRec := coerce.AsRecord(raw)
				if !isRec {
					return
				}

				seq = []any{rec}
			}

			s := nested()
			out := make([]N, 0, len(seq))

			for _, elem := range seq {
				rec, ok := coerce.AsRecord(elem)
				if !ok {
					continue
				}

				out = append(out, s.Map(rec))
			}

			set(dst, out)
		},
	}
}
