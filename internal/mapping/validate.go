package mapping

import (
	"fmt"

	"order-mapper/internal/diagnostic"
	"order-mapper/internal/keys"
	"order-mapper/internal/match"
)

// Validate checks a table for structural mistakes. It never looks at
// upstream data; it only proves the table itself is coherent.
func Validate(t Table) *diagnostic.Diagnostics {
	res := &diagnostic.Diagnostics{}

	if t.Name == "" {
		res.AddError("empty_table_name", "table has no name", "", "")
	}

	c, err := keys.ParseCase(t.Case)
	if err != nil {
		addUnknown(res, "unknown_case", err.Error(), t.Case, []string{"lower", "upper"}, t.Name, "")
		return res
	}

	if len(t.Fields) == 0 {
		res.AddWarning("empty_table", "table maps no fields", t.Name, "")
	}

	targets := map[string]struct{}{}
	sources := map[string]string{}

	for _, f := range t.Fields {
		validateDescriptor(res, t.Name, c, f)

		if f.Target != "" {
			if _, dup := targets[f.Target]; dup {
				res.AddError("duplicate_target", fmt.Sprintf("target %q declared more than once", f.Target), t.Name, f.Target)
			}

			targets[f.Target] = struct{}{}
		}

		if f.Source != "" {
			if prev, shared := sources[f.Source]; shared {
				res.AddInfo("shared_source",
					fmt.Sprintf("source %q also feeds %q", f.Source, prev), t.Name, f.Target)
			} else {
				sources[f.Source] = f.Target
			}
		}
	}

	return res
}

// ValidateAll validates every table and merges the results.
func ValidateAll(tables []Table) *diagnostic.Diagnostics {
	res := &diagnostic.Diagnostics{}
	for _, t := range tables {
		res.Merge(*Validate(t))
	}

	return res
}

func validateDescriptor(res *diagnostic.Diagnostics, table string, c keys.Case, f Descriptor) {
	if f.Target == "" {
		res.AddError("empty_target", fmt.Sprintf("source %q has no target", f.Source), table, "")
	}

	if f.Source == "" {
		res.AddError("empty_source", "field has no source key", table, f.Target)
	} else if !c.Matches(f.Source) {
		res.AddError("source_case_mismatch",
			fmt.Sprintf("source %q is not %s case", f.Source, c), table, f.Target)
	}

	if !f.Coercion.IsValid() {
		addUnknown(res, "unknown_coercion", fmt.Sprintf("unknown coercion %q", f.Coercion),
			string(f.Coercion), Coercions(), table, f.Target)
	}

	if !f.Nesting.IsValid() {
		addUnknown(res, "unknown_nesting", fmt.Sprintf("unknown nesting %q", f.Nesting),
			string(f.Nesting), Nestings(), table, f.Target)
		return
	}

	switch {
	case f.Nesting != NestNone && f.Nested == "":
		res.AddError("missing_nested_type", "nested field names no nested table", table, f.Target)
	case f.Nesting == NestNone && f.Nested != "":
		res.AddError("unexpected_nested_type",
			fmt.Sprintf("scalar field names nested table %q", f.Nested), table, f.Target)
	case f.Nesting != NestNone && f.Coercion != CoerceNone:
		res.AddWarning("coercion_ignored", "coercion on a nested field is ignored", table, f.Target)
	case f.Nesting == NestNone && f.Coercion == CoerceNone:
		res.AddWarning("no_coercion", "scalar field declares no coercion", table, f.Target)
	}
}

// addUnknown records an unrecognized name, with the closest known one as a hint.
func addUnknown(res *diagnostic.Diagnostics, code, message, value string, known []string, table, field string) {
	hint, _ := match.Suggest(value, known)

	res.Add(diagnostic.Diagnostic{
		Severity: diagnostic.SeverityError,
		Code:     code,
		Message:  message,
		Table:    table,
		Field:    field,
		Hint:     hint,
	})
}
