// Package mapping provides schema tables and the generic record mapper that
// builds typed values from loosely-typed upstream records.
//
// A schema table is an explicit list of field descriptors, one per target
// field:
//
//	target           source            coercion / nesting
//	firstName        FIRSTNAME         string
//	isDefault        IS_DEFAULT        boolean
//	shippingAddress  shipping_address  Address, exactly one
//
// Each Schema declares the key case its source family uses. Mapping first
// normalizes the record's keys to that case (see package keys), then walks
// the table: nested fields recurse into the nested schema, coerced fields go
// through package coerce, and every other upstream key is dropped.
//
// # Cardinality of nested fields
//
//   - first: a sequence contributes its first element, a bare record itself
//   - exactly_one: only a one-element sequence populates the field
//   - each: every record element of a sequence is mapped, in order
//
// # Inspection
//
// Schema.Describe exposes a table as plain data. Tables can be rendered to
// YAML with MarshalTables and checked with Validate.
//
// Mapping never fails. Missing or malformed source values leave the target
// field at its zero value.
package mapping
