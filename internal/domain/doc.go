// Package domain holds the typed order entities produced by the mappers.
//
// The json tags are the field names presented to callers and must stay in
// step with the schema tables in package schema.
package domain
