// Package diagnostic provides structured errors, warnings and infos
// collected while checking schema tables.
//
// Findings are accumulated rather than returned one at a time so a single
// validation pass reports every problem in a table.
package diagnostic
