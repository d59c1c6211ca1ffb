// Package keys rewrites record keys to one canonical case before field lookup.
//
// Upstream payload families are internally consistent but disagree with each
// other: addresses and order history use UPPER_SNAKE keys, order detail uses
// lower_snake. Normalizing first makes schema lookup insensitive to the
// casing a particular payload happened to arrive with.
package keys
