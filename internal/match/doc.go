// Package match ranks known names by similarity to an unrecognized one.
//
// It backs the "did you mean" hints in schema validation and the CLI:
//   - Fold: reduces a name to lower-case letters and digits
//   - Distance / Similarity: edit distance over folded names
//   - Rank / Suggest: orders candidates and picks the closest
package match
