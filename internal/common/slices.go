package common

// UnknownStr is the String() fallback for values outside a closed enumeration.
const UnknownStr = "unknown"

// IsSingle returns true if the slice has exactly one element.
func IsSingle[S ~[]E, E any](s S) bool {
	return len(s) == 1
}

// First returns the first element of the slice and true, or the zero value and false if empty.
func First[S ~[]E, E any](s S) (E, bool) {
	if len(s) == 0 {
		var zero E
		return zero, false
	}

	return s[0], true
}

// Only returns the element of a single-element slice and true.
// Any other length yields the zero value and false.
func Only[S ~[]E, E any](s S) (E, bool) {
	if !IsSingle(s) {
		var zero E
		return zero, false
	}

	return s[0], true
}
