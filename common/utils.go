package common

// Coalesce picks the first argument that is not the zero value of T.
// Driver info logs come back empty on some hosts, so error paths pass the
// log first and a fixed message last.
//
// Parameters:
//   - values: candidates in order of preference
//
// Returns:
//   - T: the first non-zero candidate, or the zero value when there is none
func Coalesce[T comparable](values ...T) T {
	var zero T
	for i := range values {
		if values[i] != zero {
			return values[i]
		}
	}
	return zero
}
