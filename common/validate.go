package common

import "errors"

// ValidateNil returns an error naming msg if data is nil. Adapted from
// the teacher's validate_tools.go helper of the same name and shape.
func ValidateNil(data interface{}, msg string) error {
	if data == nil {
		return errors.New(msg + " must be specified")
	}
	return nil
}

// ByteSliceEqual reports whether a and b hold the same bytes, treating
// nil and empty as distinct (matches the teacher's validate_tools.go
// helper, used here to assert prelude round-trip equality in tests).
func ByteSliceEqual(a, b []byte) bool {
	if len(a) != len(b) {
		return false
	}
	if (a == nil) != (b == nil) {
		return false
	}
	for i, v := range a {
		if v != b[i] {
			return false
		}
	}
	return true
}
