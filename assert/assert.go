// Package assert includes some helper methods used for testing
package assert

import (
	"errors"
	"testing"
)

// Errors checks the validity of the expected error and returns false if the assertion failed
func Errors(t *testing.T, expectError bool, err error, fields Fields) bool {
	t.Helper()

	if expectError && err == nil {
		t.Errorf("Expected an error, but received 'nil' (%s)", fields.String())
	}

	if !expectError && err != nil {
		t.Errorf("No error was expected, but received '%v' (%s)", err, fields.String())
	}

	return !expectError
}

// ErrorIs checks that err matches the expected error using errors.Is.
// It returns true if the caller can continue with the rest of the assertions,
// which is only the case when no error was expected and none was received.
func ErrorIs(t *testing.T, expected, err error, fields Fields) bool {
	t.Helper()

	if expected == nil {
		return Errors(t, false, err, fields)
	}

	if !errors.Is(err, expected) {
		t.Errorf("Expected '%v' error, but received '%v' (%s)", expected, err, fields.String())
	}
	return false
}
