package test

import (
	"errors"
	"testing"
)

// AssertWantErr reports whether err terminated the case. It fails the
// test when err does not match the wanted sentinel, or when a wanted
// sentinel never arrived.
func AssertWantErr(err, wantErr error, caller string, t *testing.T) bool {
	t.Helper()
	if err != nil {
		if wantErr == nil || !errors.Is(err, wantErr) {
			t.Errorf("%s error = %v, wantErr %v", caller, err, wantErr)
		}

		return true
	} else if wantErr != nil {
		t.Errorf("%s expected error %v, did not receive an error", caller, wantErr)
		return true
	}

	return false
}
