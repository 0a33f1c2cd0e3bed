// Package testkit holds small test helpers shared across packages
package testkit

import (
	"strings"
	"sync"
	"testing"
)

var serial sync.Mutex

// MustPanic fails the test when fn returns normally
func MustPanic(t *testing.T, fn func()) {
	t.Helper()
	defer func() {
		if recover() == nil {
			t.Fatal("expected panic")
		}
	}()
	fn()
}

// MustContain fails the test when needle is not in haystack
func MustContain(t *testing.T, haystack, needle string) {
	t.Helper()
	if !strings.Contains(haystack, needle) {
		t.Fatalf("expected %q in:\n%s", needle, haystack)
	}
}

// Swap replaces *target for the test and restores it on cleanup
func Swap[T any](t *testing.T, target *T, v T) {
	t.Helper()
	old := *target
	*target = v
	t.Cleanup(func() { *target = old })
}

// Serial holds a process wide lock until the test ends, use it before Swap on shared seams
func Serial(t *testing.T) {
	t.Helper()
	serial.Lock()
	t.Cleanup(serial.Unlock)
}
