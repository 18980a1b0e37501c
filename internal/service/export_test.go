package service

import (
	"testing"
	"time"
)

// SetNow pins the clock used for default observation times.
// This file only compiles during `go test`.
func SetNow(t *testing.T, f func() time.Time) {
	t.Helper()
	orig := now
	now = f
	t.Cleanup(func() { now = orig })
}
