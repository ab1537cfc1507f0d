// Package test contains helpers for sqlite-backed tests.
package test

import (
	"path/filepath"
	"testing"

	"github.com/google/uuid"
)

// TmpFile returns the path to a non-existing file in a temporary directory
// that is cleaned up after the test, for use as an sqlite database.
func TmpFile(t *testing.T) string {
	dir := t.TempDir()
	return filepath.Join(dir, uuid.New().String())
}
