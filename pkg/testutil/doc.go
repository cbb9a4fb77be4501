// Package testutil provides an isolated on-disk environment for tests that
// exercise real symlinks.
//
// Every Env lives under t.TempDir() with a managed repository directory and
// a fake home directory, and HOME points at the fake home for the duration
// of the test.
package testutil
