// Package commands provides the high-level entry points behind the CLI.
//
// Each command lives in its own subdirectory and shares one pipeline:
//   - check/    - Check command
//   - link/     - Link command
//   - clean/    - Clean command
//   - internal/ - configuration -> linkfiles -> reconcile
//
// Every command returns the integer outcome of the operation, or an error
// when the configuration or linkfiles could not be used at all.
package commands

import (
	"github.com/arthur-debert/dotlink/pkg/commands/check"
	"github.com/arthur-debert/dotlink/pkg/commands/clean"
	"github.com/arthur-debert/dotlink/pkg/commands/internal"
	"github.com/arthur-debert/dotlink/pkg/commands/link"
)

// Options is accepted by every command.
type Options = internal.Options

// Check reports every entry and returns the number that are not Healthy.
func Check(opts Options) (int, error) {
	return check.Check(opts)
}

// Link converges every entry toward Healthy and returns the failure count.
func Link(opts Options) (int, error) {
	return link.Link(opts)
}

// Clean removes every entry's symlink and returns the failure count.
func Clean(opts Options) (int, error) {
	return clean.Clean(opts)
}
