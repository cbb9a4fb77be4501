package clean

import (
	"github.com/arthur-debert/dotlink/pkg/commands/internal"
	"github.com/arthur-debert/dotlink/pkg/logging"
	"github.com/arthur-debert/dotlink/pkg/reconcile"
)

// CleanOptions defines the options for the Clean command.
type CleanOptions = internal.Options

// Clean removes the symlink of every entry. The result is the number of entries that failed.
func Clean(opts CleanOptions) (int, error) {
	log := logging.GetLogger("commands.clean")
	log.Debug().Str("command", "Clean").Msg("Executing command")

	count, err := internal.RunPipeline(reconcile.OperationClean, opts)
	if err != nil {
		log.Debug().Err(err).Msg("Clean failed")
		return 0, err
	}

	log.Info().Str("command", "Clean").Int("count", count).Msg("Command finished")
	return count, nil
}
