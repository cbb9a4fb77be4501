package check

import (
	"github.com/arthur-debert/dotlink/pkg/commands/internal"
	"github.com/arthur-debert/dotlink/pkg/logging"
	"github.com/arthur-debert/dotlink/pkg/reconcile"
)

// CheckOptions defines the options for the Check command.
type CheckOptions = internal.Options

// Check reports the status of every entry. The result is the number of entries that are not Healthy.
func Check(opts CheckOptions) (int, error) {
	log := logging.GetLogger("commands.check")
	log.Debug().Str("command", "Check").Msg("Executing command")

	count, err := internal.RunPipeline(reconcile.OperationCheck, opts)
	if err != nil {
		log.Debug().Err(err).Msg("Check failed")
		return 0, err
	}

	log.Info().Str("command", "Check").Int("count", count).Msg("Command finished")
	return count, nil
}
