package link

import (
	"github.com/arthur-debert/dotlink/pkg/commands/internal"
	"github.com/arthur-debert/dotlink/pkg/logging"
	"github.com/arthur-debert/dotlink/pkg/reconcile"
)

// LinkOptions defines the options for the Link command.
type LinkOptions = internal.Options

// Link creates or repairs every entry's symlink. The result is the number of entries that failed, refused Occupied destinations included.
func Link(opts LinkOptions) (int, error) {
	log := logging.GetLogger("commands.link")
	log.Debug().Str("command", "Link").Msg("Executing command")

	count, err := internal.RunPipeline(reconcile.OperationLink, opts)
	if err != nil {
		log.Debug().Err(err).Msg("Link failed")
		return 0, err
	}

	log.Info().Str("command", "Link").Int("count", count).Msg("Command finished")
	return count, nil
}
