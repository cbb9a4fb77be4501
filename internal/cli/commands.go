package cli

import (
	"fmt"

	"github.com/arthur-debert/dotlink/internal/version"
	"github.com/arthur-debert/dotlink/pkg/commands"
	"github.com/arthur-debert/dotlink/pkg/ui"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
)

// operationFunc is the signature shared by commands.Check, Link and Clean
type operationFunc func(commands.Options) (int, error)

// newOperationCmd builds a command that runs op with a reporter for the
// selected format
func newOperationCmd(state *cliState, op operationFunc, use, short, long, example string) *cobra.Command {
	return &cobra.Command{
		Use:     use,
		Short:   short,
		Long:    long,
		Example: example,
		GroupID: "core",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			reporter, err := ui.NewReporter(state.format, cmd.OutOrStdout(), state.verbosity >= 1)
			if err != nil {
				return err
			}

			outcome, err := op(commands.Options{
				ConfigPath: state.configPath,
				DryRun:     state.dryRun,
				Reporter:   reporter,
			})
			if err != nil {
				return err
			}

			if werr := reporter.Err(); werr != nil {
				log.Warn().Err(werr).Msg("Failed to write output")
			}
			state.outcome = outcome
			return nil
		},
	}
}

func newCheckCmd(state *cliState) *cobra.Command {
	return newOperationCmd(state, commands.Check, "check", MsgCheckShort, MsgCheckLong, MsgCheckExample)
}

func newLinkCmd(state *cliState) *cobra.Command {
	return newOperationCmd(state, commands.Link, "link", MsgLinkShort, MsgLinkLong, MsgLinkExample)
}

func newCleanCmd(state *cliState) *cobra.Command {
	return newOperationCmd(state, commands.Clean, "clean", MsgCleanShort, MsgCleanLong, MsgCleanExample)
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:     "version",
		Short:   MsgVersionShort,
		GroupID: "misc",
		Args:    cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			_, _ = fmt.Fprintf(cmd.OutOrStdout(), MsgVersionFormat, version.Version, version.Commit, version.Date)
		},
	}
}

func newCompletionCmd() *cobra.Command {
	return &cobra.Command{
		Use:                   "completion [bash|zsh|fish|powershell]",
		Short:                 MsgCompletionShort,
		Long:                  MsgCompletionLong,
		GroupID:               "misc",
		DisableFlagsInUseLine: true,
		ValidArgs:             []string{"bash", "zsh", "fish", "powershell"},
		Args:                  cobra.MatchAll(cobra.ExactArgs(1), cobra.OnlyValidArgs),
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			switch args[0] {
			case "bash":
				return cmd.Root().GenBashCompletion(out)
			case "zsh":
				return cmd.Root().GenZshCompletion(out)
			case "fish":
				return cmd.Root().GenFishCompletion(out, true)
			default:
				return cmd.Root().GenPowerShellCompletionWithDesc(out)
			}
		},
	}
}
