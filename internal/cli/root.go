package cli

import (
	"fmt"
	"io"

	"github.com/arthur-debert/dotlink/internal/version"
	"github.com/arthur-debert/dotlink/pkg/errors"
	"github.com/arthur-debert/dotlink/pkg/logging"
	"github.com/arthur-debert/dotlink/pkg/ui"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
)

// Exit codes. Operation outcomes are exit codes themselves, capped so they
// never collide with exitFatal.
const (
	exitMaxOutcome = 254
	exitFatal      = 255
)

// cliState is what flags and commands share during one execution
type cliState struct {
	verbosity  int
	dryRun     bool
	configPath string
	format     ui.Format

	// outcome is set by the command that ran
	outcome int
}

// NewRootCmd creates the root command
func NewRootCmd() *cobra.Command {
	rootCmd, _ := newRootCmd()
	return rootCmd
}

// newRootCmd also returns the state its flags and commands write to
func newRootCmd() (*cobra.Command, *cliState) {
	initTemplateFormatting()

	state := &cliState{}

	rootCmd := &cobra.Command{
		Use:     "dotlink",
		Short:   MsgRootShort,
		Long:    MsgRootLong,
		Version: version.String(),
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			logging.SetupLogger(state.verbosity)
			log.Debug().Str("command", cmd.Name()).Msg("Command started")
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			_ = cmd.Help()
			return errors.New(errors.ErrInvalidInput, MsgErrNoCommand)
		},
		SilenceUsage:      true,
		SilenceErrors:     true,
		DisableAutoGenTag: true,
	}

	// Global flags
	flags := rootCmd.PersistentFlags()
	flags.CountVarP(&state.verbosity, "verbose", "v", MsgFlagVerbose)
	flags.BoolVar(&state.dryRun, "dry-run", false, MsgFlagDryRun)
	flags.StringVar(&state.configPath, "config", "", MsgFlagConfig)
	flags.Var(&state.format, "format", MsgFlagFormat)
	_ = rootCmd.RegisterFlagCompletionFunc("format", func(*cobra.Command, []string, string) ([]string, cobra.ShellCompDirective) {
		return []string{"auto", "term", "text", "json"}, cobra.ShellCompDirectiveNoFileComp
	})

	rootCmd.SetHelpCommand(&cobra.Command{Hidden: true})

	rootCmd.AddGroup(&cobra.Group{ID: "core", Title: MsgGroupCore})
	rootCmd.AddGroup(&cobra.Group{ID: "misc", Title: MsgGroupMisc})

	rootCmd.SetUsageTemplate(MsgUsageTemplate)

	rootCmd.AddCommand(newCheckCmd(state))
	rootCmd.AddCommand(newLinkCmd(state))
	rootCmd.AddCommand(newCleanCmd(state))
	rootCmd.AddCommand(newVersionCmd())
	rootCmd.AddCommand(newCompletionCmd())

	return rootCmd, state
}

// Run executes the CLI and returns the process exit code
func Run(args []string, stdout, stderr io.Writer) int {
	rootCmd, state := newRootCmd()
	rootCmd.SetArgs(args)
	rootCmd.SetOut(stdout)
	rootCmd.SetErr(stderr)

	if err := rootCmd.Execute(); err != nil {
		log.Debug().Err(err).Str("code", string(errors.GetErrorCode(err))).Msg("Command failed")
		if rerr := ui.RenderError(state.format, stderr, err); rerr != nil {
			_, _ = fmt.Fprintf(stderr, "Error: %v\n", err)
		}
		if !errors.IsFatal(err) && ui.Resolve(state.format, stderr) != ui.FormatJSON {
			_, _ = fmt.Fprintln(stderr, MsgUsageHint)
		}
		return exitFatal
	}

	return exitCode(state.outcome)
}

// exitCode maps an operation outcome to a process exit code
func exitCode(outcome int) int {
	switch {
	case outcome < 0:
		return 0
	case outcome > exitMaxOutcome:
		return exitMaxOutcome
	}
	return outcome
}
