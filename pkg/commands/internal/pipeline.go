package internal

import (
	"github.com/arthur-debert/dotlink/pkg/config"
	"github.com/arthur-debert/dotlink/pkg/errors"
	"github.com/arthur-debert/dotlink/pkg/filesystem"
	"github.com/arthur-debert/dotlink/pkg/linkfile"
	"github.com/arthur-debert/dotlink/pkg/logging"
	"github.com/arthur-debert/dotlink/pkg/paths"
	"github.com/arthur-debert/dotlink/pkg/reconcile"
)

// Options are shared by every command
type Options struct {
	// ConfigPath is the configuration file. Empty means paths.DefaultConfigPath.
	ConfigPath string
	// Home is the home directory. Empty means paths.HomeDir.
	Home string
	// DryRun reports what would change without changing it.
	DryRun bool
	// Reporter receives one event per entry. Nil discards them.
	Reporter reconcile.Reporter
	// FileSystem defaults to the OS filesystem.
	FileSystem filesystem.FS
}

// RunPipeline loads the configuration and linkfiles, then runs op over the
// resulting set. The returned count is the operation's outcome; a non-nil
// error means nothing was processed.
func RunPipeline(op reconcile.Operation, opts Options) (int, error) {
	logger := logging.GetLogger("commands.internal.pipeline")
	logger.Debug().
		Str("operation", string(op)).
		Str("configPath", opts.ConfigPath).
		Bool("dryRun", opts.DryRun).
		Msg("Starting pipeline")

	// 1. Home directory, once
	home := opts.Home
	if home == "" {
		var err error
		home, err = paths.HomeDir()
		if err != nil {
			return 0, err
		}
	}

	// 2. Configuration
	configPath := opts.ConfigPath
	if configPath == "" {
		configPath = paths.DefaultConfigPath(home)
	}
	cfg, err := config.Load(configPath)
	if err != nil {
		return 0, err
	}
	resolved, err := cfg.Resolve(home)
	if err != nil {
		return 0, err
	}

	fsys := opts.FileSystem
	if fsys == nil {
		fsys = filesystem.NewOS()
	}

	if _, err := fsys.Stat(resolved.Dotdir); err != nil {
		logger.Warn().Str("dotdir", resolved.Dotdir).Msg("dotdir does not exist")
	}

	// 3. Linkfiles
	set, err := linkfile.Load(fsys, resolved.Linkfiles, resolved.Dotdir, resolved.Resolver)
	if err != nil {
		return 0, err
	}
	logger.Debug().
		Int("linkfiles", len(set.Groups)).
		Int("entries", set.Len()).
		Msg("Linkfiles loaded")

	// 4. Reconcile
	r := reconcile.New(fsys, opts.Reporter, reconcile.Options{
		DryRun:     opts.DryRun,
		CreateDirs: resolved.CreateDirs,
	})

	switch op {
	case reconcile.OperationCheck:
		return r.Check(set), nil
	case reconcile.OperationLink:
		return r.Link(set), nil
	case reconcile.OperationClean:
		return r.Clean(set), nil
	}
	return 0, errors.Newf(errors.ErrInternal, "unknown operation %q", op)
}
