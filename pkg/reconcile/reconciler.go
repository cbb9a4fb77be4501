package reconcile

import (
	"path/filepath"

	"github.com/arthur-debert/dotlink/pkg/entry"
	"github.com/arthur-debert/dotlink/pkg/errors"
	"github.com/arthur-debert/dotlink/pkg/filesystem"
	"github.com/arthur-debert/dotlink/pkg/linkfile"
	"github.com/arthur-debert/dotlink/pkg/logging"
	"github.com/rs/zerolog"
)

// Options modify how operations touch the filesystem
type Options struct {
	// DryRun classifies and reports without mutating anything.
	DryRun bool
	// CreateDirs creates missing parent directories of a destination.
	CreateDirs bool
}

// Reconciler applies operations to every entry of a set
type Reconciler struct {
	fs       filesystem.FS
	reporter Reporter
	opts     Options
	logger   zerolog.Logger
}

// New creates a Reconciler. A nil reporter discards events.
func New(fsys filesystem.FS, reporter Reporter, opts Options) *Reconciler {
	if reporter == nil {
		reporter = NopReporter{}
	}
	return &Reconciler{
		fs:       fsys,
		reporter: reporter,
		opts:     opts,
		logger:   logging.GetLogger("reconcile"),
	}
}

// Check reports the status of every entry and returns how many are not
// Healthy.
func (r *Reconciler) Check(set *linkfile.Set) int {
	return r.run(OperationCheck, set, func(e entry.Entry, status entry.Status) (Action, error) {
		return ActionNone, nil
	})
}

// Link makes every entry Healthy where that is safe and returns the number
// of entries that failed.
func (r *Reconciler) Link(set *linkfile.Set) int {
	return r.run(OperationLink, set, r.link)
}

// Clean removes the symlink at every entry's destination and returns the
// number of entries that failed.
func (r *Reconciler) Clean(set *linkfile.Set) int {
	return r.run(OperationClean, set, r.clean)
}

type applyFunc func(e entry.Entry, status entry.Status) (Action, error)

func (r *Reconciler) run(op Operation, set *linkfile.Set, apply applyFunc) int {
	done := logging.LogOperationStart(r.logger, string(op))
	defer done()

	failures := 0
	for _, g := range set.Groups {
		r.reporter.BeginLinkfile(op, g.ID)

		for _, e := range g.Entries {
			ev := Event{
				Operation: op,
				Linkfile:  g.ID,
				Src:       e.Src,
				Dst:       e.Dst,
				Action:    ActionNone,
				DryRun:    r.opts.DryRun,
			}

			status, err := e.Status(r.fs)
			ev.Status = status
			if err != nil {
				ev.Err = err
			} else {
				ev.Action, ev.Err = apply(e, status)
			}

			if ev.Failed() {
				failures++
			}
			r.log(ev)
			r.reporter.Report(ev)
		}
	}

	return failures
}

func (r *Reconciler) link(e entry.Entry, status entry.Status) (Action, error) {
	switch status {
	case entry.Healthy:
		return ActionNone, nil

	case entry.Occupied:
		return ActionRefuse, occupied(e)

	case entry.Mismatched:
		r.warnMissingSource(e)
		if r.opts.DryRun {
			return ActionReplace, nil
		}
		previous, _ := r.fs.Readlink(e.Dst)
		if err := r.fs.Remove(e.Dst); err != nil {
			return ActionReplace, errors.Wrapf(err, errors.ErrLinkRemove, "cannot remove stale symlink %s", e.Dst).
				WithDetail("dst", e.Dst).
				WithDetail("previous_target", previous)
		}
		if err := r.createLink(e); err != nil {
			// the old link is gone; keep its target so it can be restored by hand
			r.logger.Warn().
				Str("dst", e.Dst).
				Str("previousTarget", previous).
				Msg("Stale symlink removed but replacement failed")
			return ActionReplace, err.WithDetail("previous_target", previous)
		}
		return ActionReplace, nil

	default:
		r.warnMissingSource(e)
		if r.opts.DryRun {
			return ActionCreate, nil
		}
		if err := r.createLink(e); err != nil {
			return ActionCreate, err
		}
		return ActionCreate, nil
	}
}

func (r *Reconciler) createLink(e entry.Entry) *errors.DotlinkError {
	if r.opts.CreateDirs {
		if err := r.fs.MkdirAll(filepath.Dir(e.Dst), 0755); err != nil {
			return errors.Wrapf(err, errors.ErrLinkCreate, "cannot create parent directory of %s", e.Dst).
				WithDetail("dst", e.Dst)
		}
	}
	if err := r.fs.Symlink(e.Src, e.Dst); err != nil {
		return errors.Wrapf(err, errors.ErrLinkCreate, "cannot create symlink %s", e.Dst).
			WithDetail("src", e.Src).
			WithDetail("dst", e.Dst)
	}
	return nil
}

func (r *Reconciler) clean(e entry.Entry, status entry.Status) (Action, error) {
	switch status {
	case entry.Unlinked:
		return ActionNone, nil

	case entry.Occupied:
		return ActionRefuse, occupied(e)

	default:
		if r.opts.DryRun {
			return ActionRemove, nil
		}
		if err := r.fs.Remove(e.Dst); err != nil {
			return ActionRemove, errors.Wrapf(err, errors.ErrLinkRemove, "cannot remove symlink %s", e.Dst).
				WithDetail("dst", e.Dst)
		}
		return ActionRemove, nil
	}
}

func occupied(e entry.Entry) error {
	return errors.Newf(errors.ErrOccupied, "%s exists and is not a symlink", e.Dst).
		WithDetail("dst", e.Dst)
}

// warnMissingSource logs a link that will dangle. Dangling links are still
// created.
func (r *Reconciler) warnMissingSource(e entry.Entry) {
	if _, err := r.fs.Lstat(e.Src); err != nil {
		r.logger.Warn().
			Str("src", e.Src).
			Str("dst", e.Dst).
			Msg("Source does not exist, link will dangle")
	}
}

func (r *Reconciler) log(ev Event) {
	logEvent := r.logger.Debug()
	if ev.Err != nil {
		logEvent = r.logger.Info().Err(ev.Err)
	}
	logEvent.
		Str("operation", string(ev.Operation)).
		Str("dst", ev.Dst).
		Str("status", ev.Status.String()).
		Str("action", string(ev.Action)).
		Bool("dryRun", ev.DryRun).
		Msg("Entry processed")
}
