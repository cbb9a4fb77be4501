// Package entry holds the resolved source/destination pair declared by a
// linkfile line and classifies its destination on disk.
package entry

import (
	stderrors "errors"
	"io/fs"
	"path/filepath"

	"github.com/arthur-debert/dotlink/pkg/errors"
	"github.com/arthur-debert/dotlink/pkg/filesystem"
)

// Entry is one source -> destination mapping. Both paths are absolute and
// cleaned; an Entry is never mutated after New returns it.
type Entry struct {
	// Src is the real file inside the managed repository.
	Src string
	// Dst is where the symlink to Src should live.
	Dst string
}

// New validates and builds an Entry
func New(src, dst string) (Entry, error) {
	if !filepath.IsAbs(src) {
		return Entry{}, errors.Newf(errors.ErrInvalidInput, "source path %q is not absolute", src)
	}
	if !filepath.IsAbs(dst) {
		return Entry{}, errors.Newf(errors.ErrInvalidInput, "destination path %q is not absolute", dst)
	}
	return Entry{Src: filepath.Clean(src), Dst: filepath.Clean(dst)}, nil
}

// Status inspects Dst and classifies it. Nothing is cached: every call reads
// the filesystem again. An error is returned only when Dst cannot be
// inspected at all (permissions, a non-directory parent, I/O).
func (e Entry) Status(fsys filesystem.FS) (Status, error) {
	info, err := fsys.Lstat(e.Dst)
	if err != nil {
		if stderrors.Is(err, fs.ErrNotExist) {
			return Unlinked, nil
		}
		return Unlinked, errors.Wrapf(err, errors.ErrFileAccess, "cannot inspect %s", e.Dst).
			WithDetail("dst", e.Dst)
	}

	if info.Mode()&fs.ModeSymlink == 0 {
		return Occupied, nil
	}

	target, err := fsys.Readlink(e.Dst)
	if err != nil {
		return Mismatched, errors.Wrapf(err, errors.ErrFileAccess, "cannot read symlink %s", e.Dst).
			WithDetail("dst", e.Dst)
	}

	if e.PointsTo(target) {
		return Healthy, nil
	}
	return Mismatched, nil
}

// PointsTo reports whether a symlink at Dst with the given target resolves to
// Src. Relative targets are interpreted from Dst's directory, as the kernel
// does.
func (e Entry) PointsTo(target string) bool {
	if !filepath.IsAbs(target) {
		target = filepath.Join(filepath.Dir(e.Dst), target)
	}
	return filepath.Clean(target) == e.Src
}
