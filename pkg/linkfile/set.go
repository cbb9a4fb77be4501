package linkfile

import (
	"sort"

	"github.com/arthur-debert/dotlink/pkg/entry"
	"github.com/arthur-debert/dotlink/pkg/errors"
	"github.com/arthur-debert/dotlink/pkg/filesystem"
	"github.com/arthur-debert/dotlink/pkg/logging"
	"github.com/arthur-debert/dotlink/pkg/paths"
)

// Group is the entries of one linkfile, in declaration order
type Group struct {
	ID      string
	Entries []entry.Entry
}

// Set is every group of a command invocation, ordered by ID
type Set struct {
	Groups []Group
}

// Len returns the number of entries across all groups
func (s *Set) Len() int {
	n := 0
	for _, g := range s.Groups {
		n += len(g.Entries)
	}
	return n
}

// Entries builds one Entry per string-valued declaration. Source paths are
// resolved under base, destinations through r.Destination. Other values are
// metadata and skipped. An empty destination is rejected.
func Entries(decls []Declaration, base string, r *paths.Resolver) ([]entry.Entry, error) {
	entries := make([]entry.Entry, 0, len(decls))
	for _, d := range decls {
		value, ok := d.Value.(string)
		if !ok {
			continue
		}
		if value == "" {
			return nil, errors.Newf(errors.ErrConfigInvalid, "entry %q has an empty destination", d.Key).
				WithDetail("key", d.Key)
		}

		src, err := r.Source(base, d.Key)
		if err != nil {
			return nil, err
		}
		dst, err := r.Destination(value)
		if err != nil {
			return nil, err
		}

		e, err := entry.New(src, dst)
		if err != nil {
			return nil, err
		}
		entries = append(entries, e)
	}
	return entries, nil
}

// Parse decodes one linkfile and builds its entries
func Parse(data []byte, base string, r *paths.Resolver) ([]entry.Entry, error) {
	decls, err := Decode(data)
	if err != nil {
		return nil, err
	}
	return Entries(decls, base, r)
}

// Load reads every linkfile in ids and returns the combined Set. ids are
// paths, already resolved. Any failure discards the whole set.
func Load(fsys filesystem.FS, ids []string, base string, r *paths.Resolver) (*Set, error) {
	logger := logging.GetLogger("linkfile")

	sorted := append([]string(nil), ids...)
	sort.Strings(sorted)

	set := &Set{Groups: make([]Group, 0, len(sorted))}
	for i, id := range sorted {
		if i > 0 && sorted[i-1] == id {
			continue
		}

		data, err := fsys.ReadFile(id)
		if err != nil {
			return nil, errors.Wrapf(err, errors.ErrConfigParse, "cannot read linkfile %s", id).
				WithDetail("linkfile", id)
		}

		entries, err := Parse(data, base, r)
		if err != nil {
			if errors.IsErrorCode(err, errors.ErrConfigParse) {
				return nil, errors.Wrapf(err, errors.ErrConfigParse, "cannot parse linkfile %s", id).
					WithDetail("linkfile", id)
			}
			return nil, err
		}

		logger.Debug().
			Str("linkfile", id).
			Int("entries", len(entries)).
			Msg("Linkfile loaded")

		set.Groups = append(set.Groups, Group{ID: id, Entries: entries})
	}

	if err := checkDuplicates(set); err != nil {
		return nil, err
	}

	return set, nil
}

// checkDuplicates rejects two entries that want the same destination
func checkDuplicates(set *Set) error {
	type owner struct {
		linkfile string
		src      string
	}
	owners := make(map[string]owner)

	for _, g := range set.Groups {
		for _, e := range g.Entries {
			if prev, exists := owners[e.Dst]; exists {
				return errors.Newf(errors.ErrDuplicateDestination,
					"destination conflict: both %s (%s) and %s (%s) want to link to %s",
					prev.src, prev.linkfile, e.Src, g.ID, e.Dst).
					WithDetail("dst", e.Dst).
					WithDetail("linkfiles", []string{prev.linkfile, g.ID})
			}
			owners[e.Dst] = owner{linkfile: g.ID, src: e.Src}
		}
	}
	return nil
}
