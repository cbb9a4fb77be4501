package config

import (
	"github.com/arthur-debert/dotlink/pkg/errors"
	"github.com/arthur-debert/dotlink/pkg/paths"
)

// Resolved is a configuration with every path expanded and absolute
type Resolved struct {
	Repository string
	Dotdir     string
	Linkfiles  []string
	CreateDirs bool

	// Resolver expands linkfile keys and values. It carries
	// clone_repository and dotdir as variables.
	Resolver *paths.Resolver
}

// Resolve expands the configuration against the given home directory and
// the process environment.
func (c *Config) Resolve(home string) (*Resolved, error) {
	return c.ResolveWith(paths.NewResolver(home))
}

// ResolveWith expands clone_repository, then dotdir, then each linkfile.
// Each step may refer to the variables defined by the steps before it.
func (c *Config) ResolveWith(r *paths.Resolver) (*Resolved, error) {
	res := &Resolved{CreateDirs: c.CreateDirs}

	if c.Repository != "" {
		repo, err := r.Absolute(c.Repository)
		if err != nil {
			return nil, withKey(err, VarRepository)
		}
		res.Repository = repo
		r = r.WithVars(map[string]string{VarRepository: repo})
	}

	dotdir := c.Dotdir
	if dotdir == "" {
		dotdir = "$" + VarRepository
	}
	resolvedDotdir, err := r.Absolute(dotdir)
	if err != nil {
		return nil, withKey(err, VarDotdir)
	}
	res.Dotdir = resolvedDotdir
	r = r.WithVars(map[string]string{VarDotdir: resolvedDotdir})

	res.Linkfiles = make([]string, 0, len(c.Linkfiles))
	for _, lf := range c.Linkfiles {
		resolved, err := r.Absolute(lf)
		if err != nil {
			return nil, withKey(err, "linkfiles")
		}
		res.Linkfiles = append(res.Linkfiles, resolved)
	}

	res.Resolver = r
	return res, nil
}

func withKey(err error, key string) error {
	if dlErr, ok := err.(*errors.DotlinkError); ok {
		return dlErr.WithDetail("key", key)
	}
	return err
}
