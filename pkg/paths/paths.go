package paths

import (
	"maps"
	"os"
	"path/filepath"
	"strings"

	"github.com/adrg/xdg"
	"github.com/arthur-debert/dotlink/pkg/errors"
)

// Environment variable names
const (
	// EnvHome is the standard home directory variable
	EnvHome = "HOME"

	// EnvConfig overrides the configuration file location
	EnvConfig = "DOTLINK_CONFIG"
)

const (
	// LegacyConfigFile is the configuration file looked up in the home directory
	LegacyConfigFile = ".dotconfig.toml"

	// ConfigFile is the configuration file path relative to XDG_CONFIG_HOME
	ConfigFile = "dotlink/config.toml"
)

// Resolver expands configured path strings into absolute paths.
type Resolver struct {
	// Home is the already-resolved home directory.
	Home string

	// Vars are looked up before HOME and the environment.
	Vars map[string]string

	// LookupEnv is consulted last. Defaults to os.LookupEnv.
	LookupEnv func(string) (string, bool)
}

// NewResolver creates a Resolver for the given home directory
func NewResolver(home string) *Resolver {
	return &Resolver{
		Home:      home,
		Vars:      map[string]string{},
		LookupEnv: os.LookupEnv,
	}
}

// WithVars returns a copy of r with vars layered over its existing variables.
func (r *Resolver) WithVars(vars map[string]string) *Resolver {
	merged := make(map[string]string, len(r.Vars)+len(vars))
	maps.Copy(merged, r.Vars)
	maps.Copy(merged, vars)
	return &Resolver{
		Home:      r.Home,
		Vars:      merged,
		LookupEnv: r.LookupEnv,
	}
}

func (r *Resolver) lookup(name string) (string, bool) {
	if v, ok := r.Vars[name]; ok {
		return v, true
	}
	if name == EnvHome && r.Home != "" {
		return r.Home, true
	}
	if r.LookupEnv != nil {
		return r.LookupEnv(name)
	}
	return "", false
}

// Expand replaces variables and a leading ~ and converts separators. The
// result may still be relative.
func (r *Resolver) Expand(path string) (string, error) {
	if path == "" {
		return "", errors.New(errors.ErrInvalidInput, "empty path")
	}

	var missing string
	expanded := os.Expand(path, func(name string) string {
		v, ok := r.lookup(name)
		if !ok && missing == "" {
			missing = name
		}
		return v
	})
	if missing != "" {
		return "", errors.Newf(errors.ErrPathExpansion, "undefined variable $%s in %q", missing, path).
			WithDetail("path", path).
			WithDetail("variable", missing)
	}

	expanded, err := r.expandTilde(expanded)
	if err != nil {
		return "", err
	}

	return filepath.FromSlash(expanded), nil
}

func (r *Resolver) expandTilde(path string) (string, error) {
	if path != "~" && !strings.HasPrefix(path, "~/") && !strings.HasPrefix(path, `~\`) {
		// ~user is not supported and stays literal
		return path, nil
	}
	if r.Home == "" {
		return "", errors.Newf(errors.ErrPathExpansion, "cannot expand ~ in %q: home directory unknown", path).
			WithDetail("path", path)
	}
	if path == "~" {
		return r.Home, nil
	}
	return filepath.Join(r.Home, path[2:]), nil
}

// Absolute expands path and makes it absolute against the working directory.
func (r *Resolver) Absolute(path string) (string, error) {
	expanded, err := r.Expand(path)
	if err != nil {
		return "", err
	}

	abs, err := filepath.Abs(expanded)
	if err != nil {
		return "", errors.Wrapf(err, errors.ErrFileAccess, "failed to get absolute path for %s", expanded)
	}
	return abs, nil
}

// Source resolves a linkfile key against the managed repository directory.
func (r *Resolver) Source(base, key string) (string, error) {
	return r.Absolute(base + "/" + key)
}

// Destination resolves a linkfile value. Paths that are still relative after
// expansion are taken relative to the home directory.
func (r *Resolver) Destination(value string) (string, error) {
	expanded, err := r.Expand(value)
	if err != nil {
		return "", err
	}

	if !filepath.IsAbs(expanded) {
		if r.Home == "" {
			return "", errors.Newf(errors.ErrPathExpansion, "cannot resolve relative destination %q: home directory unknown", value).
				WithDetail("path", value)
		}
		expanded = filepath.Join(r.Home, expanded)
	}

	return filepath.Clean(expanded), nil
}

// HomeDir returns the user's home directory. It is called once at startup;
// everything downstream receives the value explicitly.
func HomeDir() (string, error) {
	homeDir, err := os.UserHomeDir()
	if err == nil && homeDir != "" {
		return homeDir, nil
	}

	if home := os.Getenv(EnvHome); home != "" {
		return home, nil
	}

	if err == nil {
		return "", errors.New(errors.ErrFileAccess, "unable to determine home directory")
	}
	return "", errors.Wrap(err, errors.ErrFileAccess, "unable to determine home directory")
}

// DefaultConfigPath returns the configuration file to load when none is
// given: $DOTLINK_CONFIG, then ~/.dotconfig.toml, then
// $XDG_CONFIG_HOME/dotlink/config.toml. When nothing exists the legacy
// location is returned so the error names it.
func DefaultConfigPath(home string) string {
	if p := os.Getenv(EnvConfig); p != "" {
		return p
	}

	legacy := filepath.Join(home, LegacyConfigFile)
	if _, err := os.Stat(legacy); err == nil {
		return legacy
	}

	if p, err := xdg.SearchConfigFile(ConfigFile); err == nil {
		return p
	}

	return legacy
}
