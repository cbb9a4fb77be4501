// Package config loads the user's dotlink configuration file.
//
// The file is TOML and names the managed repository, the directory inside it
// that holds the dotfiles and the linkfiles to read:
//
//	clone_repository = "~/src/dotfiles"
//	dotdir = "$clone_repository/home"
//	linkfiles = ["$dotdir/links.toml"]
//	create_dirs = true
//
// Values are layered with koanf: built-in defaults, then the file, then
// DOTLINK_* environment variables (DOTLINK_DOTDIR, DOTLINK_LINKFILES=a,b).
// Resolve expands every path and returns the resolver that linkfile
// destinations are expanded with, so $clone_repository and $dotdir stay
// available to them.
package config
