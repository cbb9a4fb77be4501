// Package linkfile turns linkfile declarations into entries.
//
// A linkfile is a flat TOML document mapping a path inside the managed
// repository to a destination:
//
//	vimrc = "~/.vimrc"
//	"config/nvim" = ".config/nvim"   # relative destinations live in $HOME
//	version = 2                       # not a string: ignored
//
// Load reads a list of linkfiles into a Set. Construction is all or
// nothing: an unreadable or malformed linkfile, an unexpandable path, or two
// entries claiming the same destination fails the whole set.
package linkfile
