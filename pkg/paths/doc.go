// Package paths resolves the path strings found in dotlink configuration
// and linkfiles into absolute, native-separator paths.
//
// Resolution never consults ambient process state on its own. The home
// directory is looked up once at startup by HomeDir and handed to a Resolver,
// and the variables a configuration defines (clone_repository, dotdir) are
// attached with Resolver.WithVars instead of being exported into the
// process environment.
//
// Supported syntax:
//
//   - ~ and ~/rest expand to the home directory
//   - $NAME and ${NAME} expand to an explicit variable, then HOME, then the
//     environment; an undefined name is a PATH_EXPANSION error
//   - forward slashes are converted to the platform separator
//
// # Usage
//
//	home, err := paths.HomeDir()
//	r := paths.NewResolver(home).WithVars(map[string]string{"dotdir": "/repo/dots"})
//	src, _ := r.Source("/repo/dots", "vimrc")   // /repo/dots/vimrc
//	dst, _ := r.Destination(".vimrc")           // /home/u/.vimrc
package paths
