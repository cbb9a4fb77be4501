// Package filesystem provides the filesystem seam used by dotlink.
//
// Everything that touches the disk (status classification, link creation
// and removal, linkfile reads) goes through FS so tests can point it at a
// temporary tree. The implementation is backed by afero; symlink support
// comes from afero's optional Lstater, Linker and LinkReader interfaces,
// which the OS filesystem implements.
package filesystem
