// Package main provides the seam command-line interface.
//
// seam is the file-ownership database of a package manager: for every
// path any installed package touches it knows the owning packages, any
// administrator diversion redirecting the path, stat overrides, and the
// content-hash state used for conffile change detection.
//
// The main binary supports multiple subcommands:
//   - stats: Print database statistics for a status area
//   - query: Resolve paths to their owners and diversions
//   - diversions: List all currently diverted paths
package main
