// Package cmd provides the command-line interface for the seam
// file-ownership database.
//
// This package contains all cobra command definitions and their
// implementations. Each command is constructed by a dedicated NewXCmd
// function for testability and clean separation.
//
// Commands:
//   - stats: Load a status area and print database statistics
//   - query: Resolve paths to owners, diversions and on-disk locations
//   - diversions: List all currently diverted paths
//
// Every command rebuilds the in-memory database from a seam
// administrative directory (per-package file manifests plus the
// diversions file); the database itself is never persisted.
package cmd
