package fsys

import (
	"io/fs"
	"syscall"
)

// NodeFlags is a bit-set of per-run states attached to a node. All
// flags are cleared by Table.ClearRunState.
type NodeFlags uint16

const (
	// FlagNewConffile marks a node in the new-conffiles set.
	FlagNewConffile NodeFlags = 1 << iota
	// FlagNewInArchive marks a node present in the incoming archive.
	FlagNewInArchive
	// FlagOldConffile marks a node in the old package's conffiles list.
	FlagOldConffile
	// FlagObsoleteConffile marks an obsolete conffile.
	FlagObsoleteConffile
	// FlagElideOtherLists marks a node that must be removed from other
	// packages' lists.
	FlagElideOtherLists
	// FlagNoAtomicOverwrite marks a node where at least one instance is
	// a directory, so it cannot be renamed over.
	FlagNoAtomicOverwrite
	// FlagPlacedOnDisk marks a node whose new file has been placed on
	// disk.
	FlagPlacedOnDisk
	// FlagDeferredFsync marks a node with its fsync deferred.
	FlagDeferredFsync
	// FlagDeferredRename marks a node with its rename deferred.
	FlagDeferredRename
	// FlagFiltered marks a path being filtered out of the install.
	FlagFiltered
)

// EmptyHash is the distinguished marker a node's NewHash holds until
// the file has actually been unpacked and hashed this run.
const EmptyHash = "-"

// FileStat is an administrator-supplied override for the owner, group
// and mode of a path. When present it is used instead of the identity
// recorded in the package archive. The database only carries it; the
// override store maintains it.
type FileStat struct {
	UID  int
	GID  int
	Mode fs.FileMode
}

// OndiskID identifies the file currently placed on disk for a node, so
// hard-link aliasing between paths can be detected.
type OndiskID struct {
	Dev uint64
	Ino uint64
}

// NewOndiskID captures the device/inode identity from a stat result.
// It returns nil when the platform stat payload is unavailable.
func NewOndiskID(fi fs.FileInfo) *OndiskID {
	st, ok := fi.Sys().(*syscall.Stat_t)
	if !ok {
		return nil
	}
	return &OndiskID{Dev: uint64(st.Dev), Ino: uint64(st.Ino)}
}

// Node is the per-path record of the database. There is exactly one
// node per distinct canonical path for the lifetime of the table, so
// node pointers are stable identities callers may compare and cache.
type Node struct {
	next *Node

	// Name is the canonical path. It always begins with exactly one
	// slash; a stored node violating that is a fatal corruption.
	Name string

	// Packages lists the packages currently claiming this path, in
	// registration order.
	Packages *PkgList

	// Divert links this node into the diversion registry, or nil.
	Divert *Diversion

	// Stat is the administrator's owner/group/mode override, or nil.
	Stat *FileStat

	// TriggerInterest is an opaque link to trigger-subsystem state.
	TriggerInterest any

	// Fields from here on are cleared by Table.ClearRunState.

	// Flags holds the per-run state bits, zero on a fresh node.
	Flags NodeFlags

	// OldHash is the recorded content hash; valid only while the node
	// is in the new-conffiles set. Empty means unset.
	OldHash string

	// NewHash is the content hash computed after unpacking this run;
	// EmptyHash until then.
	NewHash string

	// Ondisk identifies the file currently placed on disk, or nil.
	Ondisk *OndiskID
}

// Resolve returns the node pkg should actually operate on for this
// path: the diversion target when the path is diverted, unless pkg is
// the diversion's exempt package, in which case the contested node
// itself.
func (n *Node) Resolve(pkg *Package) *Node {
	d := n.Divert
	if d == nil || d.UseInstead == nil {
		return n
	}
	if pkg != nil && pkg == d.ExemptPkg {
		return n
	}
	return d.UseInstead
}
