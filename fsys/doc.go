// Package fsys implements the in-memory file-ownership database at the
// heart of seam.
//
// Every path ever touched by an installed or to-be-installed package is
// interned as a Node in a hash table keyed by the path's canonical form
// (a single leading slash, no leading './' or extra '/' segments). The
// node carries everything the rest of the system needs to know about
// that path: which packages list it, whether the administrator has
// diverted it to another path, an optional owner/group/mode override,
// per-run unpack flags, content hashes for conffile change detection,
// and the device/inode identity of the file currently on disk.
//
// Key Components:
//
// Node Table:
//   - Fixed prime bucket count for stable distribution
//   - Find interns a path and always returns the same node for the
//     same canonical form
//   - Two-tier reset: ClearRunState wipes per-run fields in place,
//     Reset empties the whole table
//
// Diversions:
//   - Symmetric contested/target linkage with an optional exempt
//     package, plus a flat chain over all contested halves
//
// Ownership Lists:
//   - Per-package forward file lists in manifest order
//   - Per-node owner lists in registration order
//
// Iterators:
//   - Full-table forward iteration in bucket order
//   - Reverse per-package iteration for child-before-parent removal
//   - Per-node owner iteration
//
// The package is deliberately single-threaded: seam runs its install
// and remove phases as a strict sequence of synchronous steps, so the
// table assumes one reader/writer at a time and takes no locks. Nothing
// here is ever persisted; the table is rebuilt each run from the
// administrative status area.
package fsys
