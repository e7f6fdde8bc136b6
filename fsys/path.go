package fsys

import (
	"os"
	"strings"
)

// RootEnvVar names the environment variable consulted for the default
// filesystem root when none has been set explicitly.
const RootEnvVar = "SEAM_ROOT"

// skipSlashDotSlash returns the longest suffix of name obtained by
// repeatedly stripping a leading '/' or a leading './' segment.
func skipSlashDotSlash(name string) string {
	for {
		switch {
		case strings.HasPrefix(name, "/"):
			name = name[1:]
		case strings.HasPrefix(name, "./"):
			name = name[2:]
		default:
			return name
		}
	}
}

// Canonical returns the canonical form of a path: any leading run of
// '/' and './' segments replaced by a single leading slash. This form
// is the only key the node table ever hashes or compares, and it is
// idempotent.
func Canonical(name string) string {
	return "/" + skipSlashDotSlash(name)
}

// SetRoot re-points the table at a different filesystem root and
// returns the normalized root. An empty dir falls back to $SEAM_ROOT,
// and trailing slashes are trimmed so RealPath never doubles them.
//
// Switching roots means every recorded ownership, diversion and on-disk
// state describes the wrong filesystem, so the table is hard-reset as
// part of the switch.
func (t *Table) SetRoot(dir string) string {
	if dir == "" {
		dir = os.Getenv(RootEnvVar)
	}
	t.root = strings.TrimRight(dir, "/")
	t.Reset()
	return t.root
}

// Root returns the filesystem root canonical names are resolved under.
// The default is empty, meaning the host root.
func (t *Table) Root() string {
	return t.root
}

// RealPath maps a path (in any spelling) to its on-disk location under
// the table's filesystem root.
func (t *Table) RealPath(name string) string {
	return t.root + "/" + skipSlashDotSlash(name)
}
