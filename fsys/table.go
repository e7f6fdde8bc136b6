package fsys

import (
	"fmt"

	"github.com/google/uuid"
	"github.com/taigrr/colorhash"
)

// numBins must always be a prime for good distribution.
// This is the closest one to 2^18 (262144). The table never resizes.
const numBins = 262139

// FindFlags adjusts how Table.Find treats the path it is given.
type FindFlags uint8

const (
	// FindNoCopy promises the caller's string outlives the table, so
	// when its canonical suffix is preceded by a slash already in the
	// caller's memory the node may alias that string instead of
	// building a fresh one.
	FindNoCopy FindFlags = 1 << iota
	// FindNoCreate makes Find a pure lookup: a miss returns nil
	// instead of allocating a node.
	FindNoCreate
)

// Table is the filename-node database for one filesystem root. It is
// built once per run and passed to every collaborator; no global state
// exists. A Table must not be shared between goroutines.
type Table struct {
	bins    []*Node
	entries int
	root    string

	// generation changes on every hard reset so outstanding iterators
	// can detect that their table vanished underneath them.
	generation uuid.UUID

	// diversions chains the contested halves for bulk iteration.
	diversions *Diversion
}

// New returns an empty table rooted at $SEAM_ROOT (or the host root
// when unset).
func New() *Table {
	t := &Table{
		bins:       make([]*Node, numBins),
		generation: uuid.New(),
	}
	t.SetRoot("")
	return t
}

// Find interns a path and returns its node. The same canonical path
// always yields the same node pointer for the lifetime of the table.
// With FindNoCreate a miss returns nil; otherwise a miss allocates a
// fresh node with zeroed per-run state.
func (t *Table) Find(name string, flags FindFlags) *Node {
	orig := name

	// We skip initial slashes and './' pairs, and add our own single
	// leading slash.
	name = skipSlashDotSlash(name)

	binp := &t.bins[colorhash.HashString(name)%numBins]
	for *binp != nil {
		node := *binp
		// This should be impossible, but it points straight at heap
		// corruption or a construction bug when it happens, so check
		// every probe rather than act on a broken node.
		if len(node.Name) == 0 || node.Name[0] != '/' {
			panic(fmt.Sprintf("fsys: filename node %q does not start with '/'", node.Name))
		}
		if node.Name[1:] == name {
			return node
		}
		binp = &node.next
	}

	if flags&FindNoCreate != 0 {
		return nil
	}

	node := &Node{NewHash: EmptyHash}
	if off := len(orig) - len(name); flags&FindNoCopy != 0 && off > 0 && orig[off-1] == '/' {
		node.Name = orig[off-1:]
	} else {
		node.Name = "/" + name
	}
	*binp = node
	t.entries++

	return node
}

// Len returns the number of distinct nodes currently live.
func (t *Table) Len() int {
	return t.entries
}

// Generation identifies the table's current contents. It changes on
// every hard reset, never on ClearRunState.
func (t *Table) Generation() uuid.UUID {
	return t.generation
}

// ClearRunState zeroes every node's per-run fields (flags, hashes,
// on-disk identity) in place. Node identity, names, ownership lists
// and diversions are untouched. Run this once before the phase that
// computes real file state.
func (t *Table) ClearRunState() {
	for i := range t.bins {
		for node := t.bins[i]; node != nil; node = node.next {
			node.Flags = 0
			node.OldHash = ""
			node.NewHash = EmptyHash
			node.Ondisk = nil
		}
	}
}

// Reset empties every bucket, the diversion chain and the node
// counter. Previously returned nodes are dead afterwards: looking up a
// known path again allocates a fresh node. Outstanding iterators
// observe end-of-sequence rather than the old membership.
func (t *Table) Reset() {
	for i := range t.bins {
		t.bins[i] = nil
	}
	t.entries = 0
	t.diversions = nil
	t.generation = uuid.New()
}
