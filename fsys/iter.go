package fsys

import "github.com/google/uuid"

// Iter walks every live node of the table exactly once: buckets in
// ascending index order, then chain order within a bucket. Chain order
// is insertion order, so the traversal is deterministic for a given
// sequence of insertions within one run. It is not alphabetic.
type Iter struct {
	t    *Table
	gen  uuid.UUID
	node *Node
	bin  int
}

// NewIter returns a forward iterator over the whole table. An iterator
// must not be kept across a hard reset; one that is observes
// end-of-sequence instead of the vanished membership.
func (t *Table) NewIter() *Iter {
	return &Iter{t: t, gen: t.generation}
}

// Next returns the next node, or nil once the table is exhausted.
func (it *Iter) Next() *Node {
	if it.t == nil || it.gen != it.t.generation {
		return nil
	}
	for it.node == nil {
		if it.bin >= numBins {
			return nil
		}
		it.node = it.t.bins[it.bin]
		it.bin++
	}
	node := it.node
	it.node = node.next
	return node
}

// Close releases the iterator. It never touches the nodes themselves.
func (it *Iter) Close() {
	it.t = nil
	it.node = nil
}

// Iterate visits every live node in the same order as NewIter/Next.
// It is usable with a range statement.
func (t *Table) Iterate(yield func(*Node) bool) {
	it := t.NewIter()
	defer it.Close()
	for node := it.Next(); node != nil; node = it.Next() {
		if !yield(node) {
			return
		}
	}
}

// ReverseIter yields the nodes of a package file list in exact reverse
// of manifest order, so side effects like directory removal can run
// child-before-parent. The forward list has no back links, so the
// reversal is materialized up front and the list itself is left
// intact for any other reader in the same pass.
type ReverseIter struct {
	todo []*Node
}

// NewReverseIter returns a reverse iterator over a forward node list,
// typically Package.Files().
func NewReverseIter(files *NodeList) *ReverseIter {
	it := &ReverseIter{}
	for cell := files; cell != nil; cell = cell.Next {
		it.todo = append(it.todo, cell.Node)
	}
	return it
}

// Next returns the next node in reverse order, or nil when done.
func (it *ReverseIter) Next() *Node {
	if len(it.todo) == 0 {
		return nil
	}
	node := it.todo[len(it.todo)-1]
	it.todo = it.todo[:len(it.todo)-1]
	return node
}

// Close releases the iterator.
func (it *ReverseIter) Close() {
	it.todo = nil
}

// OwnersIter visits every package currently owning a node exactly
// once, in the node's registration order.
type OwnersIter struct {
	cell *PkgList
}

// NewOwnersIter returns an iterator over the node's owning packages.
func (n *Node) NewOwnersIter() *OwnersIter {
	return &OwnersIter{cell: n.Packages}
}

// Next returns the next owning package, or nil when done.
func (it *OwnersIter) Next() *Package {
	if it.cell == nil {
		return nil
	}
	pkg := it.cell.Pkg
	it.cell = it.cell.Next
	return pkg
}

// Close releases the iterator.
func (it *OwnersIter) Close() {
	it.cell = nil
}
