package fsys

// NodeList is one cell of a forward, singly-linked list of nodes, as
// used for each package's file list.
type NodeList struct {
	Next *NodeList
	Node *Node
}

// NodeQueue builds a NodeList by appending at the tail, so the list
// comes out in push order. The zero value is an empty queue.
type NodeQueue struct {
	Head *NodeList
	tail **NodeList
}

// Push appends a node to the queue and returns its cell.
func (q *NodeQueue) Push(n *Node) *NodeList {
	cell := &NodeList{Node: n}
	if q.tail == nil {
		q.tail = &q.Head
	}
	*q.tail = cell
	q.tail = &cell.Next
	return cell
}

// remove unlinks the first cell listing n. It reports whether a cell
// was removed.
func (q *NodeQueue) remove(n *Node) bool {
	for pp := &q.Head; *pp != nil; pp = &(*pp).Next {
		cell := *pp
		if cell.Node != n {
			continue
		}
		if q.tail == &cell.Next {
			q.tail = pp
		}
		*pp = cell.Next
		return true
	}
	return false
}

// PkgList is one cell of a node's owner list.
type PkgList struct {
	Next *PkgList
	Pkg  *Package
}

// Package is the database's view of a package: a name and the forward
// list of nodes the package's manifest lists, in manifest order. The
// rest of the package's state lives outside this database.
type Package struct {
	Name string

	files NodeQueue
}

// NewPackage returns a package with an empty file list.
func NewPackage(name string) *Package {
	return &Package{Name: name}
}

// Files returns the head of the package's forward file list, in
// manifest order.
func (p *Package) Files() *NodeList {
	return p.files.Head
}

// AddFile records that the package's manifest lists the node: the node
// is appended to the package's file list and the package to the node's
// owner list. Duplicate registration is tolerated (it happens
// transiently during reinstallation) and is undone one edge at a time
// by RemoveFile.
func (p *Package) AddFile(n *Node) {
	p.files.Push(n)

	cell := &PkgList{Pkg: p}
	pp := &n.Packages
	for *pp != nil {
		pp = &(*pp).Next
	}
	*pp = cell
}

// RemoveFile removes exactly one ownership edge between the package
// and the node: the first matching cell of the package's file list and
// the first matching cell of the node's owner list. It returns
// ErrNotOwner when no edge exists.
func (p *Package) RemoveFile(n *Node) error {
	if !p.files.remove(n) {
		return ErrNotOwner
	}
	for pp := &n.Packages; *pp != nil; pp = &(*pp).Next {
		if (*pp).Pkg == p {
			*pp = (*pp).Next
			return nil
		}
	}
	// The two lists are only ever mutated together, so a one-sided
	// edge means the same corruption the table guards against.
	panic("fsys: package file list and node owner list disagree for " + n.Name)
}
