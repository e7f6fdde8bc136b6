package fsys

// Diversion is one node's half of an administrator-directed
// redirection. The contested node's half has UseInstead pointing at
// the node whose contents should actually be used; the target node's
// half has CameFrom pointing back at the contested node. Both slots
// are independent, so a node may be the target of one diversion and
// the contested side of another, but never both sides of the same one.
type Diversion struct {
	// UseInstead is set on the contested node's half.
	UseInstead *Node

	// CameFrom is set on the target node's half.
	CameFrom *Node

	// ExemptPkg is the package (if any) permitted to use the contested
	// path unredirected.
	ExemptPkg *Package

	// The contested halves are chained for easy bulk iteration.
	next *Diversion
}

// Contested returns the contested node of the diversion this half
// describes, for a contested half.
func (d *Diversion) Contested() *Node {
	if d.UseInstead == nil || d.UseInstead.Divert == nil {
		return nil
	}
	return d.UseInstead.Divert.CameFrom
}

// DivertTo establishes a diversion: the contents of contested actually
// live at target, except for exempt (which may be nil). Both halves
// are linked in one step so no partially-established diversion is ever
// observable. It fails when the two nodes are the same, when contested
// is already diverted, or when target is already the target of another
// diversion.
func (t *Table) DivertTo(contested, target *Node, exempt *Package) error {
	if contested == target {
		return ErrSelfDiversion
	}
	if d := contested.Divert; d != nil && d.UseInstead != nil {
		return ErrAlreadyDiverted
	}
	if d := target.Divert; d != nil && d.CameFrom != nil {
		return ErrAlreadyDiverted
	}

	cd := contested.Divert
	if cd == nil {
		cd = &Diversion{}
		contested.Divert = cd
	}
	td := target.Divert
	if td == nil {
		td = &Diversion{}
		target.Divert = td
	}

	cd.UseInstead = target
	cd.ExemptPkg = exempt
	td.CameFrom = contested
	td.ExemptPkg = exempt

	cd.next = t.diversions
	t.diversions = cd

	return nil
}

// Undivert tears down the diversion on contested, clearing both halves
// symmetrically and unchaining the contested half. Halves that carry
// no other role are detached from their nodes entirely.
func (t *Table) Undivert(contested *Node) error {
	cd := contested.Divert
	if cd == nil || cd.UseInstead == nil {
		return ErrNotDiverted
	}
	target := cd.UseInstead
	td := target.Divert

	cd.UseInstead = nil
	cd.ExemptPkg = nil
	td.CameFrom = nil
	td.ExemptPkg = nil

	for dp := &t.diversions; *dp != nil; dp = &(*dp).next {
		if *dp == cd {
			*dp = cd.next
			cd.next = nil
			break
		}
	}

	if cd.CameFrom == nil {
		contested.Divert = nil
	}
	if td.UseInstead == nil {
		target.Divert = nil
	}

	return nil
}

// Diversions visits every currently established diversion (contested
// halves, most recently established first) without a full table scan.
// It is usable with a range statement.
func (t *Table) Diversions(yield func(*Diversion) bool) {
	for d := t.diversions; d != nil; d = d.next {
		if !yield(d) {
			return
		}
	}
}
