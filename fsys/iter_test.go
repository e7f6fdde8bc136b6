package fsys

import "testing"

func TestIter_VisitsEveryNodeOnce(t *testing.T) {
	tbl := New()

	paths := []string{"/a", "/b", "/a/b", "/etc/passwd", "/usr/bin/foo"}
	for _, path := range paths {
		tbl.Find(path, 0)
	}

	it := tbl.NewIter()
	defer it.Close()

	seen := make(map[string]int)
	for node := it.Next(); node != nil; node = it.Next() {
		seen[node.Name]++
	}

	if len(seen) != len(paths) {
		t.Fatalf("iterator visited %d distinct nodes, want %d", len(seen), len(paths))
	}
	for _, path := range paths {
		if seen[path] != 1 {
			t.Errorf("node %q visited %d times, want exactly once", path, seen[path])
		}
	}
}

func TestIter_EmptyTable(t *testing.T) {
	tbl := New()
	it := tbl.NewIter()
	defer it.Close()

	if node := it.Next(); node != nil {
		t.Errorf("iterator over empty table yielded %q", node.Name)
	}
}

func TestIter_DeterministicWithinRun(t *testing.T) {
	tbl := New()
	for _, path := range []string{"/a", "/b", "/c", "/d", "/e"} {
		tbl.Find(path, 0)
	}

	var first, second []string
	for node := range tbl.Iterate {
		first = append(first, node.Name)
	}
	for node := range tbl.Iterate {
		second = append(second, node.Name)
	}

	if len(first) != len(second) {
		t.Fatalf("two walks saw %d and %d nodes", len(first), len(second))
	}
	for i := range first {
		if first[i] != second[i] {
			t.Errorf("walk order differs at %d: %q vs %q", i, first[i], second[i])
		}
	}
}

func TestIter_InvalidatedByReset(t *testing.T) {
	tbl := New()
	for _, path := range []string{"/a", "/b", "/c"} {
		tbl.Find(path, 0)
	}

	it := tbl.NewIter()
	defer it.Close()
	if it.Next() == nil {
		t.Fatal("iterator should yield before the reset")
	}

	tbl.Reset()
	tbl.Find("/d", 0)

	if node := it.Next(); node != nil {
		t.Errorf("iterator outstanding across a reset yielded %q, want end-of-sequence", node.Name)
	}
}

func TestIter_CloseIsHarmless(t *testing.T) {
	tbl := New()
	node := tbl.Find("/a", 0)

	it := tbl.NewIter()
	it.Close()
	it.Close()

	if it.Next() != nil {
		t.Error("a closed iterator should be exhausted")
	}
	if got := tbl.Find("/a", FindNoCreate); got != node {
		t.Error("closing an iterator must not disturb the table")
	}
}

func TestReverseIter_ExactReversal(t *testing.T) {
	tbl := New()
	pkg := NewPackage("tree")

	paths := []string{"/a", "/a/b", "/a/b/c"}
	for _, path := range paths {
		pkg.AddFile(tbl.Find(path, 0))
	}

	it := NewReverseIter(pkg.Files())
	defer it.Close()

	want := []string{"/a/b/c", "/a/b", "/a"}
	for i, name := range want {
		node := it.Next()
		if node == nil {
			t.Fatalf("reverse iterator ended after %d nodes, want %d", i, len(want))
		}
		if node.Name != name {
			t.Errorf("reverse[%d] = %q, want %q", i, node.Name, name)
		}
	}
	if it.Next() != nil {
		t.Error("reverse iterator should be exhausted")
	}

	// The forward list must be left intact for other readers.
	got := collectNames(pkg.Files())
	for i, path := range paths {
		if got[i] != path {
			t.Errorf("forward list[%d] = %q after reversal, want %q", i, got[i], path)
		}
	}
}

func TestReverseIter_Empty(t *testing.T) {
	it := NewReverseIter(nil)
	defer it.Close()
	if it.Next() != nil {
		t.Error("reverse iterator over an empty list should yield nothing")
	}
}

func TestOwnersIter(t *testing.T) {
	tbl := New()
	node := tbl.Find("/usr/share/common", 0)

	names := []string{"first", "second", "third"}
	for _, name := range names {
		NewPackage(name).AddFile(node)
	}

	it := node.NewOwnersIter()
	defer it.Close()

	var got []string
	for pkg := it.Next(); pkg != nil; pkg = it.Next() {
		got = append(got, pkg.Name)
	}
	if len(got) != len(names) {
		t.Fatalf("owners iterator yielded %d packages, want %d", len(got), len(names))
	}
	for i, name := range names {
		if got[i] != name {
			t.Errorf("owner[%d] = %q, want %q", i, got[i], name)
		}
	}
}
