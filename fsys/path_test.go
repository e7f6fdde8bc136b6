package fsys

import "testing"

func TestCanonical(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{name: "already canonical", in: "/usr/bin/foo", want: "/usr/bin/foo"},
		{name: "relative", in: "usr/bin/foo", want: "/usr/bin/foo"},
		{name: "dot slash", in: "./usr/bin/foo", want: "/usr/bin/foo"},
		{name: "double slash", in: "//usr/bin/foo", want: "/usr/bin/foo"},
		{name: "mixed run", in: ".///.//usr/bin/foo", want: "/usr/bin/foo"},
		{name: "root", in: "/", want: "/"},
		{name: "empty", in: "", want: "/"},
		{name: "interior segments untouched", in: "/usr//bin/./foo", want: "/usr//bin/./foo"},
		{name: "leading dot file kept", in: ".hidden", want: "/.hidden"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Canonical(tt.in)
			if got != tt.want {
				t.Errorf("Canonical(%q) = %q, want %q", tt.in, got, tt.want)
			}
			if again := Canonical(got); again != got {
				t.Errorf("Canonical is not idempotent: %q -> %q -> %q", tt.in, got, again)
			}
		})
	}
}

func TestTable_SetRoot(t *testing.T) {
	tbl := New()

	got := tbl.SetRoot("/target///")
	if got != "/target" {
		t.Errorf("SetRoot should trim trailing slashes, got %q", got)
	}
	if tbl.Root() != "/target" {
		t.Errorf("Root() = %q, want %q", tbl.Root(), "/target")
	}
	if real := tbl.RealPath("./usr/bin/foo"); real != "/target/usr/bin/foo" {
		t.Errorf("RealPath = %q, want %q", real, "/target/usr/bin/foo")
	}
}

func TestTable_SetRoot_EnvDefault(t *testing.T) {
	t.Setenv(RootEnvVar, "/chroot/")

	tbl := New()
	if tbl.Root() != "/chroot" {
		t.Errorf("Root() = %q, want env default %q", tbl.Root(), "/chroot")
	}
}

func TestTable_SetRoot_ResetsTable(t *testing.T) {
	tbl := New()
	tbl.Find("/usr/bin/foo", 0)
	if tbl.Len() != 1 {
		t.Fatalf("expected 1 entry before root switch, got %d", tbl.Len())
	}

	tbl.SetRoot("/other")
	if tbl.Len() != 0 {
		t.Errorf("switching roots should hard-reset the table, got %d entries", tbl.Len())
	}
}
