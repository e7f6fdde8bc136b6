package cmd

import (
	"bufio"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/seampkg/seam/fsys"
)

// manifestExt is the suffix of per-package file manifests in the
// administrative directory's info/ subdirectory.
const manifestExt = ".list"

// diversionExempt marks a diversion record with no exempt package.
const diversionExempt = ":"

// LoadStatusArea rebuilds the database from an administrative
// directory: every info/*.list manifest becomes a package with its
// file list in manifest order, and the diversions file (when present)
// re-establishes all diversions. It returns the packages by name.
func LoadStatusArea(tbl *fsys.Table, adminDir string) (map[string]*fsys.Package, error) {
	packages := make(map[string]*fsys.Package)

	infoDir := filepath.Join(adminDir, "info")
	entries, err := os.ReadDir(infoDir)
	if err != nil {
		return nil, fmt.Errorf("reading status area %s: %w", infoDir, err)
	}

	for _, entry := range entries {
		name := entry.Name()
		if entry.IsDir() || !strings.HasSuffix(name, manifestExt) {
			continue
		}
		pkg := fsys.NewPackage(strings.TrimSuffix(name, manifestExt))
		if err := loadManifest(tbl, pkg, filepath.Join(infoDir, name)); err != nil {
			return nil, err
		}
		packages[pkg.Name] = pkg
	}

	if err := loadDiversions(tbl, packages, filepath.Join(adminDir, "diversions")); err != nil {
		return nil, err
	}

	return packages, nil
}

// loadManifest registers every path a manifest lists, in file order.
func loadManifest(tbl *fsys.Table, pkg *fsys.Package, path string) error {
	f, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("reading manifest for %s: %w", pkg.Name, err)
	}
	defer f.Close()

	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		line := scanner.Text()
		if line == "" {
			continue
		}
		pkg.AddFile(tbl.Find(line, 0))
	}
	if err := scanner.Err(); err != nil {
		return fmt.Errorf("reading manifest for %s: %w", pkg.Name, err)
	}
	return nil
}

// loadDiversions parses the diversions file: records of three lines
// each (contested path, diverted-to path, diverting package name or
// ":" for none). A missing file simply means no diversions.
func loadDiversions(tbl *fsys.Table, packages map[string]*fsys.Package, path string) error {
	f, err := os.Open(path)
	if os.IsNotExist(err) {
		return nil
	}
	if err != nil {
		return fmt.Errorf("reading diversions: %w", err)
	}
	defer f.Close()

	var record []string
	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		record = append(record, scanner.Text())
		if len(record) < 3 {
			continue
		}

		contested := tbl.Find(record[0], 0)
		target := tbl.Find(record[1], 0)
		var exempt *fsys.Package
		if record[2] != diversionExempt {
			exempt = packages[record[2]]
			if exempt == nil {
				exempt = fsys.NewPackage(record[2])
				packages[record[2]] = exempt
			}
		}
		if err := tbl.DivertTo(contested, target, exempt); err != nil {
			return fmt.Errorf("diversion of %s: %w", record[0], err)
		}
		record = record[:0]
	}
	if err := scanner.Err(); err != nil {
		return fmt.Errorf("reading diversions: %w", err)
	}
	if len(record) != 0 {
		return fmt.Errorf("diversions file %s: truncated record %q", path, record)
	}
	return nil
}
