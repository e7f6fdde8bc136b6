package fsys

import (
	"crypto/sha256"
	"fmt"
	"io"
	"os"
)

// HashReader returns the SHA-256 digest of r as a hex string, suitable
// for a node's NewHash or OldHash.
func HashReader(r io.Reader) (string, error) {
	h := sha256.New()
	if _, err := io.Copy(h, r); err != nil {
		return "", err
	}
	return fmt.Sprintf("%x", h.Sum(nil)), nil
}

// HashFile hashes the file's content. Directories are refused with
// ErrExpectedFile.
func HashFile(path string) (string, error) {
	info, err := os.Stat(path)
	if err != nil {
		return "", err
	}
	if info.IsDir() {
		return "", ErrExpectedFile
	}
	file, err := os.Open(path)
	if err != nil {
		return "", err
	}
	defer file.Close()
	return HashReader(file)
}

// HashNode hashes the on-disk file behind the node under the table's
// filesystem root and records the result as the node's NewHash.
func (t *Table) HashNode(n *Node) (string, error) {
	hash, err := HashFile(t.RealPath(n.Name))
	if err != nil {
		return "", err
	}
	n.NewHash = hash
	return hash, nil
}
