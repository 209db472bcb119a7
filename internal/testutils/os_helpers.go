package testutils

import (
	"os"
	"path/filepath"
	"sort"
	"strings"
	"testing"
)

const (
	dirPermissions  = 0775
	filePermissions = 0664
)

// WriteTree creates the files under dir. Keys are slash-separated paths relative to dir.
func WriteTree(t *testing.T, dir string, files map[string]string) {
	t.Helper()
	for name, content := range files {
		p := filepath.Join(dir, filepath.FromSlash(name))
		if err := os.MkdirAll(filepath.Dir(p), dirPermissions); err != nil {
			t.Fatal(err)
		}
		if err := os.WriteFile(p, []byte(content), filePermissions); err != nil {
			t.Fatal(err)
		}
	}
}

// ListTree returns the slash-separated paths of all regular files under dir, sorted
func ListTree(t *testing.T, dir string) []string {
	t.Helper()
	var files []string
	err := filepath.WalkDir(dir, func(path string, d os.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.Type().IsRegular() {
			rel, err := filepath.Rel(dir, path)
			if err != nil {
				return err
			}
			files = append(files, filepath.ToSlash(rel))
		}
		return nil
	})
	if err != nil {
		t.Fatal(err)
	}
	sort.Strings(files)
	return files
}

// ReadTreeFile returns the content of a file written by WriteTree or by the code under test
func ReadTreeFile(t *testing.T, dir, name string) string {
	t.Helper()
	b, err := os.ReadFile(filepath.Join(dir, filepath.FromSlash(strings.TrimPrefix(name, "/"))))
	if err != nil {
		t.Fatal(err)
	}
	return string(b)
}
