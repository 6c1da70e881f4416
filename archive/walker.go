// Package archive walks subtitle documents stored in zip archives.
package archive

import (
	"archive/zip"
	"fmt"
	"path"
	"slices"
	"strings"

	"github.com/maruel/natural"
)

// Extensions of files treated as TTML documents, lower case.
var Extensions = []string{".ttml", ".dfxp", ".xml"}

// IsDocument reports whether file name has TTML document extension.
func IsDocument(name string) bool {
	return slices.Contains(Extensions, strings.ToLower(path.Ext(name)))
}

// WalkFunc is called for every matching document in archive. Returning an
// error stops processing.
type WalkFunc func(archive string, file *zip.File) error

// Walk calls walkFn for every TTML document in archive whose name starts with
// prefix, in natural name order. Archives with absolute entry names or ".."
// components are rejected.
func Walk(archive, prefix string, walkFn WalkFunc) error {
	r, err := zip.OpenReader(archive)
	if err != nil {
		return err
	}
	defer r.Close()

	var files []*zip.File
	for _, f := range r.File {
		name := f.Name
		if !isSafePath(name) {
			return fmt.Errorf("zip entry %q: unsafe path (absolute or contains path traversal)", name)
		}
		if f.FileInfo().IsDir() || !strings.HasPrefix(name, prefix) || !IsDocument(name) {
			continue
		}
		files = append(files, f)
	}
	slices.SortStableFunc(files, func(a, b *zip.File) int {
		switch {
		case natural.Less(a.Name, b.Name):
			return -1
		case natural.Less(b.Name, a.Name):
			return 1
		}
		return 0
	})

	for _, f := range files {
		if err := walkFn(archive, f); err != nil {
			return err
		}
	}
	return nil
}

func isSafePath(name string) bool {
	if path.IsAbs(name) || strings.HasPrefix(name, `\`) {
		return false
	}
	return !slices.Contains(strings.Split(name, "/"), "..")
}
