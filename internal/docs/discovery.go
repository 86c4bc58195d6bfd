// Package docs discovers the authored documents of a documentation source tree.
package docs

import (
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"slices"
	"strings"

	ferrors "git.home.luguber.info/inful/siteconf/internal/foundation/errors"
	"git.home.luguber.info/inful/siteconf/internal/logfields"
)

// buildDir is the conventional output directory inside a source tree.
const buildDir = "_build"

// Document is an authored source document.
type Document struct {
	Name   string // slash separated path relative to the root, without suffix
	Path   string // absolute file path
	Suffix string
	Title  string
}

// Set is an ordered collection of documents addressable by name.
type Set struct {
	docs   []Document
	byName map[string]int
}

// Has reports whether a document named name exists.
func (s *Set) Has(name string) bool {
	if s == nil {
		return false
	}
	_, ok := s.byName[name]
	return ok
}

// Get returns the document named name.
func (s *Set) Get(name string) (Document, bool) {
	if s == nil {
		return Document{}, false
	}
	i, ok := s.byName[name]
	if !ok {
		return Document{}, false
	}
	return s.docs[i], true
}

// Names returns document names in discovery order.
func (s *Set) Names() []string {
	if s == nil {
		return nil
	}
	out := make([]string, 0, len(s.docs))
	for _, d := range s.docs {
		out = append(out, d.Name)
	}
	return out
}

// Len returns the number of documents.
func (s *Set) Len() int {
	if s == nil {
		return 0
	}
	return len(s.docs)
}

func (s *Set) add(d Document) bool {
	if _, dup := s.byName[d.Name]; dup {
		return false
	}
	s.byName[d.Name] = len(s.docs)
	s.docs = append(s.docs, d)
	return true
}

// Discover walks root and collects files whose suffix is listed in suffixes.
// Hidden entries, the _build directory and every directory in exclude are
// skipped. When two files map to the same document name, the suffix listed
// first wins.
func Discover(root string, suffixes, exclude []string) (*Set, error) {
	set := &Set{byName: make(map[string]int)}

	excluded := make(map[string]bool, len(exclude))
	for _, e := range exclude {
		excluded[filepath.Clean(e)] = true
	}

	var found []Document
	err := filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		name := d.Name()
		if d.IsDir() {
			if path == root {
				return nil
			}
			if strings.HasPrefix(name, ".") || name == buildDir || excluded[filepath.Clean(path)] {
				return filepath.SkipDir
			}
			return nil
		}
		if strings.HasPrefix(name, ".") {
			return nil
		}
		suffix := matchSuffix(name, suffixes)
		if suffix == "" {
			return nil
		}
		rel, err := filepath.Rel(root, path)
		if err != nil {
			return err
		}
		found = append(found, Document{
			Name:   filepath.ToSlash(strings.TrimSuffix(rel, suffix)),
			Path:   path,
			Suffix: suffix,
		})
		return nil
	})
	if err != nil {
		return nil, ferrors.WrapError(err, ferrors.CategoryFileSystem, "walk documentation source").WithPath(root).Build()
	}

	// Stable by suffix preference so the preferred file claims the name.
	slices.SortStableFunc(found, func(a, b Document) int {
		return slices.Index(suffixes, a.Suffix) - slices.Index(suffixes, b.Suffix)
	})
	for _, doc := range found {
		doc.Title = readTitle(doc)
		if !set.add(doc) {
			slog.Warn("Multiple files for the same document, keeping the first suffix",
				logfields.Document(doc.Name), logfields.Path(doc.Path))
		}
	}
	slices.SortFunc(set.docs, func(a, b Document) int { return strings.Compare(a.Name, b.Name) })
	for i, d := range set.docs {
		set.byName[d.Name] = i
	}

	slog.Debug("Discovered documents", slog.Int("count", set.Len()), logfields.Path(root))
	return set, nil
}

// matchSuffix returns the longest listed suffix name ends with.
func matchSuffix(name string, suffixes []string) string {
	best := ""
	for _, s := range suffixes {
		if s != "" && strings.HasSuffix(name, s) && len(name) > len(s) && len(s) > len(best) {
			best = s
		}
	}
	return best
}

func readTitle(doc Document) string {
	data, err := os.ReadFile(doc.Path)
	if err != nil {
		slog.Debug("Cannot read document for title", logfields.Document(doc.Name), logfields.Error(err))
		return ""
	}
	if doc.Suffix == ".md" || doc.Suffix == ".markdown" {
		return MarkdownTitle(data)
	}
	return RSTTitle(data)
}
