package assets

import (
	"os"
	"path/filepath"
	"sort"

	"github.com/pkg/errors"
	"go.uber.org/multierr"
	"go.uber.org/zap"
)

// Collection is a named group of asset files, loaded together before play starts.
type Collection struct {
	Name  string
	Paths []string
}

// Manifest lists every collection under a root directory. Paths are relative to Root.
type Manifest struct {
	Root        string
	Collections []Collection
}

// NewManifest returns an empty manifest rooted at root.
func NewManifest(root string) *Manifest {
	return &Manifest{Root: root}
}

// Add appends paths to the named collection, creating it if needed.
func (m *Manifest) Add(name string, paths ...string) {
	for i := range m.Collections {
		if m.Collections[i].Name == name {
			m.Collections[i].Paths = append(m.Collections[i].Paths, paths...)
			return
		}
	}
	m.Collections = append(m.Collections, Collection{Name: name, Paths: append([]string(nil), paths...)})
}

// Path resolves a manifest-relative path against Root.
func (m *Manifest) Path(rel string) string {
	return filepath.Join(m.Root, filepath.FromSlash(rel))
}

// Count returns the total number of files across all collections.
func (m *Manifest) Count() int {
	n := 0
	for _, c := range m.Collections {
		n += len(c.Paths)
	}
	return n
}

// Verify checks that every listed file exists and is a regular file. All problems are
// reported together; the error is nil when everything is present.
func (m *Manifest) Verify(log *zap.Logger) error {
	if log == nil {
		log = zap.NewNop()
	}
	var err error
	for _, c := range m.Collections {
		missing := 0
		for _, rel := range c.Paths {
			if e := checkFile(m.Path(rel)); e != nil {
				missing++
				err = multierr.Append(err, errors.Wrapf(e, "%s asset %s", c.Name, rel))
			}
		}
		log.Debug("verified asset collection",
			zap.String("collection", c.Name),
			zap.Int("files", len(c.Paths)),
			zap.Int("missing", missing),
		)
	}
	return err
}

// Missing returns the manifest-relative paths that Verify would complain about, sorted.
func (m *Manifest) Missing() []string {
	var out []string
	for _, c := range m.Collections {
		for _, rel := range c.Paths {
			if checkFile(m.Path(rel)) != nil {
				out = append(out, rel)
			}
		}
	}
	sort.Strings(out)
	return out
}

func checkFile(path string) error {
	info, err := os.Stat(path)
	if err != nil {
		return errors.Wrap(err, "stat")
	}
	if info.IsDir() {
		return errors.Errorf("%s is a directory", path)
	}
	return nil
}
