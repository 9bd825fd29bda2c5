// Package library renders a set of models into Modelica library assets and
// stores them through the afs storage abstraction, maintaining the
// package.order index that Modelica tools expect.
package library

import (
	"bytes"
	"context"
	"fmt"
	"strings"

	"github.com/viant/afs"
	"github.com/viant/afs/url"
	"golang.org/x/mod/semver"

	"github.com/modkit/modelica/mo"
	"github.com/modkit/modelica/render"
)

const (
	orderFile   = "package.order"
	packageFile = "package.mo"
)

// Library is an ordered collection of models stored together as one Modelica
// library.
type Library struct {
	Name    string
	Version string
	Models  []*mo.Model

	fs afs.Service
}

// New creates a library. The name may be empty for a loose folder of models;
// a named library additionally gets a package.mo wrapper on Store.
func New(name string) *Library {
	return &Library{Name: name, fs: afs.New()}
}

// SetVersion records the library version stamped into the package.mo
// annotation. The version must be a valid semantic version.
func (l *Library) SetVersion(version string) error {
	if !semver.IsValid("v" + version) {
		return fmt.Errorf("invalid library version %q", version)
	}
	l.Version = version
	return nil
}

// Add appends a model. Model names must be unique within a library because
// each becomes a file name.
func (l *Library) Add(m *mo.Model) error {
	if m == nil || m.Name == "" {
		return fmt.Errorf("model: %w", mo.ErrEmptyName)
	}
	for _, existing := range l.Models {
		if existing.Name == m.Name {
			return fmt.Errorf("model %q: %w", m.Name, mo.ErrDuplicateName)
		}
	}
	l.Models = append(l.Models, m)
	return nil
}

// Documents renders every model into a fingerprinted asset, in insertion
// order. Rendering is deterministic, so hashes are stable across calls.
func (l *Library) Documents() ([]*Document, error) {
	documents := make([]*Document, 0, len(l.Models))
	for _, m := range l.Models {
		content, err := render.Render(m)
		if err != nil {
			return nil, fmt.Errorf("render %s: %w", m.Name, err)
		}
		doc := &Document{
			Name:    m.Name,
			Path:    m.Name + ".mo",
			Content: []byte(content),
		}
		if doc.Hash, err = Hash(doc.Content); err != nil {
			return nil, err
		}
		documents = append(documents, doc)
	}
	return documents, nil
}

// Store renders every model and uploads the assets under baseURL, then
// updates package.order. Any scheme the storage service understands works,
// e.g. file:// or mem://.
func (l *Library) Store(ctx context.Context, baseURL string) error {
	documents, err := l.Documents()
	if err != nil {
		return err
	}
	for _, doc := range documents {
		location := url.Join(baseURL, doc.Path)
		if err := l.fs.Upload(ctx, location, 0644, bytes.NewReader(doc.Content)); err != nil {
			return fmt.Errorf("store %s: %w", location, err)
		}
	}
	if l.Name != "" {
		if err := l.storePackage(ctx, baseURL); err != nil {
			return err
		}
	}
	return l.updateOrder(ctx, baseURL, documents)
}

// storePackage writes the package.mo wrapper carrying the library name and
// version annotation.
func (l *Library) storePackage(ctx context.Context, baseURL string) error {
	pkg, err := mo.NewModel(l.Name, mo.KindPackage)
	if err != nil {
		return err
	}
	if l.Version != "" {
		pkg.Annotation.Add(mo.Mod("version", `"`+l.Version+`"`))
	}
	content, err := render.Render(pkg)
	if err != nil {
		return err
	}
	location := url.Join(baseURL, packageFile)
	return l.fs.Upload(ctx, location, 0644, strings.NewReader(content))
}

// updateOrder appends model names missing from package.order, never
// reordering entries already present.
func (l *Library) updateOrder(ctx context.Context, baseURL string, documents []*Document) error {
	location := url.Join(baseURL, orderFile)
	var entries []string
	seen := map[string]bool{}

	ok, err := l.fs.Exists(ctx, location)
	if err != nil {
		return fmt.Errorf("check %s: %w", location, err)
	}
	if ok {
		data, err := l.fs.DownloadWithURL(ctx, location)
		if err != nil {
			return fmt.Errorf("load %s: %w", location, err)
		}
		for _, line := range strings.Split(string(data), "\n") {
			line = strings.TrimSpace(line)
			if line == "" {
				continue
			}
			entries = append(entries, line)
			seen[line] = true
		}
	}
	for _, doc := range documents {
		if !seen[doc.Name] {
			entries = append(entries, doc.Name)
			seen[doc.Name] = true
		}
	}
	content := strings.Join(entries, "\n") + "\n"
	return l.fs.Upload(ctx, location, 0644, strings.NewReader(content))
}
