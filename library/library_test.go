package library_test

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/viant/afs"

	"github.com/modkit/modelica/library"
	"github.com/modkit/modelica/mo"
)

func newModel(t *testing.T, name string) *mo.Model {
	t.Helper()
	m, err := mo.NewModel(name, mo.KindModel)
	if err != nil {
		t.Fatalf("failed to create model: %v", err)
	}
	return m
}

func TestLibraryAdd(t *testing.T) {
	lib := library.New("Grid")
	assert.NoError(t, lib.Add(newModel(t, "Bus")))
	assert.ErrorIs(t, lib.Add(newModel(t, "Bus")), mo.ErrDuplicateName)
	assert.ErrorIs(t, lib.Add(nil), mo.ErrEmptyName)
}

func TestSetVersion(t *testing.T) {
	lib := library.New("Grid")
	assert.NoError(t, lib.SetVersion("1.0.0"))
	assert.Error(t, lib.SetVersion("one.zero"))
	assert.Equal(t, "1.0.0", lib.Version)
}

func TestDocuments(t *testing.T) {
	lib := library.New("Grid")
	assert.NoError(t, lib.Add(newModel(t, "Bus")))
	assert.NoError(t, lib.Add(newModel(t, "Line")))

	docs, err := lib.Documents()
	assert.NoError(t, err)
	if !assert.Len(t, docs, 2) {
		return
	}
	assert.Equal(t, "Bus.mo", docs[0].Path)
	assert.Equal(t, "Line.mo", docs[1].Path)
	assert.Equal(t, "model Bus\nend Bus;\n", string(docs[0].Content))
	assert.NotZero(t, docs[0].Hash)

	// Rendering is deterministic, so fingerprints are stable across calls.
	again, err := lib.Documents()
	assert.NoError(t, err)
	assert.Equal(t, docs[0].Hash, again[0].Hash)
	assert.Equal(t, docs[1].Hash, again[1].Hash)
	assert.NotEqual(t, docs[0].Hash, docs[1].Hash)
}

func TestStore(t *testing.T) {
	ctx := context.Background()
	baseURL := "mem://localhost/modelica/store"

	lib := library.New("Grid")
	assert.NoError(t, lib.SetVersion("1.2.0"))
	assert.NoError(t, lib.Add(newModel(t, "Bus")))
	assert.NoError(t, lib.Add(newModel(t, "Line")))
	assert.NoError(t, lib.Store(ctx, baseURL))

	fs := afs.New()
	data, err := fs.DownloadWithURL(ctx, baseURL+"/Bus.mo")
	assert.NoError(t, err)
	assert.Equal(t, "model Bus\nend Bus;\n", string(data))

	data, err = fs.DownloadWithURL(ctx, baseURL+"/package.order")
	assert.NoError(t, err)
	assert.Equal(t, "Bus\nLine\n", string(data))

	data, err = fs.DownloadWithURL(ctx, baseURL+"/package.mo")
	assert.NoError(t, err)
	assert.Contains(t, string(data), "package Grid\n")
	assert.Contains(t, string(data), `annotation (version="1.2.0");`)

	// A second store appends new models without reordering existing entries.
	assert.NoError(t, lib.Add(newModel(t, "Breaker")))
	assert.NoError(t, lib.Store(ctx, baseURL))

	data, err = fs.DownloadWithURL(ctx, baseURL+"/package.order")
	assert.NoError(t, err)
	assert.Equal(t, "Bus\nLine\nBreaker\n", string(data))
}

func TestStoreKeepsForeignOrderEntries(t *testing.T) {
	ctx := context.Background()
	baseURL := "mem://localhost/modelica/order"

	fs := afs.New()
	assert.NoError(t, fs.Upload(ctx, baseURL+"/package.order", 0644, strings.NewReader("Legacy\n")))

	lib := library.New("")
	assert.NoError(t, lib.Add(newModel(t, "Fresh")))
	assert.NoError(t, lib.Store(ctx, baseURL))

	data, err := fs.DownloadWithURL(ctx, baseURL+"/package.order")
	assert.NoError(t, err)
	assert.Equal(t, "Legacy\nFresh\n", string(data))

	// Unnamed libraries get no package.mo wrapper.
	ok, err := fs.Exists(ctx, baseURL+"/package.mo")
	assert.NoError(t, err)
	assert.False(t, ok)
}

func TestHash(t *testing.T) {
	a, err := library.Hash([]byte("model A\nend A;\n"))
	assert.NoError(t, err)
	b, err := library.Hash([]byte("model A\nend A;\n"))
	assert.NoError(t, err)
	assert.Equal(t, a, b)

	c, err := library.Hash([]byte("model B\nend B;\n"))
	assert.NoError(t, err)
	assert.NotEqual(t, a, c)
}
