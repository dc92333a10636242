// Package store implements whole-file encrypted persistence for one
// JSON-serializable collection document per entity kind.
//
// Each collection lives in a single AES-GCM-encrypted file. Every write
// re-encrypts and rewrites the whole document through an atomic rename, so
// readers observe either the old or the new file, never a torn one. A
// per-file mutex serializes load-mutate-save cycles inside the process;
// writers in other processes still race last-write-wins, which is the
// documented model for these small collections.
package store

import (
	"context"
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"sync"

	"github.com/dmitrijs2005/foliovault/internal/cryptox"
	"github.com/dmitrijs2005/foliovault/internal/filex"
	"github.com/dmitrijs2005/foliovault/internal/logging"
)

// File persists a collection document of type T at a fixed path.
type File[T any] struct {
	path  string
	key   []byte
	empty func() T
	log   logging.Logger
	mu    sync.Mutex
}

// NewFile binds a store to path, encrypting with key. The empty factory
// produces a fresh document (with initialized maps and slices) for the
// bootstrap and degrade paths.
func NewFile[T any](path string, key []byte, empty func() T, log logging.Logger) *File[T] {
	return &File[T]{path: path, key: key, empty: empty, log: log}
}

// Path returns the backing file path.
func (f *File[T]) Path() string {
	return f.path
}

// load reads and decrypts the document. A missing file is the bootstrap
// path and yields an empty document. Decryption or parse failures are
// logged and also degrade to an empty document rather than propagating:
// the next save re-bootstraps the collection.
func (f *File[T]) load(ctx context.Context) T {
	data, err := os.ReadFile(f.path)
	if err != nil {
		if !errors.Is(err, fs.ErrNotExist) {
			f.log.Error(ctx, "error loading collection file, starting empty", "path", f.path, "error", err)
		}
		return f.empty()
	}

	doc := f.empty()
	if err := cryptox.DecryptJSON(data, f.key, &doc); err != nil {
		f.log.Error(ctx, "error decoding collection file, starting empty", "path", f.path, "error", err)
		return f.empty()
	}
	return doc
}

// save encrypts the document and rewrites the backing file atomically.
func (f *File[T]) save(ctx context.Context, doc T) error {
	blob, err := cryptox.EncryptJSON(doc, f.key)
	if err != nil {
		return err
	}

	if _, err := filex.EnsureDir(filepath.Dir(f.path)); err != nil {
		return err
	}

	return filex.WriteFileAtomic(f.path, blob, 0o660)
}

// View runs fn against a snapshot of the document under the store lock.
func (f *File[T]) View(ctx context.Context, fn func(doc T) error) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	return fn(f.load(ctx))
}

// Update runs a load-mutate-save cycle under the store lock. If fn returns
// an error the document is not saved. fn mutates the document in place.
func (f *File[T]) Update(ctx context.Context, fn func(doc *T) error) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	doc := f.load(ctx)
	if err := fn(&doc); err != nil {
		return err
	}

	return f.save(ctx, doc)
}
