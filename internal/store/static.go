package store

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/GregMSThompson/bank-closures/internal/errs"
)

// staticStore reads and writes the JSON documents the site serves.
type staticStore struct {
	dir string
}

func NewStaticStore(dir string) *staticStore {
	return &staticStore{dir: dir}
}

func (s *staticStore) path(name string) string {
	return filepath.Join(s.dir, name)
}

func (s *staticStore) Read(_ context.Context, name string) ([]byte, error) {
	b, err := os.ReadFile(s.path(name))
	if errors.Is(err, fs.ErrNotExist) {
		return nil, errs.NewNotFoundError(name + " does not exist")
	}
	if err != nil {
		return nil, errs.NewFileError("read", s.path(name), err)
	}
	return b, nil
}

// WriteJSON overwrites name with the compact JSON encoding of v. The
// directory must already exist.
func (s *staticStore) WriteJSON(_ context.Context, name string, v any) error {
	b, err := json.Marshal(v)
	if err != nil {
		return err
	}
	if err := os.WriteFile(s.path(name), b, 0o644); err != nil {
		return errs.NewFileError("write", s.path(name), err)
	}
	return nil
}

// WriteJSONIfChanged writes v only when its encoding differs from the
// current file content and reports whether it wrote.
func (s *staticStore) WriteJSONIfChanged(ctx context.Context, name string, v any) (bool, error) {
	b, err := json.Marshal(v)
	if err != nil {
		return false, err
	}
	current, err := s.Read(ctx, name)
	var notFound *errs.NotFoundError
	if err != nil && !errors.As(err, &notFound) {
		return false, err
	}
	if err == nil && bytes.Equal(bytes.TrimSpace(current), b) {
		return false, nil
	}
	if err := os.WriteFile(s.path(name), b, 0o644); err != nil {
		return false, errs.NewFileError("write", s.path(name), err)
	}
	return true, nil
}
