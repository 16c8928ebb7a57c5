package storage

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/google/uuid"
)

// LocalStore keeps uploads on local disk under a single directory. File
// names get a uuid prefix so concurrent requests never collide.
type LocalStore struct {
	dir string
}

func NewLocalStore(dir string) (*LocalStore, error) {
	if dir == "" {
		dir = "uploads"
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("create upload dir %q: %w", dir, err)
	}
	return &LocalStore{dir: dir}, nil
}

func (s *LocalStore) Save(originalName string, r io.Reader) (*File, error) {
	name := uuid.NewString() + "-" + filepath.Base(originalName)
	path := filepath.Join(s.dir, name)

	f, err := os.Create(path)
	if err != nil {
		return nil, err
	}

	n, err := io.Copy(f, r)
	if cerr := f.Close(); err == nil {
		err = cerr
	}
	if err != nil {
		_ = os.Remove(path)
		return nil, err
	}

	return &File{Path: path, OriginalName: originalName, Size: n}, nil
}

func (s *LocalStore) Read(path string) ([]byte, error) {
	return os.ReadFile(path)
}

func (s *LocalStore) Remove(path string) error {
	return os.Remove(path)
}
