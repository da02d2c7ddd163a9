package docstore

import (
	"context"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/travigo/transitnet/pkg/netformat"
	"github.com/travigo/transitnet/pkg/network"
)

// FileStore keeps each document in a file named by its key, relative to Root.
type FileStore struct {
	Root string
}

func NewFileStore(root string) *FileStore {
	if root == "" {
		root = "."
	}
	return &FileStore{Root: root}
}

func (s *FileStore) Name() string {
	return "file"
}

func (s *FileStore) Open(ctx context.Context, key string) (io.ReadCloser, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	path, err := s.path(key)
	if err != nil {
		return nil, err
	}

	file, err := os.Open(path)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("%s: %w", path, ErrNotFound)
	}
	if err != nil {
		return nil, err
	}

	return file, nil
}

// Write goes through a temporary file in the same directory so readers never
// see a partial document.
func (s *FileStore) Write(ctx context.Context, key string, document []byte) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	path, err := s.path(key)
	if err != nil {
		return err
	}

	directory := filepath.Dir(path)
	if err := os.MkdirAll(directory, 0o755); err != nil {
		return err
	}

	temporary, err := os.CreateTemp(directory, ".transitnet-*")
	if err != nil {
		return err
	}
	defer os.Remove(temporary.Name())

	if _, err := temporary.Write(document); err != nil {
		temporary.Close()
		return err
	}
	if err := temporary.Close(); err != nil {
		return err
	}

	return os.Rename(temporary.Name(), path)
}

// path keeps keys inside Root.
func (s *FileStore) path(key string) (string, error) {
	if key == "" {
		return "", ErrEmptyKey
	}

	cleaned := filepath.Clean(filepath.FromSlash(key))
	if filepath.IsAbs(cleaned) || cleaned == ".." || strings.HasPrefix(cleaned, ".."+string(filepath.Separator)) {
		return "", fmt.Errorf("%q: %w", key, ErrInvalidKey)
	}

	return filepath.Join(s.Root, cleaned), nil
}

// LoadFile reads the network document at path. Unlike FileStore, the path is
// used as given.
func LoadFile(path string) (*network.Network, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, &netformat.AvailabilityError{Op: "open", Source: path, Err: err}
	}
	defer file.Close()

	n, err := netformat.Decode(file)
	if err != nil {
		return nil, withSource(err, path)
	}

	return n, nil
}

// SaveFile writes the network document for n to path, truncating any existing
// file.
func SaveFile(path string, n *network.Network) error {
	file, err := os.Create(path)
	if err != nil {
		return &netformat.AvailabilityError{Op: "write", Source: path, Err: err}
	}

	if err := netformat.Encode(file, n); err != nil {
		file.Close()
		return withSource(err, path)
	}

	if err := file.Close(); err != nil {
		return &netformat.AvailabilityError{Op: "write", Source: path, Err: err}
	}

	return nil
}
