package docstore

import (
	"context"
	"errors"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/travigo/transitnet/pkg/netformat"
	"github.com/travigo/transitnet/pkg/network"
)

const testDocument = "1\nstop0:0:1\n1\nbus,red,1:stop0\n0\n"

type trackingReader struct {
	io.Reader
	closed bool
}

func (r *trackingReader) Close() error {
	r.closed = true
	return nil
}

// memoryStore hands out readers it can later inspect.
type memoryStore struct {
	documents map[string]string
	readers   []*trackingReader
	writeErr  error
}

func (s *memoryStore) Name() string {
	return "memory"
}

func (s *memoryStore) Open(_ context.Context, key string) (io.ReadCloser, error) {
	document, ok := s.documents[key]
	if !ok {
		return nil, ErrNotFound
	}

	reader := &trackingReader{Reader: strings.NewReader(document)}
	s.readers = append(s.readers, reader)
	return reader, nil
}

func (s *memoryStore) Write(_ context.Context, key string, document []byte) error {
	if s.writeErr != nil {
		return s.writeErr
	}
	s.documents[key] = string(document)
	return nil
}

func TestLoadClosesReader(t *testing.T) {
	store := &memoryStore{documents: map[string]string{
		"good": testDocument,
		"bad":  "1\nstop0:0\n0\n0\n",
	}}

	if _, err := Load(context.Background(), store, "good"); err != nil {
		t.Fatalf("load failed: %v", err)
	}

	_, err := Load(context.Background(), store, "bad")
	if !netformat.IsFormatError(err) {
		t.Fatalf("expected a format error, got %v", err)
	}

	if len(store.readers) != 2 {
		t.Fatalf("expected 2 readers opened, got %d", len(store.readers))
	}
	for i, reader := range store.readers {
		if !reader.closed {
			t.Fatalf("reader %d left open", i)
		}
	}
}

func TestLoadUnavailable(t *testing.T) {
	store := &memoryStore{documents: map[string]string{}}

	cases := []struct {
		name  string
		store Store
		key   string
		err   error
	}{
		{"missing document", store, "absent", ErrNotFound},
		{"empty key", store, "", ErrEmptyKey},
		{"no store", nil, "absent", netformat.ErrMissingSource},
	}

	for _, c := range cases {
		_, err := Load(context.Background(), c.store, c.key)
		if !netformat.IsAvailabilityError(err) {
			t.Fatalf("%s: expected an availability error, got %v", c.name, err)
		}
		if !errors.Is(err, c.err) {
			t.Fatalf("%s: expected %v, got %v", c.name, c.err, err)
		}
	}
}

func TestSave(t *testing.T) {
	store := &memoryStore{documents: map[string]string{}}

	n, err := netformat.DecodeString(testDocument)
	if err != nil {
		t.Fatal(err)
	}

	if err := Save(context.Background(), store, "saved", n); err != nil {
		t.Fatalf("save failed: %v", err)
	}
	if store.documents["saved"] != testDocument {
		t.Fatalf("unexpected saved document %q", store.documents["saved"])
	}

	if err := Save(context.Background(), store, "", n); !errors.Is(err, ErrEmptyKey) {
		t.Fatalf("expected empty key error, got %v", err)
	}

	store.writeErr = errors.New("quota exceeded")
	err = Save(context.Background(), store, "saved", n)
	if !netformat.IsAvailabilityError(err) || !errors.Is(err, store.writeErr) {
		t.Fatalf("expected wrapped write error, got %v", err)
	}
}

func TestFileStoreRoundTrip(t *testing.T) {
	store := NewFileStore(t.TempDir())
	ctx := context.Background()

	n := network.New()
	stop, _ := n.AddStop("stop0", 0, 1)
	route, _ := n.AddRoute(network.TransportTypeBus, "red", 1)
	n.AddStopToRoute(route, stop)

	if err := Save(ctx, store, "nested/network.txt", n); err != nil {
		t.Fatalf("save failed: %v", err)
	}

	body, err := os.ReadFile(filepath.Join(store.Root, "nested", "network.txt"))
	if err != nil {
		t.Fatal(err)
	}
	if string(body) != testDocument {
		t.Fatalf("unexpected file contents %q", body)
	}

	loaded, err := Load(ctx, store, "nested/network.txt")
	if err != nil {
		t.Fatalf("load failed: %v", err)
	}
	if got := netformat.EncodeToString(loaded); got != testDocument {
		t.Fatalf("unexpected loaded network %q", got)
	}

	entries, err := os.ReadDir(filepath.Join(store.Root, "nested"))
	if err != nil {
		t.Fatal(err)
	}
	if len(entries) != 1 {
		t.Fatalf("expected only the saved document, found %d entries", len(entries))
	}
}

func TestFileStoreMissing(t *testing.T) {
	store := NewFileStore(t.TempDir())

	_, err := Load(context.Background(), store, "absent.txt")
	if !netformat.IsAvailabilityError(err) || !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected not found availability error, got %v", err)
	}
}

func TestFileStoreRejectsEscapingKeys(t *testing.T) {
	store := NewFileStore(t.TempDir())

	for _, key := range []string{"../outside.txt", "a/../../outside.txt", ".."} {
		if _, err := store.Open(context.Background(), key); !errors.Is(err, ErrInvalidKey) {
			t.Fatalf("Open(%q): expected invalid key error, got %v", key, err)
		}
		if err := store.Write(context.Background(), key, []byte(testDocument)); !errors.Is(err, ErrInvalidKey) {
			t.Fatalf("Write(%q): expected invalid key error, got %v", key, err)
		}
	}
}

func TestFileStoreCancelledContext(t *testing.T) {
	store := NewFileStore(t.TempDir())

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := Load(ctx, store, "network.txt")
	if !netformat.IsAvailabilityError(err) || !errors.Is(err, context.Canceled) {
		t.Fatalf("expected cancelled availability error, got %v", err)
	}
}

func TestLoadFileAndSaveFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "network.txt")

	n, err := netformat.DecodeString(testDocument)
	if err != nil {
		t.Fatal(err)
	}

	if err := SaveFile(path, n); err != nil {
		t.Fatalf("save failed: %v", err)
	}

	loaded, err := LoadFile(path)
	if err != nil {
		t.Fatalf("load failed: %v", err)
	}
	if got := netformat.EncodeToString(loaded); got != testDocument {
		t.Fatalf("unexpected loaded network %q", got)
	}
}

func TestLoadFileErrors(t *testing.T) {
	directory := t.TempDir()

	_, err := LoadFile(filepath.Join(directory, "missing.txt"))
	var availabilityError *netformat.AvailabilityError
	if !errors.As(err, &availabilityError) {
		t.Fatalf("expected an availability error, got %v", err)
	}
	if availabilityError.Source != filepath.Join(directory, "missing.txt") {
		t.Fatalf("unexpected source %q", availabilityError.Source)
	}

	broken := filepath.Join(directory, "broken.txt")
	if err := os.WriteFile(broken, []byte("2\nstop0:0:1\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := LoadFile(broken); !netformat.IsFormatError(err) {
		t.Fatalf("expected a format error, got %v", err)
	}

	if err := SaveFile(filepath.Join(directory, "absent", "network.txt"), network.New()); !netformat.IsAvailabilityError(err) {
		t.Fatalf("expected an availability error, got %v", err)
	}
}
