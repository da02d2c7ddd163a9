// Package docstore loads and saves network documents from named locations:
// plain files, Redis keys or MongoDB documents.
package docstore

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/rs/zerolog/log"
	"github.com/travigo/transitnet/pkg/netformat"
	"github.com/travigo/transitnet/pkg/network"
)

var (
	ErrEmptyKey   = errors.New("empty document key")
	ErrInvalidKey = errors.New("invalid document key")
	ErrNotFound   = errors.New("document not found")
)

// Store is a place network documents can be read from and written to.
type Store interface {
	// Open returns a reader over the document stored under key. Callers
	// must close it.
	Open(ctx context.Context, key string) (io.ReadCloser, error)
	// Write replaces the document stored under key.
	Write(ctx context.Context, key string, document []byte) error
	// Name identifies the store in error messages and logs.
	Name() string
}

// Load reads and assembles the network stored under key. Format problems are
// returned as *netformat.FormatError and everything else as
// *netformat.AvailabilityError.
func Load(ctx context.Context, store Store, key string) (*network.Network, error) {
	source := sourceName(store, key)

	if store == nil {
		return nil, &netformat.AvailabilityError{Op: "open", Source: source, Err: netformat.ErrMissingSource}
	}
	if key == "" {
		return nil, &netformat.AvailabilityError{Op: "open", Source: source, Err: ErrEmptyKey}
	}

	reader, err := store.Open(ctx, key)
	if err != nil {
		return nil, &netformat.AvailabilityError{Op: "open", Source: source, Err: err}
	}
	defer reader.Close()

	n, err := netformat.Decode(reader)
	if err != nil {
		return nil, withSource(err, source)
	}

	log.Debug().Str("source", source).Msg("Loaded network")

	return n, nil
}

// Save encodes n and stores it under key, replacing any previous document.
func Save(ctx context.Context, store Store, key string, n *network.Network) error {
	source := sourceName(store, key)

	if store == nil {
		return &netformat.AvailabilityError{Op: "write", Source: source, Err: netformat.ErrMissingDestination}
	}
	if key == "" {
		return &netformat.AvailabilityError{Op: "write", Source: source, Err: ErrEmptyKey}
	}

	var buffer bytes.Buffer
	if err := netformat.Encode(&buffer, n); err != nil {
		return err
	}

	if err := store.Write(ctx, key, buffer.Bytes()); err != nil {
		return &netformat.AvailabilityError{Op: "write", Source: source, Err: err}
	}

	log.Debug().Str("source", source).Int("bytes", buffer.Len()).Msg("Saved network")

	return nil
}

func sourceName(store Store, key string) string {
	if store == nil {
		return key
	}
	return fmt.Sprintf("%s:%s", store.Name(), key)
}

// withSource names the source on availability errors raised below the store.
func withSource(err error, source string) error {
	var availabilityError *netformat.AvailabilityError
	if errors.As(err, &availabilityError) && availabilityError.Source == "" {
		availabilityError.Source = source
	}
	return err
}
