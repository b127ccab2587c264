package pokelance

import (
	"context"

	lru "github.com/hashicorp/golang-lru/v2"
	"github.com/pkg/errors"

	"github.com/FallenDeity/PokeLance/ports"
)

// mediaCache holds recently fetched sprite and cry payloads. Media
// files are immutable on the service side, so an LRU keyed by URL is
// safe and keeps repeat lookups off the network.
type mediaCache struct {
	lru *lru.Cache[string, []byte]
}

func newMediaCache(size int) (*mediaCache, error) {
	l, err := lru.New[string, []byte](size)
	if err != nil {
		return nil, errors.Wrapf(ports.ErrConfiguration, "media cache size %d: %v", size, err)
	}
	return &mediaCache{lru: l}, nil
}

// get returns the payload at rawURL, fetching and remembering it on a
// miss. Callers get their own copy of the bytes.
func (m *mediaCache) get(ctx context.Context, t Transport, rawURL string) ([]byte, error) {
	if data, ok := m.lru.Get(rawURL); ok {
		return append([]byte(nil), data...), nil
	}
	data, err := t.Bytes(ctx, rawURL)
	if err != nil {
		return nil, err
	}
	m.lru.Add(rawURL, data)
	return append([]byte(nil), data...), nil
}
