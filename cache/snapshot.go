package cache

import (
	"encoding/json"
	"time"

	"github.com/pkg/errors"

	"github.com/FallenDeity/PokeLance/ports"
)

// snapshotVersion is bumped only on envelope layout changes. Unknown
// fields inside entries are ignored on read, so model growth alone does
// not require a bump.
const snapshotVersion = 1

// snapshot is the persisted envelope for one resource category. The type
// tag namespaces the file so a snapshot can never be restored into a
// store of a different category.
type snapshot[T any] struct {
	Type    string    `json:"type"`
	Version int       `json:"version"`
	SavedAt time.Time `json:"saved_at"`
	Count   int       `json:"count"`
	Entries []T       `json:"entries"`
}

func encodeSnapshot[T any](name string, entries []T) ([]byte, error) {
	s := snapshot[T]{
		Type:    name,
		Version: snapshotVersion,
		SavedAt: time.Now().UTC(),
		Count:   len(entries),
		Entries: entries,
	}
	data, err := json.MarshalIndent(s, "", "  ")
	if err != nil {
		return nil, errors.Wrapf(ports.ErrDecode, "failed to encode %s snapshot: %v", name, err)
	}
	return data, nil
}

func decodeSnapshot[T any](name string, data []byte) (snapshot[T], error) {
	var s snapshot[T]
	if err := json.Unmarshal(data, &s); err != nil {
		return s, errors.Wrapf(ports.ErrDecode, "failed to decode %s snapshot: %v", name, err)
	}
	if s.Type != name {
		return s, errors.Wrapf(ports.ErrDecode, "snapshot type %q does not match store %q", s.Type, name)
	}
	if s.Version != snapshotVersion {
		return s, errors.Wrapf(ports.ErrDecode, "unsupported %s snapshot version %d", name, s.Version)
	}
	return s, nil
}
