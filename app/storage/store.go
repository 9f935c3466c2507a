// Package storage provides the synchronous key-value slot store that holds
// every persisted collection as one JSON array per slot.
package storage

import (
	"encoding/json"
	"log"
)

// Canonical slot keys. The "mvpi-" prefix matches the project name; the
// "mpvi-" spelling that leaked into parts of the old code is treated as
// legacy and migrated, see MigrateLegacyKeys.
const (
	KeyUsers       = "mvpi-users"
	KeyInspections = "mvpi-inspections"
	KeyWeightings  = "mvpi-weightings"
	KeyFeedback    = "mvpi-feedback"
	KeyVisits      = "mvpi-visits"
)

// Store is a synchronous key-value store. Get reports whether the slot has
// ever been written; Set overwrites the slot as a whole.
type Store interface {
	Get(key string) (string, bool, error)
	Set(key, value string) error
	Delete(key string) error
}

// LoadCollection decodes the JSON array held in a slot. A missing slot and a
// corrupted slot both yield an empty collection: corrupted storage must not
// crash the application, only lose the unreadable collection.
func LoadCollection[T any](s Store, key string) ([]T, error) {
	raw, ok, err := s.Get(key)
	if err != nil {
		return nil, err
	}
	if !ok || raw == "" {
		return nil, nil
	}

	var items []T
	if err := json.Unmarshal([]byte(raw), &items); err != nil {
		log.Printf("storage: discarding unreadable collection %q: %v", key, err)
		return nil, nil
	}
	return items, nil
}

// SaveCollection encodes a collection and overwrites its slot.
func SaveCollection[T any](s Store, key string, items []T) error {
	if items == nil {
		items = []T{}
	}
	data, err := json.Marshal(items)
	if err != nil {
		return err
	}
	return s.Set(key, string(data))
}
