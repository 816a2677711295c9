package services

import (
	"encoding/json"
	"fmt"
	"log"
	"os"
)

// PlaceInfo is one catalog entry. Catalog identity is the name; whitelist
// identity downstream is the (Name, Addr) pair.
type PlaceInfo struct {
	Name string `json:"name"`
	Addr string `json:"addr"`
}

type CatalogStoreInterface interface {
	All() []PlaceInfo
	Lookup(name string) (PlaceInfo, bool)
	Err() error
}

// CatalogStore holds the static reference catalog, loaded once at startup.
// It is immutable after construction, so concurrent reads need no locking.
// A failed load is sticky: every request against it fails until the resource
// is fixed and the process restarted.
type CatalogStore struct {
	places  []PlaceInfo
	byName  map[string]PlaceInfo
	loadErr error
}

func NewCatalogStore(places []PlaceInfo) *CatalogStore {
	byName := make(map[string]PlaceInfo, len(places))
	deduped := make([]PlaceInfo, 0, len(places))
	for _, p := range places {
		if _, ok := byName[p.Name]; ok {
			continue
		}
		byName[p.Name] = p
		deduped = append(deduped, p)
	}
	return &CatalogStore{places: deduped, byName: byName}
}

func NewCatalogStoreFromFile(path string) *CatalogStore {
	data, err := os.ReadFile(path)
	if err != nil {
		log.Printf("Failed to read place catalog %s: %v", path, err)
		return &CatalogStore{loadErr: fmt.Errorf("read place catalog %s: %w", path, err)}
	}

	var places []PlaceInfo
	if err := json.Unmarshal(data, &places); err != nil {
		log.Printf("Failed to parse place catalog %s: %v", path, err)
		return &CatalogStore{loadErr: fmt.Errorf("parse place catalog %s: %w", path, err)}
	}

	store := NewCatalogStore(places)
	log.Printf("Loaded %d catalog places from %s", len(store.places), path)
	return store
}

// All returns the loaded catalog. Callers must not mutate the result.
func (s *CatalogStore) All() []PlaceInfo {
	return s.places
}

func (s *CatalogStore) Lookup(name string) (PlaceInfo, bool) {
	p, ok := s.byName[name]
	return p, ok
}

func (s *CatalogStore) Err() error {
	return s.loadErr
}
