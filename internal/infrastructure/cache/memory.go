// Package cache implementa ports.QueryCache en memoria del proceso o sobre Redis.
package cache

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"

	"golang.org/x/sync/singleflight"

	"github.com/jhoicas/homeexotica-crm/internal/application/ports"
)

var _ ports.QueryCache = (*Memory)(nil)

// Memory cache de consultas en memoria; vive lo que vive el proceso.
// Guarda el JSON del valor para que cada lector reciba su propia copia.
type Memory struct {
	mu      sync.RWMutex
	entries map[string][]byte
	gen     uint64 // sube en cada Invalidate; un fetch iniciado antes no se guarda
	group   singleflight.Group
}

// NewMemory crea un cache vacío.
func NewMemory() *Memory {
	return &Memory{entries: make(map[string][]byte)}
}

// GetOrFetch devuelve el valor cacheado o llama a fetch una sola vez aunque haya lectores concurrentes.
func (m *Memory) GetOrFetch(ctx context.Context, key string, dest any, fetch ports.FetchFunc) error {
	m.mu.RLock()
	raw, ok := m.entries[key]
	gen := m.gen
	m.mu.RUnlock()
	if ok {
		return json.Unmarshal(raw, dest)
	}

	// La generación va en la clave del vuelo: una lectura posterior a Invalidate
	// no recibe el resultado de un fetch iniciado antes.
	v, err, _ := m.group.Do(fmt.Sprintf("%s@%d", key, gen), func() (any, error) {
		val, err := fetch(ctx)
		if err != nil {
			return nil, err
		}
		raw, err := json.Marshal(val)
		if err != nil {
			return nil, fmt.Errorf("cache: encode %s: %w", key, err)
		}
		m.mu.Lock()
		if m.gen == gen {
			m.entries[key] = raw
		}
		m.mu.Unlock()
		return raw, nil
	})
	if err != nil {
		return err
	}
	return json.Unmarshal(v.([]byte), dest)
}

// Invalidate borra la clave y sus variantes.
func (m *Memory) Invalidate(_ context.Context, key string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.gen++
	for k := range m.entries {
		if ports.CoversKey(key, k) {
			delete(m.entries, k)
		}
	}
	return nil
}

// Len cantidad de claves cacheadas.
func (m *Memory) Len() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.entries)
}
