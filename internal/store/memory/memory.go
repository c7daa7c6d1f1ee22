// Package memory implements store.Store with mutex-guarded maps. It backs
// tests and `-b memory` demo runs; semantics mirror the postgres
// implementation, including atomic counters.
package memory

import (
	"context"
	"fmt"
	"sort"
	"sync"

	"github.com/google/uuid"

	"github.com/jruiz-dev/trendyshop/internal/common"
	"github.com/jruiz-dev/trendyshop/internal/store"
)

type Memory struct {
	mu          sync.RWMutex
	collections map[string]map[string]map[string]any
	counters    map[string]int64
}

func New() *Memory {
	return &Memory{
		collections: make(map[string]map[string]map[string]any),
		counters:    make(map[string]int64),
	}
}

var _ store.Store = (*Memory)(nil)

func (m *Memory) Create(ctx context.Context, collection string, data map[string]any) (string, error) {
	id := uuid.NewString()
	if err := m.Put(ctx, collection, id, data); err != nil {
		return "", err
	}
	return id, nil
}

func (m *Memory) Put(_ context.Context, collection, id string, data map[string]any) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	docs, ok := m.collections[collection]
	if !ok {
		docs = make(map[string]map[string]any)
		m.collections[collection] = docs
	}
	docs[id] = copyDoc(data)
	return nil
}

func (m *Memory) Get(_ context.Context, collection, id string) (map[string]any, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	data, ok := m.collections[collection][id]
	if !ok {
		return nil, common.ErrNotFound
	}
	return copyDoc(data), nil
}

func (m *Memory) Update(_ context.Context, collection, id string, partial map[string]any) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	data, ok := m.collections[collection][id]
	if !ok {
		return common.ErrNotFound
	}
	for k, v := range partial {
		data[k] = v
	}
	return nil
}

func (m *Memory) Delete(_ context.Context, collection, id string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if _, ok := m.collections[collection][id]; !ok {
		return common.ErrNotFound
	}
	delete(m.collections[collection], id)
	return nil
}

func (m *Memory) List(_ context.Context, collection, orderField string, asc bool) ([]store.Document, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	list := make([]store.Document, 0, len(m.collections[collection]))
	for id, data := range m.collections[collection] {
		list = append(list, store.Document{ID: id, Data: copyDoc(data)})
	}

	sort.Slice(list, func(i, j int) bool {
		less := fieldLess(list[i].Data[orderField], list[j].Data[orderField])
		if asc {
			return less
		}
		return !less
	})
	return list, nil
}

func (m *Memory) NextValue(_ context.Context, counter string) (int64, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.counters[counter]++
	return m.counters[counter], nil
}

// fieldLess orders two field values: numbers numerically, everything else by
// string form. Matches jsonb ordering closely enough for the fields we sort on.
func fieldLess(a, b any) bool {
	af, aNum := asFloat(a)
	bf, bNum := asFloat(b)
	if aNum && bNum {
		return af < bf
	}
	return fmt.Sprint(a) < fmt.Sprint(b)
}

func asFloat(v any) (float64, bool) {
	switch n := v.(type) {
	case float64:
		return n, true
	case int64:
		return float64(n), true
	case int:
		return float64(n), true
	}
	return 0, false
}

func copyDoc(data map[string]any) map[string]any {
	c := make(map[string]any, len(data))
	for k, v := range data {
		c[k] = v
	}
	return c
}
