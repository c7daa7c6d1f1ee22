package memory

import (
	"context"
	"sync"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/jruiz-dev/trendyshop/internal/common"
)

func TestCRUDRoundTrip(t *testing.T) {
	ctx := context.Background()
	m := New()

	id, err := m.Create(ctx, "products", map[string]any{"name": "shirt", "price": 9.99})
	require.NoError(t, err)
	require.NotEmpty(t, id)

	got, err := m.Get(ctx, "products", id)
	require.NoError(t, err)
	require.Equal(t, "shirt", got["name"])

	require.NoError(t, m.Update(ctx, "products", id, map[string]any{"name": "jacket"}))
	got, err = m.Get(ctx, "products", id)
	require.NoError(t, err)
	require.Equal(t, "jacket", got["name"])
	require.Equal(t, 9.99, got["price"])

	require.NoError(t, m.Delete(ctx, "products", id))
	_, err = m.Get(ctx, "products", id)
	require.ErrorIs(t, err, common.ErrNotFound)
}

func TestUpdateMissing(t *testing.T) {
	m := New()
	err := m.Update(context.Background(), "products", "nope", map[string]any{"a": 1})
	require.ErrorIs(t, err, common.ErrNotFound)
}

func TestDeleteMissing(t *testing.T) {
	m := New()
	err := m.Delete(context.Background(), "products", "nope")
	require.ErrorIs(t, err, common.ErrNotFound)
}

func TestGetReturnsCopy(t *testing.T) {
	ctx := context.Background()
	m := New()

	require.NoError(t, m.Put(ctx, "users", "u1", map[string]any{"name": "Ana"}))

	got, err := m.Get(ctx, "users", "u1")
	require.NoError(t, err)
	got["name"] = "mutated"

	again, err := m.Get(ctx, "users", "u1")
	require.NoError(t, err)
	require.Equal(t, "Ana", again["name"])
}

func TestListOrdered(t *testing.T) {
	ctx := context.Background()
	m := New()

	for _, seq := range []int64{3, 1, 2} {
		_, err := m.Create(ctx, "products", map[string]any{"sequence": seq})
		require.NoError(t, err)
	}

	list, err := m.List(ctx, "products", "sequence", true)
	require.NoError(t, err)
	require.Len(t, list, 3)
	for i, doc := range list {
		require.Equal(t, int64(i+1), doc.Data["sequence"])
	}

	desc, err := m.List(ctx, "products", "sequence", false)
	require.NoError(t, err)
	require.Equal(t, int64(3), desc[0].Data["sequence"])
}

func TestListEmptyCollection(t *testing.T) {
	m := New()
	list, err := m.List(context.Background(), "products", "sequence", true)
	require.NoError(t, err)
	require.NotNil(t, list)
	require.Empty(t, list)
}

func TestNextValue_Sequential(t *testing.T) {
	ctx := context.Background()
	m := New()

	for want := int64(1); want <= 5; want++ {
		got, err := m.NextValue(ctx, "product_sequence")
		require.NoError(t, err)
		require.Equal(t, want, got)
	}
}

func TestNextValue_ConcurrentUnique(t *testing.T) {
	const n = 100
	ctx := context.Background()
	m := New()

	var (
		wg   sync.WaitGroup
		mu   sync.Mutex
		seen = make(map[int64]struct{}, n)
	)
	for i := 0; i < n; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			v, err := m.NextValue(ctx, "c")
			require.NoError(t, err)
			mu.Lock()
			seen[v] = struct{}{}
			mu.Unlock()
		}()
	}
	wg.Wait()

	require.Len(t, seen, n)
	for v := int64(1); v <= n; v++ {
		require.Contains(t, seen, v)
	}
}
