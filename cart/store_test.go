package cart

import (
	"sync"
	"testing"

	"minikart/catalog"
	"minikart/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupStore(t *testing.T) *Store {
	t.Helper()
	return NewStore(catalog.New())
}

func TestStore_Add_NewLine(t *testing.T) {
	s := setupStore(t)

	items, total, err := s.Add(1, 2)
	require.NoError(t, err)

	require.Len(t, items, 1)
	assert.Equal(t, int64(1), items[0].ID)
	assert.Equal(t, int64(1), items[0].ProductID)
	assert.Equal(t, "Women Jeans", items[0].Name)
	assert.Equal(t, 1800.00, items[0].Price)
	assert.Equal(t, 2, items[0].Qty)
	assert.Equal(t, 3600.00, total)
}

func TestStore_Add_MergesSameProduct(t *testing.T) {
	s := setupStore(t)

	_, _, err := s.Add(1, 2)
	require.NoError(t, err)
	items, total, err := s.Add(1, 3)
	require.NoError(t, err)

	// Still one line; quantity is the sum, id unchanged.
	require.Len(t, items, 1)
	assert.Equal(t, int64(1), items[0].ID)
	assert.Equal(t, 5, items[0].Qty)
	assert.Equal(t, 9000.00, total)
}

func TestStore_Add_UnknownProduct(t *testing.T) {
	s := setupStore(t)

	_, _, err := s.Add(1, 2)
	require.NoError(t, err)

	_, _, err = s.Add(99, 1)
	require.ErrorIs(t, err, ErrProductNotFound)

	// No mutation on failure.
	items, total := s.Items()
	require.Len(t, items, 1)
	assert.Equal(t, 3600.00, total)
}

func TestStore_Add_PreservesInsertionOrder(t *testing.T) {
	s := setupStore(t)

	_, _, err := s.Add(2, 1)
	require.NoError(t, err)
	_, _, err = s.Add(3, 1)
	require.NoError(t, err)

	// Merging into the first line must not reorder it.
	items, _, err := s.Add(2, 1)
	require.NoError(t, err)

	require.Len(t, items, 2)
	assert.Equal(t, int64(2), items[0].ProductID)
	assert.Equal(t, 2, items[0].Qty)
	assert.Equal(t, int64(3), items[1].ProductID)
}

func TestStore_Add_AcceptsZeroAndNegativeQty(t *testing.T) {
	s := setupStore(t)

	_, _, err := s.Add(1, 0)
	require.NoError(t, err)
	items, total, err := s.Add(1, -2)
	require.NoError(t, err)

	require.Len(t, items, 1)
	assert.Equal(t, -2, items[0].Qty)
	assert.Equal(t, -3600.00, total)
}

func TestStore_Remove_Idempotent(t *testing.T) {
	s := setupStore(t)

	items, _, err := s.Add(1, 5)
	require.NoError(t, err)
	itemID := items[0].ID

	items, total := s.Remove(itemID)
	assert.Empty(t, items)
	assert.Equal(t, 0.00, total)

	// Removing the same id again is a silent no-op.
	items, total = s.Remove(itemID)
	assert.Empty(t, items)
	assert.Equal(t, 0.00, total)
}

func TestStore_Remove_KeepsOtherLines(t *testing.T) {
	s := setupStore(t)

	_, _, err := s.Add(1, 1)
	require.NoError(t, err)
	items, _, err := s.Add(2, 1)
	require.NoError(t, err)
	require.Len(t, items, 2)

	items, total := s.Remove(items[0].ID)
	require.Len(t, items, 1)
	assert.Equal(t, int64(2), items[0].ProductID)
	assert.Equal(t, 1000.00, total)
}

func TestStore_Clear_ResetsIDCounter(t *testing.T) {
	s := setupStore(t)

	_, _, err := s.Add(1, 1)
	require.NoError(t, err)
	_, _, err = s.Add(2, 1)
	require.NoError(t, err)

	s.Clear()

	items, total := s.Items()
	assert.Empty(t, items)
	assert.Equal(t, 0.00, total)

	items, _, err = s.Add(3, 1)
	require.NoError(t, err)
	assert.Equal(t, int64(1), items[0].ID)
}

func TestStore_Items_ReturnsSnapshot(t *testing.T) {
	s := setupStore(t)

	_, _, err := s.Add(1, 1)
	require.NoError(t, err)

	items, _ := s.Items()
	items[0].Qty = 100

	again, total := s.Items()
	assert.Equal(t, 1, again[0].Qty)
	assert.Equal(t, 1800.00, total)
}

func TestStore_ConcurrentAdds_MergeIntoOneLine(t *testing.T) {
	s := setupStore(t)

	const workers = 20
	var wg sync.WaitGroup
	wg.Add(workers)
	for i := 0; i < workers; i++ {
		go func() {
			defer wg.Done()
			_, _, _ = s.Add(1, 1)
		}()
	}
	wg.Wait()

	items, total := s.Items()
	require.Len(t, items, 1)
	assert.Equal(t, workers, items[0].Qty)
	assert.Equal(t, 1800.00*workers, total)
}

func TestTotal_RoundsAtFinalSum(t *testing.T) {
	items := []models.CartItem{
		{Price: 0.10, Qty: 3},
		{Price: 0.25, Qty: 1},
	}
	// 0.1*3 accumulates binary error; the final rounding absorbs it.
	assert.Equal(t, 0.55, Total(items))

	assert.Equal(t, 0.00, Total(nil))
}
