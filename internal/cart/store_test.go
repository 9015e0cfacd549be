package cart

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	bolt "go.etcd.io/bbolt"

	"github.com/Kajalkumari31/ministore/internal/domain"
)

// memStorage keeps the mirrored item sequence in memory for reducer tests.
type memStorage struct {
	items []LineItem
	saves int
}

func (m *memStorage) Load() ([]LineItem, error) { return m.items, nil }
func (m *memStorage) Save(items []LineItem) error {
	m.items = items
	m.saves++
	return nil
}
func (m *memStorage) Close() error { return nil }

func newTestStore(t *testing.T) (*Store, *memStorage) {
	t.Helper()
	storage := &memStorage{}
	return NewStore(storage), storage
}

func product(id int64, title string, price float64) domain.Product {
	return domain.Product{
		ID:       id,
		Title:    title,
		Price:    price,
		Image:    domain.DefaultImage,
		Stock:    domain.DefaultStock,
		Category: domain.DefaultCategory,
	}
}

func TestAddMergesSameProduct(t *testing.T) {
	store, _ := newTestStore(t)
	p1 := product(1, "Smart Watch", 1999)

	require.NoError(t, store.Dispatch(Add(p1)))
	require.NoError(t, store.Dispatch(Add(p1)))

	state := store.Get()
	require.Len(t, state.Items, 1)
	assert.Equal(t, 2, state.Items[0].Qty)
	assert.Equal(t, float64(3998), state.Total())
}

func TestAddAccumulatesQty(t *testing.T) {
	store, _ := newTestStore(t)
	p := product(7, "Coffee Mug", 299)

	const n = 5
	for i := 0; i < n; i++ {
		require.NoError(t, store.Dispatch(Add(p)))
	}

	state := store.Get()
	require.Len(t, state.Items, 1)
	assert.Equal(t, n, state.Items[0].Qty)
}

func TestAddSnapshotsProduct(t *testing.T) {
	store, _ := newTestStore(t)
	p := product(3, "Backpack", 1299)
	p.Description = "25L everyday backpack"
	require.NoError(t, store.Dispatch(Add(p)))

	item, found := store.Get().Find(3)
	require.True(t, found)
	assert.Equal(t, "Backpack", item.Title)
	assert.Equal(t, "25L everyday backpack", item.Description)
	assert.Equal(t, 1299.0, item.Price)
	assert.Equal(t, domain.DefaultStock, item.Stock)
	assert.Equal(t, 1, item.Qty)
}

func TestIncrementAndDecrement(t *testing.T) {
	store, _ := newTestStore(t)
	p := product(2, "Running Shoes", 1999)
	require.NoError(t, store.Dispatch(Add(p)))

	require.NoError(t, store.Dispatch(Increment(2)))
	require.NoError(t, store.Dispatch(Increment(2)))
	item, _ := store.Get().Find(2)
	assert.Equal(t, 3, item.Qty)

	require.NoError(t, store.Dispatch(Decrement(2)))
	item, _ = store.Get().Find(2)
	assert.Equal(t, 2, item.Qty)
}

func TestDecrementClampsAtOne(t *testing.T) {
	store, _ := newTestStore(t)
	p := product(2, "Running Shoes", 1999)
	require.NoError(t, store.Dispatch(Add(p)))

	// decrement well past the floor; the line must survive at qty 1
	for i := 0; i < 4; i++ {
		require.NoError(t, store.Dispatch(Decrement(2)))
	}

	state := store.Get()
	require.Len(t, state.Items, 1)
	assert.Equal(t, 1, state.Items[0].Qty)
}

func TestRemoveDropsLine(t *testing.T) {
	store, _ := newTestStore(t)
	require.NoError(t, store.Dispatch(Add(product(1, "Smart Watch", 2999))))
	require.NoError(t, store.Dispatch(Add(product(2, "Running Shoes", 1999))))

	require.NoError(t, store.Dispatch(Remove(1)))
	state := store.Get()
	require.Len(t, state.Items, 1)
	assert.Equal(t, int64(2), state.Items[0].ProductID)

	// removing an absent id is a no-op
	require.NoError(t, store.Dispatch(Remove(99)))
	assert.Len(t, store.Get().Items, 1)
}

func TestClearEmptiesCart(t *testing.T) {
	store, _ := newTestStore(t)
	require.NoError(t, store.Dispatch(Add(product(1, "Smart Watch", 2999))))
	require.NoError(t, store.Dispatch(Add(product(2, "Running Shoes", 1999))))

	require.NoError(t, store.Dispatch(Clear()))
	state := store.Get()
	assert.Empty(t, state.Items)
	assert.Zero(t, state.Total())
}

func TestTotalIsDerived(t *testing.T) {
	store, _ := newTestStore(t)
	require.NoError(t, store.Dispatch(Add(product(1, "Smart Watch", 2999))))
	require.NoError(t, store.Dispatch(Add(product(2, "Running Shoes", 1999))))
	require.NoError(t, store.Dispatch(Increment(2)))

	assert.Equal(t, 2999+2*1999.0, store.Get().Total())

	require.NoError(t, store.Dispatch(Remove(1)))
	assert.Equal(t, 2*1999.0, store.Get().Total())
}

func TestGetReturnsSnapshot(t *testing.T) {
	store, _ := newTestStore(t)
	require.NoError(t, store.Dispatch(Add(product(1, "Smart Watch", 2999))))

	state := store.Get()
	state.Items[0].Qty = 42

	fresh, _ := store.Get().Find(1)
	assert.Equal(t, 1, fresh.Qty)
}

func TestEveryDispatchPersists(t *testing.T) {
	store, storage := newTestStore(t)
	require.NoError(t, store.Dispatch(Add(product(1, "Smart Watch", 2999))))
	require.NoError(t, store.Dispatch(Increment(1)))
	require.NoError(t, store.Dispatch(Clear()))

	assert.Equal(t, 3, storage.saves)
	assert.Empty(t, storage.items)
}

func TestSubscribeSeesEveryTransition(t *testing.T) {
	store, _ := newTestStore(t)

	var seen []int
	require.NoError(t, store.Subscribe(func(s State) {
		seen = append(seen, len(s.Items))
	}))

	require.NoError(t, store.Dispatch(Add(product(1, "Smart Watch", 2999))))
	require.NoError(t, store.Dispatch(Add(product(2, "Running Shoes", 1999))))
	require.NoError(t, store.Dispatch(Clear()))

	assert.Equal(t, []int{1, 2, 0}, seen)
}

func TestDispatchPersistsBeforeNotify(t *testing.T) {
	store, storage := newTestStore(t)

	var persistedAtNotify [][]LineItem
	require.NoError(t, store.Subscribe(func(s State) {
		// storage must already reflect the transition when listeners run,
		// and reading the store from a listener must not deadlock
		persistedAtNotify = append(persistedAtNotify, storage.items)
		assert.Equal(t, s.Items, store.Get().Items)
	}))

	require.NoError(t, store.Dispatch(Add(product(1, "Smart Watch", 2999))))
	require.NoError(t, store.Dispatch(Increment(1)))

	require.Len(t, persistedAtNotify, 2)
	require.Len(t, persistedAtNotify[0], 1)
	assert.Equal(t, 1, persistedAtNotify[0][0].Qty)
	assert.Equal(t, 2, persistedAtNotify[1][0].Qty)
}

func TestBoltStorageRoundTrip(t *testing.T) {
	file := filepath.Join(t.TempDir(), "cart.db")

	storage, err := NewBoltStorage(file)
	require.NoError(t, err)
	store := NewStore(storage)
	require.NoError(t, store.Dispatch(Add(product(1, "Smart Watch", 2999))))
	require.NoError(t, store.Dispatch(Add(product(1, "Smart Watch", 2999))))
	require.NoError(t, store.Dispatch(Add(product(2, "Running Shoes", 1999))))
	want := store.Get()
	require.NoError(t, storage.Close())

	storage, err = NewBoltStorage(file)
	require.NoError(t, err)
	defer storage.Close()

	rehydrated := NewStore(storage)
	assert.Equal(t, want.Items, rehydrated.Get().Items)
	assert.Equal(t, want.Total(), rehydrated.Get().Total())
}

func TestRehydrateDefaultsToEmpty(t *testing.T) {
	file := filepath.Join(t.TempDir(), "cart.db")

	// nothing saved yet
	storage, err := NewBoltStorage(file)
	require.NoError(t, err)
	assert.Empty(t, NewStore(storage).Get().Items)
	require.NoError(t, storage.Close())

	// corrupt payload under the cart key
	db, err := bolt.Open(file, 0600, nil)
	require.NoError(t, err)
	require.NoError(t, db.Update(func(tx *bolt.Tx) error {
		return tx.Bucket(cartBucket).Put(cartKey, []byte("{not json"))
	}))
	require.NoError(t, db.Close())

	storage, err = NewBoltStorage(file)
	require.NoError(t, err)
	defer storage.Close()
	assert.Empty(t, NewStore(storage).Get().Items)
}
