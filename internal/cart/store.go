package cart

import (
	"sync"

	"github.com/asaskevich/EventBus"
	"go.uber.org/zap"
)

const changedTopic = "cart:changed"

// Store is an explicit, injectable cart state container. It is constructed
// once at application start and passed by reference to consumers; there is
// no package-level global.
//
// Every dispatch reduces and persists before the next dispatch's write is
// accepted; subscriber notification follows the write.
type Store struct {
	mu      sync.Mutex
	state   State
	storage Storage
	bus     EventBus.Bus
}

// NewStore rehydrates the cart from storage. An absent or unreadable
// payload yields an empty cart rather than an error.
func NewStore(storage Storage) *Store {
	st := &Store{
		state:   State{Items: []LineItem{}},
		storage: storage,
		bus:     EventBus.New(),
	}
	items, err := storage.Load()
	if err != nil {
		zap.L().Warn("cart storage unreadable, starting empty", zap.Error(err))
		return st
	}
	if items != nil {
		st.state = State{Items: items}
	}
	return st
}

// Get returns a snapshot of the current state.
func (st *Store) Get() State {
	st.mu.Lock()
	defer st.mu.Unlock()
	return st.state.clone()
}

// Dispatch applies an action and writes the new item sequence to storage
// while still holding the state lock, so transitions reach storage in
// dispatch order. Subscribers are notified after the write; a failed write
// does not roll back the in-memory transition.
func (st *Store) Dispatch(a Action) error {
	st.mu.Lock()
	st.state = reduce(st.state, a)
	snapshot := st.state.clone()
	err := st.storage.Save(snapshot.Items)
	st.mu.Unlock()

	if err != nil {
		zap.L().Error("cart persist failed", zap.String("action", string(a.Type)), zap.Error(err))
	}
	st.bus.Publish(changedTopic, snapshot)
	return err
}

// Subscribe registers a listener invoked with the new state after every
// dispatch.
func (st *Store) Subscribe(fn func(State)) error {
	return st.bus.Subscribe(changedTopic, fn)
}

// Unsubscribe removes a previously registered listener.
func (st *Store) Unsubscribe(fn func(State)) error {
	return st.bus.Unsubscribe(changedTopic, fn)
}
