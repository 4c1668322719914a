package review

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"candidate-search/internal/models"
)

func TestStore_DispatchNotifiesAfterTransition(t *testing.T) {
	store := NewStore()

	type call struct{ prev, next Status }
	var calls []call
	store.Subscribe(func(prev, next State) {
		// the store already holds next when observers run
		assert.Equal(t, next.Status(), store.State().Status())
		calls = append(calls, call{prev.Status(), next.Status()})
	})

	store.Dispatch(FetchResult(candidates(1), nil))
	store.Dispatch(Accept)

	assert.Equal(t, []call{
		{StatusLoading, StatusReviewing},
		{StatusReviewing, StatusExhausted},
	}, calls)
}

func TestStore_ObserversRunInOrder(t *testing.T) {
	store := NewStore()
	var order []int
	store.Subscribe(func(State, State) { order = append(order, 1) })
	store.Subscribe(func(State, State) { order = append(order, 2) })

	store.Dispatch(Reject)
	assert.Equal(t, []int{1, 2}, order)
}

func TestStore_ClosedIgnoresDispatch(t *testing.T) {
	store := NewStore()
	notified := false
	store.Subscribe(func(State, State) { notified = true })

	store.Close()
	require.True(t, store.Closed())

	s := store.Dispatch(FetchResult(candidates(3), nil))
	assert.Equal(t, StatusLoading, s.Status())
	assert.Equal(t, StatusLoading, store.State().Status())
	assert.False(t, notified)
}

func TestAcceptedChanged(t *testing.T) {
	s := NewState(candidates(2), nil)

	assert.True(t, AcceptedChanged(s, Accept(s)))
	assert.False(t, AcceptedChanged(s, Reject(s)))
	assert.False(t, AcceptedChanged(NewState(nil, nil), Accept(NewState(nil, nil))))
}

func TestStore_FullSession(t *testing.T) {
	store := NewStore()
	var persisted [][]models.Candidate
	store.Subscribe(func(prev, next State) {
		if AcceptedChanged(prev, next) {
			persisted = append(persisted, next.Accepted())
		}
	})

	batch := candidates(4)
	store.Dispatch(FetchResult(batch, nil))
	store.Dispatch(Accept)
	store.Dispatch(Reject)
	store.Dispatch(Accept)
	store.Dispatch(Reject)
	store.Dispatch(Accept) // exhausted: no-op

	final := store.State()
	assert.Equal(t, StatusExhausted, final.Status())
	assert.Equal(t, []models.Candidate{batch[0], batch[2]}, final.Accepted())
	assert.Equal(t, [][]models.Candidate{
		{batch[0]},
		{batch[0], batch[2]},
	}, persisted)
}
