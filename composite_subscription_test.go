package urx

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func pending(cleanups *int) Observable[int] {
	return Create(func(o *Observer[int]) Unsubscriber {
		o.Next(1)
		return func() { *cleanups++ }
	})
}

func TestCompositeSubscription(t *testing.T) {
	var a, b int
	var group CompositeSubscription
	subA := pending(&a).Subscribe(Handlers[int]{})
	subB := pending(&b).Subscribe(Handlers[int]{})
	group.Add(subA)
	group.Add(subB)
	require.True(t, group.IsSubscribed())

	group.Unsubscribe()
	group.Unsubscribe()

	assert.False(t, group.IsSubscribed())
	assert.False(t, subA.IsSubscribed())
	assert.False(t, subB.IsSubscribed())
	assert.Equal(t, 1, a)
	assert.Equal(t, 1, b)
}

func TestCompositeSkipsFinishedMembers(t *testing.T) {
	var group CompositeSubscription
	done := From([]int{1}).Subscribe(Handlers[int]{})
	group.Add(done)

	require.NotPanics(t, group.Unsubscribe)
	assert.False(t, done.IsSubscribed())
}

func TestCompositeAddAfterUnsubscribe(t *testing.T) {
	var cleanups int
	var group CompositeSubscription
	group.Unsubscribe()

	sub := pending(&cleanups).Subscribe(Handlers[int]{})
	group.Add(sub)

	assert.False(t, sub.IsSubscribed())
	assert.Equal(t, 1, cleanups)
}

func TestCompositeConcurrentAdd(t *testing.T) {
	const members = 50
	var group CompositeSubscription
	subs := make([]Subscription, members)
	var wg sync.WaitGroup
	for i := 0; i < members; i++ {
		subs[i] = Create(func(o *Observer[int]) Unsubscriber {
			return func() {}
		}).Subscribe(Handlers[int]{})
		wg.Add(1)
		go func(sub Subscription) {
			defer wg.Done()
			group.Add(sub)
		}(subs[i])
	}
	wg.Wait()
	group.Unsubscribe()

	for _, sub := range subs {
		assert.False(t, sub.IsSubscribed())
	}
}
