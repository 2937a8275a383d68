package urx

// Subscription is the handle returned by Observable.Subscribe.
type Subscription interface {
	Unsubscribe()
	IsSubscribed() bool
}

type observerSubscription[T any] struct {
	observer *Observer[T]
}

func (s observerSubscription[T]) Unsubscribe() {
	s.observer.Unsubscribe()
}

func (s observerSubscription[T]) IsSubscribed() bool {
	return !s.observer.IsUnsubscribed()
}
