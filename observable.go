// Package urx is a small push-based stream primitive. An Observable runs its
// subscriber function once per Subscribe call against a fresh Observer, which
// forwards next/error/complete signals to the caller's handlers until the
// subscription terminates.
package urx

import (
	"slices"

	"github.com/rs/zerolog"
)

// Observable is immutable once built and keeps no state between subscriptions.
// The zero value is an empty stream that completes on subscribe.
type Observable[T any] struct {
	source OnSubscribe[T]
	log    zerolog.Logger
}

// New builds an Observable around src.
func New[T any](src OnSubscribe[T], opts ...Option) Observable[T] {
	c := newConfig(opts)
	return Observable[T]{source: src, log: c.logger()}
}

// Create builds an Observable from a function.
func Create[T any](onSub OnSubscribeFunc[T], opts ...Option) Observable[T] {
	return New[T](onSub, opts...)
}

// From emits values in order, then completes. Every subscription replays the
// full sequence synchronously inside Subscribe.
func From[T any](values []T, opts ...Option) Observable[T] {
	c := newConfig(opts)
	log := c.logger()
	return Observable[T]{log: log, source: OnSubscribeFunc[T](func(o *Observer[T]) Unsubscriber {
		emitted := drain(o, slices.Values(values))
		return func() {
			log.Debug().Int("emitted", emitted).Int("total", len(values)).Msg("source drained")
		}
	})}
}

// Subscribe runs the subscriber function against a new Observer built from h.
// Handler panics are not recovered and leave Subscribe.
func (obs Observable[T]) Subscribe(h Handlers[T]) Subscription {
	if obs.source == nil {
		o := newObserver(h, zerolog.Nop())
		o.Complete()
		return observerSubscription[T]{observer: o}
	}
	o := newObserver(h, obs.log)
	obs.log.Trace().Msg("subscribed")
	o.setCleanup(obs.source.OnSubscribe(o))
	return observerSubscription[T]{observer: o}
}
