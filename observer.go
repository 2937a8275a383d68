package urx

import (
	"github.com/rs/zerolog"
	"go.uber.org/atomic"
)

// Observer receives the next/error/complete signals of a single subscription
// and owns its terminal state. Once unsubscribed, no handler is called again.
//
// An Observer is not safe for concurrent use; signals are expected to arrive
// from one call stack.
type Observer[T any] struct {
	handlers     Handlers[T]
	unsubscribed atomic.Bool
	// stopped is set once a terminal signal is accepted, before its handler runs
	stopped atomic.Bool
	cleanup      hooks
	log          zerolog.Logger
}

func NewObserver[T any](h Handlers[T], opts ...Option) *Observer[T] {
	c := newConfig(opts)
	return newObserver(h, c.logger())
}

func newObserver[T any](h Handlers[T], log zerolog.Logger) *Observer[T] {
	return &Observer[T]{handlers: h, log: log}
}

// Next delivers a value unless the observer has stopped.
func (o *Observer[T]) Next(value T) {
	if o.stopped.Load() || o.handlers.Next == nil {
		return
	}
	// the handler's status is for the caller that built it
	_ = o.handlers.Next(value)
}

// Error delivers err and terminates the observer.
func (o *Observer[T]) Error(err ErrorInfo) {
	if !o.stopped.CompareAndSwap(false, true) {
		return
	}
	o.log.Debug().Int("code", err.Code).Str("text", err.Text).Msg("observer terminated by error")
	defer o.Unsubscribe()
	if o.handlers.Error != nil {
		_ = o.handlers.Error(err)
	}
}

// Complete signals the end of the stream and terminates the observer.
func (o *Observer[T]) Complete() {
	if !o.stopped.CompareAndSwap(false, true) {
		return
	}
	o.log.Debug().Msg("observer completed")
	defer o.Unsubscribe()
	if o.handlers.Complete != nil {
		o.handlers.Complete()
	}
}

// Unsubscribe terminates the observer and runs its cleanup. It is safe to call
// any number of times; the cleanup runs once.
func (o *Observer[T]) Unsubscribe() {
	o.stopped.Store(true)
	o.unsubscribed.Store(true)
	if o.cleanup.callHooks() {
		o.log.Debug().Msg("cleanup invoked")
	}
}

func (o *Observer[T]) IsUnsubscribed() bool {
	return o.unsubscribed.Load()
}

// setCleanup stores the teardown returned by the subscriber function. When
// the observer already terminated while that function ran, the teardown runs
// straight away.
func (o *Observer[T]) setCleanup(fn Unsubscriber) {
	if fn == nil {
		return
	}
	o.cleanup.set(fn)
	if o.IsUnsubscribed() {
		o.Unsubscribe()
	}
}
