package urx

// Status is whatever a handler wants to report back to its own caller.
// The observer never inspects it.
type Status = any

// Handlers are the callbacks an Observer dispatches to. Any of them may be nil.
type Handlers[T any] struct {
	Next     func(T) Status
	Error    func(ErrorInfo) Status
	Complete func()
}

// Unsubscriber releases whatever a subscription holds. It is called at most once.
type Unsubscriber func()

// OnSubscribe produces values into a freshly created observer and returns
// the cleanup to run when that observer terminates.
type OnSubscribe[T any] interface {
	OnSubscribe(*Observer[T]) Unsubscriber
}

type OnSubscribeFunc[T any] func(*Observer[T]) Unsubscriber

func (f OnSubscribeFunc[T]) OnSubscribe(o *Observer[T]) Unsubscriber {
	return f(o)
}
