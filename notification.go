package urx

type Kind string

const (
	OnNext     Kind = "next"
	OnError    Kind = "error"
	OnComplete Kind = "complete"
)

// Notification is a signal captured as a value.
type Notification[T any] struct {
	kind  Kind
	value T
	err   ErrorInfo
}

func Next[T any](value T) Notification[T] {
	return Notification[T]{kind: OnNext, value: value}
}

func Error[T any](err ErrorInfo) Notification[T] {
	return Notification[T]{kind: OnError, err: err}
}

func Complete[T any]() Notification[T] {
	return Notification[T]{kind: OnComplete}
}

func (n Notification[T]) Kind() Kind {
	return n.kind
}

// Value is only meaningful for OnNext notifications.
func (n Notification[T]) Value() T {
	return n.value
}

// Err is only meaningful for OnError notifications.
func (n Notification[T]) Err() ErrorInfo {
	return n.err
}

// Notify dispatches n to the matching signal method. Notifications of an
// unknown kind are dropped.
func (o *Observer[T]) Notify(n Notification[T]) {
	switch n.kind {
	case OnNext:
		o.Next(n.value)
	case OnError:
		o.Error(n.err)
	case OnComplete:
		o.Complete()
	}
}
