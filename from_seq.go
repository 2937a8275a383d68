package urx

import "iter"

// FromSeq emits every value yielded by seq, then completes. The iterator is
// abandoned as soon as the observer unsubscribes. seq must be finite and is
// ranged over again for each subscription.
func FromSeq[T any](seq iter.Seq[T], opts ...Option) Observable[T] {
	c := newConfig(opts)
	log := c.logger()
	return Observable[T]{log: log, source: OnSubscribeFunc[T](func(o *Observer[T]) Unsubscriber {
		emitted := drain(o, seq)
		return func() {
			log.Debug().Int("emitted", emitted).Msg("sequence drained")
		}
	})}
}

// drain pushes seq into o until either runs out, then completes o. It returns
// the number of values handed to o.
func drain[T any](o *Observer[T], seq iter.Seq[T]) int {
	emitted := 0
	for v := range seq {
		o.Next(v)
		emitted++
		if o.IsUnsubscribed() {
			break
		}
	}
	o.Complete()
	return emitted
}
