package urx

import "sync"

// CompositeSubscription tears down a group of subscriptions together.
// Unlike Observer it may be shared between goroutines.
type CompositeSubscription struct {
	mutex  sync.Mutex
	closed bool
	subs   []Subscription
}

// Add registers sub with the group. If the group was already unsubscribed,
// sub is unsubscribed immediately.
func (c *CompositeSubscription) Add(sub Subscription) {
	c.mutex.Lock()
	if !c.closed {
		c.subs = append(c.subs, sub)
		c.mutex.Unlock()
		return
	}
	c.mutex.Unlock()
	sub.Unsubscribe()
}

func (c *CompositeSubscription) IsSubscribed() bool {
	c.mutex.Lock()
	defer c.mutex.Unlock()
	return !c.closed
}

// Unsubscribe unsubscribes every member once. Repeated calls do nothing.
func (c *CompositeSubscription) Unsubscribe() {
	c.mutex.Lock()
	if c.closed {
		c.mutex.Unlock()
		return
	}
	c.closed = true
	subs := c.subs
	c.subs = nil
	c.mutex.Unlock()

	for _, sub := range subs {
		if sub.IsSubscribed() {
			sub.Unsubscribe()
		}
	}
}
