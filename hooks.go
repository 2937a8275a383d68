package urx

import "go.uber.org/atomic"

// hooks holds a teardown callback and guarantees it runs only once,
// independently of whoever decides the subscription is over.
type hooks struct {
	hook  Unsubscriber
	fired atomic.Bool
}

// set stores the teardown. Later calls are ignored.
func (h *hooks) set(hook Unsubscriber) {
	if h.hook == nil {
		h.hook = hook
	}
}

// callHooks runs the stored teardown if it has not run yet and reports
// whether it did.
func (h *hooks) callHooks() bool {
	if h.hook == nil || !h.fired.CompareAndSwap(false, true) {
		return false
	}
	h.hook()
	return true
}
