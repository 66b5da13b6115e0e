package output

import (
	"sync"

	"github.com/arthur-debert/termrender/pkg/errors"
)

// Registry records which channels are intercepted and by whom.
type Registry struct {
	mu     sync.Mutex
	owners map[*Channel]Hook
}

// DefaultRegistry is shared by everything in the process.
var DefaultRegistry = NewRegistry()

func NewRegistry() *Registry {
	return &Registry{owners: make(map[*Channel]Hook)}
}

// Install attaches hook to ch. It fails with ErrHookConflict when ch already
// has a hook, including hook itself.
func (r *Registry) Install(ch *Channel, hook Hook) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, taken := r.owners[ch]; taken || ch.currentHook() != nil {
		return errors.Newf(errors.ErrHookConflict, "channel %s is already intercepted", ch.Name()).
			WithDetail("channel", ch.Name())
	}
	r.owners[ch] = hook
	ch.setHook(hook)
	return nil
}

// Remove detaches hook from ch. It reports false when hook is not the
// channel's current owner.
func (r *Registry) Remove(ch *Channel, hook Hook) bool {
	r.mu.Lock()
	defer r.mu.Unlock()

	owner, ok := r.owners[ch]
	if !ok || owner != hook {
		return false
	}
	delete(r.owners, ch)
	ch.setHook(nil)
	return true
}

// Hooked reports whether ch currently has a hook.
func (r *Registry) Hooked(ch *Channel) bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	_, ok := r.owners[ch]
	return ok
}
