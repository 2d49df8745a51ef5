package module

import "sync"

// Registry maps module names to the ports they export, e.g. "worth" to worth Ports
// the zero value is ready to use
type Registry struct {
	mu    sync.RWMutex
	ports map[string]any
}

// Register stores ports under name, replacing any earlier set
func (r *Registry) Register(name string, ports any) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.ports == nil {
		r.ports = map[string]any{}
	}
	r.ports[name] = ports
}

// Lookup returns the ports registered under name
func (r *Registry) Lookup(name string) (any, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	v, ok := r.ports[name]
	return v, ok
}

// Reset forgets every registration
func (r *Registry) Reset() {
	r.mu.Lock()
	r.ports = nil
	r.mu.Unlock()
}

// std is the process registry filled while the API mounts
var std Registry

// Register stores ports for name in the process registry
func Register(name string, ports any) { std.Register(name, ports) }

// PortsAs fetches the ports for name from the process registry as T
func PortsAs[T any](name string) (T, bool) {
	v, ok := std.Lookup(name)
	out, isT := v.(T)
	return out, ok && isT
}

// Reset clears the process registry; tests call it around mounts
func Reset() { std.Reset() }
