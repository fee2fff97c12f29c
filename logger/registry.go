package logger

import "sync"

// components holds the loggers handed out by Get. Pinned entries come from
// Register and are kept until replaced; derived entries are tagged copies of
// the global logger and are dropped whenever the global logger changes.
var components = struct {
	mu      sync.RWMutex
	pinned  map[string]*Logger
	derived map[string]*Logger
}{
	pinned:  make(map[string]*Logger),
	derived: make(map[string]*Logger),
}

// Register pins l as the logger returned by Get(name).
func Register(name string, l *Logger) {
	components.mu.Lock()
	defer components.mu.Unlock()
	components.pinned[name] = l
	delete(components.derived, name)
}

// Get returns the logger for a component. Unless one was registered, it is
// the global logger tagged with the component name, built once per global
// logger.
func Get(name string) *Logger {
	components.mu.RLock()
	l, ok := components.pinned[name]
	if !ok {
		l, ok = components.derived[name]
	}
	components.mu.RUnlock()
	if ok {
		return l
	}

	l = GetGlobalLogger().WithComponent(name)
	components.mu.Lock()
	defer components.mu.Unlock()
	if existing, ok := components.pinned[name]; ok {
		return existing
	}
	if existing, ok := components.derived[name]; ok {
		return existing
	}
	components.derived[name] = l
	return l
}

// resetDerived forgets the component loggers built from the previous global
// logger, so a later Init (the CLI calls it once config is loaded) reaches
// every component.
func resetDerived() {
	components.mu.Lock()
	defer components.mu.Unlock()
	clear(components.derived)
}
