package theme

import (
	"sort"
	"strings"
	"sync"
)

var registry = &manager{
	themes: make(map[string]Theme),
}

type manager struct {
	mu          sync.RWMutex
	themes      map[string]Theme
	currentName string
	current     Theme
}

// RegisterTheme adds a theme under name. The first registered theme becomes
// the active one.
func RegisterTheme(name string, t Theme) {
	name = normalize(name)
	registry.mu.Lock()
	defer registry.mu.Unlock()
	registry.themes[name] = t
	if registry.current == nil {
		registry.currentName = name
		registry.current = t
	}
}

// SetTheme activates a registered theme. Names are matched case-insensitively.
// It reports whether the theme exists.
func SetTheme(name string) bool {
	name = normalize(name)
	registry.mu.Lock()
	defer registry.mu.Unlock()
	t, ok := registry.themes[name]
	if !ok {
		return false
	}
	registry.currentName = name
	registry.current = t
	return true
}

// Current returns the active theme.
func Current() Theme {
	registry.mu.RLock()
	defer registry.mu.RUnlock()
	return registry.current
}

// CurrentName returns the name of the active theme.
func CurrentName() string {
	registry.mu.RLock()
	defer registry.mu.RUnlock()
	return registry.currentName
}

// Available returns the registered theme names, sorted.
func Available() []string {
	registry.mu.RLock()
	defer registry.mu.RUnlock()
	return registry.sortedNames()
}

// CycleTheme activates the next theme in sorted order and returns its name.
func CycleTheme() string {
	registry.mu.Lock()
	defer registry.mu.Unlock()

	names := registry.sortedNames()
	if len(names) == 0 {
		return ""
	}
	next := names[0]
	for i, name := range names {
		if name == registry.currentName {
			next = names[(i+1)%len(names)]
			break
		}
	}
	registry.currentName = next
	registry.current = registry.themes[next]
	return next
}

func (m *manager) sortedNames() []string {
	names := make([]string, 0, len(m.themes))
	for name := range m.themes {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

func normalize(name string) string {
	return strings.ToLower(strings.TrimSpace(name))
}
